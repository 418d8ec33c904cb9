package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/chrisdamba/foodstories/internal/logger"
	"github.com/chrisdamba/foodstories/internal/models"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "foodstories",
	Short: "Story viewer core for food ordering apps",
	Long: `foodstories plays restaurant dish stories with ingredient hotspots, a
customization panel and live pricing, and simulates viewers browsing them to
produce interaction event streams.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logger.Init()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.foodstories.yaml)")
	rootCmd.PersistentFlags().String("catalog-source", "mock", "Catalog source: mock, file, s3, postgres or generated")
	rootCmd.PersistentFlags().String("catalog-path", "", "Catalog file path for the file source")
	rootCmd.PersistentFlags().String("database-url", "", "Postgres connection string")

	cobra.CheckErr(viper.BindPFlag("catalog_source", rootCmd.PersistentFlags().Lookup("catalog-source")))
	cobra.CheckErr(viper.BindPFlag("catalog_path", rootCmd.PersistentFlags().Lookup("catalog-path")))
	cobra.CheckErr(viper.BindPFlag("database_url", rootCmd.PersistentFlags().Lookup("database-url")))

	rootCmd.AddCommand(simulateCmd, catalogCmd)
}

// loadConfig reads the config file named by --config, or
// $HOME/.foodstories.yaml when it exists.
func loadConfig() (*models.Config, error) {
	file := cfgFile
	if file == "" {
		if home, err := os.UserHomeDir(); err == nil {
			candidate := filepath.Join(home, ".foodstories.yaml")
			if _, err := os.Stat(candidate); err == nil {
				file = candidate
			}
		}
	}
	if file != "" {
		fmt.Fprintln(os.Stderr, "Using config file:", file)
	}
	return models.LoadConfig(viper.GetViper(), file)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
