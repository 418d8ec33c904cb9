package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/chrisdamba/foodstories/internal/catalog"
	"github.com/chrisdamba/foodstories/internal/simulator"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Simulate viewers browsing dish stories",
	Long: `simulate loads the catalog, lets a population of simulated viewers play,
customize and order from the stories, and writes every interaction event to
the configured output.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		provider, closeProvider, err := catalog.FromConfig(ctx, cfg)
		if err != nil {
			return err
		}
		defer closeProvider()

		restaurants, err := catalog.Load(ctx, provider)
		if err != nil {
			return err
		}

		sim := simulator.NewSimulator(cfg, restaurants)
		summary, err := sim.Run(ctx)
		fmt.Fprintln(cmd.OutOrStdout(), summary)
		if err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	},
}

func init() {
	flags := simulateCmd.Flags()
	flags.Int64("seed", 42, "Random seed for simulation")
	flags.Int("viewers", 10, "Number of simulated viewers")
	flags.Int("concurrency", 4, "Viewers playing at the same time")
	flags.Int("max-actions", 20, "Actions per viewer, including open and close")
	flags.Float64("speed", 1, "Playback speed multiplier")
	flags.Duration("tick-interval", 0, "Progress added per timer tick")
	flags.Duration("think-time", 0, "Mean pause between viewer actions")
	flags.String("output-format", "console", "Output format: console, json, csv, parquet, kafka or postgres")
	flags.String("output-path", "", "Output directory for file formats")
	flags.String("kafka-broker-list", "localhost:9092", "Kafka broker list")

	for flag, key := range map[string]string{
		"seed":              "seed",
		"viewers":           "viewers",
		"concurrency":       "concurrency",
		"max-actions":       "max_actions",
		"speed":             "speed",
		"tick-interval":     "tick_interval",
		"think-time":        "think_time",
		"output-format":     "output_format",
		"output-path":       "output_path",
		"kafka-broker-list": "kafka_broker_list",
	} {
		cobra.CheckErr(viper.BindPFlag(key, flags.Lookup(flag)))
	}
}
