package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/chrisdamba/foodstories/internal/catalog"
	"github.com/chrisdamba/foodstories/internal/logger"
	"github.com/chrisdamba/foodstories/internal/models"
	"github.com/chrisdamba/foodstories/internal/repositories/postgres"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect, validate and publish story catalogs",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the stories of the configured catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		restaurants, err := loadCatalog(cmd)
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "RESTAURANT\tSTORY\tDISH\tPRICE\tMEDIA\tINGREDIENTS")
		for _, r := range restaurants {
			for _, s := range r.Stories {
				fmt.Fprintf(w, "%s\t%s\t%s\t$%.2f\t%d\t%d\n",
					r.Name, s.ID, s.DishName, s.BasePrice, len(s.Media), len(s.Ingredients))
			}
		}
		return w.Flush()
	},
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the configured catalog for structural errors",
	RunE: func(cmd *cobra.Command, args []string) error {
		restaurants, err := loadCatalog(cmd)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "catalog ok: %d restaurants, %d stories\n",
			len(restaurants), len(models.FlattenStories(restaurants)))
		return nil
	},
}

var catalogExportCmd = &cobra.Command{
	Use:   "export FILE",
	Short: "Write the configured catalog to a YAML or JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		restaurants, err := loadCatalog(cmd)
		if err != nil {
			return err
		}
		data, err := catalog.Encode(args[0], restaurants)
		if err != nil {
			return err
		}
		return os.WriteFile(args[0], data, 0o644)
	},
}

var catalogSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Store the configured catalog in Postgres",
	Long: `seed replaces the restaurant and story tables of --database-url with the
catalog read from the configured source.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}
		if cfg.DatabaseURL == "" {
			return fmt.Errorf("database_url is required to seed a catalog")
		}
		if cfg.CatalogSource == models.CatalogSourcePostgres {
			return fmt.Errorf("cannot seed postgres from itself, choose another catalog_source")
		}
		ctx := cmd.Context()

		provider, closeProvider, err := catalog.FromConfig(ctx, cfg)
		if err != nil {
			return err
		}
		defer closeProvider()
		restaurants, err := catalog.Load(ctx, provider)
		if err != nil {
			return err
		}

		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		defer pool.Close()
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			return err
		}
		if err := catalog.NewPostgres(pool).Store(ctx, restaurants); err != nil {
			return err
		}
		logger.Info("catalog seeded",
			zap.Int("restaurants", len(restaurants)),
			zap.Int("stories", len(models.FlattenStories(restaurants))))
		return nil
	},
}

func loadCatalog(cmd *cobra.Command) ([]models.Restaurant, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	provider, closeProvider, err := catalog.FromConfig(cmd.Context(), cfg)
	if err != nil {
		return nil, err
	}
	defer closeProvider()
	return catalog.Load(cmd.Context(), provider)
}

func init() {
	catalogCmd.AddCommand(catalogListCmd, catalogValidateCmd, catalogExportCmd, catalogSeedCmd)
}
