package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"workout-builder-service/internal/adapters/secondary/postgres"
	"workout-builder-service/internal/catalog"
	"workout-builder-service/internal/config"
	"workout-builder-service/internal/core/services"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "catalog",
		Short:         "Manage the exercise catalog database",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			config.ApplyLogger(cfg.Logger)
			cmd.SetContext(withConfig(cmd.Context(), cfg))
			return nil
		},
	}

	root.AddCommand(newMigrateCmd(), newImportCmd())
	return root
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			pool, err := postgres.NewPool(ctx, configFrom(ctx).Database)
			if err != nil {
				return err
			}
			defer pool.Close()

			applied, err := postgres.Migrate(ctx, pool)
			if err != nil {
				return err
			}
			log.WithField("applied", len(applied)).Info("schema up to date")
			return nil
		},
	}
}

func newImportCmd() *cobra.Command {
	var (
		file   string
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import exercises from a YAML catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			exercises, err := catalog.LoadFile(file)
			if err != nil {
				return err
			}
			if err := services.ValidateCatalog(exercises); err != nil {
				return err
			}
			if dryRun {
				log.WithField("exercises", len(exercises)).Info("catalog is valid")
				return nil
			}

			ctx := cmd.Context()
			pool, err := postgres.NewPool(ctx, configFrom(ctx).Database)
			if err != nil {
				return err
			}
			defer pool.Close()

			svc := services.NewCatalogService(
				postgres.NewExerciseRepository(pool),
				postgres.NewAttributeRepository(pool),
				postgres.NewCatalogWriter(pool),
			)
			_, err = svc.Import(ctx, exercises)
			return err
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "path to the YAML catalog")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "validate the catalog without writing")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

type configKey struct{}

func withConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

func configFrom(ctx context.Context) *config.Config {
	return ctx.Value(configKey{}).(*config.Config)
}
