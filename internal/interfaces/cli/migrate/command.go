package migrate

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/estately/estately/internal/infrastructure/config"
	"github.com/estately/estately/internal/infrastructure/database"
	"github.com/estately/estately/internal/infrastructure/migration"
	"github.com/estately/estately/internal/shared/logger"
)

const sourceRoot = "./internal/infrastructure/migration"

var (
	env   string
	name  string
	steps int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Apply, roll back and inspect the embedded SQL migrations, or scaffold a new one.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newCreateCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		RunE:  runDown,
	}
	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")
	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE:  runStatus,
	}
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new migration script for the configured driver",
		RunE:  runCreate,
	}
	cmd.Flags().StringVarP(&name, "name", "n", "", "Name of the migration (required)")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func initEnv() (*config.Config, logger.Interface, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Init(&cfg.Logger, false); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, logger.NewLogger(), nil
}

// withMigrator opens the database and hands a migrator to fn.
func withMigrator(fn func(ctx context.Context, m *migration.Migrator) error) error {
	cfg, log, err := initEnv()
	if err != nil {
		return err
	}
	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	m, err := migration.NewMigrator(database.Get(), log)
	if err != nil {
		return err
	}
	return fn(context.Background(), m)
}

func runUp(cmd *cobra.Command, args []string) error {
	return withMigrator(func(ctx context.Context, m *migration.Migrator) error {
		return m.Up(ctx)
	})
}

func runDown(cmd *cobra.Command, args []string) error {
	return withMigrator(func(ctx context.Context, m *migration.Migrator) error {
		return m.Down(ctx, steps)
	})
}

func runStatus(cmd *cobra.Command, args []string) error {
	return withMigrator(func(ctx context.Context, m *migration.Migrator) error {
		version, err := m.Version(ctx)
		if err != nil {
			return err
		}
		pending, err := m.Pending(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("\nMigration Status:\n")
		fmt.Printf("  Environment:     %s\n", env)
		fmt.Printf("  Current Version: %d\n", version)
		fmt.Printf("  Pending:         %d\n\n", pending)

		return m.Status(ctx)
	})
}

func runCreate(cmd *cobra.Command, args []string) error {
	cfg, log, err := initEnv()
	if err != nil {
		return err
	}

	dir, err := migration.Create(sourceRoot, cfg.Database.Driver, name)
	if err != nil {
		return err
	}

	log.Infow("migration created", "name", name, "dir", dir)
	fmt.Printf("Migration '%s' created in %s\n", name, dir)
	return nil
}
