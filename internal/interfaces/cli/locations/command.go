package locations

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/estately/estately/internal/application/location/usecases"
	"github.com/estately/estately/internal/infrastructure/config"
	"github.com/estately/estately/internal/infrastructure/database"
	"github.com/estately/estately/internal/infrastructure/repository"
	"github.com/estately/estately/internal/shared/db"
	"github.com/estately/estately/internal/shared/logger"
)

var (
	env  string
	file string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "locations",
		Short: "Geography reference data",
	}
	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	importCmd := &cobra.Command{
		Use:   "import",
		Short: "Import states, counties and cities from a CSV file",
		Long:  `Import a US cities CSV with the columns city, state_id, state_name, county_name and optional lat, lng. Existing rows are kept.`,
		RunE:  runImport,
	}
	importCmd.Flags().StringVarP(&file, "file", "f", "", "Path to the CSV file (required)")
	_ = importCmd.MarkFlagRequired("file")

	cmd.AddCommand(importCmd)
	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Init(&cfg.Logger, false); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", file, err)
	}
	defer f.Close()

	gdb := database.Get()
	uc := usecases.NewImportLocationsUseCase(
		repository.NewLocationRepository(gdb, log),
		db.NewTransactionManager(gdb),
		log,
	)

	result, err := uc.Execute(context.Background(), f)
	if err != nil {
		return err
	}

	fmt.Printf("Imported %d states, %d counties, %d cities (%d rows skipped)\n",
		result.States, result.Counties, result.Cities, result.Skipped)
	return nil
}
