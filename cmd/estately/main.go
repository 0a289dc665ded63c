package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/estately/estately/internal/interfaces/cli/locations"
	"github.com/estately/estately/internal/interfaces/cli/migrate"
	"github.com/estately/estately/internal/interfaces/cli/server"
)

//go:generate swag init -g main.go -d ./,../../internal/interfaces/http -o ../../docs

// @title						Estately API
// @version					1.0
// @description				Multi-tenant real estate storefronts: stores, listings, billing and media.
// @BasePath					/api/v1
// @securityDefinitions.apikey	Bearer
// @in							header
// @name						Authorization
func main() {
	rootCmd := &cobra.Command{
		Use:   "estately",
		Short: "Estately - multi-tenant real estate backend",
		Long:  `Estately serves store storefronts and their owner API, and ships migration and data import tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		locations.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
