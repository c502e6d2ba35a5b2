package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/wheelshare/schema/migration"
	"github.com/wheelshare/schema/migration/commands"
	_ "github.com/wheelshare/schema/migrations"
	"github.com/wheelshare/schema/models"
)

type modelRegistry struct{}

func (r *modelRegistry) GetModels() map[string]interface{} {
	return models.ModelTypeRegistry
}

func init() {
	migration.GlobalModelRegistry = &modelRegistry{}
}

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "wheelshare",
		Short: "Car rental schema & migration tool",
	}

	rootCmd.AddCommand(
		commands.InitCmd(),
		commands.CreateCmd(),
		commands.MigrateCmd(),
		commands.UpCmd(),
		commands.DownCmd(),
		commands.StatusCmd(),
		commands.HistoryCmd(),
		commands.ValidateCmd(),
		commands.SeedCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
