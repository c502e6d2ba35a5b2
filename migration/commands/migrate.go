package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/wheelshare/schema/migration"
)

// MigrateCmd runs GORM AutoMigrate over every registered model,
// creating tables, foreign keys and indexes for a fresh database.
func MigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "AutoMigrate all registered models",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := migration.ValidateRegistry(); err != nil {
				return err
			}

			db, err := getDB()
			if err != nil {
				return err
			}

			registry := migration.GlobalModelRegistry.GetModels()

			names := make([]string, 0, len(registry))
			for name := range registry {
				names = append(names, name)
			}
			sort.Strings(names)

			models := make([]interface{}, 0, len(registry))
			for _, name := range names {
				models = append(models, registry[name])
			}

			if err := db.AutoMigrate(models...); err != nil {
				return fmt.Errorf("failed to migrate models: %v", err)
			}

			fmt.Printf("Migrated %d model(s): %v\n", len(names), names)
			return nil
		},
	}
}
