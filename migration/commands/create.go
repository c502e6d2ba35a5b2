package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
)

const migrationTemplate = `package migrations

import (
	"gorm.io/gorm"

	"github.com/wheelshare/schema/migration"
)

func init() {
	migration.Register(&migration.Migration{
		Version: "%s",
		Name:    "%s",
		Up: func(db *gorm.DB) error {
			return nil
		},
		Down: func(db *gorm.DB) error {
			return nil
		},
	})
}
`

func CreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create [name]",
		Short: "Create a new migration file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			version := time.Now().Format("20060102150405")

			migrationsDir, err := validateMigrationsPath(getMigrationsDir())
			if err != nil {
				return fmt.Errorf("failed to validate migrations directory: %v", err)
			}

			filename := fmt.Sprintf("%s_%s.go", version, name)
			filePath := filepath.Join(migrationsDir, filename)

			content := fmt.Sprintf(migrationTemplate, version, name)
			if err := os.WriteFile(filePath, []byte(content), 0644); err != nil {
				return fmt.Errorf("failed to create migration file: %v", err)
			}

			fmt.Printf("Created migration: %s\n", filePath)
			return nil
		},
	}
}
