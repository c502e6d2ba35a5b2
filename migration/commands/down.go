package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wheelshare/schema/migration/driver"
)

func DownCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "down",
		Short: "Revert the last migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := getDB()
			if err != nil {
				return err
			}

			migrator := driver.NewMigrator(db)
			if err := migrator.Down(); err != nil {
				return fmt.Errorf("failed to revert migration: %v", err)
			}

			fmt.Println("Reverted last migration")
			return nil
		},
	}
}
