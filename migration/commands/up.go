package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wheelshare/schema/migration"
	"github.com/wheelshare/schema/migration/driver"
)

func UpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			dryRun, _ := cmd.Flags().GetBool("dry-run")

			if err := migration.Validate(); err != nil {
				return err
			}

			db, err := getDB()
			if err != nil {
				return err
			}

			migrator := driver.NewMigrator(db)
			pending, err := migrator.Pending()
			if err != nil {
				return fmt.Errorf("failed to determine pending migrations: %v", err)
			}

			if len(pending) == 0 {
				fmt.Println("No pending migrations.")
				return nil
			}

			if dryRun {
				fmt.Println("Pending migrations:")
				for _, m := range pending {
					fmt.Printf("- %s (%s)\n", m.Name, m.Version)
				}
				return nil
			}

			for _, m := range pending {
				fmt.Printf("Applying migration: %s (%s)\n", m.Name, m.Version)
			}

			if err := migrator.Up(); err != nil {
				return fmt.Errorf("failed to apply migrations: %v", err)
			}

			fmt.Printf("Applied %d migration(s)\n", len(pending))
			return nil
		},
	}

	cmd.Flags().Bool("dry-run", false, "Show pending migrations without executing them")

	return cmd
}
