package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wheelshare/schema/migration"
	"github.com/wheelshare/schema/migration/driver"
)

func StatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show status of all migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := getDB()
			if err != nil {
				return err
			}

			migrator := driver.NewMigrator(db)
			applied, err := migrator.AppliedVersions()
			if err != nil {
				return fmt.Errorf("failed to get applied migrations: %v", err)
			}

			fmt.Printf("%-16s  %-40s  %-8s\n", "Version", "Name", "Status")
			for _, m := range migration.Registered() {
				status := "Pending"
				if applied[m.Version] {
					status = "Applied"
				}
				fmt.Printf("%-16s  %-40s  %-8s\n", m.Version, m.Name, status)
			}

			return nil
		},
	}
}
