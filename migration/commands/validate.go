package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wheelshare/schema/migration"
)

func ValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate all registered migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := migration.Validate(); err != nil {
				return fmt.Errorf("validation failed: %v", err)
			}

			fmt.Printf("All %d migration(s) are valid\n", len(migration.Registered()))
			return nil
		},
	}
}
