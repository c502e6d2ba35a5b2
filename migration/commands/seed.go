package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wheelshare/schema/store"
)

func SeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert demo catalog data",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := getDB()
			if err != nil {
				return err
			}

			log, err := zap.NewProduction()
			if err != nil {
				return fmt.Errorf("failed to create logger: %v", err)
			}
			defer log.Sync()

			s := store.New(db, log)
			if err := s.Seed(cmd.Context()); err != nil {
				return fmt.Errorf("failed to seed database: %v", err)
			}

			fmt.Println("Database seeded")
			return nil
		},
	}
}
