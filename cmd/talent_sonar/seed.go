package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/andras/talent-sonar/internal/embedding"
	"github.com/andras/talent-sonar/internal/store"
)

var seedInit bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the demo dataset into PostgreSQL",
	Long:  `Insert the demo candidates and jobs into the configured PostgreSQL database. Use --init to create the tables first.`,
	RunE:  runSeed,
}

func init() {
	seedCmd.Flags().BoolVar(&seedInit, "init", false, "Create the schema before seeding")
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, _ []string) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		return errors.New("seed requires DATABASE_URL or a database_url config entry")
	}

	ctx := cmd.Context()
	pg, err := store.ConnectPostgres(ctx, cfg.DatabaseURL, embedding.NewHashProvider())
	if err != nil {
		return err
	}
	defer pg.Close()

	if seedInit {
		if err := pg.InitSchema(ctx); err != nil {
			return err
		}
	}
	if err := store.SeedDemoData(ctx, pg); err != nil {
		return err
	}

	cmd.Println("Demo data loaded.")
	return nil
}
