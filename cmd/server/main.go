package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/yukikurage/piyuclean-api/internal/config"
	"github.com/yukikurage/piyuclean-api/internal/database"
	"gorm.io/gorm"
)

func main() {
	root := &cobra.Command{
		Use:           "piyuclean",
		Short:         "Classroom cleaning duty API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newServeCommand(),
		newMigrateCommand(),
		newSeedCommand(),
		newSweepCommand(),
	)

	if err := root.Execute(); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}

// openDatabase connects with cfg and brings the schema up to date
func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if _, err := openDatabase(cfg); err != nil {
				return err
			}
			log.Println("Migrations completed")
			return nil
		},
	}
}

func newSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Fill empty tables with demo data",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			db, err := openDatabase(cfg)
			if err != nil {
				return err
			}
			if err := database.Seed(db); err != nil {
				return err
			}
			log.Println("Seed completed")
			return nil
		},
	}
}
