package main

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/yukikurage/piyuclean-api/internal/config"
	"github.com/yukikurage/piyuclean-api/internal/services"
)

func newSweepCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sweep-overdue",
		Short: "Mark open assignments from past days as overdue",
		Long: "Moves every assigned or pending assignment dated before today to overdue. " +
			"Meant to run once a day from cron.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			db, err := openDatabase(cfg)
			if err != nil {
				return err
			}

			svc := services.New(db, nil)
			swept, err := svc.Assignments.SweepOverdue(cmd.Context())
			if err != nil {
				return err
			}
			log.Printf("Marked %d assignment(s) overdue", swept)
			return nil
		},
	}
}
