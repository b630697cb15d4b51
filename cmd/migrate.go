package main

import (
	"errors"

	"github.com/spf13/cobra"

	"dexrooms/internal/config/configs"
	"dexrooms/internal/db"
)

func migrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the relational store migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := configFrom(cmd)
			if cfg.Store.Driver != configs.StorePostgres {
				return errors.New("migrations require STORE_DRIVER=postgres")
			}
			return db.Migrate(cfg.Psql.Addr.String(), newLogger(cfg))
		},
	}
}
