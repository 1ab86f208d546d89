package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/bookmart/config"
	"github.com/shashiranjanraj/bookmart/database/schema"
	"github.com/shashiranjanraj/bookmart/database/seeders"
	"github.com/shashiranjanraj/bookmart/pkg/cache"
	"github.com/shashiranjanraj/bookmart/pkg/database"
	"github.com/shashiranjanraj/bookmart/pkg/logger"
)

// bootDB loads config and opens the database connection. Redis is optional;
// a miss just disables the catalogue cache.
func bootDB() (*gorm.DB, error) {
	if err := config.Load(); err != nil {
		return nil, err
	}
	if err := cache.Connect(); err != nil {
		logger.Warn("cache unavailable, continuing without it", "err", err)
	}
	return database.Connect()
}

// bookmart migrate
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Open the store at the current schema version (create or rebuild as needed)",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := bootDB()
		if err != nil {
			return err
		}
		fmt.Printf("Ensuring schema at version %d…\n", schema.Version)
		return schema.New(db).Open(schema.Version)
	},
}

// bookmart migrate:fresh
var migrateFreshCmd = &cobra.Command{
	Use:   "migrate:fresh",
	Short: "Drop and recreate all tables, then reseed (all rows are lost)",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := bootDB()
		if err != nil {
			return err
		}
		fmt.Println("Rebuilding store from scratch…")
		return schema.New(db).Fresh(schema.Version)
	},
}

// bookmart migrate:status
var migrateStatusCmd = &cobra.Command{
	Use:   "migrate:status",
	Short: "Show the stored schema version and table presence",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := bootDB()
		if err != nil {
			return err
		}
		return schema.New(db).Status()
	},
}

// bookmart seed
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Run all database seeders against an empty store",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := bootDB()
		if err != nil {
			return err
		}
		fmt.Println("Running seeders…")
		return seeders.RunAll(db)
	},
}
