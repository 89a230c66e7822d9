package main

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/fleetforge/migration-compass/internal/config"
	"github.com/fleetforge/migration-compass/internal/store"
	"github.com/fleetforge/migration-compass/pkg/migrations"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Migrate the db",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := initialize()
		if err != nil {
			return err
		}
		defer func() { _ = zap.S().Sync() }()

		zap.S().Named("migrate").Info("initializing data store")
		db, err := store.InitDB(cfg)
		if err != nil {
			zap.S().Named("migrate").Fatalf("initializing data store: %v", err)
		}

		s := store.NewStore(db)
		defer s.Close()

		if err := migrateStore(cmd.Context(), cfg, db, s); err != nil {
			zap.S().Named("migrate").Fatalf("running migration: %v", err)
		}

		zap.S().Named("migrate").Info("db migrated")
		return nil
	},
}

// migrateStore applies the goose migration folder when one is
// configured; otherwise each store runs its own schema migration, which
// is the path the sqlite dev setup takes.
func migrateStore(ctx context.Context, cfg *config.Config, db *gorm.DB, s store.Store) error {
	if cfg.Service.MigrationFolder != "" {
		return migrations.MigrateStore(db, cfg.Service.MigrationFolder)
	}

	if err := s.Inventory().InitialMigration(ctx); err != nil {
		return err
	}
	return s.Plan().InitialMigration(ctx)
}
