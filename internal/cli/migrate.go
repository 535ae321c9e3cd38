package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Mayi21/tool-sites/internal/database"
	"github.com/Mayi21/tool-sites/internal/infrastructure/config"
	"github.com/Mayi21/tool-sites/internal/migrate"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE:  runMigrate,
}

var migrateStatus bool

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.Flags().BoolVar(&migrateStatus, "status", false, "Show the current schema version without migrating")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadServer()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	ctx := context.Background()
	if migrateStatus {
		if err := migrate.EnsureMigrationsTable(ctx, db); err != nil {
			return err
		}
		version, err := migrate.CurrentVersion(ctx, db)
		if err != nil {
			return err
		}
		fmt.Printf("schema version: %d of %d\n", version, len(migrate.All))
		return nil
	}

	if err := migrate.RunAll(ctx, db); err != nil {
		return err
	}
	fmt.Println("migrations applied")
	return nil
}
