package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Mayi21/tool-sites/internal/adapters/libsql"
	"github.com/Mayi21/tool-sites/internal/database"
	"github.com/Mayi21/tool-sites/internal/infrastructure/config"
	"github.com/Mayi21/tool-sites/internal/tools"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-tool usage counters",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
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
	usage := libsql.NewUsageRepository(db)

	total, err := usage.Total(ctx)
	if err != nil {
		return err
	}
	top, err := usage.TopN(ctx, len(tools.NewRegistry().All()))
	if err != nil {
		return err
	}

	fmt.Printf("total invocations: %d\n", total)
	for _, u := range top {
		fmt.Printf("%-12s %6d  last used %s\n", u.ToolName, u.UsageCount, u.LastUsed.Local().Format("2006-01-02 15:04"))
	}
	return nil
}
