package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Mayi21/tool-sites/internal/adapters/libsql"
	otelexporter "github.com/Mayi21/tool-sites/internal/adapters/otel"
	"github.com/Mayi21/tool-sites/internal/cache"
	"github.com/Mayi21/tool-sites/internal/database"
	"github.com/Mayi21/tool-sites/internal/infrastructure/config"
	"github.com/Mayi21/tool-sites/internal/migrate"
	"github.com/Mayi21/tool-sites/internal/ports"
	"github.com/Mayi21/tool-sites/internal/tools"
	"github.com/Mayi21/tool-sites/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the tool server",
	Long: `Start the HTTP server.

Examples:
  tool-sites serve              # Start on default port 8080
  tool-sites serve --port 3000  # Start on port 3000`,
	RunE: runServe,
}

var servePort int

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to listen on (overrides TOOLSITES_PORT)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadServer()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	port := cfg.Port
	if servePort != 0 {
		port = servePort
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nShutting down...")
		cancel()
	}()

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := migrate.RunAll(ctx, db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	var metrics ports.MetricsExporter
	if exp, err := otelexporter.NewExporter(ctx, otelexporter.LoadConfig()); err != nil {
		log.Printf("metrics disabled: %v", err)
		metrics = otelexporter.NewNoOpExporter()
	} else {
		metrics = exp
	}
	defer metrics.Close(context.Background())

	repos := libsql.NewRepositories(db)
	server := web.NewServer(
		strconv.Itoa(port),
		tools.NewRegistry(),
		cache.New(cfg.CacheTTL),
		repos.Preferences,
		repos.History,
		repos.Usage,
		metrics,
	)
	return server.Start(ctx)
}
