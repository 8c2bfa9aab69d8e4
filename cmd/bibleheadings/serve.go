package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/carpenike/bibleheadings/internal/catalog"
	"github.com/carpenike/bibleheadings/internal/config"
	"github.com/carpenike/bibleheadings/internal/handlers"
	"github.com/carpenike/bibleheadings/internal/server"
	"github.com/carpenike/bibleheadings/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  `Builds the catalog once and serves it on 0.0.0.0:<port> until interrupted.`,
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Built exactly once; every request reads this slice.
	books := catalog.Build()
	oldCount, newCount := catalog.CountByTestament(books)
	log.Printf("Catalog ready: %d books (%d Old Testament, %d New Testament)", len(books), oldCount, newCount)

	tc, err := handlers.NewTemplateCache(web.FS)
	if err != nil {
		return fmt.Errorf("parsing templates: %w", err)
	}
	assets, err := handlers.LoadAssets(web.FS)
	if err != nil {
		return fmt.Errorf("loading assets: %w", err)
	}

	srv := server.New(server.Config{
		Addr:            cfg.Addr(),
		AllowAllOrigins: cfg.AllowAllOrigins,
		APIRateLimit:    cfg.APIRateLimit,
		TrustedProxies:  cfg.Proxies(),
	}, books, tc, assets)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	select {
	case err := <-errCh:
		// Bind failures land here and abort startup.
		return err
	case <-ctx.Done():
	}

	log.Printf("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownGrace())
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return <-errCh
}
