package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ekozhina/bridgeway/internal/config"
	"github.com/ekozhina/bridgeway/internal/content"
	"github.com/ekozhina/bridgeway/internal/db"
	"github.com/ekozhina/bridgeway/internal/forms"
	"github.com/ekozhina/bridgeway/internal/news"
	"github.com/ekozhina/bridgeway/internal/server"
	"github.com/ekozhina/bridgeway/internal/site"
	"github.com/ekozhina/bridgeway/internal/watch"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Build the site and serve it with its API",
	Long: `Builds the static site, then serves it together with the news view API,
the feedback endpoint, and (optionally) a live-reload channel that
rebuilds the site when the content document or assets change.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "override the configured port")
	serveCmd.Flags().Bool("allow-all-origins", false, "allow all CORS origins (dev mode)")
	serveCmd.Flags().Bool("no-watch", false, "disable the file watcher and live reload")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if port, _ := cmd.Flags().GetInt("port"); port != 0 {
		cfg.Port = port
	}
	if noWatch, _ := cmd.Flags().GetBool("no-watch"); noWatch {
		cfg.LiveReload = false
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// Shared content pipeline.
	viewer := news.NewViewer(content.NewStore(cfg.ContentSource), cfg.Breakpoints)

	// Build the site up front so the first request is served from fresh state.
	generator := site.NewGenerator(cfg, viewer)
	if n, err := generator.Generate(context.Background()); err != nil {
		return fmt.Errorf("building site: %w", err)
	} else {
		fmt.Printf("Site built: %s (%d files)\n", cfg.OutputDir, n)
	}

	// Form submission storage.
	database, err := db.Open(filepath.Join(cfg.DataDir, "bridgeway.db"))
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	formsStore := forms.NewStore(database)
	forwarder := forms.NewForwarder(cfg.FormEndpoint, formsStore)

	var hub *watch.Hub
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.LiveReload {
		hub = watch.NewHub()
		watcher := watch.New(func() {
			viewer.Reload()
			if _, err := generator.Generate(ctx); err != nil {
				log.Printf("rebuild failed: %v", err)
				return
			}
			log.Printf("site rebuilt, notifying %d clients", hub.ClientCount())
			hub.Broadcast()
		}, watchPaths(cfg)...)
		go func() {
			if err := watcher.Run(ctx); err != nil && ctx.Err() == nil {
				log.Printf("watcher stopped: %v", err)
			}
		}()
	}

	allowAll, _ := cmd.Flags().GetBool("allow-all-origins")
	srv := server.New(server.Config{
		Port:     cfg.Port,
		SiteDir:  cfg.OutputDir,
		AllowAll: allowAll,
	}, viewer, formsStore, forwarder, hub)

	// Graceful shutdown on SIGINT/SIGTERM.
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		log.Printf("received %s, shutting down", sig)
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// watchPaths lists the inputs that should trigger a rebuild. The content
// document is watched only when it is a local file.
func watchPaths(cfg *config.Config) []string {
	var paths []string
	if _, err := os.Stat(cfg.ContentSource); err == nil {
		paths = append(paths, cfg.ContentSource)
	}
	if _, err := os.Stat(cfg.AssetsDir); err == nil {
		paths = append(paths, cfg.AssetsDir)
	}
	return paths
}
