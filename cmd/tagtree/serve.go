package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tagtree-dev/tagtree/internal/config"
	"github.com/tagtree-dev/tagtree/internal/preview"
	"github.com/tagtree-dev/tagtree/pkg/server"
)

func serveCmd() *cobra.Command {
	var (
		addr  string
		watch bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Preview the document locally",
		Long: `Serve the rendered document on a local HTTP server.

The document is re-rendered on every request. With --watch (the default)
connected browsers reload automatically when the definition file changes.

Examples:
  tagtree serve
  tagtree serve --addr 0.0.0.0:8080 --watch=false`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(".")
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.ServerAddress()
			}

			logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

			source := server.SourceFunc(func(ctx context.Context) (string, error) {
				return renderDocument(cfg.Document, cfg.Separator)
			})

			var reload *preview.ReloadServer
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if watch {
				reload = preview.NewReloadServer()
				watcher := preview.NewWatcher(preview.WatcherConfig{
					Paths: []string{cfg.Document},
				})
				watcher.OnChange(func(path string) {
					logger.Info("document changed", "path", path)
					if _, err := renderDocument(cfg.Document, cfg.Separator); err != nil {
						reload.NotifyError(err.Error())
						return
					}
					reload.ClearError()
					reload.NotifyReload()
				})
				go watcher.Start(ctx)
				defer watcher.Stop()
			}

			printBanner()
			info("serving %s on http://%s", cfg.Document, addr)

			s := server.New(source, server.Config{
				Addr:   addr,
				Logger: logger,
				Reload: reload,
			})
			if err := s.Start(ctx); !server.IsCleanShutdown(err) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from tagtree.json)")
	cmd.Flags().BoolVar(&watch, "watch", true, "Reload browsers when the document changes")

	return cmd
}
