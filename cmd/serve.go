package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"trendfeed/internal/api"
	"trendfeed/worker"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and background workers",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(GetConfig())
		if err != nil {
			return err
		}
		defer a.Close()

		gin.SetMode(gin.ReleaseMode)
		router := api.NewRouter(a.registry, a.service, api.Options{RateLimit: a.cfg.Server.RateLimit})

		ws := []worker.Worker{&worker.HTTPServer{Addr: a.cfg.Server.Addr, Handler: router}}
		if a.durations.WarmInterval > 0 {
			slog.Info("starting cache warmer", "interval", a.durations.WarmInterval)
			ws = append(ws, &worker.CacheWarmer{Source: a.source, Slugs: a.slugs(), Interval: a.durations.WarmInterval})
		}
		if a.durations.DigestInterval > 0 {
			b, err := a.digestBuilder()
			if err != nil {
				return err
			}
			slog.Info("starting digest builder", "interval", a.durations.DigestInterval, "output_dir", b.OutputDir)
			ws = append(ws, &worker.DigestBuilder{Builder: b, Slugs: a.slugs(), Marks: a.cache, Interval: a.durations.DigestInterval})
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return worker.NewManager(ws...).Start(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
