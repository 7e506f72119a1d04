package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/wudi/headline/config"
	"github.com/wudi/headline/metrics"
	"github.com/wudi/headline/server"

	_ "github.com/wudi/headline/ocr/tesseract"
)

var (
	serveHost string
	servePort string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the headline web UI",
	Long: `Start the headline HTTP server.

The server provides:
  - /            upload and clipboard-paste page
  - /api/extract multipart image upload
  - /api/paste   clipboard paste (base64 JSON)
  - /api/session images submitted during this session
  - /docs        usage documentation
  - /health      health check
  - /metrics     prometheus metrics

Examples:
  headline serve                 # Start on default port 8080
  headline serve --port 3000     # Start on custom port
  headline serve --host 0.0.0.0  # Bind to all interfaces`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("host") {
			cfg.Host = serveHost
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = servePort
		}

		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: logLevel(cfg.LogLevel),
		}))

		metrics.Init()

		srv, err := server.New(server.Config{
			Host:           cfg.Host,
			Port:           cfg.Port,
			SessionLimit:   cfg.SessionLimit,
			MaxUploadBytes: int64(cfg.MaxUploadMB) << 20,
			MaxConns:       cfg.MaxConns,
			Extractor:      cfg.ExtractorConfig(),
			Logger:         logger,
		})
		if err != nil {
			return err
		}
		if err := srv.Start(ctx); err != nil {
			return err
		}

		<-ctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "127.0.0.1", "address to bind to")
	serveCmd.Flags().StringVar(&servePort, "port", "8080", "port to listen on")
}

func logLevel(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
