package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/hashicorp/go-hclog"

	"github.com/BrianKYildirim/key-value-storage/internal/api"
	"github.com/BrianKYildirim/key-value-storage/internal/command"
	"github.com/BrianKYildirim/key-value-storage/internal/server"
	"github.com/BrianKYildirim/key-value-storage/internal/store"
	"github.com/BrianKYildirim/key-value-storage/pkg/config"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file (environment variables used when empty)")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		hclog.Default().Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "kvserver",
		Level: hclog.LevelFromString(cfg.LogLevel),
	})

	fileStore := store.NewFileStore(cfg.StorePath, logger.Named("store"))
	instrumented := store.NewInstrumentedStore(fileStore)
	interp := command.NewInterpreter(instrumented)

	// The admin API runs beside the data listener and is optional.
	if cfg.AdminAddr != "" {
		adminAPI := api.NewServer(instrumented, cfg.StorePath, logger.Named("api"))
		go func() {
			logger.Info("admin API listening", "addr", cfg.AdminAddr)
			if err := http.ListenAndServe(cfg.AdminAddr, adminAPI.Router()); err != nil {
				logger.Error("admin API stopped", "error", err)
			}
		}()
	}

	srv := server.New(interp, logger.Named("server"))
	if err := srv.Listen(cfg.Addr()); err != nil {
		logger.Error("failed to start server", "error", err)
		os.Exit(1)
	}

	// An interrupt stops the accept loop; running sessions are left to
	// finish on their own as the process exits.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Serve(ctx); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
	logger.Info("server shut down")
}
