package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/orgainseconsulting/Orgainse-website-sub001/internal/api"
	"github.com/orgainseconsulting/Orgainse-website-sub001/internal/clock"
	"github.com/orgainseconsulting/Orgainse-website-sub001/internal/config"
	"github.com/orgainseconsulting/Orgainse-website-sub001/internal/ids"
	"github.com/orgainseconsulting/Orgainse-website-sub001/internal/pkg/logger"
	"github.com/orgainseconsulting/Orgainse-website-sub001/internal/service/leads"
	"github.com/orgainseconsulting/Orgainse-website-sub001/internal/store"
)

// checkPortAvailable verifies that the target port is not already in use.
func checkPortAvailable(host string, port int) error {
	addr := fmt.Sprintf("%s:%d", host, port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("port %d is already in use (addr %s): %w", port, addr, err)
	}
	return ln.Close()
}

func fatal(msg string, err error) {
	logger.Error(msg, "error", err)
	os.Exit(1)
}

func main() {
	configPath := flag.String("config", "config/config.yaml", "path to the YAML config file")
	flag.Parse()

	cfg, err := config.LoadFromEnv(*configPath)
	if err != nil {
		fatal("failed to load config", err)
	}
	logger.SetLevel(logger.ParseLevel(cfg.Log.Level))
	logger.SetRedactPII(!cfg.Log.DisableRedaction)

	host := cfg.Server.GetHost()
	if err := checkPortAvailable(host, cfg.Server.Port); err != nil {
		fatal("cannot bind", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Storage.Timeout())
	st, err := store.New(ctx, cfg.Storage)
	cancel()
	if err != nil {
		fatal("failed to open store", err)
	}
	logger.Info("store ready", "type", cfg.Storage.Type, "database", cfg.Storage.Database)

	clk := clock.System{}
	svc := leads.NewService(st, clk, ids.UUID{})
	server := api.NewServer(cfg.Server, svc, clk)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		addr := fmt.Sprintf("%s:%d", host, cfg.Server.Port)
		logger.Info("starting server", "addr", addr)
		if err := server.ListenAndServe(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			fatal("server error", err)
		}
	}()

	<-done
	logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Warn("server shutdown error", "error", err)
	}
	if err := st.Close(shutdownCtx); err != nil {
		logger.Warn("store close error", "error", err)
	}

	logger.Info("server stopped")
}
