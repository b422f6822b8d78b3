package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/orgainseconsulting/Orgainse-website-sub001/internal/clock"
	"github.com/orgainseconsulting/Orgainse-website-sub001/internal/config"
	"github.com/orgainseconsulting/Orgainse-website-sub001/internal/operator"
	"github.com/orgainseconsulting/Orgainse-website-sub001/internal/pkg/logger"
	"github.com/orgainseconsulting/Orgainse-website-sub001/internal/store"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "path to the YAML config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.LoadFromEnv(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	// Keep the menu readable: only warnings and errors reach stderr.
	logger.SetLevel(logger.WARN)

	ctx := context.Background()

	connectCtx, cancel := context.WithTimeout(ctx, cfg.Storage.Timeout())
	st, err := store.New(connectCtx, cfg.Storage)
	cancel()
	if err != nil {
		return fmt.Errorf("connect to store: %w", err)
	}
	defer st.Close(ctx)

	opts := operator.Options{ExportDir: cfg.Export.Dir}
	if cfg.Export.S3Bucket != "" {
		up, err := operator.NewS3Uploader(ctx, cfg.Export.S3Bucket, cfg.Export.S3Region)
		if err != nil {
			return err
		}
		opts.Uploader = up
	}

	fmt.Printf("Connected to %s (database %s)\n", cfg.Storage.Type, cfg.Storage.Database)
	return operator.New(st, clock.System{}, opts).Run(ctx, os.Stdin, os.Stdout)
}
