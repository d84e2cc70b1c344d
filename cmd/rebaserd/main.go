// Command rebaserd is the service entry point that owns a cas.Store and
// a config.Config and would, in a full deployment, drive an RPC tier
// that accepts rebase requests against snapshot graphs. That RPC tier is
// out of scope here; rebaserd's job is to prove the wiring compiles and
// runs: load config, construct its collaborators, and shut down cleanly
// on signal.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/arlojs/wsgraph/cas"
	"github.com/arlojs/wsgraph/config"
)

var version = "dev"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "rebaserd: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("rebaserd", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		configPath = fs.String("config", "", "path to a JSONC config file (empty to use defaults)")
		logLevel   = fs.String("log-level", "info", "log level: error|warn|info|debug")
		showVer    = fs.Bool("version", false, "print version and exit")
	)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: rebaserd [options]\n\nOptions:\n")
		fs.SetOutput(os.Stderr)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		fs.Usage()
		return fmt.Errorf("parse flags: %w", err)
	}

	if *showVer {
		fmt.Printf("rebaserd %s\n", version)
		return nil
	}

	logger, err := setupLogger(*logLevel)
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}

	var cfg *config.Config
	if *configPath != "" {
		cfg, err = config.Load(*configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
	} else {
		cfg = config.Default()
	}

	logger.Info("starting rebaserd",
		slog.String("version", version),
		slog.String("cas_address", cfg.CAS.Address),
		slog.String("secret_encryption_key_path", cfg.SecretEncryptionKeyPath),
	)

	store, err := buildStore(cfg)
	if err != nil {
		return fmt.Errorf("build content store: %w", err)
	}
	logger.Debug("content store ready")
	_ = store // held by the (out-of-scope) RPC tier in a full deployment

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	logger.Info("rebaserd ready")

	select {
	case sig := <-sigCh:
		logger.Info("received signal, shutting down", slog.String("signal", sig.String()))
	case <-time.After(0):
		// No RPC tier is wired up to keep this process alive; in a full
		// deployment the select above blocks on the RPC server's error
		// channel instead of an immediate timeout.
	}

	logger.Info("rebaserd shutdown complete")
	return nil
}

func buildStore(cfg *config.Config) (*cas.MemStore, error) {
	if cfg.CAS.Address != "" {
		// A real deployment would dial cfg.CAS.Address here and return a
		// backend-specific cas.Store implementation. Only the in-memory
		// reference implementation is wired up in this tree.
		return nil, fmt.Errorf("cas backend %q not implemented; leave -config unset or cas.address empty for the in-memory store", cfg.CAS.Address)
	}
	return cas.NewMemStore(), nil
}

func setupLogger(level string) (*slog.Logger, error) {
	var slogLevel slog.Level
	switch level {
	case "error":
		slogLevel = slog.LevelError
	case "warn":
		slogLevel = slog.LevelWarn
	case "info":
		slogLevel = slog.LevelInfo
	case "debug":
		slogLevel = slog.LevelDebug
	default:
		return nil, fmt.Errorf("invalid log level: %q", level)
	}

	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level:     slogLevel,
		AddSource: true,
	})
	return slog.New(handler), nil
}
