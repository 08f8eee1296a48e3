// Package main provides the primdb CLI entry point.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"primdb/internal/config"
	"primdb/internal/engine"
	"primdb/internal/storage"
	"primdb/internal/storage/filestore"
	"primdb/internal/storage/memstore"
	"primdb/internal/storage/sqlitestore"
)

// Version is set at build time via ldflags
var Version = "dev"

var log = logrus.New()

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "primdb",
	Short: "File-persisted tabular data store with a pseudo-SQL command language",
	Long: `primdb is a minimal tabular data store driven by line-oriented
commands (create_table, insert, select, update, delete, ...).

Tables live in plain JSON files by default; a SQLite-backed store is
available via the backend setting. Run "primdb repl" for an interactive
session or "primdb exec" for one-shot commands.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Version = Version

	// .env is optional and only seeds the environment; real resolution
	// happens in config.Load.
	_ = godotenv.Load()
}

// openGateway builds the configured persistence gateway. The returned
// closer is a no-op for gateways without resources to release.
func openGateway(cfg *config.Config) (storage.Gateway, func(), error) {
	switch cfg.Backend {
	case config.BackendMemory:
		return memstore.New(), func() {}, nil
	case config.BackendSQLite:
		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("create data dir: %w", err)
		}
		gw, err := sqlitestore.New(filepath.Join(cfg.DataDir, "primdb.db"))
		if err != nil {
			return nil, nil, err
		}
		closer := func() {
			if c, ok := gw.(io.Closer); ok {
				_ = c.Close()
			}
		}
		return gw, closer, nil
	default:
		gw, err := filestore.New(cfg.DataDir)
		if err != nil {
			return nil, nil, err
		}
		return gw, func() {}, nil
	}
}

// newSession wires config, logging and the gateway into a ready session.
func newSession(confirm engine.ConfirmFunc) (*engine.Session, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	log.SetOutput(os.Stderr)
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.WarnLevel
	}
	log.SetLevel(level)

	gw, closer, err := openGateway(cfg)
	if err != nil {
		return nil, nil, err
	}
	return engine.NewSession(gw, confirm, log), closer, nil
}
