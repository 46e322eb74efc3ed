// Package cli implements the thinkflow CLI commands.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/thinkflow/thinkflow/internal/agent"
	"github.com/thinkflow/thinkflow/internal/config"
	"github.com/thinkflow/thinkflow/internal/llm"
	"github.com/thinkflow/thinkflow/internal/logging"
	"github.com/thinkflow/thinkflow/internal/store"
)

var (
	dbPath  string
	verbose bool
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "thinkflow",
	Short: "Turn messy notes into an action plan",
	Long: "A thinking partner CLI: dump unstructured notes (plus reference documents) " +
		"and get back a strategy diagram, a prioritized action list, and an executive summary.",
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Database path (default: $THINKFLOW_DB or ~/.thinkflow/sessions.db)")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable diagnostic logging on stderr")
}

func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		exitErr("load config", err)
	}
	if dbPath != "" {
		cfg.DBPath = dbPath
	}
	return cfg
}

func openStore(cfg *config.Config) *store.SQLiteStore {
	s, err := store.NewSQLiteStore(cfg.ResolveDBPath())
	if err != nil {
		exitErr("open store", err)
	}
	return s
}

func newLogger() *zap.Logger {
	return logging.New(verbose)
}

func newAgent(cfg *config.Config, log *zap.Logger) *agent.Agent {
	gen, err := llm.New(llm.Config{
		Provider: cfg.Provider,
		APIKey:   cfg.APIKey(),
		Model:    cfg.Model,
		BaseURL:  cfg.BaseURL,
	})
	if err != nil {
		exitErr("configure generator", err)
	}
	opts := []agent.Option{agent.WithLogger(log)}
	if cfg.CallTimeoutSec > 0 {
		opts = append(opts, agent.WithCallTimeout(time.Duration(cfg.CallTimeoutSec)*time.Second))
	}
	return agent.New(gen, opts...)
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}

func warn(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "warning: "+format+"\n", args...)
}
