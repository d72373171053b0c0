package cmd

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/abhisek/fracdiv/internal/config"
	"github.com/abhisek/fracdiv/internal/logging"
	"github.com/abhisek/fracdiv/internal/store"
)

const appName = "fracdiv"

// cfg is loaded once before any command runs.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "fracdiv",
	Short: "Terminal tutor for dividing fractions",
	Long: `fracdiv teaches fraction division in two steps: dividing fractions that share
a denominator, then flipping the divisor and multiplying.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded

		logger := logging.New(appName, cfg.Env, cfg.LogLevel, os.Stderr)
		cmd.SetContext(logging.IntoContext(cmd.Context(), logger))
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides FRACDIV_DB)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using the --db flag (highest
// priority), then FRACDIV_DB, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg != nil && cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

// openStore opens the database selected by resolveDBPath.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, err
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, err
	}
	log := logger(cmd)
	log.Debug().Str("db", dbPath).Msg("store opened")
	return st, nil
}

func logger(cmd *cobra.Command) zerolog.Logger {
	return logging.FromContext(cmd.Context())
}
