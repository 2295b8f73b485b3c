package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tiltwelve/tiltwelve/internal/config"
	"github.com/tiltwelve/tiltwelve/internal/logging"
	"github.com/tiltwelve/tiltwelve/internal/store"
)

var rootCmd = &cobra.Command{
	Use:          "tiltwelve",
	Short:        "Multiplication table practice for kids",
	Long:         "TilTwelve: a terminal app that helps children learn the multiplication tables up to 12.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides TILTWELVE_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().Bool("ephemeral", false, "Keep all data in memory and discard it on exit")

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(tableCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// env is what every command needs: configuration, a logger and storage.
type env struct {
	cfg   *config.Config
	log   *logging.Logger
	kv    store.KV
	close func()
}

// setup loads configuration, opens the log file and the key-value store.
// The caller must call close when done.
func setup(cmd *cobra.Command) (*env, error) {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}

	logPath := cfg.Log.File
	if logPath == "" {
		if logPath, err = logging.DefaultPath(); err != nil {
			return nil, fmt.Errorf("resolve log path: %w", err)
		}
	}
	log, err := logging.New(cfg.Log.Level, logPath)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}

	e := &env{cfg: cfg, log: log, close: log.Sync}

	if ephemeral, _ := cmd.Flags().GetBool("ephemeral"); ephemeral {
		log.Info("using in-memory store")
		e.kv = store.NewMemory()
		return e, nil
	}

	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(cmd.Context(), dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	log.Info("store opened", "path", dbPath)

	e.kv = st.KV()
	e.close = func() {
		if err := st.Close(); err != nil {
			log.Warn("close store", "error", err)
		}
		log.Sync()
	}
	return e, nil
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then db_path from config, then TILTWELVE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}
