package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmynk/shoplist/internal/config"
	"github.com/mmynk/shoplist/pkg/logging"
)

// v holds the process-wide configuration sources.
var v = config.New()

var rootCmd = &cobra.Command{
	Use:           "shoplist",
	Short:         "Shopping lists with category blocks",
	Long:          "Shoplist serves shopping lists over Connect and renders them in the terminal.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .shoplist.yaml)")
	rootCmd.PersistentFlags().String("db", "", "SQLite database path (overrides database.path)")
	_ = v.BindPFlag("database.path", rootCmd.PersistentFlags().Lookup("db"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if err := config.ReadFile(v, cfgFile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	lvl, err := logging.ParseLevel(v.GetString("log.level"))
	if err != nil {
		logging.Setup()
		slog.Warn("Falling back to LOG_LEVEL", "error", err)
		return
	}
	logging.SetupWithLevel(lvl)
}

// loadConfig decodes the configuration after flags and files are applied.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(v)
	if err != nil {
		return config.Config{}, err
	}
	if cfg.Auth.DevSecret {
		slog.Warn("auth.jwt_secret is not set, using the development secret")
	}
	return cfg, nil
}
