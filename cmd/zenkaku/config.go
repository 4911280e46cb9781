package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/zenkaku/internal/logging"
)

// bindViper wires a command's flags into a viper instance with the ZENKAKU_*
// env var prefix. There is deliberately no config file: zenkaku keeps no
// persistent configuration.
//
// Precedence (lowest → highest): defaults → ZENKAKU_* env vars → flags
func bindViper(cmd *cobra.Command, v *viper.Viper) error {
	v.SetEnvPrefix("ZENKAKU")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}
	return nil
}

// addLoggingFlags adds the standard logging flags to a command.
func addLoggingFlags(cmd *cobra.Command) {
	cmd.Flags().String("log-format", "auto", "log format: auto|text|json")
	cmd.Flags().String("log-level", "info", "log level: debug|info|warn|error")
}

// setupLogging reads logging flags from viper and configures slog.
func setupLogging(v *viper.Viper) {
	format := logging.ParseFormat(v.GetString("log-format"))
	level := logging.ParseLevel(v.GetString("log-level"))
	logging.Setup(format, level)
}
