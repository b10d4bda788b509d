package main

import (
	zlog "github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/YuminosukeSato/descent/pkg/errors"
	"github.com/YuminosukeSato/descent/pkg/log"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "descent",
	Short: "Train linear models with gradient descent",
	Long: `descent trains linear and logistic regression models with pluggable
gradient-based optimizers and reports evaluation metrics.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetupLogger(logLevel)

		// 収束や数値安定性の警告を構造化ログとして出力する
		errors.EnableZerologWarnings(zlog.Logger)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
}
