// ABOUTME: CLI command for running the Telegram bot.
// ABOUTME: Long-polling daemon with structured logging and signal shutdown.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/harperreed/waterlog/internal/bot"
	"github.com/harperreed/waterlog/internal/config"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the Telegram bot",
	Long: `Run the Telegram front-end as a long-polling daemon.

The bot token is read from the ` + config.EnvBotToken + ` environment
variable (a .env file in the working directory is honored). Each sender
gets their own profile: first contact creates a user with the configured
default goal and timezone.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// .env is optional; the environment may already carry the token.
		_ = godotenv.Load()

		token := cfg.BotToken()
		if token == "" {
			return fmt.Errorf("%s is not set", config.EnvBotToken)
		}

		level, err := log.ParseLevel(cfg.GetLogLevel())
		if err != nil {
			level = log.InfoLevel
		}
		logger := log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Level:           level,
			Prefix:          "waterlog",
		})

		b, err := bot.New(token, svc, logger)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if err := b.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
