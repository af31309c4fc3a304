// Package main provides the CLI entrypoint for the library lending service.
// It wires subcommands (demo, fine), loads configuration, and initializes logging.
package main

import (
	"context"
	"flag"
	"library/internal/config"
	"library/pkg/fine"
	"library/pkg/logger"
	"library/pkg/notify"
	"log"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// newFinePolicy selects a fine policy variant by name, using the rates from
// configuration. Unknown names fall back to the standard policy.
func newFinePolicy(cfg *config.Config, name string) fine.Policy {
	switch name {
	case "discounted":
		return fine.NewDiscounted(cfg.Fine.DiscountedRate)
	case "waived":
		return fine.Waived{}
	default:
		return fine.NewStandard(cfg.Fine.StandardRate)
	}
}

// newChannel selects a notification channel variant by name. Unknown names
// fall back to the console channel.
func newChannel(cfg *config.Config, name string) notify.Channel {
	switch name {
	case "email":
		return notify.NewEmail(cfg.Notification.EmailFrom)
	case "sms":
		return notify.NewSMS()
	default:
		return notify.NewConsole(os.Stdout)
	}
}

// main sets up the root Cobra command, loads configuration and logging, and
// registers subcommands before executing the CLI.
func main() {
	rootCmd := &cobra.Command{
		Use: "library",
	}

	// there is no way to access flags before command execution in cobra.
	// configPath here is parsed using the standard flags package.
	// following line is just added to prevent errors when Cobra is parsing the flags.
	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")

	configPath := flag.String("c", "config.yml", "The config file path")
	flag.Parse()

	log.Println("loading config ...")
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("could not load config file", err)
	}

	logger.Setup(cfg.Environment)

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		demoCommand(cfg),
		fineCommand(cfg),
	)

	err = rootCmd.Execute()
	_ = logger.Get(ctx).Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}
