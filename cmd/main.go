package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/luca-patrignani/cee-lo/config"
)

var (
	configFile string
	v          = viper.New()
	cfg        *config.Config
	logger     = slog.New(pterm.NewSlogHandler(&pterm.DefaultLogger))
)

var rootCmd = &cobra.Command{
	Use:   "ceelo",
	Short: "Play Cee-Lo (4-5-6) against the computer",
	Long: `Cee-Lo is a dice game played with three six-sided dice.
Roll 4-5-6 to win outright, three of a kind to beat any pair,
or a pair and a point to compare against the computer's point.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(v, configFile, ".env")
		if err != nil {
			return err
		}
		logger = newLogger(cfg.LogLevel)
		return nil
	},
	RunE: runPlay,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (default ./ceelo.yaml)")
	flags.String("source", config.SourceMath, "dice source: math or kyber")
	flags.Int64("seed", 0, "seed for reproducible dice, 0 picks a random one")
	flags.String("log-level", "info", "log level: trace, debug, info, warn or error")

	for key, flag := range map[string]string{
		config.KeySource:   "source",
		config.KeySeed:     "seed",
		config.KeyLogLevel: "log-level",
	} {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(err)
		}
	}
}

// newLogger routes slog records through pterm's logger at the given level.
func newLogger(level string) *slog.Logger {
	return slog.New(pterm.NewSlogHandler(pterm.DefaultLogger.WithLevel(ptermLevel(level))))
}

func ptermLevel(level string) pterm.LogLevel {
	switch strings.ToLower(level) {
	case "trace":
		return pterm.LogLevelTrace
	case "debug":
		return pterm.LogLevelDebug
	case "warn":
		return pterm.LogLevelWarn
	case "error":
		return pterm.LogLevelError
	default:
		return pterm.LogLevelInfo
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logger.Error("ceelo failed", "error", err)
		stop()
		os.Exit(1)
	}
}
