package main

import (
	"github.com/google/uuid"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/luca-patrignani/cee-lo/config"
	"github.com/luca-patrignani/cee-lo/domain/ceelo"
	"github.com/luca-patrignani/cee-lo/ledger"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start an interactive game against the computer",
	Args:  cobra.NoArgs,
	RunE:  runPlay,
}

func init() {
	playCmd.Flags().String("name", "You", "name shown on your statistics")
	if err := v.BindPFlag(config.KeyPlayerName, playCmd.Flags().Lookup("name")); err != nil {
		panic(err)
	}
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	src, err := cfg.NewSource()
	if err != nil {
		return err
	}
	session := uuid.NewString()
	history := ledger.New(session)
	engine := ceelo.NewEngine(ceelo.WithRecorder(history))
	stats := ceelo.NewStatistics()
	log := logger.With("session", history.Session())
	log.Debug("session started", "source", cfg.Source)

	printBanner()
	printMenu()
	for {
		if err := cmd.Context().Err(); err != nil {
			return err
		}
		choice, err := pterm.DefaultInteractiveSelect.
			WithDefaultText("What do you want to do?").
			WithOptions(menuOptions).
			Show()
		if err != nil {
			return err
		}

		switch choice {
		case optShake:
			pterm.Info.Println("Shaking dice. Good luck. Ready to roll?")
			if _, err := engine.Shake(src); err != nil {
				return err
			}
		case optRoll:
			pterm.Println("Rolling dice.")
			res, err := engine.PlayRound(src, stats)
			if err != nil {
				log.Error("round abandoned", "error", err)
				return err
			}
			log.Debug("round played",
				"round", res.Number,
				"winner", res.Winner,
				"user", res.User.Final.String(),
				"computer", res.Computer.Final.String(),
			)
			printRound(res)
			printStatistics(cfg.PlayerName, stats.Snapshot())
		case optHelp:
			printMenu()
		case optHowTo:
			printRules()
		case optQuit:
			if err := history.Verify(); err != nil {
				log.Warn("round history is inconsistent", "error", err)
			}
			log.Debug("session finished", "rounds", stats.Snapshot().Rounds())
			pterm.Info.Println("Thank you for playing. Have a great day!")
			return nil
		}
	}
}
