package main

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/google/uuid"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/luca-patrignani/cee-lo/config"
	"github.com/luca-patrignani/cee-lo/domain/ceelo"
	"github.com/luca-patrignani/cee-lo/domain/dice"
	"github.com/luca-patrignani/cee-lo/ledger"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Play many rounds without interaction and report the statistics",
	Args:  cobra.NoArgs,
	RunE:  runSimulate,
}

func init() {
	simulateCmd.Flags().Int("rounds", 1000, "number of rounds to play")
	simulateCmd.Flags().Int("workers", 4, "number of rounds played in parallel")
	for key, flag := range map[string]string{
		config.KeyRounds:  "rounds",
		config.KeyWorkers: "workers",
	} {
		if err := v.BindPFlag(key, simulateCmd.Flags().Lookup(flag)); err != nil {
			panic(err)
		}
	}
	rootCmd.AddCommand(simulateCmd)
}

func runSimulate(cmd *cobra.Command, args []string) error {
	src, err := cfg.NewSource()
	if err != nil {
		return err
	}
	session := uuid.NewString()
	history := ledger.New(session)
	engine := ceelo.NewEngine(ceelo.WithRecorder(history))
	stats := ceelo.NewStatistics()
	log := logger.With("session", history.Session())

	bar, err := pterm.DefaultProgressbar.WithTotal(cfg.Rounds).WithTitle("Rolling").Start()
	if err != nil {
		return err
	}
	var mu sync.Mutex
	err = simulate(cmd.Context(), engine, src, stats, cfg.Rounds, cfg.Workers, func() {
		mu.Lock()
		defer mu.Unlock()
		bar.Increment()
	})
	if _, stopErr := bar.Stop(); stopErr != nil {
		log.Warn("progress bar", "error", stopErr)
	}
	if err != nil {
		return err
	}
	if err := history.Verify(); err != nil {
		return fmt.Errorf("round history: %w", err)
	}

	snap := stats.Snapshot()
	pterm.DefaultSection.Println("Session " + history.Session())
	log.Info("simulation finished", "rounds", snap.Rounds(), "workers", cfg.Workers, "source", cfg.Source)
	return pterm.DefaultTable.WithHasHeader().WithData(summaryTable(snap, tally(history.Rounds()))).Render()
}

// simulate plays rounds spread over workers goroutines sharing src and stats.
// done, if set, is called after every completed round.
func simulate(ctx context.Context, engine *ceelo.Engine, src dice.Source, stats *ceelo.Statistics, rounds, workers int, done func()) error {
	if workers < 1 {
		workers = 1
	}
	g, ctx := errgroup.WithContext(ctx)
	for w := range workers {
		share := rounds / workers
		if w < rounds%workers {
			share++
		}
		g.Go(func() error {
			for range share {
				if err := ctx.Err(); err != nil {
					return err
				}
				if _, err := engine.PlayRound(src, stats); err != nil {
					return err
				}
				if done != nil {
					done()
				}
			}
			return nil
		})
	}
	return g.Wait()
}

// kindCount counts final rolls per kind for each party.
type kindCount map[dice.Kind][2]int

func tally(blocks []ledger.Block) kindCount {
	counts := kindCount{}
	for _, b := range blocks {
		user := dice.Outcome{Valid: b.UserRank > 0, Rank: b.UserRank}.Kind()
		computer := dice.Outcome{Valid: b.ComputerRank > 0, Rank: b.ComputerRank}.Kind()

		c := counts[user]
		c[0]++
		counts[user] = c

		c = counts[computer]
		c[1]++
		counts[computer] = c
	}
	return counts
}

func summaryTable(s ceelo.Snapshot, counts kindCount) pterm.TableData {
	c := s.Computer()
	data := pterm.TableData{
		{"", "You", "Computer"},
		{"Wins", strconv.Itoa(s.Wins), strconv.Itoa(c.Wins)},
		{"Losses", strconv.Itoa(s.Losses), strconv.Itoa(c.Losses)},
		{"Ties", strconv.Itoa(s.Ties), strconv.Itoa(c.Ties)},
	}
	for _, k := range []dice.Kind{dice.KindFourFiveSix, dice.KindTriple, dice.KindPoint, dice.KindInvalid} {
		n := counts[k]
		data = append(data, []string{"Final " + string(k), strconv.Itoa(n[0]), strconv.Itoa(n[1])})
	}
	return data
}
