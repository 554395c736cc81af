package main

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luca-patrignani/cee-lo/domain/ceelo"
	"github.com/luca-patrignani/cee-lo/domain/dice"
	"github.com/luca-patrignani/cee-lo/ledger"
)

func TestSimulateCountsEveryRound(t *testing.T) {
	const rounds = 301
	history := ledger.New("simulate-test")
	engine := ceelo.NewEngine(ceelo.WithRecorder(history))
	stats := ceelo.NewStatistics()

	var calls atomic.Int64
	err := simulate(context.Background(), engine, dice.NewMathSource(42), stats, rounds, 4, func() {
		calls.Add(1)
	})
	require.NoError(t, err)

	assert.Equal(t, rounds, stats.Snapshot().Rounds())
	assert.EqualValues(t, rounds, calls.Load())
	assert.Equal(t, rounds+1, history.Len())
	assert.NoError(t, history.Verify())

	counts := tally(history.Rounds())
	total := [2]int{}
	for _, n := range counts {
		total[0] += n[0]
		total[1] += n[1]
	}
	assert.Equal(t, [2]int{rounds, rounds}, total)
}

func TestSimulateMoreWorkersThanRounds(t *testing.T) {
	stats := ceelo.NewStatistics()
	err := simulate(context.Background(), ceelo.NewEngine(), dice.NewKyberSource(7), stats, 3, 8, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Snapshot().Rounds())
}

func TestSimulateStopsOnExhaustedSource(t *testing.T) {
	src := dice.SequenceOf(dice.Roll{4, 5, 6}, dice.Roll{1, 1, 2})
	stats := ceelo.NewStatistics()

	err := simulate(context.Background(), ceelo.NewEngine(), src, stats, 5, 1, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, dice.ErrSourceExhausted))
	assert.Equal(t, 1, stats.Snapshot().Rounds())
}

func TestSimulateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	stats := ceelo.NewStatistics()

	err := simulate(ctx, ceelo.NewEngine(), dice.NewMathSource(1), stats, 10, 2, nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, stats.Snapshot().Rounds())
}

func TestSummaryTable(t *testing.T) {
	data := summaryTable(ceelo.Snapshot{Wins: 2, Losses: 1}, kindCount{dice.KindTriple: {1, 0}})
	require.Len(t, data, 8)
	assert.Equal(t, []string{"Wins", "2", "1"}, data[1])
	assert.Equal(t, []string{"Final triple", "1", "0"}, data[5])
	assert.Equal(t, []string{"Final invalid", "0", "0"}, data[7])
}
