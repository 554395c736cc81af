package ceelo

import (
	"errors"
	"fmt"

	"github.com/luca-patrignani/cee-lo/domain/dice"
)

var ErrNoStatistics = errors.New("nil statistics")

// Recorder receives every completed round before it is counted. A failing
// Recorder abandons the round.
type Recorder interface {
	Record(RoundResult) error
}

type Engine struct {
	recorder Recorder
}

type Option func(*Engine)

// WithRecorder hands each completed round to r.
func WithRecorder(r Recorder) Option {
	return func(e *Engine) {
		e.recorder = r
	}
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// PlayRound plays one round: the user throws, then the computer, each with
// up to MaxAttempts tries, and the higher rank wins. Exactly one counter of
// stats is incremented when the round completes. If src fails or breaks its
// contract the round is abandoned and stats is left untouched.
func (e *Engine) PlayRound(src dice.Source, stats *Statistics) (RoundResult, error) {
	if stats == nil {
		return RoundResult{}, ErrNoStatistics
	}

	user, err := takeTurn(PartyUser, src)
	if err != nil {
		return RoundResult{}, fmt.Errorf("%s turn: %w", PartyUser, err)
	}
	computer, err := takeTurn(PartyComputer, src)
	if err != nil {
		return RoundResult{}, fmt.Errorf("%s turn: %w", PartyComputer, err)
	}

	result := RoundResult{
		Winner:   Judge(user.Outcome, computer.Outcome),
		User:     user,
		Computer: computer,
	}
	round, err := stats.commit(result.Winner, func(round int) error {
		if e.recorder == nil {
			return nil
		}
		result.Number = round
		return e.recorder.Record(result)
	})
	if err != nil {
		return RoundResult{}, fmt.Errorf("record round: %w", err)
	}
	result.Number = round
	return result, nil
}

// Shake throws the dice once outside of any round. Statistics and the
// recorder are not touched.
func (e *Engine) Shake(src dice.Source) (dice.Roll, error) {
	return dice.Draw(src)
}

// Judge compares two resolved rolls from the user's point of view.
func Judge(user, computer dice.Outcome) Winner {
	switch {
	case user.Beats(computer):
		return UserWins
	case computer.Beats(user):
		return ComputerWins
	default:
		return Tie
	}
}

func takeTurn(p Party, src dice.Source) (Turn, error) {
	t := Turn{Party: p}
	for range MaxAttempts {
		roll, err := dice.Draw(src)
		if err != nil {
			return Turn{}, fmt.Errorf("attempt %d: %w", len(t.Attempts)+1, err)
		}
		t.Attempts = append(t.Attempts, roll)
		t.Final = roll
		t.Outcome = dice.Resolve(roll)
		if t.Outcome.Valid {
			break
		}
	}
	return t, nil
}
