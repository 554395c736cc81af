package ceelo

import "github.com/luca-patrignani/cee-lo/domain/dice"

// MaxAttempts bounds the throws a party gets to land a scoring roll.
const MaxAttempts = 3

type Party string

const (
	PartyUser     Party = "user"
	PartyComputer Party = "computer"
)

type Winner string

const (
	UserWins     Winner = "user"
	ComputerWins Winner = "computer"
	Tie          Winner = "tie"
)

// Turn is one party's share of a round.
type Turn struct {
	Party    Party
	Attempts []dice.Roll // every throw, in order; the last one is Final
	Final    dice.Roll
	Outcome  dice.Outcome
}

// OutOfTurns reports whether the party used every attempt without scoring.
func (t Turn) OutOfTurns() bool {
	return !t.Outcome.Valid && len(t.Attempts) >= MaxAttempts
}

// RoundResult is a completed round.
type RoundResult struct {
	Number   int // 1-based position of the round in its session
	Winner   Winner
	User     Turn
	Computer Turn
}
