package ceelo

import (
	"fmt"
	"sync"
)

// Statistics counts wins, losses and ties from the user's point of view.
// The zero value is ready to use and safe for concurrent rounds.
type Statistics struct {
	mu     sync.RWMutex
	wins   int
	losses int
	ties   int
}

func NewStatistics() *Statistics {
	return &Statistics{}
}

// Snapshot is a read-only copy of the counters.
type Snapshot struct {
	Wins   int
	Losses int
	Ties   int
}

// Rounds returns the number of completed rounds.
func (s Snapshot) Rounds() int {
	return s.Wins + s.Losses + s.Ties
}

// Computer returns the same counters seen from the computer's side.
func (s Snapshot) Computer() Snapshot {
	return Snapshot{Wins: s.Losses, Losses: s.Wins, Ties: s.Ties}
}

func (s *Statistics) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{Wins: s.wins, Losses: s.losses, Ties: s.ties}
}

// commit counts one round for w. The hook runs under the lock with the
// number the round will get; if it fails nothing is counted.
func (s *Statistics) commit(w Winner, hook func(round int) error) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var counter *int
	switch w {
	case UserWins:
		counter = &s.wins
	case ComputerWins:
		counter = &s.losses
	case Tie:
		counter = &s.ties
	default:
		return 0, fmt.Errorf("unknown winner %q", w)
	}

	round := s.wins + s.losses + s.ties + 1
	if hook != nil {
		if err := hook(round); err != nil {
			return 0, err
		}
	}
	*counter++
	return round, nil
}
