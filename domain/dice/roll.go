package dice

import (
	"errors"
	"fmt"
	"slices"
)

// Die face bounds and the number of dice thrown per roll.
const (
	MinFace   = 1
	MaxFace   = 6
	DiceCount = 3
)

var (
	ErrFaceOutOfRange = errors.New("die face out of range")
	ErrWrongDiceCount = errors.New("wrong number of dice")
)

// Roll is one throw of three dice, kept in the order they landed.
// Being an array, a Roll is copied on assignment, so resolving it never
// disturbs the caller's order.
type Roll [DiceCount]int

// NewRoll builds a Roll from three faces. It returns an error wrapping
// ErrFaceOutOfRange if any face is outside [1,6].
func NewRoll(a, b, c int) (Roll, error) {
	r := Roll{a, b, c}
	if err := r.Check(); err != nil {
		return Roll{}, err
	}
	return r, nil
}

// ParseRoll builds a Roll from a slice of faces. The slice must hold exactly
// three values in [1,6].
func ParseRoll(faces []int) (Roll, error) {
	if len(faces) != DiceCount {
		return Roll{}, fmt.Errorf("%w: expected %d, got %d", ErrWrongDiceCount, DiceCount, len(faces))
	}
	return NewRoll(faces[0], faces[1], faces[2])
}

// Check reports whether every face of the roll is a legal die face.
func (r Roll) Check() error {
	for i, f := range r {
		if f < MinFace || f > MaxFace {
			return fmt.Errorf("%w: die %d shows %d", ErrFaceOutOfRange, i+1, f)
		}
	}
	return nil
}

// Sorted returns a copy of the roll in ascending order.
func (r Roll) Sorted() Roll {
	s := r
	slices.Sort(s[:])
	return s
}

// String renders the roll as the game prints it, e.g. [2-2-4].
func (r Roll) String() string {
	return fmt.Sprintf("[%d-%d-%d]", r[0], r[1], r[2])
}
