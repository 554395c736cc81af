package dice

// Fixed points of the rank scale.
const (
	RankInvalid     = 0
	RankFourFiveSix = 13
	tripleBonus     = 6
)

// Kind classifies an Outcome for display.
type Kind string

const (
	KindInvalid     Kind = "invalid"
	KindPoint       Kind = "point"
	KindTriple      Kind = "triple"
	KindFourFiveSix Kind = "4-5-6"
)

// Outcome is the resolution of a Roll. Rank is 0 for invalid rolls.
type Outcome struct {
	Valid bool
	Rank  int
}

// Kind derives the family of the outcome from its rank.
func (o Outcome) Kind() Kind {
	switch {
	case !o.Valid || o.Rank == RankInvalid:
		return KindInvalid
	case o.Rank == RankFourFiveSix:
		return KindFourFiveSix
	case o.Rank > MaxFace:
		return KindTriple
	default:
		return KindPoint
	}
}

// Beats reports whether o ranks strictly above other.
func (o Outcome) Beats(other Outcome) bool {
	return o.Rank > other.Rank
}

// Valid reports whether the roll is a scoring pattern: 4-5-6, or at least
// two equal faces. A roll with a face outside [1,6] is never valid.
func Valid(r Roll) bool {
	if r.Check() != nil {
		return false
	}
	s := r.Sorted()
	return isFourFiveSix(s) || s[0] == s[1] || s[1] == s[2]
}

// Resolve maps a roll onto the absolute rank scale. A roll with a face
// outside [1,6] resolves as invalid; Roll.Check reports why.
func Resolve(r Roll) Outcome {
	if r.Check() != nil {
		return Outcome{Valid: false, Rank: RankInvalid}
	}
	s := r.Sorted()
	switch {
	case isFourFiveSix(s):
		return Outcome{Valid: true, Rank: RankFourFiveSix}
	case s[0] == s[1] && s[1] == s[2]:
		return Outcome{Valid: true, Rank: tripleBonus + s[0]}
	case s[0] == s[1]:
		return Outcome{Valid: true, Rank: s[2]}
	case s[1] == s[2]:
		return Outcome{Valid: true, Rank: s[0]}
	}
	return Outcome{Valid: false, Rank: RankInvalid}
}

// s must be sorted
func isFourFiveSix(s Roll) bool {
	return s[0] == 4 && s[1] == 5 && s[2] == 6
}
