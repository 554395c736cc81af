package dice

import (
	"errors"
	"testing"
)

func allRolls() []Roll {
	var rolls []Roll
	for a := MinFace; a <= MaxFace; a++ {
		for b := MinFace; b <= MaxFace; b++ {
			for c := MinFace; c <= MaxFace; c++ {
				rolls = append(rolls, Roll{a, b, c})
			}
		}
	}
	return rolls
}

func TestResolveKnownRolls(t *testing.T) {
	cases := []struct {
		roll  Roll
		valid bool
		rank  int
	}{
		{Roll{4, 5, 6}, true, 13},
		{Roll{6, 4, 5}, true, 13},
		{Roll{1, 1, 1}, true, 7},
		{Roll{5, 5, 5}, true, 11},
		{Roll{6, 6, 6}, true, 12},
		{Roll{2, 2, 4}, true, 4},
		{Roll{6, 5, 5}, true, 6},
		{Roll{2, 2, 3}, true, 3},
		{Roll{6, 6, 1}, true, 1},
		{Roll{6, 6, 2}, true, 2},
		{Roll{3, 3, 6}, true, 6},
		{Roll{1, 2, 3}, false, 0},
		{Roll{2, 3, 4}, false, 0},
		{Roll{1, 3, 5}, false, 0},
		{Roll{6, 5, 3}, false, 0},
	}
	for _, tc := range cases {
		got := Resolve(tc.roll)
		if got.Valid != tc.valid || got.Rank != tc.rank {
			t.Errorf("Resolve(%v) = %+v, want valid=%v rank=%d", tc.roll, got, tc.valid, tc.rank)
		}
	}
}

func TestValidityRule(t *testing.T) {
	for _, r := range allRolls() {
		s := r.Sorted()
		want := s[0] == s[1] || s[1] == s[2] || s == Roll{4, 5, 6}
		if Valid(r) != want {
			t.Errorf("Valid(%v) = %v, want %v", r, Valid(r), want)
		}
		if Resolve(r).Valid != want {
			t.Errorf("Resolve(%v).Valid = %v, want %v", r, Resolve(r).Valid, want)
		}
	}
}

func TestRankScale(t *testing.T) {
	for _, r := range allRolls() {
		o := Resolve(r)
		s := r.Sorted()
		switch o.Kind() {
		case KindInvalid:
			if o.Rank != 0 {
				t.Errorf("%v: invalid roll ranked %d", r, o.Rank)
			}
		case KindFourFiveSix:
			if s != (Roll{4, 5, 6}) {
				t.Errorf("%v: ranked as 4-5-6", r)
			}
		case KindTriple:
			if s[0] != s[2] || o.Rank != 6+s[0] {
				t.Errorf("%v: triple ranked %d", r, o.Rank)
			}
		case KindPoint:
			if o.Rank < 1 || o.Rank > 6 {
				t.Errorf("%v: point rank %d outside 1..6", r, o.Rank)
			}
			if s[0] == s[1] && o.Rank != s[2] {
				t.Errorf("%v: low pair should rank %d, got %d", r, s[2], o.Rank)
			}
			if s[1] == s[2] && o.Rank != s[0] {
				t.Errorf("%v: high pair should rank %d, got %d", r, s[0], o.Rank)
			}
		}
	}
}

func TestRankOrdering(t *testing.T) {
	top := Resolve(Roll{4, 5, 6}).Rank
	prev := 0
	for face := MinFace; face <= MaxFace; face++ {
		triple := Resolve(Roll{face, face, face}).Rank
		if triple <= prev {
			t.Fatalf("triple %d ranked %d, not above previous %d", face, triple, prev)
		}
		if triple >= top {
			t.Fatalf("triple %d ranked %d, not below 4-5-6 (%d)", face, triple, top)
		}
		prev = triple
	}
	lowestTriple := Resolve(Roll{1, 1, 1}).Rank
	for _, r := range allRolls() {
		o := Resolve(r)
		if o.Kind() == KindPoint && o.Rank >= lowestTriple {
			t.Errorf("point %v ranked %d, not below the lowest triple", r, o.Rank)
		}
		if o.Valid && o.Rank <= RankInvalid {
			t.Errorf("valid roll %v did not beat an invalid one", r)
		}
	}
	// a pair of sixes is a point roll, never confused with a low triple
	if Resolve(Roll{6, 6, 5}).Rank >= Resolve(Roll{1, 1, 1}).Rank {
		t.Fatal("[6-6-5] must lose to [1-1-1]")
	}
}

func TestResolveIgnoresOrder(t *testing.T) {
	for _, r := range allRolls() {
		want := Resolve(r)
		perms := []Roll{
			{r[0], r[2], r[1]},
			{r[1], r[0], r[2]},
			{r[1], r[2], r[0]},
			{r[2], r[0], r[1]},
			{r[2], r[1], r[0]},
		}
		for _, p := range perms {
			if got := Resolve(p); got != want {
				t.Fatalf("Resolve(%v) = %+v, Resolve(%v) = %+v", p, got, r, want)
			}
		}
	}
}

func TestResolveKeepsRawOrder(t *testing.T) {
	r := Roll{6, 1, 6}
	Resolve(r)
	Valid(r)
	if r != (Roll{6, 1, 6}) {
		t.Fatalf("roll was reordered to %v", r)
	}
	if r.String() != "[6-1-6]" {
		t.Fatalf("expected [6-1-6], got %s", r.String())
	}
}

func TestNewRollRejectsBadFaces(t *testing.T) {
	if _, err := NewRoll(0, 3, 3); !errors.Is(err, ErrFaceOutOfRange) {
		t.Fatalf("want ErrFaceOutOfRange, got %v", err)
	}
	if _, err := NewRoll(3, 3, 7); !errors.Is(err, ErrFaceOutOfRange) {
		t.Fatalf("want ErrFaceOutOfRange, got %v", err)
	}
	if _, err := ParseRoll([]int{1, 2}); !errors.Is(err, ErrWrongDiceCount) {
		t.Fatalf("want ErrWrongDiceCount, got %v", err)
	}
	if _, err := ParseRoll([]int{1, 2, 3, 4}); !errors.Is(err, ErrWrongDiceCount) {
		t.Fatalf("want ErrWrongDiceCount, got %v", err)
	}
	r, err := ParseRoll([]int{5, 4, 6})
	if err != nil {
		t.Fatal(err)
	}
	if r != (Roll{5, 4, 6}) {
		t.Fatalf("expected [5-4-6], got %v", r)
	}
}

func TestResolveRejectsFacesOutOfRange(t *testing.T) {
	for _, r := range []Roll{{7, 7, 7}, {0, 0, 9}, {4, 5, 7}, {0, 0, 0}, {3, 3, -1}} {
		if Valid(r) {
			t.Errorf("%v should not be valid", r)
		}
		if o := Resolve(r); o.Valid || o.Rank != RankInvalid {
			t.Errorf("%v resolved to %+v, want invalid", r, o)
		}
	}
}

func TestBeats(t *testing.T) {
	triple := Resolve(Roll{2, 2, 2})
	pair := Resolve(Roll{3, 3, 6})
	if !triple.Beats(pair) {
		t.Errorf("%+v should beat %+v", triple, pair)
	}
	if pair.Beats(triple) {
		t.Errorf("%+v should not beat %+v", pair, triple)
	}
	if pair.Beats(Resolve(Roll{6, 6, 3})) {
		t.Error("equal ranks must not beat each other")
	}
}
