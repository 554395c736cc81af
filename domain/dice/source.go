package dice

import (
	"crypto/cipher"
	"encoding/binary"
	"errors"
	"fmt"
	"math/big"
	"math/rand/v2"
	"sync"
	"time"

	"go.dedis.ch/kyber/v4/suites"
	"go.dedis.ch/kyber/v4/util/random"
)

var ErrSourceExhausted = errors.New("dice source exhausted")

// Source produces die faces uniformly distributed in [1,6].
type Source interface {
	Next() (int, error)
}

// Draw throws three dice from src, in order. Any face outside [1,6] is a
// broken source and is reported as ErrFaceOutOfRange.
func Draw(src Source) (Roll, error) {
	var r Roll
	for i := range r {
		f, err := src.Next()
		if err != nil {
			return Roll{}, fmt.Errorf("draw die %d: %w", i+1, err)
		}
		r[i] = f
	}
	if err := r.Check(); err != nil {
		return Roll{}, err
	}
	return r, nil
}

// MathSource draws faces from a PCG generator. It is safe for concurrent use.
type MathSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewMathSource seeds a MathSource. A zero seed picks one from the clock.
func NewMathSource(seed int64) *MathSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &MathSource{
		rng: rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1|1)),
	}
}

func (s *MathSource) Next() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(MaxFace) + MinFace, nil
}

var suite suites.Suite = suites.MustFind("Ed25519")

// faceBound is one past the highest face; random.Int draws below it.
var faceBound = big.NewInt(MaxFace + 1)

// KyberSource draws faces from a kyber cipher stream. Without a seed the
// stream is the suite's cryptographic random stream; with a seed it is the
// suite's XOF keyed by that seed, so the sequence can be replayed.
type KyberSource struct {
	mu     sync.Mutex
	stream cipher.Stream
}

// NewKyberSource builds a KyberSource. A zero seed selects the
// non-reproducible random stream.
func NewKyberSource(seed int64) *KyberSource {
	if seed == 0 {
		return &KyberSource{stream: suite.RandomStream()}
	}
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, uint64(seed))
	return &KyberSource{stream: suite.XOF(key)}
}

func (s *KyberSource) Next() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for {
		n := random.Int(faceBound, s.stream).Int64()
		if n >= MinFace {
			return int(n), nil
		}
	}
}

// SequenceSource replays a fixed list of faces and fails once they run out.
type SequenceSource struct {
	mu    sync.Mutex
	faces []int
	pos   int
}

func NewSequenceSource(faces ...int) *SequenceSource {
	return &SequenceSource{faces: faces}
}

// SequenceOf replays the given rolls face by face.
func SequenceOf(rolls ...Roll) *SequenceSource {
	faces := make([]int, 0, len(rolls)*DiceCount)
	for _, r := range rolls {
		faces = append(faces, r[:]...)
	}
	return NewSequenceSource(faces...)
}

func (s *SequenceSource) Next() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pos >= len(s.faces) {
		return 0, ErrSourceExhausted
	}
	f := s.faces[s.pos]
	s.pos++
	return f, nil
}

// Remaining returns how many faces are left to replay.
func (s *SequenceSource) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.faces) - s.pos
}
