package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.dedis.ch/protobuf"

	"github.com/luca-patrignani/cee-lo/domain/ceelo"
)

var (
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrBrokenChain     = errors.New("broken chain")
)

// Ledger is safe for concurrent use. It implements ceelo.Recorder.
type Ledger struct {
	mu      sync.RWMutex
	session string
	blocks  []Block
	now     func() time.Time
}

// New creates a ledger for the given session, holding only the genesis block.
func New(session string) *Ledger {
	l := &Ledger{
		session: session,
		now:     time.Now,
	}
	genesis := Block{
		Index:     0,
		Timestamp: l.now().Unix(),
		PrevHash:  genesisHash,
		Session:   session,
	}
	// the genesis content only holds fixed-size fields, encoding cannot fail
	genesis.Hash, _ = calculateHash(genesis)
	l.blocks = append(l.blocks, genesis)
	return l
}

// Session returns the session identifier stamped on every block.
func (l *Ledger) Session() string {
	return l.session
}

// Record appends a completed round to the chain.
func (l *Ledger) Record(r ceelo.RoundResult) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	latest := l.blocks[len(l.blocks)-1]
	b := Block{
		Index:        latest.Index + 1,
		Timestamp:    l.now().Unix(),
		PrevHash:     latest.Hash,
		Session:      l.session,
		Round:        r.Number,
		Winner:       string(r.Winner),
		UserRoll:     r.User.Final,
		ComputerRoll: r.Computer.Final,
		UserRank:     r.User.Outcome.Rank,
		ComputerRank: r.Computer.Outcome.Rank,
	}
	hash, err := calculateHash(b)
	if err != nil {
		return err
	}
	b.Hash = hash

	if err := validateBlock(b, latest); err != nil {
		return fmt.Errorf("invalid block: %w", err)
	}
	l.blocks = append(l.blocks, b)
	return nil
}

// Latest returns the most recent block; the genesis block on a fresh ledger.
func (l *Ledger) Latest() Block {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.blocks[len(l.blocks)-1]
}

// Get returns the block at index.
func (l *Ledger) Get(index int) (Block, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if index < 0 || index >= len(l.blocks) {
		return Block{}, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	return l.blocks[index], nil
}

// Len returns the number of blocks, genesis included.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.blocks)
}

// Rounds returns the recorded rounds, oldest first, without the genesis block.
func (l *Ledger) Rounds() []Block {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Block, len(l.blocks)-1)
	copy(out, l.blocks[1:])
	return out
}

// Verify checks the genesis block and every link of the chain.
func (l *Ledger) Verify() error {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if len(l.blocks) == 0 {
		return fmt.Errorf("%w: empty ledger", ErrBrokenChain)
	}
	if l.blocks[0].PrevHash != genesisHash || l.blocks[0].Index != 0 {
		return fmt.Errorf("%w: invalid genesis block", ErrBrokenChain)
	}
	for i := 1; i < len(l.blocks); i++ {
		if err := validateBlock(l.blocks[i], l.blocks[i-1]); err != nil {
			return fmt.Errorf("block %d: %w", i, err)
		}
	}
	return nil
}

func validateBlock(current, previous Block) error {
	if current.Index != previous.Index+1 {
		return fmt.Errorf("%w: expected index %d, got %d", ErrBrokenChain, previous.Index+1, current.Index)
	}
	if current.PrevHash != previous.Hash {
		return fmt.Errorf("%w: prev hash %s does not match %s", ErrBrokenChain, current.PrevHash, previous.Hash)
	}
	expected, err := calculateHash(current)
	if err != nil {
		return err
	}
	if current.Hash != expected {
		return fmt.Errorf("%w: expected hash %s, got %s", ErrBrokenChain, expected, current.Hash)
	}
	return nil
}

func calculateHash(b Block) (string, error) {
	data, err := protobuf.Encode(b.content())
	if err != nil {
		return "", fmt.Errorf("encode block %d: %w", b.Index, err)
	}
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:]), nil
}
