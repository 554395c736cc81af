package ledger

import "github.com/luca-patrignani/cee-lo/domain/dice"

// genesisHash is the PrevHash of the first block.
const genesisHash = "0"

// Block is one recorded round. Block 0 is the genesis block and holds no round.
type Block struct {
	Index        int       `json:"index"`
	Timestamp    int64     `json:"timestamp"`
	PrevHash     string    `json:"prev_hash"`
	Hash         string    `json:"hash"`
	Session      string    `json:"session"`
	Round        int       `json:"round"`
	Winner       string    `json:"winner"`
	UserRoll     dice.Roll `json:"user_roll"`
	ComputerRoll dice.Roll `json:"computer_roll"`
	UserRank     int       `json:"user_rank"`
	ComputerRank int       `json:"computer_rank"`
}

// hashedContent is the canonical, protobuf-encoded form of a block that
// feeds the hash. Field order is part of the format.
type hashedContent struct {
	Index        int64
	Timestamp    int64
	PrevHash     string
	Session      string
	Round        int64
	Winner       string
	UserDie1     int64
	UserDie2     int64
	UserDie3     int64
	ComputerDie1 int64
	ComputerDie2 int64
	ComputerDie3 int64
	UserRank     int64
	ComputerRank int64
}

func (b Block) content() *hashedContent {
	return &hashedContent{
		Index:        int64(b.Index),
		Timestamp:    b.Timestamp,
		PrevHash:     b.PrevHash,
		Session:      b.Session,
		Round:        int64(b.Round),
		Winner:       b.Winner,
		UserDie1:     int64(b.UserRoll[0]),
		UserDie2:     int64(b.UserRoll[1]),
		UserDie3:     int64(b.UserRoll[2]),
		ComputerDie1: int64(b.ComputerRoll[0]),
		ComputerDie2: int64(b.ComputerRoll[1]),
		ComputerDie3: int64(b.ComputerRoll[2]),
		UserRank:     int64(b.UserRank),
		ComputerRank: int64(b.ComputerRank),
	}
}
