// Package ledger keeps an in-memory, append-only history of the rounds played
// in one session.
//
// Every Block records a completed round and carries the SHA-256 hash of its
// content chained to the hash of the previous block, so any later change to
// a recorded round breaks Verify. The ledger lives only as long as the
// process: nothing is written to disk.
package ledger
