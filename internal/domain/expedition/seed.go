package expedition

import (
	"crypto/sha256"
	"encoding/binary"
)

// StartSeed derives the walk's starting value from the player identity and
// their current nonce. The hash is over public inputs, so the start tile is
// predictable by the player; that is an accepted property of the game, not a
// secrecy mechanism.
func StartSeed(playerID string, nonce uint64) uint64 {
	h := sha256.New()
	h.Write([]byte(playerID))
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], nonce)
	h.Write(buf[:])
	return binary.BigEndian.Uint64(h.Sum(nil))
}

// StepEvent derives the per-step roll value. It mixes the call time, the tile
// reached and the step index, so two steps landing on the same tile within
// one walk still roll independently.
func StepEvent(now uint64, position uint64, step uint64) uint64 {
	var buf [24]byte
	binary.BigEndian.PutUint64(buf[0:8], now)
	binary.BigEndian.PutUint64(buf[8:16], position)
	binary.BigEndian.PutUint64(buf[16:24], step)
	sum := sha256.Sum256(buf[:])
	return binary.BigEndian.Uint64(sum[:])
}
