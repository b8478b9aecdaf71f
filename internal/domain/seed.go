package domain

import (
	"crypto/sha256"
	"encoding/binary"
	"strconv"
)

// seedModulus bounds derived seeds to [0, 2^31).
const seedModulus = 1 << 31

// DeriveSeed hashes the parts into a stable seed in [0, 2^31). Parts are
// length-prefixed so ("ab","c") and ("a","bc") differ.
func DeriveSeed(parts ...string) uint64 {
	h := sha256.New()

	var lenBuf [8]byte

	for _, p := range parts {
		binary.BigEndian.PutUint64(lenBuf[:], uint64(len(p)))
		_, _ = h.Write(lenBuf[:])
		_, _ = h.Write([]byte(p))
	}

	sum := h.Sum(nil)

	return binary.BigEndian.Uint64(sum[:8]) % seedModulus
}

// WorkerSeed is the per-task seed handed to a combination's execution.
func WorkerSeed(project, bug, combinationID string, generationSeed uint64) uint64 {
	return DeriveSeed(project, bug, combinationID, strconv.FormatUint(generationSeed, 10))
}
