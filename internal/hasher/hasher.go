// Package hasher computes short content digests for output files.
package hasher

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/cespare/xxhash/v2"
)

// DigestLen is the number of hex characters in a Digest (64 bits).
const DigestLen = 16

// Digest returns the xxHash64 of data as 16 lowercase hex characters.
func Digest(data []byte) string {
	return format(xxhash.Sum64(data))
}

func format(v uint64) string {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	return hex.EncodeToString(b[:])
}
