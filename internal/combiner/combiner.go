// Package combiner turns a combination of key objects into a hash address.
//
// A combination is first serialized per key, then canonicalized under the
// grid's addressing policy, then reduced to a 64-bit address by hashing the
// framed concatenation of its parts. The same canonical combination always
// yields the same address within and across processes.
package combiner

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"sort"

	"github.com/gregmconan/hashgrid/internal/bytesify"
)

// Serialize converts each key to its deterministic byte form, failing on
// the first key bytesify cannot handle.
func Serialize(keys []any) ([][]byte, error) {
	parts := make([][]byte, len(keys))
	for i, k := range keys {
		b, err := bytesify.ToBytes(k)
		if err != nil {
			return nil, err
		}
		parts[i] = b
	}
	return parts, nil
}

// Canonicalize rearranges serialized key parts into the form that is hashed.
// Ordered combinations pass through unchanged. Unordered combinations are
// sorted byte-wise into a stable order that is independent of how callers
// arranged the keys; duplicates are preserved, so {1,1,2} and {1,2,2}
// canonicalize differently.
func Canonicalize(parts [][]byte, ordered bool) [][]byte {
	if ordered {
		return parts
	}
	canon := make([][]byte, len(parts))
	copy(canon, parts)
	sort.Slice(canon, func(i, j int) bool {
		return bytes.Compare(canon[i], canon[j]) < 0
	})
	return canon
}

// Material concatenates canonical parts into the digest and key-derivation
// input. Each part carries a 4-byte length prefix so adjacent parts cannot
// be re-split ambiguously; ordered combinations additionally prefix each
// part with its position so (1,2) and (2,1) produce different material.
func Material(canon [][]byte, ordered bool) []byte {
	size := 0
	for _, p := range canon {
		size += 4 + len(p)
		if ordered {
			size += 4
		}
	}
	out := make([]byte, 0, size)
	var scratch [4]byte
	for i, p := range canon {
		if ordered {
			binary.BigEndian.PutUint32(scratch[:], uint32(i))
			out = append(out, scratch[:]...)
		}
		binary.BigEndian.PutUint32(scratch[:], uint32(len(p)))
		out = append(out, scratch[:]...)
		out = append(out, p...)
	}
	return out
}

// Address reduces canonical parts to a 64-bit hash address: the first
// 8 bytes of the SHA-256 digest of Material. Two distinct combinations
// landing on the same address is accepted; the store's overwrite policy
// (last write wins) covers that case.
func Address(canon [][]byte, ordered bool) uint64 {
	sum := sha256.Sum256(Material(canon, ordered))
	return binary.BigEndian.Uint64(sum[:8])
}

// Combine is the full pipeline: serialize, canonicalize, address.
// It returns the canonical material alongside the address so callers that
// derive keys from the combination do not serialize twice.
func Combine(keys []any, ordered bool) (uint64, []byte, error) {
	parts, err := Serialize(keys)
	if err != nil {
		return 0, nil, err
	}
	canon := Canonicalize(parts, ordered)
	material := Material(canon, ordered)
	sum := sha256.Sum256(material)
	return binary.BigEndian.Uint64(sum[:8]), material, nil
}
