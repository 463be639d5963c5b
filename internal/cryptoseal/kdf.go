// Package cryptoseal provides the key derivation and symmetric sealing
// primitives behind encrypted grids: Argon2id for turning key-combination
// material into an AES key, and AES-256-GCM for the ciphertext itself.
package cryptoseal

import "golang.org/x/crypto/argon2"

// Params describes the Argon2id cost parameters a derivation runs with.
type Params interface {
	GetMemory() uint32
	GetIterations() uint32
	GetParallelism() uint8
	GetSaltLength() uint32
	GetKeyLength() uint32
}

// DeriveKey derives a symmetric key from key-combination material using
// Argon2id. The pepper, when present, is appended to the material before
// derivation. Identical inputs always derive the identical key.
func DeriveKey(material, salt, pepper []byte, params Params) []byte {
	input := material
	if len(pepper) > 0 {
		input = make([]byte, 0, len(material)+len(pepper))
		input = append(input, material...)
		input = append(input, pepper...)
	}
	return argon2.IDKey(
		input,
		salt,
		params.GetIterations(),
		params.GetMemory(),
		params.GetParallelism(),
		params.GetKeyLength(),
	)
}
