package hashgrid

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/gregmconan/hashgrid/internal/combiner"
	"github.com/gregmconan/hashgrid/internal/cryptoseal"
)

// SecureGrid is a Grid whose values are encrypted under a key derived from
// the entry's own key combination. The derived key is recomputed on every
// access and never stored, so the structure cannot, by itself, reproduce a
// plaintext value: only a caller holding the exact keys can.
//
// Each instance carries a random salt generated at construction, and
// optionally a pepper, both mixed into the derivation. Values pass through
// a Serializer (JSON by default) before encryption with AES-256-GCM.
//
// Retrieval fails closed. A key combination that authenticates nothing ever
// stored yields ErrNotFound; a combination that lands on an existing
// address but cannot authenticate its ciphertext (wrong credentials,
// address collision, or tampering) yields ErrDecryptionFailed. Neither case
// exposes partial plaintext.
//
// Like Grid, a SecureGrid is not safe for concurrent mutation.
type SecureGrid struct {
	ordered    bool
	arity      int
	dimNames   []string
	entries    map[uint64][]byte
	salt       []byte
	pepper     []byte
	params     *Argon2Params
	serializer Serializer
}

// NewSecure creates an empty SecureGrid. Without options it is ordered,
// fixes its arity at the first combination stored, uses default Argon2id
// parameters, no pepper, and JSON value serialization.
func NewSecure(opts ...Option) (*SecureGrid, error) {
	cfg := secureConfig{
		ordered:    true,
		params:     DefaultArgon2Params(),
		serializer: JSONSerializer{},
	}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	if err := cfg.params.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidConfiguration, err)
	}

	salt := make([]byte, cfg.params.SaltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}

	sg := &SecureGrid{
		ordered:    cfg.ordered,
		entries:    make(map[uint64][]byte),
		salt:       salt,
		pepper:     cfg.pepper,
		params:     cfg.params,
		serializer: cfg.serializer,
	}
	if len(cfg.dimNames) > 0 {
		sg.arity = len(cfg.dimNames)
		sg.dimNames = append([]string(nil), cfg.dimNames...)
	}
	return sg, nil
}

// ForCreds creates a two-dimensional ordered SecureGrid addressed by
// (identifier, secret) pairs: a credential vault. Only the exact
// identifier and secret recover the value mapped to them, and the vault
// stores neither identifier, secret, nor value in recoverable form.
func ForCreds(opts ...Option) (*SecureGrid, error) {
	return NewSecure(append([]Option{
		WithDimensionNames("identifier", "secret"),
	}, opts...)...)
}

// SecureFromPairs creates a SecureGrid preloaded from (keys, value) pairs.
func SecureFromPairs(pairs []Pair, opts ...Option) (*SecureGrid, error) {
	sg, err := NewSecure(opts...)
	if err != nil {
		return nil, err
	}
	for _, p := range pairs {
		if err := sg.Set(p.Value, p.Keys...); err != nil {
			return nil, err
		}
	}
	return sg, nil
}

// SecureFromDimensions creates a SecureGrid from a value sequence plus one
// coordinate sequence per dimension, like FromDimensions.
func SecureFromDimensions(values []any, dims []Dimension, opts ...Option) (*SecureGrid, error) {
	pairs, names, err := pairsFromDimensions(values, dims)
	if err != nil {
		return nil, err
	}
	return SecureFromPairs(pairs, append([]Option{WithDimensionNames(names...)}, opts...)...)
}

// Set serializes and encrypts value under a key derived from the given key
// combination, then stores the ciphertext at the combination's address.
// It either fully succeeds or leaves the grid untouched.
func (sg *SecureGrid) Set(value any, keys ...any) error {
	addr, material, err := sg.resolve(keys)
	if err != nil {
		return err
	}
	plaintext, err := sg.serializer.Serialize(value)
	if err != nil {
		return fmt.Errorf("failed to serialize value: %w", err)
	}
	blob, err := cryptoseal.Seal(plaintext, sg.deriveKey(material))
	if err != nil {
		return fmt.Errorf("failed to encrypt value: %w", err)
	}
	sg.commitArity(len(keys))
	sg.entries[addr] = blob
	return nil
}

// Get re-derives the key for the given combination and decrypts the stored
// ciphertext. It returns ErrNotFound when nothing is stored at the
// combination's address, and ErrDecryptionFailed when the stored
// ciphertext cannot be authenticated with the derived key.
func (sg *SecureGrid) Get(keys ...any) (any, error) {
	addr, material, err := sg.resolve(keys)
	if err != nil {
		return nil, err
	}
	blob, ok := sg.entries[addr]
	if !ok {
		return nil, ErrNotFound
	}
	plaintext, err := cryptoseal.Open(blob, sg.deriveKey(material))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecryptionFailed, err)
	}
	var value any
	if err := sg.serializer.Deserialize(plaintext, &value); err != nil {
		return nil, fmt.Errorf("failed to deserialize value: %w", err)
	}
	return value, nil
}

// GetOr is Get returning def when nothing is stored at the combination's
// address. Decryption failures are still reported.
func (sg *SecureGrid) GetOr(def any, keys ...any) (any, error) {
	value, err := sg.Get(keys...)
	if IsLookupMiss(err) {
		return def, nil
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

// Has reports whether ciphertext is stored at the combination's address.
// It does not attempt decryption, so a true result does not prove the keys
// would authenticate it.
func (sg *SecureGrid) Has(keys ...any) (bool, error) {
	addr, _, err := sg.resolve(keys)
	if err != nil {
		return false, err
	}
	_, ok := sg.entries[addr]
	return ok, nil
}

// Delete removes the ciphertext stored at the combination's address.
// Deleting an absent combination is a no-op.
func (sg *SecureGrid) Delete(keys ...any) error {
	addr, _, err := sg.resolve(keys)
	if err != nil {
		return err
	}
	delete(sg.entries, addr)
	return nil
}

// Len returns the number of stored entries.
func (sg *SecureGrid) Len() int {
	return len(sg.entries)
}

// Arity returns the number of dimensions, or 0 while the grid is still
// empty with no explicit dimension names.
func (sg *SecureGrid) Arity() int {
	return sg.arity
}

// DimensionNames returns the names of the grid's dimensions, in order.
func (sg *SecureGrid) DimensionNames() []string {
	return append([]string(nil), sg.dimNames...)
}

func (sg *SecureGrid) resolve(keys []any) (uint64, []byte, error) {
	if err := checkArity(sg.arity, len(keys)); err != nil {
		return 0, nil, err
	}
	addr, material, err := combiner.Combine(keys, sg.ordered)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v", ErrUnhashableKey, err)
	}
	return addr, material, nil
}

func (sg *SecureGrid) commitArity(n int) {
	if sg.arity == 0 {
		sg.arity = n
		if len(sg.dimNames) == 0 {
			sg.dimNames = defaultDimensionNames(n)
		}
	}
}

func (sg *SecureGrid) deriveKey(material []byte) []byte {
	return cryptoseal.DeriveKey(material, sg.salt, sg.pepper, sg.params)
}
