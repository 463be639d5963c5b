// Package hashgrid provides mappings addressed by the hash of a combination
// of keys, including an encrypted variant whose per-entry key is derived
// from the key combination itself.
//
// A Grid maps one group of N keys to one value, the way a grid maps one set
// of coordinates to one point. Keys are never retained: entries live under
// a hash address computed from the serialized key combination, so nothing
// in the structure can enumerate which keys map where. Ordered grids are
// position-sensitive; unordered grids address by key multiset, so every
// permutation of the same keys reaches the same entry.
//
// # Quick Start
//
//	grid, err := hashgrid.FromPairs([]hashgrid.Pair{
//	    {Keys: []any{1, 2, 3}, Value: "foo"},
//	    {Keys: []any{3, 2, 1}, Value: "bar"},
//	})
//	v, err := grid.Get(1, 2, 3) // "foo"
//
// A SecureGrid additionally encrypts each value with AES-256-GCM under an
// Argon2id key derived from the entry's own key combination. The derived
// key is never stored; without the exact keys the stored ciphertext cannot
// be opened, not even by code holding the grid itself:
//
//	vault, err := hashgrid.ForCreds()
//	err = vault.Set("myvalue", "myuser", "mypass")
//	v, err := vault.Get("myuser", "mypass")  // "myvalue"
//	_, err = vault.Get("myuser", "wrong")    // never "myvalue"
//
// # Collision policy
//
// Addresses are 64-bit truncated SHA-256 digests. If two distinct key
// combinations land on the same address, the later Set overwrites the
// earlier entry. Chaining is deliberately absent: disambiguating colliding
// entries would require retaining the original keys, which the structure
// promises not to do.
//
// # Concurrency
//
// Grids are plain in-memory values with no internal synchronization.
// Callers sharing one across goroutines must serialize mutation.
package hashgrid
