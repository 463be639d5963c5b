package hashgrid

import "fmt"

// secureConfig collects the construction-time configuration of a
// SecureGrid before validation.
type secureConfig struct {
	dimNames   []string
	ordered    bool
	params     *Argon2Params
	pepper     []byte
	serializer Serializer
}

// Option configures a SecureGrid at construction.
type Option func(*secureConfig) error

// WithDimensionNames names the grid's dimensions and fixes its arity.
func WithDimensionNames(names ...string) Option {
	return func(c *secureConfig) error {
		if len(names) == 0 {
			return fmt.Errorf("%w: at least one dimension name is required", ErrInvalidConfiguration)
		}
		for i, name := range names {
			if name == "" {
				return fmt.Errorf("%w: dimension name %d is empty", ErrInvalidConfiguration, i)
			}
		}
		c.dimNames = append([]string(nil), names...)
		return nil
	}
}

// WithUnorderedKeys makes the grid address by key multiset instead of key
// sequence: every permutation of the same keys reaches the same entry.
func WithUnorderedKeys() Option {
	return func(c *secureConfig) error {
		c.ordered = false
		return nil
	}
}

// WithArgon2Params sets the Argon2id parameters used for key derivation.
func WithArgon2Params(params *Argon2Params) Option {
	return func(c *secureConfig) error {
		if params == nil {
			return fmt.Errorf("%w: argon2 parameters cannot be nil", ErrInvalidConfiguration)
		}
		c.params = params
		return nil
	}
}

// WithPepper mixes an additional secret into every key derivation. A grid
// constructed with a pepper only decrypts for callers that supplied the
// same pepper at construction.
func WithPepper(pepper []byte) Option {
	return func(c *secureConfig) error {
		if len(pepper) != 32 {
			return fmt.Errorf("%w: pepper must be exactly 32 bytes, got %d", ErrInvalidConfiguration, len(pepper))
		}
		if isZeroPepper(pepper) {
			return fmt.Errorf("%w: pepper value appears to be uninitialized (all zeros)", ErrInvalidConfiguration)
		}
		c.pepper = append([]byte(nil), pepper...)
		return nil
	}
}

// WithSerializer sets the value serializer. The same serializer must be
// used for the lifetime of the grid.
func WithSerializer(s Serializer) Option {
	return func(c *secureConfig) error {
		if s == nil {
			return fmt.Errorf("%w: serializer cannot be nil", ErrInvalidConfiguration)
		}
		c.serializer = s
		return nil
	}
}

// isZeroPepper checks if pepper is all zero bytes (uninitialized).
func isZeroPepper(pepper []byte) bool {
	for _, b := range pepper {
		if b != 0 {
			return false
		}
	}
	return true
}
