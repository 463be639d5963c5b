package hashgrid

import "errors"

var (
	// Usage errors
	ErrUnhashableKey     = errors.New("key cannot be serialized for hashing")
	ErrArityMismatch     = errors.New("key count does not match grid dimensions")
	ErrDimensionMismatch = errors.New("dimension sequences have mismatched lengths")

	// Lookup errors
	ErrNotFound = errors.New("no value stored for key combination")

	// Crypto errors
	ErrDecryptionFailed = errors.New("decryption failed")

	// Configuration errors
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// IsUsageError returns true if the error indicates the caller supplied
// keys or constructor arguments the grid cannot accept.
func IsUsageError(err error) bool {
	return errors.Is(err, ErrUnhashableKey) ||
		errors.Is(err, ErrArityMismatch) ||
		errors.Is(err, ErrDimensionMismatch)
}

// IsLookupMiss returns true if the error indicates an absent entry rather
// than a failure.
func IsLookupMiss(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAuthError returns true if the error indicates a stored ciphertext could
// not be authenticated with the supplied key combination.
func IsAuthError(err error) bool {
	return errors.Is(err, ErrDecryptionFailed)
}

// IsConfigurationError returns true if the error represents a configuration
// problem.
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrInvalidConfiguration)
}
