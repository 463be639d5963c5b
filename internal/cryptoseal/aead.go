package cryptoseal

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
)

// ErrOpenFailed is returned when a ciphertext cannot be authenticated,
// i.e. the key is wrong or the ciphertext was altered.
var ErrOpenFailed = errors.New("ciphertext authentication failed")

// Seal encrypts plaintext with AES-GCM under the provided key.
// The returned blob is nonce-prefixed ciphertext.
func Seal(plaintext, key []byte) ([]byte, error) {
	aesGCM, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, aesGCM.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}
	return aesGCM.Seal(nonce, nonce, plaintext, nil), nil
}

// Open decrypts a nonce-prefixed blob produced by Seal. Any authentication
// failure is reported as ErrOpenFailed; no partial plaintext is ever
// returned.
func Open(blob, key []byte) ([]byte, error) {
	aesGCM, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	nonceSize := aesGCM.NonceSize()
	if len(blob) < nonceSize {
		return nil, fmt.Errorf("%w: blob shorter than nonce", ErrOpenFailed)
	}
	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]
	plaintext, err := aesGCM.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenFailed, err)
	}
	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}
	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}
	return aesGCM, nil
}
