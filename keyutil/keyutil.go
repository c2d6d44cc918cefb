// Package keyutil normalizes user-supplied key, IV and ciphertext text into
// the raw byte sequences the cipher core works with.
package keyutil

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidKeyText = errors.New("keyutil: key must be exactly 16 bytes (32 hex chars or 16 UTF-8 bytes)")
	ErrInvalidIVText  = errors.New("keyutil: IV must be exactly 16 bytes (32 hex chars or 16 UTF-8 bytes)")
)

// NormalizeKey converts a key string into a 16-byte AES-128 key. A trimmed
// 32-character input is tried as hex first; anything else is taken as UTF-8
// bytes of the original string.
func NormalizeKey(s string) ([]byte, error) {
	key := normalize(s)
	if len(key) != 16 {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidKeyText, len(key))
	}
	return key, nil
}

// NormalizeIV converts an IV string into 16 bytes with the same rules as
// NormalizeKey.
func NormalizeIV(s string) ([]byte, error) {
	iv := normalize(s)
	if len(iv) != 16 {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidIVText, len(iv))
	}
	return iv, nil
}

func normalize(s string) []byte {
	trimmed := strings.TrimSpace(s)
	if len(trimmed) == 32 {
		if b, err := hex.DecodeString(trimmed); err == nil {
			return b
		}
	}
	return []byte(s)
}

// EncodeHex renders bytes as lowercase hex for display and transport.
func EncodeHex(data []byte) string {
	return hex.EncodeToString(data)
}

// DecodeHex parses a hex string, tolerating surrounding whitespace.
func DecodeHex(s string) ([]byte, error) {
	b, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("keyutil: invalid hex input: %w", err)
	}
	return b, nil
}
