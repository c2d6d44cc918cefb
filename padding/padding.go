// Package padding implements block padding schemes for block cipher modes.
package padding

import (
	"errors"
	"fmt"
)

var ErrInvalidPadding = errors.New("padding: invalid padding")

// Padding pads data up to a multiple of blockSize and strips it again after
// decryption. Pad always appends at least one byte for the schemes that
// record the pad length.
type Padding interface {
	Pad(data []byte, blockSize int) []byte
	Unpad(data []byte, blockSize int) ([]byte, error)
	Name() string
}

// ByName resolves a padding scheme from its CLI/API name.
func ByName(name string) (Padding, error) {
	switch name {
	case "pkcs7":
		return &PKCS7{}, nil
	case "ansix923":
		return &ANSIX923{}, nil
	case "iso10126":
		return &ISO10126{}, nil
	case "zeros":
		return &Zeros{}, nil
	}
	return nil, fmt.Errorf("padding: unknown scheme %q", name)
}

// PKCS7 appends n bytes of value n, 1 <= n <= blockSize. Input whose length
// is already a multiple of blockSize gains a full pad block.
type PKCS7 struct{}

func (p *PKCS7) Name() string { return "pkcs7" }

func (p *PKCS7) Pad(data []byte, blockSize int) []byte {
	padding := blockSize - (len(data) % blockSize)
	padText := make([]byte, padding)
	for i := range padText {
		padText[i] = byte(padding)
	}
	return append(data, padText...)
}

func (p *PKCS7) Unpad(data []byte, blockSize int) ([]byte, error) {
	if err := checkPadded(data, blockSize); err != nil {
		return nil, err
	}

	length := len(data)
	padding := int(data[length-1])
	if padding == 0 || padding > blockSize {
		return nil, fmt.Errorf("%w: pad byte %d out of range", ErrInvalidPadding, padding)
	}

	for i := length - padding; i < length; i++ {
		if data[i] != byte(padding) {
			return nil, fmt.Errorf("%w: inconsistent pad bytes", ErrInvalidPadding)
		}
	}

	return data[:length-padding], nil
}

// ANSIX923 appends n-1 zero bytes followed by the pad length n.
type ANSIX923 struct{}

func (p *ANSIX923) Name() string { return "ansix923" }

func (p *ANSIX923) Pad(data []byte, blockSize int) []byte {
	padding := blockSize - (len(data) % blockSize)
	padText := make([]byte, padding)
	padText[padding-1] = byte(padding)
	return append(data, padText...)
}

func (p *ANSIX923) Unpad(data []byte, blockSize int) ([]byte, error) {
	if err := checkPadded(data, blockSize); err != nil {
		return nil, err
	}

	length := len(data)
	padding := int(data[length-1])
	if padding == 0 || padding > blockSize {
		return nil, fmt.Errorf("%w: pad byte %d out of range", ErrInvalidPadding, padding)
	}

	for i := length - padding; i < length-1; i++ {
		if data[i] != 0 {
			return nil, fmt.Errorf("%w: nonzero filler byte", ErrInvalidPadding)
		}
	}

	return data[:length-padding], nil
}

// ISO10126 appends random filler bytes followed by the pad length; only the
// final byte is validated on removal.
type ISO10126 struct{}

func (p *ISO10126) Name() string { return "iso10126" }

func (p *ISO10126) Pad(data []byte, blockSize int) []byte {
	padding := blockSize - (len(data) % blockSize)
	padText := make([]byte, padding)
	for i := 0; i < padding-1; i++ {
		padText[i] = byte(i)
	}
	padText[padding-1] = byte(padding)
	return append(data, padText...)
}

func (p *ISO10126) Unpad(data []byte, blockSize int) ([]byte, error) {
	if err := checkPadded(data, blockSize); err != nil {
		return nil, err
	}

	length := len(data)
	padding := int(data[length-1])
	if padding == 0 || padding > blockSize {
		return nil, fmt.Errorf("%w: pad byte %d out of range", ErrInvalidPadding, padding)
	}

	return data[:length-padding], nil
}

// Zeros pads with zero bytes only when needed and strips all trailing zeros.
// Not safe for plaintext that legitimately ends in zero bytes.
type Zeros struct{}

func (p *Zeros) Name() string { return "zeros" }

func (p *Zeros) Pad(data []byte, blockSize int) []byte {
	padding := blockSize - (len(data) % blockSize)
	if padding == blockSize {
		return data
	}
	return append(data, make([]byte, padding)...)
}

func (p *Zeros) Unpad(data []byte, blockSize int) ([]byte, error) {
	for i := len(data) - 1; i >= 0; i-- {
		if data[i] != 0 {
			return data[:i+1], nil
		}
	}
	return data[:0], nil
}

func checkPadded(data []byte, blockSize int) error {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return fmt.Errorf("%w: padded length %d not a positive multiple of %d",
			ErrInvalidPadding, len(data), blockSize)
	}
	return nil
}
