// Package cipher provides the ECB and CFB modes of operation over the
// AES-128 block cipher, turning the 16-byte primitive into an encryption
// service for arbitrary-length data.
package cipher

import (
	"crypto/rand"
	"errors"
	"fmt"
	"sync"

	"github.com/thomasNguyen-196/AES-128-Cipher-CLI/aes128"
	"github.com/thomasNguyen-196/AES-128-Cipher-CLI/padding"
)

type Mode int

const (
	// ECB encrypts each padded block independently. Identical plaintext
	// blocks yield identical ciphertext blocks under the same key.
	ECB Mode = iota
	// CFB runs the block cipher as a self-synchronizing stream cipher with
	// 16-byte segment feedback. No padding; output length equals input.
	CFB
)

func (m Mode) String() string {
	switch m {
	case ECB:
		return "ecb"
	case CFB:
		return "cfb"
	}
	return "unknown"
}

// ParseMode maps the wire/CLI names "ecb" and "cfb" to a Mode.
func ParseMode(name string) (Mode, error) {
	switch name {
	case "ecb":
		return ECB, nil
	case "cfb":
		return CFB, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedMode, name)
}

var (
	ErrUnsupportedMode         = errors.New("cipher: unsupported mode")
	ErrInvalidIVLength         = errors.New("cipher: IV must be exactly 16 bytes")
	ErrInvalidCiphertextLength = errors.New("cipher: ciphertext length must be a positive multiple of 16")
	ErrMissingIV               = errors.New("cipher: CFB decryption requires the IV used at encryption time")
)

// Cipher binds a block cipher instance to a mode and a padding scheme.
// It is immutable after NewCipher and safe for concurrent use.
type Cipher struct {
	block   *aes128.Cipher
	mode    Mode
	padding padding.Padding
}

// NewCipher expands key and returns a cipher for the given mode. A nil pad
// selects PKCS#7. Padding only applies to ECB; CFB ignores it.
func NewCipher(key []byte, mode Mode, pad padding.Padding) (*Cipher, error) {
	if mode != ECB && mode != CFB {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedMode, mode)
	}

	block, err := aes128.NewCipher(key)
	if err != nil {
		return nil, err
	}

	if pad == nil {
		pad = &padding.PKCS7{}
	}

	return &Cipher{
		block:   block,
		mode:    mode,
		padding: pad,
	}, nil
}

// Encrypt encrypts plaintext of any length. For ECB the iv argument is
// ignored and ivUsed is nil. For CFB a nil iv is replaced with a fresh
// random one; ivUsed reports the IV that was actually applied, which the
// caller must keep to decrypt (it is not embedded in the ciphertext).
func (c *Cipher) Encrypt(plaintext, iv []byte) (ivUsed, ciphertext []byte, err error) {
	switch c.mode {
	case ECB:
		ciphertext, err = c.encryptECB(c.padding.Pad(plaintext, aes128.BlockSize))
		return nil, ciphertext, err
	case CFB:
		if iv == nil {
			iv, err = GenerateIV()
			if err != nil {
				return nil, nil, err
			}
		}
		if len(iv) != aes128.BlockSize {
			return nil, nil, fmt.Errorf("%w: got %d", ErrInvalidIVLength, len(iv))
		}
		ciphertext, err = c.encryptCFB(plaintext, iv)
		if err != nil {
			return nil, nil, err
		}
		return iv, ciphertext, nil
	}
	return nil, nil, fmt.Errorf("%w: %d", ErrUnsupportedMode, c.mode)
}

// Decrypt reverses Encrypt. ECB validates the ciphertext length and strips
// padding; CFB requires the exact IV used at encryption time.
func (c *Cipher) Decrypt(ciphertext, iv []byte) ([]byte, error) {
	switch c.mode {
	case ECB:
		if len(ciphertext) == 0 || len(ciphertext)%aes128.BlockSize != 0 {
			return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidCiphertextLength, len(ciphertext))
		}
		decrypted, err := c.decryptECB(ciphertext)
		if err != nil {
			return nil, err
		}
		return c.padding.Unpad(decrypted, aes128.BlockSize)
	case CFB:
		if iv == nil {
			return nil, ErrMissingIV
		}
		if len(iv) != aes128.BlockSize {
			return nil, fmt.Errorf("%w: got %d", ErrInvalidIVLength, len(iv))
		}
		return c.decryptCFB(ciphertext, iv)
	}
	return nil, fmt.Errorf("%w: %d", ErrUnsupportedMode, c.mode)
}

// encryptECB encrypts the already-padded plaintext block by block. Blocks
// are independent, so encryption fans out across goroutines.
func (c *Cipher) encryptECB(plaintext []byte) ([]byte, error) {
	ciphertext := make([]byte, len(plaintext))

	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	for i := 0; i < len(plaintext); i += aes128.BlockSize {
		wg.Add(1)
		go func(off int) {
			defer wg.Done()

			block, err := c.block.EncryptBlock(plaintext[off : off+aes128.BlockSize])
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				return
			}
			copy(ciphertext[off:], block)
		}(i)
	}

	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return ciphertext, nil
}

func (c *Cipher) decryptECB(ciphertext []byte) ([]byte, error) {
	plaintext := make([]byte, len(ciphertext))

	for i := 0; i < len(ciphertext); i += aes128.BlockSize {
		block, err := c.block.DecryptBlock(ciphertext[i : i+aes128.BlockSize])
		if err != nil {
			return nil, err
		}
		copy(plaintext[i:], block)
	}

	return plaintext, nil
}

// encryptCFB XORs the plaintext with keystream blocks produced by encrypting
// a feedback register seeded with the IV. The register follows the
// ciphertext, so only the block cipher's encrypt direction is ever used.
func (c *Cipher) encryptCFB(plaintext, iv []byte) ([]byte, error) {
	blockSize := aes128.BlockSize
	ciphertext := make([]byte, len(plaintext))
	register := make([]byte, blockSize)
	copy(register, iv)

	pos := 0
	for pos < len(plaintext) {
		keystream, err := c.block.EncryptBlock(register)
		if err != nil {
			return nil, err
		}

		segLen := blockSize
		if pos+blockSize > len(plaintext) {
			segLen = len(plaintext) - pos
		}

		for j := 0; j < segLen; j++ {
			ciphertext[pos+j] = plaintext[pos+j] ^ keystream[j]
		}

		// A short segment can only be the last one, so the partial
		// register shift is never consumed by a further step.
		if segLen == blockSize {
			copy(register, ciphertext[pos:pos+blockSize])
		} else {
			copy(register, register[segLen:])
			copy(register[blockSize-segLen:], ciphertext[pos:pos+segLen])
		}

		pos += segLen
	}

	return ciphertext, nil
}

// decryptCFB mirrors encryptCFB; the register follows the *ciphertext*
// segments, which is what makes the stream self-synchronizing.
func (c *Cipher) decryptCFB(ciphertext, iv []byte) ([]byte, error) {
	blockSize := aes128.BlockSize
	plaintext := make([]byte, len(ciphertext))
	register := make([]byte, blockSize)
	copy(register, iv)

	pos := 0
	for pos < len(ciphertext) {
		keystream, err := c.block.EncryptBlock(register)
		if err != nil {
			return nil, err
		}

		segLen := blockSize
		if pos+blockSize > len(ciphertext) {
			segLen = len(ciphertext) - pos
		}

		for j := 0; j < segLen; j++ {
			plaintext[pos+j] = ciphertext[pos+j] ^ keystream[j]
		}

		if segLen == blockSize {
			copy(register, ciphertext[pos:pos+blockSize])
		} else {
			copy(register, register[segLen:])
			copy(register[blockSize-segLen:], ciphertext[pos:pos+segLen])
		}

		pos += segLen
	}

	return plaintext, nil
}

// GenerateIV returns 16 bytes from the system's cryptographic random source.
func GenerateIV() ([]byte, error) {
	iv := make([]byte, aes128.BlockSize)
	if _, err := rand.Read(iv); err != nil {
		return nil, fmt.Errorf("cipher: generating IV: %w", err)
	}
	return iv, nil
}
