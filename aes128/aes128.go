// Package aes128 implements the AES-128 block cipher: key expansion and the
// forward and inverse round transformations over a single 16-byte block.
package aes128

import (
	"errors"
	"fmt"

	"github.com/thomasNguyen-196/AES-128-Cipher-CLI/gf"
)

const (
	// BlockSize is the AES block size in bytes.
	BlockSize = 16
	// KeySize is the AES-128 key size in bytes.
	KeySize = 16

	rounds = 10
	nb     = 4 // state columns
	nk     = 4 // key words
)

var (
	ErrInvalidKeyLength   = errors.New("aes128: key must be exactly 16 bytes")
	ErrInvalidBlockLength = errors.New("aes128: block must be exactly 16 bytes")
)

// Cipher holds the expanded key schedule: 11 round keys of 16 bytes each.
// It is immutable after NewCipher and safe for concurrent use.
type Cipher struct {
	roundKeys [][]byte
}

// NewCipher expands key into a schedule and returns a ready block cipher.
func NewCipher(key []byte) (*Cipher, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidKeyLength, len(key))
	}
	return &Cipher{roundKeys: expandKey(key)}, nil
}

// BlockSize returns the cipher block size in bytes.
func (c *Cipher) BlockSize() int {
	return BlockSize
}

// EncryptBlock applies the 10 forward AES rounds to one 16-byte block.
func (c *Cipher) EncryptBlock(plaintext []byte) ([]byte, error) {
	if len(plaintext) != BlockSize {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidBlockLength, len(plaintext))
	}

	state := bytesToState(plaintext)
	c.addRoundKey(state, 0)

	for round := 1; round < rounds; round++ {
		subBytes(state)
		shiftRows(state)
		mixColumns(state)
		c.addRoundKey(state, round)
	}

	subBytes(state)
	shiftRows(state)
	c.addRoundKey(state, rounds)

	return stateToBytes(state), nil
}

// DecryptBlock applies the inverse rounds in reverse order to one block.
func (c *Cipher) DecryptBlock(ciphertext []byte) ([]byte, error) {
	if len(ciphertext) != BlockSize {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidBlockLength, len(ciphertext))
	}

	state := bytesToState(ciphertext)
	c.addRoundKey(state, rounds)

	for round := rounds - 1; round > 0; round-- {
		invShiftRows(state)
		invSubBytes(state)
		c.addRoundKey(state, round)
		invMixColumns(state)
	}

	invShiftRows(state)
	invSubBytes(state)
	c.addRoundKey(state, 0)

	return stateToBytes(state), nil
}

func subBytes(state [][]byte) {
	for i := 0; i < 4; i++ {
		for j := 0; j < nb; j++ {
			state[i][j] = sBox[state[i][j]]
		}
	}
}

func invSubBytes(state [][]byte) {
	for i := 0; i < 4; i++ {
		for j := 0; j < nb; j++ {
			state[i][j] = invSBox[state[i][j]]
		}
	}
}

// shiftRows rotates state row r left by r positions.
func shiftRows(state [][]byte) {
	for row := 1; row < 4; row++ {
		rotateLeft(state[row], row)
	}
}

func invShiftRows(state [][]byte) {
	for row := 1; row < 4; row++ {
		rotateRight(state[row], row)
	}
}

func mixColumns(state [][]byte) {
	for col := 0; col < nb; col++ {
		a0, a1, a2, a3 := state[0][col], state[1][col], state[2][col], state[3][col]

		state[0][col] = gf.Mul(0x02, a0) ^ gf.Mul(0x03, a1) ^ a2 ^ a3
		state[1][col] = a0 ^ gf.Mul(0x02, a1) ^ gf.Mul(0x03, a2) ^ a3
		state[2][col] = a0 ^ a1 ^ gf.Mul(0x02, a2) ^ gf.Mul(0x03, a3)
		state[3][col] = gf.Mul(0x03, a0) ^ a1 ^ a2 ^ gf.Mul(0x02, a3)
	}
}

func invMixColumns(state [][]byte) {
	for col := 0; col < nb; col++ {
		a0, a1, a2, a3 := state[0][col], state[1][col], state[2][col], state[3][col]

		state[0][col] = gf.Mul(0x0E, a0) ^ gf.Mul(0x0B, a1) ^ gf.Mul(0x0D, a2) ^ gf.Mul(0x09, a3)
		state[1][col] = gf.Mul(0x09, a0) ^ gf.Mul(0x0E, a1) ^ gf.Mul(0x0B, a2) ^ gf.Mul(0x0D, a3)
		state[2][col] = gf.Mul(0x0D, a0) ^ gf.Mul(0x09, a1) ^ gf.Mul(0x0E, a2) ^ gf.Mul(0x0B, a3)
		state[3][col] = gf.Mul(0x0B, a0) ^ gf.Mul(0x0D, a1) ^ gf.Mul(0x09, a2) ^ gf.Mul(0x0E, a3)
	}
}

func (c *Cipher) addRoundKey(state [][]byte, round int) {
	for col := 0; col < nb; col++ {
		for row := 0; row < 4; row++ {
			state[row][col] ^= c.roundKeys[round][row+col*4]
		}
	}
}

// expandKey derives the 44-word schedule (FIPS-197 section 5.2) and regroups
// it into 11 round keys of 16 bytes.
func expandKey(key []byte) [][]byte {
	totalWords := nb * (rounds + 1)
	w := make([][]byte, totalWords)

	for i := 0; i < nk; i++ {
		w[i] = make([]byte, 4)
		copy(w[i], key[i*4:(i+1)*4])
	}

	for i := nk; i < totalWords; i++ {
		temp := make([]byte, 4)
		copy(temp, w[i-1])

		if i%nk == 0 {
			temp = subWord(rotWord(temp))
			temp[0] ^= rcon(i / nk)
		}

		w[i] = make([]byte, 4)
		for j := 0; j < 4; j++ {
			w[i][j] = w[i-nk][j] ^ temp[j]
		}
	}

	roundKeys := make([][]byte, rounds+1)
	for round := 0; round <= rounds; round++ {
		roundKeys[round] = make([]byte, nb*4)
		for col := 0; col < nb; col++ {
			for row := 0; row < 4; row++ {
				roundKeys[round][row+col*4] = w[round*nb+col][row]
			}
		}
	}

	return roundKeys
}

func rotWord(word []byte) []byte {
	return []byte{word[1], word[2], word[3], word[0]}
}

func subWord(word []byte) []byte {
	result := make([]byte, 4)
	for i := 0; i < 4; i++ {
		result[i] = sBox[word[i]]
	}
	return result
}

// rcon produces the i-th round constant by repeated doubling in GF(2^8),
// yielding the standard sequence 0x01, 0x02, ..., 0x80, 0x1B, 0x36.
func rcon(i int) byte {
	rc := byte(1)
	for j := 1; j < i; j++ {
		rc = gf.Mul(rc, 0x02)
	}
	return rc
}

// bytesToState loads a block into the 4x4 state matrix, column-major.
func bytesToState(data []byte) [][]byte {
	state := make([][]byte, 4)
	for i := 0; i < 4; i++ {
		state[i] = make([]byte, nb)
		for j := 0; j < nb; j++ {
			state[i][j] = data[i+j*4]
		}
	}
	return state
}

func stateToBytes(state [][]byte) []byte {
	data := make([]byte, nb*4)
	for i := 0; i < 4; i++ {
		for j := 0; j < nb; j++ {
			data[i+j*4] = state[i][j]
		}
	}
	return data
}

func rotateLeft(row []byte, n int) {
	n = n % len(row)
	temp := make([]byte, len(row))
	copy(temp, row[n:])
	copy(temp[len(row)-n:], row[:n])
	copy(row, temp)
}

func rotateRight(row []byte, n int) {
	n = n % len(row)
	temp := make([]byte, len(row))
	copy(temp, row[len(row)-n:])
	copy(temp[n:], row[:len(row)-n])
	copy(row, temp)
}
