package aes128

import (
	"testing"

	"github.com/thomasNguyen-196/AES-128-Cipher-CLI/gf"
)

// affineTransform is the FIPS-197 section 5.1.1 affine map applied after
// GF(2^8) inversion when building the S-box.
func affineTransform(b byte) byte {
	result := byte(0)
	for i := 0; i < 8; i++ {
		bit := byte(0)
		bit ^= (b >> i) & 1
		bit ^= (b >> ((i + 4) % 8)) & 1
		bit ^= (b >> ((i + 5) % 8)) & 1
		bit ^= (b >> ((i + 6) % 8)) & 1
		bit ^= (b >> ((i + 7) % 8)) & 1
		result |= bit << i
	}
	return result ^ 0x63
}

func invAffineTransform(b byte) byte {
	result := byte(0)
	for i := 0; i < 8; i++ {
		bit := byte(0)
		bit ^= (b >> ((i + 2) % 8)) & 1
		bit ^= (b >> ((i + 5) % 8)) & 1
		bit ^= (b >> ((i + 7) % 8)) & 1
		result |= bit << i
	}
	return result ^ 0x05
}

// TestSBoxConstruction rebuilds the precomputed table from field inversion
// plus the affine transform. A single differing byte silently produces a
// non-interoperable cipher, so every entry is compared.
func TestSBoxConstruction(t *testing.T) {
	for i := 0; i < 256; i++ {
		val := byte(i)
		if val != 0 {
			inv, err := gf.Inverse(val)
			if err != nil {
				t.Fatalf("Inverse(0x%02X): %v", i, err)
			}
			val = inv
		}
		if got := affineTransform(val); got != sBox[i] {
			t.Errorf("sBox[0x%02X] = 0x%02X, construction gives 0x%02X", i, sBox[i], got)
		}
	}
}

func TestInvSBoxConstruction(t *testing.T) {
	for i := 0; i < 256; i++ {
		val := invAffineTransform(byte(i))
		if val != 0 {
			inv, err := gf.Inverse(val)
			if err != nil {
				t.Fatalf("Inverse(0x%02X): %v", val, err)
			}
			val = inv
		}
		if val != invSBox[i] {
			t.Errorf("invSBox[0x%02X] = 0x%02X, construction gives 0x%02X", i, invSBox[i], val)
		}
	}
}

func TestSBoxRoundTrip(t *testing.T) {
	for i := 0; i < 256; i++ {
		if invSBox[sBox[i]] != byte(i) {
			t.Errorf("invSBox[sBox[0x%02X]] = 0x%02X", i, invSBox[sBox[i]])
		}
	}
}
