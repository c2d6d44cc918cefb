package cipher

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/thomasNguyen-196/AES-128-Cipher-CLI/aes128"
	"github.com/thomasNguyen-196/AES-128-Cipher-CLI/padding"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex %q: %v", s, err)
	}
	return b
}

func TestParseMode(t *testing.T) {
	for name, want := range map[string]Mode{"ecb": ECB, "cfb": CFB} {
		got, err := ParseMode(name)
		if err != nil || got != want {
			t.Errorf("ParseMode(%q) = %v, %v", name, got, err)
		}
		if got.String() != name {
			t.Errorf("%v.String() = %q, want %q", got, got.String(), name)
		}
	}

	if _, err := ParseMode("cbc"); !errors.Is(err, ErrUnsupportedMode) {
		t.Errorf("ParseMode(cbc) error = %v, want ErrUnsupportedMode", err)
	}
}

func TestNewCipherKeyLength(t *testing.T) {
	if _, err := NewCipher(make([]byte, 15), ECB, nil); !errors.Is(err, aes128.ErrInvalidKeyLength) {
		t.Errorf("error = %v, want ErrInvalidKeyLength", err)
	}
}

// TestECBKnownAnswer pins the full ECB output, padding included: the FIPS-197
// plaintext block followed by the encryption of a full 0x10 pad block.
func TestECBKnownAnswer(t *testing.T) {
	key := mustHex(t, "000102030405060708090a0b0c0d0e0f")
	c, err := NewCipher(key, ECB, nil)
	if err != nil {
		t.Fatal(err)
	}

	ivUsed, ct, err := c.Encrypt(mustHex(t, "00112233445566778899aabbccddeeff"), nil)
	if err != nil {
		t.Fatal(err)
	}
	if ivUsed != nil {
		t.Errorf("ivUsed = %x, want nil for ECB", ivUsed)
	}

	want := "69c4e0d86a7b0430d8cdb78070b4c55a954f64f2e4e86e9eee82d20216684899"
	if got := hex.EncodeToString(ct); got != want {
		t.Errorf("ciphertext = %s, want %s", got, want)
	}
}

func TestECBEmptyPlaintext(t *testing.T) {
	key := mustHex(t, "000102030405060708090a0b0c0d0e0f")
	c, err := NewCipher(key, ECB, nil)
	if err != nil {
		t.Fatal(err)
	}

	_, ct, err := c.Encrypt(nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	// one full pad block of 0x10
	want := "954f64f2e4e86e9eee82d20216684899"
	if got := hex.EncodeToString(ct); got != want {
		t.Errorf("ciphertext = %s, want %s", got, want)
	}

	pt, err := c.Decrypt(ct, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(pt) != 0 {
		t.Errorf("decrypted %d bytes, want 0", len(pt))
	}
}

func TestECBRoundTrip(t *testing.T) {
	c, err := NewCipher([]byte("ThisIsA128BitKey"), ECB, nil)
	if err != nil {
		t.Fatal(err)
	}

	for _, n := range []int{0, 1, 15, 16, 17, 64, 333} {
		data := make([]byte, n)
		for i := range data {
			data[i] = byte(i * 13)
		}

		_, ct, err := c.Encrypt(data, nil)
		if err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		if len(ct) != (n/16+1)*16 {
			t.Fatalf("n=%d: ciphertext length %d", n, len(ct))
		}

		pt, err := c.Decrypt(ct, nil)
		if err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		if !bytes.Equal(pt, data) {
			t.Fatalf("n=%d: round trip mismatch", n)
		}
	}
}

// Identical plaintext blocks must map to identical ciphertext blocks; that
// structural leak is the documented cost of offering ECB at all.
func TestECBIdenticalBlocks(t *testing.T) {
	c, err := NewCipher([]byte("ThisIsA128BitKey"), ECB, nil)
	if err != nil {
		t.Fatal(err)
	}

	block := []byte("same block here!")
	_, ct, err := c.Encrypt(append(append([]byte(nil), block...), block...), nil)
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(ct[:16], ct[16:32]) {
		t.Error("identical plaintext blocks produced different ciphertext blocks")
	}
}

func TestECBDecryptLengthErrors(t *testing.T) {
	c, err := NewCipher([]byte("ThisIsA128BitKey"), ECB, nil)
	if err != nil {
		t.Fatal(err)
	}

	for _, n := range []int{0, 1, 15, 17, 31} {
		if _, err := c.Decrypt(make([]byte, n), nil); !errors.Is(err, ErrInvalidCiphertextLength) {
			t.Errorf("Decrypt(%d bytes) error = %v, want ErrInvalidCiphertextLength", n, err)
		}
	}
}

// TestECBDecryptBadPadding builds ciphertext blocks whose decryption ends in
// an out-of-range or inconsistent pad and checks the typed failure.
func TestECBDecryptBadPadding(t *testing.T) {
	key := []byte("ThisIsA128BitKey")
	block, err := aes128.NewCipher(key)
	if err != nil {
		t.Fatal(err)
	}
	c, err := NewCipher(key, ECB, nil)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		plain []byte
	}{
		{"pad byte zero", make([]byte, 16)},
		{"pad byte above block size", append(make([]byte, 15), 0x11)},
		{"inconsistent pad bytes", append(append(make([]byte, 13), 0x01), 0x03, 0x03)},
	}

	for _, tt := range tests {
		ct, err := block.EncryptBlock(tt.plain)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := c.Decrypt(ct, nil); !errors.Is(err, padding.ErrInvalidPadding) {
			t.Errorf("%s: error = %v, want ErrInvalidPadding", tt.name, err)
		}
	}
}

// TestCFBKnownAnswer checks the NIST SP 800-38A F.3.13 CFB128-AES128.Encrypt
// vectors, plus a truncated variant exercising the partial final segment.
func TestCFBKnownAnswer(t *testing.T) {
	key := mustHex(t, "2b7e151628aed2a6abf7158809cf4f3c")
	iv := mustHex(t, "000102030405060708090a0b0c0d0e0f")
	plaintext := mustHex(t,
		"6bc1bee22e409f96e93d7e117393172a"+
			"ae2d8a571e03ac9c9eb76fac45af8e51"+
			"30c81c46a35ce411e5fbc1191a0a52ef"+
			"f69f2445df4f9b17ad2b417be66c3710")
	want := "3b3fd92eb72dad20333449f8e83cfb4a" +
		"c8a64537a0b3a93fcde3cdad9f1ce58b" +
		"26751f67a3cbb140b1808cf187a4f4df" +
		"c04b05357c5d1c0eeac4c66f9ff7f2e6"

	c, err := NewCipher(key, CFB, nil)
	if err != nil {
		t.Fatal(err)
	}

	ivUsed, ct, err := c.Encrypt(plaintext, iv)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(ivUsed, iv) {
		t.Errorf("ivUsed = %x, want the supplied IV", ivUsed)
	}
	if got := hex.EncodeToString(ct); got != want {
		t.Errorf("ciphertext = %s, want %s", got, want)
	}

	pt, err := c.Decrypt(ct, iv)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(pt, plaintext) {
		t.Error("decrypt mismatch")
	}

	// 24-byte input: one full segment plus a short tail
	_, ct24, err := c.Encrypt(plaintext[:24], iv)
	if err != nil {
		t.Fatal(err)
	}
	want24 := "3b3fd92eb72dad20333449f8e83cfb4ac8a64537a0b3a93f"
	if got := hex.EncodeToString(ct24); got != want24 {
		t.Errorf("24-byte ciphertext = %s, want %s", got, want24)
	}
}

func TestCFBRoundTrip(t *testing.T) {
	c, err := NewCipher([]byte("ThisIsA128BitKey"), CFB, nil)
	if err != nil {
		t.Fatal(err)
	}
	iv := []byte("0123456789abcdef")

	for _, n := range []int{0, 1, 15, 16, 17, 31, 32, 33, 100} {
		data := make([]byte, n)
		for i := range data {
			data[i] = byte(i*7 + 3)
		}

		_, ct, err := c.Encrypt(data, iv)
		if err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		if len(ct) != n {
			t.Fatalf("n=%d: ciphertext length %d, want %d (CFB must not expand)", n, len(ct), n)
		}

		pt, err := c.Decrypt(ct, iv)
		if err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		if !bytes.Equal(pt, data) {
			t.Fatalf("n=%d: round trip mismatch", n)
		}
	}
}

func TestCFBGeneratedIV(t *testing.T) {
	c, err := NewCipher([]byte("ThisIsA128BitKey"), CFB, nil)
	if err != nil {
		t.Fatal(err)
	}

	plaintext := []byte("the same message, encrypted twice")
	iv1, ct1, err := c.Encrypt(plaintext, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(iv1) != 16 {
		t.Fatalf("generated IV length %d, want 16", len(iv1))
	}

	pt, err := c.Decrypt(ct1, iv1)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(pt, plaintext) {
		t.Error("round trip with generated IV failed")
	}

	iv2, ct2, err := c.Encrypt(plaintext, nil)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(iv1, iv2) {
		t.Error("two generated IVs are identical")
	}
	if bytes.Equal(ct1, ct2) {
		t.Error("different IVs produced identical ciphertext")
	}
}

func TestCFBDifferentIVs(t *testing.T) {
	c, err := NewCipher([]byte("ThisIsA128BitKey"), CFB, nil)
	if err != nil {
		t.Fatal(err)
	}

	plaintext := []byte("identical plaintext")
	_, ct1, err := c.Encrypt(plaintext, []byte("aaaaaaaaaaaaaaaa"))
	if err != nil {
		t.Fatal(err)
	}
	_, ct2, err := c.Encrypt(plaintext, []byte("bbbbbbbbbbbbbbbb"))
	if err != nil {
		t.Fatal(err)
	}

	if bytes.Equal(ct1, ct2) {
		t.Error("different IVs produced identical ciphertext")
	}
}

func TestCFBIVErrors(t *testing.T) {
	c, err := NewCipher([]byte("ThisIsA128BitKey"), CFB, nil)
	if err != nil {
		t.Fatal(err)
	}

	if _, _, err := c.Encrypt([]byte("x"), make([]byte, 8)); !errors.Is(err, ErrInvalidIVLength) {
		t.Errorf("Encrypt with 8-byte IV: error = %v, want ErrInvalidIVLength", err)
	}
	if _, err := c.Decrypt([]byte("x"), make([]byte, 8)); !errors.Is(err, ErrInvalidIVLength) {
		t.Errorf("Decrypt with 8-byte IV: error = %v, want ErrInvalidIVLength", err)
	}
	if _, err := c.Decrypt([]byte("x"), nil); !errors.Is(err, ErrMissingIV) {
		t.Errorf("Decrypt without IV: error = %v, want ErrMissingIV", err)
	}
}

func TestGenerateIV(t *testing.T) {
	iv, err := GenerateIV()
	if err != nil {
		t.Fatal(err)
	}
	if len(iv) != aes128.BlockSize {
		t.Fatalf("len = %d, want %d", len(iv), aes128.BlockSize)
	}
}
