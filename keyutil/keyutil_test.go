package keyutil

import (
	"bytes"
	"errors"
	"testing"
)

func TestNormalizeKeyHex(t *testing.T) {
	key, err := NormalizeKey("000102030405060708090a0b0c0d0e0f")
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}
	if !bytes.Equal(key, want) {
		t.Errorf("key = %x, want %x", key, want)
	}

	// surrounding whitespace is tolerated for hex input
	key2, err := NormalizeKey("  000102030405060708090a0b0c0d0e0f\n")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(key2, want) {
		t.Errorf("trimmed key = %x, want %x", key2, want)
	}
}

func TestNormalizeKeyUTF8(t *testing.T) {
	key, err := NormalizeKey("ThisIsA128BitKey")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(key, []byte("ThisIsA128BitKey")) {
		t.Errorf("key = %q", key)
	}
}

func TestNormalizeKeyErrors(t *testing.T) {
	cases := []string{
		"",
		"short",
		"seventeen bytes!!",
		// 32 chars but no valid hex: read as 32 UTF-8 bytes, too long
		"zzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzz",
	}
	for _, s := range cases {
		if _, err := NormalizeKey(s); !errors.Is(err, ErrInvalidKeyText) {
			t.Errorf("NormalizeKey(%q) error = %v, want ErrInvalidKeyText", s, err)
		}
	}
}

func TestNormalizeIV(t *testing.T) {
	iv, err := NormalizeIV("0123456789abcdef")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(iv, []byte("0123456789abcdef")) {
		t.Errorf("iv = %q", iv)
	}

	if _, err := NormalizeIV("too short"); !errors.Is(err, ErrInvalidIVText) {
		t.Errorf("error = %v, want ErrInvalidIVText", err)
	}
}

func TestHexCodec(t *testing.T) {
	data := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	encoded := EncodeHex(data)
	if encoded != "deadbeef" {
		t.Errorf("EncodeHex = %q", encoded)
	}

	decoded, err := DecodeHex(" deadbeef\n")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(decoded, data) {
		t.Errorf("DecodeHex = %x", decoded)
	}

	if _, err := DecodeHex("not hex"); err == nil {
		t.Error("DecodeHex(not hex): expected error")
	}
}
