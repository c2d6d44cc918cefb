// Package gf implements arithmetic over GF(2^8) with the AES reduction
// polynomial x^8 + x^4 + x^3 + x + 1.
package gf

import "errors"

// Modulus is the AES reduction polynomial with the implicit x^8 bit dropped.
const Modulus byte = 0x1B

// fullModulus carries the x^8 bit explicitly for polynomial division.
const fullModulus uint16 = 0x11B

var ErrNoInverse = errors.New("gf: zero has no multiplicative inverse")

// Add adds two field elements. Addition in GF(2^8) is XOR.
func Add(a, b byte) byte {
	return a ^ b
}

// Mul multiplies two field elements with shift-and-reduce modulo the AES
// polynomial.
func Mul(a, b byte) byte {
	var result byte
	for i := 0; i < 8; i++ {
		if b&1 == 1 {
			result ^= a
		}
		highBit := a & 0x80
		a <<= 1
		if highBit != 0 {
			a ^= Modulus
		}
		b >>= 1
	}
	return result
}

// Inverse finds the multiplicative inverse of a using the extended Euclidean
// algorithm over GF(2) polynomials. Zero has no inverse.
func Inverse(a byte) (byte, error) {
	if a == 0 {
		return 0, ErrNoInverse
	}

	r0, r1 := fullModulus, uint16(a)
	t0, t1 := uint16(0), uint16(1)

	for r1 != 0 {
		q := polyDiv(r0, r1)
		r0, r1 = r1, polyMod(r0, r1)
		t0, t1 = t1, t0^polyMul(q, t1)
	}

	// The modulus is irreducible, so gcd(a, modulus) is always 1.
	if r0 != 1 {
		return 0, ErrNoInverse
	}

	return byte(t0), nil
}

func degree(poly uint16) int {
	if poly == 0 {
		return -1
	}
	deg := 0
	for poly > 0 {
		poly >>= 1
		deg++
	}
	return deg - 1
}

// polyMul multiplies two GF(2) polynomials without reduction.
func polyMul(a, b uint16) uint16 {
	var result uint16
	for b != 0 {
		if b&1 == 1 {
			result ^= a
		}
		a <<= 1
		b >>= 1
	}
	return result
}

func polyDiv(a, b uint16) uint16 {
	if b == 0 {
		return 0
	}

	degA := degree(a)
	degB := degree(b)

	var quotient uint16
	for degA >= degB {
		shift := degA - degB
		quotient ^= 1 << shift
		a ^= b << shift
		degA = degree(a)
	}

	return quotient
}

func polyMod(a, b uint16) uint16 {
	if b == 0 {
		return a
	}

	degA := degree(a)
	degB := degree(b)

	for degA >= degB && a != 0 {
		shift := degA - degB
		a ^= b << shift
		degA = degree(a)
	}

	return a
}
