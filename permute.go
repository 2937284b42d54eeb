package keccak

import "math/bits"

// rc stores the round constants of Keccak-f[1600] for use in the ι step.
var rc = [DefaultRounds]uint64{
	0x0000000000000001,
	0x0000000000008082,
	0x800000000000808A,
	0x8000000080008000,
	0x000000000000808B,
	0x0000000080000001,
	0x8000000080008081,
	0x8000000000008009,
	0x000000000000008A,
	0x0000000000000088,
	0x0000000080008009,
	0x000000008000000A,
	0x000000008000808B,
	0x800000000000008B,
	0x8000000000008089,
	0x8000000000008003,
	0x8000000000008002,
	0x8000000000000080,
	0x000000000000800A,
	0x800000008000000A,
	0x8000000080008081,
	0x8000000000008080,
	0x0000000080000001,
	0x8000000080008008,
}

// rhoOffsets stores the rotation offsets for use in the ρ step, indexed by x + 5*y.
var rhoOffsets = [Lanes]int{
	0, 1, 62, 28, 27,
	36, 44, 6, 55, 20,
	3, 10, 43, 25, 39,
	41, 45, 15, 21, 8,
	18, 2, 61, 56, 14,
}

// F1600 applies the Keccak-f[1600] permutation (24 rounds) to the lanes.
func F1600(a *[Lanes]uint64) {
	P1600(a, DefaultRounds)
}

// P1600 applies the Keccak-p[1600, rounds] permutation to the lanes. The rounds are the last ones of the round
// sequence, so P1600(a, 12) is the permutation used by KangarooTwelve and TurboSHAKE. With rounds == 0 it does
// nothing.
func P1600(a *[Lanes]uint64, rounds int) {
	for ir := DefaultRounds - rounds; ir < DefaultRounds; ir++ {
		round(a, roundConstant(ir))
	}
}

func round(a *[Lanes]uint64, c uint64) {
	theta(a)
	rho(a)
	pi(a)
	chi(a)
	iotaStep(a, c)
}

// theta XORs each lane with the parity of the column to its left and the rotated parity of the column to its right.
func theta(a *[Lanes]uint64) {
	var c [5]uint64
	for x := range 5 {
		c[x] = a[x] ^ a[x+5] ^ a[x+10] ^ a[x+15] ^ a[x+20]
	}
	for x := range 5 {
		d := c[(x+4)%5] ^ bits.RotateLeft64(c[(x+1)%5], 1)
		for y := 0; y < Lanes; y += 5 {
			a[x+y] ^= d
		}
	}
}

// rho rotates every lane by its fixed offset.
func rho(a *[Lanes]uint64) {
	for i := range a {
		a[i] = bits.RotateLeft64(a[i], rhoOffsets[i])
	}
}

// pi moves lane (x, y) to (y, 2x+3y).
func pi(a *[Lanes]uint64) {
	b := *a
	for y := range 5 {
		for x := range 5 {
			a[y+5*((2*x+3*y)%5)] = b[x+5*y]
		}
	}
}

// chi is the nonlinear step: each lane is XORed with the complement of its right neighbor ANDed with the lane after
// that, row by row.
func chi(a *[Lanes]uint64) {
	for y := 0; y < Lanes; y += 5 {
		r0, r1, r2, r3, r4 := a[y], a[y+1], a[y+2], a[y+3], a[y+4]
		a[y] = r0 ^ (^r1 & r2)
		a[y+1] = r1 ^ (^r2 & r3)
		a[y+2] = r2 ^ (^r3 & r4)
		a[y+3] = r3 ^ (^r4 & r0)
		a[y+4] = r4 ^ (^r0 & r1)
	}
}

// iotaStep XORs the round constant into lane (0, 0).
func iotaStep(a *[Lanes]uint64, c uint64) {
	a[0] ^= c
}

// roundConstant returns the ι constant for round index ir. Indices outside the Keccak-f[1600] schedule, which only
// occur with more than 24 rounds, are derived from the LFSR that generates the table.
func roundConstant(ir int) uint64 {
	if ir >= 0 && ir < len(rc) {
		return rc[ir]
	}

	var c uint64
	for j := range 7 {
		if lfsr(j+7*ir) == 1 {
			c |= uint64(1) << (uint(1)<<j - 1)
		}
	}
	return c
}

// lfsr returns bit t of the output of the degree-8 LFSR x^8 + x^6 + x^5 + x^4 + 1, seeded with 1.
func lfsr(t int) uint64 {
	t %= 255
	if t < 0 {
		t += 255
	}

	r := uint16(1)
	for range t {
		r <<= 1
		if r&0x100 != 0 {
			r ^= 0x171
		}
	}
	return uint64(r & 1)
}
