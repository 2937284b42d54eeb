// Package keccak provides the Keccak-p[1600] permutation and the sponge state it drives.
//
// The State type holds the 1600-bit working state of a SHA-3 family sponge as 25 little-endian 64-bit lanes. It
// absorbs rate-sized blocks, permutes, and exposes its leading bytes for squeezing. Padding, domain separation, rate
// selection, and buffering of partial blocks are left to the caller, so the same State serves SHA3-224/256/384/512,
// SHAKE128/256, legacy Keccak-256, TurboSHAKE, and reduced-round constructions alike.
//
// Preconditions (block alignment, output length, non-negative round counts) are checked only when built with the
// keccakdebug build tag.
package keccak

const (
	// Lanes is the number of 64-bit lanes in the state.
	Lanes = 25

	// Size is the width of the state in bytes: 1600 / 8.
	Size = 200

	// DefaultRounds is the round count of Keccak-f[1600], the permutation used by FIPS 202.
	DefaultRounds = 24

	laneSize = 8
)

// State is a Keccak-p[1600] sponge state. The zero value is a zeroed state bound to 0 rounds, which makes Permute the
// identity; use New to pick a round count. Designed for stack allocation.
//
// A State holds message- or key-derived bits. Call Clear once the output has been extracted.
type State struct {
	a      [Lanes]uint64
	rounds int
}

// New returns a zeroed state which permutes with the given number of rounds.
func New(rounds int) State {
	if debugChecks && rounds < 0 {
		panic("keccak: negative round count")
	}
	return State{rounds: rounds}
}

// Rounds returns the number of rounds applied by Permute.
func (s *State) Rounds() int {
	return s.rounds
}

// Lane returns the lane at column x, row y. Both coordinates are taken mod 5.
func (s *State) Lane(x, y int) uint64 {
	return s.a[index(x, y)]
}

// AbsorbBlock XORs block into the leading lanes of the state and applies the permutation once.
//
// The block length must be a multiple of 8 and no more than Size. Trailing bytes that don't fill a lane, and any
// lanes past the end of the state, are ignored.
func (s *State) AbsorbBlock(block []byte) {
	if debugChecks {
		if len(block)%laneSize != 0 {
			panic("keccak: block length is not a multiple of the lane size")
		}
		if len(block) > Size {
			panic("keccak: block is larger than the state")
		}
	}

	n := min(len(block)/laneSize, Lanes)
	for i := range n {
		s.a[i] ^= le64(block[laneSize*i:])
	}
	s.Permute()
}

// Extract writes the leading len(out) bytes of the state into out, lane by lane in little-endian order. The final
// lane is truncated if out does not end on a lane boundary. It never permutes the state; callers squeezing more than
// one rate of output must call Permute between extractions.
//
// The length of out must not exceed Size; only the first Size bytes are written if it does.
func (s *State) Extract(out []byte) {
	if debugChecks && len(out) > Size {
		panic("keccak: output is larger than the state")
	}

	out = out[:min(len(out), Size)]
	i := 0
	for ; len(out) >= laneSize; i++ {
		putLE64(out, s.a[i])
		out = out[laneSize:]
	}
	for j := range out {
		out[j] = byte(s.a[i] >> (8 * j))
	}
}

// Permute applies Keccak-p[1600, Rounds()] to the state.
func (s *State) Permute() {
	P1600(&s.a, s.rounds)
}

// Clear zeroes the lanes of the state. The round count is kept, so a cleared state can be reused.
func (s *State) Clear() {
	clear(s.a[:])
}

// index maps lane coordinates to a position in the lane array.
func index(x, y int) int {
	return mod5(x) + 5*mod5(y)
}

func mod5(v int) int {
	v %= 5
	if v < 0 {
		v += 5
	}
	return v
}

// le64 reads a little-endian uint64 from at least 8 bytes.
func le64(b []byte) uint64 {
	_ = b[7]
	return uint64(b[0]) | uint64(b[1])<<8 | uint64(b[2])<<16 | uint64(b[3])<<24 |
		uint64(b[4])<<32 | uint64(b[5])<<40 | uint64(b[6])<<48 | uint64(b[7])<<56
}

// putLE64 writes v into the first 8 bytes of b in little-endian order.
func putLE64(b []byte, v uint64) {
	_ = b[7]
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
	b[4] = byte(v >> 32)
	b[5] = byte(v >> 40)
	b[6] = byte(v >> 48)
	b[7] = byte(v >> 56)
}
