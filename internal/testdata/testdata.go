// Package testdata provides a deterministic random bit generator for testing.
package testdata

import (
	"golang.org/x/crypto/sha3"
)

// DRBG is a deterministic random bit generator based on SHAKE128.
type DRBG struct {
	h sha3.ShakeHash
}

// New returns a new DRBG instance initialized with the given customization string.
func New(customization string) *DRBG {
	h := sha3.NewShake128()
	_, _ = h.Write([]byte(customization))
	return &DRBG{h}
}

// Data returns n bytes of deterministic data from the DRBG.
func (d *DRBG) Data(n int) []byte {
	b := make([]byte, n)
	_, _ = d.h.Read(b)
	return b
}

// Lanes returns 25 deterministic lanes from the DRBG.
func (d *DRBG) Lanes() (a [25]uint64) {
	b := d.Data(8 * len(a))
	for i := range a {
		for j := range 8 {
			a[i] |= uint64(b[8*i+j]) << (8 * j)
		}
	}
	return a
}
