package testdata

// Rate is a sponge rate used by a SHA-3 family function.
type Rate struct {
	Name string
	N    int
}

// Rates lists the rates, in bytes, of the standard Keccak-based functions.
var Rates = []Rate{
	{"SHA3-512", 72},
	{"SHA3-384", 104},
	{"SHA3-256", 136},
	{"SHA3-224", 144},
	{"SHAKE128", 168},
}
