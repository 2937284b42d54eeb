//go:build !keccakdebug

package keccak

// debugChecks enables precondition assertions. Build with -tags keccakdebug to turn them on.
const debugChecks = false
