//go:build keccakdebug

package keccak

// debugChecks enables precondition assertions.
const debugChecks = true
