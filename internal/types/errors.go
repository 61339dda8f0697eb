/*
 * movecore - infinite board chess move generation and legality core
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 movecore contributors
 */

package types

import "errors"

// Sentinel errors for the two recoverable error kinds among the three named
// in spec.md section 7. Format errors are returned wrapped with
// fmt.Errorf("%w: ...") and movevalidation's IllegalMoveError unwraps to
// ErrIllegalMove, so callers can errors.Is against these while still
// getting a human reason string; the third kind, InvariantViolation, is
// reserved for bugs and should propagate as a panic, never be swallowed.
var (
	// ErrFormat marks an ICN parse failure or otherwise malformed wire input.
	ErrFormat = errors.New("format error")

	// ErrIllegalMove marks a move rejected by validateMove/validateConclusion.
	ErrIllegalMove = errors.New("illegal move")
)

// InvariantViolation is a panic payload for internal inconsistencies (an
// index mismatch in applyMove, a missing Change action, adding into an
// already-occupied slot, stepping outside the move list). These indicate a
// bug in the engine itself, not a bad move from a caller, so they are never
// returned as an error - they panic and the caller is expected to let the
// operation terminate.
type InvariantViolation struct {
	Reason string
}

// Error satisfies the error interface so InvariantViolation reads well in
// panic output, even though it is never returned through a normal error
// path.
func (e InvariantViolation) Error() string {
	return "invariant violation: " + e.Reason
}

// PanicInvariant panics with an InvariantViolation carrying reason.
func PanicInvariant(reason string) {
	panic(InvariantViolation{Reason: reason})
}
