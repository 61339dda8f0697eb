/*
 * movecore - infinite board chess move generation and legality core
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 movecore contributors
 */

package moveset

import (
	"math/big"

	"github.com/infinite-chess/movecore/internal/boardquery"
	"github.com/infinite-chess/movecore/internal/types"
)

// chebyshevDistance returns the Chebyshev distance between a and b. Huygen
// only ever slides along pure rook directions, so one axis is always zero
// and this reduces to the absolute value of the other.
func chebyshevDistance(a, b types.Coords) *big.Int {
	dx := new(big.Int).Abs(new(big.Int).Sub(a.X, b.X))
	dy := new(big.Int).Abs(new(big.Int).Sub(a.Y, b.Y))
	if dx.Cmp(dy) >= 0 {
		return dx
	}
	return dy
}

// huygenBlocking implements the Huygen's prime-distance transparency: a
// square at a non-prime Chebyshev distance from the slide's origin never
// blocks, friendly or enemy, because the Huygen passes straight through it.
// Only squares at a prime distance behave like an ordinary slider's
// obstruction.
func huygenBlocking(mover types.Player, blockingPiece types.Piece, startCoords types.Coords, premove bool) boardquery.Validity {
	if !chebyshevDistance(startCoords, blockingPiece.Coords).ProbablyPrime(20) {
		return boardquery.ValidityOpen
	}
	if blockingPiece.Player() == types.NEUTRAL || blockingPiece.Player() == mover {
		return boardquery.ValidityBlocked
	}
	if premove {
		return boardquery.ValidityOpen
	}
	return boardquery.ValidityCapture
}

// huygenIgnore excludes every square whose distance from start is not prime
// from the set of valid landing squares, even though the slide still passes
// through them (see huygenBlocking).
func huygenIgnore(start, end types.Coords) bool {
	return chebyshevDistance(start, end).ProbablyPrime(20)
}
