/*
 * movecore - infinite board chess move generation and legality core
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 movecore contributors
 */

// Package boardquery implements the small square-classification primitives
// shared by the moveset defaults and the legal-move pipeline: is a square
// out of bounds, empty, held by a void/neutral piece, friendly, or enemy.
// Grounded on FrankyGo's Position.IsAttacked/GetPiece helpers, which answer
// the same "what, if anything, sits here" question against the bitboard
// representation; here the answer comes from OrganizedPieces.PieceByCoords
// instead of a bitboard probe.
package boardquery

import (
	"github.com/infinite-chess/movecore/internal/organizedpieces"
	"github.com/infinite-chess/movecore/internal/types"
)

// Validity is the result of classifying a square for move-generation
// purposes.
type Validity uint8

// Validity constants, matching the 0/1/2 contract in spec.md section 4.3:
// 0 = does not block (empty when not required to capture, or an enemy
// while premoving),
// 1 = blocks on the square and is capturable (an enemy piece),
// 2 = blocks before the square (friendly, void, or out of bounds).
const (
	ValidityOpen    Validity = 0
	ValidityCapture Validity = 1
	ValidityBlocked Validity = 2
)

// Classify implements testSquareValidity: out-of-border squares and
// friendly/void pieces are always ValidityBlocked; an empty square is
// ValidityOpen unless capturing is required (then ValidityBlocked); an
// enemy piece is ValidityCapture, except while premoving (ignoring
// obstruction) it is treated as ValidityOpen so speculative client input
// is never rejected purely for "this would have been a capture".
func Classify(pieces *organizedpieces.OrganizedPieces, border *types.AABB, coords types.Coords, mover types.Player, premove bool, capturing bool) Validity {
	if border != nil && !border.Contains(coords) {
		return ValidityBlocked
	}
	occupant, ok := pieces.PieceByCoords(coords)
	if !ok {
		if capturing {
			return ValidityBlocked
		}
		return ValidityOpen
	}
	if occupant.Player() == types.NEUTRAL {
		return ValidityBlocked
	}
	if occupant.Player() == mover {
		return ValidityBlocked
	}
	// enemy piece
	if premove {
		return ValidityOpen
	}
	return ValidityCapture
}

// IsEmpty reports whether coords holds no piece at all (ignoring border).
func IsEmpty(pieces *organizedpieces.OrganizedPieces, coords types.Coords) bool {
	_, ok := pieces.PieceByCoords(coords)
	return !ok
}

// IsEnemy reports whether coords holds a piece belonging to mover's
// opponent (not NEUTRAL).
func IsEnemy(pieces *organizedpieces.OrganizedPieces, coords types.Coords, mover types.Player) bool {
	occupant, ok := pieces.PieceByCoords(coords)
	if !ok {
		return false
	}
	return occupant.Player() != types.NEUTRAL && occupant.Player() != mover
}

// IsFriendly reports whether coords holds a piece belonging to mover.
func IsFriendly(pieces *organizedpieces.OrganizedPieces, coords types.Coords, mover types.Player) bool {
	occupant, ok := pieces.PieceByCoords(coords)
	return ok && occupant.Player() == mover
}

// DefaultBlocking is the blocking function every moveset falls back to when
// it does not define a custom one (spec.md section 4.2's "defaultBlocking
// returns testCaptureValidity"): friendly and void pieces block before the
// square (2), enemies block on the square (1), empty squares do not block
// (0). Border handling is layered on separately by the slide-limit
// computation.
func DefaultBlocking(pieces *organizedpieces.OrganizedPieces, mover types.Player, blockingPieceCoords types.Coords, premove bool) Validity {
	occupant, ok := pieces.PieceByCoords(blockingPieceCoords)
	if !ok {
		return ValidityOpen
	}
	if occupant.Player() == types.NEUTRAL || occupant.Player() == mover {
		return ValidityBlocked
	}
	if premove {
		return ValidityOpen
	}
	return ValidityCapture
}

// DefaultIgnore is the ignore function every moveset falls back to: every
// square along a slide participates in obstruction/line-key computation
// (spec.md: "defaultIgnore always true").
func DefaultIgnore(types.Coords, types.Coords) bool {
	return true
}
