/*
 * movecore - infinite board chess move generation and legality core
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 movecore contributors
 */

// Package gameview declares the read-only surface that the moveset,
// legalmoves, movepiece and check packages need from "the game" without any
// of them importing the top-level board package that assembles those
// pieces - board satisfies GameView implicitly (Go interface satisfaction
// needs no import from the implementer back to the declarer), which is what
// keeps this a one-way dependency graph instead of the cyclic one spec.md's
// own prose would otherwise describe ("LegalMoves calls into MovePiece
// which calls into SpecialDetect which calls back into LegalMoves...").
//
// Grounded on the "accept interfaces, return structs" idiom already used
// throughout FrankyGo (e.g. search.Search taking a *position.Position by
// value semantics and calling back into movegen); here the seam is made
// explicit as a named interface because the callback graph is deeper.
package gameview

import (
	"github.com/infinite-chess/movecore/internal/organizedpieces"
	"github.com/infinite-chess/movecore/internal/types"
)

// GameView is implemented by the top-level Board. It exposes exactly what
// moveset callbacks, the legal-move pipeline, check detection and move
// generation need to read.
type GameView interface {
	// Pieces returns the live spatial index.
	Pieces() *organizedpieces.OrganizedPieces

	// Border returns the optional world border, or nil if the board is
	// unbounded.
	Border() *types.AABB

	// EnPassant returns the currently available en passant capture, or nil.
	EnPassant() *types.EnPassantState

	// HasSpecialRight reports whether the piece at coords currently holds
	// its special right (double pawn push / castling eligibility).
	HasSpecialRight(coords types.Coords) bool

	// PromotionRanks returns the y-values on which a pawn of color p must
	// promote.
	PromotionRanks(p types.Player) []int64

	// PromotionsAllowed returns the raw types a pawn of color p may promote
	// into.
	PromotionsAllowed(p types.Player) []types.RawType

	// IsSquareAttacked reports whether any piece belonging to by could
	// capture on coords on its next move, used by castling's transit-safety
	// check. Implemented by Board in terms of the check package.
	IsSquareAttacked(coords types.Coords, by types.Player) bool

	// IndividualOffsets exposes a RawType's individual jump offsets
	// without SpecialDetect importing the moveset package directly.
	IndividualOffsets(rt types.RawType) []types.Coords
}
