/*
 * movecore - infinite board chess move generation and legality core
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 movecore contributors
 */

// Package boardchanges applies and reverses the types.Change journal that
// movepiece attaches to every generated Move. Grounded on FrankyGo's
// position.Position.doMove/undoMove pair, which mutate the bitboard/piece
// list state directly from a single MoveInfo; here the same forward/inverse
// pair of operations is expressed against OrganizedPieces, driven by an
// explicit list of Change entries rather than bit-twiddling one move's
// worth of state inline, because a single logical move (e.g. castling, or
// a Rose's multi-square travel) can touch more than two squares.
package boardchanges

import (
	"github.com/infinite-chess/movecore/internal/organizedpieces"
	"github.com/infinite-chess/movecore/internal/types"
)

// Apply performs every Change in order, mutating pieces in place.
//
// Every Change's Piece.Index must already name a reserved absolute index:
// whoever builds a Move's Changes (movepiece.generateMove) calls
// pieces.Allocate itself and bakes the returned index into Piece.Index, so
// that Apply and Reverse always agree on which slot a given Change refers
// to no matter how many times the move is made and unmade. Apply never
// allocates on its own, since a fresh Allocate call at Apply time could
// return a different slot than the one Reverse was told to release.
func Apply(pieces *organizedpieces.OrganizedPieces, changes []types.Change) {
	for _, c := range changes {
		applyOne(pieces, c)
	}
}

// Reverse undoes every Change in reverse order, restoring pieces to the
// state it held before Apply(changes) was called.
func Reverse(pieces *organizedpieces.OrganizedPieces, changes []types.Change) {
	for i := len(changes) - 1; i >= 0; i-- {
		reverseOne(pieces, changes[i])
	}
}

func applyOne(pieces *organizedpieces.OrganizedPieces, c types.Change) {
	switch c.Action {
	case types.ChangeAdd:
		pieces.MoveTo(c.Piece.Index, c.Piece.Coords)
	case types.ChangeDelete, types.ChangeCapture:
		pieces.Delete(c.Piece.Index, c.Piece.Type)
	case types.ChangeMove:
		pieces.MoveTo(c.Piece.Index, c.EndCoords)
	}
}

func reverseOne(pieces *organizedpieces.OrganizedPieces, c types.Change) {
	switch c.Action {
	case types.ChangeAdd:
		pieces.Delete(c.Piece.Index, c.Piece.Type)
	case types.ChangeDelete, types.ChangeCapture:
		pieces.Restore(c.Piece.Index, c.Piece.Type, c.Piece.Coords)
	case types.ChangeMove:
		pieces.MoveTo(c.Piece.Index, c.Piece.Coords)
	}
}
