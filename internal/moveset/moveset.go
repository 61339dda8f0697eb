/*
 * movecore - infinite board chess move generation and legality core
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 movecore contributors
 */

// Package moveset implements the per-type moveset descriptors of spec.md
// section 4.2: individual jumps, sliding rays with per-direction step
// bounds, and the blocking/ignore/special callback hooks that make piece
// behavior data-driven instead of a subclass hierarchy.
//
// Grounded on FrankyGo's internal/movegen.Movegen, which drives generation
// from per-piece-type attack tables (generateMoves/generatePawnMoves/
// generateKingMoves switch on PieceType much the way a moveset registry
// switches on RawType here); the difference is that FrankyGo's tables are
// precomputed bitboards for a fixed 8x8 board, while a moveset here is a
// small data record plus closures, since the board is unbounded.
package moveset

import (
	"github.com/infinite-chess/movecore/internal/boardquery"
	"github.com/infinite-chess/movecore/internal/gameview"
	"github.com/infinite-chess/movecore/internal/organizedpieces"
	"github.com/infinite-chess/movecore/internal/types"
)

// StepBound is a per-direction slide limit: Min is <= 0 or nil (unbounded in
// the negative direction), Max is >= 0 or nil (unbounded in the positive
// direction). Both are step counts along the slide vector, not coordinates.
type StepBound struct {
	Min *int64
	Max *int64
}

// Unbounded is the default StepBound for a full-length slide (e.g. a rook
// or bishop ray).
func Unbounded() StepBound {
	return StepBound{}
}

// Bounded returns a StepBound limited to [min, max] steps.
func Bounded(min, max int64) StepBound {
	return StepBound{Min: &min, Max: &max}
}

// BlockingFunc classifies a piece encountered while scanning a slide. It
// mirrors spec.md's blocking(friendlyColor, blockingPiece, startCoords,
// premove) contract.
type BlockingFunc func(mover types.Player, blockingPiece types.Piece, startCoords types.Coords, premove bool) boardquery.Validity

// IgnoreFunc filters whether a square along a slide participates at all,
// e.g. Huygen's prime-Chebyshev-distance requirement.
type IgnoreFunc func(start, end types.Coords) bool

// SpecialFunc contributes extra legal destinations beyond the moveset's
// individual/sliding entries, with special-move flags attached (pawn
// pushes/captures/EP/promotion, castling, Rose spirals).
type SpecialFunc func(gv gameview.GameView, coords types.Coords, color types.Player, premove bool) []types.CoordsSpecial

// PieceMoveset is the descriptor for one RawType, shared across both
// players (color is always supplied by the caller, never baked in).
type PieceMoveset struct {
	Individual []types.Coords
	Sliding    map[types.VectorKey]StepBound

	Blocking BlockingFunc
	Ignore   IgnoreFunc
	Special  SpecialFunc

	// Colinear is true iff Sliding contains a non-primitive vector or a
	// custom Blocking/Ignore is set, meaning multiple disjoint parallel
	// lines may need brute-force check verification (spec.md section 4.2).
	Colinear bool
}

// defaultBlocking / defaultIgnore supply the default callbacks so a
// descriptor built with Normalize() never has a nil one: defaultBlocking
// applies the standard friendly/neutral/enemy rule inline, and
// defaultIgnore returns boardquery.DefaultIgnore.
func defaultBlocking(pieces *organizedpieces.OrganizedPieces) BlockingFunc {
	return func(mover types.Player, blockingPiece types.Piece, _ types.Coords, premove bool) boardquery.Validity {
		if blockingPiece.Player() == types.NEUTRAL || blockingPiece.Player() == mover {
			return boardquery.ValidityBlocked
		}
		if premove {
			return boardquery.ValidityOpen
		}
		return boardquery.ValidityCapture
	}
}

func defaultIgnore() IgnoreFunc {
	return boardquery.DefaultIgnore
}

// Normalize fills in default Blocking/Ignore and derives Colinear, given
// the set of primitive single-step slide vectors considered "simple" (the
// eight standard rook/bishop directions). Called once per descriptor when
// building a registry.
func (ms *PieceMoveset) Normalize(pieces *organizedpieces.OrganizedPieces, primitiveDirs map[types.VectorKey]bool) {
	if ms.Blocking == nil {
		ms.Blocking = defaultBlocking(pieces)
	} else {
		ms.Colinear = true
	}
	if ms.Ignore == nil {
		ms.Ignore = defaultIgnore()
	} else {
		ms.Colinear = true
	}
	for vk := range ms.Sliding {
		if !primitiveDirs[vk] {
			ms.Colinear = true
		}
	}
}

// SlideVectors returns the slide directions in ms.Sliding as Coords, each
// vector's reduced primitive form.
func (ms *PieceMoveset) SlideVectors() []types.Coords {
	out := make([]types.Coords, 0, len(ms.Sliding))
	for vk := range ms.Sliding {
		out = append(out, vectorFromKey(vk))
	}
	return out
}
