/*
 * movecore - infinite board chess move generation and legality core
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 movecore contributors
 */

// Package organizedpieces implements the columnar piece store described in
// spec.md section 4.1: parallel position arrays per type range, a
// coordinate map for point lookup, and a per-slide-direction line-bucket
// index used so that sliding move generation never has to scan the whole
// board.
//
// This is grounded on FrankyGo's internal/position.Position, which keeps a
// piece-centric board plus several derived indices (bitboards, king
// squares) all updated together by putPiece/removePiece; OrganizedPieces
// generalizes that same "one mutation, many indices kept in lockstep" shape
// to an unbounded board where a fixed 8x8 array is not an option.
package organizedpieces

import (
	"math/big"

	"github.com/infinite-chess/movecore/internal/types"
)

// typeRange describes the contiguous slice of the columnar arrays reserved
// for one RawType/Player combination.
type typeRange struct {
	start, end int // [start, end)
}

// OrganizedPieces is the spatial index over all pieces in a game.
type OrganizedPieces struct {
	// XPositions/YPositions are parallel to the absolute piece index space
	// and hold arbitrary-precision coordinates; an "undefined" slot holds
	// (0,0).
	XPositions []*big.Int
	YPositions []*big.Int

	// ranges maps a packed PieceType to the contiguous [start,end) range of
	// absolute indices reserved for it.
	ranges map[types.PieceType]typeRange

	// undefineds lists, per PieceType, the sorted ascending absolute indices
	// within that type's range that are currently vacant.
	undefineds map[types.PieceType][]int

	// coords maps a CoordsKey to the absolute index of the piece occupying
	// it, for O(1) point lookup.
	coords map[types.CoordsKey]int

	// lines maps a slide VectorKey to a map from line-key to the sorted list
	// of absolute indices lying on that line.
	lines map[types.VectorKey]map[string][]int

	// slides is the set of all slide vectors active in the game.
	slides []types.Coords

	// pieceAt is a convenience lookup from absolute index back to a live
	// types.Piece value; kept in lockstep with XPositions/YPositions/type
	// ranges by every mutating method below.
	pieceAt []types.Piece
}

// New builds an empty OrganizedPieces ready to be populated by
// ProcessInitialPosition.
func New(slides []types.Coords) *OrganizedPieces {
	return &OrganizedPieces{
		ranges:     make(map[types.PieceType]typeRange),
		undefineds: make(map[types.PieceType][]int),
		coords:     make(map[types.CoordsKey]int),
		lines:      make(map[types.VectorKey]map[string][]int),
		slides:     slides,
	}
}

// Slides returns the set of active slide vectors.
func (op *OrganizedPieces) Slides() []types.Coords {
	return op.slides
}

// Len returns the total size of the columnar arrays, including vacant
// slots.
func (op *OrganizedPieces) Len() int {
	return len(op.pieceAt)
}

// PieceAt returns the live piece stored at absolute index idx.
func (op *OrganizedPieces) PieceAt(idx int) types.Piece {
	return op.pieceAt[idx]
}

// PieceByCoords returns the piece occupying c, if any.
func (op *OrganizedPieces) PieceByCoords(c types.Coords) (types.Piece, bool) {
	idx, ok := op.coords[c.Key()]
	if !ok {
		return types.Piece{}, false
	}
	return op.pieceAt[idx], true
}

// RangeOf returns the [start, end) absolute-index range reserved for pt.
func (op *OrganizedPieces) RangeOf(pt types.PieceType) (int, int, bool) {
	r, ok := op.ranges[pt]
	if !ok {
		return 0, 0, false
	}
	return r.start, r.end, true
}

// PieceTypes returns every PieceType with a reserved range, in no
// particular order. Used by callers (check.DetectCheck) that need to
// enumerate all pieces of a kind without knowing the full RawType/Player
// space in advance.
func (op *OrganizedPieces) PieceTypes() []types.PieceType {
	out := make([]types.PieceType, 0, len(op.ranges))
	for pt := range op.ranges {
		out = append(out, pt)
	}
	return out
}

// Undefineds returns the sorted vacant slots for pt. The returned slice must
// not be mutated by the caller; use the register/remove methods instead.
func (op *OrganizedPieces) Undefineds(pt types.PieceType) []int {
	return op.undefineds[pt]
}

// getKeyFromLine returns the canonical line-key for the line through point
// under slide direction v: two points share a line under v iff their
// line-keys are equal. For axis/diagonal-aligned vectors this is simply the
// intercept of the line in a coordinate system rotated to make v horizontal;
// we compute it without floating point by cross-multiplying.
//
// For v=(dx,dy) reduced to primitive form, a point (x,y) lies on the unique
// line through the origin offset by the perpendicular distance
//
//	k = x*dy - y*dx
//
// which is invariant along the line (adding any multiple of (dx,dy) to
// (x,y) leaves x*dy-y*dx unchanged). This is GetKeyFromLine's contract.
func (op *OrganizedPieces) GetKeyFromLine(v types.Coords, point types.Coords) string {
	r := v.Reduce()
	// k = x*dy - y*dx
	xdy := new(big.Int).Mul(point.X, r.Y)
	ydx := new(big.Int).Mul(point.Y, r.X)
	k := xdy.Sub(xdy, ydx)
	return string(v.VectorKey()) + "|" + k.String()
}
