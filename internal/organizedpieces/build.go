/*
 * movecore - infinite board chess move generation and legality core
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 movecore contributors
 */

package organizedpieces

import (
	"math/big"
	"sort"

	"github.com/infinite-chess/movecore/internal/types"
)

// slackSlots is the number of spare undefined slots reserved per type range
// beyond the pieces actually present, so that promotion or editor-mode
// additions have somewhere to land before RegenerateLists needs to grow the
// arrays. Grounded on the reference engine's habit of over-allocating piece
// lists (MaxMoves-sized slices reused across calls) rather than resizing on
// every mutation.
const slackSlots = 8

// ProcessInitialPosition builds a populated OrganizedPieces from a starting
// position (CoordsKey -> PieceType) and the set of slide vectors active in
// the game. When editor or promotionsAllowed indicates additional pieces of
// existing types may later be added, each type range is given slackSlots
// spare vacant entries up front.
func ProcessInitialPosition(position map[types.CoordsKey]types.PieceType, coordsOf map[types.CoordsKey]types.Coords, slides []types.Coords, editor bool, promotionsAllowed map[types.Player][]types.RawType) *OrganizedPieces {
	op := New(slides)

	byType := make(map[types.PieceType][]types.Coords)
	var order []types.PieceType
	for key, pt := range position {
		if _, seen := byType[pt]; !seen {
			order = append(order, pt)
		}
		byType[pt] = append(byType[pt], coordsOf[key])
	}
	// Deterministic range ordering so two builds of the same position
	// produce identical absolute indices - important for reproducible
	// tests and for compact move strings that are compared across rewinds.
	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })

	allowsGrowth := func(pt types.PieceType) bool {
		if editor {
			return true
		}
		for _, rt := range promotionsAllowed[pt.Player()] {
			if rt == pt.RawType() {
				return true
			}
		}
		return false
	}

	cursor := 0
	for _, pt := range order {
		coordsList := byType[pt]
		extra := 0
		if allowsGrowth(pt) || editor {
			extra = slackSlots
		}
		start := cursor
		n := len(coordsList) + extra
		op.XPositions = append(op.XPositions, make([]*big.Int, n)...)
		op.YPositions = append(op.YPositions, make([]*big.Int, n)...)
		op.pieceAt = append(op.pieceAt, make([]types.Piece, n)...)

		for i, c := range coordsList {
			idx := start + i
			op.XPositions[idx] = c.X
			op.YPositions[idx] = c.Y
			op.pieceAt[idx] = types.Piece{Type: pt, Coords: c, Index: idx}
			op.RegisterPieceInSpace(idx)
		}
		for i := len(coordsList); i < n; i++ {
			idx := start + i
			zero := types.Coords{X: big.NewInt(0), Y: big.NewInt(0)}
			op.XPositions[idx] = zero.X
			op.YPositions[idx] = zero.Y
			op.pieceAt[idx] = types.Piece{Type: pt, Coords: zero, Index: idx}
			op.undefineds[pt] = append(op.undefineds[pt], idx)
		}
		op.ranges[pt] = typeRange{start: start, end: start + n}
		cursor += n
	}
	return op
}
