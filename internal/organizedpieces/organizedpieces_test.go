/*
 * movecore - infinite board chess move generation and legality core
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 movecore contributors
 */

package organizedpieces

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/infinite-chess/movecore/internal/types"
)

func rook() types.PieceType { return types.MakePieceType(types.ROOK, types.WHITE) }

func buildSimple() *OrganizedPieces {
	slides := []types.Coords{types.NewCoords(1, 0), types.NewCoords(0, 1)}
	pos := map[types.CoordsKey]types.PieceType{}
	coordsOf := map[types.CoordsKey]types.Coords{}
	for _, c := range []types.Coords{types.NewCoords(1, 1), types.NewCoords(4, 1), types.NewCoords(1, 9)} {
		pos[c.Key()] = rook()
		coordsOf[c.Key()] = c
	}
	return ProcessInitialPosition(pos, coordsOf, slides, false, nil)
}

func TestPieceByCoordsRoundTrip(t *testing.T) {
	op := buildSimple()
	p, ok := op.PieceByCoords(types.NewCoords(4, 1))
	require.True(t, ok)
	assert.Equal(t, rook(), p.Type)
	assert.True(t, p.Coords.Equals(types.NewCoords(4, 1)))
}

func TestLineBucketSharesLine(t *testing.T) {
	op := buildSimple()
	v := types.NewCoords(1, 0)
	bucket := op.LineBucket(v, types.NewCoords(1, 1))
	require.Len(t, bucket, 2, "the two rooks on rank y=1 should share a horizontal line")
	for _, idx := range bucket {
		assert.Equal(t, int64(1), op.PieceAt(idx).Coords.Y.Int64())
	}
}

func TestGetKeyFromLineInvariant(t *testing.T) {
	op := buildSimple()
	v := types.NewCoords(1, 0)
	a := types.NewCoords(1, 1)
	b := types.NewCoords(4, 1)
	c := types.NewCoords(1, 9)
	assert.Equal(t, op.GetKeyFromLine(v, a), op.GetKeyFromLine(v, b))
	assert.NotEqual(t, op.GetKeyFromLine(v, a), op.GetKeyFromLine(v, c))
}

func TestMoveToUpdatesIndices(t *testing.T) {
	op := buildSimple()
	p, ok := op.PieceByCoords(types.NewCoords(1, 1))
	require.True(t, ok)
	op.MoveTo(p.Index, types.NewCoords(9, 9))

	_, stillThere := op.PieceByCoords(types.NewCoords(1, 1))
	assert.False(t, stillThere)
	moved, ok := op.PieceByCoords(types.NewCoords(9, 9))
	require.True(t, ok)
	assert.Equal(t, p.Index, moved.Index)
}

func TestDeleteAndAllocateReusesSlot(t *testing.T) {
	op := buildSimple()
	p, _ := op.PieceByCoords(types.NewCoords(1, 1))
	op.Delete(p.Index, rook())

	_, found := op.PieceByCoords(types.NewCoords(1, 1))
	assert.False(t, found)

	before := op.Undefineds(rook())
	require.NotEmpty(t, before)
	idx, ok := op.Allocate(rook(), false)
	require.True(t, ok)
	assert.Equal(t, p.Index, idx, "allocate should reuse the vacated slot")
}

func TestRegenerateListsPreservesIdentity(t *testing.T) {
	op := buildSimple()
	p, _ := op.PieceByCoords(types.NewCoords(4, 1))
	before := op.Len()
	op.RegenerateLists(rook(), 4)
	assert.Equal(t, before+4, op.Len())
	still, ok := op.PieceByCoords(types.NewCoords(4, 1))
	require.True(t, ok)
	assert.Equal(t, p.Index, still.Index)
}
