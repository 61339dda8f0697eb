/*
 * movecore - infinite board chess move generation and legality core
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 movecore contributors
 */

package attackcache

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/infinite-chess/movecore/internal/types"
)

func rook(p types.Player) types.PieceType { return types.MakePieceType(types.ROOK, p) }

func TestHasherToggleIsItsOwnInverse(t *testing.T) {
	h := NewHasher()
	base := h.Value()
	h.Toggle(types.NewCoords(3, 3), rook(types.WHITE))
	assert.NotEqual(t, base, h.Value())
	h.Toggle(types.NewCoords(3, 3), rook(types.WHITE))
	assert.Equal(t, base, h.Value())
}

func TestHasherOrderIndependent(t *testing.T) {
	a := NewHasher()
	a.Toggle(types.NewCoords(1, 1), rook(types.WHITE))
	a.Toggle(types.NewCoords(2, 2), rook(types.BLACK))

	b := NewHasher()
	b.Toggle(types.NewCoords(2, 2), rook(types.BLACK))
	b.Toggle(types.NewCoords(1, 1), rook(types.WHITE))

	assert.Equal(t, a.Value(), b.Value())
}

func TestApplyReverseChangesRoundTrips(t *testing.T) {
	h := NewHasher()
	h.Toggle(types.NewCoords(0, 0), rook(types.WHITE))
	base := h.Value()

	changes := []types.Change{
		{Action: types.ChangeMove, Piece: types.Piece{Type: rook(types.WHITE), Coords: types.NewCoords(0, 0)}, EndCoords: types.NewCoords(0, 5)},
	}
	h.ApplyChanges(changes)
	assert.NotEqual(t, base, h.Value())
	h.ReverseChanges(changes)
	assert.Equal(t, base, h.Value())
}

func TestCacheProbePutRoundTrip(t *testing.T) {
	c := New(1)
	key := QueryKey(42, types.NewCoords(4, 4), types.WHITE)
	_, found := c.Probe(key)
	assert.False(t, found)

	c.Put(key, true)
	attacked, found := c.Probe(key)
	assert.True(t, found)
	assert.True(t, attacked)
}

func TestCacheZeroSizeNeverStores(t *testing.T) {
	c := New(0)
	key := QueryKey(1, types.NewCoords(0, 0), types.BLACK)
	c.Put(key, true)
	_, found := c.Probe(key)
	assert.False(t, found)
}
