/*
 * movecore - infinite board chess move generation and legality core
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 movecore contributors
 */

package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/infinite-chess/movecore/internal/board"
	"github.com/infinite-chess/movecore/internal/boardio"
	"github.com/infinite-chess/movecore/internal/legalmoves"
	"github.com/infinite-chess/movecore/internal/types"
)

func standardBoard(t *testing.T) *board.Board {
	b, err := boardio.Load(boardio.StandardChess())
	assert.NoError(t, err)
	return b
}

func TestCalculateLegalPawnDoublePush(t *testing.T) {
	b := standardBoard(t)
	filtered := b.CalculateLegal(types.NewCoords(4, 1), types.WHITE, false)
	assert.True(t, legalmoves.HasAtleast1Move(filtered))
	_, ok := legalmoves.CheckIfMoveLegal(b.Context(), b.Registry(), b, filtered, types.NewCoords(4, 1), types.NewCoords(4, 3), types.WHITE)
	assert.True(t, ok)
}

func TestMakeMoveThenRewindRestoresAttackState(t *testing.T) {
	b := standardBoard(t)

	before := b.IsSquareAttacked(types.NewCoords(4, 3), types.BLACK)

	filtered := b.CalculateLegal(types.NewCoords(4, 1), types.WHITE, false)
	chosen, ok := legalmoves.CheckIfMoveLegal(b.Context(), b.Registry(), b, filtered, types.NewCoords(4, 1), types.NewCoords(4, 3), types.WHITE)
	assert.True(t, ok)

	draft := types.MoveDraft{StartCoords: types.NewCoords(4, 1), EndCoords: types.NewCoords(4, 3)}
	_, err := b.MakeMove(draft, chosen, types.WHITE)
	assert.NoError(t, err)

	after := b.IsSquareAttacked(types.NewCoords(4, 3), types.BLACK)
	assert.False(t, after)

	b.RewindMove()
	assert.Equal(t, before, b.IsSquareAttacked(types.NewCoords(4, 3), types.BLACK))
}

func TestCalculateLegalDoesNotCorruptAttackCacheAcrossSimulations(t *testing.T) {
	b := standardBoard(t)

	// Repeatedly asking for the white king's legal moves drives many
	// SimulatedCheck calls (legalmoves.RemoveCheckInvalid) against the
	// same position; the cached IsSquareAttacked answers must keep
	// agreeing with a cold detector scan once every simulation unwinds.
	for i := 0; i < 3; i++ {
		filtered := b.CalculateLegal(types.NewCoords(4, 0), types.WHITE, false)
		assert.True(t, legalmoves.HasAtleast1Move(filtered))
	}
	assert.False(t, b.IsSquareAttacked(types.NewCoords(4, 0), types.BLACK))
}
