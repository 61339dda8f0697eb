/*
 * movecore - infinite board chess move generation and legality core
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 movecore contributors
 */

package checkmate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/infinite-chess/movecore/internal/board"
	"github.com/infinite-chess/movecore/internal/types"
)

func twoKings(white, black types.Coords) *board.Board {
	pieces := map[types.CoordsKey]types.PieceType{
		white.Key(): types.MakePieceType(types.KING, types.WHITE),
		black.Key(): types.MakePieceType(types.KING, types.BLACK),
	}
	position := map[types.CoordsKey]types.Coords{white.Key(): white, black.Key(): black}
	return board.New(board.Params{
		Position:  pieces,
		CoordsOf:  position,
		TurnOrder: []types.Player{types.WHITE, types.BLACK},
	})
}

func TestInsufficientMaterialBareKings(t *testing.T) {
	b := twoKings(types.NewCoords(0, 0), types.NewCoords(3, 0))
	conclusion, ok := DetectInsufficientMaterial(b)
	assert.True(t, ok)
	assert.Equal(t, ConclusionInsufficientMaterial, conclusion)
}

func TestInsufficientMaterialWithPawnIsUndefined(t *testing.T) {
	pieces := map[types.CoordsKey]types.PieceType{
		types.NewCoords(0, 0).Key(): types.MakePieceType(types.KING, types.WHITE),
		types.NewCoords(3, 0).Key(): types.MakePieceType(types.KING, types.BLACK),
		types.NewCoords(1, 1).Key(): types.MakePieceType(types.PAWN, types.WHITE),
	}
	position := map[types.CoordsKey]types.Coords{
		types.NewCoords(0, 0).Key(): types.NewCoords(0, 0),
		types.NewCoords(3, 0).Key(): types.NewCoords(3, 0),
		types.NewCoords(1, 1).Key(): types.NewCoords(1, 1),
	}
	b := board.New(board.Params{Position: pieces, CoordsOf: position, TurnOrder: []types.Player{types.WHITE, types.BLACK}})
	_, ok := DetectInsufficientMaterial(b)
	assert.False(t, ok)
}

func TestDetectCheckmateOrStalemateLoneKingsGameContinues(t *testing.T) {
	// Lone kings always have at least king moves available, so this
	// exercises the "game continues" path rather than an actual stalemate.
	b := twoKings(types.NewCoords(0, 0), types.NewCoords(3, 0))
	conclusion, err := DetectCheckmateOrStalemate(b, types.WHITE, true)
	assert.NoError(t, err)
	assert.Equal(t, "", conclusion)
}
