/*
 * movecore - infinite board chess move generation and legality core
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 movecore contributors
 */

package boardio

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/infinite-chess/movecore/internal/types"
)

func TestLoadStandardChess(t *testing.T) {
	b, err := Load(StandardChess())
	assert.NoError(t, err)
	assert.NotNil(t, b)

	piece, ok := b.Pieces().PieceByCoords(types.NewCoords(4, 0))
	assert.True(t, ok)
	assert.Equal(t, types.KING, piece.RawType())
	assert.Equal(t, types.WHITE, piece.Player())

	assert.True(t, b.HasSpecialRight(types.NewCoords(4, 0)))
	assert.True(t, b.HasSpecialRight(types.NewCoords(0, 0)))
	assert.False(t, b.HasSpecialRight(types.NewCoords(1, 0)))
}

func TestLoadRejectsMismatchedPayload(t *testing.T) {
	p := StandardChess()
	delete(p.Pieces, types.NewCoords(0, 0).Key())
	_, err := Load(p)
	assert.Error(t, err)
}
