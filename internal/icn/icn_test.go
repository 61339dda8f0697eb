/*
 * movecore - infinite board chess move generation and legality core
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 movecore contributors
 */

package icn

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/infinite-chess/movecore/internal/types"
)

func TestDecodeBasic(t *testing.T) {
	draft, err := Decode("3,7>3,8")
	assert.NoError(t, err)
	assert.EqualValues(t, types.NewCoords(3, 7), draft.StartCoords)
	assert.EqualValues(t, types.NewCoords(3, 8), draft.EndCoords)
	assert.False(t, draft.HasPromotion)
}

func TestDecodePromotion(t *testing.T) {
	draft, err := Decode("3,7>3,8=5")
	assert.NoError(t, err)
	assert.True(t, draft.HasPromotion)
	assert.Equal(t, types.QUEEN, draft.Promotion)
}

func TestDecodeNegativeCoords(t *testing.T) {
	draft, err := Decode("-12,-3>-11,-2")
	assert.NoError(t, err)
	assert.EqualValues(t, types.NewCoords(-12, -3), draft.StartCoords)
	assert.EqualValues(t, types.NewCoords(-11, -2), draft.EndCoords)
}

func TestDecodeIncorrectFormat(t *testing.T) {
	_, err := Decode("not a move")
	assert.True(t, errors.Is(err, types.ErrFormat))
}

func TestEncodeRoundTrip(t *testing.T) {
	m := types.Move{MoveDraft: types.MoveDraft{StartCoords: types.NewCoords(1, 2), EndCoords: types.NewCoords(1, 4)}}
	out := Encode(m)
	draft, err := Decode(out)
	assert.NoError(t, err)
	assert.True(t, draft.StartCoords.Equals(m.StartCoords))
	assert.True(t, draft.EndCoords.Equals(m.EndCoords))
}
