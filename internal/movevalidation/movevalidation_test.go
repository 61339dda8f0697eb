/*
 * movecore - infinite board chess move generation and legality core
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 movecore contributors
 */

package movevalidation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/infinite-chess/movecore/internal/board"
	"github.com/infinite-chess/movecore/internal/boardio"
	"github.com/infinite-chess/movecore/internal/types"
)

func newStandardBoard(t *testing.T) *board.Board {
	b, err := boardio.Load(boardio.StandardChess())
	assert.NoError(t, err)
	return b
}

func TestValidateMoveAcceptsLegalPawnPush(t *testing.T) {
	b := newStandardBoard(t)
	draft := types.MoveDraft{StartCoords: types.NewCoords(4, 1), EndCoords: types.NewCoords(4, 3)}
	out, err := ValidateMove(b, types.WHITE, draft)
	assert.NoError(t, err)
	assert.NotNil(t, out.EnPassantCreate)
}

func TestValidateMoveRejectsWrongColor(t *testing.T) {
	b := newStandardBoard(t)
	draft := types.MoveDraft{StartCoords: types.NewCoords(4, 6), EndCoords: types.NewCoords(4, 4)}
	_, err := ValidateMove(b, types.WHITE, draft)
	assert.EqualError(t, err, ReasonIncorrectColor)
}

func TestValidateMoveRejectsInvalidDestination(t *testing.T) {
	b := newStandardBoard(t)
	draft := types.MoveDraft{StartCoords: types.NewCoords(4, 1), EndCoords: types.NewCoords(4, 5)}
	_, err := ValidateMove(b, types.WHITE, draft)
	assert.EqualError(t, err, ReasonInvalidDestination)
}

func TestIsEnginesMoveLegalParsesAndValidates(t *testing.T) {
	b := newStandardBoard(t)
	err := IsEnginesMoveLegal(b, "4,1>4,3")
	assert.NoError(t, err)
}

func TestIsEnginesMoveLegalRejectsBadFormat(t *testing.T) {
	b := newStandardBoard(t)
	err := IsEnginesMoveLegal(b, "garbage")
	assert.Error(t, err)
}
