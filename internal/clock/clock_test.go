/*
 * movecore - infinite board chess move generation and legality core
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 movecore contributors
 */

package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/infinite-chess/movecore/internal/types"
)

func TestPushDeductsElapsedAndAppliesIncrement(t *testing.T) {
	c := New([]types.Player{types.WHITE, types.BLACK}, 60000, 2000)
	start := time.Unix(1000, 0)
	c.Start(types.WHITE, start)

	c.Push(types.BLACK, start.Add(5*time.Second))
	assert.Equal(t, int64(60000-5000+2000), c.Remaining(types.WHITE))
	assert.Equal(t, types.BLACK, c.ColorTicking())
}

func TestUpdateReportsTimeout(t *testing.T) {
	c := New([]types.Player{types.WHITE, types.BLACK}, 1000, 0)
	start := time.Unix(2000, 0)
	c.Start(types.WHITE, start)

	winner, timedOut := c.Update(start.Add(2 * time.Second))
	assert.True(t, timedOut)
	assert.Equal(t, types.BLACK, winner)
}

func TestEditReconstructsRemainingFromLosesAt(t *testing.T) {
	c := New([]types.Player{types.WHITE, types.BLACK}, 60000, 0)
	now := time.Unix(10000, 0)
	c.Edit(Values{
		Clocks:                  map[types.Player]int64{types.WHITE: 45000, types.BLACK: 30000},
		ColorTicking:            types.BLACK,
		TimeColorTickingLosesAt: now.UnixMilli() + 30000,
	}, now)
	assert.Equal(t, int64(30000), c.Remaining(types.BLACK))
	assert.Equal(t, types.BLACK, c.ColorTicking())
}
