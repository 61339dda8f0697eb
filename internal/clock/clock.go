/*
 * movecore - infinite board chess move generation and legality core
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 movecore contributors
 */

// Package clock implements spec.md section 4.11's per-color time-control
// accounting: remaining milliseconds per player, which clock is currently
// running, and the turn-push/edit/update operations a server-authoritative
// gamefile needs. There is no clock-adjacent concern in the teacher or the
// rest of the retrieved pack (FrankyGo is a pure engine with no game-clock
// concept), so this is built directly on the standard library's time
// package - the ecosystem has no dedicated chess-clock library the pack
// exercises, and time.Time/time.Duration are already the idiomatic
// representation for "an instant" and "an elapsed span" in Go.
package clock

import (
	"time"

	"github.com/infinite-chess/movecore/internal/types"
)

// Values is the wire payload described in spec.md section 6: remaining
// milliseconds per player, which color's clock is currently running (zero
// value types.NEUTRAL means neither, e.g. before the first move), and the
// absolute instant at which the ticking clock would lose if never stopped.
type Values struct {
	Clocks                 map[types.Player]int64
	ColorTicking           types.Player
	TimeColorTickingLosesAt int64 // unix millis, only meaningful when ColorTicking != NEUTRAL
}

// Clock tracks remaining time for every player in TurnOrder and the instant
// the currently-running clock started, so Update can compute elapsed time
// without polling a server.
type Clock struct {
	remaining       map[types.Player]int64
	colorTicking    types.Player
	timeAtTurnStart time.Time
	increment       int64
}

// New builds a Clock with every player in starting starting with the same
// initialMillis, an increment (added to a player after their move, may be
// zero), and no clock yet running.
func New(starting []types.Player, initialMillis int64, increment int64) *Clock {
	remaining := make(map[types.Player]int64, len(starting))
	for _, p := range starting {
		remaining[p] = initialMillis
	}
	return &Clock{remaining: remaining, increment: increment}
}

// Remaining returns p's remaining time in milliseconds.
func (c *Clock) Remaining(p types.Player) int64 { return c.remaining[p] }

// ColorTicking returns the player whose clock is currently running, or
// types.NEUTRAL if none is.
func (c *Clock) ColorTicking() types.Player { return c.colorTicking }

// Start begins p's clock ticking from now, used when the very first move of
// the game is about to be made.
func (c *Clock) Start(p types.Player, now time.Time) {
	c.colorTicking = p
	c.timeAtTurnStart = now
}

// Push implements the turn-push accounting spec.md describes: deduct the
// elapsed time since the clock started from the just-moved color's
// remaining time, credit it with increment, then switch the running clock
// to next and stamp a fresh start instant.
func (c *Clock) Push(next types.Player, now time.Time) {
	if c.colorTicking != types.NEUTRAL {
		elapsed := now.Sub(c.timeAtTurnStart).Milliseconds()
		c.remaining[c.colorTicking] -= elapsed
		c.remaining[c.colorTicking] += c.increment
	}
	c.colorTicking = next
	c.timeAtTurnStart = now
}

// Edit overwrites the clock from server-authoritative values. When
// v.ColorTicking is set, remaining time for that color is reconstructed as
// v.TimeColorTickingLosesAt - now (spec.md section 6), matching the wire
// contract where the server, not this core, computes the absolute
// lose-at instant.
func (c *Clock) Edit(v Values, now time.Time) {
	c.remaining = make(map[types.Player]int64, len(v.Clocks))
	for p, ms := range v.Clocks {
		c.remaining[p] = ms
	}
	c.colorTicking = v.ColorTicking
	c.timeAtTurnStart = now
	if v.ColorTicking != types.NEUTRAL && v.TimeColorTickingLosesAt != 0 {
		c.remaining[v.ColorTicking] = v.TimeColorTickingLosesAt - now.UnixMilli()
	}
}

// Update reports whether the ticking clock has reached zero or below as of
// now, and if so returns the opponent as the winner. The second return
// value is false while time remains for every player.
func (c *Clock) Update(now time.Time) (winner types.Player, timedOut bool) {
	if c.colorTicking == types.NEUTRAL {
		return types.NEUTRAL, false
	}
	elapsed := now.Sub(c.timeAtTurnStart).Milliseconds()
	if c.remaining[c.colorTicking]-elapsed > 0 {
		return types.NEUTRAL, false
	}
	return c.colorTicking.Opponent(), true
}

// Values snapshots the clock into the wire payload shape.
func (c *Clock) Values() Values {
	out := Values{Clocks: make(map[types.Player]int64, len(c.remaining)), ColorTicking: c.colorTicking}
	for p, ms := range c.remaining {
		out.Clocks[p] = ms
	}
	if c.colorTicking != types.NEUTRAL {
		out.TimeColorTickingLosesAt = c.timeAtTurnStart.UnixMilli() + c.remaining[c.colorTicking]
	}
	return out
}
