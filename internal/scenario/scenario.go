/*
 * movecore - infinite board chess move generation and legality core
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 movecore contributors
 */

// Package scenario runs the named concrete scenarios spec.md section 8
// lists ("Castling requires clear, safe transit", "En passant", ...) as
// table-driven fixtures against a freshly built board.Board, independent of
// any single package's unit tests. Grounded on FrankyGo's
// internal/testsuite's "load a suite, run each case, collect results"
// shape (itself modeled on EPD test suites): here a Case is a tiny Go
// closure instead of an EPD line, since the scenarios are bespoke board
// setups rather than a shared textual format.
package scenario

import (
	"fmt"

	"github.com/infinite-chess/movecore/internal/board"
	"github.com/infinite-chess/movecore/internal/boardio"
	"github.com/infinite-chess/movecore/internal/types"
)

// Case is one named scenario: a self-contained closure that builds its own
// scratch board and asserts against it, returning a non-nil error on
// failure - mirroring the teacher's testsuite.Result's pass/fail-with-reason
// shape.
type Case struct {
	Name  string
	Check func() error
}

// Result is one Case's outcome, collected by RunAll the way
// testsuite.TestSuite.RunTests collects per-EPD-line results.
type Result struct {
	Name string
	Err  error
}

// Passed reports whether the case succeeded.
func (r Result) Passed() bool { return r.Err == nil }

// RunAll runs every case in cases, in order, and collects the results.
func RunAll(cases []Case) []Result {
	out := make([]Result, len(cases))
	for i, c := range cases {
		out[i] = Result{Name: c.Name, Err: func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = errf("panic: %v", r)
				}
			}()
			return c.Check()
		}()}
	}
	return out
}

// placement is one piece to drop onto a scratch board, with an optional
// special right (double pawn push / castling eligibility).
type placement struct {
	X, Y    int64
	Type    types.RawType
	Player  types.Player
	Special bool
}

// at is shorthand for building a placement literal in a scenario's table.
func at(x, y int64, rt types.RawType, p types.Player, special bool) placement {
	return placement{X: x, Y: y, Type: rt, Player: p, Special: special}
}

// buildBoard assembles a scratch board.Board out of placements, with no
// world border and standard WHITE/BLACK turn order - everything the
// castling/en-passant/Huygen/insufficient-material scenarios in spec.md
// section 8 need, without dragging in the full standard starting position.
func buildBoard(turn types.Player, placements ...placement) *board.Board {
	position := make(map[types.CoordsKey]types.Coords, len(placements))
	pieces := make(map[types.CoordsKey]types.PieceType, len(placements))
	rights := make(map[types.CoordsKey]bool)
	for _, pl := range placements {
		c := types.NewCoords(pl.X, pl.Y)
		position[c.Key()] = c
		pieces[c.Key()] = types.MakePieceType(pl.Type, pl.Player)
		if pl.Special {
			rights[c.Key()] = true
		}
	}
	turnOrder := []types.Player{types.WHITE, types.BLACK}
	if turn == types.BLACK {
		turnOrder = []types.Player{types.BLACK, types.WHITE}
	}
	payload := boardio.Payload{
		Position:          position,
		Pieces:            pieces,
		PromotionRanks:    map[types.Player][]int64{types.WHITE: {8}, types.BLACK: {1}},
		PromotionsAllowed: map[types.Player][]types.RawType{types.WHITE: {types.QUEEN}, types.BLACK: {types.QUEEN}},
		TurnOrder:         turnOrder,
		Snapshot:          &boardio.Snapshot{SpecialRights: rights},
	}
	b, err := boardio.Load(payload)
	if err != nil {
		panic(err)
	}
	return b
}

// findDest looks up dest among dests by coordinate, returning its attached
// special flags.
func findDest(dests []types.CoordsSpecial, dest types.Coords) (types.CoordsSpecial, bool) {
	for _, d := range dests {
		if d.Coords.Equals(dest) {
			return d, true
		}
	}
	return types.CoordsSpecial{}, false
}

// errf is a small fmt.Errorf wrapper so Check closures read like
// assertions instead of repeating "fmt.Errorf" everywhere.
func errf(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}
