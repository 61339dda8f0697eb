/*
 * movecore - infinite board chess move generation and legality core
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 movecore contributors
 */

package main

import (
	"fmt"

	"github.com/infinite-chess/movecore/internal/board"
	"github.com/infinite-chess/movecore/internal/legalmoves"
	"github.com/infinite-chess/movecore/internal/moveset"
	"github.com/infinite-chess/movecore/internal/types"
)

// unboundedStepCap bounds how many steps an unbounded slide direction
// (StepBound with a nil end, meaning "nothing stops it before the board's
// own representable range") contributes to a perft count, since an actual
// infinite count has no meaningful perft node total. This horizon is
// perft's own; legalmoves.bruteSense caps Colinear slides separately at
// legalmoves' bruteForceCap.
const unboundedStepCap = 64

// PerftResult is the outcome of counting legal destinations to a given ply
// depth: total leaf destinations, captures seen along the way, and how
// many unbounded slide ends were capped rather than counted exactly - each
// nil Min or Max of a sliding direction counts once, at every position
// visited (spec.md never promises a finite answer on a truly empty,
// unbordered board, so this is surfaced rather than silently approximated).
type PerftResult struct {
	Depth    int
	Nodes    int64
	Captures int64
	Capped   int64
}

// String renders r for the CLI.
func (r PerftResult) String() string {
	return fmt.Sprintf("perft(%d): nodes=%d captures=%d capped-directions=%d", r.Depth, r.Nodes, r.Captures, r.Capped)
}

// Perft counts legal destinations reachable from b's current position to
// the given ply depth, recursing by actually making and rewinding each
// move (grounded on FrankyGo's movegen.Perft, the same
// make-move/recurse/rewind-move shape, generalized from bitboard pseudo
// legal generation to board.Board.CalculateLegal's Filtered destinations).
func Perft(b *board.Board, depth int) PerftResult {
	var r PerftResult
	r.Depth = depth
	perftRec(b, depth, &r)
	return r
}

func perftRec(b *board.Board, depth int, r *PerftResult) {
	if depth == 0 {
		r.Nodes++
		return
	}
	mover := b.WhosTurn()
	for _, piece := range b.AllPiecesOf(mover) {
		filtered := b.CalculateLegal(piece.Coords, mover, false)
		for _, draft := range enumerateDrafts(piece.Coords, filtered, r) {
			dest, ok := legalmoves.CheckIfMoveLegal(b.Context(), b.Registry(), b, filtered, piece.Coords, draft, mover)
			if !ok {
				continue
			}
			if dest.PromoteTrigger {
				allowed := b.PromotionsAllowed(mover)
				if len(allowed) == 0 {
					continue
				}
				draftWithPromo := types.MoveDraft{StartCoords: piece.Coords, EndCoords: draft, HasPromotion: true, Promotion: allowed[0]}
				move, err := b.MakeMove(draftWithPromo, dest, mover)
				if err != nil {
					continue
				}
				if move.Flags.Capture {
					r.Captures++
				}
				perftRec(b, depth-1, r)
				b.RewindMove()
				continue
			}
			move, err := b.MakeMove(types.MoveDraft{StartCoords: piece.Coords, EndCoords: draft}, dest, mover)
			if err != nil {
				continue
			}
			if move.Flags.Capture {
				r.Captures++
			}
			perftRec(b, depth-1, r)
			b.RewindMove()
		}
	}
}

// enumerateDrafts materializes every concrete destination square f
// describes: individual jumps and specials as-is, plus every square along
// each sliding direction's clipped [min,max] step range.
func enumerateDrafts(from types.Coords, f legalmoves.Filtered, r *PerftResult) []types.Coords {
	var out []types.Coords
	for _, d := range f.Individual {
		out = append(out, d.Coords)
	}
	for _, d := range f.Special {
		out = append(out, d.Coords)
	}
	for vk, bound := range f.Sliding {
		v := moveset.VectorFromKey(vk)
		lo, hi := int64(-unboundedStepCap), int64(unboundedStepCap)
		if bound.Min != nil {
			lo = *bound.Min
		} else {
			r.Capped++
		}
		if bound.Max != nil {
			hi = *bound.Max
		} else {
			r.Capped++
		}
		for step := lo; step <= hi; step++ {
			if step == 0 {
				continue
			}
			out = append(out, from.AddVector(types.NewCoords(v.X.Int64()*step, v.Y.Int64()*step)))
		}
	}
	return out
}
