/*
 * movecore - infinite board chess move generation and legality core
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 movecore contributors
 */

// Package check implements detectCheck and isSquareAttacked from spec.md
// section 4.5: given the live position, decide whether any royal is
// attacked and by what. Grounded on FrankyGo's Position.isAttacked, which
// walks the same three cases (leaper attacks via precomputed tables, slider
// attacks via ray scan, pawn attacks via a dedicated offset pair) against
// bitboards; here the ray scan walks organizedpieces' line buckets instead
// of a bitboard, and the leaper lookup goes through vicinity.Index instead
// of a fixed-size attack table, since both pieces and directions are
// data-driven rather than enumerable in advance.
package check

import (
	"github.com/infinite-chess/movecore/internal/boardquery"
	"github.com/infinite-chess/movecore/internal/gameview"
	"github.com/infinite-chess/movecore/internal/moveset"
	"github.com/infinite-chess/movecore/internal/organizedpieces"
	"github.com/infinite-chess/movecore/internal/types"
	"github.com/infinite-chess/movecore/internal/vicinity"
)

// Detector bundles the read-only data IsSquareAttacked/DetectCheck need:
// the registry for slide bounds/specials and its precomputed vicinity
// index. One Detector is built per game and reused for every query.
type Detector struct {
	Registry *moveset.Registry
	Vicinity *vicinity.Index
}

// NewDetector builds a Detector from a moveset registry.
func NewDetector(reg *moveset.Registry) *Detector {
	return &Detector{Registry: reg, Vicinity: vicinity.Build(reg)}
}

// IsSquareAttacked reports whether any piece belonging to by could move to
// coords on its next turn. Pawn captures are special-cased since a pawn's
// moveset carries no Individual/Sliding entries (its reach comes entirely
// from its Special hook).
func (d *Detector) IsSquareAttacked(gv gameview.GameView, coords types.Coords, by types.Player) bool {
	pieces := gv.Pieces()

	if pawnAttacks(pieces, coords, by) {
		return true
	}

	attacked := false
	d.Vicinity.JumperOrigins(coords, func(origin types.Coords, rawTypes []types.RawType) {
		if attacked {
			return
		}
		occupant, ok := pieces.PieceByCoords(origin)
		if !ok || occupant.Player() != by {
			return
		}
		for _, rt := range rawTypes {
			if occupant.RawType() == rt {
				attacked = true
				return
			}
		}
	})
	if attacked {
		return true
	}

	for vk, rawTypes := range d.Vicinity.SlideDirections() {
		v := moveset.VectorFromKey(vk)
		for _, sense := range []int64{1, -1} {
			hits := boardquery.OrderedLine(pieces, v, coords, sense)
			if _, ok := d.firstBlockingAttacker(v, coords, hits, rawTypes, by); ok {
				return true
			}
		}
	}

	if d.roseAttacks(gv, coords, by) {
		return true
	}

	return false
}

// firstBlockingAttacker walks hits (already ordered nearest-first) applying
// each candidate's own Blocking function until one stops the ray; it
// returns the attacking piece and true if the ray is stopped by an enemy
// piece of a type registered for v within its StepBound, at a square its
// Ignore function accepts.
func (d *Detector) firstBlockingAttacker(v types.Coords, origin types.Coords, hits []boardquery.SlideHit, rawTypes []types.RawType, by types.Player) (types.Piece, bool) {
	for _, hit := range hits {
		ms := d.Registry.Get(hit.Piece.RawType())
		validity := ms.Blocking(by.Opponent(), hit.Piece, origin, false)
		if validity == boardquery.ValidityOpen {
			continue
		}
		if validity != boardquery.ValidityCapture || hit.Piece.Player() != by {
			return types.Piece{}, false
		}
		matches := false
		for _, rt := range rawTypes {
			if hit.Piece.RawType() == rt {
				matches = true
				break
			}
		}
		if !matches {
			return types.Piece{}, false
		}
		bound, ok := d.Vicinity.BoundFor(v.VectorKey(), hit.Piece.RawType())
		if !ok {
			return types.Piece{}, false
		}
		step := hit.Step
		if step < 0 {
			step = -step
		}
		if bound.Min != nil && step < *bound.Min {
			return types.Piece{}, false
		}
		if bound.Max != nil && step > *bound.Max {
			return types.Piece{}, false
		}
		if !ms.Ignore(origin, hit.Piece.Coords) {
			return types.Piece{}, false
		}
		return hit.Piece, true
	}
	return types.Piece{}, false
}

// pawnAttacks reports whether a pawn belonging to by threatens coords: the
// pawn sits diagonally behind coords relative to its own push direction.
func pawnAttacks(pieces *organizedpieces.OrganizedPieces, coords types.Coords, by types.Player) bool {
	dir := int64(1)
	if by == types.BLACK {
		dir = -1
	}
	for _, dx := range []int64{-1, 1} {
		origin := coords.Sub(types.NewCoords(dx, dir))
		occupant, ok := pieces.PieceByCoords(origin)
		if ok && occupant.Player() == by && occupant.RawType() == types.PAWN {
			return true
		}
	}
	return false
}

// roseAttacks brute-forces whether any Rose belonging to by can reach
// coords, since a Rose's reach is entirely data-dependent (its spiral stops
// wherever it first meets another piece) and cannot be captured by a fixed
// offset table the way a knight's can.
func (d *Detector) roseAttacks(gv gameview.GameView, coords types.Coords, by types.Player) bool {
	ms, ok := d.Registry.ByType[types.ROSE]
	if !ok || ms.Special == nil {
		return false
	}
	pieces := gv.Pieces()
	start, end, ok := pieces.RangeOf(types.MakePieceType(types.ROSE, by))
	if !ok {
		return false
	}
	for i := start; i < end; i++ {
		p := pieces.PieceAt(i)
		if p.IsVacant() {
			continue
		}
		for _, dest := range ms.Special(gv, p.Coords, by, false) {
			if dest.Coords.Equals(coords) {
				return true
			}
		}
	}
	return false
}
