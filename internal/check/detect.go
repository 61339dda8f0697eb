/*
 * movecore - infinite board chess move generation and legality core
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 movecore contributors
 */

package check

import (
	"github.com/infinite-chess/movecore/internal/boardquery"
	"github.com/infinite-chess/movecore/internal/gameview"
	"github.com/infinite-chess/movecore/internal/moveset"
	"github.com/infinite-chess/movecore/internal/types"
)

// DetectCheck reports whether any of color's royals are currently attacked,
// and by whom. A game may have more than one royal (e.g. a king plus a
// royal centaur in some variants); all of them are reported so the caller
// can decide how its win condition treats simultaneous multi-royal check.
func (d *Detector) DetectCheck(gv gameview.GameView, color types.Player) types.CheckResult {
	pieces := gv.Pieces()
	opponent := color.Opponent()

	var result types.CheckResult
	for _, pt := range pieces.PieceTypes() {
		if pt.Player() != color || !pt.RawType().IsRoyal() {
			continue
		}
		start, end, ok := pieces.RangeOf(pt)
		if !ok {
			continue
		}
		for i := start; i < end; i++ {
			p := pieces.PieceAt(i)
			if p.IsVacant() {
				continue
			}
			if d.IsSquareAttacked(gv, p.Coords, opponent) {
				result.Check = true
				result.RoyalsInCheck = append(result.RoyalsInCheck, p.Coords)
				result.Attackers = append(result.Attackers, d.attackersOf(gv, p.Coords, opponent)...)
			}
		}
	}
	return result
}

// attackersOf collects every enemy piece actually responsible for attacking
// coords, for diagnostics and Huygen-aware checkmate disambiguation (a
// double check from two Huygens aimed through the same non-prime square
// still counts as two distinct attackers even though they're colinear).
func (d *Detector) attackersOf(gv gameview.GameView, coords types.Coords, by types.Player) []types.Attacker {
	pieces := gv.Pieces()
	var out []types.Attacker

	if pawnAttacks(pieces, coords, by) {
		dir := int64(1)
		if by == types.BLACK {
			dir = -1
		}
		for _, dx := range []int64{-1, 1} {
			origin := coords.Sub(types.NewCoords(dx, dir))
			occupant, ok := pieces.PieceByCoords(origin)
			if ok && occupant.Player() == by && occupant.RawType() == types.PAWN {
				out = append(out, types.Attacker{Piece: occupant, Attacked: coords})
			}
		}
	}

	d.Vicinity.JumperOrigins(coords, func(origin types.Coords, rawTypes []types.RawType) {
		occupant, ok := pieces.PieceByCoords(origin)
		if !ok || occupant.Player() != by {
			return
		}
		for _, rt := range rawTypes {
			if occupant.RawType() == rt {
				out = append(out, types.Attacker{Piece: occupant, Attacked: coords})
				return
			}
		}
	})

	for vk, rawTypes := range d.Vicinity.SlideDirections() {
		v := moveset.VectorFromKey(vk)
		for _, sense := range []int64{1, -1} {
			hits := boardquery.OrderedLine(pieces, v, coords, sense)
			if p, ok := d.firstBlockingAttacker(v, coords, hits, rawTypes, by); ok {
				out = append(out, types.Attacker{Piece: p, Attacked: coords})
			}
		}
	}

	if d.roseAttacks(gv, coords, by) {
		start, end, ok := pieces.RangeOf(types.MakePieceType(types.ROSE, by))
		if ok {
			ms := d.Registry.ByType[types.ROSE]
			for i := start; i < end; i++ {
				p := pieces.PieceAt(i)
				if p.IsVacant() {
					continue
				}
				for _, dest := range ms.Special(gv, p.Coords, by, false) {
					if dest.Coords.Equals(coords) {
						out = append(out, types.Attacker{Piece: p, Attacked: coords})
						break
					}
				}
			}
		}
	}

	return out
}
