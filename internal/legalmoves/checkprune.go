/*
 * movecore - infinite board chess move generation and legality core
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 movecore contributors
 */

package legalmoves

import (
	"math/big"

	"github.com/infinite-chess/movecore/internal/boardquery"
	"github.com/infinite-chess/movecore/internal/gameview"
	"github.com/infinite-chess/movecore/internal/movepiece"
	"github.com/infinite-chess/movecore/internal/moveset"
	"github.com/infinite-chess/movecore/internal/types"
)

// Filtered is the output of RemoveCheckInvalid: whatever of Destinations
// survives simulation. Brute is set when every candidate along Sliding must
// be verified on demand by CheckIfMoveLegal rather than trusted as a range,
// per spec.md section 4.5 ("Royal Queen or colinear moveset sets
// legalMoves.brute = true").
type Filtered struct {
	Individual []types.CoordsSpecial
	Special    []types.CoordsSpecial
	Sliding    map[types.VectorKey]moveset.StepBound
	Brute      bool
}

// RemoveCheckInvalid implements spec.md section 4.5's
// removeCheckInvalidMoves: it drops any destination that would leave
// mover's own royal in check, by simulating generate+apply+detect+revert
// (movepiece.Context.SimulatedCheck) for every individual/special candidate,
// and by restricting slide ranges to a pin line when one is found. Premoves
// skip check pruning entirely, matching the glossary's definition of
// premove.
func RemoveCheckInvalid(ctx *movepiece.Context, reg *moveset.Registry, gv gameview.GameView, coords types.Coords, mover types.Player, dest Destinations, premove bool) Filtered {
	if premove {
		return Filtered{Individual: dest.Individual, Special: dest.Special, Sliding: dest.Sliding}
	}

	piece, _ := gv.Pieces().PieceByCoords(coords)
	ms := reg.Get(piece.RawType())
	pinLine, pinned := findPin(gv, reg, coords, mover)

	out := Filtered{Brute: ms.Colinear || piece.RawType() == types.ROYALQUEEN}

	simulate := func(cand types.CoordsSpecial) bool {
		draft := types.MoveDraft{
			StartCoords:     coords,
			EndCoords:       cand.Coords,
			Castle:          cand.Castle,
			EnPassant:       cand.Enpassant,
			EnPassantCreate: cand.EnpassantCreate,
			Path:            cand.Path,
		}
		m, err := ctx.GenerateMove(draft, cand, mover)
		if err != nil {
			return false
		}
		return !ctx.SimulatedCheck(&m, mover)
	}

	for _, ind := range dest.Individual {
		if pinned && !onLine(pinLine, coords, ind.Coords) {
			continue
		}
		if simulate(ind) {
			out.Individual = append(out.Individual, ind)
		}
	}
	for _, sp := range dest.Special {
		if pinned && !onLine(pinLine, coords, sp.Coords) {
			continue
		}
		if simulate(sp) {
			out.Special = append(out.Special, sp)
		}
	}

	if dest.Sliding != nil {
		out.Sliding = make(map[types.VectorKey]moveset.StepBound, len(dest.Sliding))
		var pinKey types.VectorKey
		if pinned {
			pinKey = pinLine.VectorKey()
		}
		for vk, bound := range dest.Sliding {
			if pinned && vk != pinKey {
				continue
			}
			out.Sliding[vk] = bound
		}
	}

	return out
}

// findPin reports whether the piece at coords sits directly between a
// friendly royal and an enemy slider along one of the eight standard
// directions, with nothing else between either side - the classic
// "absolute pin" shape. Non-primitive/Colinear attacks are deliberately
// excluded here since those movesets already force brute-force
// verification of every candidate square instead.
func findPin(gv gameview.GameView, reg *moveset.Registry, coords types.Coords, mover types.Player) (types.Coords, bool) {
	piece, ok := gv.Pieces().PieceByCoords(coords)
	if !ok || piece.RawType().IsRoyal() {
		return types.Coords{}, false
	}
	pieces := gv.Pieces()
	for vk := range moveset.StandardDirections() {
		v := moveset.VectorFromKey(vk)
		posHits := boardquery.OrderedLine(pieces, v, coords, 1)
		negHits := boardquery.OrderedLine(pieces, v, coords, -1)
		if royalThenAttacker(reg, posHits, negHits, vk, mover) {
			return v, true
		}
		if royalThenAttacker(reg, negHits, posHits, vk, mover) {
			return v, true
		}
	}
	return types.Coords{}, false
}

func royalThenAttacker(reg *moveset.Registry, royalSide, attackerSide []boardquery.SlideHit, vk types.VectorKey, mover types.Player) bool {
	if len(royalSide) == 0 || royalSide[0].Piece.Player() != mover || !royalSide[0].Piece.RawType().IsRoyal() {
		return false
	}
	if len(attackerSide) == 0 {
		return false
	}
	attacker := attackerSide[0].Piece
	if attacker.Player() == mover {
		return false
	}
	ms := reg.Get(attacker.RawType())
	_, slides := ms.Sliding[vk]
	return slides
}

// onLine reports whether to lies on the infinite line through from in
// direction v (either sense).
func onLine(v, from, to types.Coords) bool {
	diff := to.Sub(from)
	if diff.X.Sign() == 0 && diff.Y.Sign() == 0 {
		return false
	}
	return diff.Reduce().Equals(v.Reduce())
}

// HasAtleast1Move implements spec.md section 4.3's hasAtleast1Move: true if
// any individual/special destination survived, or any slide direction
// still has positive width.
func HasAtleast1Move(f Filtered) bool {
	if len(f.Individual) > 0 || len(f.Special) > 0 {
		return true
	}
	for _, b := range f.Sliding {
		if b.Max == nil || b.Min == nil {
			return true
		}
		if *b.Max > 0 || *b.Min < 0 {
			return true
		}
	}
	return false
}

// CheckIfMoveLegal implements spec.md section 4.3's checkIfMoveLegal: given
// a Filtered result for the piece at start, decide whether end is a legal
// destination, transferring whatever special flags apply. When f.Brute is
// set, a slide candidate is additionally simulated and rejected if it
// leaves mover in check.
func CheckIfMoveLegal(ctx *movepiece.Context, reg *moveset.Registry, gv gameview.GameView, f Filtered, start, end types.Coords, mover types.Player) (types.CoordsSpecial, bool) {
	for _, ind := range f.Individual {
		if ind.Coords.Equals(end) {
			return ind, true
		}
	}
	for _, sp := range f.Special {
		if sp.Coords.Equals(end) {
			return sp, true
		}
	}

	piece, ok := gv.Pieces().PieceByCoords(start)
	if !ok {
		return types.CoordsSpecial{}, false
	}
	ms := reg.Get(piece.RawType())

	for vk, bound := range f.Sliding {
		v := moveset.VectorFromKey(vk)
		step, ok := stepsBetween(start, end, v)
		if !ok || step == 0 {
			continue
		}
		if step > 0 {
			if bound.Max != nil && step > *bound.Max {
				continue
			}
		} else {
			if bound.Min != nil && step < *bound.Min {
				continue
			}
		}
		if !ms.Ignore(start, end) {
			continue
		}
		cand := types.CoordsSpecial{Coords: end}
		if f.Brute {
			draft := types.MoveDraft{StartCoords: start, EndCoords: end}
			m, err := ctx.GenerateMove(draft, cand, mover)
			if err != nil {
				continue
			}
			if ctx.SimulatedCheck(&m, mover) {
				continue
			}
		}
		return cand, true
	}
	return types.CoordsSpecial{}, false
}

// stepsBetween returns k such that end = start + k*v, and whether such an
// integer k exists.
func stepsBetween(start, end, v types.Coords) (int64, bool) {
	diff := end.Sub(start)
	if v.X.Sign() != 0 {
		q, r := new(big.Int).QuoRem(diff.X, v.X, new(big.Int))
		if r.Sign() != 0 {
			return 0, false
		}
		return q.Int64(), true
	}
	if v.Y.Sign() != 0 {
		q, r := new(big.Int).QuoRem(diff.Y, v.Y, new(big.Int))
		if r.Sign() != 0 {
			return 0, false
		}
		return q.Int64(), true
	}
	return 0, false
}
