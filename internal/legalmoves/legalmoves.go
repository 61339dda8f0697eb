/*
 * movecore - infinite board chess move generation and legality core
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 movecore contributors
 */

// Package legalmoves implements spec.md section 4.3/4.4's move generation
// pipeline: expand a piece's moveset into candidate destinations, filter by
// obstruction, append specials, then prune anything that would leave the
// mover's own royal in check. Grounded on FrankyGo's
// internal/movegen.Movegen.GenerateMoves (the same four-stage shape:
// pseudo-legal generation, then a removeCheckInvalidMoves-style legality
// pass using simulated make/unmake), adapted from precomputed bitboard
// attack tables to the data-driven moveset descriptors an unbounded board
// needs.
package legalmoves

import (
	"math/big"

	"github.com/infinite-chess/movecore/internal/boardquery"
	"github.com/infinite-chess/movecore/internal/gameview"
	"github.com/infinite-chess/movecore/internal/moveset"
	"github.com/infinite-chess/movecore/internal/types"
)

// bruteForceCap bounds how far a Colinear slide (custom Blocking/Ignore, or
// a non-primitive direction such as Knightrider) is walked when no piece or
// border ever stops it. An unbounded empty board has no finite answer to
// "how far can this slide", so generation settles for a generous, explicit
// horizon rather than enumerating forever; this mirrors how the original
// infinite-board client caps how far it renders/offers speculative slides.
const bruteForceCap = 256

// Destinations is the result of expanding one piece's moveset against the
// live position: explicit squares for individual jumps, specials and any
// Colinear slide, plus a clipped step range for every ordinary (primitive,
// default-blocking) slide direction - ranges stay compact instead of
// enumerating every empty square of what can be an arbitrarily long slide.
type Destinations struct {
	Individual []types.CoordsSpecial
	Sliding    map[types.VectorKey]moveset.StepBound
	Special    []types.CoordsSpecial
}

// Generate returns every pseudo-legal destination for the piece at coords,
// without yet checking whether making the move leaves the mover's own
// royal in check (see RemoveCheckInvalid).
func Generate(gv gameview.GameView, reg *moveset.Registry, coords types.Coords, mover types.Player, premove bool) Destinations {
	piece, ok := gv.Pieces().PieceByCoords(coords)
	if !ok {
		return Destinations{}
	}
	ms := reg.Get(piece.RawType())

	var out Destinations
	for _, off := range ms.Individual {
		dest := coords.AddVector(off)
		v := boardquery.Classify(gv.Pieces(), gv.Border(), dest, mover, premove, false)
		if v == boardquery.ValidityBlocked {
			continue
		}
		out.Individual = append(out.Individual, types.CoordsSpecial{Coords: dest})
	}

	if len(ms.Sliding) > 0 {
		if ms.Colinear {
			out.Sliding = nil
			out.Individual = append(out.Individual, bruteSlides(gv, ms, coords, mover, premove)...)
		} else {
			out.Sliding = clippedSlides(gv, ms, coords, mover, premove)
		}
	}

	if ms.Special != nil {
		out.Special = ms.Special(gv, coords, mover, premove)
	}

	return out
}

// clippedSlides computes, for every primitive slide direction, the actual
// reachable [min,max] step range given the piece's own StepBound and the
// nearest obstruction in each sense.
func clippedSlides(gv gameview.GameView, ms *moveset.PieceMoveset, coords types.Coords, mover types.Player, premove bool) map[types.VectorKey]moveset.StepBound {
	out := make(map[types.VectorKey]moveset.StepBound, len(ms.Sliding))
	for vk, bound := range ms.Sliding {
		v := moveset.VectorFromKey(vk)
		maxStep := clampSense(gv, ms, v, coords, mover, premove, 1, bound.Max)
		minStep := clampSense(gv, ms, v, coords, mover, premove, -1, bound.Min)
		out[vk] = moveset.StepBound{Min: minStep, Max: maxStep}
	}
	return out
}

// clampSense walks the line bucket in the given sense and returns the
// furthest step reachable, honoring the piece's own bound in that sense.
func clampSense(gv gameview.GameView, ms *moveset.PieceMoveset, v types.Coords, coords types.Coords, mover types.Player, premove bool, sense int64, ownBound *int64) *int64 {
	hits := boardquery.OrderedLine(gv.Pieces(), v, coords, sense)
	var furthest int64
	limited := ownBound != nil
	limit := int64(0)
	if limited {
		limit = *ownBound
		if limit < 0 {
			limit = -limit
		}
	}
	for _, hit := range hits {
		step := hit.Step
		if step < 0 {
			step = -step
		}
		if limited && step > limit {
			break
		}
		validity := ms.Blocking(mover, hit.Piece, coords, premove)
		if validity == boardquery.ValidityOpen {
			continue
		}
		if validity == boardquery.ValidityCapture {
			furthest = step
		} else {
			furthest = step - 1
		}
		return clampToOwnBound(furthest*sense, sense, ownBound)
	}
	// nothing stopped the ray: either capped by the piece's own bound, or
	// (unbounded) by the border, or by bruteForceCap as a last resort.
	if limited {
		r := limit * sense
		return clampToOwnBound(r, sense, ownBound)
	}
	if b := gv.Border(); b != nil {
		return borderClamp(v, coords, sense, b)
	}
	r := bruteForceCap * sense
	return &r
}

func clampToOwnBound(r int64, sense int64, ownBound *int64) *int64 {
	if ownBound == nil {
		return &r
	}
	if sense > 0 && r > *ownBound {
		r = *ownBound
	}
	if sense < 0 && r < *ownBound {
		r = *ownBound
	}
	return &r
}

// borderClamp computes how many steps along v (from coords, in sense) stay
// within the board border b.
func borderClamp(v types.Coords, coords types.Coords, sense int64, b *types.AABB) *int64 {
	maxSteps := int64(1 << 30)
	if v.X.Sign() != 0 {
		var edge *big.Int
		if (v.X.Sign() > 0) == (sense > 0) {
			edge = b.Max.X
		} else {
			edge = b.Min.X
		}
		steps := stepsToEdge(coords.X, v.X, edge, sense)
		if steps < maxSteps {
			maxSteps = steps
		}
	}
	if v.Y.Sign() != 0 {
		var edge *big.Int
		if (v.Y.Sign() > 0) == (sense > 0) {
			edge = b.Max.Y
		} else {
			edge = b.Min.Y
		}
		steps := stepsToEdge(coords.Y, v.Y, edge, sense)
		if steps < maxSteps {
			maxSteps = steps
		}
	}
	r := maxSteps * sense
	return &r
}

func stepsToEdge(from *big.Int, component *big.Int, edge *big.Int, sense int64) int64 {
	diff := new(big.Int).Sub(edge, from)
	q := new(big.Int).Quo(diff, component)
	if q.Sign() < 0 {
		q.Neg(q)
	}
	if !q.IsInt64() {
		return 1 << 30
	}
	return q.Int64()
}

// bruteSlides enumerates explicit destinations for a Colinear moveset
// (custom Blocking/Ignore, or a non-primitive direction), since their valid
// landing squares are not a contiguous range.
func bruteSlides(gv gameview.GameView, ms *moveset.PieceMoveset, coords types.Coords, mover types.Player, premove bool) []types.CoordsSpecial {
	var out []types.CoordsSpecial
	for vk, bound := range ms.Sliding {
		v := moveset.VectorFromKey(vk)
		for _, sense := range []int64{1, -1} {
			out = append(out, bruteSense(gv, ms, v, coords, mover, premove, sense, bound)...)
		}
	}
	return out
}

func bruteSense(gv gameview.GameView, ms *moveset.PieceMoveset, v types.Coords, coords types.Coords, mover types.Player, premove bool, sense int64, bound moveset.StepBound) []types.CoordsSpecial {
	var out []types.CoordsSpecial
	limit := int64(bruteForceCap)
	if sense > 0 && bound.Max != nil && *bound.Max < limit {
		limit = *bound.Max
	}
	if sense < 0 && bound.Min != nil && -*bound.Min < limit {
		limit = -*bound.Min
	}
	for step := int64(1); step <= limit; step++ {
		cur := coords.AddVector(v.Scale(step * sense))
		if b := gv.Border(); b != nil && !b.Contains(cur) {
			break
		}
		occupant, occupied := gv.Pieces().PieceByCoords(cur)
		if !occupied {
			if ms.Ignore(coords, cur) {
				out = append(out, types.CoordsSpecial{Coords: cur})
			}
			continue
		}
		validity := ms.Blocking(mover, occupant, coords, premove)
		if validity == boardquery.ValidityOpen {
			continue
		}
		if validity == boardquery.ValidityCapture && ms.Ignore(coords, cur) {
			out = append(out, types.CoordsSpecial{Coords: cur})
		}
		break
	}
	return out
}
