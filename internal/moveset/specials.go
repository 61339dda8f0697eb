/*
 * movecore - infinite board chess move generation and legality core
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 movecore contributors
 */

package moveset

import (
	"math/big"

	"github.com/infinite-chess/movecore/internal/boardquery"
	"github.com/infinite-chess/movecore/internal/gameview"
	"github.com/infinite-chess/movecore/internal/organizedpieces"
	"github.com/infinite-chess/movecore/internal/types"
)

// pawnSpecial contributes a pawn's forward push (single or double, subject
// to special right), its two diagonal captures, en passant, and promotion
// triggers on the landing rank. White advances toward increasing y, black
// toward decreasing y.
func pawnSpecial(gv gameview.GameView, coords types.Coords, color types.Player, premove bool) []types.CoordsSpecial {
	dir := int64(1)
	if color == types.BLACK {
		dir = -1
	}
	pieces := gv.Pieces()
	border := gv.Border()
	var out []types.CoordsSpecial

	promotes := func(c types.Coords) bool {
		for _, rank := range gv.PromotionRanks(color) {
			if c.Y.Cmp(big.NewInt(rank)) == 0 {
				return true
			}
		}
		return false
	}

	oneStep := coords.Add(big.NewInt(0), big.NewInt(dir))
	if boardquery.Classify(pieces, border, oneStep, color, premove, false) == boardquery.ValidityOpen {
		out = append(out, types.CoordsSpecial{Coords: oneStep, PromoteTrigger: promotes(oneStep)})
		if gv.HasSpecialRight(coords) {
			twoStep := coords.Add(big.NewInt(0), big.NewInt(2*dir))
			if boardquery.Classify(pieces, border, twoStep, color, premove, false) == boardquery.ValidityOpen {
				out = append(out, types.CoordsSpecial{
					Coords:          twoStep,
					EnpassantCreate: &types.EnPassantCreate{Square: oneStep, Pawn: twoStep},
					PromoteTrigger:  promotes(twoStep),
				})
			}
		}
	}

	for _, dx := range []int64{-1, 1} {
		capSq := coords.Add(big.NewInt(dx), big.NewInt(dir))
		v := boardquery.Classify(pieces, border, capSq, color, premove, true)
		if v == boardquery.ValidityCapture || (premove && v == boardquery.ValidityOpen) {
			out = append(out, types.CoordsSpecial{Coords: capSq, PromoteTrigger: promotes(capSq)})
			continue
		}
		if ep := gv.EnPassant(); ep != nil && ep.Square.Equals(capSq) {
			out = append(out, types.CoordsSpecial{Coords: capSq, Enpassant: true})
		}
	}

	return out
}

// nearestOnRank returns the closest other piece sharing coords's rank in
// direction dir (positive or negative x), using the horizontal line bucket
// so the search never has to scan unbounded empty space square by square.
func nearestOnRank(pieces *organizedpieces.OrganizedPieces, coords types.Coords, dir int64) (types.Piece, bool) {
	bucket := pieces.LineBucket(types.NewCoords(1, 0), coords)
	var best *types.Piece
	var bestDist *big.Int
	for _, idx := range bucket {
		p := pieces.PieceAt(idx)
		if p.Coords.Equals(coords) {
			continue
		}
		diff := new(big.Int).Sub(p.Coords.X, coords.X)
		if dir > 0 && diff.Sign() <= 0 {
			continue
		}
		if dir < 0 && diff.Sign() >= 0 {
			continue
		}
		d := new(big.Int).Abs(diff)
		if best == nil || d.Cmp(bestDist) < 0 {
			pp := p
			best = &pp
			bestDist = d
		}
	}
	if best == nil {
		return types.Piece{}, false
	}
	return *best, true
}

// castleSpecial contributes the king's (or other jumping royal's) castling
// destinations. Any friendly piece holding its own special right, other
// than a pawn or a jumping royal, may serve as a castling partner at
// distance 3 or more, not only a rook - infinite-board variants routinely
// castle a king with a guard or a chancellor.
func castleSpecial(gv gameview.GameView, coords types.Coords, color types.Player, premove bool) []types.CoordsSpecial {
	if premove || !gv.HasSpecialRight(coords) {
		return nil
	}
	pieces := gv.Pieces()
	opponent := color.Opponent()
	if gv.IsSquareAttacked(coords, opponent) {
		return nil
	}

	var out []types.CoordsSpecial
	for _, dir := range []int64{-1, 1} {
		partner, ok := nearestOnRank(pieces, coords, dir)
		if !ok || partner.Player() != color || !gv.HasSpecialRight(partner.Coords) {
			continue
		}
		if partner.RawType() == types.PAWN || partner.RawType().IsJumpingRoyal() {
			continue
		}
		dist := new(big.Int).Sub(partner.Coords.X, coords.X)
		dist.Abs(dist)
		if dist.Cmp(big.NewInt(3)) < 0 {
			continue
		}
		transit := coords.Add(big.NewInt(dir), big.NewInt(0))
		dest := coords.Add(big.NewInt(dir*2), big.NewInt(0))
		if gv.IsSquareAttacked(transit, opponent) || gv.IsSquareAttacked(dest, opponent) {
			continue
		}
		out = append(out, types.CoordsSpecial{
			Coords: dest,
			Castle: &types.CastleInfo{Dir: int(dir), Coord: partner.Coords},
		})
	}
	return out
}

// roseKnightCycle is the eight knight-leap vectors ordered so that each one
// is a 45 degree rotation of its neighbor; walking it in order (or reverse)
// traces the circular path a Rose slides along.
var roseKnightCycle = []types.Coords{
	types.NewCoords(2, 1), types.NewCoords(1, 2), types.NewCoords(-1, 2), types.NewCoords(-2, 1),
	types.NewCoords(-2, -1), types.NewCoords(-1, -2), types.NewCoords(1, -2), types.NewCoords(2, -1),
}

// roseSpecial walks both rotational senses of the knight cycle from coords,
// stopping each arm at the first occupied square (inclusive, if capturable)
// and never continuing past a full 8-step loop back toward the start. Each
// arm is generated independently, so the same destination square can be
// reached by more than one (vector, rotation) pair; dedupRoseDestinations
// collapses those down to exactly one entry per square.
func roseSpecial(gv gameview.GameView, coords types.Coords, color types.Player, premove bool) []types.CoordsSpecial {
	pieces := gv.Pieces()
	border := gv.Border()
	var out []types.CoordsSpecial

	walk := func(startIdx, step int) {
		cur := coords
		var path []types.Coords
		for k := 0; k < 8; k++ {
			vec := roseKnightCycle[((startIdx+step*k)%8+8)%8]
			cur = cur.AddVector(vec)
			path = append(path, cur.Clone())
			v := boardquery.Classify(pieces, border, cur, color, premove, false)
			if v == boardquery.ValidityBlocked {
				return
			}
			out = append(out, types.CoordsSpecial{Coords: cur, Path: append([]types.Coords(nil), path...)})
			if v == boardquery.ValidityCapture {
				return
			}
		}
	}

	for i := 0; i < 8; i++ {
		walk(i, 1)
	}
	for i := 0; i < 8; i++ {
		walk(i, -1)
	}
	return dedupRoseDestinations(out, coords, border)
}

// dedupRoseDestinations keeps exactly one CoordsSpecial per destination
// square among spirals that reach it more than once: the shorter path wins;
// a tie is broken by whichever path's (dest-coords) vector has the larger
// dot product toward the bounding box's center (only meaningful when a
// world border is set); any remaining tie keeps whichever arm was
// generated first, which is what makes the result deterministic across
// runs without relying on a random choice.
func dedupRoseDestinations(all []types.CoordsSpecial, coords types.Coords, border *types.AABB) []types.CoordsSpecial {
	var center *types.Coords
	if border != nil {
		c := types.Coords{
			X: new(big.Int).Quo(new(big.Int).Add(border.Min.X, border.Max.X), big.NewInt(2)),
			Y: new(big.Int).Quo(new(big.Int).Add(border.Min.Y, border.Max.Y), big.NewInt(2)),
		}
		center = &c
	}

	type entry struct {
		cs types.CoordsSpecial
	}
	kept := make(map[types.CoordsKey]entry, len(all))
	order := make([]types.CoordsKey, 0, len(all))
	for _, cs := range all {
		key := cs.Coords.Key()
		cur, exists := kept[key]
		if !exists {
			kept[key] = entry{cs: cs}
			order = append(order, key)
			continue
		}
		switch {
		case len(cs.Path) < len(cur.cs.Path):
			kept[key] = entry{cs: cs}
		case len(cs.Path) > len(cur.cs.Path):
			// longer path, keep what's already kept
		case center != nil:
			toCenter := center.Sub(coords)
			if dotProduct(cs.Coords.Sub(coords), toCenter).Cmp(dotProduct(cur.cs.Coords.Sub(coords), toCenter)) > 0 {
				kept[key] = entry{cs: cs}
			}
		}
	}

	out := make([]types.CoordsSpecial, 0, len(order))
	for _, key := range order {
		out = append(out, kept[key].cs)
	}
	return out
}

// dotProduct returns a . b for two big.Int vectors.
func dotProduct(a, b types.Coords) *big.Int {
	return new(big.Int).Add(new(big.Int).Mul(a.X, b.X), new(big.Int).Mul(a.Y, b.Y))
}
