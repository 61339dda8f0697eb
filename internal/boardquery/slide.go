/*
 * movecore - infinite board chess move generation and legality core
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 movecore contributors
 */

package boardquery

import (
	"math/big"
	"sort"

	"github.com/infinite-chess/movecore/internal/organizedpieces"
	"github.com/infinite-chess/movecore/internal/types"
)

// SlideHit is one piece lying on a slide line, with its signed step count
// from the line's origin along the line's reduced direction vector.
type SlideHit struct {
	Piece types.Piece
	Step  int64
}

// OrderedLine returns every other piece sharing v's line through origin,
// sorted by increasing distance in the given sense (+1 or -1 along v's
// reduced direction). It uses OrganizedPieces' line-bucket index so the
// unbounded empty space between pieces is never walked square by square.
func OrderedLine(pieces *organizedpieces.OrganizedPieces, v types.Coords, origin types.Coords, sense int64) []SlideHit {
	reduced := v.Reduce()
	bucket := pieces.LineBucket(reduced, origin)
	var hits []SlideHit
	for _, idx := range bucket {
		p := pieces.PieceAt(idx)
		if p.Coords.Equals(origin) {
			continue
		}
		step, ok := stepsAlong(origin, p.Coords, reduced)
		if !ok {
			continue
		}
		if sense > 0 && step <= 0 {
			continue
		}
		if sense < 0 && step >= 0 {
			continue
		}
		hits = append(hits, SlideHit{Piece: p, Step: step})
	}
	sort.Slice(hits, func(i, j int) bool {
		ai, bi := hits[i].Step, hits[j].Step
		if ai < 0 {
			ai = -ai
		}
		if bi < 0 {
			bi = -bi
		}
		return ai < bi
	})
	return hits
}

// stepsAlong returns k such that to = from + k*dir, and whether such an
// integer k exists (it always does for two points sharing a line bucket
// under dir, barring a programmer error upstream).
func stepsAlong(from, to types.Coords, dir types.Coords) (int64, bool) {
	diff := to.Sub(from)
	if dir.X.Sign() != 0 {
		q, r := new(big.Int).QuoRem(diff.X, dir.X, new(big.Int))
		if r.Sign() != 0 {
			return 0, false
		}
		return q.Int64(), true
	}
	if dir.Y.Sign() != 0 {
		q, r := new(big.Int).QuoRem(diff.Y, dir.Y, new(big.Int))
		if r.Sign() != 0 {
			return 0, false
		}
		return q.Int64(), true
	}
	return 0, false
}
