/*
 * movecore - infinite board chess move generation and legality core
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 movecore contributors
 */

package moveset

import (
	"github.com/infinite-chess/movecore/internal/types"
)

// Registry is the built set of movesets keyed by RawType.
type Registry struct {
	ByType map[types.RawType]*PieceMoveset
}

// Get returns the moveset for rt, or an empty (non-nil) one for RawNone /
// unregistered types so callers never need a nil check.
func (r *Registry) Get(rt types.RawType) *PieceMoveset {
	if ms, ok := r.ByType[rt]; ok {
		return ms
	}
	return &PieceMoveset{}
}

func knightOffsets() []types.Coords {
	steps := []struct{ dx, dy int64 }{
		{1, 2}, {2, 1}, {-1, 2}, {-2, 1},
		{1, -2}, {2, -1}, {-1, -2}, {-2, -1},
	}
	out := make([]types.Coords, len(steps))
	for i, s := range steps {
		out[i] = types.NewCoords(s.dx, s.dy)
	}
	return out
}

func kingOffsets() []types.Coords {
	steps := []struct{ dx, dy int64 }{
		{1, 0}, {-1, 0}, {0, 1}, {0, -1},
		{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
	}
	out := make([]types.Coords, len(steps))
	for i, s := range steps {
		out[i] = types.NewCoords(s.dx, s.dy)
	}
	return out
}

// hawkOffsets jumps 2 or 3 squares along a rook/bishop direction without
// sliding through the intervening squares - a long-range leaper rather than
// a slider, so each destination is checked independently and nothing in
// between can block it.
func hawkOffsets() []types.Coords {
	var out []types.Coords
	dirs := []struct{ dx, dy int64 }{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	for _, d := range dirs {
		out = append(out, types.NewCoords(d.dx*2, d.dy*2), types.NewCoords(d.dx*3, d.dy*3))
	}
	return out
}

func orthogonalSlides() map[types.VectorKey]StepBound {
	return map[types.VectorKey]StepBound{
		types.NewCoords(1, 0).VectorKey(): Unbounded(),
		types.NewCoords(0, 1).VectorKey(): Unbounded(),
	}
}

func diagonalSlides() map[types.VectorKey]StepBound {
	return map[types.VectorKey]StepBound{
		types.NewCoords(1, 1).VectorKey():  Unbounded(),
		types.NewCoords(1, -1).VectorKey(): Unbounded(),
	}
}

func queenSlides() map[types.VectorKey]StepBound {
	out := orthogonalSlides()
	for k, v := range diagonalSlides() {
		out[k] = v
	}
	return out
}

// knightriderSlides reduces the eight knight-leap vectors to their four
// distinct line directions, each unbounded: a Knightrider slides repeatedly
// along one knight-leap direction instead of jumping it once.
func knightriderSlides() map[types.VectorKey]StepBound {
	out := make(map[types.VectorKey]StepBound)
	for _, o := range knightOffsets() {
		out[o.VectorKey()] = Unbounded()
	}
	return out
}

// BuildDefaultRegistry constructs the built-in piece set named in spec.md:
// the standard six, plus Hawk, Huygen, Rose, Amazon, Knightrider and the
// fairy royals/compounds the pack's examples exercise. The returned
// Registry is shared across every game since a PieceMoveset carries no
// per-board state - its defaultBlocking closure is only ever handed a nil
// OrganizedPieces pointer here because Normalize's default blocking/ignore
// never actually reads it (see defaultBlocking in moveset.go); the
// signature keeps the parameter for symmetry with future per-board
// defaults, not because this registry needs one.
func BuildDefaultRegistry() *Registry {
	reg := &Registry{ByType: make(map[types.RawType]*PieceMoveset)}
	primitive := StandardDirections()

	set := func(rt types.RawType, ms *PieceMoveset) {
		ms.Normalize(nil, primitive)
		reg.ByType[rt] = ms
	}

	set(PAWN, &PieceMoveset{Special: pawnSpecial})
	set(KNIGHT, &PieceMoveset{Individual: knightOffsets()})
	set(BISHOP, &PieceMoveset{Sliding: diagonalSlides()})
	set(ROOK, &PieceMoveset{Sliding: orthogonalSlides()})
	set(QUEEN, &PieceMoveset{Sliding: queenSlides()})
	set(KING, &PieceMoveset{Individual: kingOffsets(), Special: castleSpecial})
	set(AMAZON, &PieceMoveset{Individual: knightOffsets(), Sliding: queenSlides()})
	set(KNIGHTRIDER, &PieceMoveset{Sliding: knightriderSlides()})
	set(HAWK, &PieceMoveset{Individual: hawkOffsets()})
	set(HUYGEN, &PieceMoveset{Sliding: orthogonalSlides(), Blocking: huygenBlocking, Ignore: huygenIgnore})
	set(ROSE, &PieceMoveset{Special: roseSpecial})
	set(CHANCELLOR, &PieceMoveset{Individual: knightOffsets(), Sliding: orthogonalSlides()})
	set(ARCHBISHOP, &PieceMoveset{Individual: knightOffsets(), Sliding: diagonalSlides()})
	set(CENTAUR, &PieceMoveset{Individual: append(kingOffsets(), knightOffsets()...)})
	set(GUARD, &PieceMoveset{Individual: kingOffsets()})
	set(ROYALCENTAUR, &PieceMoveset{Individual: append(kingOffsets(), knightOffsets()...), Special: castleSpecial})
	set(ROYALQUEEN, &PieceMoveset{Sliding: queenSlides()})

	return reg
}

// TrimToPresentTypes returns the subset of reg whose RawType actually
// occurs in present, matching spec.md's "movesets are trimmed to include
// only types present in the game" requirement for
// processInitialPosition.
func (r *Registry) TrimToPresentTypes(present map[types.RawType]bool) *Registry {
	out := &Registry{ByType: make(map[types.RawType]*PieceMoveset, len(present))}
	for rt := range present {
		if ms, ok := r.ByType[rt]; ok {
			out.ByType[rt] = ms
		}
	}
	return out
}
