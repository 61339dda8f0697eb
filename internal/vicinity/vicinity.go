/*
 * movecore - infinite board chess move generation and legality core
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 movecore contributors
 */

// Package vicinity precomputes, once per moveset registry, the reverse index
// check detection needs to answer "could anything attack this square"
// without re-deriving every piece type's reach on every call: which RawTypes
// can land on a square via an individual jump of a given offset, and which
// RawTypes slide along a given direction. Grounded on spec.md section 4.5's
// Vicinity/SpecialVicinity pruning index, and on FrankyGo's precomputed
// attack tables (knightAttacks/kingAttacks arrays indexed by origin square)
// which serve the same "don't recompute piece reach every call" purpose for
// a fixed board.
package vicinity

import (
	"github.com/infinite-chess/movecore/internal/moveset"
	"github.com/infinite-chess/movecore/internal/types"
)

// Index is the reverse lookup built from a moveset Registry.
type Index struct {
	// offsets lists every distinct individual-jump vector used by any
	// registered RawType, alongside which RawTypes use it. Iterating this
	// (a small constant-size list) instead of every piece on the board is
	// what makes IsSquareAttacked's jump check cheap.
	offsets []offsetEntry

	// bySlideDirection maps a slide direction to the RawTypes that slide
	// along it, alongside the StepBound each enforces.
	bySlideDirection map[types.VectorKey][]slideEntry
}

type offsetEntry struct {
	vec      types.Coords
	rawTypes []types.RawType
}

type slideEntry struct {
	rawType types.RawType
	bound   moveset.StepBound
}

// Build constructs an Index from reg.
func Build(reg *moveset.Registry) *Index {
	idx := &Index{bySlideDirection: make(map[types.VectorKey][]slideEntry)}
	byKey := make(map[types.CoordsKey]int)
	for rt, ms := range reg.ByType {
		for _, off := range ms.Individual {
			key := off.Key()
			if i, ok := byKey[key]; ok {
				idx.offsets[i].rawTypes = append(idx.offsets[i].rawTypes, rt)
				continue
			}
			byKey[key] = len(idx.offsets)
			idx.offsets = append(idx.offsets, offsetEntry{vec: off, rawTypes: []types.RawType{rt}})
		}
		for vk, bound := range ms.Sliding {
			idx.bySlideDirection[vk] = append(idx.bySlideDirection[vk], slideEntry{rawType: rt, bound: bound})
		}
	}
	return idx
}

// JumperOrigins calls visit once per (origin square, RawTypes) pair that
// could reach target via a registered individual jump, where origin is
// target minus the jump vector.
func (idx *Index) JumperOrigins(target types.Coords, visit func(origin types.Coords, rawTypes []types.RawType)) {
	for _, e := range idx.offsets {
		origin := target.Sub(e.vec)
		visit(origin, e.rawTypes)
	}
}

// SlideDirections returns every slide direction any registered RawType uses,
// along with which RawTypes use it; BoundFor gives each one's StepBound.
func (idx *Index) SlideDirections() map[types.VectorKey][]types.RawType {
	out := make(map[types.VectorKey][]types.RawType, len(idx.bySlideDirection))
	for vk, entries := range idx.bySlideDirection {
		rts := make([]types.RawType, len(entries))
		for i, e := range entries {
			rts[i] = e.rawType
		}
		out[vk] = rts
	}
	return out
}

// BoundFor returns the StepBound rt enforces along direction vk, and
// whether rt slides along vk at all.
func (idx *Index) BoundFor(vk types.VectorKey, rt types.RawType) (moveset.StepBound, bool) {
	for _, e := range idx.bySlideDirection[vk] {
		if e.rawType == rt {
			return e.bound, true
		}
	}
	return moveset.StepBound{}, false
}
