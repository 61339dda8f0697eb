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
	"strings"

	"github.com/infinite-chess/movecore/internal/types"
)

// vectorFromKey parses a VectorKey ("dx,dy") back into Coords. VectorKeys
// are always produced by Coords.VectorKey/Reduce, so the format is fixed.
func vectorFromKey(vk types.VectorKey) types.Coords {
	parts := strings.SplitN(string(vk), ",", 2)
	x, _ := new(big.Int).SetString(parts[0], 10)
	y, _ := new(big.Int).SetString(parts[1], 10)
	return types.Coords{X: x, Y: y}
}

// VectorFromKey is the exported form of vectorFromKey, used by callers
// outside this package (check, legalmoves) that walk a slide direction
// named only by its VectorKey.
func VectorFromKey(vk types.VectorKey) types.Coords {
	return vectorFromKey(vk)
}

// StandardDirections is the eight primitive queen-move directions: the
// rook's four orthogonal steps and the bishop's four diagonal steps. Any
// slide vector outside this set (e.g. Knightrider's (2,1)) is considered
// non-primitive and forces its moveset to be treated as Colinear, per
// spec.md's glossary entry for "Colinear".
func StandardDirections() map[types.VectorKey]bool {
	dirs := []types.Coords{
		types.NewCoords(1, 0), types.NewCoords(-1, 0),
		types.NewCoords(0, 1), types.NewCoords(0, -1),
		types.NewCoords(1, 1), types.NewCoords(-1, -1),
		types.NewCoords(1, -1), types.NewCoords(-1, 1),
	}
	out := make(map[types.VectorKey]bool, len(dirs))
	for _, d := range dirs {
		out[d.VectorKey()] = true
	}
	return out
}
