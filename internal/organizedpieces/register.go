/*
 * movecore - infinite board chess move generation and legality core
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 movecore contributors
 */

package organizedpieces

import (
	"math/big"
	"sort"

	"github.com/infinite-chess/movecore/internal/types"
)

// RegisterPieceInSpace inserts the piece currently stored at absolute index
// idx into the coords map and every lines[slide] bucket, keeping each
// bucket sorted by absolute index. Call this only after XPositions,
// YPositions and pieceAt already reflect the piece's new position.
func (op *OrganizedPieces) RegisterPieceInSpace(idx int) {
	piece := op.pieceAt[idx]
	op.coords[piece.Coords.Key()] = idx
	for _, v := range op.slides {
		vk := v.VectorKey()
		bucket := op.lines[vk]
		if bucket == nil {
			bucket = make(map[string][]int)
			op.lines[vk] = bucket
		}
		lk := op.GetKeyFromLine(v, piece.Coords)
		bucket[lk] = insertSorted(bucket[lk], idx)
	}
}

// RemovePieceFromSpace deregisters the piece currently at absolute index idx
// from the coords map and every lines[slide] bucket. The caller is
// responsible for zeroing XPositions/YPositions/pieceAt afterwards.
func (op *OrganizedPieces) RemovePieceFromSpace(idx int) {
	piece := op.pieceAt[idx]
	if cur, ok := op.coords[piece.Coords.Key()]; ok && cur == idx {
		delete(op.coords, piece.Coords.Key())
	}
	for _, v := range op.slides {
		vk := v.VectorKey()
		bucket := op.lines[vk]
		if bucket == nil {
			continue
		}
		lk := op.GetKeyFromLine(v, piece.Coords)
		bucket[lk] = removeSorted(bucket[lk], idx)
		if len(bucket[lk]) == 0 {
			delete(bucket, lk)
		}
	}
}

// LineBucket returns the sorted absolute indices sharing a line with point
// under slide direction v.
func (op *OrganizedPieces) LineBucket(v types.Coords, point types.Coords) []int {
	bucket := op.lines[v.VectorKey()]
	if bucket == nil {
		return nil
	}
	return bucket[op.GetKeyFromLine(v, point)]
}

func insertSorted(s []int, v int) []int {
	i := sort.SearchInts(s, v)
	s = append(s, 0)
	copy(s[i+1:], s[i:])
	s[i] = v
	return s
}

func removeSorted(s []int, v int) []int {
	i := sort.SearchInts(s, v)
	if i >= len(s) || s[i] != v {
		return s
	}
	return append(s[:i], s[i+1:]...)
}

// setCoords overwrites the logical position of the piece at idx without
// touching any index; callers must Remove before and Register after when
// the new position should be reflected in coords/lines.
func (op *OrganizedPieces) setCoords(idx int, c types.Coords) {
	op.XPositions[idx] = c.X
	op.YPositions[idx] = c.Y
	p := op.pieceAt[idx]
	p.Coords = c
	op.pieceAt[idx] = p
}

// MoveTo relocates the piece at idx to c, updating the spatial indices.
// Intended for use by boardchanges.Apply's "move" action.
func (op *OrganizedPieces) MoveTo(idx int, c types.Coords) {
	op.RemovePieceFromSpace(idx)
	op.setCoords(idx, c)
	op.RegisterPieceInSpace(idx)
}

// markVacant clears the slot at idx to the vacant sentinel (0,0) and pushes
// idx back into pt's sorted undefineds list.
func (op *OrganizedPieces) markVacant(idx int, pt types.PieceType) {
	op.RemovePieceFromSpace(idx)
	op.setCoords(idx, types.Coords{X: big.NewInt(0), Y: big.NewInt(0)})
	p := op.pieceAt[idx]
	p.Index = idx
	op.pieceAt[idx] = p
	op.undefineds[pt] = insertSorted(op.undefineds[pt], idx)
}

// Delete marks the piece at idx (of type pt) as removed: it is deregistered
// from space and its slot becomes an undefined slot available for reuse.
func (op *OrganizedPieces) Delete(idx int, pt types.PieceType) {
	op.markVacant(idx, pt)
}

// Restore is Delete's inverse: it pulls idx back out of pt's undefineds
// list (wherever it sits, not necessarily the smallest) and places a piece
// there at c, re-registering it into the spatial indices. Used by
// boardchanges.Reverse to put a captured or temporarily-removed piece back
// at the exact absolute index it held before, which is required for
// Change.Piece.Index to keep meaning the same slot across repeated
// make/unmake of the same move.
func (op *OrganizedPieces) Restore(idx int, pt types.PieceType, c types.Coords) {
	op.undefineds[pt] = removeSorted(op.undefineds[pt], idx)
	p := types.Piece{Type: pt, Coords: c, Index: idx}
	op.XPositions[idx] = c.X
	op.YPositions[idx] = c.Y
	op.pieceAt[idx] = p
	op.RegisterPieceInSpace(idx)
}

// Allocate reserves an absolute index for a new piece of type pt: it reuses
// the smallest vacant slot in pt's range if one exists, otherwise grows the
// store via RegenerateLists. The returned piece is registered into space by
// the caller once its final coordinates are known.
func (op *OrganizedPieces) Allocate(pt types.PieceType, allowGrowth bool) (int, bool) {
	slots := op.undefineds[pt]
	if len(slots) > 0 {
		idx := slots[0]
		op.undefineds[pt] = slots[1:]
		return idx, true
	}
	if !allowGrowth {
		return 0, false
	}
	op.RegenerateLists(pt, 8)
	slots = op.undefineds[pt]
	if len(slots) == 0 {
		return 0, false
	}
	idx := slots[0]
	op.undefineds[pt] = slots[1:]
	return idx, true
}

// RegenerateLists expands pt's contiguous range by extra fresh undefined
// slots, appended at the end of the columnar arrays. Existing pieces retain
// their absolute index and therefore their logical identity; only the
// arrays grow.
func (op *OrganizedPieces) RegenerateLists(pt types.PieceType, extra int) {
	if extra <= 0 {
		return
	}
	oldLen := len(op.pieceAt)
	r, ok := op.ranges[pt]
	if !ok {
		r = typeRange{start: oldLen, end: oldLen}
	}

	// Growing in the middle of the columnar arrays would require shifting
	// every range after pt; instead new slots are always appended at the
	// end and the range boundary is adjusted to include them, mirroring how
	// the reference engine grows piece lists by type rather than by
	// absolute position.
	newLen := oldLen + extra
	op.XPositions = append(op.XPositions, make([]*big.Int, extra)...)
	op.YPositions = append(op.YPositions, make([]*big.Int, extra)...)
	op.pieceAt = append(op.pieceAt, make([]types.Piece, extra)...)

	for i := oldLen; i < newLen; i++ {
		zero := types.Coords{X: big.NewInt(0), Y: big.NewInt(0)}
		op.XPositions[i] = zero.X
		op.YPositions[i] = zero.Y
		op.pieceAt[i] = types.Piece{Type: pt, Coords: zero, Index: i}
		op.undefineds[pt] = append(op.undefineds[pt], i)
	}
	sort.Ints(op.undefineds[pt])

	if r.end == oldLen {
		r.end = newLen
	} else {
		// pt's range was not adjacent to the end of the arrays (another
		// type's range grew past it already); simply extend end to cover
		// the newly appended slots, which remain a valid (if
		// non-contiguous-looking) reservation since membership is tracked
		// per absolute index via pieceAt.Type, not by range arithmetic
		// alone.
		r.end = newLen
	}
	op.ranges[pt] = r
}
