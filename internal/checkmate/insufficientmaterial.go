/*
 * movecore - infinite board chess move generation and legality core
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 movecore contributors
 */

package checkmate

import (
	"math/big"

	"github.com/infinite-chess/movecore/internal/board"
	"github.com/infinite-chess/movecore/internal/types"
)

// ConclusionInsufficientMaterial is the conclusion string spec.md section
// 6 names for this case.
const ConclusionInsufficientMaterial = "0 insuffmat"

// material is one side's non-royal piece count, bucketed the way the
// lookup table in spec.md section 4.10 keys on: any pawn short-circuits
// the whole check (a pawn can still promote into mating material), a
// bishop's square color matters for the KB-vs-KB case, and everything
// else beyond a single minor piece makes the side automatically
// sufficient.
type material struct {
	hasPawn     bool
	knights     int
	lightBishop int
	darkBishop  int
	other       int // anything else (rook, queen, any fairy piece) always sufficient
}

func classify(b *board.Board, color types.Player) material {
	var m material
	for _, p := range b.AllPiecesOf(color) {
		switch p.RawType() {
		case types.PAWN:
			m.hasPawn = true
		case types.KNIGHT:
			m.knights++
		case types.BISHOP:
			if squareIsLight(p.Coords) {
				m.lightBishop++
			} else {
				m.darkBishop++
			}
		default:
			if !p.RawType().IsRoyal() {
				m.other++
			}
		}
	}
	return m
}

func squareIsLight(c types.Coords) bool {
	sum := new(big.Int).Add(c.X, c.Y)
	return sum.Bit(0) == 0
}

// minorCount is the total number of minor pieces (knights + bishops of
// either color) a side holds.
func (m material) minorCount() int {
	return m.knights + m.lightBishop + m.darkBishop
}

// bare reports whether m is a side with nothing beyond a single minor
// piece and no pawn/other sufficient material.
func (m material) bare() bool {
	return !m.hasPawn && m.other == 0 && m.minorCount() <= 1
}

// DetectInsufficientMaterial implements the lookup-table part of spec.md
// section 4.10: K vs K, K+single-minor vs K, and K+bishop vs K+bishop
// where both bishops sit on the same square color, are the only
// configurations this implementation recognizes as automatically drawn.
// Any pawn on the board short-circuits to "undefined" since it may yet
// promote into mating material.
func DetectInsufficientMaterial(b *board.Board) (string, bool) {
	white := classify(b, types.WHITE)
	black := classify(b, types.BLACK)

	if white.hasPawn || black.hasPawn {
		return "", false
	}
	if !white.bare() || !black.bare() {
		return "", false
	}

	totalMinors := white.minorCount() + black.minorCount()
	if totalMinors == 0 {
		return ConclusionInsufficientMaterial, true
	}
	if totalMinors == 1 {
		return ConclusionInsufficientMaterial, true
	}
	if white.lightBishop == 1 && black.lightBishop == 1 && white.knights == 0 && black.knights == 0 {
		return ConclusionInsufficientMaterial, true
	}
	if white.darkBishop == 1 && black.darkBishop == 1 && white.knights == 0 && black.knights == 0 {
		return ConclusionInsufficientMaterial, true
	}
	return "", false
}
