/*
 * movecore - infinite board chess move generation and legality core
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 movecore contributors
 */

// Package checkmate implements spec.md section 4.10's
// detectCheckmateOrStalemate: walk every piece belonging to the side to
// move, asking whether it has at least one legal destination; if none do,
// decide between checkmate and stalemate based on check status and the
// opponent's declared win conditions. Grounded on FrankyGo's
// search.Search's "no legal move at this node" terminal check (the same
// hasAtleast1Move-style loop, generalized from a bitboard movegen call to
// legalmoves.HasAtleast1Move over the data-driven pipeline).
package checkmate

import (
	"errors"

	"github.com/infinite-chess/movecore/internal/board"
	"github.com/infinite-chess/movecore/internal/legalmoves"
	"github.com/infinite-chess/movecore/internal/types"
)

// ErrAmbiguousTerminal is returned when Huygen interactions make
// detectCheckmateOrStalemate unsafe to answer definitively, per spec.md's
// glossary entry for AmbiguousTerminal: callers must treat this the same
// as "game not concluded by this rule", not as an error to surface to a
// player.
var ErrAmbiguousTerminal = errors.New("checkmate: ambiguous terminal position")

// Checkmate and Stalemate are the two decisive conclusion strings this
// package can return; Insufficient material lives in insufficientmaterial.go
// as its own, color-agnostic conclusion ("0 insuffmat").
const (
	ConclusionStalemate = "0 stalemate"
)

// CheckmateString renders the conclusion string for color being checkmated.
func CheckmateString(color types.Player) string {
	return color.String() + " checkmate"
}

// anyColinearPresent reports whether any piece type currently on the board
// uses a colinear moveset (the condition spec.md's ambiguity rule gates
// on: "if colinearsPresent and currently in check...").
func anyColinearPresent(b *board.Board) bool {
	for _, pt := range b.Pieces().PieceTypes() {
		if b.Registry().Get(pt.RawType()).Colinear {
			return true
		}
	}
	return false
}

// huygenInvolved reports whether any reported attacker is a Huygen, or any
// friendly Huygen shares a ray with an attacked royal - both situations
// spec.md flags as unsafe for this algorithm to resolve, since a Huygen's
// prime-distance filter means "is this square actually reachable" cannot be
// answered by a simple blocked/unblocked ray scan the way ordinary sliders
// can.
func huygenInvolved(b *board.Board, color types.Player) bool {
	for _, a := range b.State().Local.Attackers {
		if a.Piece.RawType() == types.HUYGEN {
			return true
		}
	}
	for _, royalSquare := range b.State().Local.InCheck {
		for _, friendly := range b.AllPiecesOf(color) {
			if friendly.RawType() != types.HUYGEN {
				continue
			}
			diff := friendly.Coords.Sub(royalSquare)
			if diff.X.Sign() == 0 && diff.Y.Sign() == 0 {
				continue
			}
			// Any shared horizontal/vertical ray is enough to disqualify -
			// a Huygen only moves orthogonally, so it cannot be involved
			// on a diagonal ray.
			if diff.X.Sign() == 0 || diff.Y.Sign() == 0 {
				return true
			}
		}
	}
	return false
}

// DetectCheckmateOrStalemate implements spec.md section 4.10.
// winConditionIncludesCheckmate reports whether the opponent of color still
// has "checkmate" in its win-condition set (as
// opposed to having been swapped for "royalcapture" by the
// pieceCountToDisableCheckmate / royalCountToDisableCheckmate thresholds,
// which is a caller-level decision this package does not itself make).
func DetectCheckmateOrStalemate(b *board.Board, color types.Player, winConditionIncludesCheckmate bool) (string, error) {
	inCheck := len(b.State().Local.InCheck) > 0

	if anyColinearPresent(b) && inCheck && huygenInvolved(b, color) {
		return "", ErrAmbiguousTerminal
	}

	for _, piece := range b.AllPiecesOf(color) {
		filtered := b.CalculateLegal(piece.Coords, color, false)
		if legalmoves.HasAtleast1Move(filtered) {
			return "", nil
		}
	}

	if inCheck && winConditionIncludesCheckmate {
		return CheckmateString(color), nil
	}
	return ConclusionStalemate, nil
}
