/*
 * movecore - infinite board chess move generation and legality core
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 movecore contributors
 */

// Package movevalidation implements spec.md section 4.9: validateMove,
// validateConclusion, isOpponentsMoveLegal and isEnginesMoveLegal. These
// re-run the legal-move pipeline on untrusted input (a compact move string
// plus a claimed conclusion) rather than trusting any flag the caller
// supplies, per spec.md section 6's "the core always re-derives special
// flags from the current legal-move computation". Grounded on FrankyGo's
// uci.Handler command validation (reject malformed/illegal input before it
// ever reaches position mutation), generalized from a UCI string grammar
// to the compact move string this core defines.
package movevalidation

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/infinite-chess/movecore/internal/board"
	"github.com/infinite-chess/movecore/internal/checkmate"
	"github.com/infinite-chess/movecore/internal/icn"
	"github.com/infinite-chess/movecore/internal/legalmoves"
	"github.com/infinite-chess/movecore/internal/types"
)

// IllegalMoveError carries one of the fixed reason strings spec.md section
// 7 lists for validateMove/validateConclusion rejections.
type IllegalMoveError struct {
	Reason string
}

func (e IllegalMoveError) Error() string { return e.Reason }

// Unwrap lets errors.Is match an IllegalMoveError against
// types.ErrIllegalMove.
func (e IllegalMoveError) Unwrap() error { return types.ErrIllegalMove }

// Reason strings carried by IllegalMoveError (and, for
// ReasonIncorrectFormat, by the wrapped types.ErrFormat error) on
// rejection.
const (
	ReasonNoPieceAtStart     = "No piece at start coords"
	ReasonIncorrectColor     = "Incorrect color"
	ReasonDidNotPromote      = "Did not promote."
	ReasonIllegalPromotion   = "Illegal promotion type"
	ReasonInvalidDestination = "Invalid destination coords"
	ReasonPutsSelfInCheck    = "Puts self in check"
	ReasonWrongConclusion    = "Wrong conclusion"
	ReasonIncorrectFormat    = "Incorrect format."
)

func isOnPromotionRank(b *board.Board, c types.Coords, mover types.Player) bool {
	for _, rank := range b.PromotionRanks(mover) {
		if c.Y.Cmp(big.NewInt(rank)) == 0 {
			return true
		}
	}
	return false
}

func containsRawType(allowed []types.RawType, rt types.RawType) bool {
	for _, a := range allowed {
		if a == rt {
			return true
		}
	}
	return false
}

// ValidateMove implements spec.md section 4.9 step 2: checks the mover
// owns a piece at draft.StartCoords, enforces promotion rules, then
// recomputes LegalMoves twice - once on the pre-check-prune set to tell
// "invalid destination" apart from a destination that is only illegal
// because it leaves the mover's own royal in check. On success it returns
// draft with its special-move fields (Castle/EnPassant/EnPassantCreate/
// Path) filled in from the authoritative computation; HasPromotion and
// Promotion are left as the caller supplied them.
func ValidateMove(b *board.Board, mover types.Player, draft types.MoveDraft) (types.MoveDraft, error) {
	piece, ok := b.Pieces().PieceByCoords(draft.StartCoords)
	if !ok {
		return draft, IllegalMoveError{ReasonNoPieceAtStart}
	}
	if piece.Player() != mover {
		return draft, IllegalMoveError{ReasonIncorrectColor}
	}

	onRank := isOnPromotionRank(b, draft.EndCoords, mover)
	if draft.HasPromotion {
		if piece.RawType() != types.PAWN || !onRank || !containsRawType(b.PromotionsAllowed(mover), draft.Promotion) {
			return draft, IllegalMoveError{ReasonIllegalPromotion}
		}
	} else if piece.RawType() == types.PAWN && onRank {
		return draft, IllegalMoveError{ReasonDidNotPromote}
	}

	dest := legalmoves.Generate(b, b.Registry(), draft.StartCoords, mover, false)
	pseudo := legalmoves.Filtered{Individual: dest.Individual, Special: dest.Special, Sliding: dest.Sliding}
	if _, ok := legalmoves.CheckIfMoveLegal(b.Context(), b.Registry(), b, pseudo, draft.StartCoords, draft.EndCoords, mover); !ok {
		return draft, IllegalMoveError{ReasonInvalidDestination}
	}

	filtered := b.CalculateLegal(draft.StartCoords, mover, false)
	chosen, ok := legalmoves.CheckIfMoveLegal(b.Context(), b.Registry(), b, filtered, draft.StartCoords, draft.EndCoords, mover)
	if !ok {
		return draft, IllegalMoveError{ReasonPutsSelfInCheck}
	}

	draft.Castle = chosen.Castle
	draft.EnPassant = chosen.Enpassant
	draft.EnPassantCreate = chosen.EnpassantCreate
	draft.Path = chosen.Path
	if chosen.PromoteTrigger && !draft.HasPromotion {
		return draft, IllegalMoveError{ReasonDidNotPromote}
	}
	return draft, nil
}

// Conclusion reports the current game conclusion, or "" if the game is
// still in progress. winConditionIncludesCheckmate tells
// detectCheckmateOrStalemate whether the side about to be checked for
// checkmate/stalemate still has "checkmate" in its opponent's win
// condition set (spec.md section 4.10's pieceCountToDisableCheckmate /
// royalCountToDisableCheckmate thresholds are a caller-level policy, not
// something this package decides).
func Conclusion(b *board.Board, toMove types.Player, winConditionIncludesCheckmate bool) (string, error) {
	if conclusion, err := checkmate.DetectCheckmateOrStalemate(b, toMove, winConditionIncludesCheckmate); err != nil {
		if errors.Is(err, checkmate.ErrAmbiguousTerminal) {
			return "", nil
		}
		return "", err
	} else if conclusion != "" {
		return conclusion, nil
	}
	if conclusion, ok := checkmate.DetectInsufficientMaterial(b); ok {
		return conclusion, nil
	}
	return "", nil
}

// ValidateConclusion implements spec.md section 4.9 step 3: when
// claimedConclusion names a decisive outcome this core can itself verify
// (anything other than time/resignation/abort, which are opaque
// server-only conclusions), simulate draft and compare the resulting
// conclusion to the claim.
func ValidateConclusion(b *board.Board, mover types.Player, draft types.MoveDraft, chosen types.CoordsSpecial, claimedConclusion string, winConditionIncludesCheckmate bool) error {
	if !isDecisive(claimedConclusion) {
		return nil
	}
	var actual string
	var simErr error
	err := b.SimulateMove(context.Background(), draft, chosen, mover, func() {
		actual, simErr = Conclusion(b, mover.Opponent(), winConditionIncludesCheckmate)
	})
	if err != nil {
		return err
	}
	if simErr != nil {
		return simErr
	}
	if actual != claimedConclusion {
		return IllegalMoveError{ReasonWrongConclusion}
	}
	return nil
}

func isDecisive(conclusion string) bool {
	switch conclusion {
	case "", "time", "resignation", "abort":
		return false
	default:
		return true
	}
}

// IsOpponentsMoveLegal implements spec.md section 4.9's
// isOpponentsMoveLegal: fast-forward to the latest move, validate the
// move, then validate its claimed conclusion, and finally return the board
// to the move index it held on entry.
func IsOpponentsMoveLegal(b *board.Board, compactMove string, claimedConclusion string, winConditionIncludesCheckmate bool) error {
	draft, err := icn.Decode(compactMove)
	if err != nil {
		return fmt.Errorf("%w: %s", types.ErrFormat, ReasonIncorrectFormat)
	}
	original := b.State().Local.MoveIndex
	b.GoToMove(len(b.Basegame()), nil)
	defer b.GoToMove(original, nil)
	mover := b.WhosTurn()
	draft, err = ValidateMove(b, mover, draft)
	if err != nil {
		return err
	}
	chosen := types.CoordsSpecial{
		Coords: draft.EndCoords, EnpassantCreate: draft.EnPassantCreate,
		Enpassant: draft.EnPassant, Castle: draft.Castle, Path: draft.Path,
	}
	return ValidateConclusion(b, mover, draft, chosen, claimedConclusion, winConditionIncludesCheckmate)
}

// IsEnginesMoveLegal implements spec.md section 4.9's isEnginesMoveLegal:
// parse the compact string (returning ReasonIncorrectFormat on failure),
// then run the same fast-forward and validateMove path
// isOpponentsMoveLegal uses.
func IsEnginesMoveLegal(b *board.Board, compactMove string) error {
	draft, err := icn.Decode(compactMove)
	if err != nil {
		return fmt.Errorf("%w: %s", types.ErrFormat, ReasonIncorrectFormat)
	}
	original := b.State().Local.MoveIndex
	b.GoToMove(len(b.Basegame()), nil)
	defer b.GoToMove(original, nil)
	_, err = ValidateMove(b, b.WhosTurn(), draft)
	return err
}
