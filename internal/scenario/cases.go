/*
 * movecore - infinite board chess move generation and legality core
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 movecore contributors
 */

package scenario

import (
	"fmt"

	"github.com/infinite-chess/movecore/internal/board"
	"github.com/infinite-chess/movecore/internal/boardio"
	"github.com/infinite-chess/movecore/internal/checkmate"
	"github.com/infinite-chess/movecore/internal/icn"
	"github.com/infinite-chess/movecore/internal/legalmoves"
	"github.com/infinite-chess/movecore/internal/movevalidation"
	"github.com/infinite-chess/movecore/internal/types"
)

// All returns every concrete scenario spec.md section 8 names, in the
// order they appear there.
func All() []Case {
	return []Case{
		{Name: "castling requires clear safe transit", Check: castlingTransit},
		{Name: "en passant", Check: enPassant},
		{Name: "promotion required", Check: promotionRequired},
		{Name: "huygen prime block", Check: huygenPrimeBlock},
		{Name: "insufficient material", Check: insufficientMaterial},
		{Name: "make unmake fidelity", Check: makeUnmakeFidelity},
	}
}

// castlingTransit: king (5,1) + rook (8,1), both with special rights, empty
// rank otherwise, king not in check -> (7,1) is offered with castle info.
// Adding an enemy rook on (6,8), attacking the transit square (6,1), prunes
// it.
func castlingTransit() error {
	b := buildBoard(types.WHITE,
		at(5, 1, types.KING, types.WHITE, true),
		at(8, 1, types.ROOK, types.WHITE, true),
		at(5, 8, types.KING, types.BLACK, false),
	)
	filtered := b.CalculateLegal(types.NewCoords(5, 1), types.WHITE, false)
	dest, ok := findDest(filtered.Special, types.NewCoords(7, 1))
	if !ok {
		return errf("expected castle destination (7,1), got %+v", filtered.Special)
	}
	if dest.Castle == nil || dest.Castle.Dir != 1 || !dest.Castle.Coord.Equals(types.NewCoords(8, 1)) {
		return errf("expected castle flag dir=+1 coord=(8,1), got %+v", dest.Castle)
	}

	b2 := buildBoard(types.WHITE,
		at(5, 1, types.KING, types.WHITE, true),
		at(8, 1, types.ROOK, types.WHITE, true),
		at(5, 8, types.KING, types.BLACK, false),
		at(6, 8, types.ROOK, types.BLACK, false),
	)
	filtered2 := b2.CalculateLegal(types.NewCoords(5, 1), types.WHITE, false)
	if _, ok := findDest(filtered2.Special, types.NewCoords(7, 1)); ok {
		return errf("expected castle destination pruned once transit square (6,1) is attacked")
	}
	return nil
}

// enPassant: after white 5,2>5,4, black 4,4>5,3 is legal with enpassant=true
// and its Changes contain a capture of the white pawn on (5,4) plus a move
// to (5,3).
func enPassant() error {
	b := buildBoard(types.WHITE,
		at(5, 2, types.PAWN, types.WHITE, true),
		at(4, 4, types.PAWN, types.BLACK, true),
		at(1, 1, types.KING, types.WHITE, false),
		at(1, 8, types.KING, types.BLACK, false),
	)
	filtered := b.CalculateLegal(types.NewCoords(5, 2), types.WHITE, false)
	dest, ok := findDest(filtered.Special, types.NewCoords(5, 4))
	if !ok {
		return errf("expected double push destination (5,4)")
	}
	if dest.EnpassantCreate == nil {
		return errf("expected enpassantCreate flag on double push")
	}
	draft := types.MoveDraft{StartCoords: types.NewCoords(5, 2), EndCoords: types.NewCoords(5, 4)}
	if _, err := b.MakeMove(draft, dest, types.WHITE); err != nil {
		return errf("double push: %w", err)
	}

	filtered2 := b.CalculateLegal(types.NewCoords(4, 4), types.BLACK, false)
	dest2, ok := findDest(filtered2.Special, types.NewCoords(5, 3))
	if !ok {
		return errf("expected en passant destination (5,3), got %+v", filtered2.Special)
	}
	if !dest2.Enpassant {
		return errf("expected enpassant=true on (5,3)")
	}
	draft2 := types.MoveDraft{StartCoords: types.NewCoords(4, 4), EndCoords: types.NewCoords(5, 3)}
	m, err := b.MakeMove(draft2, dest2, types.BLACK)
	if err != nil {
		return errf("en passant capture: %w", err)
	}
	sawCapture, sawMove := false, false
	for _, c := range m.Changes {
		if c.Action == types.ChangeCapture && c.Piece.Coords.Equals(types.NewCoords(5, 4)) {
			sawCapture = true
		}
		if c.Action == types.ChangeMove && c.EndCoords.Equals(types.NewCoords(5, 3)) {
			sawMove = true
		}
	}
	if !sawCapture {
		return errf("expected a capture Change at (5,4)")
	}
	if !sawMove {
		return errf("expected a move Change to (5,3)")
	}
	return nil
}

// promotionRequired: a white pawn on (3,7) pushing to (3,8) without
// supplying a promotion type, under promotionRanks[WHITE]=[8], must be
// rejected with "Did not promote.".
func promotionRequired() error {
	position := map[types.CoordsKey]types.Coords{}
	pieces := map[types.CoordsKey]types.PieceType{}
	place := func(x, y int64, rt types.RawType, p types.Player) {
		c := types.NewCoords(x, y)
		position[c.Key()] = c
		pieces[c.Key()] = types.MakePieceType(rt, p)
	}
	place(3, 7, types.PAWN, types.WHITE)
	place(1, 1, types.KING, types.WHITE)
	place(1, 8, types.KING, types.BLACK)
	b, err := boardio.Load(boardio.Payload{
		Position:          position,
		Pieces:            pieces,
		PromotionRanks:    map[types.Player][]int64{types.WHITE: {8}, types.BLACK: {1}},
		PromotionsAllowed: map[types.Player][]types.RawType{types.WHITE: {types.QUEEN}},
		TurnOrder:         []types.Player{types.WHITE, types.BLACK},
	})
	if err != nil {
		return err
	}
	draft := types.MoveDraft{StartCoords: types.NewCoords(3, 7), EndCoords: types.NewCoords(3, 8)}
	_, verr := movevalidation.ValidateMove(b, types.WHITE, draft)
	if verr == nil {
		return errf("expected promotion-required rejection, got nil error")
	}
	if verr.Error() != movevalidation.ReasonDidNotPromote {
		return errf("expected reason %q, got %q", movevalidation.ReasonDidNotPromote, verr.Error())
	}
	return nil
}

// huygenPrimeBlock: Huygen at (0,0) sliding along (1,0) with an enemy piece
// at (4,0) - Chebyshev distance 4 is not prime, so it is transparent; the
// Huygen reaches and may capture on (5,0) (distance 5 is prime).
func huygenPrimeBlock() error {
	b := buildBoard(types.WHITE,
		at(0, 0, types.HUYGEN, types.WHITE, false),
		at(4, 0, types.KNIGHT, types.BLACK, false),
		at(5, 0, types.BISHOP, types.BLACK, false),
		at(1, 1, types.KING, types.WHITE, false),
		at(1, 8, types.KING, types.BLACK, false),
	)
	filtered := b.CalculateLegal(types.NewCoords(0, 0), types.WHITE, false)
	if _, ok := findDest(filtered.Individual, types.NewCoords(4, 0)); ok {
		return errf("expected (4,0) unreachable as a landing square (non-prime distance, piece there is transparent not capturable)")
	}
	if _, ok := findDest(filtered.Individual, types.NewCoords(5, 0)); !ok {
		return errf("expected (5,0) reachable/capturable at prime distance 5")
	}
	return nil
}

// insufficientMaterial: lone white king (0,0) and lone black king (3,0) -
// detectCheckmateOrStalemate must not declare checkmate/stalemate (both
// kings still have moves), and detectInsufficientMaterial must return
// "0 insuffmat".
func insufficientMaterial() error {
	b := buildBoard(types.WHITE,
		at(0, 0, types.KING, types.WHITE, false),
		at(3, 0, types.KING, types.BLACK, false),
	)
	concl, err := checkmate.DetectCheckmateOrStalemate(b, types.WHITE, true)
	if err != nil {
		return errf("unexpected ambiguous terminal: %w", err)
	}
	if concl != "" {
		return errf("expected no checkmate/stalemate conclusion with both kings mobile, got %q", concl)
	}
	insuff, ok := checkmate.DetectInsufficientMaterial(b)
	if !ok || insuff != checkmate.ConclusionInsufficientMaterial {
		return errf("expected %q, got %q (ok=%v)", checkmate.ConclusionInsufficientMaterial, insuff, ok)
	}
	return nil
}

// makeUnmakeFidelity: from the standard starting position, play
// e2-e4 e7-e5 Nf3 Nc6 Bb5 then rewind all five plies and assert
// OrganizedPieces/specialRights/enpassant/moveRuleState/whosTurn are
// restored exactly, per spec.md section 8's round-trip law.
func makeUnmakeFidelity() error {
	b, err := boardio.Load(boardio.StandardChess())
	if err != nil {
		return err
	}
	before := snapshot(b)

	compactMoves := []string{"4,1>4,3", "4,6>4,4", "6,0>5,2", "1,7>2,5", "5,0>1,4"}
	var drafts []types.MoveDraft
	for _, cm := range compactMoves {
		d, derr := icn.Decode(cm)
		if derr != nil {
			return derr
		}
		drafts = append(drafts, d)
	}
	for _, draft := range drafts {
		mover := b.WhosTurn()
		filtered := b.CalculateLegal(draft.StartCoords, mover, false)
		chosen, ok := legalmoves.CheckIfMoveLegal(b.Context(), b.Registry(), b, filtered, draft.StartCoords, draft.EndCoords, mover)
		if !ok {
			return errf("move %s>%s rejected as illegal", draft.StartCoords, draft.EndCoords)
		}
		if _, merr := b.MakeMove(draft, chosen, mover); merr != nil {
			return merr
		}
	}
	for range drafts {
		b.RewindMove()
	}
	after := snapshot(b)
	if before != after {
		return errf("make/unmake did not restore state: before=%+v after=%+v", before, after)
	}
	if b.WhosTurn() != types.WHITE {
		return errf("expected whosTurn=WHITE after full rewind, got %s", b.WhosTurn())
	}
	return nil
}

// stateSnapshot is the small, comparable slice of board.Board state the
// make/unmake fidelity scenario checks bit-for-bit.
type stateSnapshot struct {
	moveRuleState int
	hasEnPassant  bool
	pieceCount    int
	whosTurn      types.Player
	placement     string // fmt renders maps with sorted keys
	specialRights string
}

func snapshot(b *board.Board) stateSnapshot {
	placement := make(map[types.CoordsKey]types.PieceType)
	for _, p := range append(b.AllPiecesOf(types.WHITE), b.AllPiecesOf(types.BLACK)...) {
		placement[p.Coords.Key()] = p.Type
	}
	return stateSnapshot{
		moveRuleState: b.MoveRuleState(),
		hasEnPassant:  b.EnPassant() != nil,
		pieceCount:    len(b.AllPiecesOf(types.WHITE)) + len(b.AllPiecesOf(types.BLACK)),
		whosTurn:      b.WhosTurn(),
		placement:     fmt.Sprint(placement),
		specialRights: fmt.Sprint(b.State().Global.SpecialRights),
	}
}
