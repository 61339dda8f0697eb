/*
 * movecore - infinite board chess move generation and legality core
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 movecore contributors
 */

// Package movepiece turns a chosen destination into a fully reversible Move
// (the Changes/State journal) and applies or reverses it against the live
// position. Grounded on FrankyGo's position.Position.DoMove/UndoMove, which
// mutate a MoveInfo's worth of bitboard/piece-list state in one call each;
// here the mutation is expressed as an explicit Change/StateChange list so
// that moves touching more than two squares (castling, en passant, a Rose's
// multi-square spiral) stay reversible without a special case in the
// apply/reverse path itself - boardchanges.Apply/Reverse replay whatever
// list generateMove built.
package movepiece

import (
	"context"
	"fmt"
	"math/big"

	"golang.org/x/sync/semaphore"

	"github.com/infinite-chess/movecore/internal/attackcache"
	"github.com/infinite-chess/movecore/internal/boardchanges"
	"github.com/infinite-chess/movecore/internal/check"
	"github.com/infinite-chess/movecore/internal/gameview"
	"github.com/infinite-chess/movecore/internal/icn"
	"github.com/infinite-chess/movecore/internal/organizedpieces"
	"github.com/infinite-chess/movecore/internal/state"
	"github.com/infinite-chess/movecore/internal/types"
)

// Context bundles everything generateMove/makeMove/rewindMove need to read
// and mutate. Board owns one Context per game.
type Context struct {
	GameView gameview.GameView
	Pieces   *organizedpieces.OrganizedPieces
	State    *types.GameState
	Detector *check.Detector

	// sim guards simulateMoveWrapper: spec.md requires that no two
	// simulations run concurrently against the same position, since a
	// simulation temporarily mutates shared state before reversing it.
	// Repurposed from FrankyGo's transposition-table-adjacent use of
	// golang.org/x/sync/semaphore as a plain reentrancy guard rather than a
	// true concurrency limiter.
	sim *semaphore.Weighted

	// hasher/attack back every IsSquareAttacked call with
	// internal/attackcache, kept in lockstep with every Apply/Reverse this
	// Context performs (MakeMove, RewindMove, SimulatedCheck alike) so a
	// cached result is never read against a stale position - see
	// SimulatedCheck, the one caller that mutates Pieces without going
	// through Board.MakeMove/RewindMove.
	hasher *attackcache.Hasher
	attack *attackcache.Cache
}

// NewContext builds a Context ready to generate and make moves.
func NewContext(gv gameview.GameView, pieces *organizedpieces.OrganizedPieces, gs *types.GameState, det *check.Detector) *Context {
	h := attackcache.NewHasher()
	for _, pt := range pieces.PieceTypes() {
		start, end, ok := pieces.RangeOf(pt)
		if !ok {
			continue
		}
		for idx := start; idx < end; idx++ {
			piece := pieces.PieceAt(idx)
			if !piece.IsVacant() {
				h.Toggle(piece.Coords, pt)
			}
		}
	}
	return &Context{
		GameView: gv, Pieces: pieces, State: gs, Detector: det,
		sim: semaphore.NewWeighted(1), hasher: h, attack: attackcache.New(8),
	}
}

// IsSquareAttacked answers from the attack cache when the current position
// was already probed for this (coords, by) query, falling back to the
// detector's full scan on a miss and recording the result.
func (c *Context) IsSquareAttacked(coords types.Coords, by types.Player) bool {
	key := attackcache.QueryKey(c.hasher.Value(), coords, by)
	if attacked, ok := c.attack.Probe(key); ok {
		return attacked
	}
	attacked := c.Detector.IsSquareAttacked(c.GameView, coords, by)
	c.attack.Put(key, attacked)
	return attacked
}

// GenerateMove builds the full reversible Move for draft landing on chosen,
// a destination already produced by a moveset's Special hook or by plain
// obstruction-filtered expansion (see internal/legalmoves). chosen carries
// everything needed to materialize castling, en passant and promotion, so
// no second per-RawType dispatch table is needed here - it would only ever
// re-derive fields chosen already has.
func (c *Context) GenerateMove(draft types.MoveDraft, chosen types.CoordsSpecial, mover types.Player) (types.Move, error) {
	piece, ok := c.Pieces.PieceByCoords(draft.StartCoords)
	if !ok {
		return types.Move{}, fmt.Errorf("movepiece: no piece at %s", draft.StartCoords)
	}

	m := types.Move{MoveDraft: draft, Type: types.Normal}
	m.EndCoords = chosen.Coords
	m.Path = chosen.Path
	m.EnPassant = chosen.Enpassant
	m.EnPassantCreate = chosen.EnpassantCreate
	m.Castle = chosen.Castle

	var changes []types.Change
	var global []types.StateChange
	capture := false

	switch {
	case chosen.Enpassant:
		m.Type = types.EnPassantCapture
		ep := c.State.Global.EnPassant
		capturedPawn, ok := c.Pieces.PieceByCoords(ep.Pawn)
		if ok {
			changes = append(changes, types.Change{Action: types.ChangeCapture, Piece: capturedPawn, Order: -1})
			capture = true
		}
		changes = append(changes, types.Change{Action: types.ChangeMove, Main: true, Piece: piece, EndCoords: chosen.Coords})

	case chosen.Castle != nil:
		m.Type = types.Castling
		partner, ok := c.Pieces.PieceByCoords(chosen.Castle.Coord)
		if !ok {
			return types.Move{}, fmt.Errorf("movepiece: castling partner vanished at %s", chosen.Castle.Coord)
		}
		partnerDest := draft.StartCoords.Add(big.NewInt(int64(chosen.Castle.Dir)), big.NewInt(0))
		changes = append(changes,
			types.Change{Action: types.ChangeMove, Main: true, Piece: piece, EndCoords: chosen.Coords},
			types.Change{Action: types.ChangeMove, Piece: partner, EndCoords: partnerDest},
		)

	case chosen.PromoteTrigger && draft.HasPromotion:
		m.Type = types.Promotion
		if captured, ok := c.Pieces.PieceByCoords(chosen.Coords); ok {
			changes = append(changes, types.Change{Action: types.ChangeCapture, Piece: captured, Order: -1})
			capture = true
		}
		newType := types.MakePieceType(draft.Promotion, mover)
		idx, ok := c.Pieces.Allocate(newType, true)
		if !ok {
			return types.Move{}, fmt.Errorf("movepiece: could not allocate promoted piece slot")
		}
		changes = append(changes,
			types.Change{Action: types.ChangeDelete, Piece: piece},
			types.Change{Action: types.ChangeAdd, Main: true, Piece: types.Piece{Type: newType, Coords: chosen.Coords, Index: idx}},
		)

	default:
		if captured, ok := c.Pieces.PieceByCoords(chosen.Coords); ok {
			changes = append(changes, types.Change{Action: types.ChangeCapture, Piece: captured, Order: -1})
			capture = true
		}
		changes = append(changes, types.Change{Action: types.ChangeMove, Main: true, Piece: piece, EndCoords: chosen.Coords, Path: chosen.Path})
	}

	if chosen.EnpassantCreate != nil {
		global = append(global, types.StateChange{
			Field:          types.FieldEnPassant,
			PriorEnPassant: c.State.Global.EnPassant,
			NextEnPassant:  (*types.EnPassantState)(chosen.EnpassantCreate),
		})
	} else if c.State.Global.EnPassant != nil {
		global = append(global, types.StateChange{
			Field:          types.FieldEnPassant,
			PriorEnPassant: c.State.Global.EnPassant,
			NextEnPassant:  nil,
		})
	}

	global = append(global, revokeSpecialRights(c.State, c.Pieces, draft.StartCoords, chosen.Coords, chosen.Castle)...)

	moveRuleNext := c.State.Global.MoveRuleState + 1
	if capture || piece.RawType() == types.PAWN {
		moveRuleNext = 0
	}
	if moveRuleNext != c.State.Global.MoveRuleState {
		global = append(global, types.StateChange{
			Field:         types.FieldMoveRule,
			PriorMoveRule: c.State.Global.MoveRuleState,
			NextMoveRule:  moveRuleNext,
		})
	}

	m.Changes = changes
	m.State.Global = global
	m.Flags.Capture = capture
	m.Compact = icn.Encode(m)
	return m, nil
}

// revokeSpecialRights clears the special right (double-push/castling
// eligibility) of any square that just became vacant because its piece
// moved or was captured - from, to and the castling partner's square - and
// then cascades: whenever a royal's right is revoked, every same-rank
// non-royal friendly piece's right is revoked too (it has lost its only
// castling trigger), and symmetrically a non-royal losing its right
// revokes every same-rank friendly royal's right. Two royals never cascade
// against each other. castleSpecial is looser: it rejects only pawns and
// jumping royals as partners, so a non-jumping royal (a royal queen) can
// still be a castling partner, and its right is not revoked by this
// cascade when a king's right is.
func revokeSpecialRights(gs *types.GameState, pieces *organizedpieces.OrganizedPieces, from, to types.Coords, castle *types.CastleInfo) []types.StateChange {
	var out []types.StateChange
	seen := make(map[types.CoordsKey]bool)

	var revoke func(sq types.Coords)
	revoke = func(sq types.Coords) {
		key := sq.Key()
		if seen[key] || !gs.Global.SpecialRights[key] {
			return
		}
		seen[key] = true
		out = append(out, types.StateChange{
			Field:             types.FieldSpecialRights,
			SpecialRightsKey:  key,
			PriorSpecialRight: true,
			NextSpecialRight:  false,
		})

		piece, ok := pieces.PieceByCoords(sq)
		if !ok {
			return
		}
		royal := piece.RawType().IsRoyal()
		for _, idx := range pieces.LineBucket(types.NewCoords(1, 0), sq) {
			other := pieces.PieceAt(idx)
			if other.Coords.Equals(sq) || other.Player() != piece.Player() {
				continue
			}
			if other.RawType().IsRoyal() == royal {
				continue
			}
			revoke(other.Coords)
		}
	}

	squares := []types.Coords{from, to}
	if castle != nil {
		squares = append(squares, castle.Coord)
	}
	for _, sq := range squares {
		revoke(sq)
	}
	return out
}

// MakeMove applies m's Changes and global State, then recomputes check
// status for mover's opponent and records it as m's local State, so a
// later rewind restores the prior check status without calling
// DetectCheck. Replaying m forward (as GoToMove does) runs DetectCheck
// again.
func (c *Context) MakeMove(m *types.Move, mover types.Player) {
	boardchanges.Apply(c.Pieces, m.Changes)
	c.hasher.ApplyChanges(m.Changes)
	state.Apply(c.State, types.MoveStateChanges{Global: m.State.Global})

	priorCheck := c.State.Local.InCheck
	priorAttackers := c.State.Local.Attackers
	result := c.Detector.DetectCheck(c.GameView, mover.Opponent())
	m.Flags.Check = result.Check
	m.State.Local = []types.StateChange{
		{Field: types.FieldCheck, Local: true, PriorCheck: priorCheck, NextCheck: result.RoyalsInCheck},
		{Field: types.FieldAttackers, Local: true, PriorAttackers: priorAttackers, NextAttackers: result.Attackers},
	}
	state.Apply(c.State, types.MoveStateChanges{Local: m.State.Local})
	c.State.Local.MoveIndex++
	m.GenerateIndex = c.State.Local.MoveIndex
}

// RewindMove reverses everything MakeMove did, including the MoveIndex
// bump.
func (c *Context) RewindMove(m *types.Move) {
	c.State.Local.MoveIndex--
	state.Reverse(c.State, types.MoveStateChanges{Local: m.State.Local})
	state.Reverse(c.State, types.MoveStateChanges{Global: m.State.Global})
	c.hasher.ReverseChanges(m.Changes)
	boardchanges.Reverse(c.Pieces, m.Changes)
}

// SimulateMove makes m, invokes fn, then unconditionally rewinds m,
// serialized by the reentrancy semaphore so nested/concurrent simulations
// never interleave their make/unmake pairs.
func (c *Context) SimulateMove(ctx context.Context, m *types.Move, mover types.Player, fn func()) error {
	if err := c.sim.Acquire(ctx, 1); err != nil {
		return err
	}
	defer c.sim.Release(1)

	c.MakeMove(m, mover)
	defer c.RewindMove(m)
	fn()
	return nil
}

// WasACapture reports whether m removed an enemy piece from the board.
func WasACapture(m types.Move) bool {
	return m.Flags.Capture
}

// SimulatedCheck implements spec.md section 4.5's getSimulatedCheck: apply
// m's Changes and global State, ask whether color is in check, then revert
// - without touching MoveIndex or local state, so repeated calls during
// legal-move pruning never disturb the position's bookkeeping.
func (c *Context) SimulatedCheck(m *types.Move, color types.Player) bool {
	boardchanges.Apply(c.Pieces, m.Changes)
	c.hasher.ApplyChanges(m.Changes)
	state.Apply(c.State, types.MoveStateChanges{Global: m.State.Global})
	result := c.Detector.DetectCheck(c.GameView, color)
	state.Reverse(c.State, types.MoveStateChanges{Global: m.State.Global})
	c.hasher.ReverseChanges(m.Changes)
	boardchanges.Reverse(c.Pieces, m.Changes)
	return result.Check
}
