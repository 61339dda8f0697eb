/*
 * movecore - infinite board chess move generation and legality core
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 movecore contributors
 */

// Package board assembles the organized piece store, game state, moveset
// registry, check detector and move-application context into the single
// read-only surface (gameview.GameView) the rest of the engine needs, plus
// the make/unmake/iterate/simulate operations spec.md section 4.7 calls
// MovePiece. Grounded on FrankyGo's position.Position, which plays the same
// role of "the one object every other package is handed a pointer to" -
// here split between the passive data (OrganizedPieces/GameState) and this
// active wrapper so that gameview.GameView stays a narrow interface instead
// of exposing the whole Board.
package board

import (
	"context"
	"sort"

	"github.com/infinite-chess/movecore/internal/check"
	"github.com/infinite-chess/movecore/internal/legalmoves"
	"github.com/infinite-chess/movecore/internal/movepiece"
	"github.com/infinite-chess/movecore/internal/moveset"
	"github.com/infinite-chess/movecore/internal/organizedpieces"
	"github.com/infinite-chess/movecore/internal/types"
)

// Board owns one game: its pieces, its state, the registry/detector derived
// from the pieces actually present, and the reversible move context. It
// also keeps the basegame/boardsim move lists spec.md section 4.7
// describes, grounded on FrankyGo's internal/history.History "parallel
// tables indexed by ply" idiom - here realized as a single ordered slice
// per list since a move's own GenerateIndex already plays the role a ply
// index would.
type Board struct {
	pieces   *organizedpieces.OrganizedPieces
	state    *types.GameState
	registry *moveset.Registry
	detector *check.Detector
	ctx      *movepiece.Context

	border            *types.AABB
	promotionRanks    map[types.Player][]int64
	promotionsAllowed map[types.Player][]types.RawType
	turnOrder         []types.Player

	whosTurn types.Player

	basegame []types.Move
	boardsim []types.Move
}

// Params bundles everything New needs to build a playable Board.
type Params struct {
	Position          map[types.CoordsKey]types.PieceType
	CoordsOf          map[types.CoordsKey]types.Coords
	Border            *types.AABB
	PromotionRanks    map[types.Player][]int64
	PromotionsAllowed map[types.Player][]types.RawType
	TurnOrder         []types.Player
	Editor            bool
	Global            types.GlobalState
}

// New builds a Board from an initial-position payload (see internal/boardio
// for a TOML/JSON-adjacent loader that produces a Params value). The
// moveset registry is trimmed to only the raw types actually present, per
// spec.md section 4.1.
func New(p Params) *Board {
	present := make(map[types.RawType]bool)
	for _, pt := range p.Position {
		present[pt.RawType()] = true
	}
	reg := moveset.BuildDefaultRegistry().TrimToPresentTypes(present)

	var slides []types.Coords
	seen := make(map[types.VectorKey]bool)
	for _, ms := range reg.ByType {
		for _, v := range ms.SlideVectors() {
			vk := v.VectorKey()
			if !seen[vk] {
				seen[vk] = true
				slides = append(slides, v)
			}
		}
	}
	// the two orthogonal directions are always present so castling's
	// horizontal line bucket (and the vertical one) exist even on an
	// all-leaper variant; diagonals are added only when some moveset slides
	// along them.
	for _, v := range []types.Coords{types.NewCoords(1, 0), types.NewCoords(0, 1)} {
		vk := v.VectorKey()
		if !seen[vk] {
			seen[vk] = true
			slides = append(slides, v)
		}
	}

	pieces := organizedpieces.ProcessInitialPosition(p.Position, p.CoordsOf, slides, p.Editor, p.PromotionsAllowed)
	gs := &types.GameState{Global: p.Global.Clone()}
	det := check.NewDetector(reg)

	b := &Board{
		pieces:            pieces,
		state:             gs,
		registry:          reg,
		detector:          det,
		border:            p.Border,
		promotionRanks:    p.PromotionRanks,
		promotionsAllowed: p.PromotionsAllowed,
		turnOrder:         p.TurnOrder,
	}
	b.ctx = movepiece.NewContext(b, pieces, gs, det)
	if len(p.TurnOrder) > 0 {
		b.whosTurn = p.TurnOrder[0]
	}
	return b
}

// --- gameview.GameView ---

func (b *Board) Pieces() *organizedpieces.OrganizedPieces { return b.pieces }
func (b *Board) Border() *types.AABB                      { return b.border }
func (b *Board) EnPassant() *types.EnPassantState          { return b.state.Global.EnPassant }

func (b *Board) HasSpecialRight(coords types.Coords) bool {
	return b.state.Global.SpecialRights[coords.Key()]
}

func (b *Board) PromotionRanks(p types.Player) []int64 { return b.promotionRanks[p] }

func (b *Board) PromotionsAllowed(p types.Player) []types.RawType { return b.promotionsAllowed[p] }

// IsSquareAttacked delegates to the Context's attack cache (see
// movepiece.Context.IsSquareAttacked), which is the single choke point
// every Apply/Reverse of Pieces flows through - including the
// check-pruning simulations legalmoves runs directly against ctx - so the
// cached hash key is never read against a stale position.
func (b *Board) IsSquareAttacked(coords types.Coords, by types.Player) bool {
	return b.ctx.IsSquareAttacked(coords, by)
}

func (b *Board) IndividualOffsets(rt types.RawType) []types.Coords {
	return b.registry.Get(rt).Individual
}

// --- accessors used by movevalidation/checkmate/icn/clock ---

func (b *Board) State() *types.GameState      { return b.state }
func (b *Board) Registry() *moveset.Registry  { return b.registry }
func (b *Board) Detector() *check.Detector    { return b.detector }
func (b *Board) Context() *movepiece.Context  { return b.ctx }
func (b *Board) WhosTurn() types.Player       { return b.whosTurn }
func (b *Board) TurnOrder() []types.Player    { return b.turnOrder }
func (b *Board) Basegame() []types.Move       { return b.basegame }
func (b *Board) MoveRuleState() int           { return b.state.Global.MoveRuleState }

// turnAt returns the player to move immediately after index moves
// have been made, cycling through TurnOrder.
func (b *Board) turnAt(index int) types.Player {
	if len(b.turnOrder) == 0 {
		return types.NEUTRAL
	}
	return b.turnOrder[((index%len(b.turnOrder))+len(b.turnOrder))%len(b.turnOrder)]
}

// CalculateLegal runs the full generate+prune pipeline for the piece at
// coords (spec.md section 4.3 step 1-5).
func (b *Board) CalculateLegal(coords types.Coords, mover types.Player, premove bool) legalmoves.Filtered {
	dest := legalmoves.Generate(b, b.registry, coords, mover, premove)
	return legalmoves.RemoveCheckInvalid(b.ctx, b.registry, b, coords, mover, dest, premove)
}

// MakeMove generates the full reversible Move for draft (already carrying
// whatever special flags the caller verified via CalculateLegal) and makes
// it, recording it onto both the basegame and boardsim move lists per
// spec.md section 4.7.
func (b *Board) MakeMove(draft types.MoveDraft, chosen types.CoordsSpecial, mover types.Player) (types.Move, error) {
	m, err := b.ctx.GenerateMove(draft, chosen, mover)
	if err != nil {
		return types.Move{}, err
	}
	b.ctx.MakeMove(&m, mover)
	b.basegame = append(b.basegame, m)
	b.boardsim = append(b.boardsim, m)
	b.whosTurn = b.turnAt(b.state.Local.MoveIndex)
	return m, nil
}

// RewindMove reverses the most recently made move, popping it from both
// move lists and restoring whosTurn.
func (b *Board) RewindMove() {
	n := len(b.basegame)
	if n == 0 {
		types.PanicInvariant("rewindMove: move list is empty")
	}
	m := b.basegame[n-1]
	b.ctx.RewindMove(&m)
	b.basegame = b.basegame[:n-1]
	b.boardsim = b.boardsim[:n-1]
	b.whosTurn = b.turnAt(b.state.Local.MoveIndex)
}

// GoToMove implements spec.md section 4.7's goToMove: step local.moveIndex
// one at a time toward targetIndex, invoking callback with the move that
// straddles each step. Panics (an InvariantViolation, per spec.md section
// 7) if targetIndex is outside the move list.
func (b *Board) GoToMove(targetIndex int, callback func(m types.Move, forward bool)) {
	if targetIndex < 0 || targetIndex > len(b.basegame) {
		types.PanicInvariant("goToMove: target index out of range")
	}
	for b.state.Local.MoveIndex < targetIndex {
		m := b.basegame[b.state.Local.MoveIndex]
		b.ctx.MakeMove(&m, b.turnAt(b.state.Local.MoveIndex))
		b.basegame[b.state.Local.MoveIndex-1] = m
		b.boardsim = b.basegame[:b.state.Local.MoveIndex]
		b.whosTurn = b.turnAt(b.state.Local.MoveIndex)
		if callback != nil {
			callback(m, true)
		}
	}
	for b.state.Local.MoveIndex > targetIndex {
		m := b.basegame[b.state.Local.MoveIndex-1]
		b.ctx.RewindMove(&m)
		b.boardsim = b.basegame[:b.state.Local.MoveIndex]
		b.whosTurn = b.turnAt(b.state.Local.MoveIndex)
		if callback != nil {
			callback(m, false)
		}
	}
}

// MakeAllMovesInGame implements spec.md section 4.7: replays draws already
// parsed from compact move strings (see internal/icn) onto an empty board,
// reconstructing special flags by matching each destination against
// CalculateLegal's output for the moving piece. When validateMoves is set,
// every move must additionally be legal and the game must not already have
// concluded (concluded is supplied by the caller, since conclusion
// detection lives in internal/checkmate and this package must not import
// it to avoid a cycle with movevalidation).
func (b *Board) MakeAllMovesInGame(drafts []types.MoveDraft, validateMoves bool, concluded func() bool) error {
	if len(b.basegame) != 0 {
		types.PanicInvariant("makeAllMovesInGame: move list must be empty")
	}
	for _, draft := range drafts {
		if validateMoves && concluded != nil && concluded() {
			return types.ErrIllegalMove
		}
		mover := b.whosTurn
		filtered := b.CalculateLegal(draft.StartCoords, mover, false)
		chosen, ok := legalmoves.CheckIfMoveLegal(b.ctx, b.registry, b, filtered, draft.StartCoords, draft.EndCoords, mover)
		if !ok {
			return types.ErrIllegalMove
		}
		chosen.Coords = draft.EndCoords
		if draft.HasPromotion {
			chosen.PromoteTrigger = true
		}
		draft.Castle = chosen.Castle
		draft.EnPassant = chosen.Enpassant
		draft.EnPassantCreate = chosen.EnpassantCreate
		draft.Path = chosen.Path
		if _, err := b.MakeMove(draft, chosen, mover); err != nil {
			return err
		}
	}
	return nil
}

// AllPiecesOf returns every live piece belonging to p, sorted by absolute
// index for deterministic iteration (used by detectCheckmateOrStalemate
// and insufficient-material counting).
func (b *Board) AllPiecesOf(p types.Player) []types.Piece {
	var out []types.Piece
	for _, pt := range b.pieces.PieceTypes() {
		if pt.Player() != p {
			continue
		}
		start, end, ok := b.pieces.RangeOf(pt)
		if !ok {
			continue
		}
		for idx := start; idx < end; idx++ {
			piece := b.pieces.PieceAt(idx)
			// A vacant slot also sits at (0,0), so a slot counts as live
			// only if the coords index maps its square back to it.
			if live, ok := b.pieces.PieceByCoords(piece.Coords); ok && live.Index == piece.Index {
				out = append(out, piece)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out
}

// SimulateMove runs fn with draft applied to the board, then unconditionally
// reverts it, per spec.md section 4.7's simulateMoveWrapper. fn reports
// its result through whatever it captures; SimulateMove itself returns only
// an error from generating the move or from the Context's simulation.
func (b *Board) SimulateMove(ctx context.Context, draft types.MoveDraft, chosen types.CoordsSpecial, mover types.Player, fn func()) error {
	m, err := b.ctx.GenerateMove(draft, chosen, mover)
	if err != nil {
		return err
	}
	return b.ctx.SimulateMove(ctx, &m, mover, fn)
}
