/*
 * movecore - infinite board chess move generation and legality core
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 movecore contributors
 */

// Package boardio loads the initial-position payload spec.md section 6
// describes (a CoordsKey -> PieceType map, plus an optional
// startSnapshot.state_global) into the board.Params New expects. Grounded
// on FrankyGo's position.NewPositionFen, which turns one textual payload
// (a FEN string) into a fully populated Position; here the payload is
// already structured (a map) rather than a rank-by-rank string, so parsing
// is reduced to validation plus defaulting rather than a regexp grammar.
package boardio

import (
	"fmt"

	"github.com/infinite-chess/movecore/internal/board"
	"github.com/infinite-chess/movecore/internal/config"
	"github.com/infinite-chess/movecore/internal/types"
)

// Snapshot is the optional "startSnapshot.state_global" payload.
type Snapshot struct {
	EnPassant     *types.EnPassantState
	SpecialRights map[types.CoordsKey]bool
	MoveRuleState int
}

// Payload is the wire-level initial-position description: a square map
// plus the game-rule knobs a Board needs that are not derivable from the
// pieces alone.
type Payload struct {
	Position          map[types.CoordsKey]types.Coords // coordinate key -> its own Coords, for O(1) reverse lookup
	Pieces            map[types.CoordsKey]types.PieceType
	Border            *types.AABB
	PromotionRanks    map[types.Player][]int64
	PromotionsAllowed map[types.Player][]types.RawType
	TurnOrder         []types.Player
	Editor            bool
	Snapshot          *Snapshot
}

// Load validates p and builds a board.Board ready to play. Promotion ranks
// fall back to config.Settings.Game.DefaultPromotionRanks (applied to both
// colors symmetrically, offset by the respective forward direction) when p
// leaves PromotionRanks empty, matching the config-driven default spec.md
// leaves as an implementation detail of whatever hosts this core.
func Load(p Payload) (*board.Board, error) {
	if len(p.Pieces) == 0 {
		return nil, fmt.Errorf("%w: initial position has no pieces", types.ErrFormat)
	}
	for key, coords := range p.Position {
		if _, ok := p.Pieces[key]; !ok {
			return nil, fmt.Errorf("%w: coords %s has no piece entry", types.ErrFormat, coords)
		}
	}
	for key := range p.Pieces {
		if _, ok := p.Position[key]; !ok {
			return nil, fmt.Errorf("%w: piece %s missing coordinate entry", types.ErrFormat, key)
		}
	}

	promoRanks := p.PromotionRanks
	if len(promoRanks) == 0 {
		ranks := int64(config.Settings.Game.DefaultPromotionRanks)
		promoRanks = map[types.Player][]int64{
			types.WHITE: {ranks},
			types.BLACK: {-ranks},
		}
	}

	border := p.Border
	if border == nil && config.Settings.Game.HasBorder {
		border = &types.AABB{
			Min: types.NewCoords(config.Settings.Game.BorderMin, config.Settings.Game.BorderMin),
			Max: types.NewCoords(config.Settings.Game.BorderMax, config.Settings.Game.BorderMax),
		}
	}

	turnOrder := p.TurnOrder
	if len(turnOrder) == 0 {
		turnOrder = []types.Player{types.WHITE, types.BLACK}
	}

	global := types.GlobalState{MoveRuleState: 0, SpecialRights: make(map[types.CoordsKey]bool)}
	if p.Snapshot != nil {
		global.EnPassant = p.Snapshot.EnPassant
		global.MoveRuleState = p.Snapshot.MoveRuleState
		if p.Snapshot.SpecialRights != nil {
			global.SpecialRights = p.Snapshot.SpecialRights
		}
	}

	params := board.Params{
		Position:          p.Pieces,
		CoordsOf:          p.Position,
		Border:            border,
		PromotionRanks:    promoRanks,
		PromotionsAllowed: p.PromotionsAllowed,
		TurnOrder:         turnOrder,
		Editor:            p.Editor,
		Global:            global,
	}
	return board.New(params), nil
}

// StandardChess returns the Payload for the ordinary 8x8 starting position,
// every pawn and castling piece holding its special right - a convenience
// entry point for tests, perft and the CLI's default game.
func StandardChess() Payload {
	pieces := make(map[types.CoordsKey]types.PieceType)
	position := make(map[types.CoordsKey]types.Coords)
	rights := make(map[types.CoordsKey]bool)

	place := func(x, y int64, rt types.RawType, player types.Player, special bool) {
		c := types.NewCoords(x, y)
		key := c.Key()
		position[key] = c
		pieces[key] = types.MakePieceType(rt, player)
		if special {
			rights[key] = true
		}
	}

	backRank := []types.RawType{types.ROOK, types.KNIGHT, types.BISHOP, types.QUEEN, types.KING, types.BISHOP, types.KNIGHT, types.ROOK}
	for x := int64(0); x < 8; x++ {
		place(x, 1, types.PAWN, types.WHITE, true)
		place(x, 6, types.PAWN, types.BLACK, true)
		rt := backRank[x]
		place(x, 0, rt, types.WHITE, rt == types.ROOK || rt == types.KING)
		place(x, 7, rt, types.BLACK, rt == types.ROOK || rt == types.KING)
	}

	return Payload{
		Position:          position,
		Pieces:            pieces,
		PromotionRanks:    map[types.Player][]int64{types.WHITE: {7}, types.BLACK: {0}},
		PromotionsAllowed: map[types.Player][]types.RawType{types.WHITE: {types.QUEEN, types.ROOK, types.BISHOP, types.KNIGHT}, types.BLACK: {types.QUEEN, types.ROOK, types.BISHOP, types.KNIGHT}},
		TurnOrder:         []types.Player{types.WHITE, types.BLACK},
		Snapshot:          &Snapshot{SpecialRights: rights},
	}
}
