/*
 * movecore - infinite board chess move generation and legality core
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 movecore contributors
 */

// Package state applies and reverses the types.StateChange journal against
// a live types.GameState, the same reversible-journal idiom boardchanges
// uses for piece positions. Kept separate from the pure data definitions in
// internal/types (gamestate.go, state.go) so that package stays free of
// behavior, per its own doc comment.
package state

import "github.com/infinite-chess/movecore/internal/types"

// Apply advances gs forward by msc, global changes before local (global
// state logically causes local state - e.g. an en passant capture right
// must exist before the check it resolves is recomputed).
func Apply(gs *types.GameState, msc types.MoveStateChanges) {
	for _, c := range msc.Global {
		applyGlobal(&gs.Global, c, true)
	}
	for _, c := range msc.Local {
		applyLocal(&gs.Local, c, true)
	}
}

// Reverse undoes msc against gs, in the exact opposite order of Apply.
func Reverse(gs *types.GameState, msc types.MoveStateChanges) {
	for i := len(msc.Local) - 1; i >= 0; i-- {
		applyLocal(&gs.Local, msc.Local[i], false)
	}
	for i := len(msc.Global) - 1; i >= 0; i-- {
		applyGlobal(&gs.Global, msc.Global[i], false)
	}
}

func applyGlobal(g *types.GlobalState, c types.StateChange, forward bool) {
	switch c.Field {
	case types.FieldEnPassant:
		if forward {
			g.EnPassant = c.NextEnPassant
		} else {
			g.EnPassant = c.PriorEnPassant
		}
	case types.FieldSpecialRights:
		if g.SpecialRights == nil {
			g.SpecialRights = make(map[types.CoordsKey]bool)
		}
		if forward {
			g.SpecialRights[c.SpecialRightsKey] = c.NextSpecialRight
		} else {
			g.SpecialRights[c.SpecialRightsKey] = c.PriorSpecialRight
		}
	case types.FieldMoveRule:
		if forward {
			g.MoveRuleState = c.NextMoveRule
		} else {
			g.MoveRuleState = c.PriorMoveRule
		}
	}
}

func applyLocal(l *types.LocalState, c types.StateChange, forward bool) {
	switch c.Field {
	case types.FieldCheck:
		if forward {
			l.InCheck = c.NextCheck
		} else {
			l.InCheck = c.PriorCheck
		}
	case types.FieldAttackers:
		if forward {
			l.Attackers = c.NextAttackers
		} else {
			l.Attackers = c.PriorAttackers
		}
	}
}
