/*
 * movecore - infinite board chess move generation and legality core
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 movecore contributors
 */

package types

// LocalState is the part of GameState that resets on every forward step or
// rewind: the current move index plus the check status and attackers
// computed for the side to move at that index.
type LocalState struct {
	MoveIndex int
	InCheck   []Coords // nil/empty means not in check
	Attackers []Attacker
}

// GlobalState is the part of GameState that survives undo/redo and is
// mutated only through the State journal: the en passant square, the set of
// coordinates still holding a special right (castling/double-push
// eligibility), and the move-rule ply counter.
type GlobalState struct {
	EnPassant     *EnPassantState
	SpecialRights map[CoordsKey]bool
	MoveRuleState int
}

// Clone returns a deep-enough copy of g suitable for a start snapshot: the
// SpecialRights set is copied so later mutation of the live state never
// retroactively changes the snapshot.
func (g GlobalState) Clone() GlobalState {
	rights := make(map[CoordsKey]bool, len(g.SpecialRights))
	for k, v := range g.SpecialRights {
		rights[k] = v
	}
	var ep *EnPassantState
	if g.EnPassant != nil {
		cp := *g.EnPassant
		ep = &cp
	}
	return GlobalState{EnPassant: ep, SpecialRights: rights, MoveRuleState: g.MoveRuleState}
}

// GameState bundles the local and global halves described in spec.md
// section 3.
type GameState struct {
	Local  LocalState
	Global GlobalState
}
