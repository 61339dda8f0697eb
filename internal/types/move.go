/*
 * movecore - infinite board chess move generation and legality core
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 movecore contributors
 */

package types

import "fmt"

// CastleInfo describes the castling partner discovered by SpecialDetect and
// attached to a king's destination coordinate.
type CastleInfo struct {
	Dir   int // -1 or +1, the horizontal direction the king travels
	Coord Coords
}

// EnPassantCreate is attached to a pawn double push's destination; it
// records both the square a capturing pawn must land on and the square the
// captured pawn actually occupies.
type EnPassantCreate struct {
	Square Coords
	Pawn   Coords
}

// MoveDraft is the minimal input to move generation: a start/end pair, an
// optional promotion choice, and optional special-move flags supplied by an
// untrusted caller (the engine always re-derives these from the current
// legal-move computation rather than trusting them, see movevalidation).
type MoveDraft struct {
	StartCoords     Coords
	EndCoords       Coords
	Promotion       RawType
	HasPromotion    bool
	Castle          *CastleInfo
	EnPassant       bool
	EnPassantCreate *EnPassantCreate
	Path            []Coords
}

// MoveType distinguishes the shape of a move for encoding/animation
// purposes. It does not replace the Changes journal, which is the
// authoritative record of what happened.
type MoveType uint8

// MoveType constants.
const (
	Normal MoveType = iota
	Promotion
	EnPassantCapture
	Castling
)

// String renders t.
func (t MoveType) String() string {
	switch t {
	case Normal:
		return "normal"
	case Promotion:
		return "promotion"
	case EnPassantCapture:
		return "enpassant"
	case Castling:
		return "castle"
	default:
		return "invalid"
	}
}

// ChangeAction names the four reversible mutation kinds a Change may
// describe.
type ChangeAction uint8

// ChangeAction constants.
const (
	ChangeAdd ChangeAction = iota
	ChangeDelete
	ChangeMove
	ChangeCapture
)

// String renders a.
func (a ChangeAction) String() string {
	switch a {
	case ChangeAdd:
		return "add"
	case ChangeDelete:
		return "delete"
	case ChangeMove:
		return "move"
	case ChangeCapture:
		return "capture"
	default:
		return "invalid"
	}
}

// Change is one reversible mutation in a move's journal. Every Change names
// the action that produced it plus the piece it concerns; Move additionally
// carries the destination and an optional path (for animated multi-square
// travel such as the Rose's spiral); Capture additionally carries an Order
// used by animation to decide, along the mover's path, when the capture
// actually happened (-1 meaning "at the end").
type Change struct {
	Action    ChangeAction
	Main      bool
	Piece     Piece
	EndCoords Coords // ChangeMove only
	Path      []Coords
	Order     int // ChangeCapture only, -1 = terminal
}

// Attacker names an enemy piece that currently threatens a royal (its own
// square is Piece.Coords), along with the royal square it attacks, for
// diagnostics and for checkmate's Huygen-aware disambiguation.
type Attacker struct {
	Piece    Piece
	Attacked Coords
}

// CheckResult is what detectCheck reports for one color: whether any of its
// royals are attacked, which royal squares are in check, and (optionally)
// the attacking pieces.
type CheckResult struct {
	Check       bool
	RoyalsInCheck []Coords
	Attackers     []Attacker
}

// Flags summarizes outcome metadata attached to a completed Move for quick
// inspection (does it give check, is it mate, did it capture).
type Flags struct {
	Check   bool
	Mate    bool
	Capture bool
}

// CoordsSpecial is one destination produced by a moveset's Special hook: a
// square plus whichever special-move flags apply to landing there.
type CoordsSpecial struct {
	Coords          Coords
	EnpassantCreate *EnPassantCreate
	Enpassant       bool
	PromoteTrigger  bool
	Castle          *CastleInfo
	Path            []Coords
}

// Move is the fully generated form of a MoveDraft: the draft plus the
// reversible Changes/State journal, outcome Flags, move-index bookkeeping,
// and the compact notation string produced for this move.
type Move struct {
	MoveDraft
	Type          MoveType
	GenerateIndex int
	Changes       []Change
	State         MoveStateChanges
	Flags         Flags
	Compact       string
	ClockStamp    *int64 // millis remaining for the mover at the moment this move was made, nil if clocks are unused
}

// String renders a short diagnostic summary of m.
func (m Move) String() string {
	return fmt.Sprintf("%s>%s type=%s capture=%v check=%v mate=%v",
		m.StartCoords, m.EndCoords, m.Type, m.Flags.Capture, m.Flags.Check, m.Flags.Mate)
}
