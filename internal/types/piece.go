/*
 * movecore - infinite board chess move generation and legality core
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 movecore contributors
 */

package types

import "fmt"

// Player identifies the side that owns a piece, including NEUTRAL for
// pieces that belong to no player (e.g. obstacles, void squares carved
// into a variant's board).
type Player uint8

// Player constants.
const (
	NEUTRAL      Player = 0
	WHITE        Player = 1
	BLACK        Player = 2
	PlayerLength Player = 3
)

// Opponent returns the other playing color. Calling this on NEUTRAL is a
// programmer error and panics, matching the assert-heavy style used
// elsewhere for unrepresentable states.
func (p Player) Opponent() Player {
	switch p {
	case WHITE:
		return BLACK
	case BLACK:
		return WHITE
	default:
		panic(fmt.Sprintf("types: Opponent() called on non-playing color %d", p))
	}
}

// String returns a short label for p.
func (p Player) String() string {
	switch p {
	case WHITE:
		return "white"
	case BLACK:
		return "black"
	case NEUTRAL:
		return "neutral"
	default:
		return "invalid"
	}
}

// RawType is a piece's kind independent of color, e.g. PAWN, KNIGHT, HAWK,
// HUYGEN, ROSE. New fairy pieces are added by extending this list and
// registering a moveset for them - never by subclassing.
type RawType uint16

// RawType constants. Values are stable identifiers used as map keys across
// the engine and persisted in compact move strings, so existing values must
// never be renumbered.
const (
	RawNone RawType = iota
	PAWN
	KNIGHT
	BISHOP
	ROOK
	QUEEN
	KING
	AMAZON
	HAWK
	HUYGEN
	ROSE
	KNIGHTRIDER
	CHANCELLOR
	ARCHBISHOP
	CENTAUR
	ROYALCENTAUR
	ROYALQUEEN
	GUARD
	RawTypeLength
)

var rawTypeNames = [RawTypeLength]string{
	"none", "pawn", "knight", "bishop", "rook", "queen", "king",
	"amazon", "hawk", "huygen", "rose", "knightrider", "chancellor",
	"archbishop", "centaur", "royalcentaur", "royalqueen", "guard",
}

// String returns the lower-case name of rt.
func (rt RawType) String() string {
	if rt >= RawTypeLength {
		return "invalid"
	}
	return rawTypeNames[rt]
}

// IsValid reports whether rt is a known raw type.
func (rt RawType) IsValid() bool {
	return rt < RawTypeLength
}

// royalTypes are pieces whose capture is a win condition under the
// "checkmate" win condition.
var royalTypes = map[RawType]bool{
	KING:         true,
	ROYALQUEEN:   true,
	ROYALCENTAUR: true,
}

// IsRoyal reports whether rt's capture is a win condition.
func (rt RawType) IsRoyal() bool {
	return royalTypes[rt]
}

// jumpingRoyalTypes are royals that move by finite jumps rather than sliding
// without limit; castling partners may only be triggered by one of these.
var jumpingRoyalTypes = map[RawType]bool{
	KING:         true,
	ROYALCENTAUR: true,
}

// IsJumpingRoyal reports whether rt is a royal that moves by jumps, i.e. a
// legal castling trigger.
func (rt RawType) IsJumpingRoyal() bool {
	return jumpingRoyalTypes[rt]
}

// PieceType packs a RawType and a Player into one comparable value, the way
// a real piece's "type" field is represented on the wire and in storage.
type PieceType uint32

// MakePieceType packs rt and p into a PieceType.
func MakePieceType(rt RawType, p Player) PieceType {
	return PieceType(rt)<<8 | PieceType(p)
}

// RawType unpacks the raw type component.
func (pt PieceType) RawType() RawType {
	return RawType(pt >> 8)
}

// Player unpacks the player component.
func (pt PieceType) Player() Player {
	return Player(pt & 0xff)
}

// String renders pt as "<player> <rawtype>".
func (pt PieceType) String() string {
	return fmt.Sprintf("%s %s", pt.Player(), pt.RawType())
}

// Piece is a single piece on the board: its packed type, its current
// coordinates, and its absolute index into the OrganizedPieces columnar
// store (an index into the whole store, lying inside its type's contiguous
// range).
type Piece struct {
	Type   PieceType
	Coords Coords
	Index  int
}

// RawType is a convenience accessor equivalent to p.Type.RawType().
func (p Piece) RawType() RawType {
	return p.Type.RawType()
}

// Player is a convenience accessor equivalent to p.Type.Player().
func (p Piece) Player() Player {
	return p.Type.Player()
}

// IsVacant reports whether p occupies an "undefined" slot, i.e. (0,0) and
// not actually present on the board (see OrganizedPieces.undefineds).
func (p Piece) IsVacant() bool {
	return p.Coords.X.Sign() == 0 && p.Coords.Y.Sign() == 0
}
