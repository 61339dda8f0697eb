/*
 * movecore - infinite board chess move generation and legality core
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 movecore contributors
 */

package config

// gameConfiguration holds the rule knobs a move-generation core needs that
// are not derivable from the position itself: how far the move-rule
// counter may climb before a caller may claim a draw, the thresholds above
// which checkmate as a win condition is disabled in favor of royal capture,
// default promotion ranks, and an optional world border. Grounded on
// FrankyGo's searchConfiguration (a flat struct of engine knobs decoded
// from the same TOML file), repurposed from search/eval tuning to game
// rules since this core has no search or evaluation layer.
type gameConfiguration struct {
	// MoveRuleLimit is the number of plies without a capture or pawn move
	// after which a caller may claim a draw; the core only maintains the
	// counter (spec.md section 3 "moveRuleState"), it never declares the
	// draw itself.
	MoveRuleLimit int

	// PieceCountToDisableCheckmate and RoyalCountToDisableCheckmate name
	// the thresholds above which detectCheckmateOrStalemate's caller
	// should swap the "checkmate" win condition for "royalcapture"
	// (spec.md section 4.10).
	PieceCountToDisableCheckmate int
	RoyalCountToDisableCheckmate int

	// DefaultPromotionRanks is the fallback promotion y-value used when a
	// game's payload does not specify promotionRanks per color: white
	// promotes on it, black on its negation.
	DefaultPromotionRanks int

	// HasBorder and BorderMin/BorderMax describe an optional default world
	// border; most games pass their own border through the Board
	// constructor, but these defaults let a bare config.toml describe a
	// bordered variant end to end.
	HasBorder bool
	BorderMin int64
	BorderMax int64
}

// sets defaults which might be overwritten by the config file.
func init() {
	Settings.Game.MoveRuleLimit = 100
	Settings.Game.PieceCountToDisableCheckmate = 50
	Settings.Game.RoyalCountToDisableCheckmate = 2
	Settings.Game.DefaultPromotionRanks = 8
	Settings.Game.HasBorder = false
}

// setupGame fills in any Game setting not supplied by the config file.
func setupGame() {
	if Settings.Game.MoveRuleLimit == 0 {
		Settings.Game.MoveRuleLimit = 100
	}
	if Settings.Game.PieceCountToDisableCheckmate == 0 {
		Settings.Game.PieceCountToDisableCheckmate = 50
	}
	if Settings.Game.RoyalCountToDisableCheckmate == 0 {
		Settings.Game.RoyalCountToDisableCheckmate = 2
	}
}
