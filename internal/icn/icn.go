/*
 * movecore - infinite board chess move generation and legality core
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 movecore contributors
 */

// Package icn is a minimal codec for the compact move string spec.md
// section 6 describes: "<x>,<y>><x>,<y>[=<type>]" plus optional suffixes
// marking castling and en passant (no path suffix). Grounded on
// FrankyGo's internal/position.go FEN parser, which leans on
// regexp.MustCompile plus strconv conversions to turn a textual wire
// format into structured fields; the same shape is used here for a much
// smaller grammar.
package icn

import (
	"fmt"
	"math/big"
	"regexp"
	"strconv"
	"strings"

	"github.com/infinite-chess/movecore/internal/types"
)

var (
	coordsRe  = regexp.MustCompile(`^(-?\d+),(-?\d+)$`)
	compactRe = regexp.MustCompile(`^(-?\d+,-?\d+)>(-?\d+,-?\d+)(=\d+)?(\*c)?(\*e)?$`)
)

// parseCoords parses "x,y" into a Coords, erroring (wrapped in
// types.ErrFormat) on anything that does not match coordsRe.
func parseCoords(s string) (types.Coords, error) {
	m := coordsRe.FindStringSubmatch(s)
	if m == nil {
		return types.Coords{}, fmt.Errorf("%w: bad coords %q", types.ErrFormat, s)
	}
	x, okX := new(big.Int).SetString(m[1], 10)
	y, okY := new(big.Int).SetString(m[2], 10)
	if !okX || !okY {
		return types.Coords{}, fmt.Errorf("%w: bad coords %q", types.ErrFormat, s)
	}
	return types.Coords{X: x, Y: y}, nil
}

// Decode parses a compact move string into a MoveDraft. It recognizes the
// base "<x>,<y>><x>,<y>" form, an optional "=<type>" promotion suffix, and
// the "*c"/"*e" suffixes marking a claimed castle or en passant - the core
// never trusts these flags (spec.md section 6: "supplied flags on
// untrusted input must not be trusted beyond format checks"): they are
// accepted by the format check and then discarded, so the returned draft
// carries no castle or en passant flag and CalculateLegal re-derives the
// truth.
func Decode(compact string) (types.MoveDraft, error) {
	m := compactRe.FindStringSubmatch(strings.TrimSpace(compact))
	if m == nil {
		return types.MoveDraft{}, fmt.Errorf("%w: incorrect format", types.ErrFormat)
	}
	start, err := parseCoords(m[1])
	if err != nil {
		return types.MoveDraft{}, err
	}
	end, err := parseCoords(m[2])
	if err != nil {
		return types.MoveDraft{}, err
	}
	draft := types.MoveDraft{StartCoords: start, EndCoords: end}
	if m[3] != "" {
		rt, err := strconv.Atoi(strings.TrimPrefix(m[3], "="))
		if err != nil || rt <= 0 || rt >= int(types.RawTypeLength) {
			return types.MoveDraft{}, fmt.Errorf("%w: bad promotion type %q", types.ErrFormat, m[3])
		}
		draft.Promotion = types.RawType(rt)
		draft.HasPromotion = true
	}
	return draft, nil
}

// Encode renders m as the compact move string described above. The
// castle/en-passant suffixes are informational only - a caller replaying
// compact strings must still run them back through CalculateLegal to
// recover the authoritative special-move flags.
func Encode(m types.Move) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s>%s", m.StartCoords, m.EndCoords)
	if m.HasPromotion {
		fmt.Fprintf(&b, "=%d", int(m.Promotion))
	}
	if m.Type == types.Castling {
		b.WriteString("*c")
	}
	if m.Type == types.EnPassantCapture {
		b.WriteString("*e")
	}
	return b.String()
}
