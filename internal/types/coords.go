/*
 * movecore - infinite board chess move generation and legality core
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 movecore contributors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package types holds the data model shared by every layer of the move
// generation and legality core: arbitrary precision coordinates, pieces,
// movesets, moves and the reversible change/state journal. It intentionally
// contains no behavior beyond what is needed to keep the data consistent -
// the pipelines that interpret this data live in the packages that import it.
package types

import (
	"fmt"
	"math/big"
)

// Coords is a point on the (conceptually infinite) board. Both axes are
// arbitrary precision integers since pieces may travel far beyond the
// range of a machine word on an unbounded board.
type Coords struct {
	X *big.Int
	Y *big.Int
}

// NewCoords builds a Coords from plain int64 components. Most call sites in
// tests and small boards use this; the big.Int fields let positions grow
// without bound where the game actually needs it.
func NewCoords(x, y int64) Coords {
	return Coords{X: big.NewInt(x), Y: big.NewInt(y)}
}

// CoordsKey is the canonical hashable form of a Coords, "x,y".
type CoordsKey string

// Key returns the canonical CoordsKey for c.
func (c Coords) Key() CoordsKey {
	return CoordsKey(c.X.String() + "," + c.Y.String())
}

// Equals reports whether c and o name the same square.
func (c Coords) Equals(o Coords) bool {
	return c.X.Cmp(o.X) == 0 && c.Y.Cmp(o.Y) == 0
}

// Add returns c translated by the vector (dx, dy).
func (c Coords) Add(dx, dy *big.Int) Coords {
	return Coords{X: new(big.Int).Add(c.X, dx), Y: new(big.Int).Add(c.Y, dy)}
}

// AddVector returns c translated by v.
func (c Coords) AddVector(v Coords) Coords {
	return Coords{X: new(big.Int).Add(c.X, v.X), Y: new(big.Int).Add(c.Y, v.Y)}
}

// Sub returns the vector from o to c (c - o).
func (c Coords) Sub(o Coords) Coords {
	return Coords{X: new(big.Int).Sub(c.X, o.X), Y: new(big.Int).Sub(c.Y, o.Y)}
}

// Scale returns v scaled by the integer factor n.
func (v Coords) Scale(n int64) Coords {
	f := big.NewInt(n)
	return Coords{X: new(big.Int).Mul(v.X, f), Y: new(big.Int).Mul(v.Y, f)}
}

// Clone returns a deep copy of c so callers may mutate the result without
// aliasing c's big.Int backing arrays.
func (c Coords) Clone() Coords {
	return Coords{X: new(big.Int).Set(c.X), Y: new(big.Int).Set(c.Y)}
}

// String renders c as "x,y".
func (c Coords) String() string {
	if c.X == nil || c.Y == nil {
		return "?,?"
	}
	return fmt.Sprintf("%s,%s", c.X.String(), c.Y.String())
}

// gcdAbs returns the positive greatest common divisor of |a| and |b|.
// gcd(0, n) == |n| by convention, matching big.Int.GCD's requirement that
// both operands be non-negative.
func gcdAbs(a, b *big.Int) *big.Int {
	aa := new(big.Int).Abs(a)
	bb := new(big.Int).Abs(b)
	if aa.Sign() == 0 {
		return bb
	}
	if bb.Sign() == 0 {
		return aa
	}
	return new(big.Int).GCD(nil, nil, aa, bb)
}

// Reduce returns v divided by the gcd of its components, plus the sign
// convention used to normalize a slide vector to its primitive form: the
// first non-zero component is made positive. Two vectors describe the same
// line direction (ignoring orientation) iff their Reduce() results are equal.
func (v Coords) Reduce() Coords {
	g := gcdAbs(v.X, v.Y)
	if g.Sign() == 0 {
		return Coords{X: big.NewInt(0), Y: big.NewInt(0)}
	}
	rx := new(big.Int).Quo(v.X, g)
	ry := new(big.Int).Quo(v.Y, g)
	if rx.Sign() < 0 || (rx.Sign() == 0 && ry.Sign() < 0) {
		rx.Neg(rx)
		ry.Neg(ry)
	}
	return Coords{X: rx, Y: ry}
}

// VectorKey is the canonical string form of a slide direction, e.g. "1,0",
// "1,1", "2,1". Built from Reduce() so that (2,0) and (1,0) map to the same
// key (a slide vector is a direction, not a fixed step length).
func (v Coords) VectorKey() VectorKey {
	r := v.Reduce()
	return VectorKey(r.X.String() + "," + r.Y.String())
}

// VectorKey identifies a slide direction (the set of all scalar multiples of
// some primitive vector).
type VectorKey string

// AABB is an axis-aligned bounding box, used to model an optional world
// border. Min/Max are inclusive.
type AABB struct {
	Min Coords
	Max Coords
}

// Contains reports whether c lies within the box (inclusive).
func (b AABB) Contains(c Coords) bool {
	return c.X.Cmp(b.Min.X) >= 0 && c.X.Cmp(b.Max.X) <= 0 &&
		c.Y.Cmp(b.Min.Y) >= 0 && c.Y.Cmp(b.Max.Y) <= 0
}
