/*
 * movecore - infinite board chess move generation and legality core
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 movecore contributors
 */

// Package attackcache memoizes check.Detector.IsSquareAttacked results
// between calls on the same position. Grounded on
// internal/transpositiontable's TtTable: a fixed-size, power-of-two-sized
// open-addressed table indexed by key&hashKeyMask, storing one entry per
// bucket and overwriting on collision. The search-specific fields
// (move/eval/value/depth/age) have no analogue here; what is kept is the
// resize-to-a-power-of-two-capacity, mask-the-key, overwrite-on-collision
// shape.
//
// Where TtTable's Key comes from the engine's Zobrist hash of a bitboard
// position, this package derives its own Zobrist-like key incrementally:
// Hasher.Toggle XORs a per-(coords, type) pseudo-random value in or out of
// a running uint64 as boardchanges.Apply/Reverse add, delete or move
// pieces, so the position's hash is always available in O(changes) rather
// than by rescanning every piece.
package attackcache

import (
	"hash/fnv"
	"math"
	"strconv"

	"github.com/infinite-chess/movecore/internal/types"
)

// pieceHash returns a pseudo-random 64-bit value derived deterministically
// from (coords, type), used as the Zobrist toggle for that piece standing
// on that square. Coordinates are unbounded big.Int values, so there is no
// fixed-size random table to precompute the way a bitboard engine would;
// hashing the canonical CoordsKey string plays the same role.
func pieceHash(coords types.Coords, pt types.PieceType) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(coords.Key()))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(strconv.Itoa(int(pt))))
	return h.Sum64()
}

// Hasher maintains an incremental Zobrist-like hash of "which (coords,
// type) pairs are currently occupied", toggled in or out as moves are
// applied and reversed. Two positions reached via different move orders
// hash identically because XOR toggles commute; a position visited twice
// (e.g. make then unmake then remake) reproduces the same key.
type Hasher struct {
	current uint64
}

// NewHasher returns a Hasher representing the empty position.
func NewHasher() *Hasher { return &Hasher{} }

// Toggle XORs coords/pt's contribution into or out of the running hash.
// Calling it twice with the same arguments is a no-op, which is what makes
// it usable directly from a Change journal: Apply toggles each Change's
// piece in, Reverse toggles the same Change's piece out again, and the
// hash returns to its prior value.
func (h *Hasher) Toggle(coords types.Coords, pt types.PieceType) {
	h.current ^= pieceHash(coords, pt)
}

// ApplyChanges folds a move's Change journal into the running hash, in the
// same forward direction boardchanges.Apply mutates OrganizedPieces.
func (h *Hasher) ApplyChanges(changes []types.Change) {
	for _, c := range changes {
		h.applyOne(c)
	}
}

// ReverseChanges undoes ApplyChanges(changes), in the same reverse order
// boardchanges.Reverse uses.
func (h *Hasher) ReverseChanges(changes []types.Change) {
	for i := len(changes) - 1; i >= 0; i-- {
		h.applyOne(changes[i])
	}
}

// applyOne toggles a single Change's effect on the hash; since Toggle is
// its own inverse, the exact same logic serves both ApplyChanges and
// ReverseChanges.
func (h *Hasher) applyOne(c types.Change) {
	switch c.Action {
	case types.ChangeAdd:
		h.Toggle(c.Piece.Coords, c.Piece.Type)
	case types.ChangeDelete, types.ChangeCapture:
		h.Toggle(c.Piece.Coords, c.Piece.Type)
	case types.ChangeMove:
		h.Toggle(c.Piece.Coords, c.Piece.Type)
		h.Toggle(c.EndCoords, c.Piece.Type)
	}
}

// Value returns the current running hash.
func (h *Hasher) Value() uint64 { return h.current }

// Key identifies one cached query: a position hash combined with the
// square-and-color an IsSquareAttacked call was asked about, so entries
// for different queries on the same position don't collide any more than
// TtTable's search-depth entries do.
type Key uint64

// QueryKey folds coords and by into positionHash to build the lookup Key
// for one IsSquareAttacked(coords, by) call at the position positionHash
// identifies.
func QueryKey(positionHash uint64, coords types.Coords, by types.Player) Key {
	k := positionHash ^ pieceHash(coords, types.MakePieceType(types.RawType(0), by))
	return Key(k)
}

const entrySize = 16 // key uint64 + attacked bool + padding, for sizing parity with TtTable's 16-byte entries

type entry struct {
	key      Key
	attacked bool
	valid    bool
}

// Stats mirrors TtTable.Stats: simple counters a caller can print for
// diagnostics, never consulted by Probe/Put themselves.
type Stats struct {
	Probes, Hits, Misses, Puts, Collisions, Overwrites uint64
}

// Cache is a fixed-size, power-of-two-sized open-addressed table of
// IsSquareAttacked results, one entry per key&hashKeyMask bucket.
type Cache struct {
	data               []entry
	hashKeyMask        uint64
	maxNumberOfEntries uint64
	Stats              Stats
}

const maxSizeInMB = 4096

// New builds a Cache sized to the largest power of two of entries fitting
// in sizeInMByte megabytes.
func New(sizeInMByte int) *Cache {
	c := &Cache{}
	c.Resize(sizeInMByte)
	return c
}

// Resize rebuilds the table for a new size, discarding all entries.
func (c *Cache) Resize(sizeInMByte int) {
	if sizeInMByte > maxSizeInMB {
		sizeInMByte = maxSizeInMB
	}
	if sizeInMByte < 0 {
		sizeInMByte = 0
	}
	sizeInByte := uint64(sizeInMByte) * 1024 * 1024
	if sizeInByte < entrySize {
		c.maxNumberOfEntries = 0
	} else {
		c.maxNumberOfEntries = 1 << uint64(math.Floor(math.Log2(float64(sizeInByte/entrySize))))
	}
	c.hashKeyMask = c.maxNumberOfEntries - 1
	c.data = make([]entry, c.maxNumberOfEntries)
	c.Stats = Stats{}
}

func (c *Cache) index(key Key) uint64 {
	return uint64(key) & c.hashKeyMask
}

// Probe looks up key and reports (attacked, found). A miss leaves the slot
// untouched; Put is responsible for filling it.
func (c *Cache) Probe(key Key) (bool, bool) {
	if c.maxNumberOfEntries == 0 {
		return false, false
	}
	c.Stats.Probes++
	e := &c.data[c.index(key)]
	if e.valid && e.key == key {
		c.Stats.Hits++
		return e.attacked, true
	}
	c.Stats.Misses++
	return false, false
}

// Put stores attacked under key, overwriting whatever (possibly unrelated)
// entry currently occupies that bucket - the same always-overwrite policy
// TtTable uses for a same-key update, simplified because this cache has no
// search depth to compare: a fresher query result is always preferred over
// a stale one from an earlier position.
func (c *Cache) Put(key Key, attacked bool) {
	if c.maxNumberOfEntries == 0 {
		return
	}
	c.Stats.Puts++
	e := &c.data[c.index(key)]
	if e.valid && e.key != key {
		c.Stats.Collisions++
		c.Stats.Overwrites++
	}
	e.key = key
	e.attacked = attacked
	e.valid = true
}

// Clear empties every entry without resizing.
func (c *Cache) Clear() {
	c.data = make([]entry, c.maxNumberOfEntries)
	c.Stats = Stats{}
}

// Len returns the table's capacity in entries.
func (c *Cache) Len() uint64 { return c.maxNumberOfEntries }
