//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package attacks

import (
	"errors"

	"math/bits"

	. "github.com/frankkopp/magicmove/internal/types"
)

// ErrMagicSearchExhausted is returned by BuildTables when a square's
// magic-number search runs out of candidates before finding one that
// produces no hash collisions.
var ErrMagicSearchExhausted = errors.New("attacks: magic search exhausted attempt budget for square")

// magicEntry is one square's fancy-magic lookup: occupied&mask is
// reduced to an index via a multiply-shift, and that index selects the
// attack set from a per-square hash table built during BuildTables.
type magicEntry struct {
	mask    Bitboard
	magic   Bitboard
	shift   uint
	attacks []Bitboard
}

// index computes the hash-table slot for this square given the board's
// occupied bitboard.
func (m *magicEntry) index(occupied Bitboard) uint {
	return uint(((occupied & m.mask) * m.magic) >> m.shift)
}

// attacksFor returns the precomputed attack set for the given occupied
// bitboard.
func (m *magicEntry) attacksFor(occupied Bitboard) Bitboard {
	return m.attacks[m.index(occupied)]
}

// slidingAttack walks each of the given ray directions from sq until it
// runs off the board or hits an occupied square, which blocks but is
// itself included in the returned attack set. This is both the
// reference function the magic search verifies against and the basis
// for each square's relevance mask.
func slidingAttack(dirs [4]Direction, sq Square, occupied Bitboard) Bitboard {
	var attacks Bitboard
	for _, d := range dirs {
		for s := sq.To(d); s != SqNone; s = s.To(d) {
			attacks.PushSquare(s)
			if occupied.Has(s) {
				break
			}
		}
	}
	return attacks
}

// relevanceMask returns the square's full ray reach on an empty board,
// with the far board edge in each direction excluded: an occupant on
// the edge itself can never un-block anything beyond it, so it never
// needs to participate in the index.
func relevanceMask(dirs [4]Direction, sq Square) Bitboard {
	edges := ((Rank1.Bb() | Rank8.Bb()) &^ sq.RankOf().Bb()) |
		((FileA_Bb | FileH_Bb) &^ sq.FileOf().Bb())
	return slidingAttack(dirs, sq, BbZero) &^ edges
}

// buildMagicEntry runs the magic-number search for a single square:
// enumerate every blocker subset of the relevance mask via the
// Carry-Rippler trick, then try sparse random magic candidates until one
// maps every subset to its correct reference attack set with no
// collisions, or maxAttempts is exhausted.
func buildMagicEntry(sq Square, dirs [4]Direction, rng *prng, maxAttempts int) (magicEntry, error) {
	mask := relevanceMask(dirs, sq)
	shift := uint(64 - mask.PopCount())

	var occupancy, reference []Bitboard
	for subset := Bitboard(0); ; {
		occupancy = append(occupancy, subset)
		reference = append(reference, slidingAttack(dirs, sq, subset))
		subset = (subset - mask) & mask
		if subset == 0 {
			break
		}
	}
	size := len(occupancy)

	tableSize := 1 << (64 - shift)
	attacks := make([]Bitboard, tableSize)
	epoch := make([]int, tableSize)

	for attempt := 0; attempt < maxAttempts; attempt++ {
		var magic Bitboard
		for {
			magic = Bitboard(rng.sparse())
			if bits.OnesCount64(uint64((magic*mask)>>56)) >= 6 {
				break
			}
		}

		collided := false
		for i := 0; i < size; i++ {
			idx := uint(((occupancy[i] & mask) * magic) >> shift)
			if epoch[idx] < attempt+1 {
				epoch[idx] = attempt + 1
				attacks[idx] = reference[i]
			} else if attacks[idx] != reference[i] {
				collided = true
				break
			}
		}
		if !collided {
			return magicEntry{mask: mask, magic: magic, shift: shift, attacks: attacks}, nil
		}
	}

	return magicEntry{}, ErrMagicSearchExhausted
}

// prng is a xorshift64star generator used only for magic-number search.
type prng struct {
	state uint64
}

// newPrng returns a prng seeded with the given value. A zero seed is
// replaced with a fixed nonzero default since xorshift64star never
// leaves the zero state.
func newPrng(seed uint64) *prng {
	if seed == 0 {
		seed = 88172645463325252
	}
	return &prng{state: seed}
}

// rand64 returns the next pseudo-random uint64.
func (p *prng) rand64() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 2685821657736338717
}

// sparse returns a sparsely-populated random uint64, the bitwise AND of
// three independent draws, which the magic search uses as its candidate
// pool since sparse magics are more likely to produce a good hash.
func (p *prng) sparse() uint64 {
	return p.rand64() & p.rand64() & p.rand64()
}
