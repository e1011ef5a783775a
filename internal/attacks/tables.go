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

// Package attacks builds the precomputed attack tables consumed by the
// movegen package: direct knight/king masks, magic-bitboard hash tables
// for the sliding pieces and the pawn push/capture tables. Everything
// here is build-once, read-many: a *Tables is immutable once returned
// from BuildTables and may be shared freely across goroutines.
package attacks

import (
	"time"

	myLogging "github.com/frankkopp/magicmove/internal/logging"

	. "github.com/frankkopp/magicmove/internal/types"
)

var log = myLogging.GetLog()

// DefaultMaxAttempts bounds the number of magic-number candidates tried
// per square before BuildTables gives up on that square.
const DefaultMaxAttempts = 1_000_000

// Tables holds every precomputed attack table the move generator needs.
type Tables struct {
	Knight [SqLength]Bitboard
	King   [SqLength]Bitboard
	Rook   [SqLength]magicEntry
	Bishop [SqLength]magicEntry
	Pawn   [ColorLength][SqLength]PawnEntry
}

// BuildTables runs the one-shot precomputation: knight/king masks, the
// rook/bishop magic-bitboard tables (built via a seeded magic-number
// search, capped at maxAttempts candidates per square) and the pawn
// push/capture/offset tables. It returns ErrMagicSearchExhausted with
// no partial state if any square's magic search runs out of attempts.
func BuildTables(seed uint64, maxAttempts int) (*Tables, error) {
	start := time.Now()

	t := &Tables{}
	buildKnightKingMasks(t)

	rng := newPrng(seed)
	rookDirs := [4]Direction{North, East, South, West}
	bishopDirs := [4]Direction{Northeast, Southeast, Southwest, Northwest}

	for sq := SqA8; sq < SqNone; sq++ {
		rook, err := buildMagicEntry(sq, rookDirs, rng, maxAttempts)
		if err != nil {
			log.Errorf("rook magic search for %s exhausted %d attempts", sq.String(), maxAttempts)
			return nil, err
		}
		t.Rook[sq] = rook

		bishop, err := buildMagicEntry(sq, bishopDirs, rng, maxAttempts)
		if err != nil {
			log.Errorf("bishop magic search for %s exhausted %d attempts", sq.String(), maxAttempts)
			return nil, err
		}
		t.Bishop[sq] = bishop
	}

	buildPawnTables(t)
	log.Debugf("attack tables built in %d ms", time.Since(start).Milliseconds())
	return t, nil
}

// RookAttacks returns the rook attack set from sq given occupied.
func (t *Tables) RookAttacks(sq Square, occupied Bitboard) Bitboard {
	return t.Rook[sq].attacksFor(occupied)
}

// BishopAttacks returns the bishop attack set from sq given occupied.
func (t *Tables) BishopAttacks(sq Square, occupied Bitboard) Bitboard {
	return t.Bishop[sq].attacksFor(occupied)
}

// QueenAttacks returns the queen attack set from sq given occupied, the
// union of the rook and bishop attack sets.
func (t *Tables) QueenAttacks(sq Square, occupied Bitboard) Bitboard {
	return t.RookAttacks(sq, occupied) | t.BishopAttacks(sq, occupied)
}

// knightDelta is a (file, rank) offset pair for one of the eight knight
// jumps.
type knightDelta struct{ df, dr int }

var knightDeltas = [8]knightDelta{
	{1, 2}, {2, 1}, {-1, 2}, {-2, 1},
	{1, -2}, {2, -1}, {-1, -2}, {-2, -1},
}

// buildKnightKingMasks fills Knight and King with the squares each piece
// attacks when placed alone on an otherwise empty board, clipped to the
// board edges.
func buildKnightKingMasks(t *Tables) {
	for sq := SqA8; sq < SqNone; sq++ {
		f := int(sq.FileOf())
		r := int(sq.RankOf())

		var knight Bitboard
		for _, d := range knightDeltas {
			nf, nr := f+d.df, r+d.dr
			if nf >= 0 && nf < 8 && nr >= 0 && nr < 8 {
				knight.PushSquare(SquareOf(File(nf), Rank(nr)))
			}
		}
		t.Knight[sq] = knight

		var king Bitboard
		for _, d := range Directions {
			if to := sq.To(d); to != SqNone {
				king.PushSquare(to)
			}
		}
		t.King[sq] = king
	}
}
