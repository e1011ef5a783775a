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
	. "github.com/frankkopp/magicmove/internal/types"
)

// PawnEntry is one (color, square) pawn's precomputed move data: its
// capture targets and a 4-entry push table keyed by a 2-bit blocker
// code built from OffSingle/OffDouble:
//  key = ((occupied>>OffSingle)&1) | (((occupied>>OffDouble)&1)<<1)
// Squares with no square ahead of them in the color's push direction
// (rank 8 for White, rank 1 for Black) are left zeroed.
type PawnEntry struct {
	Capture   Bitboard
	Push      [4]Bitboard
	OffSingle uint
	OffDouble uint
}

// pawnCaptureDirs gives each color's two forward-diagonal directions,
// indexed by Color (Black=0, White=1).
var pawnCaptureDirs = [ColorLength][2]Direction{
	{Southwest, Southeast}, // Black
	{Northwest, Northeast}, // White
}

// pawnStartRank is the rank a color's pawns begin on, the only rank
// from which a double push is possible.
var pawnStartRank = [ColorLength]Rank{Rank7, Rank2} // Black, White

// buildPawnTables fills Pawn for both colors and all squares.
func buildPawnTables(t *Tables) {
	for c := Color(0); c < Color(ColorLength); c++ {
		dir := c.PawnMoveDirection()
		for sq := SqA8; sq < SqNone; sq++ {
			single := sq.To(dir)
			if single == SqNone {
				continue
			}

			entry := PawnEntry{OffSingle: uint(single)}

			for _, d := range pawnCaptureDirs[c] {
				if to := sq.To(d); to != SqNone {
					entry.Capture.PushSquare(to)
				}
			}

			if sq.RankOf() == pawnStartRank[c] {
				double := single.To(dir)
				entry.OffDouble = uint(double)
				entry.Push[0b00] = single.Bb() | double.Bb()
				entry.Push[0b10] = single.Bb()
			} else {
				// No legal double push from this square: alias the
				// double-push bit to the single-push bit so the key
				// only ever resolves to 0b00 or 0b11, collapsing the
				// table to its two meaningful entries.
				entry.OffDouble = entry.OffSingle
				entry.Push[0b00] = single.Bb()
			}

			t.Pawn[c][sq] = entry
		}
	}
}
