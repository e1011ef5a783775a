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

package types

import "fmt"

// Color represents constants for each chess color, Black and White.
// Indexed 0 for Black and 1 for White to match the players[] array
// convention used throughout the position package.
type Color uint8

// Constants for each color.
const (
	Black       Color = 0
	White       Color = 1
	ColorLength int   = 2
)

// Flip returns the opposite color.
func (c Color) Flip() Color {
	return c ^ 1
}

// IsValid checks if c represents a valid color.
func (c Color) IsValid() bool {
	return c < 2
}

// String returns a string representation of color as "w" or "b".
func (c Color) String() string {
	switch c {
	case White:
		return "w"
	case Black:
		return "b"
	default:
		panic(fmt.Sprintf("invalid color %d", c))
	}
}

// Color pawn move direction: White pawns move North (toward rank 8),
// Black pawns move South (toward rank 1).
var pawnDir = [2]Direction{South, North}

// PawnMoveDirection returns the direction of a single pawn push for the color.
func (c Color) PawnMoveDirection() Direction {
	return pawnDir[c]
}

// promotionRankBb holds, for each color, the rank a pawn of that color
// promotes on.
var promotionRankBb = [2]Bitboard{Rank1.Bb(), Rank8.Bb()}

// PromotionRankBb returns the rank on which the given color promotes.
func (c Color) PromotionRankBb() Bitboard {
	return promotionRankBb[c]
}

// pawnDoubleRankBb holds, for each color, the rank a pawn sits on right
// after a double push.
var pawnDoubleRankBb = [2]Bitboard{Rank5.Bb(), Rank4.Bb()}

// PawnDoubleRankBb returns the rank a pawn of the given color lands on
// after a double push from its starting rank.
func (c Color) PawnDoubleRankBb() Bitboard {
	return pawnDoubleRankBb[c]
}
