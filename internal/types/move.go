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

// MoveCode is a 16-bit unsigned int type for encoding chess moves as a
// primitive data type.
//  BITMAP 16-bit
//  1 1 1 1 1 1 1 1 1 1 0 0 0 0 0 0
//  5 4 3 2 1 0 9 8 7 6 5 4 3 2 1 0
//  --------------------------------
//  |                     1 1 1 1 1 1  to
//  |         1 1 1 1 1 1              from
//  |     1 1                          payload
//  | 1 1                              kind
type MoveCode uint16

// MoveKind distinguishes the three encodings a MoveCode can carry.
type MoveKind uint8

// MoveKind constants. En-passant captures are not a distinct kind: they
// ride the Normal encoding and are detected from board state (the
// destination square being the en-passant target).
const (
	Normal    MoveKind = 0b00
	Castling  MoveKind = 0b01
	Promotion MoveKind = 0b10
)

// CastleSide identifies one of the four castling moves, matching the
// 2-bit castling payload directly.
type CastleSide uint8

// CastleSide constants, matching MoveCode castling payloads exactly.
const (
	WhiteKingside  CastleSide = 0b00
	WhiteQueenside CastleSide = 0b01
	BlackKingside  CastleSide = 0b10
	BlackQueenside CastleSide = 0b11
)

const (
	MoveNone MoveCode = 0

	toShift      uint     = 0
	fromShift    uint     = 6
	payloadShift uint     = 12
	kindShift    uint     = 14
	squareMask   MoveCode = 0x3F
	toMask                = squareMask << toShift
	fromMask              = squareMask << fromShift
	payloadMask  MoveCode = 0x3 << payloadShift
	kindMask     MoveCode = 0x3 << kindShift
)

// NewNormalMove encodes a normal (non-castling, non-promotion) move,
// which also covers plain pawn pushes, captures and en-passant captures.
func NewNormalMove(from, to Square) MoveCode {
	return MoveCode(to)<<toShift | MoveCode(from)<<fromShift | MoveCode(Normal)<<kindShift
}

// NewCastlingMove encodes a castling move. The applier decodes castling
// moves from the payload alone; from/to are set to the king's trajectory
// for readability only.
func NewCastlingMove(side CastleSide, from, to Square) MoveCode {
	return MoveCode(to)<<toShift | MoveCode(from)<<fromShift |
		MoveCode(side)<<payloadShift | MoveCode(Castling)<<kindShift
}

// NewPromotionMove encodes a promotion move with the given payload
// (0=Queen, 1=Rook, 2=Bishop, 3=Knight).
func NewPromotionMove(from, to Square, payload uint8) MoveCode {
	return MoveCode(to)<<toShift | MoveCode(from)<<fromShift |
		MoveCode(payload&0x3)<<payloadShift | MoveCode(Promotion)<<kindShift
}

// Kind returns the MoveKind encoded in the move.
func (m MoveCode) Kind() MoveKind {
	return MoveKind((m & kindMask) >> kindShift)
}

// Payload returns the raw 2-bit payload field.
func (m MoveCode) Payload() uint8 {
	return uint8((m & payloadMask) >> payloadShift)
}

// CastleSide returns the payload interpreted as a CastleSide. Must only
// be called when Kind() == Castling.
func (m MoveCode) CastleSide() CastleSide {
	return CastleSide(m.Payload())
}

// To returns the to-square of the move.
func (m MoveCode) To() Square {
	return Square((m & toMask) >> toShift)
}

// From returns the from-square of the move.
func (m MoveCode) From() Square {
	return Square((m & fromMask) >> fromShift)
}

// IsValid checks that the move has valid squares. MoveNone is not a
// valid move in this sense.
func (m MoveCode) IsValid() bool {
	return m != MoveNone && m.From().IsValid() && m.To().IsValid()
}

// String returns a human-readable representation of the move.
func (m MoveCode) String() string {
	if m == MoveNone {
		return "MoveCode: { MoveNone }"
	}
	return "MoveCode: { " + m.StringUci() + " }"
}

// StringUci returns a UCI-style representation of the move: the from-
// and to-square, followed by a lowercase promotion letter when the move
// is a promotion.
func (m MoveCode) StringUci() string {
	if m == MoveNone {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if m.Kind() == Promotion {
		s += promotionSuffix[m.Payload()]
	}
	return s
}

var promotionSuffix = [4]string{"q", "r", "b", "n"}
