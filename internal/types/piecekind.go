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

// PieceKind is a tagged variant over all pieces on a chess board, plus
// Empty. White kinds occupy indices 0-5 and Black kinds 6-11; promotion
// arithmetic in the movegen and position packages depends on this exact
// ordering.
type PieceKind uint8

// PieceKind constants. Kind (King, Queen, Rook, Bishop, Knight, Pawn)
// repeats identically for White and Black six slots apart, so
// PieceKind(k) and PieceKind(k+6) always share a Kind.
const (
	WK PieceKind = iota
	WQ
	WR
	WB
	WN
	WP
	BK
	BQ
	BR
	BB
	BN
	BP
	PkEmpty
	PkLength = PkEmpty + 1
)

// Kind is the piece-type axis of a PieceKind, ignoring color.
type Kind uint8

// Kind constants, ordered to match the low six PieceKind values.
const (
	KindKing Kind = iota
	KindQueen
	KindRook
	KindBishop
	KindKnight
	KindPawn
	KindNone
)

// IsValid reports whether pk is one of the 12 real pieces (not Empty
// and not out of range).
func (pk PieceKind) IsValid() bool {
	return pk < PkEmpty
}

// ColorOf returns the color of the piece. Must not be called on PkEmpty.
func (pk PieceKind) ColorOf() Color {
	if pk < BK {
		return White
	}
	return Black
}

// KindOf returns the piece-type axis of pk, ignoring color. Must not be
// called on PkEmpty.
func (pk PieceKind) KindOf() Kind {
	return Kind(pk % 6)
}

// MakePieceKind builds a PieceKind from a color and a Kind.
func MakePieceKind(c Color, k Kind) PieceKind {
	if c == Black {
		return PieceKind(k) + BK
	}
	return PieceKind(k)
}

// PromotedKind returns the PieceKind a pawn of kind pk (WP or BP)
// becomes when promoting with the given 2-bit MoveCode payload
// (0=Queen, 1=Rook, 2=Bishop, 3=Knight). WP-4 is WQ and BP-4 is BQ,
// so offsetting by the payload walks Queen, Rook, Bishop, Knight in
// the same color.
func (pk PieceKind) PromotedKind(payload uint8) PieceKind {
	return pk - 4 + PieceKind(payload)
}

var pieceKindToChar = [PkLength]byte{'K', 'Q', 'R', 'B', 'N', 'P', 'k', 'q', 'r', 'b', 'n', 'p', '-'}

// Char returns a single-character FEN-style representation of pk
// (uppercase for White, lowercase for Black, '-' for Empty).
func (pk PieceKind) Char() string {
	return string(pieceKindToChar[pk])
}

// String returns the Char representation.
func (pk PieceKind) String() string {
	return pk.Char()
}

// PieceKindFromChar returns the PieceKind for a single FEN piece
// letter, or PkEmpty if c is not a recognized piece letter.
func PieceKindFromChar(c byte) PieceKind {
	for pk := WK; pk < PkEmpty; pk++ {
		if pieceKindToChar[pk] == c {
			return pk
		}
	}
	return PkEmpty
}
