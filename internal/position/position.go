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

// Package position holds the bitboard chess position representation and
// its in-place move applier. It carries no move-generation or search
// logic of its own; internal/movegen reads it through the accessors
// below.
package position

import (
	"strings"

	. "github.com/frankkopp/magicmove/internal/types"
)

// Position is a compact bitboard representation of one chess board
// state. It tracks no history, no hash key and no material score: it is
// exactly the state Apply needs to mutate and movegen needs to read.
type Position struct {
	occupancy Bitboard
	players   [ColorLength]Bitboard
	pieces    [PkLength]Bitboard
	pieceAt   [SqLength]PieceKind

	whiteToMove bool
	kingCastle  [ColorLength]bool
	queenCastle [ColorLength]bool
	enPassant   Bitboard
}

// startingPlacement pairs a PieceKind with the squares it occupies in
// the standard starting position.
type startingPlacement struct {
	kind    PieceKind
	squares []Square
}

var startingPlacements = []startingPlacement{
	{WK, []Square{SqE1}},
	{WQ, []Square{SqD1}},
	{WR, []Square{SqA1, SqH1}},
	{WB, []Square{SqC1, SqF1}},
	{WN, []Square{SqB1, SqG1}},
	{WP, []Square{SqA2, SqB2, SqC2, SqD2, SqE2, SqF2, SqG2, SqH2}},
	{BK, []Square{SqE8}},
	{BQ, []Square{SqD8}},
	{BR, []Square{SqA8, SqH8}},
	{BB, []Square{SqC8, SqF8}},
	{BN, []Square{SqB8, SqG8}},
	{BP, []Square{SqA7, SqB7, SqC7, SqD7, SqE7, SqF7, SqG7, SqH7}},
}

// NewStartingPosition returns the standard chess starting position,
// White to move, all four castling rights available, no en-passant
// target.
func NewStartingPosition() *Position {
	p := newEmptyPosition()
	for _, placement := range startingPlacements {
		for _, sq := range placement.squares {
			p.place(placement.kind, sq)
		}
	}
	p.whiteToMove = true
	p.kingCastle = [ColorLength]bool{true, true}
	p.queenCastle = [ColorLength]bool{true, true}
	return p
}

// newEmptyPosition returns a Position with every square marked Empty
// and no side-to-move or castling rights set; callers fill it in.
func newEmptyPosition() *Position {
	p := &Position{}
	for sq := SqA8; sq < SqNone; sq++ {
		p.pieceAt[sq] = PkEmpty
	}
	return p
}

// place sets pk on sq, updating occupancy, the color bitboard and the
// per-kind bitboard to match. sq must currently be empty.
func (p *Position) place(pk PieceKind, sq Square) {
	p.pieces[pk].PushSquare(sq)
	p.pieceAt[sq] = pk
	p.occupancy.PushSquare(sq)
	p.players[pk.ColorOf()].PushSquare(sq)
}

// remove clears pk off sq, the inverse of place. sq must currently hold
// pk.
func (p *Position) remove(pk PieceKind, sq Square) {
	p.pieces[pk].PopSquare(sq)
	p.pieceAt[sq] = PkEmpty
	p.occupancy.PopSquare(sq)
	p.players[pk.ColorOf()].PopSquare(sq)
}

// ColorToMove returns the color on the move.
func (p *Position) ColorToMove() Color {
	if p.whiteToMove {
		return White
	}
	return Black
}

// WhiteToMove reports whether it is White's move.
func (p *Position) WhiteToMove() bool {
	return p.whiteToMove
}

// PieceKindAt returns the piece occupying sq, or PkEmpty.
func (p *Position) PieceKindAt(sq Square) PieceKind {
	return p.pieceAt[sq]
}

// Occupancy returns the bitboard of all occupied squares.
func (p *Position) Occupancy() Bitboard {
	return p.occupancy
}

// Players returns the bitboard of every square occupied by color c.
func (p *Position) Players(c Color) Bitboard {
	return p.players[c]
}

// Pieces returns the bitboard of every square occupied by PieceKind pk.
func (p *Position) Pieces(pk PieceKind) Bitboard {
	return p.pieces[pk]
}

// KingCastle reports whether color c still has its kingside castling
// right.
func (p *Position) KingCastle(c Color) bool {
	return p.kingCastle[c]
}

// QueenCastle reports whether color c still has its queenside castling
// right.
func (p *Position) QueenCastle(c Color) bool {
	return p.queenCastle[c]
}

// EnPassant returns the current en-passant target square as a
// single-bit bitboard, or BbZero if none.
func (p *Position) EnPassant() Bitboard {
	return p.enPassant
}

// String returns an 8x8 board diagram followed by the position's FEN.
func (p *Position) String() string {
	var sb strings.Builder
	sb.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := Rank8; r <= Rank1; r++ {
		for f := FileA; f <= FileH; f++ {
			sb.WriteString("| ")
			sb.WriteString(p.pieceAt[SquareOf(f, r)].Char())
			sb.WriteString(" ")
		}
		sb.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
	}
	sb.WriteString(p.FEN())
	return sb.String()
}
