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

package position

import (
	"github.com/frankkopp/magicmove/internal/assert"
	"github.com/frankkopp/magicmove/internal/util"

	. "github.com/frankkopp/magicmove/internal/types"
)

// castleSpec is the fixed king/rook trajectory for one of the four
// castling moves, indexed by CastleSide.
type castleSpec struct {
	color            Color
	kingFrom, kingTo Square
	rookFrom, rookTo Square
}

var castleTable = [4]castleSpec{
	WhiteKingside:  {White, SqE1, SqG1, SqH1, SqF1},
	WhiteQueenside: {White, SqE1, SqC1, SqA1, SqD1},
	BlackKingside:  {Black, SqE8, SqG8, SqH8, SqF8},
	BlackQueenside: {Black, SqE8, SqC8, SqA8, SqD8},
}

// Apply mutates the position in place to reflect m, which the caller
// guarantees is pseudo-legal in the position's current state. Apply
// performs no legality checking of its own; check and pin filtering is
// the consumer's responsibility.
func (p *Position) Apply(m MoveCode) {
	switch m.Kind() {
	case Normal:
		p.applyNormal(m)
	case Castling:
		p.applyCastling(m)
	case Promotion:
		p.applyPromotion(m)
	}
}

func (p *Position) applyNormal(m MoveCode) {
	from, to := m.From(), m.To()
	moving := p.pieceAt[from]
	if assert.DEBUG {
		assert.Assert(moving != PkEmpty, "position: Apply: no piece on %s", from.String())
	}

	epCapture := moving.KindOf() == KindPawn && p.enPassant != BbZero && p.enPassant.Has(to)

	if captured := p.pieceAt[to]; captured != PkEmpty {
		p.remove(captured, to)
	}
	p.remove(moving, from)
	p.place(moving, to)

	if epCapture {
		var victim Square
		if moving.ColorOf() == White {
			victim = Square(int(to) + 8)
		} else {
			victim = Square(int(to) - 8)
		}
		p.remove(p.pieceAt[victim], victim)
	}

	if moving.KindOf() == KindPawn && util.Abs(int(to)-int(from)) == 16 {
		p.enPassant = Square((int(from) + int(to)) / 2).Bb()
	} else {
		p.enPassant = BbZero
	}

	p.updateCastlingRights(from, to)
	p.whiteToMove = !p.whiteToMove
}

func (p *Position) applyCastling(m MoveCode) {
	spec := castleTable[m.CastleSide()]
	king := MakePieceKind(spec.color, KindKing)
	rook := MakePieceKind(spec.color, KindRook)

	p.remove(king, spec.kingFrom)
	p.place(king, spec.kingTo)
	p.remove(rook, spec.rookFrom)
	p.place(rook, spec.rookTo)

	p.kingCastle[spec.color] = false
	p.queenCastle[spec.color] = false
	p.enPassant = BbZero
	p.whiteToMove = !p.whiteToMove
}

func (p *Position) applyPromotion(m MoveCode) {
	from, to := m.From(), m.To()
	pawn := p.pieceAt[from]
	if assert.DEBUG {
		assert.Assert(pawn.KindOf() == KindPawn, "position: Apply: promotion from non-pawn on %s", from.String())
	}

	if captured := p.pieceAt[to]; captured != PkEmpty {
		p.remove(captured, to)
	}
	p.remove(pawn, from)
	p.place(pawn.PromotedKind(m.Payload()), to)

	p.enPassant = BbZero
	p.updateCastlingRights(from, to)
	p.whiteToMove = !p.whiteToMove
}

// updateCastlingRights clears castling rights whenever a move touches
// one of the six home squares, whether that square is the origin (the
// king or rook itself moved) or the destination (a rook was captured on
// its home square).
func (p *Position) updateCastlingRights(from, to Square) {
	p.touchCastlingHome(from)
	p.touchCastlingHome(to)
}

func (p *Position) touchCastlingHome(sq Square) {
	switch sq {
	case SqH1:
		p.kingCastle[White] = false
	case SqA1:
		p.queenCastle[White] = false
	case SqE1:
		p.kingCastle[White] = false
		p.queenCastle[White] = false
	case SqH8:
		p.kingCastle[Black] = false
	case SqA8:
		p.queenCastle[Black] = false
	case SqE8:
		p.kingCastle[Black] = false
		p.queenCastle[Black] = false
	}
}
