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

// Package movegen generates pseudo-legal moves from a position and its
// attack tables. It performs no check or pin filtering and does not
// verify that castling passes through an attacked square: callers that
// need fully legal moves must filter the buffer themselves.
package movegen

import (
	"github.com/frankkopp/magicmove/internal/assert"
	"github.com/frankkopp/magicmove/internal/attacks"
	"github.com/frankkopp/magicmove/internal/position"

	. "github.com/frankkopp/magicmove/internal/types"
)

// MaxMoves is the largest number of pseudo-legal moves any single
// chess position can have.
const MaxMoves = 255

// MoveBuffer is a fixed-capacity move list. Reset only resets Count: it
// does not clear the contents of Moves, so stale entries beyond Count
// may remain from a previous fill and must never be read.
type MoveBuffer struct {
	Moves [MaxMoves]MoveCode
	Count int
}

// Reset empties the buffer by resetting Count to zero. Moves is left
// untouched.
func (b *MoveBuffer) Reset() {
	b.Count = 0
}

func (b *MoveBuffer) push(m MoveCode) {
	if assert.DEBUG {
		assert.Assert(b.Count < MaxMoves, "movegen: move buffer overflow")
	}
	b.Moves[b.Count] = m
	b.Count++
}

var (
	whiteKingsideEmpty  = SqF1.Bb() | SqG1.Bb()
	whiteQueensideEmpty = SqB1.Bb() | SqC1.Bb() | SqD1.Bb()
	blackKingsideEmpty  = SqF8.Bb() | SqG8.Bb()
	blackQueensideEmpty = SqB8.Bb() | SqC8.Bb() | SqD8.Bb()
)

// Generate fills buf with every pseudo-legal move available to the side
// to move in pos, dispatching on each own piece's Kind via a switch.
func Generate(pos *position.Position, tables *attacks.Tables, buf *MoveBuffer) {
	buf.Reset()

	us := pos.ColorToMove()
	ownOcc := pos.Players(us)
	enemyOcc := pos.Players(us.Flip())
	occ := pos.Occupancy()

	for own := ownOcc; own != BbZero; {
		sq := own.PopLsb()
		switch pos.PieceKindAt(sq).KindOf() {
		case KindKing:
			generateKingMoves(pos, tables, sq, ownOcc, occ, us, buf)
		case KindQueen:
			pushTargets(sq, tables.QueenAttacks(sq, occ)&^ownOcc, buf)
		case KindRook:
			pushTargets(sq, tables.RookAttacks(sq, occ)&^ownOcc, buf)
		case KindBishop:
			pushTargets(sq, tables.BishopAttacks(sq, occ)&^ownOcc, buf)
		case KindKnight:
			pushTargets(sq, tables.Knight[sq]&^ownOcc, buf)
		case KindPawn:
			generatePawnMoves(pos, tables, sq, us, occ, enemyOcc, buf)
		}
	}
}

// pushTargets emits one Normal move from `from` for every set bit in
// targets.
func pushTargets(from Square, targets Bitboard, buf *MoveBuffer) {
	for targets != BbZero {
		to := targets.PopLsb()
		buf.push(NewNormalMove(from, to))
	}
}

func generateKingMoves(pos *position.Position, tables *attacks.Tables, sq Square, ownOcc, occ Bitboard, us Color, buf *MoveBuffer) {
	pushTargets(sq, tables.King[sq]&^ownOcc, buf)

	if us == White {
		if pos.KingCastle(White) && occ&whiteKingsideEmpty == BbZero {
			buf.push(NewCastlingMove(WhiteKingside, SqE1, SqG1))
		}
		if pos.QueenCastle(White) && occ&whiteQueensideEmpty == BbZero {
			buf.push(NewCastlingMove(WhiteQueenside, SqE1, SqC1))
		}
		return
	}
	if pos.KingCastle(Black) && occ&blackKingsideEmpty == BbZero {
		buf.push(NewCastlingMove(BlackKingside, SqE8, SqG8))
	}
	if pos.QueenCastle(Black) && occ&blackQueensideEmpty == BbZero {
		buf.push(NewCastlingMove(BlackQueenside, SqE8, SqC8))
	}
}

func generatePawnMoves(pos *position.Position, tables *attacks.Tables, sq Square, us Color, occ, enemyOcc Bitboard, buf *MoveBuffer) {
	entry := &tables.Pawn[us][sq]

	key := ((occ >> entry.OffSingle) & 1) | (((occ >> entry.OffDouble) & 1) << 1)
	targets := entry.Push[key] | entry.Capture&(enemyOcc|pos.EnPassant())

	promotionRank := us.PromotionRankBb()
	for targets != BbZero {
		to := targets.PopLsb()
		if promotionRank.Has(to) {
			buf.push(NewPromotionMove(sq, to, 0))
			buf.push(NewPromotionMove(sq, to, 1))
			buf.push(NewPromotionMove(sq, to, 2))
			buf.push(NewPromotionMove(sq, to, 3))
			continue
		}
		buf.push(NewNormalMove(sq, to))
	}
}
