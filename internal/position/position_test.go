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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/frankkopp/magicmove/internal/types"
)

const startingFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -"

func TestNewStartingPosition(t *testing.T) {
	p := NewStartingPosition()

	assert.True(t, p.WhiteToMove())
	assert.Equal(t, WK, p.PieceKindAt(SqE1))
	assert.Equal(t, BK, p.PieceKindAt(SqE8))
	assert.Equal(t, WP, p.PieceKindAt(SqA2))
	assert.Equal(t, BP, p.PieceKindAt(SqH7))
	assert.Equal(t, PkEmpty, p.PieceKindAt(SqE4))

	assert.Equal(t, 16, p.Players(White).PopCount())
	assert.Equal(t, 16, p.Players(Black).PopCount())
	assert.Equal(t, 32, p.Occupancy().PopCount())

	assert.True(t, p.KingCastle(White))
	assert.True(t, p.QueenCastle(White))
	assert.True(t, p.KingCastle(Black))
	assert.True(t, p.QueenCastle(Black))
	assert.Equal(t, BbZero, p.EnPassant())

	assert.Equal(t, startingFEN, p.FEN())
}

func TestFENRoundTrip(t *testing.T) {
	p, err := NewPositionFromFEN(startingFEN)
	require.NoError(t, err)
	assert.Equal(t, startingFEN, p.FEN())
	assert.Equal(t, WK, p.PieceKindAt(SqE1))
	assert.Equal(t, BP, p.PieceKindAt(SqA7))
}

func TestFENParsesSideToMoveAndCastlingAndEnPassant(t *testing.T) {
	p, err := NewPositionFromFEN("8/8/8/3pP3/8/8/8/4K2k b Kq d6")
	require.NoError(t, err)
	assert.False(t, p.WhiteToMove())
	assert.True(t, p.KingCastle(White))
	assert.False(t, p.QueenCastle(White))
	assert.False(t, p.KingCastle(Black))
	assert.True(t, p.QueenCastle(Black))
	assert.Equal(t, SqD6.Bb(), p.EnPassant())
}

func TestFENRejectsInvalidPieceLetter(t *testing.T) {
	_, err := NewPositionFromFEN("8/8/8/8/8/8/8/zzzzzzzz w - -")
	assert.Error(t, err)
}

func TestApplyNormalMoveUpdatesBoardAndSideToMove(t *testing.T) {
	p := NewStartingPosition()
	p.Apply(NewNormalMove(SqE2, SqE4))

	assert.Equal(t, PkEmpty, p.PieceKindAt(SqE2))
	assert.Equal(t, WP, p.PieceKindAt(SqE4))
	assert.False(t, p.WhiteToMove())
	assert.Equal(t, SqE3.Bb(), p.EnPassant())
}

func TestApplyNormalMoveClearsStaleEnPassant(t *testing.T) {
	p := NewStartingPosition()
	p.Apply(NewNormalMove(SqE2, SqE4))
	p.Apply(NewNormalMove(SqB8, SqC6))
	assert.Equal(t, BbZero, p.EnPassant())
}

func TestApplyCaptureRemovesDefender(t *testing.T) {
	p, err := NewPositionFromFEN("8/8/8/4p3/3P4/8/8/4K2k w - -")
	require.NoError(t, err)
	p.Apply(NewNormalMove(SqD4, SqE5))
	assert.Equal(t, WP, p.PieceKindAt(SqE5))
	assert.Equal(t, PkEmpty, p.PieceKindAt(SqD4))
	assert.Equal(t, 2, p.Occupancy().PopCount())
}

func TestApplyEnPassantCaptureRemovesVictimPawn(t *testing.T) {
	p, err := NewPositionFromFEN("4k3/8/8/3pP3/8/8/8/4K3 w - d6")
	require.NoError(t, err)
	p.Apply(NewNormalMove(SqE5, SqD6))
	assert.Equal(t, WP, p.PieceKindAt(SqD6))
	assert.Equal(t, PkEmpty, p.PieceKindAt(SqD5))
	assert.Equal(t, PkEmpty, p.PieceKindAt(SqE5))
}

func TestApplyCastlingMovesKingAndRook(t *testing.T) {
	p, err := NewPositionFromFEN("4k3/8/8/8/8/8/8/4K2R w K -")
	require.NoError(t, err)
	p.Apply(NewCastlingMove(WhiteKingside, SqE1, SqG1))
	assert.Equal(t, WK, p.PieceKindAt(SqG1))
	assert.Equal(t, WR, p.PieceKindAt(SqF1))
	assert.Equal(t, PkEmpty, p.PieceKindAt(SqE1))
	assert.Equal(t, PkEmpty, p.PieceKindAt(SqH1))
	assert.False(t, p.KingCastle(White))
	assert.False(t, p.QueenCastle(White))
}

func TestApplyPromotionReplacesPawn(t *testing.T) {
	p, err := NewPositionFromFEN("4k3/P7/8/8/8/8/8/4K3 w - -")
	require.NoError(t, err)
	p.Apply(NewPromotionMove(SqA7, SqA8, 0))
	assert.Equal(t, WQ, p.PieceKindAt(SqA8))
	assert.Equal(t, PkEmpty, p.PieceKindAt(SqA7))

	p2, err := NewPositionFromFEN("4k3/8/8/8/8/8/p7/4K3 b - -")
	require.NoError(t, err)
	p2.Apply(NewPromotionMove(SqA2, SqA1, 3))
	assert.Equal(t, BN, p2.PieceKindAt(SqA1))
}

func TestApplyRookMoveClearsOwnCastlingRight(t *testing.T) {
	p, err := NewPositionFromFEN("4k3/8/8/8/8/8/8/R3K2R w KQ -")
	require.NoError(t, err)
	p.Apply(NewNormalMove(SqA1, SqA4))
	assert.False(t, p.QueenCastle(White))
	assert.True(t, p.KingCastle(White))
}

func TestApplyKingMoveClearsBothOwnCastlingRights(t *testing.T) {
	p, err := NewPositionFromFEN("4k3/8/8/8/8/8/8/R3K2R w KQ -")
	require.NoError(t, err)
	p.Apply(NewNormalMove(SqE1, SqE2))
	assert.False(t, p.QueenCastle(White))
	assert.False(t, p.KingCastle(White))
}

func TestApplyCapturingRookOnHomeSquareClearsVictimCastlingRight(t *testing.T) {
	p, err := NewPositionFromFEN("r3k3/8/8/8/4B3/8/8/4K3 w q -")
	require.NoError(t, err)
	p.Apply(NewNormalMove(SqE4, SqA8))
	assert.False(t, p.QueenCastle(Black))
}
