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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPieceKindOrdering(t *testing.T) {
	assert.True(t, WK < BK)
	assert.True(t, BP < PkEmpty)
	assert.Equal(t, PieceKind(0), WK)
	assert.Equal(t, PieceKind(6), BK)
	assert.Equal(t, PieceKind(12), PkEmpty)
}

func TestPieceKindColorOf(t *testing.T) {
	assert.Equal(t, White, WK.ColorOf())
	assert.Equal(t, White, WP.ColorOf())
	assert.Equal(t, Black, BK.ColorOf())
	assert.Equal(t, Black, BP.ColorOf())
}

func TestPieceKindOf(t *testing.T) {
	assert.Equal(t, KindKing, WK.KindOf())
	assert.Equal(t, KindPawn, WP.KindOf())
	assert.Equal(t, KindKing, BK.KindOf())
	assert.Equal(t, KindPawn, BP.KindOf())
}

func TestMakePieceKind(t *testing.T) {
	assert.Equal(t, WQ, MakePieceKind(White, KindQueen))
	assert.Equal(t, BN, MakePieceKind(Black, KindKnight))
}

func TestPromotedKind(t *testing.T) {
	assert.Equal(t, WQ, WP.PromotedKind(0))
	assert.Equal(t, WR, WP.PromotedKind(1))
	assert.Equal(t, WB, WP.PromotedKind(2))
	assert.Equal(t, WN, WP.PromotedKind(3))
	assert.Equal(t, BQ, BP.PromotedKind(0))
	assert.Equal(t, BR, BP.PromotedKind(1))
	assert.Equal(t, BB, BP.PromotedKind(2))
	assert.Equal(t, BN, BP.PromotedKind(3))
}

func TestPieceKindFromChar(t *testing.T) {
	assert.Equal(t, WK, PieceKindFromChar('K'))
	assert.Equal(t, BP, PieceKindFromChar('p'))
	assert.Equal(t, PkEmpty, PieceKindFromChar('?'))
}
