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

func TestColorFlip(t *testing.T) {
	assert.Equal(t, White, Black.Flip())
	assert.Equal(t, Black, White.Flip())
}

func TestColorIsValid(t *testing.T) {
	assert.True(t, Black.IsValid())
	assert.True(t, White.IsValid())
	assert.False(t, Color(2).IsValid())
}

func TestColorString(t *testing.T) {
	assert.Equal(t, "b", Black.String())
	assert.Equal(t, "w", White.String())
}

func TestPawnMoveDirection(t *testing.T) {
	assert.Equal(t, North, White.PawnMoveDirection())
	assert.Equal(t, South, Black.PawnMoveDirection())
}

func TestPromotionRankBb(t *testing.T) {
	assert.Equal(t, Rank8.Bb(), White.PromotionRankBb())
	assert.Equal(t, Rank1.Bb(), Black.PromotionRankBb())
}

func TestPawnDoubleRankBb(t *testing.T) {
	assert.Equal(t, Rank4.Bb(), White.PawnDoubleRankBb())
	assert.Equal(t, Rank5.Bb(), Black.PawnDoubleRankBb())
}
