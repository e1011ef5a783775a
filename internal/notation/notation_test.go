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

package notation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankkopp/magicmove/internal/movegen"

	. "github.com/frankkopp/magicmove/internal/types"
)

func TestSquareStringRoundTrip(t *testing.T) {
	assert.Equal(t, "a8", SquareToString(SqA8))
	assert.Equal(t, "h1", SquareToString(SqH1))
	assert.Equal(t, "-", SquareToString(SqNone))
	assert.Equal(t, SqE4, StringToSquare("e4"))
	assert.Equal(t, SqNone, StringToSquare("x0"))
}

func TestMoveToUci(t *testing.T) {
	assert.Equal(t, "e2e4", MoveToUci(NewNormalMove(SqE2, SqE4)))
	assert.Equal(t, "a7a8q", MoveToUci(NewPromotionMove(SqA7, SqA8, 0)))
}

func TestMovesToUci(t *testing.T) {
	var buf movegen.MoveBuffer
	buf.Moves[0] = NewNormalMove(SqE2, SqE4)
	buf.Moves[1] = NewNormalMove(SqD2, SqD4)
	buf.Count = 2
	assert.Equal(t, "e2e4 d2d4", MovesToUci(&buf))
}

func TestParseUciMoveMatchesOnlyBufferedMoves(t *testing.T) {
	var buf movegen.MoveBuffer
	buf.Moves[0] = NewNormalMove(SqE2, SqE4)
	buf.Count = 1

	m, err := ParseUciMove("e2e4", &buf)
	require.NoError(t, err)
	assert.Equal(t, NewNormalMove(SqE2, SqE4), m)

	_, err = ParseUciMove("e2e5", &buf)
	assert.Error(t, err)
}
