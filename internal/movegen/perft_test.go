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

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/magicmove/internal/position"
)

// These are the well-known perft node counts for the standard starting
// position at shallow depth, where no move yet exposes a king to check
// or pins a piece, so the pseudo-legal count here agrees with the
// fully-legal count quoted in engine literature.
func TestPerftStartingPositionShallowDepths(t *testing.T) {
	tables := testTables(t)
	pos := position.NewStartingPosition()

	assert.Equal(t, uint64(1), Perft(pos, tables, 0))
	assert.Equal(t, uint64(20), Perft(pos, tables, 1))
	assert.Equal(t, uint64(400), Perft(pos, tables, 2))
}

func TestDivideSumsToPerft(t *testing.T) {
	tables := testTables(t)
	pos := position.NewStartingPosition()

	total := Perft(pos, tables, 3)
	divided := Divide(pos, tables, 3)

	var sum uint64
	for _, n := range divided {
		sum += n
	}
	assert.Equal(t, total, sum)
	assert.Equal(t, 20, len(divided))
}

func TestPerftDoesNotMutateCallerPosition(t *testing.T) {
	tables := testTables(t)
	pos := position.NewStartingPosition()
	before := pos.FEN()

	Perft(pos, tables, 3)

	assert.Equal(t, before, pos.FEN())
}
