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
	"github.com/frankkopp/magicmove/internal/attacks"
	"github.com/frankkopp/magicmove/internal/position"

	. "github.com/frankkopp/magicmove/internal/types"
)

// Perft counts the number of pseudo-legal leaf positions reachable from
// pos after exactly depth plies, the standard move-generator smoke
// test. Since Position carries no undo stack, each recursive step
// applies a move to a throwaway copy rather than mutating and unwinding
// pos.
func Perft(pos *position.Position, tables *attacks.Tables, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	var buf MoveBuffer
	Generate(pos, tables, &buf)
	if depth == 1 {
		return uint64(buf.Count)
	}

	var nodes uint64
	for i := 0; i < buf.Count; i++ {
		child := *pos
		child.Apply(buf.Moves[i])
		nodes += Perft(&child, tables, depth-1)
	}
	return nodes
}

// Divide breaks a Perft(pos, tables, depth) count down by root move,
// the standard way to narrow a wrong perft total down to the first
// offending move.
func Divide(pos *position.Position, tables *attacks.Tables, depth int) map[MoveCode]uint64 {
	var buf MoveBuffer
	Generate(pos, tables, &buf)

	result := make(map[MoveCode]uint64, buf.Count)
	for i := 0; i < buf.Count; i++ {
		m := buf.Moves[i]
		child := *pos
		child.Apply(m)
		if depth <= 1 {
			result[m] = 1
			continue
		}
		result[m] = Perft(&child, tables, depth-1)
	}
	return result
}
