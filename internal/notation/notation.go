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

// Package notation bundles the external string forms other packages
// and cmd/perft need for square and move I/O: algebraic square names
// and UCI move strings. It holds no state of its own and exists only
// to give these conversions one stable, documented home, the way a
// consumer of the engine expects to find them rather than reaching
// into internal/types directly.
package notation

import (
	"fmt"

	"github.com/frankkopp/magicmove/internal/movegen"

	. "github.com/frankkopp/magicmove/internal/types"
)

// SquareToString returns the algebraic name of sq (e.g. "e4"), or "-"
// for SqNone.
func SquareToString(sq Square) string {
	return sq.String()
}

// StringToSquare parses an algebraic square name (e.g. "e4") into a
// Square, or SqNone if s is not a valid square string.
func StringToSquare(s string) Square {
	return MakeSquare(s)
}

// MoveToUci returns the UCI wire representation of m: from-square,
// to-square, and a lowercase promotion letter when m promotes.
func MoveToUci(m MoveCode) string {
	return m.StringUci()
}

// MovesToUci renders every move in buf as a space-separated UCI move
// list, for diagnostics and divide-style perft output.
func MovesToUci(buf *movegen.MoveBuffer) string {
	s := ""
	for i := 0; i < buf.Count; i++ {
		if i > 0 {
			s += " "
		}
		s += MoveToUci(buf.Moves[i])
	}
	return s
}

// ParseUciMove finds the move in buf whose UCI string equals s. Returns
// an error if no move matches: ParseUciMove never fabricates a move
// code from the string alone, since only a pseudo-legal move already
// in the generated buffer can be applied safely.
func ParseUciMove(s string, buf *movegen.MoveBuffer) (MoveCode, error) {
	for i := 0; i < buf.Count; i++ {
		if buf.Moves[i].StringUci() == s {
			return buf.Moves[i], nil
		}
	}
	return MoveNone, fmt.Errorf("notation: no pseudo-legal move matches %q", s)
}
