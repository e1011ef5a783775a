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
	"errors"
	"fmt"
	"strconv"
	"strings"

	. "github.com/frankkopp/magicmove/internal/types"
)

// FEN renders the board, side to move and castling availability fields
// of Forsyth-Edwards Notation. En-passant square and the halfmove/
// fullmove clocks are out of the Position's scope, so FEN always emits
// "-" for en-passant and omits the clock fields entirely.
func (p *Position) FEN() string {
	var sb strings.Builder

	for r := Rank8; r <= Rank1; r++ {
		empty := 0
		for f := FileA; f <= FileH; f++ {
			pk := p.pieceAt[SquareOf(f, r)]
			if pk == PkEmpty {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(pk.Char())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r != Rank1 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(p.ColorToMove().String())

	sb.WriteByte(' ')
	sb.WriteString(p.castlingFEN())

	sb.WriteString(" -")
	return sb.String()
}

func (p *Position) castlingFEN() string {
	var sb strings.Builder
	if p.kingCastle[White] {
		sb.WriteByte('K')
	}
	if p.queenCastle[White] {
		sb.WriteByte('Q')
	}
	if p.kingCastle[Black] {
		sb.WriteByte('k')
	}
	if p.queenCastle[Black] {
		sb.WriteByte('q')
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}

// NewPositionFromFEN parses a FEN board, side-to-move, castling-rights
// and en-passant field into a Position. Halfmove and fullmove clock
// fields, if present, are accepted and ignored since Position tracks
// neither.
func NewPositionFromFEN(fen string) (*Position, error) {
	fields := strings.Fields(strings.TrimSpace(fen))
	if len(fields) == 0 {
		return nil, errors.New("position: empty FEN")
	}

	p := newEmptyPosition()

	sq := SqA8
	for _, c := range fields[0] {
		switch {
		case c == '/':
			continue
		case c >= '1' && c <= '8':
			sq += Square(c - '0')
		default:
			if !sq.IsValid() {
				return nil, fmt.Errorf("position: FEN board field overruns the board: %q", fields[0])
			}
			pk := PieceKindFromChar(byte(c))
			if pk == PkEmpty {
				return nil, fmt.Errorf("position: invalid FEN piece letter %q", c)
			}
			p.place(pk, sq)
			sq++
		}
	}

	p.whiteToMove = true
	if len(fields) >= 2 {
		switch fields[1] {
		case "w":
			p.whiteToMove = true
		case "b":
			p.whiteToMove = false
		default:
			return nil, fmt.Errorf("position: invalid FEN side to move %q", fields[1])
		}
	}

	if len(fields) >= 3 && fields[2] != "-" {
		for _, c := range fields[2] {
			switch c {
			case 'K':
				p.kingCastle[White] = true
			case 'Q':
				p.queenCastle[White] = true
			case 'k':
				p.kingCastle[Black] = true
			case 'q':
				p.queenCastle[Black] = true
			default:
				return nil, fmt.Errorf("position: invalid FEN castling field %q", fields[2])
			}
		}
	}

	if len(fields) >= 4 && fields[3] != "-" {
		epSq := MakeSquare(fields[3])
		if epSq == SqNone {
			return nil, fmt.Errorf("position: invalid FEN en-passant square %q", fields[3])
		}
		p.enPassant = epSq.Bb()
	}

	return p, nil
}
