// Package sgf reads and writes the small SGF subset the solver consumes:
// setup stones, one triangle marking the out-of-bounds region, and a
// stream of subsequent moves. Variations are rejected outright.
package sgf

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cameron-martin/tsumego-solver/internal/board"
	"github.com/cameron-martin/tsumego-solver/internal/game"
)

var (
	ErrMalformed  = errors.New("sgf: malformed input")
	ErrVariations = errors.New("sgf: variations are not supported")
	ErrTriangle   = errors.New("sgf: setup node must carry exactly one TR cell")
)

// property is one SGF property: an identifier and its bracketed values.
type property struct {
	name   string
	values []string
}

// node is the property list of one ;-node.
type node []property

// parse scans a single-variation SGF game tree into its node list.
func parse(text string) ([]node, error) {
	s := strings.TrimSpace(text)
	if len(s) < 2 || s[0] != '(' || s[len(s)-1] != ')' {
		return nil, ErrMalformed
	}
	body := s[1 : len(s)-1]

	var nodes []node
	i := 0
	for i < len(body) {
		c := body[i]
		switch {
		case c == ';':
			nodes = append(nodes, node{})
			i++
		case c == '(' || c == ')':
			return nil, ErrVariations
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c >= 'A' && c <= 'Z':
			if len(nodes) == 0 {
				return nil, ErrMalformed
			}
			j := i
			for j < len(body) && body[j] >= 'A' && body[j] <= 'Z' {
				j++
			}
			name := body[i:j]
			i = j
			var values []string
			for i < len(body) && body[i] == '[' {
				end := strings.IndexByte(body[i:], ']')
				if end < 0 {
					return nil, ErrMalformed
				}
				values = append(values, body[i+1:i+end])
				i += end + 1
			}
			if len(values) == 0 {
				return nil, ErrMalformed
			}
			last := len(nodes) - 1
			nodes[last] = append(nodes[last], property{name: name, values: values})
		default:
			return nil, fmt.Errorf("%w: unexpected %q", ErrMalformed, c)
		}
	}
	if len(nodes) == 0 {
		return nil, ErrMalformed
	}
	return nodes, nil
}

// parsePos decodes a two-letter SGF coordinate, column first.
func parsePos(v string) (board.Pos, error) {
	if len(v) != 2 {
		return board.NoPos, fmt.Errorf("%w: coordinate %q", ErrMalformed, v)
	}
	col := int(v[0] - 'a')
	row := int(v[1] - 'a')
	if col < 0 || col >= board.Width || row < 0 || row >= board.Height {
		return board.NoPos, fmt.Errorf("%w: coordinate %q is off the %dx%d arena", ErrMalformed, v, board.Width, board.Height)
	}
	return board.NewPos(col, row), nil
}

func formatPos(p board.Pos) string {
	return string([]byte{byte('a' + p.Col()), byte('a' + p.Row())})
}

// Load builds a Game from SGF text, with toMove to play first. The first
// node sets up stones (AB/AW) and the triangle whose connected empty
// region is the out-of-bounds area; later nodes are moves (B/W, an empty
// coordinate meaning a pass) replayed in order. An illegal move in the
// stream is a hard error.
func Load(text string, toMove board.Color) (game.Game, error) {
	nodes, err := parse(text)
	if err != nil {
		return game.Game{}, err
	}

	b := board.EmptyBoard()
	triangle := board.NoPos
	for _, prop := range nodes[0] {
		switch prop.name {
		case "AB", "AW":
			cell := board.CellBlack
			if prop.name == "AW" {
				cell = board.CellWhite
			}
			for _, v := range prop.values {
				pos, err := parsePos(v)
				if err != nil {
					return game.Game{}, err
				}
				b = b.SetCell(pos, cell)
			}
		case "TR":
			if triangle != board.NoPos || len(prop.values) != 1 {
				return game.Game{}, ErrTriangle
			}
			pos, err := parsePos(prop.values[0])
			if err != nil {
				return game.Game{}, err
			}
			triangle = pos
		case "B", "W":
			return game.Game{}, fmt.Errorf("%w: move in the setup node", ErrMalformed)
		}
	}
	if triangle == board.NoPos {
		return game.Game{}, ErrTriangle
	}
	b = b.SetOutOfBounds(board.Singleton(triangle).FloodFill(b.EmptyCells()))

	g := game.New(b, toMove)
	for _, n := range nodes[1:] {
		for _, prop := range n {
			var who board.Color
			switch prop.name {
			case "B":
				who = board.Black
			case "W":
				who = board.White
			default:
				continue
			}
			mv := game.PassMove()
			if prop.values[0] != "" {
				pos, err := parsePos(prop.values[0])
				if err != nil {
					return game.Game{}, err
				}
				mv = game.PlaceMove(pos)
			}
			next, err := g.PlayMoveForPlayer(mv, who)
			if err != nil {
				return game.Game{}, fmt.Errorf("sgf: illegal move %s by %v: %w", mv, who, err)
			}
			g = next
		}
	}
	return g, nil
}

// Encode renders a board as a single setup node: AB/AW for every stone
// plus one TR at a representative out-of-bounds cell, from which Load's
// flood fill recovers the full out-of-bounds set.
func Encode(b board.Board) (string, error) {
	oob := b.OutOfBounds()
	if oob.IsEmpty() {
		return "", fmt.Errorf("sgf: board has no out-of-bounds cell to mark")
	}

	var sb strings.Builder
	sb.WriteString("(;")
	writeStones := func(name string, stones board.BitBoard) {
		if stones.IsEmpty() {
			return
		}
		sb.WriteString(name)
		for _, pos := range stones.Positions() {
			sb.WriteByte('[')
			sb.WriteString(formatPos(pos))
			sb.WriteByte(']')
		}
	}
	writeStones("AB", b.Stones(board.Black))
	writeStones("AW", b.Stones(board.White))
	sb.WriteString("TR[")
	sb.WriteString(formatPos(oob.FirstCellPosition()))
	sb.WriteString("])")
	return sb.String(), nil
}
