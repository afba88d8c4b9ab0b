package game

import (
	"fmt"

	"github.com/cameron-martin/tsumego-solver/internal/board"
)

// MoveKind distinguishes the two shapes a Move can take.
type MoveKind uint8

const (
	Pass MoveKind = iota
	Place
)

// Move is the tagged union {Pass, Place(pos)}.
type Move struct {
	Kind MoveKind
	Pos  board.Pos
}

// PassMove builds a Pass move.
func PassMove() Move {
	return Move{Kind: Pass}
}

// PlaceMove builds a Place move at pos.
func PlaceMove(pos board.Pos) Move {
	return Move{Kind: Place, Pos: pos}
}

func (m Move) String() string {
	if m.Kind == Pass {
		return "pass"
	}
	return fmt.Sprintf("place%v", m.Pos)
}

// PassState tracks consecutive passes. A plain bool cannot distinguish "a
// first pass is still possible" from "the game just ended".
type PassState uint8

const (
	NotPassed PassState = iota
	PassedOnce
	PassedTwice
)

func (s PassState) String() string {
	switch s {
	case NotPassed:
		return "NotPassed"
	case PassedOnce:
		return "PassedOnce"
	default:
		return "PassedTwice"
	}
}
