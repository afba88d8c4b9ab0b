package terminal

import (
	"testing"

	"github.com/cameron-martin/tsumego-solver/internal/board"
	"github.com/cameron-martin/tsumego-solver/internal/game"
)

// TestDeadShapeTwoCellRegion: a 2x1 playable region
// with no defender stones cannot fit two eyes.
func TestDeadShapeTwoCellRegion(t *testing.T) {
	region := board.Singleton(board.NewPos(0, 0)).Or(board.Singleton(board.NewPos(1, 0)))
	b := board.New(board.EmptyBB, board.EmptyBB, region.Not())

	attackerToMove := game.New(b, board.Black)
	won, ok := IsTerminal(&attackerToMove, board.Black)
	if !ok || !won {
		t.Errorf("attacker to move in a dead 2-cell shape should win, got won=%v ok=%v", won, ok)
	}

	defenderToMove := game.New(b, board.White)
	won, ok = IsTerminal(&defenderToMove, board.Black)
	if !ok || won {
		t.Errorf("defender to move in a dead 2-cell shape should lose, got won=%v ok=%v", won, ok)
	}
}

// TestBensonAliveGroupWins covers the Benson-life terminal branch: a group
// with two separated eyes wins for its owner regardless of whose move it
// is elsewhere on the board.
func TestBensonAliveGroupWins(t *testing.T) {
	black := board.EmptyBB
	for _, p := range []board.Pos{
		board.NewPos(0, 0), board.NewPos(1, 0), board.NewPos(2, 0), board.NewPos(3, 0), board.NewPos(4, 0),
		board.NewPos(0, 1), board.NewPos(2, 1), board.NewPos(4, 1),
		board.NewPos(0, 2), board.NewPos(1, 2), board.NewPos(2, 2), board.NewPos(3, 2), board.NewPos(4, 2),
	} {
		black = black.Set(p)
	}
	region := board.EmptyBB
	for c := 0; c < 5; c++ {
		for r := 0; r < 3; r++ {
			region = region.Set(board.NewPos(c, r))
		}
	}
	b := board.New(black, board.EmptyBB, region.Not())

	defenderToMove := game.New(b, board.Black)
	won, ok := IsTerminal(&defenderToMove, board.White)
	if !ok || !won {
		t.Errorf("the living defender to move should win, got won=%v ok=%v", won, ok)
	}

	attackerToMove := game.New(b, board.White)
	won, ok = IsTerminal(&attackerToMove, board.White)
	if !ok || won {
		t.Errorf("the attacker facing an alive defender should lose, got won=%v ok=%v", won, ok)
	}
}

func TestDoublePassDefenderMustHaveStones(t *testing.T) {
	defenderStone := board.Singleton(board.NewPos(4, 4))
	b := board.New(board.EmptyBB, defenderStone, board.EmptyBB)

	g := game.Game{Board: b, ToMove: board.White, PassState: game.PassedTwice}
	won, ok := IsTerminal(&g, board.Black)
	if !ok || !won {
		t.Errorf("defender (White) with stones remaining should win after double pass, got won=%v ok=%v", won, ok)
	}

	g2 := game.Game{Board: b, ToMove: board.Black, PassState: game.PassedTwice}
	won, ok = IsTerminal(&g2, board.Black)
	if !ok || won {
		t.Errorf("attacker (Black) should lose when the defender still has stones, got won=%v ok=%v", won, ok)
	}
}

func TestNonTerminalMidGame(t *testing.T) {
	region := board.EmptyBB
	for c := 0; c < 6; c++ {
		for r := 0; r < 6; r++ {
			region = region.Set(board.NewPos(c, r))
		}
	}
	b := board.New(board.EmptyBB, board.EmptyBB, region.Not())
	g := game.New(b, board.Black)

	if _, ok := IsTerminal(&g, board.White); ok {
		t.Errorf("an open, empty region should not yet be terminal")
	}
}
