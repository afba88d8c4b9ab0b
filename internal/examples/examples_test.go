package examples

import (
	"bytes"
	"testing"

	"github.com/cameron-martin/tsumego-solver/internal/board"
	"github.com/cameron-martin/tsumego-solver/internal/game"
)

// twoCellBoard has black at (0,0), white at (1,0) and everything else
// out-of-bounds, giving a record whose every interesting bit is known.
func twoCellBoard() board.Board {
	black := board.Singleton(board.NewPos(0, 0))
	white := board.Singleton(board.NewPos(1, 0))
	oob := black.Or(white).Not()
	return board.New(black, white, oob)
}

func TestEncodeRecordLayout(t *testing.T) {
	g := game.New(twoCellBoard(), board.Black)
	rec := EncodeRecord(g, board.Black)

	// Bit 0 of the 128-bit big-endian layout is the last byte's low bit.
	if rec[15] != 0x01 {
		t.Errorf("black bitboard tail byte = %#x, want 0x01", rec[15])
	}
	if rec[31] != 0x02 {
		t.Errorf("white bitboard tail byte = %#x, want 0x02", rec[31])
	}
	if rec[47] != 0x03 {
		t.Errorf("playable bitboard tail byte = %#x, want 0x03", rec[47])
	}
	for i := 0; i < 15; i++ {
		if rec[i] != 0 || rec[16+i] != 0 || rec[32+i] != 0 {
			t.Fatalf("unexpected high byte set at offset %d", i)
		}
	}
	if rec[48] != 1 {
		t.Errorf("outcome byte = %d, want 1 when the side to move wins", rec[48])
	}

	rec = EncodeRecord(g, board.White)
	if rec[48] != 0 {
		t.Errorf("outcome byte = %d, want 0 when the side to move loses", rec[48])
	}
}

// TestEncodeRecordCanonicalizesWhiteToMove: with White to move the colors
// swap so the record is always from Black's point of view, and the
// outcome byte still tracks the side to move.
func TestEncodeRecordCanonicalizesWhiteToMove(t *testing.T) {
	g := game.New(twoCellBoard(), board.White)
	rec := EncodeRecord(g, board.White)

	if rec[15] != 0x02 {
		t.Errorf("black section tail byte = %#x, want 0x02 (white's stone after the swap)", rec[15])
	}
	if rec[31] != 0x01 {
		t.Errorf("white section tail byte = %#x, want 0x01", rec[31])
	}
	if rec[48] != 1 {
		t.Errorf("outcome byte = %d, want 1 (the side to move won)", rec[48])
	}
}

func TestDecodeRecordInverse(t *testing.T) {
	g := game.New(twoCellBoard(), board.Black)
	rec := EncodeRecord(g, board.Black)

	b, won := DecodeRecord(rec)
	if !won {
		t.Error("decoded outcome should be a win for the side to move")
	}
	if !b.Stones(board.Black).Equal(g.Board.Stones(board.Black)) ||
		!b.Stones(board.White).Equal(g.Board.Stones(board.White)) ||
		!b.OutOfBounds().Equal(g.Board.OutOfBounds()) {
		t.Error("decoded board differs from the encoded one")
	}
}

func TestFileSinkSampling(t *testing.T) {
	var buf bytes.Buffer
	sink := NewFileSink(&buf, 2)
	g := game.New(twoCellBoard(), board.Black)

	for i := 0; i < 5; i++ {
		if err := sink.Collect(g, board.Black); err != nil {
			t.Fatalf("Collect: %v", err)
		}
	}
	if got := buf.Len(); got != 3*RecordSize {
		t.Errorf("buffer holds %d bytes, want %d (records 0, 2 and 4)", got, 3*RecordSize)
	}
}
