// Package examples encodes solved positions as fixed-width binary records
// for a downstream move-ordering model, and provides the sinks the
// generation and solve pipelines write them through.
package examples

import (
	"encoding/binary"
	"io"

	"github.com/cameron-martin/tsumego-solver/internal/board"
	"github.com/cameron-martin/tsumego-solver/internal/game"
)

// RecordSize is the byte width of one persisted example: three big-endian
// 128-bit bitboards (black stones, white stones, playable cells) and one
// outcome byte.
const RecordSize = 49

// EncodeRecord serializes a position and the color that wins it under
// perfect play. The position is canonicalized so the side to move is
// Black; the outcome byte is 1 when the side to move is the winner.
func EncodeRecord(g game.Game, winner board.Color) [RecordSize]byte {
	b := g.Board
	if g.ToMove != board.Black {
		b = b.InvertColors()
	}

	var rec [RecordSize]byte
	putBitBoard(rec[0:16], b.Stones(board.Black))
	putBitBoard(rec[16:32], b.Stones(board.White))
	putBitBoard(rec[32:48], b.OutOfBounds().Not())
	if winner == g.ToMove {
		rec[48] = 1
	}
	return rec
}

// DecodeRecord recovers the canonicalized board (Black to move) and
// whether the side to move won.
func DecodeRecord(rec [RecordSize]byte) (b board.Board, toMoveWon bool) {
	black := readBitBoard(rec[0:16])
	white := readBitBoard(rec[16:32])
	playable := readBitBoard(rec[32:48])
	return board.New(black, white, playable.Not()), rec[48] == 1
}

func putBitBoard(dst []byte, bb board.BitBoard) {
	binary.BigEndian.PutUint64(dst[0:8], bb.Hi)
	binary.BigEndian.PutUint64(dst[8:16], bb.Lo)
}

func readBitBoard(src []byte) board.BitBoard {
	return board.FromUint128(
		binary.BigEndian.Uint64(src[0:8]),
		binary.BigEndian.Uint64(src[8:16]),
	)
}

// Sink receives (position, winning side) records. The core never writes
// records itself; callers decide which positions along a solved line are
// worth keeping.
type Sink interface {
	Collect(g game.Game, winner board.Color) error
}

// NullSink discards every record.
type NullSink struct{}

func (NullSink) Collect(game.Game, board.Color) error { return nil }

// FileSink appends every sampleEvery-th record to w. Callers must
// serialize access; a generation service funnels all workers through one
// writer before records reach the sink.
type FileSink struct {
	w           io.Writer
	sampleIndex uint32
	sampleEvery uint32
}

// NewFileSink builds a FileSink over w keeping one record in every
// sampleEvery offered (0 is treated as 1).
func NewFileSink(w io.Writer, sampleEvery uint32) *FileSink {
	if sampleEvery == 0 {
		sampleEvery = 1
	}
	return &FileSink{w: w, sampleEvery: sampleEvery}
}

func (s *FileSink) Collect(g game.Game, winner board.Color) error {
	var err error
	if s.sampleIndex == 0 {
		rec := EncodeRecord(g, winner)
		_, err = s.w.Write(rec[:])
	}
	s.sampleIndex = (s.sampleIndex + 1) % s.sampleEvery
	return err
}
