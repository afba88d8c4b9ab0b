// Package store persists generated puzzles in an embedded BadgerDB,
// deduplicating candidates across runs by their stable hash and keeping
// running generation statistics.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dgraph-io/badger/v4"

	"github.com/cameron-martin/tsumego-solver/internal/board"
	"github.com/cameron-martin/tsumego-solver/internal/sgf"
	"github.com/cameron-martin/tsumego-solver/internal/solver"
	"github.com/cameron-martin/tsumego-solver/internal/validator"
)

const (
	keyStats     = "stats"
	puzzlePrefix = "puzzle/"
)

// RunStats are the lifetime totals of a generation run, persisted
// alongside the puzzles themselves.
type RunStats struct {
	Accepted   int `json:"accepted"`
	Duplicates int `json:"duplicates"`
	Rejected   int `json:"rejected"`
}

// Store wraps BadgerDB for persistent puzzle storage. It is the default
// PuzzleSink of the generation service; the solver core never sees it.
type Store struct {
	db        *badger.DB
	mirrorDir string
}

var _ validator.PuzzleSink = (*Store)(nil)

// Open opens (creating if needed) the database under dir. If mirrorDir is
// non-empty, every newly accepted puzzle is also written there as a
// <stable-hash>.sgf file.
func Open(dir, mirrorDir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Store{db: db, mirrorDir: mirrorDir}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Accept stores a validated puzzle keyed by its stable hash, bumping the
// duplicate counter instead when the same position was already accepted
// in this or an earlier run.
func (s *Store) Accept(candidate board.Board, white, black *solver.Solution) error {
	text, err := sgf.Encode(candidate)
	if err != nil {
		return err
	}
	hash := candidate.StableHash()
	key := []byte(fmt.Sprintf("%s%016x", puzzlePrefix, hash))

	added := false
	err = s.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(key)
		if err == nil {
			return s.bumpStats(txn, func(st *RunStats) { st.Duplicates++ })
		}
		if err != badger.ErrKeyNotFound {
			return err
		}
		if err := txn.Set(key, []byte(text)); err != nil {
			return err
		}
		added = true
		return s.bumpStats(txn, func(st *RunStats) { st.Accepted++ })
	})
	if err != nil {
		return err
	}

	if added && s.mirrorDir != "" {
		name := filepath.Join(s.mirrorDir, fmt.Sprintf("%016x.sgf", hash))
		return os.WriteFile(name, []byte(text), 0644)
	}
	return nil
}

// Contains reports whether a puzzle with the given stable hash was ever
// accepted.
func (s *Store) Contains(hash uint64) (bool, error) {
	found := false
	err := s.db.View(func(txn *badger.Txn) error {
		key := []byte(fmt.Sprintf("%s%016x", puzzlePrefix, hash))
		_, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return nil
	})
	return found, err
}

// RecordRejections adds n rejected candidates to the running stats.
func (s *Store) RecordRejections(n int) error {
	if n == 0 {
		return nil
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return s.bumpStats(txn, func(st *RunStats) { st.Rejected += n })
	})
}

// LoadStats loads the running totals, returning zeroes if none were
// recorded yet.
func (s *Store) LoadStats() (*RunStats, error) {
	st := &RunStats{}
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyStats))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, st)
		})
	})
	return st, err
}

// bumpStats applies f to the stats record inside txn.
func (s *Store) bumpStats(txn *badger.Txn, f func(*RunStats)) error {
	st := &RunStats{}
	item, err := txn.Get([]byte(keyStats))
	if err == nil {
		if err := item.Value(func(val []byte) error {
			return json.Unmarshal(val, st)
		}); err != nil {
			return err
		}
	} else if err != badger.ErrKeyNotFound {
		return err
	}

	f(st)
	data, err := json.Marshal(st)
	if err != nil {
		return err
	}
	return txn.Set([]byte(keyStats), data)
}
