// Package magicstore keeps discovered magic numbers in a sqlite database so
// later runs can rebuild attack tables without searching.
package magicstore

import (
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"golang.org/x/exp/slices"

	"chess-attacks/bitboard"
	"chess-attacks/movegen"

	_ "github.com/mattn/go-sqlite3" // store assumes sqlite
)

var (
	// ErrNotFound means the store has no complete set of magics for the
	// requested piece and warmup.
	ErrNotFound = errors.New("magics not found")
	// ErrCorrupt means stored rows disagree with the layout they are
	// loaded into.
	ErrCorrupt = errors.New("stored magics are inconsistent")
)

type Store struct {
	db *sqlx.DB
}

func Open(path string) (*Store, error) {
	db, err := sqlx.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(createMagicTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("create magic table: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Save writes every square of b under warmup, replacing any earlier rows
// for the same piece and warmup.
func (s *Store) Save(b *movegen.MagicAttackBoard, warmup int) error {
	tx, err := s.db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()
	attempts := b.Attempts()
	for sq, e := range b.Entries() {
		row := &magicRow{
			Piece:    b.PieceType().String(),
			Warmup:   warmup,
			Square:   sq,
			Mask:     int64(e.Mask),
			Shift:    int(e.Shift),
			Offset:   e.Offset,
			Magic:    int64(e.Magic),
			Attempts: attempts[sq],
		}
		if _, err := tx.NamedExec(insertMagic, row); err != nil {
			return fmt.Errorf("insert %v square=%d: %w", b.PieceType(), sq, err)
		}
	}
	return tx.Commit()
}

func (s *Store) rows(pt movegen.PieceType, warmup int) ([]magicRow, error) {
	var rows []magicRow
	if err := s.db.Select(&rows, selectMagics, pt.String(), warmup); err != nil {
		return nil, err
	}
	if len(rows) != 64 {
		return nil, fmt.Errorf("%w: %v warmup=%d has %d squares", ErrNotFound, pt, warmup, len(rows))
	}
	for i, r := range rows {
		if r.Square != i {
			return nil, fmt.Errorf("%w: %v warmup=%d row %d holds square %d", ErrCorrupt, pt, warmup, i, r.Square)
		}
	}
	return rows, nil
}

// Load returns the stored magics for pt, indexed by square.
func (s *Store) Load(pt movegen.PieceType, warmup int) ([64]bitboard.BitBoard, error) {
	var magics [64]bitboard.BitBoard
	rows, err := s.rows(pt, warmup)
	if err != nil {
		return magics, err
	}
	for _, r := range rows {
		magics[r.Square] = bitboard.BitBoard(uint64(r.Magic))
	}
	return magics, nil
}

// Rebuild loads the magics for pt and fills a fresh attack table with them.
// The stored masks, shifts and offsets must match the rebuilt layout.
func (s *Store) Rebuild(pt movegen.PieceType, warmup int) (*movegen.MagicAttackBoard, error) {
	rows, err := s.rows(pt, warmup)
	if err != nil {
		return nil, err
	}
	var magics [64]bitboard.BitBoard
	for _, r := range rows {
		magics[r.Square] = bitboard.BitBoard(uint64(r.Magic))
	}
	b, err := movegen.NewMagicAttackBoardFromMagics(pt, magics)
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		e := b.Entry(r.Square)
		if uint64(e.Mask) != uint64(r.Mask) || int(e.Shift) != r.Shift || e.Offset != r.Offset {
			return nil, fmt.Errorf("%w: %v warmup=%d square %d layout differs", ErrCorrupt, pt, warmup, r.Square)
		}
	}
	return b, nil
}

// Warmups lists the warmups with stored magics for pt, ascending.
func (s *Store) Warmups(pt movegen.PieceType) ([]int, error) {
	var warmups []int
	if err := s.db.Select(&warmups, selectWarmups, pt.String()); err != nil {
		return nil, err
	}
	return warmups, nil
}

// Has reports whether both sliding tables are stored under warmup.
func (s *Store) Has(warmup int) (bool, error) {
	for _, pt := range []movegen.PieceType{movegen.PieceTypeRook, movegen.PieceTypeBishop} {
		warmups, err := s.Warmups(pt)
		if err != nil {
			return false, err
		}
		if !slices.Contains(warmups, warmup) {
			return false, nil
		}
	}
	return true, nil
}
