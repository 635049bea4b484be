package magicstore

const createMagicTable = `
CREATE TABLE IF NOT EXISTS magics (
  piece string not null,
  warmup integer not null,
  square integer not null,
  mask integer not null,
  shift integer not null,
  slot_offset integer not null,
  magic integer not null,
  attempts integer not null,
  PRIMARY KEY (piece, warmup, square)
)`

const insertMagic = `
INSERT OR REPLACE INTO magics (piece, warmup, square, mask, shift, slot_offset, magic, attempts)
VALUES (:piece, :warmup, :square, :mask, :shift, :slot_offset, :magic, :attempts)
`

const selectMagics = `
SELECT piece, warmup, square, mask, shift, slot_offset, magic, attempts
FROM magics
WHERE piece = ? AND warmup = ?
ORDER BY square
`

const selectWarmups = `
SELECT DISTINCT warmup FROM magics WHERE piece = ? ORDER BY warmup
`

// sqlite integers are signed; uint64 columns hold the int64 with the same
// bit pattern.
type magicRow struct {
	Piece    string `db:"piece"`
	Warmup   int    `db:"warmup"`
	Square   int    `db:"square"`
	Mask     int64  `db:"mask"`
	Shift    int    `db:"shift"`
	Offset   int    `db:"slot_offset"`
	Magic    int64  `db:"magic"`
	Attempts int    `db:"attempts"`
}
