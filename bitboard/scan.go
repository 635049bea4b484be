package bitboard

// debruijn64 and index64 are a matched pair; see
// https://www.chessprogramming.org/BitScan#De_Bruijn_Multiplication
const debruijn64 = 0x03f79d71b4cb0a89

var index64 = [64]int{
	0, 47, 1, 56, 48, 27, 2, 60,
	57, 49, 41, 37, 28, 16, 3, 61,
	54, 58, 35, 52, 50, 42, 21, 44,
	38, 32, 29, 23, 17, 11, 4, 62,
	46, 55, 26, 59, 40, 36, 15, 53,
	34, 51, 20, 43, 31, 22, 10, 45,
	25, 39, 14, 33, 19, 30, 9, 24,
	13, 18, 8, 12, 7, 6, 5, 63,
}

// BitScanForward returns the index of the lowest set bit of b. ok is false
// iff b is empty.
func BitScanForward(b BitBoard) (sq int, ok bool) {
	if b == 0 {
		return 0, false
	}
	return index64[(uint64(b^(b-1))*debruijn64)>>58], true
}

// BitScanReverse returns the index of the highest set bit of b. ok is false
// iff b is empty.
func BitScanReverse(b BitBoard) (sq int, ok bool) {
	if b == 0 {
		return 0, false
	}
	b |= b >> 1
	b |= b >> 2
	b |= b >> 4
	b |= b >> 8
	b |= b >> 16
	b |= b >> 32
	return index64[(uint64(b)*debruijn64)>>58], true
}
