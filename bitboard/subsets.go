package bitboard

// SubsetIterator walks every subset of a mask with the carry-rippler trick
// (https://www.chessprogramming.org/Traversing_Subsets_of_a_Set). The
// empty set is produced first and exactly once.
type SubsetIterator struct {
	mask   BitBoard
	subset BitBoard
	done   bool
}

func NewSubsetIterator(mask BitBoard) *SubsetIterator {
	return &SubsetIterator{mask: mask}
}

// Next returns the next subset. ok is false once all 2^popcount(mask)
// subsets have been produced.
func (it *SubsetIterator) Next() (subset BitBoard, ok bool) {
	if it.done {
		return 0, false
	}
	subset = it.subset
	// The sequence is a cycle through zero, so arriving back at zero
	// means every subset has been handed out.
	it.subset = (it.subset - it.mask) & it.mask
	if it.subset == 0 {
		it.done = true
	}
	return subset, true
}

// Reset restarts the enumeration from the empty set.
func (it *SubsetIterator) Reset() {
	it.subset = 0
	it.done = false
}

// SubsetCount is 2^popcount(mask). Only meaningful for masks with fewer
// than 63 bits set.
func SubsetCount(mask BitBoard) int {
	return 1 << uint(mask.PopCount())
}

// ForEachSubset calls fn for every subset of mask, starting with Empty.
func ForEachSubset(mask BitBoard, fn func(BitBoard)) {
	it := SubsetIterator{mask: mask}
	for s, ok := it.Next(); ok; s, ok = it.Next() {
		fn(s)
	}
}

// SubsetsOf collects every subset of mask.
func SubsetsOf(mask BitBoard) []BitBoard {
	out := make([]BitBoard, 0, SubsetCount(mask))
	ForEachSubset(mask, func(s BitBoard) {
		out = append(out, s)
	})
	return out
}
