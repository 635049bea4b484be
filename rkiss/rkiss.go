// Package rkiss implements Bob Jenkins' small noncryptographic PRNG in the
// form used for magic number search. Output is a pure function of the seed,
// the warm-up round count and the sequence of calls.
package rkiss

import "math/bits"

const (
	seedA = 0xF1EA5EED

	// DefaultSeed fills the three trailing state words of the canonical
	// generator.
	DefaultSeed = 0xD4E12C77

	// DefaultWarmup is the number of outputs discarded by the canonical
	// magic search.
	DefaultWarmup = 203
)

// DefaultBoosters bias MagicRand toward sparse candidates, one constant
// per rank of the origin square.
var DefaultBoosters = [8]int{3101, 552, 3555, 926, 834, 26, 2131, 1117}

type RKISS struct {
	a, b, c, d uint64
}

// New returns a generator with the standard seed words that has already
// discarded rounds outputs.
func New(rounds int) *RKISS {
	return NewSeeded(DefaultSeed, rounds)
}

// NewSeeded is New with seed in place of the three trailing seed words.
func NewSeeded(seed uint64, rounds int) *RKISS {
	r := &RKISS{a: seedA, b: seed, c: seed, d: seed}
	for i := 0; i < rounds; i++ {
		r.Rand()
	}
	return r
}

func (r *RKISS) Rand() uint64 {
	e := r.a - bits.RotateLeft64(r.b, 7)
	r.a = r.b ^ bits.RotateLeft64(r.c, 13)
	r.b = r.c + bits.RotateLeft64(r.d, 37)
	r.c = r.d + e
	r.d = e + r.a
	return r.d
}

// MagicRand draws three outputs and combines them into a candidate with
// few bits set. The low six bits of booster rotate the first draw, the
// next six rotate the intermediate result.
func (r *RKISS) MagicRand(booster int) uint64 {
	x := bits.RotateLeft64(r.Rand(), booster&0x3F) & r.Rand()
	return bits.RotateLeft64(x, (booster>>6)&0x3F) & r.Rand()
}

const (
	fnvBasis = 14695981039346656037
	fnvPrime = 1099511628211
)

// DeriveSeed mixes a square index into seed, giving each square its own
// stream when squares are searched concurrently.
func DeriveSeed(seed uint64, square int) uint64 {
	h := uint64(fnvBasis)
	for i := 0; i < 8; i++ {
		h = (h ^ ((seed >> (8 * uint(i))) & 0xff)) * fnvPrime
	}
	h = (h ^ uint64(square)) * fnvPrime
	return h
}
