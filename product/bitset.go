package product

import "math/bits"

// bitset is a dense set of node indices used by clique enumeration.
type bitset []uint64

func newBitset(n int) bitset { return make(bitset, (n+63)/64) }

// fullBitset returns {0..n-1}.
func fullBitset(n int) bitset {
	s := newBitset(n)
	for i := 0; i < n; i++ {
		s.set(i)
	}

	return s
}

// grow returns s with room for n members.
func (s bitset) grow(n int) bitset {
	if need := (n + 63) / 64; len(s) < need {
		grown := make(bitset, need)
		copy(grown, s)
		s = grown
	}

	return s
}

func (s bitset) set(i int)   { s[i/64] |= 1 << (uint(i) % 64) }
func (s bitset) clear(i int) { s[i/64] &^= 1 << (uint(i) % 64) }

func (s bitset) has(i int) bool {
	if i < 0 || i/64 >= len(s) {
		return false
	}

	return s[i/64]&(1<<(uint(i)%64)) != 0
}

func (s bitset) empty() bool {
	for _, w := range s {
		if w != 0 {
			return false
		}
	}

	return true
}

func (s bitset) count() int {
	c := 0
	for _, w := range s {
		c += bits.OnesCount64(w)
	}

	return c
}

// and returns s ∩ o sized like s; missing words of o count as zero.
func (s bitset) and(o bitset) bitset {
	out := make(bitset, len(s))
	for i := range s {
		if i < len(o) {
			out[i] = s[i] & o[i]
		}
	}

	return out
}

// andNot returns s \ o sized like s.
func (s bitset) andNot(o bitset) bitset {
	out := make(bitset, len(s))
	for i := range s {
		out[i] = s[i]
		if i < len(o) {
			out[i] &^= o[i]
		}
	}

	return out
}

func (s bitset) or(o bitset) bitset {
	out := make(bitset, len(s))
	copy(out, s)
	for i := range out {
		if i < len(o) {
			out[i] |= o[i]
		}
	}

	return out
}

// members returns the indices in s, ascending.
func (s bitset) members() []int {
	out := make([]int, 0, s.count())
	for wi, w := range s {
		for w != 0 {
			b := bits.TrailingZeros64(w)
			out = append(out, wi*64+b)
			w &^= 1 << uint(b)
		}
	}

	return out
}
