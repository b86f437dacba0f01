package dfs

import "slices"

// canonical closes the open ring seq and rotates it to the lexicographically
// smallest rotation over both directions.
func canonical(seq []string) []string {
	fwd := minimalRotation(seq)
	rev := slices.Clone(seq)
	slices.Reverse(rev)
	rev = minimalRotation(rev)

	pick := fwd
	if slices.Compare(rev, fwd) < 0 {
		pick = rev
	}

	return append(pick, pick[0])
}

// minimalRotation returns the lexicographically minimal rotation of s using
// Booth's algorithm in O(n). The result is a new slice.
func minimalRotation(s []string) []string {
	n := len(s)
	doubled := make([]string, 0, 2*n)
	doubled = append(append(doubled, s...), s...)
	f := make([]int, 2*n)
	for i := range f {
		f[i] = -1
	}
	k := 0
	for j := 1; j < 2*n; j++ {
		i := f[j-k-1]
		for i != -1 && doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k+i+1] {
				k = j - i - 1
			}
			i = f[i]
		}
		if doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k] {
				k = j
			}
			f[j-k] = -1
		} else {
			f[j-k] = i + 1
		}
	}

	out := make([]string, n, n+1)
	copy(out, doubled[k:k+n])

	return out
}
