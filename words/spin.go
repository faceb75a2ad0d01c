package words

import "slices"

// shifted returns the cyclic shift of r starting at position i.
func shifted(r Relator, i int) Relator {
	result := make(Relator, 0, len(r))
	result = append(result, r[i:]...)
	result = append(result, r[:i]...)

	return result
}

// SpinShort expands relators by all cyclic shifts.
//
// A relator participates if its length is at most max(average length,
// maxDegree); longer relators are passed through unshifted, since lifting a
// shifted copy of a relator much longer than the degree of the graph rarely
// prunes anything. The result is sorted and deduplicated: a periodic
// relator such as "abab" has identical shifts.
func SpinShort(relators []Relator, maxDegree int) []Relator {
	if len(relators) == 0 {
		return nil
	}

	total := 0
	for _, r := range relators {
		total += len(r)
	}
	avg := (total + len(relators) - 1) / len(relators)
	maxLen := max(avg, maxDegree)

	var result []Relator
	for _, r := range relators {
		if len(r) <= maxLen {
			for i := range r {
				result = append(result, shifted(r, i))
			}
		} else {
			result = append(result, slices.Clone(r))
		}
	}

	slices.SortFunc(result, func(a, b Relator) int {
		return slices.Compare(a, b)
	})

	return slices.CompactFunc(result, func(a, b Relator) bool {
		return slices.Equal(a, b)
	})
}
