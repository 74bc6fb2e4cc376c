package textstats

import "slices"

// FrequencyTable maps each distinct token to its number of occurrences.
type FrequencyTable map[string]int

// CountFrequencies builds a FrequencyTable in a single pass over tokens.
func CountFrequencies(tokens []string) FrequencyTable {
	freq := make(FrequencyTable, len(tokens))
	for _, t := range tokens {
		freq[t]++
	}
	return freq
}

// Total returns the sum of all counts, which equals the number of tokens the
// table was built from.
func (f FrequencyTable) Total() int {
	total := 0
	for _, n := range f {
		total += n
	}
	return total
}

// TopWords returns at most n distinct tokens ordered by descending frequency.
//
// The whole token sequence is stable-sorted by frequency before duplicates
// are removed, so words of equal frequency keep the order in which they
// first appear in the text. An empty sequence, or n <= 0, yields nil.
func TopWords(tokens []string, n int) []string {
	if len(tokens) == 0 || n <= 0 {
		return nil
	}
	freq := CountFrequencies(tokens)

	sorted := slices.Clone(tokens)
	slices.SortStableFunc(sorted, func(a, b string) int {
		return freq[b] - freq[a]
	})

	seen := make(map[string]struct{}, min(n, len(freq)))
	top := make([]string, 0, min(n, len(freq)))
	for _, t := range sorted {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		top = append(top, t)
		if len(top) == n {
			break
		}
	}
	return top
}
