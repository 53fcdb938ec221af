package check

// suggestMaxDistance bounds how far a misspelling may be from a registered
// name before the suggestion is dropped as noise.
const suggestMaxDistance = 3

// closestName returns the candidate with the smallest edit distance to name,
// or "" when every candidate is further than suggestMaxDistance.
func closestName(name string, candidates []string) string {
	best := ""
	bestDistance := suggestMaxDistance + 1

	for _, candidate := range candidates {
		if distance := editDistance(name, candidate); distance < bestDistance {
			best = candidate
			bestDistance = distance
		}
	}

	return best
}

// editDistance computes the Levenshtein distance between two strings using a
// single O(min) column.
func editDistance(a, b string) int {
	s1 := []rune(a)
	s2 := []rune(b)

	if len(s2) == 0 {
		return len(s1)
	}

	column := make([]int, len(s1)+1)
	for i := 1; i <= len(s1); i++ {
		column[i] = i
	}

	for col, r2 := range s2 {
		column[0] = col + 1
		lastDiag := col

		for row, r1 := range s1 {
			oldDiag := column[row+1]

			cost := 0
			if r1 != r2 {
				cost = 1
			}

			column[row+1] = min(column[row+1]+1, column[row]+1, lastDiag+cost)
			lastDiag = oldDiag
		}
	}

	return column[len(s1)]
}
