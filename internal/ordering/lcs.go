package ordering

// LCS returns the length of the longest common subsequence of the two label
// sequences. Labels are compared as atomic tokens. Rolling rows keep the
// space at O(min side) of the usual DP table.
func LCS(a, b []string) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	if len(b) > len(a) {
		a, b = b, a
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)

	for i := 0; i < len(a); i++ {
		for j := 0; j < len(b); j++ {
			if a[i] == b[j] {
				curr[j+1] = prev[j] + 1
			} else if prev[j+1] >= curr[j] {
				curr[j+1] = prev[j+1]
			} else {
				curr[j+1] = curr[j]
			}
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}
