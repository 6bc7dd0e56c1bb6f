package standings

import "sort"

// rankFirst ranks values with ties broken by input order.
func rankFirst(values []float64, descending bool) []int {
	order := make([]int, len(values))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		a, b := values[order[i]], values[order[j]]
		if descending {
			return a > b
		}
		return a < b
	})

	out := make([]int, len(values))
	for pos, idx := range order {
		out[idx] = pos + 1
	}
	return out
}

// rankMin gives tied values the lowest position of their group.
func rankMin(values []float64, descending bool) []int {
	return rankTies(values, descending, false)
}

// rankMax gives tied values the highest position of their group.
func rankMax(values []float64, descending bool) []int {
	return rankTies(values, descending, true)
}

func rankTies(values []float64, descending, useMax bool) []int {
	order := make([]int, len(values))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		a, b := values[order[i]], values[order[j]]
		if descending {
			return a > b
		}
		return a < b
	})

	out := make([]int, len(values))
	for start := 0; start < len(order); {
		end := start + 1
		for end < len(order) && values[order[end]] == values[order[start]] {
			end++
		}
		rank := start + 1
		if useMax {
			rank = end
		}
		for _, idx := range order[start:end] {
			out[idx] = rank
		}
		start = end
	}
	return out
}

// rankTuples ranks pairs ascending lexicographically; equal pairs share the lowest position.
func rankTuples(values [][2]int) []int {
	order := make([]int, len(values))
	for i := range order {
		order[i] = i
	}
	less := func(a, b [2]int) bool {
		if a[0] != b[0] {
			return a[0] < b[0]
		}
		return a[1] < b[1]
	}
	sort.SliceStable(order, func(i, j int) bool {
		return less(values[order[i]], values[order[j]])
	})

	out := make([]int, len(values))
	for start := 0; start < len(order); {
		end := start + 1
		for end < len(order) && values[order[end]] == values[order[start]] {
			end++
		}
		for _, idx := range order[start:end] {
			out[idx] = start + 1
		}
		start = end
	}
	return out
}
