package util

import "math/rand"

func SampleIndices(sliceLen int, count int) []int {
	var out []int
	if sliceLen == 0 {
		return out
	}

	if count > sliceLen {
		for i := 0; i < sliceLen; i++ {
			out = append(out, i)
		}
		return out
	}

	perm := rand.Perm(sliceLen)
	return append(out, perm[:count]...)
}

// Sample returns up to count distinct elements of items in random order.
func Sample[T any](items []T, count int) []T {
	var out []T
	for _, i := range SampleIndices(len(items), count) {
		out = append(out, items[i])
	}
	return out
}
