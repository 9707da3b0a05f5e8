package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Present returns the non-NaN values of x (allocates a copy).
func Present(x []float64) []float64 {
	out := make([]float64, 0, len(x))
	for _, v := range x {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}

// Mean computes the average of the present values of a slice.
func Mean(x []float64) float64 {
	p := Present(x)
	if len(p) == 0 {
		return 0
	}
	return stat.Mean(p, nil)
}

// PopVariance computes the population variance (divides by n) of the present values.
func PopVariance(x []float64) float64 {
	p := Present(x)
	n := float64(len(p))
	if n < 2 {
		return 0
	}
	_, v := stat.MeanVariance(p, nil)
	return v * (n - 1) / n
}

// PopStd computes the population standard deviation of the present values.
func PopStd(x []float64) float64 {
	return math.Sqrt(PopVariance(x))
}

// MostFrequent returns the most frequent value among the entries not marked missing.
// Ties go to the lexicographically smallest value. ok is false when nothing is present.
func MostFrequent(values []string, missing []bool) (mode string, ok bool) {
	counts := make(map[string]int)
	for i, v := range values {
		if missing != nil && missing[i] {
			continue
		}
		counts[v]++
	}
	if len(counts) == 0 {
		return "", false
	}

	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	maxCount := 0
	for _, k := range keys {
		if counts[k] > maxCount {
			maxCount = counts[k]
			mode = k
		}
	}
	return mode, true
}
