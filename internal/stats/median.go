package stats

import (
	"fmt"
	"math/big"
	"sort"
	"strconv"
	"strings"
)

// Median returns the median of values, or nil for an empty slice.
// The input is not modified.
func Median(values []float64) *float64 {
	if len(values) == 0 {
		return nil
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return ptr((sorted[mid-1] + sorted[mid]) / 2)
	}
	return ptr(sorted[mid])
}

// Mean returns the arithmetic mean of values, or nil for an empty slice.
func Mean(values []float64) *float64 {
	if len(values) == 0 {
		return nil
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return ptr(sum / float64(len(values)))
}

type histogramBucket struct {
	score int
	count *big.Int
}

// HistogramMedian returns the median of the scores behind a score -> count
// histogram without expanding it, or nil when no score was observed.
// Non-positive counts contribute nothing. Totals are kept in big.Int so
// arbitrarily large counts cannot overflow.
func HistogramMedian(histogram map[string]int) (*float64, error) {
	merged := make(map[int]*big.Int, len(histogram))
	total := new(big.Int)
	for bucket, count := range histogram {
		score, err := strconv.Atoi(strings.TrimSpace(bucket))
		if err != nil {
			return nil, fmt.Errorf("%w: score bucket %q is not an integer", ErrInvalidInput, bucket)
		}
		if count <= 0 {
			continue
		}
		n := big.NewInt(int64(count))
		if existing, ok := merged[score]; ok {
			existing.Add(existing, n)
		} else {
			merged[score] = n
		}
		total.Add(total, n)
	}
	if total.Sign() == 0 {
		return nil, nil
	}

	buckets := make([]histogramBucket, 0, len(merged))
	for score, count := range merged {
		buckets = append(buckets, histogramBucket{score: score, count: count})
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].score < buckets[j].score })

	// Zero-based ranks of the middle element(s); equal when total is odd.
	one := big.NewInt(1)
	lowRank := new(big.Int).Rsh(new(big.Int).Sub(total, one), 1)
	highRank := new(big.Int).Rsh(total, 1)

	var low, high int
	lowFound := false
	seen := new(big.Int)
	for _, b := range buckets {
		seen.Add(seen, b.count)
		if !lowFound && seen.Cmp(lowRank) > 0 {
			low, lowFound = b.score, true
		}
		if seen.Cmp(highRank) > 0 {
			high = b.score
			break
		}
	}
	return ptr((float64(low) + float64(high)) / 2), nil
}

func ptr(v float64) *float64 {
	return &v
}
