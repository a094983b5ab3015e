package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMedian(t *testing.T) {
	assert.Nil(t, Median(nil))
	assert.Equal(t, 3.0, *Median([]float64{4, 2, 3}))
	assert.Equal(t, 3.5, *Median([]float64{5, 2, 4, 3}))

	input := []float64{3, 1, 2}
	Median(input)
	assert.Equal(t, []float64{3, 1, 2}, input)
}

func TestMean(t *testing.T) {
	assert.Nil(t, Mean([]float64{}))
	assert.InDelta(t, 2.5, *Mean([]float64{1, 2, 3, 4}), 1e-12)
}

func TestHistogramMedian(t *testing.T) {
	cases := []struct {
		name      string
		histogram map[string]int
		want      *float64
	}{
		{"even count averages middle pair", map[string]int{"90": 2, "70": 2, "50": 0}, ptr(80)},
		{"odd count", map[string]int{"40": 1, "100": 1, "60": 1}, ptr(60)},
		{"negative counts ignored", map[string]int{"10": -5, "30": 1}, ptr(30)},
		{"equivalent keys merged", map[string]int{"70": 1, " 70": 1, "90": 1}, ptr(70)},
		{"empty", nil, nil},
		{"only zero counts", map[string]int{"50": 0}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := HistogramMedian(tc.histogram)
			require.NoError(t, err)
			if tc.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.InDelta(t, *tc.want, *got, 1e-12)
		})
	}

	_, err := HistogramMedian(map[string]int{"abc": 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestHistogramMedianHugeCounts(t *testing.T) {
	cases := []struct {
		histogram map[string]int
		want      float64
	}{
		{map[string]int{"50": math.MaxInt64, "60": 1}, 50},
		{map[string]int{"50": 1 << 60}, 50},
		{map[string]int{"20": math.MaxInt64, "80": math.MaxInt64}, 50},
		{map[string]int{"20": math.MaxInt64, "30": math.MaxInt64, "80": math.MaxInt64}, 30},
	}
	for _, tc := range cases {
		var got *float64
		var err error
		require.NotPanics(t, func() { got, err = HistogramMedian(tc.histogram) })
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, tc.want, *got)
	}
}
