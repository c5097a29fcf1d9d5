package reviews

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func ratings(values ...int) []Review {
	out := make([]Review, 0, len(values))
	for _, v := range values {
		out = append(out, Review{Rating: v})
	}
	return out
}

func TestAggregateEmpty(t *testing.T) {
	stats := Aggregate(nil)
	require.Zero(t, stats.Count)
	require.Zero(t, stats.Average)
	require.Empty(t, stats.Histogram)
	require.Equal(t, 1, stats.MaxBucket())
	require.Zero(t, stats.Share(5))
}

func TestAggregateRoundsToOneDecimal(t *testing.T) {
	stats := Aggregate(ratings(5, 4, 5))
	require.Equal(t, 3, stats.Count)
	require.Equal(t, 4.7, stats.Average)
	require.Equal(t, map[int]int{1: 0, 2: 0, 3: 0, 4: 1, 5: 2}, stats.Histogram)
	require.Equal(t, 2, stats.MaxBucket())
	require.Equal(t, 0.5, stats.Share(4))
}

func TestAggregateRoundsHalfUp(t *testing.T) {
	cases := []struct {
		name    string
		ratings []int
		want    float64
	}{
		{"exact", []int{4, 4}, 4},
		{"x.25 rounds up", []int{5, 4, 4, 4}, 4.3},
		{"x.65 rounds up", append(repeat(5, 13), repeat(4, 7)...), 4.7},
		{"x.75 rounds up", []int{5, 5, 5, 4}, 4.8},
		{"x.33 rounds down", []int{1, 2, 1}, 1.3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Aggregate(ratings(tc.ratings...)).Average)
		})
	}
}

func repeat(v, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func TestAggregateIgnoresOutOfRangeInHistogram(t *testing.T) {
	stats := Aggregate(ratings(5, 0))
	require.Equal(t, 2, stats.Count)
	require.Equal(t, 2.5, stats.Average)
	require.Len(t, stats.Histogram, 5)
	require.Equal(t, 1, stats.Histogram[5])
}

func TestSeedStats(t *testing.T) {
	stats := Aggregate(SeedFor("1"))
	require.Equal(t, 2, stats.Count)
	require.Equal(t, 4.5, stats.Average)
	require.Nil(t, SeedFor("404"))
}
