// Package reviews aggregates product reviews and validates new submissions.
package reviews

import "github.com/shopspring/decimal"

// Review is one shopper review of a product. Date is YYYY-MM-DD.
type Review struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	Date    string `json:"date"`
}

// MinRating and MaxRating bound the star scale.
const (
	MinRating = 1
	MaxRating = 5
)

// Stats summarizes a set of reviews. Histogram maps each star value 1..5 to
// its count and is empty when there are no reviews.
type Stats struct {
	Average   float64     `json:"average"`
	Count     int         `json:"count"`
	Histogram map[int]int `json:"histogram"`
}

// Aggregate computes Stats. The average is the mean rating rounded half-up to
// one decimal. Ratings outside 1..5 count toward the average but not the
// histogram.
func Aggregate(reviews []Review) Stats {
	stats := Stats{Histogram: map[int]int{}}
	if len(reviews) == 0 {
		return stats
	}
	for star := MinRating; star <= MaxRating; star++ {
		stats.Histogram[star] = 0
	}
	sum := int64(0)
	for _, r := range reviews {
		sum += int64(r.Rating)
		if r.Rating >= MinRating && r.Rating <= MaxRating {
			stats.Histogram[r.Rating]++
		}
	}
	stats.Count = len(reviews)
	mean := decimal.NewFromInt(sum).Div(decimal.NewFromInt(int64(stats.Count)))
	stats.Average = mean.Round(1).InexactFloat64()
	return stats
}

// MaxBucket is the largest histogram count, never below 1, used to scale the
// distribution bars.
func (s Stats) MaxBucket() int {
	largest := 1
	for _, n := range s.Histogram {
		if n > largest {
			largest = n
		}
	}
	return largest
}

// Share returns the bar fraction for star, in [0, 1].
func (s Stats) Share(star int) float64 {
	return float64(s.Histogram[star]) / float64(s.MaxBucket())
}
