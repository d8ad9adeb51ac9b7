// Package analytics holds the pure in-memory transforms behind the dashboard:
// per-country aggregation, list composition (search/filter/sort/paginate),
// chart-data shaping, and headline metrics. Every function derives fresh
// slices from its input; video records are never mutated, so the same batch
// can feed any number of transforms concurrently.
package analytics

import (
	"math"
	"sort"

	"github.com/aladinbajra/youtube-trending-ai/internal/model"
	"github.com/aladinbajra/youtube-trending-ai/pkg/country"
)

const (
	// minViewsForStability ignores tiny denominators: below this floor the
	// (likes+comments)/views ratio is division-amplified noise.
	minViewsForStability = 10_000

	// maxReasonableEngagement caps per-video engagement so bot-inflated
	// ratios cannot skew a country's average.
	maxReasonableEngagement = 20.0

	topCountryCount = 5
)

type countryAccumulator struct {
	videoCount         int
	weightedNumerator  float64 // sum(engagement% * views) over qualifying videos
	weightSum          float64 // sum(views) over qualifying videos
	firstSeen          int     // insertion order, used only to break count ties
}

// AggregateCountries reduces a video list into the top-5 country rows by
// video count. A video's engagement contributes to its country's
// views-weighted mean only when its view count clears the stability floor;
// the per-video rate is clamped to [0, 20] and non-finite values are dropped.
func AggregateCountries(videos []model.Video) []model.CountryAggregate {
	accumulators := make(map[string]*countryAccumulator)
	order := 0

	for i := range videos {
		v := &videos[i]
		if v.Country == "" {
			continue
		}

		acc := accumulators[v.Country]
		if acc == nil {
			acc = &countryAccumulator{firstSeen: order}
			order++
			accumulators[v.Country] = acc
		}
		acc.videoCount++

		views := v.ViewCount()
		if views < minViewsForStability {
			continue
		}
		rate := float64(v.LikeCount()+v.CommentCount()) / float64(views) * 100
		if math.IsNaN(rate) || math.IsInf(rate, 0) {
			continue
		}
		if rate < 0 {
			rate = 0
		}
		if rate > maxReasonableEngagement {
			rate = maxReasonableEngagement
		}
		acc.weightedNumerator += rate * float64(views)
		acc.weightSum += float64(views)
	}

	codes := make([]string, 0, len(accumulators))
	for code := range accumulators {
		codes = append(codes, code)
	}
	sort.SliceStable(codes, func(i, j int) bool {
		a, b := accumulators[codes[i]], accumulators[codes[j]]
		if a.videoCount != b.videoCount {
			return a.videoCount > b.videoCount
		}
		return a.firstSeen < b.firstSeen
	})
	if len(codes) > topCountryCount {
		codes = codes[:topCountryCount]
	}

	rows := make([]model.CountryAggregate, 0, len(codes))
	for i, code := range codes {
		acc := accumulators[code]
		avg := 0.0
		if acc.weightSum > 0 {
			avg = acc.weightedNumerator / acc.weightSum
		}
		rows = append(rows, model.CountryAggregate{
			Rank:                     i + 1,
			CountryCode:              code,
			CountryName:              country.Name(code),
			VideoCount:               acc.videoCount,
			AverageEngagementPercent: round2(avg),
		})
	}
	return rows
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
