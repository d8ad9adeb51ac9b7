package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/aladinbajra/youtube-trending-ai/internal/model"
)

// ViewsByDay is one point of the views-over-time series.
type ViewsByDay struct {
	Date  string `json:"date"` // calendar date, "2025-11-03"
	Views int64  `json:"views"`
}

// ViewsOverTime groups videos by publish date, sums views per day, and
// returns the series in ascending date order. A non-zero cutoff drops days
// after it; the sample corpus carries a synthetic future-dated tail that the
// caller can trim this way.
func ViewsOverTime(videos []model.Video, cutoff time.Time) []ViewsByDay {
	perDay := make(map[string]int64)
	for i := range videos {
		v := &videos[i]
		t, ok := v.PublishedTime()
		if !ok || v.Views == nil {
			continue
		}
		if !cutoff.IsZero() && t.After(cutoff) {
			continue
		}
		perDay[t.UTC().Format("2006-01-02")] += *v.Views
	}

	dates := make([]string, 0, len(perDay))
	for date := range perDay {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	series := make([]ViewsByDay, 0, len(dates))
	for _, date := range dates {
		series = append(series, ViewsByDay{Date: date, Views: perDay[date]})
	}
	return series
}

// TopVideo is one bar of the top-videos chart.
type TopVideo struct {
	Title         string  `json:"title"`
	Views         int64   `json:"views"`
	ViralityScore float64 `json:"viralityScore"`
}

// TopVideosByViews returns the n most-viewed videos, highest first.
func TopVideosByViews(videos []model.Video, n int) []TopVideo {
	withViews := make([]model.Video, 0, len(videos))
	for _, v := range videos {
		if v.ViewCount() > 0 {
			withViews = append(withViews, v)
		}
	}
	sort.SliceStable(withViews, func(i, j int) bool {
		return withViews[i].ViewCount() > withViews[j].ViewCount()
	})
	if len(withViews) > n {
		withViews = withViews[:n]
	}

	top := make([]TopVideo, 0, len(withViews))
	for _, v := range withViews {
		top = append(top, TopVideo{
			Title:         v.Title,
			Views:         v.ViewCount(),
			ViralityScore: v.Virality(),
		})
	}
	return top
}

// HistogramBin is one fixed-width bin of the virality histogram.
type HistogramBin struct {
	Range string `json:"range"`
	Count int    `json:"count"`
}

// ViralityHistogram partitions videos into the fixed score bins
// [0,20) [20,40) [40,60) [60,80) [80,100]. A missing score counts as 0 and
// lands in the first bin, so the bin counts always sum to len(videos).
func ViralityHistogram(videos []model.Video) []HistogramBin {
	bins := []HistogramBin{
		{Range: "0-20"}, {Range: "20-40"}, {Range: "40-60"},
		{Range: "60-80"}, {Range: "80-100"},
	}
	for i := range videos {
		score := videos[i].Virality()
		idx := int(score / 20)
		if idx < 0 {
			idx = 0
		}
		if idx > 4 {
			idx = 4
		}
		bins[idx].Count++
	}
	return bins
}

// DistributionBand is one named band of the virality distribution donut.
type DistributionBand struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// ViralityDistribution counts videos per named score band.
func ViralityDistribution(videos []model.Video) []DistributionBand {
	bands := []DistributionBand{
		{Name: "Viral (75-100)"},
		{Name: "High (50-75)"},
		{Name: "Medium (25-50)"},
		{Name: "Low (0-25)"},
	}
	for i := range videos {
		score := videos[i].Virality()
		switch {
		case score >= 75:
			bands[0].Value++
		case score >= 50:
			bands[1].Value++
		case score >= 25:
			bands[2].Value++
		default:
			bands[3].Value++
		}
	}
	return bands
}

// CountryPerformance is one row of the all-countries performance chart.
// Unlike the top-countries table this keeps every country and uses the
// upstream per-video engagement score as a plain mean.
type CountryPerformance struct {
	Country       string  `json:"country"`
	VideoCount    int     `json:"videoCount"`
	AvgViews      int64   `json:"avgViews"`
	AvgEngagement float64 `json:"avgEngagement"`
}

// CountryPerformanceAll aggregates every country (missing country groups as
// "Unknown"), sorted by video count descending.
func CountryPerformanceAll(videos []model.Video) []CountryPerformance {
	type acc struct {
		count           int
		totalViews      int64
		totalEngagement float64
		firstSeen       int
	}
	accumulators := make(map[string]*acc)
	order := 0

	for i := range videos {
		v := &videos[i]
		code := v.Country
		if code == "" {
			code = "Unknown"
		}
		a := accumulators[code]
		if a == nil {
			a = &acc{firstSeen: order}
			order++
			accumulators[code] = a
		}
		a.count++
		a.totalViews += v.ViewCount()
		a.totalEngagement += v.Engagement()
	}

	codes := make([]string, 0, len(accumulators))
	for code := range accumulators {
		codes = append(codes, code)
	}
	sort.SliceStable(codes, func(i, j int) bool {
		a, b := accumulators[codes[i]], accumulators[codes[j]]
		if a.count != b.count {
			return a.count > b.count
		}
		return a.firstSeen < b.firstSeen
	})

	rows := make([]CountryPerformance, 0, len(codes))
	for _, code := range codes {
		a := accumulators[code]
		rows = append(rows, CountryPerformance{
			Country:       code,
			VideoCount:    a.count,
			AvgViews:      int64(math.Round(float64(a.totalViews) / float64(a.count))),
			AvgEngagement: a.totalEngagement / float64(a.count),
		})
	}
	return rows
}

// ScatterPoint is one point of the engagement-vs-views scatter plot.
type ScatterPoint struct {
	Views         int64   `json:"views"`
	Engagement    float64 `json:"engagement"`
	Comments      int64   `json:"comments"`
	ViralityScore float64 `json:"viralityScore"`
	Title         string  `json:"title"`
}

// EngagementScatter projects videos with both views and comments into
// scatter points, capped at limit to keep rendering tractable.
func EngagementScatter(videos []model.Video, limit int) []ScatterPoint {
	points := make([]ScatterPoint, 0, limit)
	for i := range videos {
		v := &videos[i]
		if v.ViewCount() == 0 || v.CommentCount() == 0 {
			continue
		}
		points = append(points, ScatterPoint{
			Views:         v.ViewCount(),
			Engagement:    v.Engagement(),
			Comments:      v.CommentCount(),
			ViralityScore: v.Virality(),
			Title:         v.Title,
		})
		if limit > 0 && len(points) >= limit {
			break
		}
	}
	return points
}

// TimelinePoint is one date bucket of the multi-video timeline: Series[i]
// is the i-th top video's view count if it was published on or before the
// bucket date, else 0.
type TimelinePoint struct {
	Date   string  `json:"date"`
	Series []int64 `json:"series"`
}

// MultiVideoTimeline builds the top-5 timeline: over the most recent
// maxDates unique publish dates in the batch, each of the five most-viewed
// videos contributes a step plateau of its current view count from its
// publish date onward. This approximates "views so far" — no true historical
// series exists in the batch, so the plateau is flat rather than a growth
// curve.
func MultiVideoTimeline(videos []model.Video, maxDates int) (titles []string, points []TimelinePoint) {
	top := make([]model.Video, 0, len(videos))
	for _, v := range videos {
		if v.ViewCount() > 0 {
			top = append(top, v)
		}
	}
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].ViewCount() > top[j].ViewCount()
	})
	if len(top) > 5 {
		top = top[:5]
	}

	titles = make([]string, len(top))
	for i, v := range top {
		titles[i] = v.Title
	}

	seen := make(map[string]struct{})
	dates := make([]string, 0, len(videos))
	for i := range videos {
		date := videos[i].PublishedDate()
		if date == "" {
			continue
		}
		if _, dup := seen[date]; dup {
			continue
		}
		seen[date] = struct{}{}
		dates = append(dates, date)
	}
	sort.Strings(dates)
	if maxDates > 0 && len(dates) > maxDates {
		dates = dates[len(dates)-maxDates:]
	}

	points = make([]TimelinePoint, 0, len(dates))
	for _, date := range dates {
		series := make([]int64, len(top))
		for i, v := range top {
			// ISO date strings compare chronologically.
			if d := v.PublishedDate(); d != "" && d <= date {
				series[i] = v.ViewCount()
			}
		}
		points = append(points, TimelinePoint{Date: date, Series: series})
	}
	return titles, points
}

// HeatmapCell is one cell of the 7×24 publishing heatmap.
type HeatmapCell struct {
	Day   string `json:"day"`
	Hour  int    `json:"hour"`
	Count int    `json:"count"`
}

// heatmapDays is the row order of the emitted grid, Monday first.
var heatmapDays = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

// PublishingHeatmap buckets every video by (weekday, hour) of its publish
// time into a full 7×24 grid. Bucketing is UTC: the server has no viewer
// timezone. Unparseable dates are skipped silently.
func PublishingHeatmap(videos []model.Video) []HeatmapCell {
	var counts [7][24]int
	for i := range videos {
		t, ok := videos[i].PublishedTime()
		if !ok {
			continue
		}
		utc := t.UTC()
		counts[utc.Weekday()][utc.Hour()]++
	}

	cells := make([]HeatmapCell, 0, 7*24)
	for _, day := range heatmapDays {
		name := day.String()[:3]
		for hour := 0; hour < 24; hour++ {
			cells = append(cells, HeatmapCell{Day: name, Hour: hour, Count: counts[day][hour]})
		}
	}
	return cells
}
