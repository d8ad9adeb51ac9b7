package analytics

import (
	"testing"

	"github.com/aladinbajra/youtube-trending-ai/internal/model"
)

func i64p(v int64) *int64 { return &v }

func f64p(v float64) *float64 { return &v }

func strp(s string) *string { return &s }

func TestAggregateCountries_StabilityFloor(t *testing.T) {
	videos := []model.Video{
		// Below the 10k floor: counted, but engagement ignored.
		{VideoID: "a", Country: "US", Views: i64p(100), Likes: i64p(10), Comments: i64p(5)},
		// (200+50)/20000*100 = 1.25
		{VideoID: "b", Country: "US", Views: i64p(20_000), Likes: i64p(200), Comments: i64p(50)},
	}

	rows := AggregateCountries(videos)
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	if rows[0].VideoCount != 2 {
		t.Errorf("videoCount = %d, want 2", rows[0].VideoCount)
	}
	if rows[0].AverageEngagementPercent != 1.25 {
		t.Errorf("engagement = %.2f, want 1.25", rows[0].AverageEngagementPercent)
	}
}

func TestAggregateCountries_EngagementClamp(t *testing.T) {
	videos := []model.Video{
		// (100000+0)/20000*100 = 500, clamped to 20.
		{VideoID: "a", Country: "BR", Views: i64p(20_000), Likes: i64p(100_000)},
	}

	rows := AggregateCountries(videos)
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	if rows[0].AverageEngagementPercent != 20 {
		t.Errorf("engagement = %.2f, want clamp at 20", rows[0].AverageEngagementPercent)
	}
}

func TestAggregateCountries_ViewsWeightedMean(t *testing.T) {
	videos := []model.Video{
		// rate 1% at weight 10000, rate 4% at weight 30000
		// weighted mean = (1*10000 + 4*30000) / 40000 = 3.25
		{VideoID: "a", Country: "DE", Views: i64p(10_000), Likes: i64p(100)},
		{VideoID: "b", Country: "DE", Views: i64p(30_000), Likes: i64p(1_200)},
	}

	rows := AggregateCountries(videos)
	if rows[0].AverageEngagementPercent != 3.25 {
		t.Errorf("engagement = %.2f, want 3.25", rows[0].AverageEngagementPercent)
	}
}

func TestAggregateCountries_TopFiveByCount(t *testing.T) {
	var videos []model.Video
	counts := map[string]int{"US": 6, "GB": 5, "IN": 4, "JP": 3, "BR": 2, "FR": 1}
	for code, n := range counts {
		for i := 0; i < n; i++ {
			videos = append(videos, model.Video{VideoID: code, Country: code, Views: i64p(50_000)})
		}
	}

	rows := AggregateCountries(videos)
	if len(rows) != 5 {
		t.Fatalf("rows = %d, want 5", len(rows))
	}
	wantOrder := []string{"US", "GB", "IN", "JP", "BR"}
	for i, want := range wantOrder {
		if rows[i].CountryCode != want {
			t.Errorf("rank %d = %s, want %s", i+1, rows[i].CountryCode, want)
		}
		if rows[i].Rank != i+1 {
			t.Errorf("rank field = %d, want %d", rows[i].Rank, i+1)
		}
	}
	if rows[0].CountryName != "United States" {
		t.Errorf("country name = %q, want United States", rows[0].CountryName)
	}
}

func TestAggregateCountries_SkipsMissingCountry(t *testing.T) {
	videos := []model.Video{
		{VideoID: "a", Views: i64p(50_000)},
		{VideoID: "b", Country: "US", Views: i64p(50_000)},
	}

	rows := AggregateCountries(videos)
	if len(rows) != 1 || rows[0].CountryCode != "US" {
		t.Fatalf("rows = %+v, want single US row", rows)
	}
	if rows[0].VideoCount != 1 {
		t.Errorf("videoCount = %d, want 1", rows[0].VideoCount)
	}
}

func TestAggregateCountries_NoQualifyingViews(t *testing.T) {
	videos := []model.Video{
		{VideoID: "a", Country: "KR", Views: i64p(500), Likes: i64p(50)},
	}

	rows := AggregateCountries(videos)
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	if rows[0].AverageEngagementPercent != 0 {
		t.Errorf("engagement with no qualifying videos = %.2f, want 0", rows[0].AverageEngagementPercent)
	}
}

func TestAggregateCountries_Empty(t *testing.T) {
	if rows := AggregateCountries(nil); len(rows) != 0 {
		t.Errorf("rows = %d, want 0", len(rows))
	}
}
