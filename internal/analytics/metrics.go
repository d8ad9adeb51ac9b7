package analytics

import (
	"math"

	"github.com/aladinbajra/youtube-trending-ai/internal/model"
)

// KeyMetrics are the headline numbers at the top of the dashboard.
type KeyMetrics struct {
	TotalViews    int64   `json:"totalViews"`
	AvgEngagement float64 `json:"avgEngagement"` // (likes+comments)/views over the whole batch, percent
	AvgComments   int64   `json:"avgComments"`
}

// ComputeKeyMetrics totals the batch and derives the aggregate engagement
// rate: (Σlikes + Σcomments) / Σviews * 100.
func ComputeKeyMetrics(videos []model.Video) KeyMetrics {
	if len(videos) == 0 {
		return KeyMetrics{}
	}

	var totalViews, totalLikes, totalComments int64
	for i := range videos {
		totalViews += videos[i].ViewCount()
		totalLikes += videos[i].LikeCount()
		totalComments += videos[i].CommentCount()
	}

	avgEngagement := 0.0
	if totalViews > 0 {
		avgEngagement = float64(totalLikes+totalComments) / float64(totalViews) * 100
	}

	return KeyMetrics{
		TotalViews:    totalViews,
		AvgEngagement: round2(avgEngagement),
		AvgComments:   totalComments / int64(len(videos)),
	}
}

// ViralityIndicators are batch averages of the upstream virality components.
type ViralityIndicators struct {
	GrowthVelocity   int `json:"growthVelocity"`
	AudienceReach    int `json:"audienceReach"`
	TrendingDuration int `json:"trendingDuration"`
}

// ComputeViralityIndicators averages the component scores across the batch,
// rounded to whole percents.
func ComputeViralityIndicators(videos []model.Video) ViralityIndicators {
	if len(videos) == 0 {
		return ViralityIndicators{}
	}

	var growth, reach, duration float64
	for i := range videos {
		v := &videos[i]
		growth += float64Or0(v.GrowthVelocity)
		reach += float64Or0(v.AudienceReach)
		duration += float64Or0(v.TrendingDuration)
	}

	n := float64(len(videos))
	return ViralityIndicators{
		GrowthVelocity:   int(math.Round(growth / n)),
		AudienceReach:    int(math.Round(reach / n)),
		TrendingDuration: int(math.Round(duration / n)),
	}
}

func float64Or0(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}
