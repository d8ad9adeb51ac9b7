package model

// CountryAggregate is the per-country statistics row shown in the dashboard's
// top-countries table. Recomputed in full from the current video list on
// every call, never updated incrementally.
type CountryAggregate struct {
	Rank                     int     `json:"rank"`
	CountryCode              string  `json:"countryCode"`
	CountryName              string  `json:"name"`
	VideoCount               int     `json:"videoCount"`
	AverageEngagementPercent float64 `json:"engagement"`
}

// VideoHistory is the per-video view time series. When the upstream API has
// no real series the gateway synthesizes a placeholder; consumers must not
// treat the values as real measurements.
type VideoHistory struct {
	VideoID    string   `json:"videoId"`
	Timestamps []string `json:"timestamps"`
	Views      []int64  `json:"views"`
}

// Stats is the dataset-level summary consumed by page headers. The snake_case
// keys mirror the upstream API payload.
type Stats struct {
	TotalVideos    int   `json:"total_videos"`
	TrendingVideos int   `json:"trending_videos"`
	TotalViews     int64 `json:"total_views"`
	TotalLikes     int64 `json:"total_likes"`
	AverageViews   int64 `json:"average_views"`
	Countries      int   `json:"countries"`
	DataPoints     int   `json:"data_points"`
}
