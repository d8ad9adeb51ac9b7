package gateway

import (
	"context"
	"hash/fnv"
	"math/rand"
	"strconv"
	"time"

	json "github.com/goccy/go-json"

	"github.com/aladinbajra/youtube-trending-ai/internal/model"
)

const historyDays = 30

// GetVideoHistory returns a video's view time series. Live mode fetches the
// real series; sample mode, or any live failure, synthesizes a placeholder
// so history charts always have something to render. Synthesized series are
// presentation filler, not data — callers must not treat them as real.
func (g *Gateway) GetVideoHistory(ctx context.Context, videoID string) model.VideoHistory {
	if !g.sample {
		path := "/api/videos/" + videoID + "/history?_t=" + strconv.FormatInt(time.Now().UnixMilli(), 10)
		body, err := g.getJSON(ctx, path)
		if err == nil {
			var history model.VideoHistory
			if err := json.Unmarshal(body, &history); err == nil && len(history.Timestamps) > 0 {
				history.VideoID = videoID
				return history
			}
		}
		g.log.Warn().Err(err).Str("videoId", videoID).
			Msg("history fetch failed, synthesizing placeholder")
		fallbacksTotal.Inc()
	}
	return synthesizeHistory(videoID)
}

// synthesizeHistory builds a 30-day random walk with roughly linear growth.
// The generator is seeded from the video ID so repeated requests for the
// same video render the same curve.
func synthesizeHistory(videoID string) model.VideoHistory {
	seed := fnv.New64a()
	seed.Write([]byte(videoID))
	rnd := rand.New(rand.NewSource(int64(seed.Sum64())))

	base := 100_000 + rnd.Int63n(9_900_000)

	timestamps := make([]string, 0, historyDays)
	views := make([]int64, 0, historyDays)
	now := time.Now().UTC()
	for i := 0; i < historyDays; i++ {
		date := now.AddDate(0, 0, -(historyDays - i))
		timestamps = append(timestamps, date.Format("2006-01-02"))

		growth := float64(base)*0.1*float64(i)/float64(historyDays) + float64(rnd.Int63n(150_000)-50_000)
		value := base + int64(growth)
		if value < 0 {
			value = 0
		}
		views = append(views, value)
	}

	return model.VideoHistory{VideoID: videoID, Timestamps: timestamps, Views: views}
}
