// Package gateway is the single point of contact with the upstream Tube
// Virality data API. It runs in one of two modes, fixed at construction from
// the injected config: live (HTTP to the backend) or sample (the bundled
// static corpus). In live mode any transport, status, or decode failure
// falls back to the sample corpus — the video contract is "always return an
// array", trading freshness for availability on a read-only dashboard.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/aladinbajra/youtube-trending-ai/internal/category"
	"github.com/aladinbajra/youtube-trending-ai/internal/model"
)

// ErrUnavailable reports that the upstream backend cannot serve a request
// and no fallback content exists for it (AI endpoints, notably).
var ErrUnavailable = errors.New("upstream backend unavailable")

// Config selects the gateway mode and endpoints. Constructed once at startup
// from the application config and injected; the gateway never reads the
// environment itself.
type Config struct {
	BackendURL    string
	UseSampleData bool
	SamplePath    string       // optional override of the embedded corpus
	HTTPClient    *http.Client // optional; defaults to http.DefaultClient
}

// VideoQuery are the upstream list parameters.
type VideoQuery struct {
	Limit    int
	Offset   int
	Category string
}

func (q VideoQuery) normalized() VideoQuery {
	if q.Limit <= 0 {
		q.Limit = 100
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
	q.Category = strings.ToLower(strings.TrimSpace(q.Category))
	if q.Category == "" {
		q.Category = "all"
	}
	return q
}

// Gateway fetches video data from the backend or the sample corpus.
type Gateway struct {
	baseURL    string
	sample     bool
	samplePath string
	client     *http.Client
	cache      *Cache
	log        zerolog.Logger
}

// New builds a Gateway from the injected config.
func New(cfg Config, cache *Cache, logger zerolog.Logger) *Gateway {
	client := cfg.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	return &Gateway{
		baseURL:    strings.TrimRight(cfg.BackendURL, "/"),
		sample:     cfg.UseSampleData || cfg.BackendURL == "",
		samplePath: cfg.SamplePath,
		client:     client,
		cache:      cache,
		log:        logger,
	}
}

// UsingSampleData reports whether the gateway serves the bundled corpus.
func (g *Gateway) UsingSampleData() bool { return g.sample }

// BackendURL returns the configured upstream base URL ("" in sample mode).
func (g *Gateway) BackendURL() string { return g.baseURL }

// GetVideos returns a video batch. Live mode lets the backend filter by
// category; sample mode (and the live-failure fallback) classifies locally
// since a static file has no server behind it. The result is always a valid
// array — on total failure it is empty, never an error surfaced upward.
func (g *Gateway) GetVideos(ctx context.Context, q VideoQuery) []model.Video {
	q = q.normalized()

	if !g.sample {
		videos, err := g.fetchLive(ctx, q)
		if err == nil {
			return videos
		}
		g.log.Warn().Err(err).Str("category", q.Category).
			Msg("live fetch failed, falling back to sample data")
		fallbacksTotal.Inc()
	}

	videos, err := g.loadSample()
	if err != nil {
		g.log.Error().Err(err).Msg("sample corpus unavailable")
		return []model.Video{}
	}
	videos = category.Classify(videos, q.Category)
	return sliceWindow(videos, q.Offset, q.Limit)
}

// fetchLive performs the raw backend call. It reports failures to the
// caller; the fallback decision lives in GetVideos so both paths stay
// independently testable.
func (g *Gateway) fetchLive(ctx context.Context, q VideoQuery) ([]model.Video, error) {
	cacheKey := fmt.Sprintf("videos:limit=%d:offset=%d:category=%s", q.Limit, q.Offset, q.Category)
	if data := g.cache.Get(ctx, cacheKey); data != nil {
		var videos []model.Video
		if err := json.Unmarshal(data, &videos); err == nil {
			return videos, nil
		}
		// Corrupt cache entry: ignore and refetch.
	}

	params := url.Values{}
	params.Set("limit", strconv.Itoa(q.Limit))
	params.Set("offset", strconv.Itoa(q.Offset))
	params.Set("_t", strconv.FormatInt(time.Now().UnixMilli(), 10))
	if q.Category != "all" {
		params.Set("category", q.Category)
	}

	body, err := g.getJSON(ctx, "/api/videos?"+params.Encode())
	if err != nil {
		return nil, err
	}

	var videos []model.Video
	if err := json.Unmarshal(body, &videos); err != nil {
		return nil, fmt.Errorf("decode videos: %w", err)
	}
	g.cache.Set(ctx, cacheKey, body, videoCacheTTL)
	return videos, nil
}

// GetStats returns the dataset summary: proxied from the backend in live
// mode, computed over the sample corpus otherwise (or when the backend is
// down).
func (g *Gateway) GetStats(ctx context.Context) model.Stats {
	if !g.sample {
		body, err := g.getJSON(ctx, "/api/stats?_t="+strconv.FormatInt(time.Now().UnixMilli(), 10))
		if err == nil {
			var stats model.Stats
			if err := json.Unmarshal(body, &stats); err == nil {
				return stats
			}
		}
		g.log.Warn().Err(err).Msg("stats fetch failed, computing from sample data")
		fallbacksTotal.Inc()
	}

	videos, err := g.loadSample()
	if err != nil {
		g.log.Error().Err(err).Msg("sample corpus unavailable")
		return model.Stats{}
	}
	return computeStats(videos)
}

func computeStats(videos []model.Video) model.Stats {
	var totalViews, totalLikes int64
	countries := make(map[string]struct{})
	for i := range videos {
		totalViews += videos[i].ViewCount()
		totalLikes += videos[i].LikeCount()
		if videos[i].Country != "" {
			countries[videos[i].Country] = struct{}{}
		}
	}
	avgViews := int64(0)
	if len(videos) > 0 {
		avgViews = totalViews / int64(len(videos))
	}
	return model.Stats{
		TotalVideos:    len(videos),
		TrendingVideos: len(videos),
		TotalViews:     totalViews,
		TotalLikes:     totalLikes,
		AverageViews:   avgViews,
		Countries:      len(countries),
		DataPoints:     len(videos),
	}
}

// ProxyAI forwards an AI-tool request to the backend untouched and returns
// the raw status and payload. There is no sample-mode equivalent: in sample
// mode, or on any transport failure, the caller gets ErrUnavailable and
// renders its inline "unavailable" message.
func (g *Gateway) ProxyAI(ctx context.Context, method, path, rawQuery string, body []byte) (int, []byte, error) {
	if g.sample {
		return 0, nil, ErrUnavailable
	}

	target := g.baseURL + path
	if rawQuery != "" {
		target += "?" + rawQuery
	}

	var reader io.Reader
	if len(body) > 0 {
		reader = strings.NewReader(string(body))
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		upstreamRequests.WithLabelValues("ai", "error").Inc()
		return 0, nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		upstreamRequests.WithLabelValues("ai", "error").Inc()
		return 0, nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	upstreamRequests.WithLabelValues("ai", strconv.Itoa(resp.StatusCode)).Inc()
	return resp.StatusCode, payload, nil
}

// getJSON issues a GET with the no-cache contract the dashboard uses and
// returns the response body for 2xx statuses.
func (g *Gateway) getJSON(ctx context.Context, pathAndQuery string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+pathAndQuery, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Accept", "application/json")

	endpoint := sanitizeEndpoint(pathAndQuery)

	resp, err := g.client.Do(req)
	if err != nil {
		upstreamRequests.WithLabelValues(endpoint, "error").Inc()
		return nil, err
	}
	defer resp.Body.Close()

	upstreamRequests.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("backend returned %d for %s", resp.StatusCode, endpoint)
	}
	return io.ReadAll(resp.Body)
}

// sanitizeEndpoint strips the query string and collapses per-video paths so
// metric labels stay low-cardinality.
func sanitizeEndpoint(path string) string {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	if strings.HasPrefix(path, "/api/videos/") && strings.HasSuffix(path, "/history") {
		return "/api/videos/:videoId/history"
	}
	return path
}

func sliceWindow(videos []model.Video, offset, limit int) []model.Video {
	if offset >= len(videos) {
		return []model.Video{}
	}
	end := offset + limit
	if end > len(videos) {
		end = len(videos)
	}
	return videos[offset:end]
}
