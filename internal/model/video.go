package model

import (
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"
)

// Video is a single trending-video record as served by the upstream data API
// (or the bundled sample corpus). All numeric fields are optional: absence is
// preserved for display while the analytics layer coerces it to zero.
//
// The upstream payload is an open schema; keys this struct does not model are
// round-tripped untouched through Extra rather than probed dynamically.
type Video struct {
	VideoID      string
	Title        string
	ChannelTitle string
	ThumbnailURL string
	Description  string

	Views       *int64
	Likes       *int64
	Comments    *int64
	Subscribers *int64

	Country     string
	PublishedAt string

	ViralityScore    *float64
	GrowthVelocity   *float64
	EngagementRate   *float64
	TrendingDuration *float64
	AudienceReach    *float64

	// CategoryID is the YouTube category ID in string form, accepted from
	// either a "categoryId" or "category_id" key, string or numeric.
	CategoryID string

	// Tags normalized to a string list; the wire value may be a list or a
	// scalar and is re-emitted verbatim on marshal.
	Tags []string

	// Extra carries unknown keys for passthrough.
	Extra map[string]json.RawMessage

	categoryKey string          // wire key the category ID arrived under
	rawTags     json.RawMessage // wire form of tags, re-emitted as received
}

// ViewCount returns the view count, treating absence as 0.
func (v *Video) ViewCount() int64 { return int64Or0(v.Views) }

// LikeCount returns the like count, treating absence as 0.
func (v *Video) LikeCount() int64 { return int64Or0(v.Likes) }

// CommentCount returns the comment count, treating absence as 0.
func (v *Video) CommentCount() int64 { return int64Or0(v.Comments) }

// Virality returns the virality score, treating absence as 0.
func (v *Video) Virality() float64 { return float64Or0(v.ViralityScore) }

// Engagement returns the upstream engagement-rate score, treating absence as 0.
func (v *Video) Engagement() float64 { return float64Or0(v.EngagementRate) }

// PublishedTime parses publishedAt. ok is false when the field is missing or
// unparseable; callers decide whether that means "skip" or "epoch".
func (v *Video) PublishedTime() (time.Time, bool) {
	s := strings.TrimSpace(v.PublishedAt)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// PublishedDate returns the calendar-date part of publishedAt ("2025-11-03"),
// or "" when the field is empty.
func (v *Video) PublishedDate() string {
	s := strings.TrimSpace(v.PublishedAt)
	if i := strings.IndexByte(s, 'T'); i >= 0 {
		return s[:i]
	}
	return s
}

func int64Or0(p *int64) int64 {
	if p == nil {
		return 0
	}
	return *p
}

func float64Or0(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

// knownKeys are the wire keys consumed into typed fields; everything else
// lands in Extra.
var knownKeys = map[string]struct{}{
	"videoId": {}, "title": {}, "channelTitle": {}, "thumbnailUrl": {},
	"description": {}, "views": {}, "likes": {}, "comments": {},
	"subscribers": {}, "country": {}, "publishedAt": {}, "viralityScore": {},
	"growthVelocity": {}, "engagementRate": {}, "trendingDuration": {},
	"audienceReach": {}, "categoryId": {}, "category_id": {}, "tags": {},
}

func (v *Video) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	v.VideoID = coerceString(raw["videoId"])
	v.Title = coerceString(raw["title"])
	v.ChannelTitle = coerceString(raw["channelTitle"])
	v.ThumbnailURL = coerceString(raw["thumbnailUrl"])
	v.Description = coerceString(raw["description"])
	v.Country = coerceString(raw["country"])
	v.PublishedAt = coerceString(raw["publishedAt"])

	v.Views = coerceInt64(raw["views"])
	v.Likes = coerceInt64(raw["likes"])
	v.Comments = coerceInt64(raw["comments"])
	v.Subscribers = coerceInt64(raw["subscribers"])

	v.ViralityScore = coerceFloat64(raw["viralityScore"])
	v.GrowthVelocity = coerceFloat64(raw["growthVelocity"])
	v.EngagementRate = coerceFloat64(raw["engagementRate"])
	v.TrendingDuration = coerceFloat64(raw["trendingDuration"])
	v.AudienceReach = coerceFloat64(raw["audienceReach"])

	v.categoryKey = "categoryId"
	categoryRaw, ok := raw["categoryId"]
	if !ok {
		categoryRaw, ok = raw["category_id"]
		if ok {
			v.categoryKey = "category_id"
		}
	}
	if ok {
		v.CategoryID = strings.TrimSpace(coerceString(categoryRaw))
	} else {
		v.CategoryID = ""
	}

	v.rawTags = nil
	v.Tags = nil
	if tagsRaw, ok := raw["tags"]; ok && !isJSONNull(tagsRaw) {
		v.rawTags = append(json.RawMessage(nil), tagsRaw...)
		v.Tags = coerceTags(tagsRaw)
	}

	v.Extra = nil
	for key, val := range raw {
		if _, known := knownKeys[key]; known {
			continue
		}
		if v.Extra == nil {
			v.Extra = make(map[string]json.RawMessage)
		}
		v.Extra[key] = append(json.RawMessage(nil), val...)
	}
	return nil
}

func (v Video) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(v.Extra)+19)
	for key, val := range v.Extra {
		m[key] = val
	}

	m["videoId"] = v.VideoID
	m["title"] = v.Title
	putString(m, "channelTitle", v.ChannelTitle)
	putString(m, "thumbnailUrl", v.ThumbnailURL)
	putString(m, "description", v.Description)
	putString(m, "country", v.Country)
	putString(m, "publishedAt", v.PublishedAt)

	putInt64(m, "views", v.Views)
	putInt64(m, "likes", v.Likes)
	putInt64(m, "comments", v.Comments)
	putInt64(m, "subscribers", v.Subscribers)

	putFloat64(m, "viralityScore", v.ViralityScore)
	putFloat64(m, "growthVelocity", v.GrowthVelocity)
	putFloat64(m, "engagementRate", v.EngagementRate)
	putFloat64(m, "trendingDuration", v.TrendingDuration)
	putFloat64(m, "audienceReach", v.AudienceReach)

	if v.CategoryID != "" {
		key := v.categoryKey
		if key == "" {
			key = "categoryId"
		}
		m[key] = v.CategoryID
	}
	if v.rawTags != nil {
		m["tags"] = v.rawTags
	} else if v.Tags != nil {
		m["tags"] = v.Tags
	}

	return json.Marshal(m)
}

func putString(m map[string]any, key, val string) {
	if val != "" {
		m[key] = val
	}
}

func putInt64(m map[string]any, key string, val *int64) {
	if val != nil {
		m[key] = *val
	}
}

func putFloat64(m map[string]any, key string, val *float64) {
	if val != nil {
		m[key] = *val
	}
}

func isJSONNull(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}

// coerceString accepts a JSON string, number, or bool; anything else yields "".
func coerceString(raw json.RawMessage) string {
	if isJSONNull(raw) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return strconv.FormatBool(b)
	}
	return ""
}

// coerceInt64 accepts a JSON integer, float, or numeric string; malformed
// values are treated as absent rather than erroring the whole record.
func coerceInt64(raw json.RawMessage) *int64 {
	if isJSONNull(raw) {
		return nil
	}
	var i int64
	if err := json.Unmarshal(raw, &i); err == nil {
		return &i
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		i = int64(f)
		return &i
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if parsed, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err == nil {
			return &parsed
		}
	}
	return nil
}

func coerceFloat64(raw json.RawMessage) *float64 {
	if isJSONNull(raw) {
		return nil
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return &f
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if parsed, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return &parsed
		}
	}
	return nil
}

// coerceTags normalizes the wire tags value: a list is stringified per
// element, a scalar becomes a single-entry list.
func coerceTags(raw json.RawMessage) []string {
	var list []json.RawMessage
	if err := json.Unmarshal(raw, &list); err == nil {
		tags := make([]string, 0, len(list))
		for _, el := range list {
			if s := coerceString(el); s != "" {
				tags = append(tags, s)
			}
		}
		return tags
	}
	if s := coerceString(raw); s != "" {
		return []string{s}
	}
	return nil
}
