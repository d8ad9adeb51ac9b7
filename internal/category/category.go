// Package category classifies videos into dashboard categories using a
// static rule table: a YouTube category-ID match includes a video outright,
// otherwise word-boundary keyword patterns are run against the video's
// title, description, and tags.
package category

import (
	"regexp"
	"sort"
	"strings"

	"github.com/aladinbajra/youtube-trending-ai/internal/model"
)

// Definition is the declarative rule set for one category: the YouTube
// category IDs that map to it, keywords whose presence includes a video, and
// optional keywords whose presence excludes it. Exclude lists disambiguate
// categories with overlapping vocabulary (gaming vs. sports).
type Definition struct {
	IDs     []string
	Include []string
	Exclude []string
}

var definitions = map[string]Definition{
	"music": {
		IDs:     []string{"10"},
		Include: []string{"music", "song", "single", "album", "artist", "lyrics", "official video", "remix", "mv"},
	},
	"gaming": {
		IDs: []string{"20"},
		Include: []string{
			"gaming", "gameplay", "playthrough", "walkthrough", "let's play",
			"speedrun", "roblox", "minecraft", "valorant", "fortnite", "gta",
			"call of duty", "csgo", "pubg",
		},
		Exclude: []string{"match", "league", "cup", "goal", "highlights", "tournament"},
	},
	"sports": {
		IDs: []string{"17"},
		Include: []string{
			"sport", "match", "league", "goal", "highlights", "tournament",
			"nba", "nfl", "fifa", "world cup", "uefa", "mlb", "cricket",
			"soccer", "game highlights",
		},
		Exclude: []string{"gaming", "gameplay", "minecraft", "roblox", "fortnite"},
	},
	"news": {
		IDs:     []string{"25"},
		Include: []string{"news", "breaking news", "headline", "press conference", "update", "report", "journal", "newscast", "bulletin"},
	},
	"tech": {
		IDs: []string{"28"},
		Include: []string{
			"tech", "technology", "gadget", "smartphone", "iphone", "android",
			"review", "unboxing", "pc build", "software", "hardware", "ai",
			"robot", "electronics", "laptop",
		},
	},
	"food": {
		IDs: []string{"26"},
		Include: []string{
			"recipe", "kitchen", "cook", "cooking", "food", "chef", "baking",
			"dessert", "meal", "restaurant", "cuisine", "eat", "tasting",
		},
	},
	"lifestyle": {
		IDs: []string{"22", "26"},
		Include: []string{
			"lifestyle", "daily vlog", "vlog", "routine", "morning routine",
			"night routine", "beauty", "fashion", "makeup", "self care",
			"travel vlog", "home decor",
		},
	},
	"education": {
		IDs: []string{"27"},
		Include: []string{
			"education", "lesson", "tutorial", "learn", "explained", "lecture",
			"course", "class", "study", "school", "how to", "teacher",
			"science lesson",
		},
	},
	"comedy": {
		IDs:     []string{"23"},
		Include: []string{"comedy", "funny", "sketch", "prank", "stand-up", "parody", "humor", "laugh", "comedian", "joke"},
	},
	"culture": {
		IDs: []string{"24", "29"},
		Include: []string{
			"culture", "entertainment", "festival", "art", "heritage",
			"tradition", "documentary", "music video", "dance", "museum",
			"theatre", "history",
		},
	},
}

// matcher is a Definition compiled into ready-to-run form. Built once at
// package init; per-call classification only runs the compiled patterns.
type matcher struct {
	ids     map[string]struct{}
	include []*regexp.Regexp
	exclude []*regexp.Regexp
}

var matchers = func() map[string]*matcher {
	out := make(map[string]*matcher, len(definitions))
	for key, def := range definitions {
		m := &matcher{ids: make(map[string]struct{}, len(def.IDs))}
		for _, id := range def.IDs {
			m.ids[id] = struct{}{}
		}
		m.include = compilePatterns(def.Include)
		m.exclude = compilePatterns(def.Exclude)
		out[key] = m
	}
	return out
}()

// compilePatterns turns keywords into case-insensitive word-boundary
// patterns, skipping blank entries.
func compilePatterns(keywords []string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(keywords))
	for _, word := range keywords {
		word = strings.TrimSpace(word)
		if word == "" {
			continue
		}
		patterns = append(patterns, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(word)+`\b`))
	}
	return patterns
}

// Keys returns the known category keys in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(definitions))
	for key := range definitions {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// IsKnown reports whether the key (case-insensitive) names a configured
// category. "all" is not a category; it selects the identity filter.
func IsKnown(key string) bool {
	_, ok := matchers[strings.ToLower(strings.TrimSpace(key))]
	return ok
}

// Classify returns the videos belonging to the named category. For "all" or
// an unrecognized key the input is returned unchanged (same elements, same
// order). The input slice is never mutated.
func Classify(videos []model.Video, key string) []model.Video {
	normalized := strings.ToLower(strings.TrimSpace(key))
	if normalized == "" || normalized == "all" {
		return videos
	}
	m, ok := matchers[normalized]
	if !ok {
		return videos
	}

	matched := make([]model.Video, 0, len(videos))
	for _, video := range videos {
		if m.matches(&video) {
			matched = append(matched, video)
		}
	}
	return matched
}

func (m *matcher) matches(v *model.Video) bool {
	// A category-ID match short-circuits the keyword checks.
	if v.CategoryID != "" {
		if _, ok := m.ids[v.CategoryID]; ok {
			return true
		}
	}

	parts := make([]string, 0, 2+len(v.Tags))
	parts = append(parts, v.Title, v.Description)
	parts = append(parts, v.Tags...)
	blob := strings.Join(parts, " ")
	if strings.TrimSpace(blob) == "" {
		return false
	}

	for _, pattern := range m.exclude {
		if pattern.MatchString(blob) {
			return false
		}
	}
	for _, pattern := range m.include {
		if pattern.MatchString(blob) {
			return true
		}
	}
	return false
}
