package category

import (
	"testing"

	"github.com/aladinbajra/youtube-trending-ai/internal/model"
)

func vid(id, title string) model.Video {
	return model.Video{VideoID: id, Title: title}
}

func ids(videos []model.Video) []string {
	out := make([]string, len(videos))
	for i, v := range videos {
		out[i] = v.VideoID
	}
	return out
}

func TestClassify_IdentityKeys(t *testing.T) {
	videos := []model.Video{
		vid("a", "Minecraft speedrun"),
		vid("b", "Pasta recipe"),
	}

	for _, key := range []string{"", "all", "ALL", "  All  ", "unknown-category"} {
		got := Classify(videos, key)
		if len(got) != len(videos) {
			t.Errorf("Classify(%q) returned %d videos, want %d", key, len(got), len(videos))
			continue
		}
		for i := range videos {
			if got[i].VideoID != videos[i].VideoID {
				t.Errorf("Classify(%q)[%d] = %q, want %q", key, i, got[i].VideoID, videos[i].VideoID)
			}
		}
	}
}

func TestClassify_CategoryIDShortCircuit(t *testing.T) {
	// Category-ID membership wins even when exclude keywords are present
	// in the text.
	videos := []model.Video{
		{VideoID: "g1", Title: "Grand finals tournament highlights", CategoryID: "20"},
	}

	got := Classify(videos, "gaming")
	if len(got) != 1 {
		t.Fatalf("expected ID-matched video kept despite exclude words, got %d", len(got))
	}
}

func TestClassify_Keywords(t *testing.T) {
	tests := []struct {
		name     string
		category string
		videos   []model.Video
		want     []string
	}{
		{
			name:     "include match in title",
			category: "music",
			videos: []model.Video{
				vid("m1", "New album out now"),
				vid("x1", "Morning yoga session"),
			},
			want: []string{"m1"},
		},
		{
			name:     "word boundary prevents substring match",
			category: "music",
			videos: []model.Video{
				vid("x1", "The mvp of the season"), // "mv" must not match inside "mvp"
			},
			want: []string{},
		},
		{
			name:     "exclude vetoes include",
			category: "gaming",
			videos: []model.Video{
				vid("g1", "Minecraft survival playthrough"),
				vid("s1", "Minecraft tournament highlights"),
			},
			want: []string{"g1"},
		},
		{
			name:     "sports excludes gaming vocabulary",
			category: "sports",
			videos: []model.Video{
				vid("s1", "Champions League goal compilation"),
				vid("g1", "Fortnite match highlights"),
			},
			want: []string{"s1"},
		},
		{
			name:     "match in tags",
			category: "food",
			videos: []model.Video{
				{VideoID: "f1", Title: "30 minute dinner", Tags: []string{"recipe", "easy"}},
			},
			want: []string{"f1"},
		},
		{
			name:     "match in description",
			category: "tech",
			videos: []model.Video{
				{VideoID: "t1", Title: "First look", Description: "Full unboxing and review"},
			},
			want: []string{"t1"},
		},
		{
			name:     "case insensitive",
			category: "comedy",
			videos: []model.Video{
				vid("c1", "FUNNY moments compilation"),
			},
			want: []string{"c1"},
		},
		{
			name:     "empty text excluded",
			category: "news",
			videos: []model.Video{
				{VideoID: "e1"},
			},
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Classify(tt.videos, tt.category))
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("got %v, want %v", got, tt.want)
					break
				}
			}
		})
	}
}

func TestClassify_DoesNotMutateInput(t *testing.T) {
	videos := []model.Video{
		vid("a", "Minecraft speedrun"),
		vid("b", "Breaking news bulletin"),
	}
	Classify(videos, "gaming")
	if videos[0].VideoID != "a" || videos[1].VideoID != "b" {
		t.Error("input slice was mutated")
	}
}

func TestKeys(t *testing.T) {
	keys := Keys()
	if len(keys) != 10 {
		t.Fatalf("len(Keys()) = %d, want 10", len(keys))
	}
	for i := 1; i < len(keys); i++ {
		if keys[i-1] >= keys[i] {
			t.Errorf("keys not sorted: %q before %q", keys[i-1], keys[i])
		}
	}
	if !IsKnown("Gaming") {
		t.Error("IsKnown should be case-insensitive")
	}
	if IsKnown("all") {
		t.Error("all is the identity selector, not a category")
	}
}
