package model

import (
	"testing"

	json "github.com/goccy/go-json"
)

func TestVideoUnmarshal_KnownFields(t *testing.T) {
	payload := []byte(`{
		"videoId": "abc123",
		"title": "Test Video",
		"channelTitle": "Test Channel",
		"views": 5000,
		"likes": 100,
		"country": "US",
		"publishedAt": "2025-11-05T14:00:00Z",
		"viralityScore": 62.5
	}`)

	var v Video
	if err := json.Unmarshal(payload, &v); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if v.VideoID != "abc123" {
		t.Errorf("videoId = %q, want abc123", v.VideoID)
	}
	if v.ViewCount() != 5000 {
		t.Errorf("views = %d, want 5000", v.ViewCount())
	}
	if v.CommentCount() != 0 {
		t.Errorf("missing comments = %d, want 0", v.CommentCount())
	}
	if v.Comments != nil {
		t.Error("missing comments should stay nil (unknown), not zero")
	}
	if v.Virality() != 62.5 {
		t.Errorf("viralityScore = %.1f, want 62.5", v.Virality())
	}
}

func TestVideoUnmarshal_ExtraFieldsRoundTrip(t *testing.T) {
	payload := []byte(`{"videoId":"x1","title":"T","customField":{"nested":true},"another":42}`)

	var v Video
	if err := json.Unmarshal(payload, &v); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if len(v.Extra) != 2 {
		t.Fatalf("extra keys = %d, want 2", len(v.Extra))
	}

	out, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var roundTrip map[string]json.RawMessage
	if err := json.Unmarshal(out, &roundTrip); err != nil {
		t.Fatalf("re-unmarshal failed: %v", err)
	}
	if string(roundTrip["customField"]) != `{"nested":true}` {
		t.Errorf("customField = %s, want {\"nested\":true}", roundTrip["customField"])
	}
	if string(roundTrip["another"]) != "42" {
		t.Errorf("another = %s, want 42", roundTrip["another"])
	}
}

func TestVideoUnmarshal_CategoryIDForms(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    string
	}{
		{"camelCase string", `{"videoId":"a","categoryId":"10"}`, "10"},
		{"snake_case numeric", `{"videoId":"a","category_id":17}`, "17"},
		{"padded string", `{"videoId":"a","categoryId":" 20 "}`, "20"},
		{"absent", `{"videoId":"a"}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v Video
			if err := json.Unmarshal([]byte(tt.payload), &v); err != nil {
				t.Fatalf("unmarshal failed: %v", err)
			}
			if v.CategoryID != tt.want {
				t.Errorf("CategoryID = %q, want %q", v.CategoryID, tt.want)
			}
		})
	}
}

func TestVideoUnmarshal_TagForms(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    []string
	}{
		{"list", `{"videoId":"a","tags":["music","live"]}`, []string{"music", "live"}},
		{"scalar string", `{"videoId":"a","tags":"music live"}`, []string{"music live"}},
		{"numeric list", `{"videoId":"a","tags":[10,20]}`, []string{"10", "20"}},
		{"null", `{"videoId":"a","tags":null}`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v Video
			if err := json.Unmarshal([]byte(tt.payload), &v); err != nil {
				t.Fatalf("unmarshal failed: %v", err)
			}
			if len(v.Tags) != len(tt.want) {
				t.Fatalf("tags = %v, want %v", v.Tags, tt.want)
			}
			for i := range tt.want {
				if v.Tags[i] != tt.want[i] {
					t.Errorf("tags[%d] = %q, want %q", i, v.Tags[i], tt.want[i])
				}
			}
		})
	}
}

func TestVideoUnmarshal_MalformedNumbersCoerced(t *testing.T) {
	payload := []byte(`{"videoId":"a","views":"12345","likes":9.7,"comments":"not a number"}`)

	var v Video
	if err := json.Unmarshal(payload, &v); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if v.ViewCount() != 12345 {
		t.Errorf("string views = %d, want 12345", v.ViewCount())
	}
	if v.LikeCount() != 9 {
		t.Errorf("float likes = %d, want 9", v.LikeCount())
	}
	if v.Comments != nil {
		t.Error("unparseable comments should be treated as absent")
	}
}

func TestPublishedTime(t *testing.T) {
	tests := []struct {
		name  string
		value string
		ok    bool
	}{
		{"rfc3339", "2025-11-05T14:00:00Z", true},
		{"no zone", "2025-11-05T14:00:00", true},
		{"date only", "2025-11-05", true},
		{"garbage", "next tuesday", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Video{PublishedAt: tt.value}
			if _, ok := v.PublishedTime(); ok != tt.ok {
				t.Errorf("PublishedTime(%q) ok = %v, want %v", tt.value, ok, tt.ok)
			}
		})
	}
}

func TestFilterStateEqual(t *testing.T) {
	us := "US"
	us2 := "US"
	gb := "GB"
	min := int64(100)
	min2 := int64(100)

	tests := []struct {
		name string
		a, b FilterState
		want bool
	}{
		{"both empty", FilterState{}, FilterState{}, true},
		{"same values different pointers", FilterState{Country: &us, MinViews: &min}, FilterState{Country: &us2, MinViews: &min2}, true},
		{"different country", FilterState{Country: &us}, FilterState{Country: &gb}, false},
		{"active vs absent", FilterState{MinViews: &min}, FilterState{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal = %v, want %v", got, tt.want)
			}
		})
	}
}
