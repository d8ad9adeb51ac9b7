package model

// SortField selects the comparison key for video sorting.
type SortField string

const (
	SortByViews       SortField = "views"
	SortByLikes       SortField = "likes"
	SortByComments    SortField = "comments"
	SortByVirality    SortField = "viralityScore"
	SortByPublishedAt SortField = "publishedAt"
)

// SortDirection is "asc" or "desc".
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// SortState pairs a sort field with a direction.
type SortState struct {
	Field     SortField     `json:"field"`
	Direction SortDirection `json:"direction"`
}

// FilterState holds the optional video-list predicates. A predicate is active
// only when its field is set — a nil pointer means "no constraint", so a
// zero value (minViews=0) is still a real, active bound.
type FilterState struct {
	Country     *string  `json:"country,omitempty"`
	MinViews    *int64   `json:"minViews,omitempty"`
	MaxViews    *int64   `json:"maxViews,omitempty"`
	MinVirality *float64 `json:"minVirality,omitempty"`
}

// Equal reports whether two filter states carry the same active predicates
// with the same values.
func (f FilterState) Equal(other FilterState) bool {
	return strPtrEqual(f.Country, other.Country) &&
		int64PtrEqual(f.MinViews, other.MinViews) &&
		int64PtrEqual(f.MaxViews, other.MaxViews) &&
		float64PtrEqual(f.MinVirality, other.MinVirality)
}

func strPtrEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func int64PtrEqual(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func float64PtrEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// VideoPage is one page of a composed (searched, filtered, sorted) video list.
type VideoPage struct {
	Videos     []Video `json:"videos"`
	TotalCount int     `json:"totalCount"`
	TotalPages int     `json:"totalPages"`
	Page       int     `json:"page"`
}
