package analytics

import (
	"sort"
	"strings"

	"github.com/aladinbajra/youtube-trending-ai/internal/model"
)

// DefaultPageSize is the fixed dashboard page size.
const DefaultPageSize = 20

// Query bundles the inputs that shape a video list: free-text search over
// title/channel, the optional filter predicates, and the sort order.
type Query struct {
	Search  string
	Filters model.FilterState
	Sort    model.SortState
}

// Equal reports whether two queries would produce the same composed list.
func (q Query) Equal(other Query) bool {
	return q.Search == other.Search &&
		q.Filters.Equal(other.Filters) &&
		q.Sort == other.Sort
}

// Compose applies search, filters, and sort to the video list and slices out
// the 1-based page. The input slice is left untouched.
func Compose(videos []model.Video, q Query, page, pageSize int) model.VideoPage {
	result := make([]model.Video, 0, len(videos))

	search := strings.ToLower(strings.TrimSpace(q.Search))
	for _, v := range videos {
		if search != "" &&
			!strings.Contains(strings.ToLower(v.Title), search) &&
			!strings.Contains(strings.ToLower(v.ChannelTitle), search) {
			continue
		}
		if q.Filters.Country != nil && v.Country != *q.Filters.Country {
			continue
		}
		if q.Filters.MinViews != nil && v.ViewCount() < *q.Filters.MinViews {
			continue
		}
		if q.Filters.MaxViews != nil && v.ViewCount() > *q.Filters.MaxViews {
			continue
		}
		if q.Filters.MinVirality != nil && v.Virality() < *q.Filters.MinVirality {
			continue
		}
		result = append(result, v)
	}

	sortVideos(result, q.Sort)

	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}
	totalCount := len(result)
	totalPages := (totalCount + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	if start > totalCount {
		start = totalCount
	}
	end := start + pageSize
	if end > totalCount {
		end = totalCount
	}

	return model.VideoPage{
		Videos:     result[start:end],
		TotalCount: totalCount,
		TotalPages: totalPages,
		Page:       page,
	}
}

// sortVideos orders the slice by the sort state. Missing numeric fields sort
// as 0; a missing or unparseable publish date sorts as the epoch. The sort is
// stable so equal keys keep their relative order across recomputations.
func sortVideos(videos []model.Video, s model.SortState) {
	key := sortKey(s.Field)
	desc := s.Direction != model.SortAsc
	sort.SliceStable(videos, func(i, j int) bool {
		a, b := key(&videos[i]), key(&videos[j])
		if desc {
			return a > b
		}
		return a < b
	})
}

func sortKey(field model.SortField) func(*model.Video) float64 {
	switch field {
	case model.SortByLikes:
		return func(v *model.Video) float64 { return float64(v.LikeCount()) }
	case model.SortByComments:
		return func(v *model.Video) float64 { return float64(v.CommentCount()) }
	case model.SortByVirality:
		return func(v *model.Video) float64 { return v.Virality() }
	case model.SortByPublishedAt:
		return func(v *model.Video) float64 {
			t, ok := v.PublishedTime()
			if !ok {
				return 0
			}
			return float64(t.UnixMilli())
		}
	default:
		return func(v *model.Video) float64 { return float64(v.ViewCount()) }
	}
}

// QueryState tracks the current query and page for a stateful caller (one
// dashboard session). Changing any part of the query snaps the page back
// to 1, so a stale page index can never survive a changed query.
type QueryState struct {
	query Query
	page  int
}

// NewQueryState starts at page 1 with the given query.
func NewQueryState(q Query) *QueryState {
	return &QueryState{query: q, page: 1}
}

// SetQuery replaces the query; any change resets the page to 1.
func (s *QueryState) SetQuery(q Query) {
	if !s.query.Equal(q) {
		s.query = q
		s.page = 1
	}
}

// SetPage moves to the given 1-based page (values below 1 clamp to 1).
func (s *QueryState) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	s.page = page
}

// Page returns the current 1-based page index.
func (s *QueryState) Page() int { return s.page }

// Apply composes the video list under the current query and page.
func (s *QueryState) Apply(videos []model.Video) model.VideoPage {
	return Compose(videos, s.query, s.page, DefaultPageSize)
}
