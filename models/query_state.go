package models

import (
	"net/url"
	"strings"
)

// SortMode selects the ordering applied by the query engine. The values are
// the user-facing labels; an unrecognized value leaves the filtered order
// untouched rather than failing.
type SortMode string

const (
	SORT_BEST          SortMode = "Best"
	SORT_HIGHEST_RATED SortMode = "Highest Rated"
	SORT_MOST_REVIEWED SortMode = "Most Reviewed"
)

// Filter value meaning "no filter" for area, service and chip.
const FILTER_ALL = "All"

// Allowed page sizes; anything else falls back to DEFAULT_PAGE_SIZE.
var AllowedPageSizes = []int{5, 25, 50, 100}

const DEFAULT_PAGE_SIZE = 25

// Query parameter names recognized at mount time.
const (
	SERVICE_QUERY_ARG = "service"
	SORT_QUERY_ARG    = "sort"
)

// QueryState is the mutable state of one mounted directory widget. It is
// created with defaults, optionally seeded once from the page location or
// host defaults, and then mutated only by user interaction. It is never
// persisted.
type QueryState struct {
	SearchText    string
	AreaFilter    string
	ServiceFilter string
	SortMode      SortMode
	ActiveChip    string
	Page          int
	PageSize      int
}

// NewQueryState returns the mount-time defaults.
func NewQueryState() QueryState {
	return QueryState{
		AreaFilter:    FILTER_ALL,
		ServiceFilter: FILTER_ALL,
		SortMode:      SORT_BEST,
		ActiveChip:    FILTER_ALL,
		Page:          1,
		PageSize:      DEFAULT_PAGE_SIZE,
	}
}

// Seed applies mount-time overrides for the service filter and sort mode.
// Page-location query parameters win over host-page defaults; empty values
// leave the state untouched. Called once, at mount.
func (s *QueryState) Seed(params url.Values, defaultService, defaultSort string) {
	service := strings.TrimSpace(params.Get(SERVICE_QUERY_ARG))
	if service == "" {
		service = strings.TrimSpace(defaultService)
	}
	if service != "" {
		s.ServiceFilter = service
	}

	sortMode := strings.TrimSpace(params.Get(SORT_QUERY_ARG))
	if sortMode == "" {
		sortMode = strings.TrimSpace(defaultSort)
	}
	if sortMode != "" {
		s.SortMode = SortMode(sortMode)
	}
}

// NormalizePageSize coerces an arbitrary page size to an allowed one.
// Non-positive and unrecognized values default to DEFAULT_PAGE_SIZE.
func NormalizePageSize(size int) int {
	for _, allowed := range AllowedPageSizes {
		if size == allowed {
			return size
		}
	}
	return DEFAULT_PAGE_SIZE
}
