package models

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewQueryState_Defaults(t *testing.T) {
	state := NewQueryState()
	assert.Equal(t, FILTER_ALL, state.AreaFilter)
	assert.Equal(t, FILTER_ALL, state.ServiceFilter)
	assert.Equal(t, FILTER_ALL, state.ActiveChip)
	assert.Equal(t, SORT_BEST, state.SortMode)
	assert.Equal(t, 1, state.Page)
	assert.Equal(t, DEFAULT_PAGE_SIZE, state.PageSize)
}

func TestSeed_QueryParamsWinOverHostDefaults(t *testing.T) {
	state := NewQueryState()
	params := url.Values{}
	params.Set(SERVICE_QUERY_ARG, "Stump Grinding")
	params.Set(SORT_QUERY_ARG, "Most Reviewed")

	state.Seed(params, "Tree Removal", "Highest Rated")

	assert.Equal(t, "Stump Grinding", state.ServiceFilter)
	assert.Equal(t, SORT_MOST_REVIEWED, state.SortMode)
}

func TestSeed_HostDefaultsUsedWhenParamsAbsent(t *testing.T) {
	state := NewQueryState()
	state.Seed(url.Values{}, "Tree Removal", "Highest Rated")

	assert.Equal(t, "Tree Removal", state.ServiceFilter)
	assert.Equal(t, SORT_HIGHEST_RATED, state.SortMode)
}

func TestSeed_EmptySourcesLeaveDefaults(t *testing.T) {
	state := NewQueryState()
	state.Seed(url.Values{}, "", "")

	assert.Equal(t, FILTER_ALL, state.ServiceFilter)
	assert.Equal(t, SORT_BEST, state.SortMode)
}

func TestNormalizePageSize(t *testing.T) {
	tests := []struct {
		input    int
		expected int
	}{
		{5, 5},
		{25, 25},
		{50, 50},
		{100, 100},
		{0, 25},
		{-1, 25},
		{17, 25},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, NormalizePageSize(test.input))
	}
}
