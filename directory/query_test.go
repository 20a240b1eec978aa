package directory

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Kent-Taylor/Tree-services-directory/models"
)

func fixtureRecords() []models.BusinessRecord {
	return []models.BusinessRecord{
		{ID: "1", Name: "Cooper's Tree Service", Area: "Knoxville", Score: 4.8, ReviewCount: 200,
			Tags: []string{"Tree Removal", "Emergency"}, Notes: "emergency response"},
		{ID: "2", Name: "Baumann Tree Service", Area: "Powell", Score: 4.7, ReviewCount: 31,
			Tags: []string{"Tree Removal", "Stump Grinding"}},
		{ID: "3", Name: "Davey Tree Expert Company", Area: "Knoxville", Score: 4.4, ReviewCount: 300,
			Tags: []string{"Tree Care", "Pruning"}},
		{ID: "4", Name: "A-1 Wilson Tree & Lawn", Area: "Knoxville", Score: 4.5, ReviewCount: 7,
			Tags: []string{"Tree Removal", "Lawn Services"}},
	}
}

func TestRelevance(t *testing.T) {
	// A zero-score, zero-review record has relevance exactly 0.
	zero := models.BusinessRecord{}
	assert.Equal(t, 0.0, Relevance(&zero))

	// Review volume has diminishing returns over the rating term.
	rated := models.BusinessRecord{Score: 4.5, ReviewCount: 99}
	assert.InDelta(t, 4.5*20+20, Relevance(&rated), 0.0001)
}

func TestMatches_Conjunction(t *testing.T) {
	records := fixtureRecords()
	r := &records[0] // Cooper's: Knoxville, Tree Removal + Emergency

	tests := []struct {
		name     string
		state    models.QueryState
		expected bool
	}{
		{"all defaults pass", models.NewQueryState(), true},
		{"search matches name", stateWith(func(s *models.QueryState) { s.SearchText = "cooper" }), true},
		{"search matches notes", stateWith(func(s *models.QueryState) { s.SearchText = "emergency response" }), true},
		{"search miss", stateWith(func(s *models.QueryState) { s.SearchText = "pizza" }), false},
		{"area match", stateWith(func(s *models.QueryState) { s.AreaFilter = "Knoxville" }), true},
		{"area miss", stateWith(func(s *models.QueryState) { s.AreaFilter = "Powell" }), false},
		{"service match", stateWith(func(s *models.QueryState) { s.ServiceFilter = "Emergency" }), true},
		{"service miss", stateWith(func(s *models.QueryState) { s.ServiceFilter = "Pruning" }), false},
		{"chip match", stateWith(func(s *models.QueryState) { s.ActiveChip = "Tree Removal" }), true},
		{"chip miss", stateWith(func(s *models.QueryState) { s.ActiveChip = "Stump Grinding" }), false},
		{
			"chip and service both must pass",
			stateWith(func(s *models.QueryState) {
				s.ServiceFilter = "Emergency"
				s.ActiveChip = "Stump Grinding"
			}),
			false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, Matches(r, &test.state))
		})
	}
}

func stateWith(mutate func(*models.QueryState)) models.QueryState {
	state := models.NewQueryState()
	mutate(&state)
	return state
}

func TestQuery_SortModes(t *testing.T) {
	records := fixtureRecords()

	best := models.NewQueryState()
	result := Query(records, &best)
	// Cooper's has the top blended relevance, Davey's review volume beats
	// Baumann's slightly higher rating.
	assert.Equal(t, "1", result.Page[0].ID)
	assert.Equal(t, "3", result.Page[1].ID)

	rated := stateWith(func(s *models.QueryState) { s.SortMode = models.SORT_HIGHEST_RATED })
	result = Query(records, &rated)
	assert.Equal(t, []string{"1", "2", "4", "3"}, pageIDs(result))

	reviewed := stateWith(func(s *models.QueryState) { s.SortMode = models.SORT_MOST_REVIEWED })
	result = Query(records, &reviewed)
	assert.Equal(t, []string{"3", "1", "2", "4"}, pageIDs(result))
}

func TestQuery_UnknownSortKeepsFilteredOrder(t *testing.T) {
	records := fixtureRecords()
	state := stateWith(func(s *models.QueryState) { s.SortMode = "Alphabetical" })
	result := Query(records, &state)
	assert.Equal(t, []string{"1", "2", "3", "4"}, pageIDs(result))
}

func TestQuery_SortStability(t *testing.T) {
	records := []models.BusinessRecord{
		{ID: "a", Score: 4.5, ReviewCount: 10},
		{ID: "b", Score: 4.5, ReviewCount: 10},
		{ID: "c", Score: 4.5, ReviewCount: 10},
	}
	state := stateWith(func(s *models.QueryState) { s.SortMode = models.SORT_HIGHEST_RATED })
	result := Query(records, &state)
	assert.Equal(t, []string{"a", "b", "c"}, pageIDs(result))
}

func TestQuery_Pagination(t *testing.T) {
	records := make([]models.BusinessRecord, 30)
	for i := range records {
		records[i] = models.BusinessRecord{ID: fmt.Sprintf("%02d", i), Name: "R", Score: 5}
	}

	state := stateWith(func(s *models.QueryState) { s.Page = 2 })
	result := Query(records, &state)

	assert.Equal(t, 30, result.Total)
	assert.Equal(t, 2, result.TotalPages)
	assert.Len(t, result.Page, 5)
	assert.Equal(t, "25", result.Page[0].ID)
}

func TestQuery_PageClamped(t *testing.T) {
	records := make([]models.BusinessRecord, 10)
	for i := range records {
		records[i] = models.BusinessRecord{ID: fmt.Sprintf("%d", i), Name: "R"}
	}

	state := stateWith(func(s *models.QueryState) { s.Page = 99 })
	result := Query(records, &state)
	assert.Equal(t, 1, state.Page)
	assert.Equal(t, 1, result.TotalPages)
	assert.Len(t, result.Page, 10)

	state = stateWith(func(s *models.QueryState) { s.Page = -4 })
	Query(records, &state)
	assert.Equal(t, 1, state.Page)
}

func TestQuery_InvalidPageSizeDefaults(t *testing.T) {
	state := stateWith(func(s *models.QueryState) { s.PageSize = -1 })
	Query(fixtureRecords(), &state)
	assert.Equal(t, models.DEFAULT_PAGE_SIZE, state.PageSize)

	state = stateWith(func(s *models.QueryState) { s.PageSize = 17 })
	Query(fixtureRecords(), &state)
	assert.Equal(t, models.DEFAULT_PAGE_SIZE, state.PageSize)
}

func TestQuery_EmptyResultIsNotAnError(t *testing.T) {
	state := stateWith(func(s *models.QueryState) { s.SearchText = "no such business" })
	result := Query(fixtureRecords(), &state)
	assert.Equal(t, 0, result.Total)
	assert.Empty(t, result.Page)
	assert.Equal(t, 1, result.TotalPages)
}

// Concatenating all pages reconstructs the filtered, sorted set exactly
// once: no gaps, no overlaps.
func TestQuery_PageRoundTrip(t *testing.T) {
	records := make([]models.BusinessRecord, 73)
	for i := range records {
		records[i] = models.BusinessRecord{ID: fmt.Sprintf("%02d", i), Name: "R", ReviewCount: i}
	}

	state := stateWith(func(s *models.QueryState) {
		s.SortMode = models.SORT_MOST_REVIEWED
		s.PageSize = 25
	})

	seen := make(map[string]int)
	var gathered []string
	for page := 1; ; page++ {
		state.Page = page
		result := Query(records, &state)
		assert.LessOrEqual(t, len(result.Page), state.PageSize)
		for _, r := range result.Page {
			seen[r.ID]++
			gathered = append(gathered, r.ID)
		}
		if page >= result.TotalPages {
			break
		}
	}

	assert.Len(t, gathered, len(records))
	for id, count := range seen {
		assert.Equal(t, 1, count, "record %s appeared %d times", id, count)
	}
}

func pageIDs(result models.QueryResult) []string {
	ids := make([]string, 0, len(result.Page))
	for _, r := range result.Page {
		ids = append(ids, r.ID)
	}
	return ids
}
