package directory

import (
	"math"
	"sort"
	"strings"

	"github.com/Kent-Taylor/Tree-services-directory/models"
)

// Relevance blends quality and popularity: rating dominates, review volume
// has diminishing returns. A zero-review record's relevance is purely
// score-derived since log10(1) = 0.
func Relevance(record *models.BusinessRecord) float64 {
	return record.Score*20 + math.Log10(float64(record.ReviewCount)+1)*10
}

// Matches reports whether a record passes every active predicate: free-text
// search, area filter, service filter, and chip filter. All four must pass.
func Matches(record *models.BusinessRecord, state *models.QueryState) bool {
	q := strings.ToLower(strings.TrimSpace(state.SearchText))
	if q != "" {
		text := strings.ToLower(strings.Join([]string{
			record.Name,
			record.Area,
			strings.Join(record.Tags, " "),
			record.Notes,
		}, " "))
		if !strings.Contains(text, q) {
			return false
		}
	}

	if state.AreaFilter != models.FILTER_ALL && record.Area != state.AreaFilter {
		return false
	}
	if state.ServiceFilter != models.FILTER_ALL && !record.HasTag(state.ServiceFilter) {
		return false
	}
	if state.ActiveChip != models.FILTER_ALL && !record.HasTag(state.ActiveChip) {
		return false
	}
	return true
}

// Query runs the full pipeline over the canonical collection: filter, score,
// sort, paginate. The pipeline always re-runs from the first step; there is
// no incremental caching, which is fine at the collection sizes this serves.
//
// Querying clamps state.Page into [1, totalPages] and coerces an invalid
// state.PageSize as a side effect, so the state never points past the end.
func Query(records []models.BusinessRecord, state *models.QueryState) models.QueryResult {
	state.PageSize = models.NormalizePageSize(state.PageSize)

	filtered := make([]models.BusinessRecord, 0, len(records))
	for i := range records {
		if Matches(&records[i], state) {
			filtered = append(filtered, records[i])
		}
	}

	sortRecords(filtered, state.SortMode)

	total := len(filtered)
	totalPages := (total + state.PageSize - 1) / state.PageSize
	if totalPages < 1 {
		totalPages = 1
	}

	if state.Page < 1 {
		state.Page = 1
	}
	if state.Page > totalPages {
		state.Page = totalPages
	}

	start := (state.Page - 1) * state.PageSize
	end := start + state.PageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return models.QueryResult{
		Page:       filtered[start:end],
		Total:      total,
		TotalPages: totalPages,
	}
}

// sortRecords orders descending by the selected key. Sorts are stable, so
// ties keep their original relative order. An unrecognized mode leaves the
// filtered order unchanged.
func sortRecords(records []models.BusinessRecord, mode models.SortMode) {
	switch mode {
	case models.SORT_BEST:
		sort.SliceStable(records, func(i, j int) bool {
			return Relevance(&records[i]) > Relevance(&records[j])
		})
	case models.SORT_HIGHEST_RATED:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].Score > records[j].Score
		})
	case models.SORT_MOST_REVIEWED:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].ReviewCount > records[j].ReviewCount
		})
	}
}
