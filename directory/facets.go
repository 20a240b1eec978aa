package directory

import (
	"sort"

	"github.com/Kent-Taylor/Tree-services-directory/models"
)

// AllAreas returns the sorted, de-duplicated areas across the collection
// with "All" prepended, ready to populate the area dropdown.
func AllAreas(records []models.BusinessRecord) []string {
	var areas []string
	for i := range records {
		if records[i].Area != "" {
			areas = append(areas, records[i].Area)
		}
	}
	return withAllPrefix(areas)
}

// AllServices returns the sorted, de-duplicated union of every record's tags
// with "All" prepended, ready to populate the service dropdown.
func AllServices(records []models.BusinessRecord) []string {
	var tags []string
	for i := range records {
		tags = append(tags, records[i].Tags...)
	}
	return withAllPrefix(tags)
}

func withAllPrefix(values []string) []string {
	seen := make(map[string]bool)
	uniq := make([]string, 0, len(values))
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			uniq = append(uniq, v)
		}
	}
	sort.Strings(uniq)
	return append([]string{models.FILTER_ALL}, uniq...)
}
