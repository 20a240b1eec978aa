package directory

import (
	"strings"

	"github.com/Kent-Taylor/Tree-services-directory/models"
)

// Canonical tag labels used across derivation and consolidation.
const (
	TAG_TREE_REMOVAL     = "Tree Removal"
	TAG_TREE_TRIMMING    = "Tree Trimming"
	TAG_TREE_CARE        = "Tree Care"
	TAG_TREE_CONTRACTORS = "Tree Contractors"
	TAG_TREE_SERVICE     = "Tree Service"
	TAG_STUMP_GRINDING   = "Stump Grinding"
	TAG_EMERGENCY        = "Emergency"
	TAG_STORM_CLEANUP    = "Storm Cleanup"
	TAG_PRUNING          = "Pruning"
	TAG_TREE_HEALTH      = "Tree Health"
)

// substringRule appends tags when any of its needles appears in the haystack.
type substringRule struct {
	needles []string
	tags    []string
}

// Rules are ordered and non-exclusive: every matching rule applies, and a
// record may accumulate tags from several of them. The needle lists are kept
// deliberately broad; an occasional false positive is fine, a missed listing
// is not.
var substringRules = []substringRule{
	{
		needles: []string{"tree service", "tree removal", "arborist", "arboriculture"},
		tags:    []string{TAG_TREE_REMOVAL, TAG_TREE_TRIMMING, TAG_TREE_CARE, TAG_TREE_CONTRACTORS, TAG_TREE_SERVICE},
	},
	{
		needles: []string{"stump", "grind"},
		tags:    []string{TAG_STUMP_GRINDING},
	},
	{
		needles: []string{"emergency", "storm", "24/7", "cleanup"},
		tags:    []string{TAG_EMERGENCY},
	},
	{
		needles: []string{"contractor", "construction", "land clearing", "clearing"},
		tags:    []string{TAG_TREE_CONTRACTORS},
	},
}

// DeriveTags infers service-category tags from a record's free-text fields.
// It is pure and total: the same raw input always yields the same tags, and
// re-deriving from an already-tagged record never loses any.
func DeriveTags(raw *models.RawRecord) []string {
	if raw == nil {
		return nil
	}

	parts := []string{raw.Name, raw.Title, raw.CategoryName}
	parts = append(parts, raw.Categories...)
	parts = append(parts, raw.Services...)
	haystack := strings.ToLower(strings.Join(parts, " "))

	var tags []string
	seen := make(map[string]bool)
	for _, rule := range substringRules {
		if !containsAny(haystack, rule.needles) {
			continue
		}
		for _, tag := range rule.tags {
			if !seen[tag] {
				seen[tag] = true
				tags = append(tags, tag)
			}
		}
	}
	return tags
}

// ConsolidateTags enriches a tag list with the canonical grouping tags used
// by the category pages: care signals gain "Tree Care", and full-service or
// arborist-style providers gain "Tree Contractors". The pass is strictly
// additive, so applying it twice yields the same result and no tag is ever
// removed. Input order is preserved, duplicates collapsed.
func ConsolidateTags(tags []string) []string {
	out := make([]string, 0, len(tags)+2)
	has := make(map[string]bool)
	for _, tag := range tags {
		if !has[tag] {
			has[tag] = true
			out = append(out, tag)
		}
	}

	careSignal := has[TAG_TREE_CARE] || has[TAG_TREE_HEALTH] || has[TAG_PRUNING]
	if careSignal && !has[TAG_TREE_CARE] {
		has[TAG_TREE_CARE] = true
		out = append(out, TAG_TREE_CARE)
	}

	// Contractor tag covers broad/full-service or arborist-style providers.
	fullService := has[TAG_TREE_REMOVAL] && has[TAG_TREE_TRIMMING] &&
		(has[TAG_STUMP_GRINDING] || has[TAG_EMERGENCY] || has[TAG_STORM_CLEANUP])
	if (fullService || careSignal) && !has[TAG_TREE_CONTRACTORS] {
		has[TAG_TREE_CONTRACTORS] = true
		out = append(out, TAG_TREE_CONTRACTORS)
	}

	return out
}

func containsAny(haystack string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(haystack, needle) {
			return true
		}
	}
	return false
}
