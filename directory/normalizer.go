package directory

import (
	"strings"
	"time"

	"github.com/Kent-Taylor/Tree-services-directory/models"
)

// DEFAULT_AREA is the fallback locality for records with no resolvable area.
const DEFAULT_AREA = "Knoxville"

// Disclaimer appended to synthesized notes for low-confidence records.
const VERIFY_DISCLAIMER = "Details not verified; please confirm with the business."

// Normalizer converts raw listings of either input shape into canonical
// BusinessRecords. Now is injectable so that "today's hours" resolution is
// testable; production code uses NewNormalizer.
type Normalizer struct {
	FallbackArea string
	Now          func() time.Time
}

// NewNormalizer returns a Normalizer with production defaults.
func NewNormalizer() *Normalizer {
	return &Normalizer{
		FallbackArea: DEFAULT_AREA,
		Now:          time.Now,
	}
}

// Normalize maps one raw record to its canonical form. It returns nil when
// no usable name resolves from any known name field; callers drop nil
// results. Every other missing or malformed field degrades to a zero
// default; normalization never fails.
func (n *Normalizer) Normalize(raw *models.RawRecord) *models.BusinessRecord {
	if raw == nil {
		return nil
	}

	name := strings.TrimSpace(firstNonEmpty(raw.Name, raw.Title))
	if name == "" {
		return nil
	}

	score := clampScore(firstNumber(raw.Rating, raw.TotalScore))
	reviews := int(firstNumber(raw.Reviews, raw.ReviewsCount))
	if reviews < 0 {
		reviews = 0
	}

	return &models.BusinessRecord{
		Name:        name,
		Score:       score,
		ReviewCount: reviews,
		Area:        n.resolveArea(raw),
		Tags:        resolveTags(raw),
		Notes:       resolveNotes(raw),
		HoursToday:  n.resolveHours(raw),
		Website:     strings.TrimSpace(raw.Website),
		Phone:       NormalizePhone(raw.Phone),
		MapURL:      strings.TrimSpace(raw.URL),
		Raw:         raw,
	}
}

// resolveArea picks the most specific locality available, falling back to
// the configured default.
func (n *Normalizer) resolveArea(raw *models.RawRecord) string {
	area := firstNonEmpty(raw.Neighborhood, raw.Area, raw.City)
	if area == "" {
		area = n.FallbackArea
	}
	return strings.TrimSpace(area)
}

// resolveHours prefers the legacy display string, then today's scheduled
// hours, then the first non-empty schedule row.
func (n *Normalizer) resolveHours(raw *models.RawRecord) string {
	if hours := strings.TrimSpace(raw.Hours); hours != "" {
		return hours
	}
	if today := TodayHours(raw.OpeningHours, n.Now()); today != "" {
		return today
	}
	return FirstScheduleRow(raw.OpeningHours)
}

// resolveTags uses explicit services verbatim when present, otherwise
// derives tags from free text. Both paths get the additive consolidation
// pass, so curated and scraped records end up in the same tag vocabulary.
func resolveTags(raw *models.RawRecord) []string {
	if len(raw.Services) > 0 {
		return ConsolidateTags(raw.Services)
	}
	return ConsolidateTags(DeriveTags(raw))
}

// resolveNotes uses the explicit notes field when set, otherwise synthesizes
// a line from the address parts, with a verification disclaimer appended for
// "maybe"-confidence records.
func resolveNotes(raw *models.RawRecord) string {
	if notes := strings.TrimSpace(raw.Notes); notes != "" {
		return notes
	}

	address := strings.TrimSpace(raw.Address)
	if address == "" {
		address = joinNonEmpty(", ", raw.Street, raw.City, raw.State)
	}

	if strings.EqualFold(strings.TrimSpace(raw.Confidence), "maybe") {
		return joinNonEmpty(" · ", address, VERIFY_DISCLAIMER)
	}
	return address
}

// NormalizePhone keeps digits and a leading "+" only, dropping formatting
// punctuation and whitespace.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if (r >= '0' && r <= '9') || r == '+' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 5 {
		return 5
	}
	return score
}

func firstNumber(values ...*models.FlexNumber) float64 {
	for _, v := range values {
		if v != nil {
			return v.Float()
		}
	}
	return 0
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func joinNonEmpty(sep string, values ...string) string {
	var parts []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, sep)
}
