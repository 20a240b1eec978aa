package models

// BusinessRecord is the canonical, normalized form of a raw listing. Once
// built it is treated as read-only; the query engine only copies and
// reorders these values.
type BusinessRecord struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Score       float64    `json:"score"`
	ReviewCount int        `json:"review_count"`
	Area        string     `json:"area"`
	Tags        []string   `json:"tags"`
	Notes       string     `json:"notes,omitempty"`
	HoursToday  string     `json:"hours_today,omitempty"`
	Website     string     `json:"website,omitempty"`
	Phone       string     `json:"phone,omitempty"`
	MapURL      string     `json:"map_url,omitempty"`
	Raw         *RawRecord `json:"-"`
}

// HasTag reports whether the record carries the given tag exactly.
func (b *BusinessRecord) HasTag(tag string) bool {
	for _, t := range b.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
