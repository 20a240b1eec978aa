package models

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// FlexNumber decodes a JSON number that may arrive as a number, a numeric
// string, or null. Anything that does not parse to a finite float becomes 0.
type FlexNumber float64

func (n *FlexNumber) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		*n = 0
		return nil
	}
	s = strings.Trim(s, `"`)
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		*n = 0
		return nil
	}
	*n = FlexNumber(f)
	return nil
}

// Float returns the value, guarding against non-finite floats one more time
// for records constructed in code rather than decoded from JSON.
func (n *FlexNumber) Float() float64 {
	if n == nil {
		return 0
	}
	f := float64(*n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// OpeningHoursRow is one day's entry in a scraped weekly schedule.
type OpeningHoursRow struct {
	Day   string `json:"day"`
	Hours string `json:"hours"`
}

// RawRecord is a business listing before normalization. It unifies the two
// input shapes we accept: the curated legacy schema (name/services/rating/
// reviews/hours) and the scraped schema (title/categoryName/totalScore/
// reviewsCount/openingHours). Every field is optional; absent fields decode
// to their zero value and never fail.
type RawRecord struct {
	// Legacy schema
	Name     string      `json:"name,omitempty"`
	Services []string    `json:"services,omitempty"`
	Rating   *FlexNumber `json:"rating,omitempty"`
	Reviews  *FlexNumber `json:"reviews,omitempty"`
	Hours    string      `json:"hours,omitempty"`

	// Scraped schema
	Title        string            `json:"title,omitempty"`
	CategoryName string            `json:"categoryName,omitempty"`
	Categories   []string          `json:"categories,omitempty"`
	TotalScore   *FlexNumber       `json:"totalScore,omitempty"`
	ReviewsCount *FlexNumber       `json:"reviewsCount,omitempty"`
	OpeningHours []OpeningHoursRow `json:"openingHours,omitempty"`

	// Location fields, both schemas
	Neighborhood string `json:"neighborhood,omitempty"`
	Area         string `json:"area,omitempty"`
	City         string `json:"city,omitempty"`
	State        string `json:"state,omitempty"`
	Street       string `json:"street,omitempty"`
	Address      string `json:"address,omitempty"`

	// Contact and free text
	Website    string `json:"website,omitempty"`
	Phone      string `json:"phone,omitempty"`
	URL        string `json:"url,omitempty"`
	Notes      string `json:"notes,omitempty"`
	Confidence string `json:"confidence,omitempty"`

	// Scraped extras, kept opaque for the "more details" rendering only.
	// The query pipeline never inspects these.
	PopularTimesHistogram json.RawMessage `json:"popularTimesHistogram,omitempty"`
	OwnerUpdates          json.RawMessage `json:"ownerUpdates,omitempty"`
	Instagrams            []string        `json:"instagrams,omitempty"`
	Facebooks             []string        `json:"facebooks,omitempty"`
}
