// Package schema maps the canonical catalog to schema.org LocalBusiness
// JSON-LD. The mapping is a static, one-way transform; nothing here feeds
// back into the query pipeline.
package schema

import (
	"github.com/Kent-Taylor/Tree-services-directory/models"
)

const schemaContext = "https://schema.org"

type PostalAddress struct {
	Type            string `json:"@type"`
	AddressLocality string `json:"addressLocality"`
	AddressRegion   string `json:"addressRegion"`
	AddressCountry  string `json:"addressCountry"`
}

type AdministrativeArea struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

type AggregateRating struct {
	Type        string  `json:"@type"`
	RatingValue float64 `json:"ratingValue"`
	ReviewCount int     `json:"reviewCount"`
}

type LocalBusiness struct {
	Context         string             `json:"@context"`
	Type            string             `json:"@type"`
	ID              string             `json:"@id"`
	Name            string             `json:"name"`
	URL             string             `json:"url,omitempty"`
	Telephone       string             `json:"telephone,omitempty"`
	Address         PostalAddress      `json:"address"`
	AreaServed      AdministrativeArea `json:"areaServed"`
	OpeningHours    string             `json:"openingHours,omitempty"`
	AggregateRating *AggregateRating   `json:"aggregateRating,omitempty"`
}

// LocalBusinessSchemas maps each canonical record to a LocalBusiness entry.
// The aggregate rating is emitted only when both a rating and reviews exist.
func LocalBusinessSchemas(records []models.BusinessRecord) []LocalBusiness {
	schemas := make([]LocalBusiness, 0, len(records))
	for i := range records {
		r := &records[i]

		locality := r.Area
		if locality == "" {
			locality = "Knoxville"
		}

		entry := LocalBusiness{
			Context:   schemaContext,
			Type:      "LocalBusiness",
			ID:        r.Website + "#localbusiness",
			Name:      r.Name,
			URL:       r.Website,
			Telephone: r.Phone,
			Address: PostalAddress{
				Type:            "PostalAddress",
				AddressLocality: locality,
				AddressRegion:   "TN",
				AddressCountry:  "US",
			},
			AreaServed: AdministrativeArea{
				Type: "AdministrativeArea",
				Name: "Knoxville, TN",
			},
			OpeningHours: r.HoursToday,
		}

		if r.Score > 0 && r.ReviewCount > 0 {
			entry.AggregateRating = &AggregateRating{
				Type:        "AggregateRating",
				RatingValue: r.Score,
				ReviewCount: r.ReviewCount,
			}
		}

		schemas = append(schemas, entry)
	}
	return schemas
}
