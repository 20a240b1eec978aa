package records

import "github.com/Kent-Taylor/Tree-services-directory/models"

// RecordsAPI is the external source of raw business records (typically a
// scrape export feed). Implementations return records in either supported
// schema shape; normalization happens downstream.
type RecordsAPI interface {
	FetchRawRecords() ([]models.RawRecord, error)
}
