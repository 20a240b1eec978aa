package records

import (
	"github.com/Kent-Taylor/Tree-services-directory/models"
	"github.com/Kent-Taylor/Tree-services-directory/util"
)

// RecordsApiClientMock serves raw records from a JSON file on disk, standing
// in for the scrape feed in local runs and tests.
type RecordsApiClientMock struct {
	FilePath string
}

// NewRecordsApiClientMock creates a file-backed records source.
func NewRecordsApiClientMock(filePath string) *RecordsApiClientMock {
	return &RecordsApiClientMock{FilePath: filePath}
}

// FetchRawRecords reads and unwraps the backing file.
func (c *RecordsApiClientMock) FetchRawRecords() ([]models.RawRecord, error) {
	return util.ReadRawRecordsFromJSON(c.FilePath)
}
