package records

import (
	"encoding/json"

	"github.com/Kent-Taylor/Tree-services-directory/api"
	"github.com/Kent-Taylor/Tree-services-directory/models"
	"github.com/Kent-Taylor/Tree-services-directory/util"
)

// RecordsApiClient fetches a raw record feed over HTTP. The feed may be a
// bare JSON array or a container object; unwrapping follows the same probe
// order as file input.
type RecordsApiClient struct {
	*api.HTTPClient
	endpoint string
}

// NewRecordsApiClient creates a client for the given base URL and endpoint
// path.
func NewRecordsApiClient(httpClient *api.HTTPClient, endpoint string) *RecordsApiClient {
	return &RecordsApiClient{
		HTTPClient: httpClient,
		endpoint:   endpoint,
	}
}

// FetchRawRecords downloads and unwraps the record feed.
func (c *RecordsApiClient) FetchRawRecords() ([]models.RawRecord, error) {
	var payload json.RawMessage
	if err := c.Request("GET", c.endpoint, nil, nil, &payload); err != nil {
		return nil, err
	}
	return util.UnwrapRawRecords(payload)
}
