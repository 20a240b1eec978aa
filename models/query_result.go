package models

// QueryResult is one page of the filtered, sorted record set.
type QueryResult struct {
	Page       []BusinessRecord `json:"page"`
	Total      int              `json:"total"`
	TotalPages int              `json:"total_pages"`
}
