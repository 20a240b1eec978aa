package util

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/Kent-Taylor/Tree-services-directory/models"
)

// collectionKeys are the conventional container property names probed, in
// order, when the input document wraps its records in an object instead of
// being a bare array. The first collection-valued one wins.
var collectionKeys = []string{"items", "records", "businesses", "results", "data"}

// ReadRawRecordsFromJSON loads raw business records from JSON on disk. The
// document may be a bare array or a container object (see UnwrapRawRecords).
func ReadRawRecordsFromJSON(filePath string) ([]models.RawRecord, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	records, err := UnwrapRawRecords(data)
	if err != nil {
		return nil, fmt.Errorf("failed to unwrap records from %q: %w", filePath, err)
	}
	return records, nil
}

// UnwrapRawRecords decodes a record collection from a JSON document that is
// either a bare array or an object exposing the collection under one of the
// conventional container keys.
func UnwrapRawRecords(data []byte) ([]models.RawRecord, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var records []models.RawRecord
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, fmt.Errorf("failed to unmarshal record array: %w", err)
		}
		return records, nil
	}

	var container map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &container); err != nil {
		return nil, fmt.Errorf("failed to unmarshal record container: %w", err)
	}

	for _, key := range collectionKeys {
		raw, ok := container[key]
		if !ok {
			continue
		}
		inner := bytes.TrimSpace(raw)
		if len(inner) == 0 || inner[0] != '[' {
			continue
		}
		var records []models.RawRecord
		if err := json.Unmarshal(inner, &records); err != nil {
			return nil, fmt.Errorf("failed to unmarshal records under %q: %w", key, err)
		}
		return records, nil
	}

	return nil, fmt.Errorf("no record collection found under keys %v", collectionKeys)
}
