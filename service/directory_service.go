package services

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/Kent-Taylor/Tree-services-directory/config"
	"github.com/Kent-Taylor/Tree-services-directory/directory"
	"github.com/Kent-Taylor/Tree-services-directory/models"
)

// DirectoryService owns the canonical catalog and answers queries against
// it. The catalog is replaced wholesale under the lock (an atomic swap), so
// a query never observes a half-built collection.
type DirectoryService struct {
	mu         sync.RWMutex
	catalog    []models.BusinessRecord
	normalizer *directory.Normalizer
}

// NewDirectoryService constructs a DirectoryService.
func NewDirectoryService(normalizer *directory.Normalizer) *DirectoryService {
	return &DirectoryService{normalizer: normalizer}
}

// BuildCatalog normalizes the raw records, drops the unusable ones, assigns
// IDs, and swaps the result in as the new catalog. Returns the number of
// records kept.
func (s *DirectoryService) BuildCatalog(raws []models.RawRecord) int {
	catalog := make([]models.BusinessRecord, 0, len(raws))
	for i := range raws {
		record := s.normalizer.Normalize(&raws[i])
		if record == nil {
			continue
		}
		record.ID = uuid.NewString()
		catalog = append(catalog, *record)
	}

	s.mu.Lock()
	s.catalog = catalog
	s.mu.Unlock()
	return len(catalog)
}

// ReplaceCatalog swaps in an already-canonical catalog, e.g. one loaded from
// the Redis cache at boot.
func (s *DirectoryService) ReplaceCatalog(catalog []models.BusinessRecord) {
	s.mu.Lock()
	s.catalog = catalog
	s.mu.Unlock()
}

// Catalog returns a copy of the canonical collection.
func (s *DirectoryService) Catalog() []models.BusinessRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.BusinessRecord, len(s.catalog))
	copy(out, s.catalog)
	return out
}

// Query runs the filter/sort/paginate pipeline for the given state.
func (s *DirectoryService) Query(state *models.QueryState) models.QueryResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return directory.Query(s.catalog, state)
}

// Facets returns the dropdown options derived from the catalog.
func (s *DirectoryService) Facets() (areas, services []string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return directory.AllAreas(s.catalog), directory.AllServices(s.catalog)
}

// Get looks up one record by ID.
func (s *DirectoryService) Get(id string) (*models.BusinessRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.catalog {
		if s.catalog[i].ID == id {
			record := s.catalog[i]
			return &record, true
		}
	}
	return nil, false
}

// Summary renders the result-count line shown above the list.
func (s *DirectoryService) Summary(total int) string {
	return fmt.Sprintf(config.DIRECTORY_SUMMARY_FORMAT, total, config.DEFAULT_AREA)
}
