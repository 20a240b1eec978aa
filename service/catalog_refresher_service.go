package services

import (
	"log"
	"os"
	"time"

	"github.com/Kent-Taylor/Tree-services-directory/api/records"
	redisdao "github.com/Kent-Taylor/Tree-services-directory/dao/redis"
	sqlitedao "github.com/Kent-Taylor/Tree-services-directory/dao/sqlite"
	"github.com/Kent-Taylor/Tree-services-directory/models"
	"github.com/Kent-Taylor/Tree-services-directory/util"
)

// CatalogRefresherService rebuilds the canonical catalog from its sources:
// the curated dataset on disk plus the scraped record feed. After a rebuild
// it updates the Redis cache and the SQLite snapshot when those are wired.
type CatalogRefresherService struct {
	directory   *DirectoryService
	recordsAPI  records.RecordsAPI
	catalogDao  *redisdao.RedisCatalogDAO
	snapshots   *sqlitedao.SnapshotStore
	curatedPath string
}

// NewCatalogRefresherService constructs a refresher. catalogDao and
// snapshots may be nil when those sinks are not configured.
func NewCatalogRefresherService(
	directory *DirectoryService,
	recordsAPI records.RecordsAPI,
	catalogDao *redisdao.RedisCatalogDAO,
	snapshots *sqlitedao.SnapshotStore,
	curatedPath string,
) *CatalogRefresherService {
	return &CatalogRefresherService{
		directory:   directory,
		recordsAPI:  recordsAPI,
		catalogDao:  catalogDao,
		snapshots:   snapshots,
		curatedPath: curatedPath,
	}
}

// StartPeriodicJob launches the background refresh loop at the given
// interval.
func (cr *CatalogRefresherService) StartPeriodicJob(interval time.Duration) {
	go cr.startPeriodicJob(interval)
}

func (cr *CatalogRefresherService) startPeriodicJob(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		log.Println("[CatalogRefresherService] Running periodic catalog refresh.")
		if err := cr.RefreshCatalog(); err != nil {
			log.Printf("[CatalogRefresherService] RefreshCatalog returned error: %v", err)
		} else {
			log.Println("[CatalogRefresherService] RefreshCatalog completed successfully.")
		}
	}
}

// RefreshCatalog gathers raw records from every source, rebuilds the
// canonical catalog, and propagates it to the cache and snapshot sinks.
func (cr *CatalogRefresherService) RefreshCatalog() error {
	raws := cr.collectRawRecords()
	kept := cr.directory.BuildCatalog(raws)
	log.Printf("[CatalogRefresherService] Built catalog: %d of %d raw records kept", kept, len(raws))

	catalog := cr.directory.Catalog()

	if cr.catalogDao != nil {
		if err := cr.catalogDao.SaveCatalog(catalog); err != nil {
			log.Printf("[CatalogRefresherService] Failed to cache catalog: %v", err)
		}
	}
	if cr.snapshots != nil {
		if err := cr.snapshots.ReplaceAll(catalog); err != nil {
			log.Printf("[CatalogRefresherService] Failed to snapshot catalog: %v", err)
		}
	}
	return nil
}

// WarmFromCache seeds the catalog from the Redis cache, so a restarted
// instance serves data before its first full refresh. Returns the number of
// records loaded.
func (cr *CatalogRefresherService) WarmFromCache() int {
	if cr.catalogDao == nil {
		return 0
	}
	cached, err := cr.catalogDao.LoadCatalog()
	if err != nil || len(cached) == 0 {
		return 0
	}
	cr.directory.ReplaceCatalog(cached)
	log.Printf("[CatalogRefresherService] Warmed catalog from cache: %d records", len(cached))
	return len(cached)
}

// collectRawRecords concatenates the curated dataset with the scraped feed.
// Either source may be absent; a refresh with partial sources still swaps in
// whatever was gathered.
func (cr *CatalogRefresherService) collectRawRecords() []models.RawRecord {
	var raws []models.RawRecord

	if cr.curatedPath != "" {
		if _, err := os.Stat(cr.curatedPath); err == nil {
			curated, err := util.ReadRawRecordsFromJSON(cr.curatedPath)
			if err != nil {
				log.Printf("[CatalogRefresherService] Failed to read curated dataset: %v", err)
			} else {
				raws = append(raws, curated...)
			}
		}
	}

	if cr.recordsAPI != nil {
		scraped, err := cr.recordsAPI.FetchRawRecords()
		if err != nil {
			log.Printf("[CatalogRefresherService] Failed to fetch scraped records: %v", err)
		} else {
			raws = append(raws, scraped...)
		}
	}

	return raws
}
