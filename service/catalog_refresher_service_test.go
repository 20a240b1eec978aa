package services

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	redisdao "github.com/Kent-Taylor/Tree-services-directory/dao/redis"
	"github.com/Kent-Taylor/Tree-services-directory/db"
	"github.com/Kent-Taylor/Tree-services-directory/models"
)

// stubRecordsAPI serves canned raw records, standing in for the scrape feed.
type stubRecordsAPI struct {
	records []models.RawRecord
	err     error
}

func (s *stubRecordsAPI) FetchRawRecords() ([]models.RawRecord, error) {
	return s.records, s.err
}

func writeCuratedFixture(t *testing.T) string {
	t.Helper()
	f, err := os.CreateTemp("", "curated*.json")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	content := `[{"name": "Cooper's Tree Service", "services": ["Tree Removal"], "rating": 4.8, "reviews": 200}]`
	if _, err := f.Write([]byte(content)); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}
	f.Close()
	return f.Name()
}

func TestRefreshCatalog_CombinesCuratedAndScrapedSources(t *testing.T) {
	curated := writeCuratedFixture(t)
	defer os.Remove(curated)

	feed := &stubRecordsAPI{records: []models.RawRecord{
		{Title: "Knox Tree Guys", CategoryName: "Tree service"},
	}}

	svc := newTestService()
	refresher := NewCatalogRefresherService(svc, feed, nil, nil, curated)

	err := refresher.RefreshCatalog()

	assert.NoError(t, err)
	catalog := svc.Catalog()
	assert.Len(t, catalog, 2)
	assert.Equal(t, "Cooper's Tree Service", catalog[0].Name)
	assert.Equal(t, "Knox Tree Guys", catalog[1].Name)
}

func TestRefreshCatalog_FeedFailureKeepsCuratedRecords(t *testing.T) {
	curated := writeCuratedFixture(t)
	defer os.Remove(curated)

	feed := &stubRecordsAPI{err: errors.New("feed down")}

	svc := newTestService()
	refresher := NewCatalogRefresherService(svc, feed, nil, nil, curated)

	err := refresher.RefreshCatalog()

	assert.NoError(t, err)
	assert.Len(t, svc.Catalog(), 1)
}

func TestRefreshCatalog_UpdatesRedisCache(t *testing.T) {
	curated := writeCuratedFixture(t)
	defer os.Remove(curated)

	dao := redisdao.NewRedisCatalogDAO(db.NewMockRedisClient(context.Background()))
	svc := newTestService()
	refresher := NewCatalogRefresherService(svc, &stubRecordsAPI{}, dao, nil, curated)

	assert.NoError(t, refresher.RefreshCatalog())

	cached, err := dao.LoadCatalog()
	assert.NoError(t, err)
	assert.Len(t, cached, 1)
}

func TestWarmFromCache(t *testing.T) {
	dao := redisdao.NewRedisCatalogDAO(db.NewMockRedisClient(context.Background()))
	assert.NoError(t, dao.SaveCatalog([]models.BusinessRecord{
		{ID: "1", Name: "Cached Business"},
	}))

	svc := newTestService()
	refresher := NewCatalogRefresherService(svc, &stubRecordsAPI{}, dao, nil, "")

	warmed := refresher.WarmFromCache()

	assert.Equal(t, 1, warmed)
	assert.Equal(t, "Cached Business", svc.Catalog()[0].Name)
}

func TestWarmFromCache_NoDao(t *testing.T) {
	svc := newTestService()
	refresher := NewCatalogRefresherService(svc, &stubRecordsAPI{}, nil, nil, "")
	assert.Equal(t, 0, refresher.WarmFromCache())
}
