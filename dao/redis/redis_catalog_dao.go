package redis

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/Kent-Taylor/Tree-services-directory/db"
	"github.com/Kent-Taylor/Tree-services-directory/models"
)

const CATALOG_MEMBER_KEY_FORMAT_V1 = "business_catalog_v1:%s"
const CATALOG_MEMBER_KEY_PATTERN_V1 = "business_catalog_v1:*"

// RedisCatalogDAO caches the canonical business catalog in Redis so a
// freshly booted instance can serve a warm catalog before its first refresh.
type RedisCatalogDAO struct {
	client db.RedisClient
}

// NewRedisCatalogDAO initializes a RedisCatalogDAO with the Redis client.
func NewRedisCatalogDAO(client db.RedisClient) *RedisCatalogDAO {
	return &RedisCatalogDAO{client: client}
}

// UpsertBusiness stores one canonical record as JSON under its ID key.
func (dao *RedisCatalogDAO) UpsertBusiness(record models.BusinessRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal business %s: %w", record.ID, err)
	}
	key := fmt.Sprintf(CATALOG_MEMBER_KEY_FORMAT_V1, record.ID)
	if err := dao.client.Set(key, string(data)); err != nil {
		return fmt.Errorf("failed to set business %s in redis: %w", record.ID, err)
	}
	return nil
}

// GetBusiness retrieves one cached record by ID.
func (dao *RedisCatalogDAO) GetBusiness(id string) (*models.BusinessRecord, error) {
	key := fmt.Sprintf(CATALOG_MEMBER_KEY_FORMAT_V1, id)
	str, err := dao.client.Get(key)
	if err != nil {
		return nil, fmt.Errorf("failed to get business %s from redis: %w", id, err)
	}
	var record models.BusinessRecord
	if err := json.Unmarshal([]byte(str), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal business JSON: %w", err)
	}
	return &record, nil
}

// ListCatalogIDs returns the IDs of every cached record.
func (dao *RedisCatalogDAO) ListCatalogIDs() ([]string, error) {
	keys, err := dao.client.Keys(CATALOG_MEMBER_KEY_PATTERN_V1)
	if err != nil {
		return nil, fmt.Errorf("failed to list catalog keys: %w", err)
	}
	prefix := fmt.Sprintf(CATALOG_MEMBER_KEY_FORMAT_V1, "")
	ids := make([]string, 0, len(keys))
	for _, k := range keys {
		ids = append(ids, strings.TrimPrefix(k, prefix))
	}
	return ids, nil
}

// LoadCatalog returns every record in the cache. Entries that fail to parse
// are skipped with a log line rather than failing the whole load.
func (dao *RedisCatalogDAO) LoadCatalog() ([]models.BusinessRecord, error) {
	keys, err := dao.client.Keys(CATALOG_MEMBER_KEY_PATTERN_V1)
	if err != nil {
		return nil, fmt.Errorf("failed to list catalog keys: %w", err)
	}

	records := make([]models.BusinessRecord, 0, len(keys))
	for _, key := range keys {
		str, err := dao.client.Get(key)
		if err != nil {
			log.Printf("[RedisCatalogDAO] Skipping %s: %v", key, err)
			continue
		}
		var record models.BusinessRecord
		if err := json.Unmarshal([]byte(str), &record); err != nil {
			log.Printf("[RedisCatalogDAO] Skipping unparseable %s: %v", key, err)
			continue
		}
		records = append(records, record)
	}
	return records, nil
}

// SaveCatalog replaces the cached catalog with the given records, removing
// any stale members from previous refreshes.
func (dao *RedisCatalogDAO) SaveCatalog(records []models.BusinessRecord) error {
	stale, err := dao.client.Keys(CATALOG_MEMBER_KEY_PATTERN_V1)
	if err != nil {
		return fmt.Errorf("failed to list stale catalog keys: %w", err)
	}
	for _, key := range stale {
		if err := dao.client.Del(key); err != nil {
			log.Printf("[RedisCatalogDAO] Failed to delete stale key %s: %v", key, err)
		}
	}

	for i := range records {
		if err := dao.UpsertBusiness(records[i]); err != nil {
			return err
		}
	}
	log.Printf("[RedisCatalogDAO] Cached %d businesses", len(records))
	return nil
}
