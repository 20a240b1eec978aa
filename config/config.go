package config

import (
	"os"
	"path/filepath"
)

// Server config
const SERVER_ADDRESS = ":8080"

// Redis config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// Catalog refresher config
const CATALOG_REFRESHER_SCHEDULE_MINUTES = 60

// Directory defaults
const DEFAULT_AREA = "Knoxville"
const DIRECTORY_SUMMARY_FORMAT = "%d companies found in %s area"

// Admin auth
const ADMIN_JWT_SECRET_ENV = "ADMIN_JWT_SECRET"

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const TREE_SERVICES_RESOURCE = "tree_services.json"
const SCRAPED_RECORDS_RESOURCE = "scraped_records.json"
const CATALOG_SNAPSHOT_DB = "catalog_snapshot.db"

// BaseDir returns the absolute path of the project root directory.
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

// GetResourcePath resolves a resource file name to an absolute path.
func GetResourcePath(resourceFile string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resourceFile)
}

// RedisAddress returns the Redis address, honoring the REDIS_ADDRESS
// environment override.
func RedisAddress() string {
	if addr, ok := os.LookupEnv("REDIS_ADDRESS"); ok {
		return addr
	}
	return REDIS_DB_ADDRESS
}

// AdminJWTSecret returns the HMAC secret guarding the admin endpoints, or ""
// when admin auth is not configured.
func AdminJWTSecret() string {
	return os.Getenv(ADMIN_JWT_SECRET_ENV)
}
