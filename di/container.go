package di

import (
	"context"
	"log"
	"os"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"github.com/Kent-Taylor/Tree-services-directory/api"
	"github.com/Kent-Taylor/Tree-services-directory/api/records"
	"github.com/Kent-Taylor/Tree-services-directory/config"
	redisdao "github.com/Kent-Taylor/Tree-services-directory/dao/redis"
	sqlitedao "github.com/Kent-Taylor/Tree-services-directory/dao/sqlite"
	"github.com/Kent-Taylor/Tree-services-directory/db"
	"github.com/Kent-Taylor/Tree-services-directory/directory"
	"github.com/Kent-Taylor/Tree-services-directory/server"
	"github.com/Kent-Taylor/Tree-services-directory/server/handlers"
	services "github.com/Kent-Taylor/Tree-services-directory/service"
)

// Container holds all application dependencies.
type Container struct {
	RedisClient         db.RedisClient
	CatalogDao          *redisdao.RedisCatalogDAO
	SnapshotStore       *sqlitedao.SnapshotStore
	RecordsAPI          records.RecordsAPI
	DirectoryService    *services.DirectoryService
	RefresherService    *services.CatalogRefresherService
	DirectoryHandler    *handlers.DirectoryHandler
	MuxRouter           *mux.Router
	Router              *server.Router
	DirectoryHttpServer *server.DirectoryHttpServer
}

// NewContainer initializes and wires up all dependencies. Outside of prod
// the container substitutes mocks for Redis and the records feed, so the
// service runs entirely from the files under resources/.
func NewContainer(env string) *Container {
	log.Printf("initializing container - env: %s", env)
	ctx := context.Background()

	// Redis: real client in prod, in-memory mock otherwise.
	var redisClient db.RedisClient
	if env == "prod" {
		client, err := db.NewCacheRedisClient(ctx, goredis.NewClient(&goredis.Options{
			Addr:     config.RedisAddress(),
			Password: config.REDIS_DB_PASSWORD,
			DB:       config.REDIS_DB,
		}))
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		redisClient = client
	} else {
		log.Printf("Using mock redis client")
		redisClient = db.NewMockRedisClient(ctx)
	}
	catalogDao := redisdao.NewRedisCatalogDAO(redisClient)

	// SQLite snapshot sink; the service still runs if it cannot open.
	var snapshotStore *sqlitedao.SnapshotStore
	snapshotStore, err := sqlitedao.NewSnapshotStore(config.GetResourcePath(config.CATALOG_SNAPSHOT_DB))
	if err != nil {
		log.Printf("Snapshot store unavailable: %v", err)
		snapshotStore = nil
	}

	// Records feed: remote in prod when configured, file-backed otherwise.
	var recordsAPI records.RecordsAPI
	if feedURL := os.Getenv("RECORDS_FEED_URL"); env == "prod" && feedURL != "" {
		log.Printf("Using records feed at %s", feedURL)
		recordsAPI = records.NewRecordsApiClient(api.NewHTTPClient(feedURL), "")
	} else {
		log.Printf("Using file-backed records feed")
		recordsAPI = records.NewRecordsApiClientMock(config.GetResourcePath(config.SCRAPED_RECORDS_RESOURCE))
	}

	normalizer := directory.NewNormalizer()
	directoryService := services.NewDirectoryService(normalizer)

	refresherService := services.NewCatalogRefresherService(
		directoryService,
		recordsAPI,
		catalogDao,
		snapshotStore,
		config.GetResourcePath(config.TREE_SERVICES_RESOURCE),
	)

	directoryHandler := handlers.NewDirectoryHandler(
		directoryService,
		refresherService,
		config.AdminJWTSecret(),
	)

	muxRouter := mux.NewRouter()
	router := server.NewRouter(directoryHandler, muxRouter)
	directoryHttpServer := server.NewDirectoryHttpServer(router, muxRouter, config.SERVER_ADDRESS)

	return &Container{
		RedisClient:         redisClient,
		CatalogDao:          catalogDao,
		SnapshotStore:       snapshotStore,
		RecordsAPI:          recordsAPI,
		DirectoryService:    directoryService,
		RefresherService:    refresherService,
		DirectoryHandler:    directoryHandler,
		MuxRouter:           muxRouter,
		Router:              router,
		DirectoryHttpServer: directoryHttpServer,
	}
}
