package main

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/Kent-Taylor/Tree-services-directory/config"
	"github.com/Kent-Taylor/Tree-services-directory/di"
)

func main() {
	_ = godotenv.Load()

	env := os.Getenv("DIRECTORY_ENV")
	if env == "" {
		env = "dev"
	}

	container := di.NewContainer(env)

	// Serve the cached catalog immediately if one exists, then rebuild.
	if warmed := container.RefresherService.WarmFromCache(); warmed > 0 {
		log.Printf("Serving warm catalog (%d records) while refreshing", warmed)
	}
	if err := container.RefresherService.RefreshCatalog(); err != nil {
		log.Printf("Initial catalog refresh failed: %v", err)
	}
	container.RefresherService.StartPeriodicJob(config.CATALOG_REFRESHER_SCHEDULE_MINUTES * time.Minute)

	container.DirectoryHttpServer.Start()
}
