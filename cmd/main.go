package main

import (
	"context"
	"log"

	"github.com/macadoo18/growing-up-server/config"
	"github.com/macadoo18/growing-up-server/controllers"
	"github.com/macadoo18/growing-up-server/routes"
	"github.com/macadoo18/growing-up-server/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := config.OpenDB(cfg)
	if err != nil {
		log.Fatalf("Failed to set up database: %v", err)
	}

	var uploader controllers.ImageUploader
	if cfg.S3Bucket != "" {
		s3Uploader, err := utils.NewS3Uploader(context.Background(), cfg.S3Region, cfg.S3Bucket, cfg.CloudFrontURL)
		if err != nil {
			log.Fatalf("Failed to set up S3 uploader: %v", err)
		}
		uploader = s3Uploader
	} else {
		log.Println("S3_BUCKET not set, image uploads disabled")
	}

	r := routes.SetupRouter(cfg, db, uploader)
	log.Fatal(r.Run(":" + cfg.Port))
}
