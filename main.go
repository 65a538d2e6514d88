package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"frambod/analytics"
	"frambod/api"
	"frambod/cache"
	"frambod/common"
	"frambod/content"
	"frambod/email"
	"frambod/site"
	"frambod/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	ctx := context.Background()

	contentDir := os.Getenv("CONTENT_DIR")
	if contentDir == "" {
		contentDir = "content-data"
	}
	local := storage.NewLocalStore(contentDir)

	var store storage.Store = local
	var blob *storage.BlobStore
	var uploader storage.Uploader = storage.NewLocalUploader("public/images", "/public/images")

	if bucket := os.Getenv("BLOB_BUCKET"); bucket != "" {
		cfg := storage.BlobConfig{
			Key:           os.Getenv("BLOB_KEY"),
			Secret:        os.Getenv("BLOB_SECRET"),
			Region:        os.Getenv("BLOB_REGION"),
			Endpoint:      os.Getenv("BLOB_ENDPOINT"),
			Bucket:        bucket,
			PublicBaseURL: os.Getenv("BLOB_PUBLIC_URL"),
		}

		var err error
		blob, err = storage.NewBlobStore(ctx, cfg)
		if err != nil {
			log.Fatal("Failed to connect to blob storage:", err)
		}
		store = blob
		uploader = storage.NewBlobUploader(blob)
		log.Println("Using blob storage bucket:", bucket)
	} else {
		log.Println("Using local content directory:", contentDir)
	}

	// First run on an empty store gets the default trilingual content.
	if err := content.NewSiteRepository(store).Seed(ctx); err != nil {
		log.Println("Error seeding site content:", err)
	}

	analyticsModule := analytics.NewAnalyticsModule(common.ConnectAnalyticsDb())
	contact := email.NewContactService()

	router := gin.Default()

	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		log.Fatal("SESSION_SECRET environment variable not set")
	}

	sessionStore := cookie.NewStore([]byte(sessionSecret))
	sessionStore.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		Secure:   false,
	})

	router.Use(sessions.Sessions("frambod-session", sessionStore))
	router.Use(cache.Middleware(10 * time.Minute))

	router.SetFuncMap(map[string]interface{}{
		"now": func() time.Time {
			return time.Now()
		},
		"domain": func() string {
			d := os.Getenv("DOMAIN")
			if d == "" {
				return "http://localhost:8080"
			}
			return d
		},
	})

	router.LoadHTMLGlob("*/views/*.html")

	router.Static("/public", "./public")

	apiModule := api.NewContentModule(api.Config{
		Store:     store,
		Local:     local,
		Blob:      blob,
		Uploader:  uploader,
		Analytics: analyticsModule,
		Contact:   contact,
	})
	apiModule.RegisterRoutes(router)

	siteModule := site.NewSiteModule(store, analyticsModule)
	siteModule.RegisterRoutes(router)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting server on port %s...", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
