package main

import (
	"errors"
	"io/fs"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"

	"my-compass-api/internal/config"
	"my-compass-api/internal/db"
	"my-compass-api/internal/goals"
	"my-compass-api/internal/server"
	"my-compass-api/internal/supabase"
)

func main() {
	if err := loadDotenv(); err != nil {
		log.Printf("[WARN] .env: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ config: %v", err)
	}

	client, err := supabase.New(cfg.SupabaseURL, cfg.SupabaseKey)
	if err != nil {
		log.Fatalf("❌ supabase client: %v", err)
	}

	if info, ok := supabase.InspectKey(cfg.SupabaseKey); ok {
		log.Printf("[INFO] supabase key role=%q", info.Role)
		if info.Expired(time.Now()) {
			log.Printf("[WARN] supabase key expired at %s", info.ExpiresAt.Format(time.RFC3339))
		}
	}

	var src goals.Source = client
	if cfg.DatabaseURL != "" {
		database, err := db.Connect(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("❌ Failed to connect DB: %v", err)
		}
		defer database.Close()

		log.Println("✅ Connected to PostgreSQL, reading goals directly")
		src = db.NewSource(database)
	}

	handler := server.New(src, server.Options{AllowedOrigins: cfg.CORSOrigins})

	log.Printf("🚀 API server is running on %s", cfg.Addr())
	log.Fatal(http.ListenAndServe(cfg.Addr(), handler))
}

// loadDotenv is a no-op when the file is absent; real deployments set the
// environment directly. A present but broken file is reported.
func loadDotenv(filenames ...string) error {
	if err := godotenv.Load(filenames...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
