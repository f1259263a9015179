package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
)

type Config struct {
	SupabaseURL string
	SupabaseKey string

	// DatabaseURL switches goals reads to a direct Postgres connection.
	DatabaseURL string

	Port        string
	CORSOrigins []string
}

func Load() (*Config, error) {
	var missing []string

	supabaseURL := strings.TrimSpace(os.Getenv("SUPABASE_URL"))
	if supabaseURL == "" {
		missing = append(missing, "SUPABASE_URL")
	}
	supabaseKey := strings.TrimSpace(os.Getenv("SUPABASE_ANON_KEY"))
	if supabaseKey == "" {
		missing = append(missing, "SUPABASE_ANON_KEY")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required env: %s", strings.Join(missing, ", "))
	}

	u, err := url.Parse(supabaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid SUPABASE_URL: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, errors.New("invalid SUPABASE_URL: expected http(s)://host")
	}

	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080" // fallback
	}

	origins := []string{"*"}
	if raw := os.Getenv("CORS_ALLOWED_ORIGINS"); strings.TrimSpace(raw) != "" {
		origins = origins[:0]
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	return &Config{
		SupabaseURL: strings.TrimRight(supabaseURL, "/"),
		SupabaseKey: supabaseKey,
		DatabaseURL: strings.TrimSpace(os.Getenv("DATABASE_URL")),
		Port:        port,
		CORSOrigins: origins,
	}, nil
}

func (c *Config) Addr() string {
	return ":" + c.Port
}
