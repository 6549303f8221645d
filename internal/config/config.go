package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config carries everything the process needs. It is built once in main and
// passed by reference into constructors; request-handling code never reads
// the environment.
type Config struct {
	Addr        string
	DatabaseURL string

	GoogleBooksBaseURL string
	GoogleBooksTimeout time.Duration
	GoogleBooksRPS     int

	AllowedOrigins []string
	MaxBodySize    int64

	Covers CoverStorage
}

// CoverStorage configures the S3-compatible bucket for cover images.
// Enabled() is false when no bucket is set; the cover endpoint then
// reports the feature as unavailable instead of failing at startup.
type CoverStorage struct {
	Endpoint        string
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	PublicBaseURL   string
}

func (c CoverStorage) Enabled() bool { return c.Bucket != "" }

func Load() (*Config, error) {
	cfg := &Config{
		Addr:               getEnv("APP_ADDR", ":8080"),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		GoogleBooksBaseURL: getEnv("GOOGLE_BOOKS_BASE_URL", "https://www.googleapis.com/books/v1/volumes"),
		GoogleBooksTimeout: 10 * time.Second,
		GoogleBooksRPS:     2,
		MaxBodySize:        10 << 20,
		Covers: CoverStorage{
			Endpoint:        os.Getenv("AWS_ENDPOINT"),
			Region:          getEnv("AWS_REGION", "auto"),
			Bucket:          os.Getenv("AWS_BUCKET"),
			AccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
			PublicBaseURL:   strings.TrimRight(os.Getenv("COVERS_PUBLIC_BASE_URL"), "/"),
		},
	}

	if v := os.Getenv("GOOGLE_BOOKS_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("GOOGLE_BOOKS_TIMEOUT: invalid duration %q", v)
		}
		cfg.GoogleBooksTimeout = d
	}
	if v := os.Getenv("MAX_BODY_SIZE"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("MAX_BODY_SIZE: invalid size %q", v)
		}
		cfg.MaxBodySize = n
	}
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL not set")
	}
	if cfg.Covers.Enabled() && cfg.Covers.PublicBaseURL == "" {
		return nil, errors.New("COVERS_PUBLIC_BASE_URL required when AWS_BUCKET is set")
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
