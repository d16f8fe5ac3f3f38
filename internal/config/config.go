package config

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	HTTPPort     string
	DatabaseDSN  string
	JWTSecret    string
	CORSEnabled  bool
	CORSOrigins  string
	APIPrefix    string // empty means unprefixed routes
	AuthRequired bool
	Features     Features
}

// Features selects which resource groups the service exposes. The deployed
// variants differ only in this set, so they are flags rather than forks.
type Features struct {
	Inventory          bool
	MenuItems          bool
	Orders             bool
	Reviews            bool
	BranchLinkOnCreate bool // whether POST /users accepts branchIds
}

func Load() *Config {
	cfg := &Config{
		HTTPPort:     getEnv("HTTP_PORT", "3000"),
		DatabaseDSN:  getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=lokanta port=5432 sslmode=disable"),
		JWTSecret:    getEnv("JWT_SECRET", ""),
		CORSEnabled:  getBool("CORS_ENABLED", true),
		CORSOrigins:  getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		APIPrefix:    getEnvAllowEmpty("API_PREFIX", "/api"),
		AuthRequired: getBool("AUTH_REQUIRED", false),
		Features: Features{
			Inventory:          getBool("FEATURE_INVENTORY", true),
			MenuItems:          getBool("FEATURE_MENU_ITEMS", true),
			Orders:             getBool("FEATURE_ORDERS", true),
			Reviews:            getBool("FEATURE_REVIEWS", true),
			BranchLinkOnCreate: getBool("FEATURE_BRANCH_LINK_ON_CREATE", true),
		},
	}

	if cfg.JWTSecret == "" {
		log.Fatal("[FATAL] JWT_SECRET is not set")
	}
	if len(cfg.JWTSecret) < 32 {
		log.Fatal("[FATAL] JWT_SECRET must be at least 32 characters")
	}

	// Orders and reviews both reference menu items.
	if (cfg.Features.Orders || cfg.Features.Reviews) && !cfg.Features.MenuItems {
		log.Fatal("[FATAL] FEATURE_ORDERS/FEATURE_REVIEWS require FEATURE_MENU_ITEMS")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getEnvAllowEmpty treats a set-but-empty variable as a real value. An empty
// API_PREFIX means unprefixed routes, not the default.
func getEnvAllowEmpty(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}

func getBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
