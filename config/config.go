// Package config loads application settings from a .env file and environment variables.
// Environment variables always take precedence over .env file values.
package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Row store backends.
const (
	StorePostgres = "postgres"
	StoreCSV      = "csv"
)

// Config holds all application configuration.
type Config struct {
	// Row store backend: "postgres" or "csv".
	Store string

	// PostgreSQL – either set DatabaseURL directly, or the individual fields.
	DatabaseURL string
	DBUser      string
	DBPass      string
	DBHost      string
	DBPort      string
	DBName      string
	DBSSLMode   string

	// Directory holding the CSV tables when Store is "csv".
	DataDir string

	// Single-operator credential: username plus a bcrypt hash of the
	// password (generate with cmd/hashpass).
	AuthUser     string
	AuthPassHash string

	// JWT signing secret (required in production).
	JWTSecret string

	// Session behaviour.
	Timezone        string
	SessionDuration time.Duration // 0 means sessions never expire
	ShotScope       string        // "session", "location" or "global"
	SummaryWindow   int

	// Bounded retry for row-store round trips.
	StoreRetries int

	// Server
	Debug      bool
	Port       string
	TLSDomains []string
}

// Load reads configuration from a .env file (if present) and then from
// environment variables. Environment variables always win.
func Load() *Config {
	v := newViper()

	// Defaults
	v.SetDefault("STORE", StorePostgres)
	v.SetDefault("DB_USER", "alli")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_NAME", "golfdata")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DATA_DIR", "data")
	v.SetDefault("TIMEZONE", "US/Eastern")
	v.SetDefault("SESSION_DURATION_MIN", 0)
	v.SetDefault("SHOT_SCOPE", "session")
	v.SetDefault("SUMMARY_WINDOW", 10)
	v.SetDefault("STORE_RETRIES", 3)
	v.SetDefault("PORT", ":9000")
	v.SetDefault("TLS_DOMAINS", "")
	v.SetDefault("DEBUG", false)

	cfg := &Config{
		Store:           v.GetString("STORE"),
		DatabaseURL:     v.GetString("DATABASE_URL"),
		DBUser:          v.GetString("DB_USER"),
		DBPass:          v.GetString("DB_PASS"),
		DBHost:          v.GetString("DB_HOST"),
		DBPort:          v.GetString("DB_PORT"),
		DBName:          v.GetString("DB_NAME"),
		DBSSLMode:       v.GetString("DB_SSLMODE"),
		DataDir:         v.GetString("DATA_DIR"),
		AuthUser:        v.GetString("AUTH_USER"),
		AuthPassHash:    v.GetString("AUTH_PASS_HASH"),
		JWTSecret:       v.GetString("JWT_SECRET"),
		Timezone:        v.GetString("TIMEZONE"),
		SessionDuration: time.Duration(v.GetInt("SESSION_DURATION_MIN")) * time.Minute,
		ShotScope:       v.GetString("SHOT_SCOPE"),
		SummaryWindow:   v.GetInt("SUMMARY_WINDOW"),
		StoreRetries:    v.GetInt("STORE_RETRIES"),
		Debug:           v.GetBool("DEBUG"),
		Port:            v.GetString("PORT"),
		TLSDomains:      splitTrimmed(v.GetString("TLS_DOMAINS")),
	}

	cfg.validate()
	return cfg
}

// PostgresDSN returns the full PostgreSQL connection string.
// DATABASE_URL takes precedence over individual fields.
func (c *Config) PostgresDSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return "postgres://" + c.DBUser + ":" + c.DBPass + "@" + c.DBHost + ":" + c.DBPort +
		"/" + c.DBName + "?sslmode=" + c.DBSSLMode
}

// JWTKey returns the JWT signing key as a byte slice.
func (c *Config) JWTKey() []byte {
	return []byte(c.JWTSecret)
}

// Location resolves the configured timezone, falling back to UTC when the
// name cannot be loaded.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		log.Printf("config: unknown timezone %q, using UTC", c.Timezone)
		return time.UTC
	}
	return loc
}

func (c *Config) validate() {
	switch c.Store {
	case StorePostgres:
		if c.DatabaseURL == "" && c.DBPass == "" {
			log.Fatal("config: DATABASE_URL or DB_PASS must be set for the postgres store")
		}
	case StoreCSV:
		if c.DataDir == "" {
			log.Fatal("config: DATA_DIR must be set for the csv store")
		}
	default:
		log.Fatalf("config: unknown STORE %q (want postgres or csv)", c.Store)
	}
	if c.JWTSecret == "" {
		log.Fatal("config: JWT_SECRET must be set")
	}
	if c.AuthUser == "" || c.AuthPassHash == "" {
		log.Fatal("config: AUTH_USER and AUTH_PASS_HASH must be set (see cmd/hashpass)")
	}
	switch c.ShotScope {
	case "session", "location", "global":
	default:
		log.Fatalf("config: unknown SHOT_SCOPE %q (want session, location or global)", c.ShotScope)
	}
}

func newViper() *viper.Viper {
	// Silently load .env – OK if the file doesn't exist (production uses real env vars).
	if err := godotenv.Load(); err != nil {
		log.Println("config: no .env file found, using environment variables only")
	}

	v := viper.New()
	v.AutomaticEnv()
	return v
}

func splitTrimmed(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
