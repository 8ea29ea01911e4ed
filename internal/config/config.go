// Package config provides centralized configuration for the dochub server.
// All configurable values are loaded from environment variables with sensible defaults.
package config

import (
	"os"
	"strconv"
	"time"
)

// Sweep mode constants.
const (
	SweepModeUnseen = "unseen"
	SweepModeAll    = "all"
)

// Config holds all server configuration values.
type Config struct {
	// Port is the HTTP server listen port.
	Port string

	// DataDir is the root of the persisted areas (uploads, outputs).
	DataDir string

	// DBPath is the path to the SQLite document registry.
	DBPath string

	// IMAPAddr is the host:port of the IMAP server.
	IMAPAddr string

	// IMAPUser is the mail account username.
	IMAPUser string

	// IMAPPassword is the mail account (app) password.
	IMAPPassword string

	// IMAPMailbox is the mailbox to sweep.
	IMAPMailbox string

	// SweepMode selects which messages a sweep considers: "unseen" or "all".
	SweepMode string

	// SweepLimit caps the number of messages fetched per sweep.
	SweepLimit int

	// SweepInterval is the cadence of the background sweep worker. Zero disables it.
	SweepInterval time.Duration

	// TranslateProvider selects the translation backend: "google", "libretranslate", "stub".
	TranslateProvider string

	// LibreTranslateURL is the base URL of a LibreTranslate instance.
	LibreTranslateURL string

	// LibreTranslateKey is the optional LibreTranslate API key.
	LibreTranslateKey string

	// HTTPTimeout is the timeout for outgoing HTTP requests (translation).
	HTTPTimeout time.Duration

	// MaxUploadSize is the maximum accepted request body in bytes.
	MaxUploadSize int64

	// CORSOrigin is the allowed CORS origin. Defaults to "*".
	CORSOrigin string
}

// Load reads configuration from environment variables, applying defaults.
func Load() Config {
	return Config{
		Port:              envOr("PORT", "8080"),
		DataDir:           envOr("DATA_DIR", "data"),
		DBPath:            envOr("DB_PATH", "dochub.db"),
		IMAPAddr:          envOr("IMAP_ADDR", "imap.gmail.com:993"),
		IMAPUser:          os.Getenv("IMAP_USER"),
		IMAPPassword:      os.Getenv("IMAP_PASSWORD"),
		IMAPMailbox:       envOr("IMAP_MAILBOX", "INBOX"),
		SweepMode:         envOr("SWEEP_MODE", SweepModeUnseen),
		SweepLimit:        envInt("SWEEP_LIMIT", 10),
		SweepInterval:     envDuration("SWEEP_INTERVAL", 0),
		TranslateProvider: envOr("TRANSLATE_PROVIDER", "google"),
		LibreTranslateURL: envOr("LIBRETRANSLATE_URL", "http://localhost:5000"),
		LibreTranslateKey: os.Getenv("LIBRETRANSLATE_API_KEY"),
		HTTPTimeout:       envDuration("HTTP_TIMEOUT", 60*time.Second),
		MaxUploadSize:     envInt64("MAX_UPLOAD_SIZE", 20<<20),
		CORSOrigin:        envOr("CORS_ORIGIN", "*"),
	}
}

// MailConfigured reports whether mailbox sweeping can run at all.
func (c Config) MailConfigured() bool {
	return c.IMAPUser != "" && c.IMAPPassword != ""
}

// UseStubTranslator returns true when no usable translation backend is configured.
func (c Config) UseStubTranslator() bool {
	return c.TranslateProvider == "stub" ||
		(c.TranslateProvider == "libretranslate" && c.LibreTranslateURL == "")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func envInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}
