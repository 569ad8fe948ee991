// Package config reads DrugLens runtime settings from the process environment.
package config

import (
	_ "embed"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

//go:embed version
var version string

//go:embed name
var name string

type LogLevel string

const (
	Debug  LogLevel = "debug"
	Info   LogLevel = "info"
	Notice LogLevel = "notice"
	Warn   LogLevel = "warn"
	Error  LogLevel = "error"
)

const (
	dbFileName             = "medicines.db"
	defaultPort            = 5000
	defaultSessionMaxAge   = 60 * 24
	defaultTranslateURL    = "https://translate.googleapis.com/translate_a/single"
	defaultTranslateTarget = "hi"
	defaultTranslateTTL    = 10 * time.Second
)

func GetVersion() string {
	return strings.TrimSpace(version)
}

func GetName() string {
	return strings.TrimSpace(name)
}

func GetLogLevel() LogLevel {
	if IsDebug() {
		return Debug
	}
	logLevel := os.Getenv("DRUGLENS_LOG_LEVEL")
	if logLevel == "" {
		return Info
	}
	return LogLevel(logLevel)
}

func IsDebug() bool {
	return os.Getenv("DRUGLENS_DEBUG") == "true"
}

func GetDBFolderPath() string {
	dbFolderPath := os.Getenv("DRUGLENS_DB_FOLDER")
	if dbFolderPath == "" {
		dbFolderPath = "."
	}
	return dbFolderPath
}

func GetDBPath() string {
	return filepath.Join(GetDBFolderPath(), dbFileName)
}

func GetLogFolder() string {
	logFolderPath := os.Getenv("DRUGLENS_LOG_FOLDER")
	if logFolderPath == "" {
		logFolderPath = "logs"
	}
	return logFolderPath
}

// GetListen returns the address the web server binds to. Empty means all interfaces.
func GetListen() string {
	return os.Getenv("DRUGLENS_LISTEN")
}

// GetWebDomain returns the only Host the web server answers to. Empty allows any.
func GetWebDomain() string {
	return os.Getenv("DRUGLENS_DOMAIN")
}

func GetPort() int {
	return getInt("PORT", defaultPort)
}

// GetSessionSecret returns the cookie signing secret, or "" when none is configured.
func GetSessionSecret() string {
	return os.Getenv("SESSION_SECRET")
}

// GetSessionMaxAge returns the session lifetime in minutes.
func GetSessionMaxAge() int {
	return getInt("DRUGLENS_SESSION_MAX_AGE", defaultSessionMaxAge)
}

// IsScanEnabled reports whether barcode scanning is offered. Enabled unless explicitly turned off.
func IsScanEnabled() bool {
	v := os.Getenv("DRUGLENS_SCAN_ENABLED")
	if v == "" {
		return true
	}
	enabled, err := strconv.ParseBool(v)
	if err != nil {
		return true
	}
	return enabled
}

func GetTranslateURL() string {
	u := os.Getenv("DRUGLENS_TRANSLATE_URL")
	if u == "" {
		return defaultTranslateURL
	}
	return u
}

func GetTranslateTarget() string {
	lang := os.Getenv("DRUGLENS_TRANSLATE_TARGET")
	if lang == "" {
		return defaultTranslateTarget
	}
	return lang
}

func GetTranslateTimeout() time.Duration {
	v := os.Getenv("DRUGLENS_TRANSLATE_TIMEOUT")
	if v == "" {
		return defaultTranslateTTL
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return defaultTranslateTTL
	}
	return d
}

func getInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
