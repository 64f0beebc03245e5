package config

import (
	"os"
	"strconv"
	"time"
)

// Config is the configuration shared by the web server and the CLI.
type Config struct {
	HTTPAddr string
	// FontPath is the scalable font used for the header lines. Empty selects
	// the bundled Go Regular font. An unreadable path falls back to the
	// built-in fixed-size font.
	FontPath    string
	JPEGQuality int
	// MaxUploadBytes bounds uploaded and downloaded photos.
	MaxUploadBytes    int64
	PhotoFetchTimeout time.Duration
	// AllowPrivatePhotoHosts lets photo_url reach loopback and private
	// networks. Off by default.
	AllowPrivatePhotoHosts bool
	LogLevel               string
}

func Default() *Config {
	return &Config{
		HTTPAddr:          ":8080",
		JPEGQuality:       85,
		MaxUploadBytes:    8 << 20,
		PhotoFetchTimeout: 10 * time.Second,
		LogLevel:          "info",
	}
}

// FromEnv returns the defaults overridden by environment variables.
// PORT is honoured for platforms that only set a port.
func FromEnv() *Config {
	c := Default()
	if port := os.Getenv("PORT"); port != "" {
		c.HTTPAddr = ":" + port
	}
	c.HTTPAddr = getenv("IDCARD_HTTP_ADDR", c.HTTPAddr)
	c.FontPath = getenv("IDCARD_FONT", c.FontPath)
	c.JPEGQuality = getenvInt("IDCARD_JPEG_QUALITY", c.JPEGQuality)
	c.MaxUploadBytes = int64(getenvInt("IDCARD_MAX_UPLOAD_BYTES", int(c.MaxUploadBytes)))
	c.PhotoFetchTimeout = getenvDuration("IDCARD_PHOTO_FETCH_TIMEOUT", c.PhotoFetchTimeout)
	c.AllowPrivatePhotoHosts = getenvBool("IDCARD_ALLOW_PRIVATE_PHOTO_HOSTS", c.AllowPrivatePhotoHosts)
	c.LogLevel = getenv("IDCARD_LOG_LEVEL", c.LogLevel)
	return c
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvInt(k string, def int) int {
	if v, err := strconv.Atoi(os.Getenv(k)); err == nil && v > 0 {
		return v
	}
	return def
}

func getenvDuration(k string, def time.Duration) time.Duration {
	if v, err := time.ParseDuration(os.Getenv(k)); err == nil && v > 0 {
		return v
	}
	return def
}

func getenvBool(k string, def bool) bool {
	if v, err := strconv.ParseBool(os.Getenv(k)); err == nil {
		return v
	}
	return def
}
