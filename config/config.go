// Package config holds the explicit configuration for every source and
// for the service around them. Defaults mirror the live sites; a yaml
// file can overlay any field.
package config

import (
	"fmt"
	"os"
	"time"

	yaml "gopkg.in/yaml.v3"
)

// SiteConfig configures one HTML source.
type SiteConfig struct {
	StartURLs      []string `yaml:"startUrls"`
	AllowedDomains []string `yaml:"allowedDomains"`
	Category       string   `yaml:"category"`
	Tags           []string `yaml:"tags"`
	// WaitSelector, when set, makes the source fetch through the
	// browser pool and wait for this selector before extracting.
	WaitSelector string `yaml:"waitSelector"`
}

// SlidesConfig configures the Google Slides source.
type SlidesConfig struct {
	PresentationID  string   `yaml:"presentationId"`
	CredentialsFile string   `yaml:"credentialsFile"`
	Category        string   `yaml:"category"`
	Tags            []string `yaml:"tags"`
	// MinTitleFontSize is the font size (pt) at or above which a bold
	// first run marks a slide element as a title.
	MinTitleFontSize float64 `yaml:"minTitleFontSize"`
}

// BrowserConfig sizes the headless browser pool.
type BrowserConfig struct {
	PoolSize int           `yaml:"poolSize"`
	Timeout  time.Duration `yaml:"timeout"`
}

// TraversalConfig bounds multi-page walks.
type TraversalConfig struct {
	MaxPages int `yaml:"maxPages"`
}

// Config is the root configuration.
type Config struct {
	Port      string          `yaml:"port"`
	RedisAddr string          `yaml:"redisAddr"`
	CacheTTL  time.Duration   `yaml:"cacheTTL"`
	Browser   BrowserConfig   `yaml:"browser"`
	Traversal TraversalConfig `yaml:"traversal"`

	ECitizen SiteConfig   `yaml:"ecitizen"`
	SHA      SiteConfig   `yaml:"sha"`
	KRA      SiteConfig   `yaml:"kra"`
	Slides   SlidesConfig `yaml:"slides"`
}

// Default returns the built-in configuration for the known sources.
func Default() Config {
	return Config{
		Port:      "8000",
		RedisAddr: "localhost:6379",
		CacheTTL:  12 * time.Hour,
		Browser:   BrowserConfig{PoolSize: 2, Timeout: 45 * time.Second},
		Traversal: TraversalConfig{MaxPages: 500},
		ECitizen: SiteConfig{
			StartURLs:      []string{"https://ecitizen.go.ke/en/help-and-support"},
			AllowedDomains: []string{"ecitizen.go.ke"},
			Category:       "eCitizen General",
			Tags:           []string{"eCitizen"},
		},
		SHA: SiteConfig{
			StartURLs:      []string{"https://sha.go.ke/"},
			AllowedDomains: []string{"sha.go.ke"},
			Category:       "Social Health Authority",
			Tags:           []string{"SHA", "health", "Kenya"},
			WaitSelector:   `div#faqs ul li[id^="faq_"]`,
		},
		KRA: SiteConfig{
			StartURLs:      []string{"https://www.kra.go.ke/helping-tax-payers/faqs"},
			AllowedDomains: []string{"kra.go.ke"},
		},
		Slides: SlidesConfig{
			PresentationID:   "1mY68zOIQBUHkht2wiKgzkIQpPuxh1Oihj2rn4AlMcDM",
			CredentialsFile:  os.Getenv("GOOGLE_SERVICE_ACCOUNT_FILE"),
			Category:         "Google Slide Presentation",
			Tags:             []string{"google", "slide", "extracted"},
			MinTitleFontSize: 18,
		},
	}
}

// Load returns the defaults overlaid with the yaml file at path. An
// empty path returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return cfg, nil
}
