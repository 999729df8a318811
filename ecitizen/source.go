package ecitizen

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"govfaqscraper/config"
	"govfaqscraper/fetch"
	"govfaqscraper/scraper"
)

// Source scrapes the configured eCitizen start URLs.
type Source struct {
	cfg     config.SiteConfig
	fetcher fetch.Fetcher
	log     zerolog.Logger
}

func NewSource(cfg config.SiteConfig, fetcher fetch.Fetcher, logger zerolog.Logger) *Source {
	return &Source{cfg: cfg, fetcher: fetcher, log: logger}
}

func (s *Source) Name() string { return "ecitizen" }

func (s *Source) Scrape(ctx context.Context, emit scraper.Emit) error {
	for _, startURL := range s.cfg.StartURLs {
		doc, err := s.fetcher.Fetch(ctx, startURL)
		if err != nil {
			return fmt.Errorf("fetch %s: %w", startURL, err)
		}
		records := Extract(doc, s.cfg.Category, s.cfg.Tags)
		s.log.Info().Str("url", startURL).Int("records", len(records)).Msg("extracted FAQ items")
		for _, rec := range records {
			emit(rec)
		}
	}
	return nil
}
