package kra

import (
	"context"
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"

	"govfaqscraper/config"
	"govfaqscraper/fetch"
	"govfaqscraper/scraper"
)

// Source scrapes the KRA FAQ in two phases: discover the category
// links from the start page, then walk every category page following
// its pagination.
type Source struct {
	cfg      config.SiteConfig
	fetcher  fetch.Fetcher
	maxPages int
	log      zerolog.Logger
}

func NewSource(cfg config.SiteConfig, fetcher fetch.Fetcher, maxPages int, logger zerolog.Logger) *Source {
	return &Source{cfg: cfg, fetcher: fetcher, maxPages: maxPages, log: logger}
}

func (s *Source) Name() string { return "kra" }

func (s *Source) Scrape(ctx context.Context, emit scraper.Emit) error {
	traverser := &fetch.Traverser{Fetch: s.fetcher, MaxPages: s.maxPages, Log: s.log}

	for _, startURL := range s.cfg.StartURLs {
		doc, err := s.fetcher.Fetch(ctx, startURL)
		if err != nil {
			return fmt.Errorf("fetch %s: %w", startURL, err)
		}

		var categoryPages []string
		for _, href := range CategoryLinks(doc) {
			categoryPages = append(categoryPages, fetch.ResolveRef(startURL, href))
		}
		s.log.Info().Str("url", startURL).Int("categories", len(categoryPages)).Msg("discovered FAQ categories")

		err = traverser.Walk(ctx, categoryPages, func(doc *goquery.Document, pageURL string) ([]string, error) {
			records, next := ExtractPage(doc)
			for _, rec := range records {
				emit(rec)
			}
			if next != "" {
				return []string{fetch.ResolveRef(pageURL, next)}, nil
			}
			return nil, nil
		})
		if err != nil {
			return fmt.Errorf("walk categories of %s: %w", startURL, err)
		}
	}
	return nil
}
