package sha

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"

	"govfaqscraper/config"
	"govfaqscraper/fetch"
	"govfaqscraper/scraper"
)

// Source scrapes the SHA portal through a rendering fetcher.
type Source struct {
	cfg      config.SiteConfig
	renderer fetch.Renderer
	log      zerolog.Logger
}

func NewSource(cfg config.SiteConfig, renderer fetch.Renderer, logger zerolog.Logger) *Source {
	return &Source{cfg: cfg, renderer: renderer, log: logger}
}

func (s *Source) Name() string { return "sha" }

func (s *Source) Scrape(ctx context.Context, emit scraper.Emit) error {
	for _, startURL := range s.cfg.StartURLs {
		htmlContent, err := s.renderer.FetchRendered(ctx, startURL, s.cfg.WaitSelector)
		if err != nil {
			return fmt.Errorf("render %s: %w", startURL, err)
		}
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
		if err != nil {
			return fmt.Errorf("parse rendered page %s: %w", startURL, err)
		}
		records := Extract(doc, s.cfg.Category, s.cfg.Tags)
		s.log.Info().Str("url", startURL).Int("records", len(records)).Msg("extracted FAQ items")
		for _, rec := range records {
			emit(rec)
		}
	}
	return nil
}
