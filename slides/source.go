package slides

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"google.golang.org/api/option"
	slidesapi "google.golang.org/api/slides/v1"

	"govfaqscraper/config"
	"govfaqscraper/scraper"
)

// ErrNoCredentials is returned when no service account file is
// configured for the Slides API.
var ErrNoCredentials = errors.New("slides: service account file not configured")

// Source extracts one FAQ record per slide of the configured
// presentation. Credential or API failures are terminal for the run:
// no partial results, no retry.
type Source struct {
	cfg config.SlidesConfig
	log zerolog.Logger
}

func NewSource(cfg config.SlidesConfig, logger zerolog.Logger) *Source {
	return &Source{cfg: cfg, log: logger}
}

func (s *Source) Name() string { return "slides" }

func (s *Source) Scrape(ctx context.Context, emit scraper.Emit) error {
	if s.cfg.CredentialsFile == "" {
		s.log.Error().Msg("slides: no service account file configured")
		return ErrNoCredentials
	}

	service, err := slidesapi.NewService(ctx,
		option.WithCredentialsFile(s.cfg.CredentialsFile),
		option.WithScopes(slidesapi.PresentationsReadonlyScope),
	)
	if err != nil {
		s.log.Error().Err(err).Msg("slides: credential error")
		return fmt.Errorf("create slides service: %w", err)
	}

	presentation, err := service.Presentations.Get(s.cfg.PresentationID).Context(ctx).Do()
	if err != nil {
		s.log.Error().Err(err).Str("presentation", s.cfg.PresentationID).Msg("slides: API error")
		return fmt.Errorf("get presentation %s: %w", s.cfg.PresentationID, err)
	}

	emitted := 0
	for _, page := range presentation.Slides {
		if rec, ok := Extract(page, s.cfg.Category, s.cfg.Tags, s.cfg.MinTitleFontSize); ok {
			emit(rec)
			emitted++
		}
	}
	s.log.Info().Str("presentation", s.cfg.PresentationID).Int("records", emitted).Msg("extracted slides")
	return nil
}
