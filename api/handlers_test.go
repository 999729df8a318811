package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"govfaqscraper/cache"
	"govfaqscraper/faq"
	"govfaqscraper/scraper"
)

type stubSource struct {
	name    string
	records []faq.Record
	err     error
}

func (s *stubSource) Name() string { return s.name }

func (s *stubSource) Scrape(ctx context.Context, emit scraper.Emit) error {
	for _, rec := range s.records {
		emit(rec)
	}
	return s.err
}

func newTestServer(sources ...scraper.Source) *Server {
	registry := scraper.NewRegistry()
	for _, s := range sources {
		registry.Register(s)
	}
	return NewServer(registry, cache.New("", zerolog.Nop()), time.Minute, zerolog.Nop())
}

func TestSourcesHandler(t *testing.T) {
	server := newTestServer(&stubSource{name: "ecitizen"}, &stubSource{name: "kra"})

	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sources", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var names []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &names))
	assert.Equal(t, []string{"ecitizen", "kra"}, names)
}

func TestFAQHandler(t *testing.T) {
	server := newTestServer(&stubSource{
		name: "ecitizen",
		records: []faq.Record{
			faq.New("What is eCitizen?", "A platform.", "eCitizen General", []string{"eCitizen"}),
		},
	})

	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/faqs/ecitizen", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var records []faq.Record
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "What is eCitizen?", records[0].Question)
	assert.Equal(t, faq.Complete, records[0].Completeness)
}

func TestFAQHandlerUnknownSource(t *testing.T) {
	server := newTestServer()

	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/faqs/missing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFAQHandlerSourceFailure(t *testing.T) {
	server := newTestServer(&stubSource{name: "slides", err: errors.New("credential error")})

	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/faqs/slides", nil))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
