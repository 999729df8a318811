// Package api exposes the registered sources over HTTP.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"govfaqscraper/cache"
	"govfaqscraper/faq"
	"govfaqscraper/scraper"
)

// Server routes scrape requests to registered sources and memoizes the
// results.
type Server struct {
	registry *scraper.Registry
	cache    *cache.Cache
	cacheTTL time.Duration
	log      zerolog.Logger
}

func NewServer(registry *scraper.Registry, c *cache.Cache, cacheTTL time.Duration, logger zerolog.Logger) *Server {
	return &Server{registry: registry, cache: c, cacheTTL: cacheTTL, log: logger}
}

// Router builds the HTTP routes.
func (s *Server) Router() *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/sources", s.SourcesHandler).Methods(http.MethodGet)
	router.HandleFunc("/faqs/{source}", s.FAQHandler).Methods(http.MethodGet)
	return router
}

// SourcesHandler lists the registered source names.
func (s *Server) SourcesHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.registry.Names())
}

// FAQHandler scrapes one source and returns its records. Results are
// cached, so repeated calls within the TTL do not hit the origin site.
func (s *Server) FAQHandler(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["source"]
	source, ok := s.registry.Lookup(name)
	if !ok {
		http.Error(w, "unknown source", http.StatusNotFound)
		return
	}

	records, err := cache.Memoize(r.Context(), s.cache, "faqs:"+name, s.cacheTTL, func() ([]faq.Record, error) {
		return scraper.Collect(r.Context(), source)
	})
	if err != nil {
		s.log.Error().Err(err).Str("source", name).Msg("scrape failed")
		http.Error(w, "error scraping source", http.StatusBadGateway)
		return
	}

	writeJSON(w, records)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	jsonData, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		http.Error(w, "error marshaling to JSON", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(jsonData)
}
