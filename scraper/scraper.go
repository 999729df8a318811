// Package scraper provides the common contract for FAQ sources and a
// registry to look them up by name.
package scraper

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"govfaqscraper/faq"
)

// ErrUnknownSource is returned when a source name is not registered.
var ErrUnknownSource = errors.New("unknown source")

// Emit receives one record as soon as a source produces it.
type Emit func(faq.Record)

// Source scrapes one origin site. Scrape pushes records through emit in
// the order they are discovered and returns an error only for
// whole-source failures (credentials, upstream unavailability);
// per-item extraction misses degrade to sentinel values instead.
type Source interface {
	Name() string
	Scrape(ctx context.Context, emit Emit) error
}

// Registry manages the available sources
type Registry struct {
	mu      sync.RWMutex
	sources map[string]Source
	order   []string
}

// NewRegistry creates a new source registry
func NewRegistry() *Registry {
	return &Registry{sources: make(map[string]Source)}
}

// Register adds a source to the registry, replacing any source with
// the same name.
func (r *Registry) Register(s Source) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.sources[s.Name()]; !exists {
		r.order = append(r.order, s.Name())
	}
	r.sources[s.Name()] = s
}

// Lookup returns the source registered under name.
func (r *Registry) Lookup(name string) (Source, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sources[name]
	return s, ok
}

// Names returns the registered source names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Run scrapes the named source, pushing records through emit.
func (r *Registry) Run(ctx context.Context, name string, emit Emit) error {
	s, ok := r.Lookup(name)
	if !ok {
		return fmt.Errorf("%q: %w", name, ErrUnknownSource)
	}
	return s.Scrape(ctx, emit)
}

// Collect runs a source and gathers the emitted records into a slice.
// On error the records emitted before the failure are still returned.
func Collect(ctx context.Context, s Source) ([]faq.Record, error) {
	records := []faq.Record{}
	err := s.Scrape(ctx, func(rec faq.Record) {
		records = append(records, rec)
	})
	return records, err
}
