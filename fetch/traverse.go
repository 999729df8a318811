package fetch

import (
	"context"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"
)

// DefaultMaxPages bounds a traversal when no budget is configured.
// Pagination targets are expected to be strictly forward-only, so the
// budget is a safety net rather than cycle detection.
const DefaultMaxPages = 500

// Handler processes one fetched page and returns any follow-up URLs
// (pagination targets, category links) to visit next.
type Handler func(doc *goquery.Document, pageURL string) (follow []string, err error)

// Traverser drives a fetch-and-extract cycle over a stack of pending
// page URLs. Traversal within one walk is sequential: a page's "next"
// target is unknown until that page is parsed.
type Traverser struct {
	Fetch    Fetcher
	MaxPages int
	Log      zerolog.Logger
}

// Walk visits the start URLs and every URL a handler returns, in
// depth-first order, until the stack drains or the page budget is
// spent. Page-level fetch or parse failures are logged and skipped so
// one bad page does not abort the whole walk.
func (t *Traverser) Walk(ctx context.Context, start []string, handle Handler) error {
	budget := t.MaxPages
	if budget <= 0 {
		budget = DefaultMaxPages
	}

	// Push in reverse so the first start URL is popped first.
	stack := make([]string, 0, len(start))
	for i := len(start) - 1; i >= 0; i-- {
		stack = append(stack, start[i])
	}

	visited := 0
	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}
		if visited >= budget {
			t.Log.Warn().Int("pages", visited).Msg("traversal page budget exhausted")
			return nil
		}

		pageURL := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		doc, err := t.Fetch.Fetch(ctx, pageURL)
		if err != nil {
			t.Log.Warn().Err(err).Str("url", pageURL).Msg("skipping page: fetch failed")
			continue
		}
		visited++

		follow, err := handle(doc, pageURL)
		if err != nil {
			t.Log.Warn().Err(err).Str("url", pageURL).Msg("skipping page: handler failed")
			continue
		}
		for i := len(follow) - 1; i >= 0; i-- {
			stack = append(stack, follow[i])
		}
	}
	return nil
}
