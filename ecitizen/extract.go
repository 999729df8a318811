// Package ecitizen scrapes the eCitizen help-and-support FAQ list.
package ecitizen

import (
	"github.com/PuerkitoBio/goquery"

	"govfaqscraper/faq"
	"govfaqscraper/scraper"
)

// Selectors match the current help page structure: each Q&A pair is a
// list item whose id starts with "faq_".
const (
	itemSelector     = `li[id^="faq_"]`
	questionSelector = "button span.text-lg.font-medium"
	answerSelector   = "div.relative.overflow-hidden.transition-all"
)

// Extract pulls one record per FAQ list item, in document order. A
// missing question leaves the record tagged answer_only; extraction
// never fails per item.
func Extract(doc *goquery.Document, category string, tags []string) []faq.Record {
	var records []faq.Record
	doc.Find(itemSelector).Each(func(_ int, item *goquery.Selection) {
		question := scraper.FirstText(item.Find(questionSelector))
		answer := faq.Normalize(scraper.TextNodes(item.Find(answerSelector)))

		rec := faq.New(question, answer, category, tags)
		if rec.Emittable() {
			records = append(records, rec)
		}
	})
	return records
}
