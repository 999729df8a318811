// Package kra scrapes the KRA taxation FAQ, which is split into
// category pages behind a navigation menu, each category paginated
// with a "Next" control.
package kra

import (
	"github.com/PuerkitoBio/goquery"

	"govfaqscraper/faq"
	"govfaqscraper/scraper"
)

const (
	categorySelector = "div.sticky-nav ul.nav li a"
	activeSelector   = "div.sticky-nav ul.nav li a.active"
	itemSelector     = "div.faq-grid div.grid-item"
	questionSelector = "p.title"
	answerSelector   = "div.ui-accordion-content"
	nextSelector     = `ul.pagination a.pagenav[title="Next"]`
)

// CategoryLinks returns the href of every category link in the side
// navigation, unresolved.
func CategoryLinks(doc *goquery.Document) []string {
	var links []string
	doc.Find(categorySelector).Each(func(_ int, link *goquery.Selection) {
		if href, ok := link.Attr("href"); ok && href != "" {
			links = append(links, href)
		}
	})
	return links
}

// ExtractPage pulls all Q&A pairs from one category page and returns
// the unresolved href of the next page, or "" when the category's
// pagination ends there. The active category name becomes both the
// record category and its single tag; when it cannot be read, the
// category falls back to the default and the tag list stays empty.
func ExtractPage(doc *goquery.Document) (records []faq.Record, next string) {
	category := scraper.FirstText(doc.Find(activeSelector))
	var tags []string
	if category != "" {
		tags = []string{category}
	}

	doc.Find(itemSelector).Each(func(_ int, item *goquery.Selection) {
		question := scraper.FirstText(item.Find(questionSelector))
		answer := faq.Normalize(scraper.TextNodes(item.Find(answerSelector)))

		rec := faq.New(question, answer, category, tags)
		if rec.Emittable() {
			records = append(records, rec)
		}
	})

	next, _ = doc.Find(nextSelector).First().Attr("href")
	return records, next
}
