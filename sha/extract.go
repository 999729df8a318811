// Package sha scrapes the Social Health Authority FAQ accordion. The
// page builds its FAQ list client-side, so the source fetches through
// the browser pool; the Q&A text itself ships in an aria-label
// attribute, which is more reliable than the rendered markup.
package sha

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"govfaqscraper/faq"
	"govfaqscraper/scraper"
)

const (
	itemSelector  = `div#faqs ul li[id^="faq_"]`
	labelSelector = "button span[aria-label]"
	textSelector  = "button span"
)

// Fallback answers, preserved verbatim so downstream consumers can see
// that a label was missing or unparseable instead of silently losing
// the record.
const (
	AnswerParseFailed  = "Could not parse answer from aria-label."
	AnswerLabelMissing = "Could not find aria-label."
)

// labelPattern splits the combined label: everything after "Question:"
// up to ", Answer:" is the question, the rest (newlines included) is
// the answer.
var labelPattern = regexp.MustCompile(`(?s)Question:\s*(.*?)\s*,\s*Answer:\s*(.*)`)

// Extract pulls one record per FAQ list item. Items where both
// question and answer come up empty are not emitted.
func Extract(doc *goquery.Document, category string, tags []string) []faq.Record {
	var records []faq.Record
	doc.Find(itemSelector).Each(func(_ int, item *goquery.Selection) {
		var question, answer string

		label, ok := item.Find(labelSelector).First().Attr("aria-label")
		switch {
		case !ok:
			question = scraper.FirstText(item.Find(textSelector))
			answer = AnswerLabelMissing
		default:
			if m := labelPattern.FindStringSubmatch(label); m != nil {
				question = strings.TrimSpace(m[1])
				answer = strings.TrimSpace(m[2])
			} else {
				question = scraper.FirstText(item.Find(textSelector))
				answer = AnswerParseFailed
			}
		}

		if question == "" || answer == "" {
			return
		}
		records = append(records, faq.New(question, answer, category, tags))
	})
	return records
}
