package kra

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"govfaqscraper/faq"
)

const categoryPage = `
<div class="sticky-nav"><ul class="nav">
  <li><a href="/faqs/general">General FAQs</a></li>
  <li><a class="active" href="/faqs/filing">Filing</a></li>
</ul></div>
<div class="faq-grid">
  <div class="grid-item">
    <p class="title">How do I file?</p>
    <div class="ui-accordion-content"><p>Use iTax </p><p>online.</p></div>
  </div>
  <div class="grid-item">
    <p class="title">When is the deadline?</p>
    <div class="ui-accordion-content">30 June.</div>
  </div>
</div>
<ul class="pagination"><li><a class="pagenav" title="Next" href="/faqs/filing?page=2">Next</a></li></ul>`

func mustDoc(t *testing.T, page string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	require.NoError(t, err)
	return doc
}

func TestCategoryLinks(t *testing.T) {
	doc := mustDoc(t, categoryPage)
	assert.Equal(t, []string{"/faqs/general", "/faqs/filing"}, CategoryLinks(doc))
}

func TestExtractPage(t *testing.T) {
	doc := mustDoc(t, categoryPage)
	records, next := ExtractPage(doc)

	require.Len(t, records, 2)
	assert.Equal(t, "How do I file?", records[0].Question)
	assert.Equal(t, "Use iTax online.", records[0].Answer)
	assert.Equal(t, "Filing", records[0].Category)
	assert.Equal(t, []string{"Filing"}, records[0].Tags)
	assert.Equal(t, faq.Complete, records[0].Completeness)

	assert.Equal(t, "When is the deadline?", records[1].Question)
	assert.Equal(t, "30 June.", records[1].Answer)

	assert.Equal(t, "/faqs/filing?page=2", next)
}

func TestExtractPageNoActiveCategory(t *testing.T) {
	doc := mustDoc(t, `
	<div class="faq-grid"><div class="grid-item">
	  <p class="title">Q?</p>
	  <div class="ui-accordion-content">A.</div>
	</div></div>`)

	records, next := ExtractPage(doc)
	require.Len(t, records, 1)
	assert.Equal(t, faq.DefaultCategory, records[0].Category)
	assert.Empty(t, records[0].Tags)
	assert.Empty(t, next)
}

func TestExtractPageTerminal(t *testing.T) {
	doc := mustDoc(t, `<div class="faq-grid"></div>`)
	records, next := ExtractPage(doc)
	assert.Empty(t, records)
	assert.Empty(t, next, "no Next link ends the category walk")
}
