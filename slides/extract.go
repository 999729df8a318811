// Package slides extracts FAQ records from a Google Slides
// presentation, one record per slide. Slides carry no semantic markup,
// so the question/answer split relies on visual layout: bold large
// text reads as the question, everything below it as the answer.
package slides

import (
	"cmp"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/exp/slices"
	slidesapi "google.golang.org/api/slides/v1"

	"govfaqscraper/faq"
)

// Heading heuristic: an element is a title when its first text run is
// bold and at least this many points. Tunable via config.
const DefaultMinTitleFontSize = 18.0

// defaultFontSize is what the Slides API implies when a run carries no
// explicit size.
const defaultFontSize = 12.0

// Sentinels emitted when a slide yields no usable title or body.
const (
	UntitledQuestion = "Untitled"
	NoDescription    = "No description available"
)

var (
	leadingNumbering = regexp.MustCompile(`^[0-9]+[.)\s]*`)
	trailingPunct    = regexp.MustCompile(`[:\-—]+$`)
	whitespaceRun    = regexp.MustCompile(`\s+`)
)

// textElement is the per-slide intermediate: one positioned text block.
type textElement struct {
	text       string
	translateY float64
	isTitle    bool
}

// Extract builds one record from a slide. The boolean mirrors the
// record's emission policy; since the title selection always falls
// back to a sentinel, every slide emits.
func Extract(page *slidesapi.Page, category string, tags []string, minTitleFontSize float64) (faq.Record, bool) {
	if minTitleFontSize <= 0 {
		minTitleFontSize = DefaultMinTitleFontSize
	}

	var elements []textElement
	for _, pe := range page.PageElements {
		if pe.Shape == nil || pe.Shape.Text == nil {
			continue
		}
		text := strings.TrimSpace(shapeText(pe.Shape))
		if text == "" {
			continue
		}
		var translateY float64
		if pe.Transform != nil {
			translateY = pe.Transform.TranslateY
		}
		elements = append(elements, textElement{
			text:       text,
			translateY: translateY,
			isTitle:    isTitleElement(pe.Shape, minTitleFontSize),
		})
	}

	// Top-to-bottom reading order; stable so equal offsets keep the
	// slide's element order.
	slices.SortStableFunc(elements, func(a, b textElement) int {
		return cmp.Compare(a.translateY, b.translateY)
	})

	rawTitle := selectTitle(elements)
	question := CleanTitle(rawTitle)
	answer := buildDescription(elements, rawTitle)
	image := firstImage(page)

	rec := faq.New(question, answer, category, tags)
	rec.Image = image
	return rec, rec.Emittable()
}

func shapeText(shape *slidesapi.Shape) string {
	var b strings.Builder
	for _, te := range shape.Text.TextElements {
		if te.TextRun != nil {
			b.WriteString(te.TextRun.Content)
		}
	}
	return b.String()
}

func isTitleElement(shape *slidesapi.Shape, minTitleFontSize float64) bool {
	for _, te := range shape.Text.TextElements {
		if te.TextRun == nil {
			continue
		}
		style := te.TextRun.Style
		if style == nil || !style.Bold {
			return false
		}
		fontSize := defaultFontSize
		if style.FontSize != nil {
			fontSize = style.FontSize.Magnitude
		}
		return fontSize >= minTitleFontSize
	}
	return false
}

// selectTitle picks the question text: the first title-styled element,
// else the first element with more than one word, else the first
// element at all. Returns "" for an empty slide.
func selectTitle(elements []textElement) string {
	for _, e := range elements {
		if e.isTitle {
			return e.text
		}
	}
	for _, e := range elements {
		if len(strings.Fields(e.text)) > 1 {
			return e.text
		}
	}
	if len(elements) > 0 {
		return elements[0].text
	}
	return ""
}

// CleanTitle strips leading numbering and trailing colon/dash runs,
// trims, and capitalizes the first letter. An empty result becomes the
// Untitled sentinel.
func CleanTitle(title string) string {
	title = leadingNumbering.ReplaceAllString(title, "")
	title = trailingPunct.ReplaceAllString(title, "")
	title = strings.TrimSpace(title)
	if title == "" {
		return UntitledQuestion
	}
	if r, size := utf8.DecodeRuneInString(title); unicode.IsLower(r) {
		title = string(unicode.ToUpper(r)) + title[size:]
	}
	return title
}

// buildDescription joins the slide's remaining text into the answer,
// skipping the element that became the question (compared before
// cleaning, so a numbered title line cannot leak into the answer) and
// anything shorter than two words.
func buildDescription(elements []textElement, rawTitle string) string {
	var parts []string
	for _, e := range elements {
		if e.text == rawTitle || len(strings.Fields(e.text)) < 2 {
			continue
		}
		parts = append(parts, e.text)
	}
	if len(parts) == 0 {
		return NoDescription
	}

	description := strings.Join(parts, ". ")
	if !strings.HasSuffix(description, ".") {
		description += "."
	}
	return whitespaceRun.ReplaceAllString(description, " ")
}

func firstImage(page *slidesapi.Page) string {
	for _, pe := range page.PageElements {
		if pe.Image != nil && pe.Image.ContentUrl != "" {
			return pe.Image.ContentUrl
		}
	}
	return ""
}
