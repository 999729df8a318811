package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// TextNodes returns the raw content of every descendant text node of
// the selection, in document order. Fragments are returned as-is;
// callers normalize with faq.Normalize.
func TextNodes(sel *goquery.Selection) []string {
	var parts []string
	for _, node := range sel.Nodes {
		collectText(node, &parts)
	}
	return parts
}

func collectText(n *html.Node, out *[]string) {
	if n.Type == html.TextNode {
		*out = append(*out, n.Data)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, out)
	}
}

// FirstText returns the first non-blank descendant text node of the
// selection, trimmed, or "" when the selection has no text.
func FirstText(sel *goquery.Selection) string {
	for _, part := range TextNodes(sel) {
		if text := strings.TrimSpace(part); text != "" {
			return text
		}
	}
	return ""
}
