// Package goquery provides HTML inspection built on PuerkitoBio/goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pageoverlap"
)

// Ensure TitleExtractor implements pageoverlap.TitleExtractor at compile time.
var _ pageoverlap.TitleExtractor = (*TitleExtractor)(nil)

// TitleExtractor reads a page title from HTML.
// It checks the <title> element, then the og:title meta tag, then the
// first <h1>.
type TitleExtractor struct{}

// NewTitleExtractor creates a new TitleExtractor.
func NewTitleExtractor() *TitleExtractor {
	return &TitleExtractor{}
}

// ExtractTitle returns the page title with whitespace collapsed.
func (e *TitleExtractor) ExtractTitle(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", pageoverlap.Errorf(pageoverlap.EINVALID, "failed to parse HTML: %v", err)
	}

	if title := collapse(doc.Find("title").First().Text()); title != "" {
		return title, nil
	}
	if content, ok := doc.Find(`meta[property="og:title"]`).First().Attr("content"); ok {
		if title := collapse(content); title != "" {
			return title, nil
		}
	}
	return collapse(doc.Find("h1").First().Text()), nil
}

// collapse trims s and replaces runs of whitespace with a single space.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
