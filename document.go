package pageoverlap

import (
	"context"
	"unicode/utf8"
)

// Document represents a page loaded for comparison.
// Offsets into a document count characters (Unicode code points), not bytes.
type Document struct {
	Path        string `json:"path"`
	Label       string `json:"label"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	ContentHash string `json:"contentHash"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.Path == "" {
		return Errorf(EINVALID, "document path required")
	}
	if !utf8.ValidString(d.Content) {
		return Errorf(EINVALID, "document %q is not valid UTF-8", d.Path)
	}
	return nil
}

// Len returns the length of the content in characters.
func (d *Document) Len() int {
	return utf8.RuneCountInString(d.Content)
}

// Name returns the label used when reporting on the document.
// Falls back to the path when no label is set.
func (d *Document) Name() string {
	if d.Label != "" {
		return d.Label
	}
	return d.Path
}

// DocumentLoader reads documents from storage.
type DocumentLoader interface {
	// LoadDocument reads the document at path.
	// Returns ENOTFOUND if the file does not exist and EINVALID if its
	// content is not valid UTF-8.
	LoadDocument(ctx context.Context, path string) (*Document, error)
}

// TitleExtractor pulls a human-readable title out of an HTML page.
type TitleExtractor interface {
	// ExtractTitle returns the page title, or an empty string if the page
	// has none.
	ExtractTitle(html string) (string, error)
}
