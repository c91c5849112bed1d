// Package fs provides file-based loading of pages for comparison.
package fs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/pageoverlap"
)

// Ensure Loader implements pageoverlap.DocumentLoader at compile time.
var _ pageoverlap.DocumentLoader = (*Loader)(nil)

// Loader reads documents from the local filesystem.
type Loader struct {
	// Titles extracts the page title. Optional.
	Titles pageoverlap.TitleExtractor
}

// NewLoader creates a new Loader. titles may be nil.
func NewLoader(titles pageoverlap.TitleExtractor) *Loader {
	return &Loader{Titles: titles}
}

// LoadDocument reads the whole file at path into a document.
func (l *Loader) LoadDocument(ctx context.Context, path string) (*pageoverlap.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	content, err := readFile(path)
	if err != nil {
		return nil, err
	}
	content = NormalizeNewlines(content)

	doc := &pageoverlap.Document{
		Path:        path,
		Content:     content,
		ContentHash: HashContent(content),
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	// A missing title only affects diagnostics.
	if l.Titles != nil {
		if title, err := l.Titles.ExtractTitle(content); err == nil {
			doc.Title = title
		}
	}

	return doc, nil
}

func readFile(path string) (string, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", pageoverlap.Errorf(pageoverlap.ENOTFOUND, "document %q not found", path)
	} else if err != nil {
		return "", fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()

	b, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("read %q: %w", path, err)
	}
	return string(b), nil
}

// NormalizeNewlines converts "\r\n" and lone "\r" line endings to "\n".
// Offsets are reported against the normalized text.
func NormalizeNewlines(s string) string {
	if !strings.Contains(s, "\r") {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// HashContent returns the hex-encoded xxhash64 of content.
func HashContent(content string) string {
	return strconv.FormatUint(xxhash.Sum64String(content), 16)
}
