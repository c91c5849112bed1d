package overlap_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/pageoverlap"
	"github.com/fwojciec/pageoverlap/color"
	"github.com/fwojciec/pageoverlap/difflib"
	"github.com/fwojciec/pageoverlap/fs"
	"github.com/fwojciec/pageoverlap/mock"
	"github.com/fwojciec/pageoverlap/overlap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	lakeMary = overlap.Source{Path: "lake-mary.html", Label: "Lake Mary"}
	longwood = overlap.Source{Path: "longwood.html", Label: "Longwood"}
)

func staticLoader(contents map[string]string) *mock.DocumentLoader {
	return &mock.DocumentLoader{
		LoadDocumentFn: func(ctx context.Context, path string) (*pageoverlap.Document, error) {
			content, ok := contents[path]
			if !ok {
				return nil, pageoverlap.Errorf(pageoverlap.ENOTFOUND, "document %q not found", path)
			}
			return &pageoverlap.Document{Path: path, Content: content}, nil
		},
	}
}

func TestFinder_Find(t *testing.T) {
	t.Parallel()

	t.Run("filters blocks by size and applies labels", func(t *testing.T) {
		t.Parallel()

		finder := &overlap.Finder{
			Loader: staticLoader(map[string]string{"lake-mary.html": "a", "longwood.html": "b"}),
			Matcher: &mock.Matcher{
				MatchingBlocksFn: func(a, b *pageoverlap.Document) ([]pageoverlap.Block, error) {
					assert.Equal(t, "lake-mary.html", a.Path)
					assert.Equal(t, "longwood.html", b.Path)
					return []pageoverlap.Block{
						{A: 0, B: 0, Size: 100},
						{A: 200, B: 180, Size: 101},
						{A: 400, B: 390, Size: 0},
					}, nil
				},
			},
		}

		result, err := finder.Find(context.Background(), lakeMary, longwood)

		require.NoError(t, err)
		assert.Equal(t, "Lake Mary", result.A.Label)
		assert.Equal(t, "Longwood", result.B.Label)
		assert.Equal(t, []pageoverlap.Block{{A: 200, B: 180, Size: 101}}, result.Blocks)
	})

	t.Run("does not read second document when first fails", func(t *testing.T) {
		t.Parallel()

		var loaded []string
		finder := &overlap.Finder{
			Loader: &mock.DocumentLoader{
				LoadDocumentFn: func(ctx context.Context, path string) (*pageoverlap.Document, error) {
					loaded = append(loaded, path)
					return nil, pageoverlap.Errorf(pageoverlap.ENOTFOUND, "document %q not found", path)
				},
			},
		}

		_, err := finder.Find(context.Background(), lakeMary, longwood)

		assert.Equal(t, pageoverlap.ENOTFOUND, pageoverlap.ErrorCode(err))
		assert.Equal(t, []string{"lake-mary.html"}, loaded)
	})

	t.Run("returns second document error", func(t *testing.T) {
		t.Parallel()

		finder := &overlap.Finder{
			Loader: staticLoader(map[string]string{"lake-mary.html": "a"}),
		}

		_, err := finder.Find(context.Background(), lakeMary, longwood)

		assert.Equal(t, pageoverlap.ENOTFOUND, pageoverlap.ErrorCode(err))
		assert.Contains(t, pageoverlap.ErrorMessage(err), "longwood.html")
	})

	t.Run("returns matcher error", func(t *testing.T) {
		t.Parallel()

		finder := &overlap.Finder{
			Loader: staticLoader(map[string]string{"lake-mary.html": "a", "longwood.html": "b"}),
			Matcher: &mock.Matcher{
				MatchingBlocksFn: func(a, b *pageoverlap.Document) ([]pageoverlap.Block, error) {
					return nil, errors.New("boom")
				},
			},
		}

		_, err := finder.Find(context.Background(), lakeMary, longwood)

		assert.EqualError(t, err, "boom")
	})
}

func TestFinder_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints filtered blocks", func(t *testing.T) {
		t.Parallel()

		var printed []pageoverlap.Block
		finder := &overlap.Finder{
			Loader: staticLoader(map[string]string{"lake-mary.html": "a", "longwood.html": "b"}),
			Matcher: &mock.Matcher{
				MatchingBlocksFn: func(a, b *pageoverlap.Document) ([]pageoverlap.Block, error) {
					return []pageoverlap.Block{{A: 0, B: 0, Size: 150}, {A: 150, B: 150, Size: 0}}, nil
				},
			},
			Printer: &mock.Printer{
				PrintBlocksFn: func(w io.Writer, a, b *pageoverlap.Document, blocks []pageoverlap.Block) error {
					printed = blocks
					return nil
				},
			},
		}

		_, err := finder.Run(context.Background(), io.Discard, lakeMary, longwood)

		require.NoError(t, err)
		assert.Equal(t, []pageoverlap.Block{{A: 0, B: 0, Size: 150}}, printed)
	})

	t.Run("returns printer error", func(t *testing.T) {
		t.Parallel()

		finder := &overlap.Finder{
			Loader: staticLoader(map[string]string{"lake-mary.html": "a", "longwood.html": "b"}),
			Matcher: &mock.Matcher{
				MatchingBlocksFn: func(a, b *pageoverlap.Document) ([]pageoverlap.Block, error) {
					return nil, nil
				},
			},
			Printer: &mock.Printer{
				PrintBlocksFn: func(w io.Writer, a, b *pageoverlap.Document, blocks []pageoverlap.Block) error {
					return errors.New("broken pipe")
				},
			},
		}

		_, err := finder.Run(context.Background(), io.Discard, lakeMary, longwood)

		assert.EqualError(t, err, "broken pipe")
	})
}

// Story: comparing two landing pages end to end.

func TestFinder_Run_EndToEnd(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	common := strings.Repeat("<p>Trusted local cleaners.</p>\n", 5)[:150]
	pathA := filepath.Join(dir, "house-cleaning-lake-mary-fl.html")
	pathB := filepath.Join(dir, "house-cleaning-longwood-fl.html")
	require.NoError(t, os.WriteFile(pathA, []byte(strings.Repeat("X", 50)+common+strings.Repeat("Y", 50)), 0644))
	require.NoError(t, os.WriteFile(pathB, []byte(strings.Repeat("Z", 30)+common+strings.Repeat("W", 70)), 0644))

	finder := &overlap.Finder{
		Loader:  fs.NewLoader(nil),
		Matcher: difflib.NewMatcher(),
		Printer: color.NewPrinter(false),
	}

	var buf bytes.Buffer
	result, err := finder.Run(context.Background(), &buf,
		overlap.Source{Path: pathA, Label: "Lake Mary"},
		overlap.Source{Path: pathB, Label: "Longwood"},
	)

	require.NoError(t, err)
	assert.Equal(t, []pageoverlap.Block{{A: 50, B: 30, Size: 150}}, result.Blocks)
	want := "Block 1: Lake Mary [50:200] <-> Longwood [30:180] (size 150)\n" +
		strings.ReplaceAll(common, "\n", " ") + "\n" +
		strings.Repeat("-", 80) + "\n"
	assert.Equal(t, want, buf.String())
}
