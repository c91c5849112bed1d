package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pageoverlap"
	"github.com/fwojciec/pageoverlap/color"
	"github.com/fwojciec/pageoverlap/difflib"
	"github.com/fwojciec/pageoverlap/fs"
	"github.com/fwojciec/pageoverlap/goquery"
	"github.com/fwojciec/pageoverlap/overlap"
	posslog "github.com/fwojciec/pageoverlap/slog"
	"github.com/mattn/go-isatty"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", pageoverlap.ErrorMessage(err))
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Kong calls Exit after printing help; record it instead of exiting.
	helpShown := false
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pageoverlap"),
		kong.Description("Print long runs of text shared by two HTML pages"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) { helpShown = true }),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	_, err = parser.Parse(args)
	if helpShown {
		return nil
	}
	if err != nil {
		return err
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	var loader pageoverlap.DocumentLoader = fs.NewLoader(goquery.NewTitleExtractor())
	var matcher pageoverlap.Matcher = difflib.NewMatcher()
	if cli.Debug {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		loader = posslog.NewLoggingLoader(loader, logger)
		matcher = posslog.NewLoggingMatcher(matcher, logger)
	}

	deps.Finder = &overlap.Finder{
		Loader:  loader,
		Matcher: matcher,
		Printer: color.NewPrinter(useColor(cli.Color, stdout)),
	}

	cmd := &CompareCmd{
		First:  overlap.Source{Path: cli.Doc1, Label: cli.Label1},
		Second: overlap.Source{Path: cli.Doc2, Label: cli.Label2},
	}

	return cmd.Run(deps)
}

// useColor resolves the --color mode. In auto mode output is highlighted
// only when w is a terminal.
func useColor(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
