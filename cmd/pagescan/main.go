package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pagegraph/csv"
	"github.com/fwojciec/pagegraph/fs"
	"github.com/fwojciec/pagegraph/goquery"
	"github.com/fwojciec/pagegraph/scan"
	pgslog "github.com/fwojciec/pagegraph/slog"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
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
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pagescan"),
		kong.Description("Extract the metadata of every HTML page under a directory into a page table"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	ignore, err := fs.NewIgnore(cli.IgnoreFile, cli.Ignore...)
	if err != nil {
		return fmt.Errorf("failed to load ignore patterns: %w", err)
	}

	logger := newLogger(stderr, cli.Verbose)
	walker := fs.NewWalker()
	walker.Ignore = ignore

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Scanner: &scan.Scanner{
			Walker:    pgslog.NewLoggingWalker(walker, logger),
			Pages:     fs.NewPageSource(),
			Extractor: pgslog.NewLoggingMetadataExtractor(goquery.NewMetadataExtractor(), logger),
			Logger:    logger,
		},
		Table: csv.NewPageTable(),
	}

	cmd := &ScanCmd{
		Source: cli.Source,
		Output: cli.Output,
	}

	return cmd.Run(deps)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Ignore     []string `short:"i" env:"PAGEGRAPH_IGNORE" help:"Gitignore-style pattern of paths to skip (repeatable)"`
	IgnoreFile string   `type:"path" env:"PAGEGRAPH_IGNORE_FILE" help:"File of gitignore-style patterns of paths to skip"`
	Verbose    bool     `short:"v" env:"PAGEGRAPH_VERBOSE" help:"Log every page operation"`
	Source     string   `arg:"" type:"existingdir" help:"Directory containing the HTML pages"`
	Output     string   `arg:"" type:"path" help:"Path of the page table to write"`
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
