package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pagegraph"
	"github.com/fwojciec/pagegraph/csv"
	"github.com/fwojciec/pagegraph/etree"
	"github.com/fwojciec/pagegraph/fs"
	"github.com/fwojciec/pagegraph/goquery"
	"github.com/fwojciec/pagegraph/json"
	"github.com/fwojciec/pagegraph/scan"
	pgslog "github.com/fwojciec/pagegraph/slog"
	"github.com/fwojciec/pagegraph/sqlite"
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
type Main struct {
	// SQLite database the graph is saved to, if requested.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pagegraph"),
		kong.Description("Build the link graph of an HTML corpus from its page table"),
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

	policy, err := pagegraph.ParseEdgePolicy(cli.EdgePolicy)
	if err != nil {
		return err
	}

	logger := newLogger(stderr, cli.Verbose)

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Table:  csv.NewPageTable(),
		Builder: &scan.Builder{
			Pages:   fs.NewPageSource(),
			Anchors: pgslog.NewLoggingAnchorExtractor(goquery.NewAnchorExtractor(), logger),
			Policy:  policy,
			Logger:  logger,
		},
		Encoder: newEncoder(cli.Format),
	}

	if cli.SQLite != "" {
		m.DB = sqlite.NewDB(cli.SQLite)
		if err := m.DB.Open(); err != nil {
			return fmt.Errorf("failed to open database at %q: %w", cli.SQLite, err)
		}
		defer m.Close()
		deps.Store = sqlite.NewGraphStore(m.DB)
	}

	cmd := &GraphCmd{
		Source: cli.Source,
		Table:  cli.Table,
		Output: cli.Output,
	}

	return cmd.Run(deps)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Format     string `short:"f" enum:"json,graphml" default:"json" env:"PAGEGRAPH_FORMAT" help:"Graph file format (json, graphml)"`
	EdgePolicy string `enum:"last,first,all" default:"last" env:"PAGEGRAPH_EDGE_POLICY" help:"Label kept when a page links to the same page twice (last, first, all)"`
	SQLite     string `name:"sqlite" type:"path" env:"PAGEGRAPH_SQLITE" help:"Also save the graph to this SQLite database"`
	Verbose    bool   `short:"v" env:"PAGEGRAPH_VERBOSE" help:"Log every page operation"`
	Source     string `arg:"" type:"existingdir" help:"Directory containing the HTML pages"`
	Table      string `arg:"" type:"existingfile" help:"Page table written by pagescan"`
	Output     string `arg:"" type:"path" help:"Path of the graph file to write"`
}

func newEncoder(format string) pagegraph.GraphEncoder {
	if format == "graphml" {
		return etree.NewGraphMLEncoder()
	}
	return json.NewGraphEncoder()
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
