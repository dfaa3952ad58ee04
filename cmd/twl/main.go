// Command twl generates Translation Words Links TSVs for one or more
// USFM books of the reference translation against the Translation Words
// vocabulary.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/unfoldingWord/twl-pipeline/core/morph"
	"github.com/unfoldingWord/twl-pipeline/core/pipeline"
	"github.com/unfoldingWord/twl-pipeline/core/selector"
	"github.com/unfoldingWord/twl-pipeline/core/trie"
	"github.com/unfoldingWord/twl-pipeline/core/usfm"
	"github.com/unfoldingWord/twl-pipeline/core/vocab"
	"github.com/unfoldingWord/twl-pipeline/internal/client"
	"github.com/unfoldingWord/twl-pipeline/internal/config"
	"github.com/unfoldingWord/twl-pipeline/internal/logging"
	"github.com/unfoldingWord/twl-pipeline/internal/validation"
)

const version = "0.1.0"

// CLI defines twl's command-line interface, noun-first like cmd/capsule.
var CLI struct {
	LogFormat string     `name:"log-format" default:"json" help:"Log format: text or json"`
	LogLevel  string     `name:"log-level" default:"info" help:"Log level: debug, info, warn, error"`
	Book      BookGroup  `cmd:"" help:"Generate Translation Words Links"`
	Version   VersionCmd `cmd:"" help:"Print version information"`
}

// BookGroup holds the book-oriented subcommands.
type BookGroup struct {
	Generate GenerateCmd `cmd:"" default:"1" help:"Generate a TWL TSV for one book or all canonical books"`
}

// GenerateCmd is the pipeline's single entry point.
type GenerateCmd struct {
	Book          string `help:"USFM book code (e.g. gen, mat); required unless --all" short:"b"`
	All           bool   `help:"Process every canonical book code"`
	Strongs       bool   `help:"Use the Strong's-first driver (original-language lemma anchored) instead of English-first"`
	UseCompromise bool   `name:"use-compromise" help:"Enable prose-backed conjugation enrichment"`
	OutDir        string `name:"out-dir" default:"." help:"Directory for output TSVs" type:"path"`
	Out           string `help:"Output TSV path override (single-book mode only)" type:"path"`
	Concurrency   int    `default:"4" help:"Maximum concurrent books in --all mode"`
}

func (c *GenerateCmd) Run() error {
	logging.InitLogger(parseLevel(CLI.LogLevel), parseFormat(CLI.LogFormat))

	if !c.All && c.Book == "" {
		return fmt.Errorf("either --book or --all is required")
	}
	if c.All && c.Out != "" {
		return fmt.Errorf("--out is not valid with --all; use --out-dir")
	}

	runID := uuid.New().String()
	ctx := logging.WithRunID(context.Background(), runID)

	cfg := config.Load()
	cl := client.New(cfg)

	logging.InfoContext(ctx, "fetching vocabulary archive", "archive_url", cfg.ArchiveURL)
	md, strongsList, err := cl.FetchArchive(ctx)
	if err != nil {
		return fmt.Errorf("fetch vocabulary archive: %w", err)
	}
	merged := vocab.Merge(md, strongsList)

	var conjugator morph.Conjugator
	if c.UseCompromise {
		conjugator = morph.ProseConjugator{}
	}

	t := trie.Build(md, conjugator)
	pivot := vocab.BuildPivot(merged)
	sel := buildSelector(pivot, merged, conjugator)

	newDriver := func() bookDriver {
		if c.Strongs {
			return pipeline.NewStrongsFirstDriver(pivot, sel, cl)
		}
		return pipeline.NewEnglishFirstDriver(t, sel, cl)
	}

	if !c.All {
		return runBook(ctx, cl, newDriver(), c.Book, c.OutDir, c.Out)
	}
	return runAll(ctx, cl, newDriver, c.OutDir, c.Concurrency)
}

// bookDriver is the common shape of EnglishFirstDriver and
// StrongsFirstDriver (§4.G/§4.G').
type bookDriver interface {
	Process(ctx context.Context, tokens []usfm.Token) (rows []pipeline.Row, noMatch []pipeline.Row, err error)
}

// buildSelector assembles core/selector's article table from the merged
// vocabulary (§4.F).
func buildSelector(pivot *vocab.Pivot, sv *vocab.StrongsVocabulary, conjugator morph.Conjugator) *selector.Selector {
	articles := make(map[vocab.ArticlePath]*selector.Article, len(sv.Articles))
	for path, entry := range sv.Articles {
		articles[path] = &selector.Article{
			Path:       path,
			Terms:      entry.Terms,
			HasStrongs: len(entry.Strongs) > 0,
		}
	}
	return &selector.Selector{Pivot: pivot, Articles: articles, Conjugator: conjugator}
}

// runBook processes a single book and writes its TSV(s).
func runBook(ctx context.Context, cl *client.Client, d bookDriver, book, outDir, outOverride string) error {
	code, err := validation.ValidateBookCode(book)
	if err != nil {
		return err
	}

	start := time.Now()
	logging.BookStart(ctx, code, driverMode(d))

	raw, err := cl.FetchUSFM(ctx, code)
	if err != nil {
		logging.BookSkipped(ctx, code, err)
		return fmt.Errorf("fetch USFM for %s: %w", code, err)
	}

	tokens := usfm.Tokenize(raw)
	rows, noMatch, err := d.Process(ctx, tokens)
	if err != nil {
		logging.BookSkipped(ctx, code, err)
		return fmt.Errorf("process %s: %w", code, err)
	}

	outPath := outOverride
	if outPath == "" {
		outPath = filepath.Join(outDir, validation.OutputFilename(code))
	}
	if err := writeTSV(outPath, pipeline.Header, rows); err != nil {
		return err
	}
	if len(noMatch) > 0 {
		noMatchPath := filepath.Join(outDir, validation.NoMatchFilename(code))
		if err := writeTSV(noMatchPath, pipeline.NoMatchHeader, noMatch); err != nil {
			return err
		}
	}

	logging.BookComplete(ctx, code, len(rows), len(noMatch), time.Since(start))
	return nil
}

// runAll fans the batch driver out across all canonical book codes, bounded
// by a semaphore, continuing past any single book's fatal error (§7).
func runAll(ctx context.Context, cl *client.Client, newDriver func() bookDriver, outDir string, concurrency int) error {
	if concurrency < 1 {
		concurrency = 1
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	semaphore := make(chan struct{}, concurrency)
	defer close(semaphore)

	var g errgroup.Group
	for _, code := range validation.AllBookCodes() {
		code := code
		semaphore <- struct{}{}
		g.Go(func() error {
			defer func() { <-semaphore }()
			if err := runBook(ctx, cl, newDriver(), code, outDir, ""); err != nil {
				logging.BookSkipped(ctx, code, err)
			}
			return nil
		})
	}
	return g.Wait()
}

func writeTSV(path string, header []string, rows []pipeline.Row) error {
	if err := validation.ValidateOutputPath(path); err != nil {
		return err
	}
	fields := make([][]string, len(rows))
	for i, r := range rows {
		fields[i] = r.Fields()
	}
	doc := pipeline.EncodeTSV(header, fields)
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func parseLevel(s string) logging.Level {
	switch s {
	case "debug":
		return logging.LevelDebug
	case "warn":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func parseFormat(s string) logging.Format {
	if s == "json" {
		return logging.FormatJSON
	}
	return logging.FormatText
}

func driverMode(d bookDriver) string {
	if _, ok := d.(*pipeline.StrongsFirstDriver); ok {
		return "strongs-first"
	}
	return "english-first"
}

// VersionCmd prints the CLI's version.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Println("twl version", version)
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("twl"),
		kong.Description("Translation Words Links generator"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	err := ctx.Run(ctx)
	ctx.FatalIfErrorf(err)
}
