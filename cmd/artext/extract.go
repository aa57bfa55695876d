package main

import (
	"fmt"

	"github.com/fwojciec/artext"
	"github.com/fwojciec/artext/scrape"
)

// previewLength is the number of body characters shown without --full.
const previewLength = 300

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	article, err := deps.Scrape(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", artext.ErrorMessage(err))
		return err
	}

	if err := printArticle(deps, article.Result, c.Full); err != nil {
		return err
	}
	printSummary(deps, article)

	if !article.Found() {
		return artext.Errorf(artext.ENOTFOUND, "no content found at %s", c.URL)
	}
	return nil
}

// printArticle writes the formatted result to stdout. Text and markdown
// bodies are cut to a preview unless full is set.
func printArticle(deps *Dependencies, res *artext.Result, full bool) error {
	shown := res
	if !full && deps.Format != artext.FormatJSON {
		cut := *res
		cut.Body = artext.Preview(res.Body, previewLength)
		shown = &cut
	}

	var conv artext.Converter
	if full {
		conv = deps.Converter
	}
	out, err := artext.FormatResult(shown, deps.Format, conv)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", artext.ErrorMessage(err))
		return err
	}
	fmt.Fprintln(deps.Stdout, out)
	return nil
}

// printSummary writes the winning strategy and the per-strategy lengths to stderr.
func printSummary(deps *Dependencies, article *scrape.Article) {
	fmt.Fprintf(deps.Stderr, "site: %s  strategy: %s  length: %d\n",
		article.Site, article.Strategy, artext.TextLength(article.Body))
	for _, r := range article.Reports {
		if r.Failed() {
			fmt.Fprintf(deps.Stderr, "  %-16s failed: %s\n", r.Strategy, r.Error)
			continue
		}
		fmt.Fprintf(deps.Stderr, "  %-16s %d chars\n", r.Strategy, r.Length)
	}
	if article.Reparsed {
		fmt.Fprintln(deps.Stderr, "  content recovered from page source")
	}
	if article.CapturePath != "" {
		fmt.Fprintf(deps.Stderr, "capture: %s\n", article.CapturePath)
	}
	if article.RecordID != "" {
		fmt.Fprintf(deps.Stderr, "record: %s\n", article.RecordID)
	}
}
