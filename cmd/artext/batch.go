package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fwojciec/artext"
	"github.com/fwojciec/artext/bloom"
	"github.com/fwojciec/artext/scrape"
)

// Run executes the batch command.
func (c *BatchCmd) Run(deps *Dependencies) error {
	urls := append([]string(nil), c.URLs...)
	if c.Input != "" {
		fromFile, err := readURLs(c.Input)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %v\n", err)
			return err
		}
		urls = append(urls, fromFile...)
	}
	if len(urls) == 0 {
		fmt.Fprintln(deps.Stderr, "error: no URLs given. Pass URLs as arguments or use --input")
		return artext.Errorf(artext.EINVALID, "no URLs given")
	}

	capacity := uint(len(urls))
	if capacity < bloom.DefaultCapacity {
		capacity = bloom.DefaultCapacity
	}
	b := &scrape.Batch{
		Scrape:      deps.Scrape,
		Limiter:     scrape.NewDomainLimiter(c.Rate),
		Seen:        bloom.NewFilter(capacity, bloom.DefaultFalsePositive),
		Concurrency: c.Concurrency,
	}

	progress := func(event scrape.ProgressEvent) {
		switch event.Type {
		case scrape.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Extracting %d URLs\n", event.Total)
		case scrape.ProgressCompleted:
			a := event.Article
			fmt.Fprintf(deps.Stdout, "  [%d/%d] %s  %s (%d chars)  %s\n",
				event.Completed, event.Total, truncateURL(event.URL, 60),
				a.Strategy, artext.TextLength(a.Body), a.Title)
		case scrape.ProgressSkipped:
			fmt.Fprintf(deps.Stdout, "  [%d/%d] %s  duplicate\n",
				event.Completed, event.Total, truncateURL(event.URL, 60))
		case scrape.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", event.URL, event.Error)
		}
	}

	summary, err := b.Run(deps.Ctx, urls, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Extracted %d, empty %d, failed %d, duplicates %d\n",
		summary.Extracted, summary.Empty, summary.Failed, summary.Skipped)
	return nil
}

// readURLs returns the non-empty, non-comment lines of path.
func readURLs(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var urls []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	return urls, scanner.Err()
}
