package main

import (
	"fmt"

	"github.com/fwojciec/artext"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	if c.Delete {
		return c.delete(deps)
	}
	if c.ID != "" {
		return c.show(deps)
	}

	filter := artext.RecordFilter{Limit: c.Limit}
	if c.URL != "" {
		filter.URL = &c.URL
	}
	if c.Site != "" {
		site := artext.SiteID(c.Site)
		filter.Site = &site
	}

	records, err := deps.Records.FindRecords(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", artext.ErrorMessage(err))
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(deps.Stdout, "No records found. Use 'artext extract' to create one.")
		return nil
	}

	for _, r := range records {
		title := r.Title
		if title == "" || title == artext.TitleNotFound {
			title = r.URL
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %-8s %-16s %6d  %s\n",
			r.ID, r.ExtractedAt.Local().Format("2006-01-02 15:04"),
			r.Site, r.Strategy, artext.TextLength(r.Body), title)
	}
	return nil
}

func (c *HistoryCmd) show(deps *Dependencies) error {
	rec, err := deps.Records.FindRecordByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", artext.ErrorMessage(err))
		return err
	}

	res := &artext.Result{
		URL:      rec.URL,
		Site:     rec.Site,
		Title:    rec.Title,
		Body:     rec.Body,
		Strategy: rec.Strategy,
		Reports:  rec.Reports,
	}
	if deps.Format != artext.FormatJSON {
		fmt.Fprintf(deps.Stdout, "URL: %s\nExtracted: %s\nStrategy: %s\n",
			rec.URL, rec.ExtractedAt.Local().Format("2006-01-02 15:04:05"), rec.Strategy)
		if rec.CapturePath != "" {
			fmt.Fprintf(deps.Stdout, "Capture: %s\n", rec.CapturePath)
		}
		fmt.Fprintln(deps.Stdout)
	}
	return printArticle(deps, res, true)
}

func (c *HistoryCmd) delete(deps *Dependencies) error {
	if c.ID == "" {
		fmt.Fprintln(deps.Stderr, "error: --delete needs a record ID")
		return artext.Errorf(artext.EINVALID, "record ID required")
	}
	if err := deps.Records.DeleteRecord(deps.Ctx, c.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", artext.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "Deleted record %s\n", c.ID)
	return nil
}
