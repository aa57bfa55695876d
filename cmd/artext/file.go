package main

import (
	"fmt"

	"github.com/fwojciec/artext"
	"github.com/fwojciec/artext/fs"
)

// Run executes the file command.
func (c *FileCmd) Run(deps *Dependencies) error {
	capture, err := fs.LoadCapture(c.Path, deps.Profiles)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", artext.ErrorMessage(err))
		return err
	}

	site := capture.Site
	switch {
	case c.Site != "":
		site = artext.SiteID(c.Site)
	case site == artext.SiteUnknown && capture.URL != "":
		site = deps.Profiles.Classify(capture.URL)
	}
	if site == artext.SiteUnknown {
		site = deps.Detector.Detect(capture.HTML)
	}

	doc, err := deps.Parser.Parse(capture.HTML)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", artext.ErrorMessage(err))
		return err
	}
	res, err := deps.Extractor.Extract(doc, site)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", artext.ErrorMessage(err))
		return err
	}
	res.URL = capture.URL
	res.Site = site

	if err := printArticle(deps, res, true); err != nil {
		return err
	}
	fmt.Fprintf(deps.Stderr, "site: %s  strategy: %s  length: %d\n",
		site, res.Strategy, artext.TextLength(res.Body))

	if !res.Found() {
		return artext.Errorf(artext.ENOTFOUND, "no content found in %s", c.Path)
	}
	return nil
}
