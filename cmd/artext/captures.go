package main

import (
	"fmt"

	"github.com/fwojciec/artext"
	"github.com/fwojciec/artext/fs"
)

// Run executes the captures command.
func (c *CapturesCmd) Run(deps *Dependencies) error {
	dir := c.Dir
	if dir == "" {
		dir = deps.CaptureDir
	}

	infos, err := fs.ListCaptures(dir, deps.Profiles)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", artext.ErrorMessage(err))
		return err
	}

	if len(infos) == 0 {
		fmt.Fprintf(deps.Stdout, "No captures found in %s. Use 'artext extract' to create one.\n", dir)
		return nil
	}

	for _, info := range infos {
		status := "ok"
		if info.Failed {
			status = "empty"
		}
		fmt.Fprintf(deps.Stdout, "%s  %-8s %-12s %-5s %7s  %s\n",
			info.CapturedAt.Format("2006-01-02 15:04:05"),
			info.Site, info.ArticleID, status, formatBytes(info.Size), info.Path)
	}
	return nil
}

// formatBytes formats bytes in human-readable form.
func formatBytes(bytes int64) string {
	const (
		KB = 1024
		MB = KB * 1024
	)
	switch {
	case bytes >= MB:
		return fmt.Sprintf("%.1f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.1f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

// truncateURL shortens a URL for display, keeping the end which is more informative.
func truncateURL(url string, maxLen int) string {
	if len(url) <= maxLen || maxLen < 4 {
		return url
	}
	return "..." + url[len(url)-maxLen+3:]
}
