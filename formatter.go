package artext

import (
	"encoding/json"
	"strings"
)

// Format is an output rendering of an extraction result.
type Format string

// Supported output formats.
const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
)

// FormatResult renders a result for display or storage.
// Text output is "Title: <title>" followed by a blank line and the body.
// Markdown output uses the title as a heading; when conv is not nil and the
// result carries container HTML, the container is converted instead of
// using the plain body.
func FormatResult(r *Result, format Format, conv Converter) (string, error) {
	switch format {
	case FormatJSON:
		b, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return "", err
		}
		return string(b), nil
	case FormatMarkdown:
		body := r.Body
		if conv != nil && r.ContainerHTML != "" && r.Found() {
			md, err := conv.Convert(r.ContainerHTML)
			if err != nil {
				return "", err
			}
			body = strings.TrimSpace(md)
		}
		return "# " + r.Title + "\n\n" + body, nil
	case FormatText, "":
		return "Title: " + r.Title + "\n\n" + r.Body, nil
	}
	return "", Errorf(EINVALID, "unknown format %q", format)
}

// Preview returns the first n characters of s followed by "..." when s is longer.
func Preview(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
