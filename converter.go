package artext

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input is typically the outer HTML of the ranked article container.
	Convert(html string) (string, error)
}
