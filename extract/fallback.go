package extract

import "github.com/fwojciec/artext"

// FallbackSelector matches every element the fallback considers.
const FallbackSelector = "p, div, article, section, main, span"

// Fallback returns the longest whitespace-normalized text of any text-bearing
// element in doc, cleaned as an unknown site. It returns ENOTFOUND when no
// element carries text or when the chosen text is empty after cleaning.
func Fallback(doc artext.Document, cleaner *Cleaner) (string, error) {
	els, err := doc.Find(FallbackSelector)
	if err != nil {
		return "", err
	}

	best, bestLen := "", 0
	for _, el := range els {
		text := normalize(el.Text())
		if n := artext.TextLength(text); n > bestLen {
			best, bestLen = text, n
		}
	}
	if bestLen == 0 {
		return "", artext.Errorf(artext.ENOTFOUND, "no text-bearing elements")
	}

	cleaned := cleaner.Clean(best, artext.SiteUnknown)
	if cleaned == "" {
		return "", artext.Errorf(artext.ENOTFOUND, "no content after cleaning")
	}
	return cleaned, nil
}
