package extract

import (
	"strings"

	"github.com/fwojciec/artext"
)

// CopyrightMarkers are scanned in order; the text is cut before the first
// occurrence of the first marker present.
var CopyrightMarkers = []string{"©️", "©", "ⓒ", "Copyright", "저작권"}

// CommonPhrases is the boilerplate removed from every site before the site's
// own phrases.
var CommonPhrases = []string{
	"목록으로",
	"복사 완료!",
	"공유하기",
	"좋아요",
	"댓글",
	"신고",
	"구독하기",
}

// Cleaner strips boilerplate from extracted text.
type Cleaner struct {
	profiles *artext.Profiles
	markers  []string
	phrases  []string
}

// NewCleaner returns a Cleaner using the site phrases of profiles.
// A nil table uses the built-in profiles.
func NewCleaner(profiles *artext.Profiles) *Cleaner {
	if profiles == nil {
		profiles = artext.DefaultProfiles()
	}
	return &Cleaner{
		profiles: profiles,
		markers:  CopyrightMarkers,
		phrases:  CommonPhrases,
	}
}

// Clean truncates text at the copyright notice, removes common and site
// boilerplate, collapses whitespace and starts a new paragraph after every
// ". ". Cleaning is idempotent once no boilerplate is left.
func (c *Cleaner) Clean(text string, site artext.SiteID) string {
	for _, m := range c.markers {
		if i := strings.Index(text, m); i >= 0 {
			text = text[:i]
			break
		}
	}

	for _, p := range c.phrases {
		text = strings.ReplaceAll(text, p, "")
	}
	for _, p := range c.profiles.Lookup(site).Phrases {
		if p != "" {
			text = strings.ReplaceAll(text, p, "")
		}
	}

	text = normalize(text)
	text = strings.ReplaceAll(text, ". ", ".\n\n")
	return strings.TrimSpace(text)
}
