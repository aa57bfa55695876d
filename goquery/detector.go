package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/artext"
)

var _ artext.SiteDetector = (*Detector)(nil)

// Detector identifies publishing platforms from HTML content.
// It checks the canonical URL, Open Graph metadata and structural markers
// that are unique to each platform's article template.
type Detector struct {
	profiles *artext.Profiles
}

// NewDetector creates a Detector classifying URLs through profiles.
// A nil table uses the built-in profiles.
func NewDetector(profiles *artext.Profiles) *Detector {
	if profiles == nil {
		profiles = artext.DefaultProfiles()
	}
	return &Detector{profiles: profiles}
}

// siteNames maps lowercase og:site_name fragments to sites.
var siteNames = []struct {
	fragment string
	site     artext.SiteID
}{
	{"요즘it", artext.SiteWishket},
	{"wishket", artext.SiteWishket},
	{"브런치", artext.SiteBrunch},
	{"brunch", artext.SiteBrunch},
	{"medium", artext.SiteMedium},
	{"velog", artext.SiteVelog},
}

// markers are template selectors checked last, in order.
var markers = []struct {
	selector string
	site     artext.SiteID
}{
	{"div.article-body-container", artext.SiteWishket},
	{"div.wrap_body_frame", artext.SiteBrunch},
	{"meta[property='al:android:package'][content='com.medium.reader']", artext.SiteMedium},
	{"div[data-testid='postContent']", artext.SiteMedium},
	{"h1.head-title", artext.SiteVelog},
}

// Detect analyzes HTML and returns the identified site.
// Returns SiteUnknown if the site cannot be determined.
func (d *Detector) Detect(html string) artext.SiteID {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return artext.SiteUnknown
	}

	// Page URLs are most reliable when present
	for _, u := range d.pageURLs(doc) {
		if site := d.profiles.Classify(u); site != artext.SiteUnknown {
			return site
		}
	}

	if name := strings.ToLower(d.attr(doc, "meta[property='og:site_name']", "content")); name != "" {
		for _, n := range siteNames {
			if strings.Contains(name, n.fragment) {
				return n.site
			}
		}
	}

	for _, m := range markers {
		if doc.Find(m.selector).Length() > 0 {
			return m.site
		}
	}

	return artext.SiteUnknown
}

// pageURLs returns the canonical and og:url values that are present.
func (d *Detector) pageURLs(doc *goquery.Document) []string {
	var urls []string
	if u := d.attr(doc, "link[rel='canonical']", "href"); u != "" {
		urls = append(urls, u)
	}
	if u := d.attr(doc, "meta[property='og:url']", "content"); u != "" {
		urls = append(urls, u)
	}
	return urls
}

func (d *Detector) attr(doc *goquery.Document, selector, name string) string {
	v, _ := doc.Find(selector).First().Attr(name)
	return strings.TrimSpace(v)
}
