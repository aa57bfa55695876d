// Package bloom deduplicates article URLs using Bloom filters.
package bloom

import (
	"net/url"
	"strings"
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/fwojciec/artext"
)

var _ artext.URLSet = (*Filter)(nil)

// Defaults for a batch-sized filter.
const (
	DefaultCapacity     = 10000
	DefaultFalsePositive = 0.001
)

// Filter is a Bloom filter over normalized article URLs.
// It is safe for concurrent use by multiple goroutines.
type Filter struct {
	mu sync.Mutex
	f  *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected URLs
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add records url and reports whether it was new. False positives are
// possible, so a never-seen URL is occasionally reported as seen.
func (f *Filter) Add(url string) bool {
	key := Normalize(url)

	f.mu.Lock()
	defer f.mu.Unlock()
	return !f.f.TestAndAddString(key)
}

// Test returns true if the URL might be in the filter.
func (f *Filter) Test(url string) bool {
	key := Normalize(url)

	f.mu.Lock()
	defer f.mu.Unlock()
	return f.f.TestString(key)
}

// EstimatedCount returns the approximate number of URLs in the filter.
func (f *Filter) EstimatedCount() uint {
	f.mu.Lock()
	defer f.mu.Unlock()
	return uint(f.f.ApproximatedSize())
}

// Normalize reduces a URL to the form used as its identity: the fragment,
// tracking parameters and trailing slash are dropped and the scheme and
// host lowercased. Unparseable input is only trimmed.
func Normalize(raw string) string {
	raw = strings.TrimSpace(raw)
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw
	}

	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	u.Fragment = ""
	u.RawFragment = ""

	if u.RawQuery != "" {
		q := u.Query()
		for key := range q {
			if strings.HasPrefix(key, "utm_") {
				q.Del(key)
			}
		}
		u.RawQuery = q.Encode()
	}

	u.Path = strings.TrimRight(u.Path, "/")
	u.RawPath = ""
	return u.String()
}
