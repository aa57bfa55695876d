// Package yaml loads site profile overrides from YAML files.
package yaml

import (
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/fwojciec/artext"
	yaml "gopkg.in/yaml.v3"
)

// File is the profile override file schema.
//
//	replace: false
//	sites:
//	  - id: tistory
//	    pattern: tistory.com
//	    title: ["h1.title_post"]
//	    containers: ["div.tt_article_useless_p_margin"]
//	    phrases: ["공감", "이웃추가"]
//	    ready: "div.tt_article_useless_p_margin"
type File struct {
	// Replace discards the built-in profiles instead of merging into them.
	Replace bool                 `yaml:"replace" json:"replace"`
	Sites   []artext.SiteProfile `yaml:"sites" json:"sites"`
}

// LoadProfiles reads path and applies it on top of base.
// A nil base uses the built-in profiles.
func LoadProfiles(path string, base *artext.Profiles) (*artext.Profiles, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, artext.Errorf(artext.ENOTFOUND, "profile file %s not found", path)
		}
		return nil, err
	}
	return ParseProfiles(data, base)
}

// ParseProfiles decodes a profile file and applies it on top of base.
// Unknown keys, missing IDs and duplicate IDs are rejected with EINVALID.
func ParseProfiles(data []byte, base *artext.Profiles) (*artext.Profiles, error) {
	if base == nil {
		base = artext.DefaultProfiles()
	}

	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, artext.Errorf(artext.EINVALID, "invalid profile file: %v", err)
	}

	seen := make(map[artext.SiteID]bool, len(f.Sites))
	for i, p := range f.Sites {
		if p.ID == "" {
			return nil, artext.Errorf(artext.EINVALID, "site %d: id required", i)
		}
		if p.ID == artext.SiteUnknown {
			return nil, artext.Errorf(artext.EINVALID, "site %d: id %q is reserved", i, p.ID)
		}
		if seen[p.ID] {
			return nil, artext.Errorf(artext.EINVALID, "site %d: duplicate id %q", i, p.ID)
		}
		if p.MinBlockLength < 0 {
			return nil, artext.Errorf(artext.EINVALID, "site %q: minBlockLength must not be negative", p.ID)
		}
		seen[p.ID] = true
	}

	if f.Replace {
		return artext.NewProfiles(f.Sites...), nil
	}
	return base.Merge(f.Sites...), nil
}
