package artext_test

import (
	"testing"

	"github.com/fwojciec/artext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
		want artext.SiteID
	}{
		{"wishket", "https://yozm.wishket.com/magazine/detail/3005/", artext.SiteWishket},
		{"brunch", "https://brunch.co.kr/@writer/12", artext.SiteBrunch},
		{"medium", "https://medium.com/@someone/a-post-123abc", artext.SiteMedium},
		{"medium subdomain", "https://blog.medium.com/post", artext.SiteMedium},
		{"velog", "https://velog.io/@dev/some-post", artext.SiteVelog},
		{"unknown", "https://example.com/news/1", artext.SiteUnknown},
		{"empty", "", artext.SiteUnknown},
		{"garbage", "::not a url::", artext.SiteUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, artext.Classify(tt.url))
		})
	}
}

func TestClassify_Deterministic(t *testing.T) {
	t.Parallel()

	url := "https://brunch.co.kr/@writer/12"
	first := artext.Classify(url)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, artext.Classify(url))
	}
}

func TestProfiles_Classify_FirstMatchWins(t *testing.T) {
	t.Parallel()

	profiles := artext.NewProfiles(
		artext.SiteProfile{ID: "first", Pattern: "example.com"},
		artext.SiteProfile{ID: "second", Pattern: "blog.example.com"},
	)

	assert.Equal(t, artext.SiteID("first"), profiles.Classify("https://blog.example.com/a"))
}

func TestProfiles_Lookup(t *testing.T) {
	t.Parallel()

	t.Run("returns known profile", func(t *testing.T) {
		t.Parallel()

		p := artext.DefaultProfiles().Lookup(artext.SiteBrunch)

		require.NotNil(t, p)
		assert.Equal(t, artext.SiteBrunch, p.ID)
		assert.True(t, p.Captions)
		assert.Equal(t, []string{"div.wrap_body_frame", "div.article_body", "div.wrap_item"}, p.ContainerSelectors)
	})

	t.Run("returns empty profile for unknown site", func(t *testing.T) {
		t.Parallel()

		p := artext.DefaultProfiles().Lookup(artext.SiteUnknown)

		require.NotNil(t, p)
		assert.Equal(t, artext.SiteUnknown, p.ID)
		assert.Empty(t, p.ContainerSelectors)
		assert.Equal(t, "article, main, div.content", p.ReadySelector)
	})

	t.Run("mutating a looked up profile leaves the table intact", func(t *testing.T) {
		t.Parallel()

		profiles := artext.NewProfiles(artext.SiteProfile{ID: "x", Phrases: []string{"a"}})

		p := profiles.Lookup("x")
		p.Phrases[0] = "changed"

		assert.Equal(t, []string{"a"}, profiles.Lookup("x").Phrases)
	})
}

func TestProfiles_Merge(t *testing.T) {
	t.Parallel()

	base := artext.NewProfiles(
		artext.SiteProfile{ID: "a", Pattern: "a.com"},
		artext.SiteProfile{ID: "b", Pattern: "b.com"},
	)

	merged := base.Merge(
		artext.SiteProfile{ID: "b", Pattern: "bee.com"},
		artext.SiteProfile{ID: "c", Pattern: "c.com"},
	)

	assert.Equal(t, []artext.SiteID{"a", "b", "c"}, merged.IDs())
	assert.Equal(t, artext.SiteID("b"), merged.Classify("https://bee.com/x"))
	assert.Equal(t, artext.SiteUnknown, merged.Classify("https://b.com/x"))
	assert.Equal(t, artext.SiteID("b"), base.Classify("https://b.com/x"))
}
