package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/artext"
	"github.com/fwojciec/artext/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts paragraphs", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewConverter().Convert(`<div><p>First.</p><p>Second.</p></div>`)

		require.NoError(t, err)
		assert.Equal(t, "First.\n\nSecond.", md)
	})

	t.Run("converts headings and emphasis", func(t *testing.T) {
		t.Parallel()

		html := `<div><h2>Section</h2><p><strong>Bold</strong> and <em>italic</em> text.</p></div>`

		md, err := htmltomarkdown.NewConverter().Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "## Section")
		assert.Contains(t, md, "**Bold**")
		assert.Contains(t, md, "*italic*")
	})

	t.Run("converts lists and quotes", func(t *testing.T) {
		t.Parallel()

		html := `<div><ul><li>First</li><li>Second</li></ul><blockquote><p>Quoted.</p></blockquote></div>`

		md, err := htmltomarkdown.NewConverter().Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "- First")
		assert.Contains(t, md, "- Second")
		assert.Contains(t, md, "> Quoted.")
	})

	t.Run("converts code blocks with language hint", func(t *testing.T) {
		t.Parallel()

		html := `<pre><code class="language-go">package main</code></pre>`

		md, err := htmltomarkdown.NewConverter().Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "```go")
		assert.Contains(t, md, "package main")
	})

	t.Run("converts tables", func(t *testing.T) {
		t.Parallel()

		html := `<table><thead><tr><th>Name</th></tr></thead><tbody><tr><td>Alice</td></tr></tbody></table>`

		md, err := htmltomarkdown.NewConverter().Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "Alice")
		assert.Contains(t, md, "|")
	})

	t.Run("drops page furniture inside the container", func(t *testing.T) {
		t.Parallel()

		html := `<div class="wrap_body_frame"><p>본문입니다.</p><button>공유하기</button><aside>관련 글</aside></div>`

		md, err := htmltomarkdown.NewConverter().Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "본문입니다.")
		assert.NotContains(t, md, "공유하기")
		assert.NotContains(t, md, "관련 글")
	})

	t.Run("resolves relative links against the domain", func(t *testing.T) {
		t.Parallel()

		html := `<p>See <a href="/@writer/12">the previous post</a>.</p>`

		md, err := htmltomarkdown.NewConverter(htmltomarkdown.WithDomain("https://brunch.co.kr")).Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "[the previous post](https://brunch.co.kr/@writer/12)")
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		_, err := htmltomarkdown.NewConverter().Convert("  ")

		require.Error(t, err)
		assert.Equal(t, artext.EINVALID, artext.ErrorCode(err))
	})
}
