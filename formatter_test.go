package artext_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/artext"
	"github.com/fwojciec/artext/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatResult(t *testing.T) {
	t.Parallel()

	res := &artext.Result{
		Title:         "Getting Started",
		Body:          "First sentence.\n\nSecond sentence.",
		Strategy:      artext.StrategyEnhanced,
		ContainerHTML: "<div><p>First sentence.</p></div>",
	}

	t.Run("formats text with title header", func(t *testing.T) {
		t.Parallel()

		out, err := artext.FormatResult(res, artext.FormatText, nil)

		require.NoError(t, err)
		assert.Equal(t, "Title: Getting Started\n\nFirst sentence.\n\nSecond sentence.", out)
	})

	t.Run("empty format defaults to text", func(t *testing.T) {
		t.Parallel()

		out, err := artext.FormatResult(res, "", nil)

		require.NoError(t, err)
		assert.Contains(t, out, "Title: Getting Started")
	})

	t.Run("formats markdown from body without converter", func(t *testing.T) {
		t.Parallel()

		out, err := artext.FormatResult(res, artext.FormatMarkdown, nil)

		require.NoError(t, err)
		assert.Equal(t, "# Getting Started\n\nFirst sentence.\n\nSecond sentence.", out)
	})

	t.Run("formats markdown from container with converter", func(t *testing.T) {
		t.Parallel()

		conv := &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				return "First sentence.\n", nil
			},
		}

		out, err := artext.FormatResult(res, artext.FormatMarkdown, conv)

		require.NoError(t, err)
		assert.Equal(t, "# Getting Started\n\nFirst sentence.", out)
	})

	t.Run("returns converter error", func(t *testing.T) {
		t.Parallel()

		conv := &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				return "", errors.New("boom")
			},
		}

		_, err := artext.FormatResult(res, artext.FormatMarkdown, conv)

		assert.Error(t, err)
	})

	t.Run("formats json with reports", func(t *testing.T) {
		t.Parallel()

		r := &artext.Result{
			Title:    "T",
			Body:     "B",
			Strategy: artext.StrategyEnhanced,
			Reports:  []artext.StrategyReport{{Strategy: artext.StrategyEnhanced, Length: 1}},
		}

		out, err := artext.FormatResult(r, artext.FormatJSON, nil)

		require.NoError(t, err)
		assert.Contains(t, out, `"strategy": "enhanced"`)
		assert.NotContains(t, out, "ContainerHTML")
	})

	t.Run("rejects unknown format", func(t *testing.T) {
		t.Parallel()

		_, err := artext.FormatResult(res, "xml", nil)

		assert.Equal(t, artext.EINVALID, artext.ErrorCode(err))
	})
}

func TestPreview(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "short", artext.Preview("short", 300))
	assert.Equal(t, "abc...", artext.Preview("abcdef", 3))
	assert.Equal(t, "요즘...", artext.Preview("요즘IT", 2))
}
