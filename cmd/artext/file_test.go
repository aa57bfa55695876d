package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/artext"
	main "github.com/fwojciec/artext/cmd/artext"
	"github.com/fwojciec/artext/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func saveCapture(t *testing.T, dir, url, html string, at time.Time) string {
	t.Helper()
	store := fs.NewCaptureStore(dir, fs.WithClock(func() time.Time { return at }))
	path, err := store.Save(context.Background(), &artext.Capture{
		URL:    url,
		Site:   artext.Classify(url),
		HTML:   html,
		Result: &artext.Result{Body: "본문", Strategy: artext.StrategyParagraphs},
	})
	require.NoError(t, err)
	return path
}

func TestMain_Run_File(t *testing.T) {
	t.Parallel()

	t.Run("re-extracts a saved capture", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := saveCapture(t, dir, "https://yozm.wishket.com/magazine/detail/3005/", wishketArticle,
			time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC))

		m := main.NewMain()
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"file", path}, stdout, stderr)
		require.NoError(t, err, stderr.String())

		assert.Contains(t, stdout.String(), "Title: 개발자의 글쓰기")
		assert.Contains(t, stdout.String(), "두 번째 문단도")
		assert.Contains(t, stderr.String(), "site: wishket")
	})

	t.Run("renders markdown from the container", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := saveCapture(t, dir, "https://yozm.wishket.com/magazine/detail/3005/", wishketArticle,
			time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC))

		m := main.NewMain()
		stdout := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"--format", "markdown", "file", path}, stdout, &bytes.Buffer{})
		require.NoError(t, err)

		assert.Contains(t, stdout.String(), "# 개발자의 글쓰기")
		assert.Contains(t, stdout.String(), "첫 번째 문단은")
	})

	t.Run("detects the site of a page without metadata", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "saved.html")
		html := `<html><head><meta property="og:site_name" content="velog"></head><body>
<h1 class="head-title">벨로그 글</h1>
<div class="atom-one"><p>벨로그 본문 문단은 이렇게 충분히 길게 작성되어 있습니다.</p></div>
</body></html>`
		require.NoError(t, os.WriteFile(path, []byte(html), 0644))

		m := main.NewMain()
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"file", path}, stdout, stderr)
		require.NoError(t, err, stderr.String())

		assert.Contains(t, stdout.String(), "Title: 벨로그 글")
		assert.Contains(t, stderr.String(), "site: velog")
	})

	t.Run("honors site override", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "saved.html")
		require.NoError(t, os.WriteFile(path, []byte(wishketArticle), 0644))

		m := main.NewMain()
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"file", path, "--site", "brunch"}, &bytes.Buffer{}, stderr)
		require.NoError(t, err)

		assert.Contains(t, stderr.String(), "site: brunch")
	})
}

func TestMain_Run_Captures(t *testing.T) {
	t.Parallel()

	t.Run("lists captures newest first", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		saveCapture(t, dir, "https://velog.io/@dev/older", "<html>1</html>", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
		saveCapture(t, dir, "https://brunch.co.kr/@a/42", "<html>2</html>", time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC))

		m := main.NewMain()
		stdout := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"captures", dir}, stdout, &bytes.Buffer{})
		require.NoError(t, err)

		out := stdout.String()
		brunch := bytes.Index([]byte(out), []byte("brunch"))
		velog := bytes.Index([]byte(out), []byte("velog"))
		require.NotEqual(t, -1, brunch)
		require.NotEqual(t, -1, velog)
		assert.Less(t, brunch, velog)
		assert.Contains(t, out, "42")
	})

	t.Run("uses --dir when no directory is given", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		saveCapture(t, dir, "https://medium.com/p/abc", "<html>3</html>", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))

		m := main.NewMain()
		stdout := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"--dir", dir, "captures"}, stdout, &bytes.Buffer{})
		require.NoError(t, err)

		assert.Contains(t, stdout.String(), "medium")
	})

	t.Run("shows helpful message when empty", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		stdout := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"captures", t.TempDir()}, stdout, &bytes.Buffer{})
		require.NoError(t, err)

		assert.Contains(t, stdout.String(), "No captures found")
	})
}
