package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/artext"
	"github.com/fwojciec/artext/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecord(url string, site artext.SiteID) *artext.Record {
	return &artext.Record{
		URL:         url,
		Site:        site,
		Title:       "Title",
		Body:        "First.\n\nSecond.",
		Strategy:    artext.StrategyEnhanced,
		CapturePath: "captures/page_sources/article.html",
		Reports: []artext.StrategyReport{
			{Strategy: artext.StrategyEnhanced, Length: 16, Content: "First. Second."},
			{Strategy: artext.StrategyArticleText, Error: "no article element"},
		},
	}
}

func TestRecordService_CreateRecord(t *testing.T) {
	t.Parallel()

	t.Run("assigns id, hash and timestamp", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRecordService(newTestDB(t))
		rec := newRecord("https://velog.io/@dev/post-1", artext.SiteVelog)

		require.NoError(t, svc.CreateRecord(context.Background(), rec))

		assert.NotEmpty(t, rec.ID)
		assert.Equal(t, sqlite.HashContent("First.\n\nSecond."), rec.ContentHash)
		assert.False(t, rec.ExtractedAt.IsZero())
		assert.Equal(t, "post-1", rec.ArticleID)
	})

	t.Run("rejects invalid record", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRecordService(newTestDB(t))

		err := svc.CreateRecord(context.Background(), &artext.Record{URL: "https://a.b/c"})

		assert.Equal(t, artext.EINVALID, artext.ErrorCode(err))
	})
}

func TestRecordService_FindRecordByID(t *testing.T) {
	t.Parallel()

	t.Run("round-trips all fields", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRecordService(newTestDB(t))
		rec := newRecord("https://velog.io/@dev/post-1", artext.SiteVelog)
		require.NoError(t, svc.CreateRecord(context.Background(), rec))

		got, err := svc.FindRecordByID(context.Background(), rec.ID)
		require.NoError(t, err)

		assert.Equal(t, rec.URL, got.URL)
		assert.Equal(t, artext.SiteVelog, got.Site)
		assert.Equal(t, rec.Body, got.Body)
		assert.Equal(t, rec.ContentHash, got.ContentHash)
		assert.Equal(t, rec.CapturePath, got.CapturePath)
		assert.Equal(t, rec.Reports, got.Reports)
		assert.True(t, rec.ExtractedAt.Equal(got.ExtractedAt))
	})

	t.Run("returns not found", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRecordService(newTestDB(t))

		_, err := svc.FindRecordByID(context.Background(), "missing")

		assert.Equal(t, artext.ENOTFOUND, artext.ErrorCode(err))
	})
}

func TestRecordService_FindRecords(t *testing.T) {
	t.Parallel()

	seed := func(t *testing.T) (*sqlite.RecordService, []*artext.Record) {
		t.Helper()
		svc := sqlite.NewRecordService(newTestDB(t))
		recs := []*artext.Record{
			newRecord("https://velog.io/@dev/a", artext.SiteVelog),
			newRecord("https://brunch.co.kr/@writer/1", artext.SiteBrunch),
			newRecord("https://velog.io/@dev/b", artext.SiteVelog),
		}
		for _, r := range recs {
			require.NoError(t, svc.CreateRecord(context.Background(), r))
		}
		return svc, recs
	}

	t.Run("returns newest first", func(t *testing.T) {
		t.Parallel()

		svc, recs := seed(t)

		got, err := svc.FindRecords(context.Background(), artext.RecordFilter{})
		require.NoError(t, err)

		require.Len(t, got, 3)
		assert.Equal(t, recs[2].ID, got[0].ID)
		assert.Equal(t, recs[0].ID, got[2].ID)
	})

	t.Run("filters by site", func(t *testing.T) {
		t.Parallel()

		svc, _ := seed(t)
		site := artext.SiteVelog

		got, err := svc.FindRecords(context.Background(), artext.RecordFilter{Site: &site})
		require.NoError(t, err)

		assert.Len(t, got, 2)
	})

	t.Run("filters by url", func(t *testing.T) {
		t.Parallel()

		svc, recs := seed(t)
		url := "https://brunch.co.kr/@writer/1"

		got, err := svc.FindRecords(context.Background(), artext.RecordFilter{URL: &url})
		require.NoError(t, err)

		require.Len(t, got, 1)
		assert.Equal(t, recs[1].ID, got[0].ID)
	})

	t.Run("filters by content hash", func(t *testing.T) {
		t.Parallel()

		svc, recs := seed(t)
		other := newRecord("https://medium.com/p/abc", artext.SiteMedium)
		other.Body = "Different body."
		require.NoError(t, svc.CreateRecord(context.Background(), other))

		hash := sqlite.HashContent(other.Body)
		got, err := svc.FindRecords(context.Background(), artext.RecordFilter{ContentHash: &hash})
		require.NoError(t, err)

		require.Len(t, got, 1)
		assert.Equal(t, other.ID, got[0].ID)
		assert.NotEqual(t, recs[0].ContentHash, hash)
	})

	t.Run("paginates", func(t *testing.T) {
		t.Parallel()

		svc, recs := seed(t)

		got, err := svc.FindRecords(context.Background(), artext.RecordFilter{Limit: 1, Offset: 1})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, recs[1].ID, got[0].ID)

		got, err = svc.FindRecords(context.Background(), artext.RecordFilter{Offset: 2})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, recs[0].ID, got[0].ID)
	})
}

func TestRecordService_DeleteRecord(t *testing.T) {
	t.Parallel()

	t.Run("deletes existing record", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRecordService(newTestDB(t))
		rec := newRecord("https://velog.io/@dev/a", artext.SiteVelog)
		require.NoError(t, svc.CreateRecord(context.Background(), rec))

		require.NoError(t, svc.DeleteRecord(context.Background(), rec.ID))

		_, err := svc.FindRecordByID(context.Background(), rec.ID)
		assert.Equal(t, artext.ENOTFOUND, artext.ErrorCode(err))
	})

	t.Run("returns not found for missing record", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRecordService(newTestDB(t))

		err := svc.DeleteRecord(context.Background(), "missing")

		assert.Equal(t, artext.ENOTFOUND, artext.ErrorCode(err))
	})
}

func TestHashContent(t *testing.T) {
	t.Parallel()

	assert.Len(t, sqlite.HashContent("body"), 16)
	assert.Equal(t, sqlite.HashContent("body"), sqlite.HashContent("body"))
	assert.NotEqual(t, sqlite.HashContent("body"), sqlite.HashContent("other"))
}
