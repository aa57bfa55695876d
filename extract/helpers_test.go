package extract_test

import (
	"testing"

	"github.com/fwojciec/artext"
	"github.com/fwojciec/artext/goquery"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, html string) artext.Document {
	t.Helper()
	doc, err := goquery.NewDocument(html)
	require.NoError(t, err)
	return doc
}

func mustFindOne(t *testing.T, doc artext.Document, selector string) artext.Element {
	t.Helper()
	found, err := doc.Find(selector)
	require.NoError(t, err)
	require.NotEmpty(t, found)
	return found[0]
}
