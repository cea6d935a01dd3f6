package docload

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/eaglemaker22/mbsgoat-sub000/internal/domain"

	"github.com/stretchr/testify/require"
)

type memStore struct {
	docs map[string]domain.Document
	err  error
}

func (m *memStore) Put(_ context.Context, doc domain.Document) error {
	if m.err != nil {
		return m.err
	}
	if m.docs == nil {
		m.docs = map[string]domain.Document{}
	}
	m.docs[doc.Key()] = doc
	return nil
}

func TestLoad_WritesCollectionDocuments(t *testing.T) {
	fsys := fstest.MapFS{
		"market_data/mbs_products.json": {Data: []byte(`{"UMBS_5_5_current": 99.5, "last_updated": "2024-05-01T14:00:00Z"}`)},
		"mortgage_rates/daily.json":      {Data: []byte(`{"FIXED30Y": "6.875"}`)},
		"README.json":                    {Data: []byte(`{}`)},
		"market_data/notes.txt":          {Data: []byte(`ignored`)},
	}
	store := &memStore{}

	n, err := Load(context.Background(), fsys, store, nil)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	mbs := store.docs["market_data/mbs_products"]
	require.Equal(t, json.Number("99.5"), mbs.Data["UMBS_5_5_current"])
	require.Equal(t, "2024-05-01T14:00:00Z", mbs.Data["last_updated"])
	require.Contains(t, store.docs, "mortgage_rates/daily")
}

func TestLoad_RejectsNonObject(t *testing.T) {
	fsys := fstest.MapFS{
		"market_data/treasury_yields.json": {Data: []byte(`null`)},
	}
	_, err := Load(context.Background(), fsys, &memStore{}, nil)
	require.Error(t, err)
}

func TestLoad_PropagatesStoreError(t *testing.T) {
	fsys := fstest.MapFS{
		"economic_indicators/latest.json": {Data: []byte(`{"CPI": 310.3}`)},
	}
	boom := errors.New("boom")
	_, err := Load(context.Background(), fsys, &memStore{err: boom}, nil)
	require.ErrorIs(t, err, boom)
}
