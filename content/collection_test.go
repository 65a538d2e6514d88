package content

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"frambod/storage"
)

func setupCollection(t *testing.T, doc storage.Document) (*Collection, storage.Store) {
	t.Helper()
	store := storage.NewLocalStore(t.TempDir())
	return NewCollection(store, doc), store
}

func seedItems(t *testing.T, store storage.Store, doc storage.Document, items []Item) {
	t.Helper()
	data, err := json.Marshal(items)
	assert.NoError(t, err)
	assert.NoError(t, store.Save(context.Background(), doc, data))
}

func TestList_EmptyWhenDocumentMissing(t *testing.T) {
	col, _ := setupCollection(t, storage.DocArticles)

	items, err := col.List(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, []Item{}, items)
}

func TestCreate_PrependsAndAssignsIdentity(t *testing.T) {
	col, store := setupCollection(t, storage.DocArticles)
	seedItems(t, store, storage.DocArticles, []Item{
		{"id": "1", "title": "A", "slug": "a"},
	})

	created, err := col.Create(context.Background(), Item{
		"title":   "Þrjú B",
		"date":    "2026-01-12",
		"excerpt": "stutt",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID())
	assert.Equal(t, "thrju-b", created.Slug())

	items, err := col.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, created.ID(), items[0].ID())
	assert.Equal(t, "1", items[1].ID())
}

func TestCreate_RequiresTitle(t *testing.T) {
	col, _ := setupCollection(t, storage.DocNews)

	_, err := col.Create(context.Background(), Item{"excerpt": "no title"})

	assert.True(t, errors.Is(err, ErrTitleRequired))
}

func TestGetBySlug(t *testing.T) {
	col, store := setupCollection(t, storage.DocNews)
	seedItems(t, store, storage.DocNews, []Item{
		{"id": "1", "slug": "fyrsta-frett", "title": "Fyrsta frétt"},
		{"id": "2", "slug": "onnur-frett", "title": "Önnur frétt"},
	})

	item, err := col.GetBySlug(context.Background(), "onnur-frett")
	assert.NoError(t, err)
	assert.Equal(t, "2", item.ID())

	_, err = col.GetBySlug(context.Background(), "finnst-ekki")
	assert.True(t, errors.Is(err, ErrItemNotFound))
}

func TestUpdate_PreservesUntouchedFields(t *testing.T) {
	col, store := setupCollection(t, storage.DocArticles)
	seedItems(t, store, storage.DocArticles, []Item{
		{
			"id": "1", "slug": "grein", "title": "Grein",
			"date": "2026-01-02", "excerpt": "útdráttur", "content": "meginmál",
		},
	})

	updated, err := col.Update(context.Background(), "1", Item{"title": "X"})
	assert.NoError(t, err)
	assert.Equal(t, "X", updated.Title())

	items, err := col.List(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "X", items[0].Title())
	assert.Equal(t, "grein", items[0].Slug())
	assert.Equal(t, "útdráttur", items[0].str("excerpt"))
	assert.Equal(t, "meginmál", items[0].str("content"))
	assert.Equal(t, "2026-01-02", items[0].str("date"))
}

func TestUpdate_UnknownID(t *testing.T) {
	col, store := setupCollection(t, storage.DocVideos)
	seedItems(t, store, storage.DocVideos, []Item{{"id": "1", "title": "V"}})

	_, err := col.Update(context.Background(), "999", Item{"title": "X"})

	assert.True(t, errors.Is(err, ErrItemNotFound))
}

func TestUpdate_KeepsLocaleOverlays(t *testing.T) {
	col, store := setupCollection(t, storage.DocNews)
	seedItems(t, store, storage.DocNews, []Item{
		{
			"id": "1", "slug": "frett", "title": "Frétt",
			"en": map[string]any{"title": "News", "excerpt": "", "content": ""},
		},
	})

	_, err := col.Update(context.Background(), "1", Item{"excerpt": "nýr útdráttur"})
	assert.NoError(t, err)

	items, _ := col.List(context.Background())
	assert.Equal(t, "News", items[0].Localized("en").Title)
}

func TestDelete_Idempotent(t *testing.T) {
	col, store := setupCollection(t, storage.DocArticles)
	seedItems(t, store, storage.DocArticles, []Item{
		{"id": "1", "title": "A"},
		{"id": "2", "title": "B"},
	})

	assert.NoError(t, col.Delete(context.Background(), "1"))
	items, _ := col.List(context.Background())
	assert.Len(t, items, 1)

	assert.NoError(t, col.Delete(context.Background(), "1"))
	assert.NoError(t, col.Delete(context.Background(), "aldrei-til"))
	items, _ = col.List(context.Background())
	assert.Len(t, items, 1)
	assert.Equal(t, "2", items[0].ID())
}

func TestItem_ShowOnHomepageDefaultsTrue(t *testing.T) {
	assert.True(t, Item{"id": "1"}.ShowOnHomepage())
	assert.True(t, Item{"id": "1", "showOnHomepage": true}.ShowOnHomepage())
	assert.False(t, Item{"id": "1", "showOnHomepage": false}.ShowOnHomepage())
}

func TestItem_LocalizedFallsBackToCanonical(t *testing.T) {
	item := Item{
		"title": "Frétt", "excerpt": "útdráttur", "content": "meginmál",
		"en": map[string]any{"title": "News", "excerpt": "", "content": ""},
	}

	en := item.Localized("en")
	assert.Equal(t, "News", en.Title)
	assert.Equal(t, "útdráttur", en.Excerpt)
	assert.Equal(t, "meginmál", en.Content)

	pl := item.Localized("pl")
	assert.Equal(t, "Frétt", pl.Title)
}
