package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"frambod/storage"
)

var (
	// ErrItemNotFound signals an update or lookup against an id/slug that is
	// not in the collection. Deletes do not return it; they are idempotent.
	ErrItemNotFound = errors.New("content: item not found")

	// ErrTitleRequired signals a create without the canonical title.
	ErrTitleRequired = errors.New("content: title is required")
)

// Collection is the repository for one ordered item document (articles,
// news or videos). Every operation reloads the document, mutates it and
// writes it back whole; the last write wins across concurrent editors.
type Collection struct {
	store storage.Store
	doc   storage.Document
}

func NewCollection(store storage.Store, doc storage.Document) *Collection {
	return &Collection{store: store, doc: doc}
}

func (c *Collection) Document() storage.Document {
	return c.doc
}

// List returns the stored items in persisted order, newest first. A document
// that has never been written reads as an empty collection.
func (c *Collection) List(ctx context.Context) ([]Item, error) {
	data, err := c.store.Load(ctx, c.doc)
	if errors.Is(err, storage.ErrNotFound) {
		return []Item{}, nil
	}
	if err != nil {
		return nil, err
	}

	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", c.doc.Filename(), err)
	}
	if items == nil {
		items = []Item{}
	}
	return items, nil
}

// GetBySlug returns the first item whose slug matches. Slug uniqueness is
// not enforced on create, so with colliding titles the newer item shadows
// the older one here.
func (c *Collection) GetBySlug(ctx context.Context, slug string) (Item, error) {
	items, err := c.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, it := range items {
		if it.Slug() == slug {
			return it, nil
		}
	}
	return nil, ErrItemNotFound
}

// Create assigns a fresh id and a slug derived from the title, prepends the
// item and persists the whole document. Newest-first ordering is a stored
// property, not a sort applied on read.
func (c *Collection) Create(ctx context.Context, fields Item) (Item, error) {
	title, _ := fields["title"].(string)
	if strings.TrimSpace(title) == "" {
		return nil, ErrTitleRequired
	}

	items, err := c.List(ctx)
	if err != nil {
		return nil, err
	}

	item := fields.clone()
	item["id"] = strconv.FormatInt(time.Now().UnixMilli(), 10)
	item["slug"] = Slugify(title)

	items = append([]Item{item}, items...)
	if err := c.save(ctx, items); err != nil {
		return nil, err
	}
	return item, nil
}

// Update shallow-merges the provided fields over the stored item. Fields the
// caller did not send are left untouched; id and slug only change if the
// caller sends them explicitly.
func (c *Collection) Update(ctx context.Context, id string, fields Item) (Item, error) {
	items, err := c.List(ctx)
	if err != nil {
		return nil, err
	}

	for i, it := range items {
		if it.ID() != id {
			continue
		}
		merged := it.clone()
		for k, v := range fields {
			merged[k] = v
		}
		items[i] = merged
		if err := c.save(ctx, items); err != nil {
			return nil, err
		}
		return merged, nil
	}

	return nil, ErrItemNotFound
}

// Delete removes the item with the given id. Deleting an id that is not
// present succeeds and leaves the collection unchanged.
func (c *Collection) Delete(ctx context.Context, id string) error {
	items, err := c.List(ctx)
	if err != nil {
		return err
	}

	kept := items[:0]
	for _, it := range items {
		if it.ID() != id {
			kept = append(kept, it)
		}
	}
	return c.save(ctx, kept)
}

func (c *Collection) save(ctx context.Context, items []Item) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", c.doc.Filename(), err)
	}
	return c.store.Save(ctx, c.doc, data)
}
