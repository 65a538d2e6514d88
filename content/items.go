package content

import (
	"frambod/models"
)

// Item is one entry of a collection document, kept as raw JSON so partial
// updates merge over it without dropping fields the editor did not send
// (locale overlays, homepage flags, anything added later).
type Item map[string]any

func (it Item) ID() string {
	return it.str("id")
}

func (it Item) Slug() string {
	return it.str("slug")
}

func (it Item) Title() string {
	return it.str("title")
}

func (it Item) str(key string) string {
	s, _ := it[key].(string)
	return s
}

// ShowOnHomepage defaults to true when the flag is absent.
func (it Item) ShowOnHomepage() bool {
	v, ok := it["showOnHomepage"].(bool)
	if !ok {
		return true
	}
	return v
}

// Localized resolves the item's display fields for one locale. The
// top-level title/excerpt/content are canonical; an "is"/"en"/"pl" overlay
// object replaces whichever of its fields are non-empty.
func (it Item) Localized(locale string) models.ItemTranslation {
	resolved := models.ItemTranslation{
		Title:   it.str("title"),
		Excerpt: it.str("excerpt"),
		Content: it.str("content"),
	}

	overlay, ok := it[locale].(map[string]any)
	if !ok {
		return resolved
	}
	if title, _ := overlay["title"].(string); title != "" {
		resolved.Title = title
	}
	if excerpt, _ := overlay["excerpt"].(string); excerpt != "" {
		resolved.Excerpt = excerpt
	}
	if content, _ := overlay["content"].(string); content != "" {
		resolved.Content = content
	}
	return resolved
}

func (it Item) clone() Item {
	dup := make(Item, len(it))
	for k, v := range it {
		dup[k] = v
	}
	return dup
}
