package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"frambod/models"
	"frambod/storage"
)

// SiteRepository manages the locale-keyed site document (about, policy,
// visionCards). It serves two editors: the simplified one edits a single
// locale's resolved view, the raw one edits all locales at once. Both write
// paths go through the same load-then-apply cycle so neither can drop the
// other's locales.
type SiteRepository struct {
	store storage.Store
}

func NewSiteRepository(store storage.Store) *SiteRepository {
	return &SiteRepository{store: store}
}

// SimplifiedUpdate is one locale's partial edit. Nil sections are left
// untouched in the stored document.
type SimplifiedUpdate struct {
	About       *models.LocalizedAbout  `json:"about"`
	Policy      *models.LocalizedPolicy `json:"policy"`
	VisionCards []models.VisionCard     `json:"visionCards"`
}

// GetRaw returns the full locale-keyed document. A document that has never
// been written, or one missing a top-level section, reads as empty mappings.
func (r *SiteRepository) GetRaw(ctx context.Context) (models.SiteContentRaw, error) {
	var raw models.SiteContentRaw

	data, err := r.store.Load(ctx, storage.DocSite)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return raw, err
	}
	if err == nil {
		if err := json.Unmarshal(data, &raw); err != nil {
			return raw, fmt.Errorf("decoding site.json: %w", err)
		}
	}

	normalize(&raw)
	return raw, nil
}

// Get returns the document resolved for one locale. The fallback chain runs
// independently per section, so a partially translated document can mix
// translated and canonical sections.
func (r *SiteRepository) Get(ctx context.Context, locale string) (models.SiteContent, error) {
	raw, err := r.GetRaw(ctx)
	if err != nil {
		return models.SiteContent{}, err
	}

	return models.SiteContent{
		About:       resolveAbout(raw.About, locale),
		Policy:      resolvePolicy(raw.Policy, locale),
		VisionCards: resolveVisionCards(raw.VisionCards, locale),
	}, nil
}

// SaveRaw replaces the entire document. Callers editing in raw mode must
// round-trip through GetRaw first; this method persists exactly the locales
// it is given.
func (r *SiteRepository) SaveRaw(ctx context.Context, raw models.SiteContentRaw) error {
	normalize(&raw)
	return r.save(ctx, raw)
}

// SaveSimplified overwrites only the targeted locale's entries for the
// sections present in the update. Every other locale and every untouched
// section is persisted exactly as it was loaded.
func (r *SiteRepository) SaveSimplified(ctx context.Context, locale string, upd SimplifiedUpdate) error {
	raw, err := r.GetRaw(ctx)
	if err != nil {
		return err
	}

	if upd.About != nil {
		raw.About[locale] = *upd.About
	}
	if upd.Policy != nil {
		raw.Policy[locale] = *upd.Policy
	}
	if upd.VisionCards != nil {
		raw.VisionCards[locale] = upd.VisionCards
	}

	return r.save(ctx, raw)
}

// Seed writes the default trilingual document if none exists yet. Existing
// content is never overwritten.
func (r *SiteRepository) Seed(ctx context.Context) error {
	_, err := r.store.Load(ctx, storage.DocSite)
	if errors.Is(err, storage.ErrNotFound) {
		return r.SaveRaw(ctx, DefaultSiteContent())
	}
	return err
}

func (r *SiteRepository) save(ctx context.Context, raw models.SiteContentRaw) error {
	data, err := json.MarshalIndent(raw, "", "    ")
	if err != nil {
		return fmt.Errorf("encoding site.json: %w", err)
	}
	return r.store.Save(ctx, storage.DocSite, data)
}

func normalize(raw *models.SiteContentRaw) {
	if raw.About == nil {
		raw.About = map[string]models.LocalizedAbout{}
	}
	if raw.Policy == nil {
		raw.Policy = map[string]models.LocalizedPolicy{}
	}
	if raw.VisionCards == nil {
		raw.VisionCards = map[string][]models.VisionCard{}
	}
}

func resolveAbout(m map[string]models.LocalizedAbout, locale string) models.LocalizedAbout {
	if v, ok := m[locale]; ok && (v.Title != "" || len(v.Paragraphs) > 0) {
		return v
	}
	if v, ok := m[DefaultLocale]; ok {
		return v
	}
	return models.LocalizedAbout{Paragraphs: []string{}}
}

func resolvePolicy(m map[string]models.LocalizedPolicy, locale string) models.LocalizedPolicy {
	if v, ok := m[locale]; ok && (v.Title != "" || len(v.Intro) > 0 || v.Highlight != "") {
		return v
	}
	if v, ok := m[DefaultLocale]; ok {
		return v
	}
	return models.LocalizedPolicy{Intro: []string{}}
}

func resolveVisionCards(m map[string][]models.VisionCard, locale string) []models.VisionCard {
	if v, ok := m[locale]; ok && len(v) > 0 {
		return v
	}
	if v, ok := m[DefaultLocale]; ok && v != nil {
		return v
	}
	return []models.VisionCard{}
}
