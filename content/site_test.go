package content

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"frambod/models"
	"frambod/storage"
)

func setupSiteRepo(t *testing.T) *SiteRepository {
	t.Helper()
	return NewSiteRepository(storage.NewLocalStore(t.TempDir()))
}

func trilingualAbout() map[string]models.LocalizedAbout {
	return map[string]models.LocalizedAbout{
		"is": {Title: "Um mig", Paragraphs: []string{"p1"}},
		"en": {Title: "About me", Paragraphs: []string{"p1 en"}},
		"pl": {Title: "O mnie", Paragraphs: []string{"p1 pl"}},
	}
}

func TestGetRaw_MissingDocumentDefaultsToEmptyMappings(t *testing.T) {
	repo := setupSiteRepo(t)

	raw, err := repo.GetRaw(context.Background())

	assert.NoError(t, err)
	assert.NotNil(t, raw.About)
	assert.NotNil(t, raw.Policy)
	assert.NotNil(t, raw.VisionCards)
	assert.Empty(t, raw.About)
}

func TestGet_FallsBackToCanonicalLocale(t *testing.T) {
	repo := setupSiteRepo(t)
	err := repo.SaveRaw(context.Background(), models.SiteContentRaw{
		About: map[string]models.LocalizedAbout{
			"is": {Title: "T", Paragraphs: []string{"p1"}},
		},
	})
	assert.NoError(t, err)

	resolved, err := repo.Get(context.Background(), "en")

	assert.NoError(t, err)
	assert.Equal(t, "T", resolved.About.Title)
	assert.Equal(t, []string{"p1"}, resolved.About.Paragraphs)
}

func TestGet_ResolvesPerSection(t *testing.T) {
	repo := setupSiteRepo(t)
	err := repo.SaveRaw(context.Background(), models.SiteContentRaw{
		About: map[string]models.LocalizedAbout{
			"is": {Title: "Um mig", Paragraphs: []string{"p1"}},
			"en": {Title: "About me", Paragraphs: []string{"p1 en"}},
		},
		Policy: map[string]models.LocalizedPolicy{
			"is": {Title: "Stefna", Intro: []string{"i1"}, Highlight: "h"},
		},
	})
	assert.NoError(t, err)

	resolved, err := repo.Get(context.Background(), "en")

	assert.NoError(t, err)
	assert.Equal(t, "About me", resolved.About.Title)
	assert.Equal(t, "Stefna", resolved.Policy.Title)
}

func TestGet_EmptyLocaleEntryFallsBack(t *testing.T) {
	repo := setupSiteRepo(t)
	err := repo.SaveRaw(context.Background(), models.SiteContentRaw{
		About: map[string]models.LocalizedAbout{
			"is": {Title: "Um mig", Paragraphs: []string{"p1"}},
			"en": {},
		},
	})
	assert.NoError(t, err)

	resolved, err := repo.Get(context.Background(), "en")

	assert.NoError(t, err)
	assert.Equal(t, "Um mig", resolved.About.Title)
}

func TestGet_NeverReturnsMissingSections(t *testing.T) {
	repo := setupSiteRepo(t)

	resolved, err := repo.Get(context.Background(), "pl")

	assert.NoError(t, err)
	assert.NotNil(t, resolved.About.Paragraphs)
	assert.NotNil(t, resolved.Policy.Intro)
	assert.NotNil(t, resolved.VisionCards)
	assert.Empty(t, resolved.VisionCards)
}

func TestSaveSimplified_IsolatesOtherLocales(t *testing.T) {
	repo := setupSiteRepo(t)
	original := models.SiteContentRaw{
		About: trilingualAbout(),
		Policy: map[string]models.LocalizedPolicy{
			"is": {Title: "Stefna", Intro: []string{"i1"}, Highlight: "h"},
		},
	}
	assert.NoError(t, repo.SaveRaw(context.Background(), original))

	edited := models.LocalizedAbout{Title: "Edited", Paragraphs: []string{"new"}}
	err := repo.SaveSimplified(context.Background(), "en", SimplifiedUpdate{About: &edited})
	assert.NoError(t, err)

	raw, err := repo.GetRaw(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, edited, raw.About["en"])
	assert.Equal(t, original.About["is"], raw.About["is"])
	assert.Equal(t, original.About["pl"], raw.About["pl"])
	assert.Equal(t, original.Policy["is"], raw.Policy["is"])
}

func TestSaveSimplified_SkipsAbsentSections(t *testing.T) {
	repo := setupSiteRepo(t)
	assert.NoError(t, repo.SaveRaw(context.Background(), models.SiteContentRaw{
		About: trilingualAbout(),
		VisionCards: map[string][]models.VisionCard{
			"is": {{ID: "1", Icon: "x", Title: "t", Text: "txt"}},
		},
	}))

	cards := []models.VisionCard{{ID: "9", Icon: "y", Title: "nt", Text: "ntxt"}}
	err := repo.SaveSimplified(context.Background(), "is", SimplifiedUpdate{VisionCards: cards})
	assert.NoError(t, err)

	raw, _ := repo.GetRaw(context.Background())
	assert.Equal(t, cards, raw.VisionCards["is"])
	assert.Equal(t, trilingualAbout(), raw.About)
}

func TestSaveRaw_RoundTripIsNoOp(t *testing.T) {
	repo := setupSiteRepo(t)
	assert.NoError(t, repo.SaveRaw(context.Background(), DefaultSiteContent()))

	before, err := repo.GetRaw(context.Background())
	assert.NoError(t, err)

	assert.NoError(t, repo.SaveRaw(context.Background(), before))

	after, err := repo.GetRaw(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestSeed_DoesNotOverwriteExistingContent(t *testing.T) {
	repo := setupSiteRepo(t)
	custom := models.SiteContentRaw{About: trilingualAbout()}
	assert.NoError(t, repo.SaveRaw(context.Background(), custom))

	assert.NoError(t, repo.Seed(context.Background()))

	raw, _ := repo.GetRaw(context.Background())
	assert.Equal(t, trilingualAbout(), raw.About)
}

func TestSeed_WritesDefaultsWhenMissing(t *testing.T) {
	repo := setupSiteRepo(t)

	assert.NoError(t, repo.Seed(context.Background()))

	resolved, err := repo.Get(context.Background(), "is")
	assert.NoError(t, err)
	assert.Equal(t, "Um Róbert Ragnarsson", resolved.About.Title)
	assert.Len(t, resolved.VisionCards, 4)
}
