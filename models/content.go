package models

// Article is the typed read model for one entry of the articles document.
// Localized overlays (is/en/pl) live on the raw item; the top-level fields
// hold the canonical (Icelandic) values.
type Article struct {
	ID             string `json:"id"`
	Slug           string `json:"slug"`
	Title          string `json:"title"`
	Date           string `json:"date"`
	Excerpt        string `json:"excerpt"`
	Content        string `json:"content"`
	Image          string `json:"image,omitempty"`
	ShowOnHomepage *bool  `json:"showOnHomepage,omitempty"`
}

type NewsItem struct {
	ID      string `json:"id"`
	Slug    string `json:"slug"`
	Title   string `json:"title"`
	Date    string `json:"date"`
	Excerpt string `json:"excerpt"`
	Content string `json:"content"`
	Image   string `json:"image,omitempty"`
}

type Video struct {
	ID             string `json:"id"`
	Slug           string `json:"slug"`
	Title          string `json:"title"`
	Date           string `json:"date"`
	Description    string `json:"description"`
	YoutubeURL     string `json:"youtubeUrl"`
	Thumbnail      string `json:"thumbnail,omitempty"`
	ShowOnHomepage *bool  `json:"showOnHomepage,omitempty"`
}

// ItemTranslation is the per-locale overlay carried by articles and news
// items under the "is"/"en"/"pl" keys.
type ItemTranslation struct {
	Title   string `json:"title"`
	Excerpt string `json:"excerpt"`
	Content string `json:"content"`
}

type LocalizedAbout struct {
	Title      string   `json:"title"`
	Paragraphs []string `json:"paragraphs"`
}

type LocalizedPolicy struct {
	Title     string   `json:"title"`
	Intro     []string `json:"intro"`
	Highlight string   `json:"highlight"`
}

type VisionCard struct {
	ID    string `json:"id"`
	Icon  string `json:"icon"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

// SiteContentRaw is the site document as persisted: every section is keyed
// by locale, with "is" always populated and "en"/"pl" optional.
type SiteContentRaw struct {
	About       map[string]LocalizedAbout  `json:"about"`
	Policy      map[string]LocalizedPolicy `json:"policy"`
	VisionCards map[string][]VisionCard    `json:"visionCards"`
}

// SiteContent is one locale's resolved view of the site document.
type SiteContent struct {
	About       LocalizedAbout  `json:"about"`
	Policy      LocalizedPolicy `json:"policy"`
	VisionCards []VisionCard    `json:"visionCards"`
}
