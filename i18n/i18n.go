package i18n

// Static UI strings for the three published locales. Editable content lives
// in the content documents; these only cover navigation and section chrome.

type NavStrings struct {
	About   string
	Policy  string
	News    string
	Videos  string
	Contact string
}

type HeroStrings struct {
	Greeting string
	Subtitle string
	Slogan   string
	CTA1     string
	CTA2     string
}

type ContactStrings struct {
	Title  string
	Text   string
	Button string
}

type Translations struct {
	Nav           NavStrings
	Hero          HeroStrings
	Contact       ContactStrings
	ArticlesTitle string
	ReadMore      string
	NewsTitle     string
	VideosTitle   string
	Copyright     string
}

var LocaleNames = map[string]string{
	"is": "Íslenska",
	"en": "English",
	"pl": "Polski",
}

var translations = map[string]Translations{
	"is": {
		Nav: NavStrings{
			About:   "Um mig",
			Policy:  "Stefnuyfirlýsing",
			News:    "Fréttir",
			Videos:  "Myndskeið",
			Contact: "Hafa samband",
		},
		Hero: HeroStrings{
			Greeting: "Hæ, ég heiti",
			Subtitle: "Frambjóðandi til borgarstjórnar Reykjavíkur",
			Slogan:   "Ég vil sjá betur rekna borg sem skilar sér í betri þjónustu fyrir íbúa.",
			CTA1:     "Kynntu þér stefnuna",
			CTA2:     "Hafa samband",
		},
		Contact: ContactStrings{
			Title:  "Hafa samband",
			Text:   "Hefur þú spurningar eða vilt styðja herferðina? Hafa samband!",
			Button: "Senda tölvupóst",
		},
		ArticlesTitle: "Greinar",
		ReadMore:      "Lesa meira →",
		NewsTitle:     "Fréttir",
		VideosTitle:   "Myndskeið",
		Copyright:     "Öll réttindi áskilin",
	},
	"en": {
		Nav: NavStrings{
			About:   "About me",
			Policy:  "Policy statement",
			News:    "News",
			Videos:  "Videos",
			Contact: "Contact",
		},
		Hero: HeroStrings{
			Greeting: "Hi, my name is",
			Subtitle: "Candidate for Reykjavík City Council",
			Slogan:   "I want to see a better-run city that delivers improved services for residents.",
			CTA1:     "Read my policy",
			CTA2:     "Get in touch",
		},
		Contact: ContactStrings{
			Title:  "Contact",
			Text:   "Do you have questions or want to support the campaign? Get in touch!",
			Button: "Send email",
		},
		ArticlesTitle: "Articles",
		ReadMore:      "Read more →",
		NewsTitle:     "News",
		VideosTitle:   "Videos",
		Copyright:     "All rights reserved",
	},
	"pl": {
		Nav: NavStrings{
			About:   "O mnie",
			Policy:  "Program",
			News:    "Aktualności",
			Videos:  "Filmy",
			Contact: "Kontakt",
		},
		Hero: HeroStrings{
			Greeting: "Cześć, nazywam się",
			Subtitle: "Kandydat do Rady Miasta Reykjavíku",
			Slogan:   "Chcę zobaczyć lepiej zarządzane miasto, które zapewnia lepsze usługi dla mieszkańców.",
			CTA1:     "Poznaj mój program",
			CTA2:     "Kontakt",
		},
		Contact: ContactStrings{
			Title:  "Kontakt",
			Text:   "Masz pytania lub chcesz wesprzeć kampanię? Skontaktuj się!",
			Button: "Wyślij email",
		},
		ArticlesTitle: "Artykuły",
		ReadMore:      "Czytaj więcej →",
		NewsTitle:     "Aktualności",
		VideosTitle:   "Filmy",
		Copyright:     "Wszelkie prawa zastrzeżone",
	},
}

// Get returns the UI strings for a locale, falling back to Icelandic for
// anything unknown.
func Get(locale string) Translations {
	if t, ok := translations[locale]; ok {
		return t
	}
	return translations["is"]
}
