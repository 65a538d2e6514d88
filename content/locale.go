package content

// Locales the site is published in. Icelandic is canonical: it is assumed
// always populated and is the fallback target for the other two.
var Locales = []string{"is", "en", "pl"}

const DefaultLocale = "is"

func IsSupportedLocale(locale string) bool {
	for _, l := range Locales {
		if l == locale {
			return true
		}
	}
	return false
}
