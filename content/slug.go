package content

import (
	"strings"
	"unicode"
)

// slugFold maps the accented letters that occur in Icelandic and Polish
// titles to their URL-safe equivalents. Anything not in this table and not
// already in [a-z0-9-] is dropped.
var slugFold = map[rune]string{
	'á': "a", 'à': "a", 'â': "a", 'ä': "a", 'ą': "a",
	'æ': "ae",
	'ć': "c",
	'ð': "d", 'đ': "d",
	'é': "e", 'è': "e", 'ê': "e", 'ë': "e", 'ę': "e",
	'í': "i", 'ì': "i", 'î': "i", 'ï': "i",
	'ł': "l",
	'ń': "n",
	'ó': "o", 'ò': "o", 'ô': "o", 'ö': "o", 'ő': "o", 'ø': "o",
	'ś': "s",
	'þ': "th",
	'ú': "u", 'ù': "u", 'û': "u", 'ü': "u",
	'ý': "y", 'ÿ': "y",
	'ź': "z", 'ż': "z",
}

// Slugify derives a URL-safe identifier from a display title. It is
// deterministic and performs no uniqueness check; identity is carried by the
// item id, not the slug.
func Slugify(title string) string {
	var b strings.Builder
	inSpace := false

	for _, r := range strings.ToLower(title) {
		if unicode.IsSpace(r) {
			if !inSpace && b.Len() > 0 {
				inSpace = true
			}
			continue
		}
		if inSpace {
			b.WriteByte('-')
			inSpace = false
		}
		if folded, ok := slugFold[r]; ok {
			b.WriteString(folded)
			continue
		}
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}

	return b.String()
}
