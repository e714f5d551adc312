package slugs

import (
	"strings"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// letters that do not decompose into an ASCII base
var transliterations = map[rune]string{
	'ß': "ss",
	'æ': "ae",
	'ø': "o",
	'œ': "oe",
	'đ': "d",
	'ð': "d",
	'ł': "l",
	'þ': "th",
	'ı': "i",
}

// symbols spelled out as their own word
var symbols = map[rune]string{
	'@': "at",
}

// Slugify converts a title to a lowercase, hyphen-separated ASCII slug.
//
//	Slugify("Hello World!")       // "hello-world"
//	Slugify("Crème Brûlée")       // "creme-brulee"
//	Slugify("دورة البرمجة")        // ""
func Slugify(title string) string {
	stripped, _, err := transform.String(
		transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC),
		strings.ToLower(title),
	)
	if err != nil {
		stripped = strings.ToLower(title)
	}

	var b strings.Builder
	b.Grow(len(stripped))
	pendingHyphen := false
	write := func(s string) {
		if pendingHyphen && b.Len() > 0 {
			b.WriteByte('-')
		}
		pendingHyphen = false
		b.WriteString(s)
	}

	for _, r := range stripped {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			write(string(r))
		case r >= '٠' && r <= '٩':
			// Arabic-Indic digits
			write(string('0' + (r - '٠')))
		case r == '\'' || r == '’':
			// apostrophes join their word: "don't" -> "dont"
		case transliterations[r] != "":
			write(transliterations[r])
		case symbols[r] != "":
			pendingHyphen = true
			write(symbols[r])
			pendingHyphen = true
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			// no ASCII form; dropped
		default:
			pendingHyphen = true
		}
	}
	return b.String()
}

// maxBaseLen leaves room in the 300 byte slug column for a kind prefix and a
// "-N" collision suffix.
const maxBaseLen = 280

// Base returns the slug candidate for title. A title with no ASCII form
// gets "<kind>-" plus a short name-based UUID of the title; a purely numeric
// one gets "<kind>-<digits>". Both are deterministic.
func Base(kind, title string) string {
	base := truncate(Slugify(title), maxBaseLen)
	if base == "" {
		id := uuid.NewSHA1(uuid.NameSpaceURL, []byte(kind+":"+strings.TrimSpace(title)))
		return kind + "-" + strings.ReplaceAll(id.String(), "-", "")[:8]
	}
	if isNumeric(base) {
		return kind + "-" + base
	}
	return base
}

// truncate cuts s to at most n bytes, on a hyphen when one is available.
// Slugify output is ASCII so any byte offset is a rune boundary.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := s[:n]
	if s[n] != '-' {
		// mid-word
		if i := strings.LastIndexByte(cut, '-'); i > 0 {
			cut = cut[:i]
		}
	}
	return strings.TrimRight(cut, "-")
}

func isNumeric(s string) bool {
	for _, r := range s {
		if (r < '0' || r > '9') && r != '-' {
			return false
		}
	}
	return true
}
