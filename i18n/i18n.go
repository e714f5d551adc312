// Package i18n resolves the request locale and translates user-facing
// messages. Messages are keyed by their English text.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

const (
	English = "en"
	Arabic  = "ar"
)

var supported = []language.Tag{language.English, language.Arabic}

var matcher = language.NewMatcher(supported)

// Resolve picks en or ar from an explicit ?lang= value, then the
// Accept-Language header, defaulting to English.
func Resolve(explicit, acceptLanguage string) string {
	if lang := normalize(explicit); lang != "" {
		return lang
	}
	if acceptLanguage == "" {
		return English
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return English
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return English
	}
	return langCode(supported[idx])
}

func normalize(lang string) string {
	lang = strings.TrimSpace(lang)
	if lang == "" {
		return ""
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return ""
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return ""
	}
	return langCode(supported[idx])
}

func langCode(tag language.Tag) string {
	base, _ := tag.Base()
	return base.String()
}

// IsRTL reports whether lang is written right to left.
func IsRTL(lang string) bool {
	return lang == Arabic
}

// T translates msg into lang. Unknown messages fall back to English.
func T(lang, msg string) string {
	if lang != Arabic {
		return msg
	}
	if ar, ok := arabic[msg]; ok {
		return ar
	}
	return msg
}

// Pick returns the Arabic value when lang is Arabic and it is not blank.
func Pick(lang, en, ar string) string {
	if lang == Arabic && strings.TrimSpace(ar) != "" {
		return ar
	}
	return en
}
