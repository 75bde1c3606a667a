package i18n

import (
	"golang.org/x/text/language"
)

// DefaultLanguage is used when nothing better is known.
var DefaultLanguage = language.English

// maxAcceptLanguageLength caps oversized Accept-Language style inputs.
const maxAcceptLanguageLength = 4096

// ParseAcceptLanguage picks the best supported language for an Accept-Language
// style preference list ("de-CH,de;q=0.9,en;q=0.5"). It falls back to fallback
// when the list is empty, malformed or matches nothing.
func ParseAcceptLanguage(header string, supported []language.Tag, fallback language.Tag) language.Tag {
	if header == "" || len(supported) == 0 {
		return fallback
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	preferred, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(preferred) == 0 {
		return fallback
	}

	return match(language.NewMatcher(supported), supported, fallback, preferred...)
}

// match returns the supported tag itself rather than the matcher's result,
// which may carry -u- extensions.
func match(m language.Matcher, supported []language.Tag, fallback language.Tag, preferred ...language.Tag) language.Tag {
	_, idx, confidence := m.Match(preferred...)
	if confidence == language.No || idx < 0 || idx >= len(supported) {
		return fallback
	}
	return supported[idx]
}
