package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Supported locales. DefaultLocale is the fallback for unknown or
// missing Accept-Language values.
const (
	LocalePtBR = "pt-BR"
	LocaleEnUS = "en-US"
	LocaleEsES = "es-ES"

	DefaultLocale = LocalePtBR
)

// Bundle resolves message keys against per-locale resource tables.
// It is immutable after construction and safe for concurrent use.
type Bundle struct {
	locales  []string
	matcher  language.Matcher
	messages map[string]map[string]string
}

func NewBundle() *Bundle {
	locales := []string{LocalePtBR, LocaleEnUS, LocaleEsES}
	tags := make([]language.Tag, 0, len(locales))
	for _, l := range locales {
		tags = append(tags, language.MustParse(l))
	}
	return &Bundle{
		locales:  locales,
		matcher:  language.NewMatcher(tags),
		messages: resources,
	}
}

// Match resolves an Accept-Language header value to one of the supported
// locales, falling back to DefaultLocale.
func (b *Bundle) Match(acceptLanguage string) string {
	if acceptLanguage == "" {
		return DefaultLocale
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return DefaultLocale
	}
	_, idx, conf := b.matcher.Match(tags...)
	if conf == language.No {
		return DefaultLocale
	}
	return b.locales[idx]
}

// Resolve translates a message key for the given locale, interpolating
// {{name}} placeholders from data. Unknown keys resolve to the key itself
// so a missing resource never breaks a response.
func (b *Bundle) Resolve(locale, key string, data map[string]any) string {
	table, ok := b.messages[locale]
	if !ok {
		table = b.messages[DefaultLocale]
	}
	msg, ok := table[key]
	if !ok {
		if msg, ok = b.messages[DefaultLocale][key]; !ok {
			return key
		}
	}
	for name, value := range data {
		msg = strings.ReplaceAll(msg, "{{"+name+"}}", fmt.Sprintf("%v", value))
	}
	return msg
}
