// Package i18n holds the user-facing string tables and language matching.
package i18n

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

// Language is a supported BCP 47 language code.
type Language string

const (
	English    Language = "en-US"
	Portuguese Language = "pt-BR"
	Spanish    Language = "es-ES"
)

// Default is used when no language is stored or the stored one is unknown.
const Default = English

// Supported lists the languages in menu order.
var Supported = []Language{English, Portuguese, Spanish}

var matcher = language.NewMatcher([]language.Tag{
	language.AmericanEnglish,
	language.BrazilianPortuguese,
	language.EuropeanSpanish,
})

// Parse maps a language tag to the closest supported language. It reports
// false, and returns Default, when the tag is malformed or nothing matches.
func Parse(s string) (Language, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Default, false
	}
	tag, err := language.Parse(s)
	if err != nil {
		return Default, false
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return Default, false
	}
	return Supported[idx], true
}

// Translator renders strings in one language, falling back to English for
// keys the language does not define.
type Translator struct {
	lang  Language
	table map[Key]string
}

// New returns a Translator for lang. Unsupported languages get English.
func New(lang Language) *Translator {
	table, ok := tables[lang]
	if !ok {
		lang = Default
		table = tables[Default]
	}
	return &Translator{lang: lang, table: table}
}

// Language returns the translator's language.
func (t *Translator) Language() Language {
	return t.lang
}

// T returns the string for key. Unknown keys render as the key itself.
func (t *Translator) T(key Key) string {
	if s, ok := t.table[key]; ok {
		return s
	}
	if s, ok := tables[Default][key]; ok {
		return s
	}
	return string(key)
}

// Table returns the string for key with {{table}} replaced by n.
func (t *Translator) Table(key Key, n int) string {
	return Interpolate(t.T(key), map[string]string{"table": strconv.Itoa(n)})
}

// LanguageName returns the display name of lang in the translator's
// language.
func (t *Translator) LanguageName(lang Language) string {
	switch lang {
	case Portuguese:
		return t.T(KeyPortuguese)
	case Spanish:
		return t.T(KeySpanish)
	default:
		return t.T(KeyEnglish)
	}
}

// Interpolate replaces each {{name}} placeholder with vars[name].
// Placeholders without a value are left untouched.
func Interpolate(s string, vars map[string]string) string {
	if len(vars) == 0 || !strings.Contains(s, "{{") {
		return s
	}
	pairs := make([]string, 0, 2*len(vars))
	for k, v := range vars {
		pairs = append(pairs, "{{"+k+"}}", v)
	}
	return strings.NewReplacer(pairs...).Replace(s)
}
