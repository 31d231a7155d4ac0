// Package i18n translates user-facing messages. Message keys are the English
// texts themselves, so an untranslated key prints unchanged.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

var supported = []language.Tag{language.English, language.Spanish}

var matcher = language.NewMatcher(supported)

type Translator struct {
	cat      *catalog.Builder
	fallback language.Tag
}

// New builds a translator whose default language is defaultLang ("en" or "es").
func New(defaultLang string) *Translator {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, es := range spanish {
		// SetString only fails for malformed tags.
		_ = b.SetString(language.Spanish, key, es)
	}
	return &Translator{cat: b, fallback: Match(defaultLang, language.English)}
}

// Match picks the closest supported language for an Accept-Language style
// header. An empty or unparseable header yields fallback.
func Match(header string, fallback language.Tag) language.Tag {
	header = strings.TrimSpace(header)
	if header == "" {
		return fallback
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return fallback
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return fallback
	}
	return supported[idx]
}

func (t *Translator) Default() language.Tag {
	return t.fallback
}

// Translate renders msg in the language negotiated from header.
func (t *Translator) Translate(header, msg string) string {
	return t.In(Match(header, t.fallback), msg)
}

func (t *Translator) In(tag language.Tag, msg string) string {
	// Catalogued messages carry no verbs; anything with '%' is passed through.
	if msg == "" || strings.Contains(msg, "%") {
		return msg
	}
	p := message.NewPrinter(tag, message.Catalog(t.cat))
	return p.Sprintf(msg)
}
