// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ExtraPlaceholders Contributors

// Package locale maps placeholder locale tokens to translated date
// rendering. Tokens are the short forms players type into
// placeholders ("tr", "en-us", "pt-br"); each resolves to a locale
// with full month and weekday translations.
package locale

import (
	"strings"
	"time"

	"github.com/goodsign/monday"
	"golang.org/x/text/language"
)

// byToken maps accepted locale tokens to their formatting locale.
// Bare language tokens pick the dominant region.
var byToken = map[string]monday.Locale{
	"tr":    monday.LocaleTrTR,
	"tr-tr": monday.LocaleTrTR,
	"en":    monday.LocaleEnUS,
	"en-us": monday.LocaleEnUS,
	"en-gb": monday.LocaleEnGB,
	"de":    monday.LocaleDeDE,
	"de-de": monday.LocaleDeDE,
	"fr":    monday.LocaleFrFR,
	"fr-fr": monday.LocaleFrFR,
	"es":    monday.LocaleEsES,
	"es-es": monday.LocaleEsES,
	"it":    monday.LocaleItIT,
	"it-it": monday.LocaleItIT,
	"pt":    monday.LocalePtPT,
	"pt-pt": monday.LocalePtPT,
	"pt-br": monday.LocalePtBR,
	"nl":    monday.LocaleNlNL,
	"nl-nl": monday.LocaleNlNL,
	"pl":    monday.LocalePlPL,
	"pl-pl": monday.LocalePlPL,
	"sv":    monday.LocaleSvSE,
	"sv-se": monday.LocaleSvSE,
	"no":    monday.LocaleNbNO,
	"no-no": monday.LocaleNbNO,
	"da":    monday.LocaleDaDK,
	"da-dk": monday.LocaleDaDK,
	"fi":    monday.LocaleFiFI,
	"fi-fi": monday.LocaleFiFI,
	"ru":    monday.LocaleRuRU,
	"ru-ru": monday.LocaleRuRU,
	"ja":    monday.LocaleJaJP,
	"ja-jp": monday.LocaleJaJP,
	"zh":    monday.LocaleZhCN,
	"zh-cn": monday.LocaleZhCN,
	"zh-tw": monday.LocaleZhTW,
	"ko":    monday.LocaleKoKR,
	"ko-kr": monday.LocaleKoKR,
	"ar":    monday.Locale("ar_SA"),
	"ar-sa": monday.Locale("ar_SA"),
}

// fallback is used when neither the requested token nor the
// configured default resolves.
const fallback = monday.LocaleEnUS

// Lookup resolves a locale token to a formatting locale. Tokens are
// case-insensitive and accept underscore separators; canonicalization
// goes through BCP 47 so variants like "EN_us" normalize to "en-us".
// Unknown tokens report ok=false.
func Lookup(token string) (monday.Locale, bool) {
	key := canonicalize(token)
	loc, ok := byToken[key]
	if !ok {
		return fallback, false
	}
	return loc, true
}

// canonicalize lowercases a token into the table's key form, using
// the BCP 47 parser when it can make sense of the input.
func canonicalize(token string) string {
	token = strings.TrimSpace(token)
	if token == "" {
		return ""
	}
	if tag, err := language.Parse(strings.ReplaceAll(token, "_", "-")); err == nil {
		return strings.ToLower(tag.String())
	}
	return strings.ToLower(strings.ReplaceAll(token, "_", "-"))
}

// Known reports whether the token resolves to a supported locale.
func Known(token string) bool {
	_, ok := Lookup(token)
	return ok
}

// Format renders t under pattern, translating month and weekday names
// into the locale resolved from token. When token is unknown the
// defaultToken is tried; when that also fails, en-US applies.
func Format(t time.Time, pattern, token, defaultToken string) string {
	loc, ok := Lookup(token)
	if !ok {
		if def, defOK := Lookup(defaultToken); defOK {
			loc = def
		} else {
			loc = fallback
		}
	}
	return monday.Format(t, pattern, loc)
}
