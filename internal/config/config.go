// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ExtraPlaceholders Contributors

// Package config holds the expansion's reloadable message and
// formatting settings. A Store keeps an immutable snapshot that
// handlers read per request; reloading swaps the snapshot atomically
// and never mutates a snapshot already handed out.
package config

// Config is the root of config.yml.
type Config struct {
	Messages Messages `koanf:"messages" json:"messages" yaml:"messages"`
	Date     Date     `koanf:"date" json:"date" yaml:"date"`
	Phoenix  Phoenix  `koanf:"phoenix" json:"phoenix" yaml:"phoenix"`
}

// Messages holds user-facing strings. All values may carry legacy
// &-codes and hex/gradient markup; they are colorized at display time.
type Messages struct {
	ReloadSuccess string `koanf:"reload-success" json:"reload-success" yaml:"reload-success"`
	ReloadError   string `koanf:"reload-error" json:"reload-error" yaml:"reload-error"`

	PluginEnabled  string `koanf:"plugin-enabled" json:"plugin-enabled" yaml:"plugin-enabled"`
	PluginDisabled string `koanf:"plugin-disabled" json:"plugin-disabled" yaml:"plugin-disabled"`

	BoltNotAvailable    string `koanf:"bolt-not-available" json:"bolt-not-available" yaml:"bolt-not-available"`
	PhoenixNotAvailable string `koanf:"phoenix-not-available" json:"phoenix-not-available" yaml:"phoenix-not-available"`

	InfoHeader     string `koanf:"info-header" json:"info-header" yaml:"info-header"`
	InfoVersion    string `koanf:"info-version" json:"info-version" yaml:"info-version"`
	InfoAuthor     string `koanf:"info-author" json:"info-author" yaml:"info-author"`
	InfoBolt       string `koanf:"info-bolt" json:"info-bolt" yaml:"info-bolt"`
	InfoPhoenix    string `koanf:"info-phoenix" json:"info-phoenix" yaml:"info-phoenix"`
	StatusEnabled  string `koanf:"status-enabled" json:"status-enabled" yaml:"status-enabled"`
	StatusDisabled string `koanf:"status-disabled" json:"status-disabled" yaml:"status-disabled"`

	// Unavailable is the fallback when a match result or participant
	// name cannot be resolved.
	Unavailable string `koanf:"unavailable" json:"unavailable" yaml:"unavailable"`

	KitOutOfMatch string `koanf:"kit-out-of-match" json:"kit-out-of-match" yaml:"kit-out-of-match"`
	KitLoading    string `koanf:"kit-loading" json:"kit-loading" yaml:"kit-loading"`
	KitInvalid    string `koanf:"kit-invalid" json:"kit-invalid" yaml:"kit-invalid"`
	KitDefault    string `koanf:"kit-default" json:"kit-default" yaml:"kit-default"`

	InvalidLocale string `koanf:"invalid-locale" json:"invalid-locale" yaml:"invalid-locale"`
}

// Date configures the server date placeholder.
type Date struct {
	// DefaultLocale is the locale token used when a placeholder names
	// none, e.g. "tr-tr" or "en-us".
	DefaultLocale string `koanf:"default-locale" json:"default-locale" yaml:"default-locale"`

	// Pattern is a Go reference-time layout.
	Pattern string `koanf:"pattern" json:"pattern" yaml:"pattern"`
}

// Phoenix configures the staff status and rank expiration
// placeholders.
type Phoenix struct {
	DefaultStatus  string `koanf:"default-status" json:"default-status" yaml:"default-status"`
	VanishedPrefix string `koanf:"vanished-prefix" json:"vanished-prefix" yaml:"vanished-prefix"`
	ModModePrefix  string `koanf:"mod-mode-prefix" json:"mod-mode-prefix" yaml:"mod-mode-prefix"`

	PermanentRank   string `koanf:"permanent-rank" json:"permanent-rank" yaml:"permanent-rank"`
	NoTimeRemaining string `koanf:"no-time-remaining" json:"no-time-remaining" yaml:"no-time-remaining"`

	RankExpiry RankExpiry `koanf:"rank-expiry" json:"rank-expiry" yaml:"rank-expiry"`
}

// RankExpiry controls how remaining grant time is rendered. A unit
// set to false cascades its magnitude into the enabled units below it.
type RankExpiry struct {
	Units    UnitFlags  `koanf:"units" json:"units" yaml:"units"`
	Singular UnitLabels `koanf:"singular" json:"singular" yaml:"singular"`
	Plural   UnitLabels `koanf:"plural" json:"plural" yaml:"plural"`
}

// UnitFlags enables or disables individual time units.
type UnitFlags struct {
	Year   bool `koanf:"year" json:"year" yaml:"year"`
	Month  bool `koanf:"month" json:"month" yaml:"month"`
	Day    bool `koanf:"day" json:"day" yaml:"day"`
	Hour   bool `koanf:"hour" json:"hour" yaml:"hour"`
	Minute bool `koanf:"minute" json:"minute" yaml:"minute"`
	Second bool `koanf:"second" json:"second" yaml:"second"`
}

// UnitLabels holds the display label per unit, appended directly
// after the numeric value.
type UnitLabels struct {
	Year   string `koanf:"year" json:"year" yaml:"year"`
	Month  string `koanf:"month" json:"month" yaml:"month"`
	Day    string `koanf:"day" json:"day" yaml:"day"`
	Hour   string `koanf:"hour" json:"hour" yaml:"hour"`
	Minute string `koanf:"minute" json:"minute" yaml:"minute"`
	Second string `koanf:"second" json:"second" yaml:"second"`
}

// Default returns the built-in configuration, used when config.yml is
// missing and as the base that file values are merged over.
func Default() Config {
	return Config{
		Messages: Messages{
			ReloadSuccess: "&aConfiguration successfully reloaded in &e<duration>ms&a!",
			ReloadError:   "&cAn error occurred while reloading the configuration!",

			PluginEnabled:  "&aPlugin successfully enabled! &7v<version>",
			PluginDisabled: "&cPlugin disabled.",

			BoltNotAvailable:    "&cBolt API is not available",
			PhoenixNotAvailable: "&cPhoenix API is not available",

			InfoHeader:     "&8&m          &r &6ExtraPlaceholders &8&m          ",
			InfoVersion:    "&eVersion: &f<version>",
			InfoAuthor:     "&eAuthor: &f<author>",
			InfoBolt:       "&eBolt: <status>",
			InfoPhoenix:    "&ePhoenix: <status>",
			StatusEnabled:  "&aEnabled",
			StatusDisabled: "&cDisabled",

			Unavailable: "&cUnavailable",

			KitOutOfMatch: "&7Out of match",
			KitLoading:    "&eKit loading",
			KitInvalid:    "&cInvalid kit",
			KitDefault:    "&7-",

			InvalidLocale: "&cInvalid locale format!",
		},
		Date: Date{
			DefaultLocale: "tr-tr",
			Pattern:       "2 January 2006, Mon",
		},
		Phoenix: Phoenix{
			DefaultStatus:  "&f",
			VanishedPrefix: "<#9e9e9e>[⚗] ",
			ModModePrefix:  "<#ffc430>[⚙] ",

			PermanentRank:   "&aPermanent",
			NoTimeRemaining: "&c0s",

			RankExpiry: RankExpiry{
				Units: UnitFlags{
					Year:   true,
					Month:  true,
					Day:    true,
					Hour:   true,
					Minute: true,
					Second: true,
				},
				Singular: UnitLabels{
					Year:   " Year",
					Month:  " Month",
					Day:    " Day",
					Hour:   " Hour",
					Minute: " Minute",
					Second: " Second",
				},
				Plural: UnitLabels{
					Year:   " Years",
					Month:  " Months",
					Day:    " Days",
					Hour:   " Hours",
					Minute: " Minutes",
					Second: " Seconds",
				},
			},
		},
	}
}
