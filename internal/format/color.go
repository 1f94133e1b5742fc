// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ExtraPlaceholders Contributors

package format

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/Masterminds/semver/v3"
	"github.com/lucasb-eyer/go-colorful"
)

// sectionRune is the control character the chat renderer understands.
const sectionRune = '§'

// legacyCodes are the characters valid after '&' in legacy markup.
const legacyCodes = "0123456789AaBbCcDdEeFfKkLlMmNnOoRrXx"

var (
	hexPattern      = regexp.MustCompile(`<#([A-Fa-f0-9]{6})>`)
	gradientPattern = regexp.MustCompile(`<gradient:#([A-Fa-f0-9]{6}):#([A-Fa-f0-9]{6})>(.*?)</gradient>`)

	// Matches a Minecraft release buried inside a platform version
	// string like "git-Paper-196 (MC: 1.16.5)". Releases always start
	// "1.", which keeps build numbers and fork versions from matching.
	releasePattern = regexp.MustCompile(`\b1\.\d+(\.\d+)?\b`)

	// Hex chat colors shipped in 1.16.
	hexConstraint = mustConstraint(">= 1.16.0")
)

func mustConstraint(s string) *semver.Constraints {
	c, err := semver.NewConstraint(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Colorizer translates markup in message strings into renderer control
// sequences. Gradient wrappers expand first, then bare hex tags, then
// legacy &-codes, so gradient output never gets re-matched.
type Colorizer struct {
	hexSupported bool
}

// NewColorizer probes the platform version string for hex color
// support. Unparseable versions are treated as pre-1.16: legacy codes
// still translate, hex and gradient markup passes through untouched.
func NewColorizer(platformVersion string) *Colorizer {
	return &Colorizer{hexSupported: supportsHex(platformVersion)}
}

func supportsHex(platformVersion string) bool {
	release := releasePattern.FindString(platformVersion)
	if release == "" {
		return false
	}
	v, err := semver.NewVersion(release)
	if err != nil {
		return false
	}
	return hexConstraint.Check(v)
}

// HexSupported reports whether the platform renders hex chat colors.
func (c *Colorizer) HexSupported() bool {
	return c.hexSupported
}

// Colorize translates all markup in text.
func (c *Colorizer) Colorize(text string) string {
	if text == "" {
		return text
	}
	if c.hexSupported {
		text = gradientPattern.ReplaceAllStringFunc(text, expandGradient)
		text = hexPattern.ReplaceAllStringFunc(text, func(tag string) string {
			return hexEscape(hexPattern.FindStringSubmatch(tag)[1])
		})
	}
	return translateLegacy(text)
}

// Normalize prepares text for constrained display surfaces such as
// name tags. On hex-capable platforms it behaves like Colorize; on
// older platforms hex and gradient markup is stripped instead of
// passed through, so raw tags never reach the renderer.
func (c *Colorizer) Normalize(text string) string {
	if !c.hexSupported {
		text = gradientPattern.ReplaceAllString(text, "$3")
		text = hexPattern.ReplaceAllString(text, "")
	}
	return c.Colorize(text)
}

// ColorizeAll translates each element of texts.
func (c *Colorizer) ColorizeAll(texts []string) []string {
	out := make([]string, len(texts))
	for i, t := range texts {
		out[i] = c.Colorize(t)
	}
	return out
}

// Strip removes all markup: gradient wrappers keep their inner text,
// hex tags vanish, and legacy codes (in either & or section form) are
// dropped with their code character.
func (c *Colorizer) Strip(text string) string {
	text = gradientPattern.ReplaceAllString(text, "$3")
	text = hexPattern.ReplaceAllString(text, "")

	var b strings.Builder
	b.Grow(len(text))
	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if (r == '&' || r == sectionRune) && i+1 < len(runes) &&
			strings.ContainsRune(legacyCodes, runes[i+1]) {
			i++
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// expandGradient rewrites one <gradient:...>...</gradient> match into
// per-character hex escapes interpolated between the endpoint colors.
// Whitespace keeps the preceding color rather than spending a gradient
// step, but still counts toward the character positions.
func expandGradient(match string) string {
	parts := gradientPattern.FindStringSubmatch(match)
	start, errS := colorful.Hex("#" + parts[1])
	end, errE := colorful.Hex("#" + parts[2])
	inner := []rune(parts[3])
	if errS != nil || errE != nil || len(inner) == 0 {
		return parts[3]
	}

	r1, g1, b1 := start.RGB255()
	r2, g2, b2 := end.RGB255()

	var b strings.Builder
	for i, r := range inner {
		if unicode.IsSpace(r) {
			b.WriteRune(r)
			continue
		}
		ratio := 0.0
		if len(inner) > 1 {
			ratio = float64(i) / float64(len(inner)-1)
		}
		b.WriteString(hexEscape(fmt.Sprintf("%02x%02x%02x",
			lerp255(r1, r2, ratio),
			lerp255(g1, g2, ratio),
			lerp255(b1, b2, ratio))))
		b.WriteRune(r)
	}
	return b.String()
}

// lerp255 interpolates one channel, truncating toward zero the way the
// renderer's own gradient plugins do.
func lerp255(from, to uint8, ratio float64) uint8 {
	return uint8(int(float64(from) + ratio*float64(int(to)-int(from))))
}

// hexEscape renders a six-digit hex color as the section-escaped form
// the renderer parses: a marker pair followed by one pair per digit.
func hexEscape(hex string) string {
	var b strings.Builder
	b.Grow(14)
	b.WriteRune(sectionRune)
	b.WriteByte('x')
	for _, d := range strings.ToLower(hex) {
		b.WriteRune(sectionRune)
		b.WriteRune(d)
	}
	return b.String()
}

// translateLegacy rewrites &-prefixed codes into section-prefixed
// ones, lowercasing the code character.
func translateLegacy(text string) string {
	runes := []rune(text)
	for i := 0; i < len(runes)-1; i++ {
		if runes[i] == '&' && strings.ContainsRune(legacyCodes, runes[i+1]) {
			runes[i] = sectionRune
			runes[i+1] = unicode.ToLower(runes[i+1])
		}
	}
	return string(runes)
}
