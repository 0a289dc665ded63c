// Package sanitize normalises user-supplied names for use in object storage
// keys.
package sanitize

import (
	"path"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const maxFilenameLength = 64

// Hostname lowercases h and replaces every character outside [a-z0-9-]
// (dots included) with a dash.
func Hostname(h string) string {
	return strings.Map(func(r rune) rune {
		if isAlnum(r) || r == '-' {
			return r
		}
		return '-'
	}, strings.ToLower(strings.TrimSpace(h)))
}

// Filename folds accents, lowercases and keeps only [a-z0-9_-]. The
// extension must be split off by the caller. An empty result becomes "file".
func Filename(name string) string {
	folded, _, err := transform.String(transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), name)
	if err != nil {
		folded = name
	}
	out := strings.Map(func(r rune) rune {
		if isAlnum(r) || r == '-' || r == '_' {
			return r
		}
		return '-'
	}, strings.ToLower(folded))
	for strings.Contains(out, "--") {
		out = strings.ReplaceAll(out, "--", "-")
	}
	out = strings.Trim(out, "-_")
	if len(out) > maxFilenameLength {
		out = strings.TrimRight(out[:maxFilenameLength], "-_")
	}
	if out == "" {
		return "file"
	}
	return out
}

// SplitExt returns the base name and the lowercased alphanumeric extension
// without the dot. Directory components of name are dropped.
func SplitExt(name string) (string, string) {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	ext := path.Ext(name)
	base := strings.TrimSuffix(name, ext)
	ext = strings.Map(func(r rune) rune {
		if isAlnum(r) {
			return r
		}
		return -1
	}, strings.ToLower(ext))
	return base, ext
}

func isAlnum(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= '0' && r <= '9'
}
