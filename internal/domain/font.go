package domain

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Font is a validated font name.
//
// The name must be UTF-8 and free of characters that would break the quoting
// of the formats adapters write into (dconf keyfiles, JSON, TOML, YAML):
// newlines, tabs and quotes are rejected. The rule is deliberately strict and
// may be relaxed as more stores are supported.
type Font struct {
	name string
}

// ParseFont validates raw user input as a font name. The empty string holds
// no offending rune and is accepted.
func ParseFont(raw string) (Font, error) {
	if !utf8.ValidString(raw) {
		return Font{}, fmt.Errorf("%w: %q is not valid UTF-8", ErrInvalidFont, raw)
	}
	for _, r := range raw {
		if !isValidFontRune(r) {
			return Font{}, fmt.Errorf("%w: %q contains %q", ErrInvalidFont, raw, r)
		}
	}
	return Font{name: raw}, nil
}

func isValidFontRune(r rune) bool {
	switch r {
	case '\n', '\r', '\t', '"', '\'':
		return false
	case ' ':
		return true
	}
	isASCIIGraphic := r > ' ' && r < unicode.MaxASCII
	// Alphabetic includes Other_Alphabetic, e.g. Devanagari vowel signs.
	isAlphabetic := unicode.IsLetter(r) || unicode.Is(unicode.Other_Alphabetic, r)
	return isASCIIGraphic || isAlphabetic || unicode.IsNumber(r)
}

// String returns the font name.
func (f Font) String() string {
	return f.name
}
