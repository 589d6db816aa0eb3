package domain_test

import (
	"errors"
	"testing"

	"github.com/doeshing/fontset/internal/domain"
)

func TestParseFont(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{name: "plain", raw: "Menlo"},
		{name: "spaces", raw: "Fira Code Retina"},
		{name: "punctuation", raw: "Source-Code_Pro (v2.0)!"},
		{name: "non ascii letters", raw: "Sarasa Gothic 等距更纱黑体"},
		{name: "digits", raw: "Iosevka Term 15"},
		{name: "empty", raw: ""},
		{name: "devanagari vowel signs", raw: "हिंदी"},
		{name: "double quote", raw: `Fira "Code"`, wantErr: true},
		{name: "single quote", raw: "Fira 'Code'", wantErr: true},
		{name: "tab", raw: "Fira\tCode", wantErr: true},
		{name: "newline", raw: "Fira\nCode", wantErr: true},
		{name: "carriage return", raw: "Fira\rCode", wantErr: true},
		{name: "nul", raw: "Fira\x00Code", wantErr: true},
		{name: "invalid utf8", raw: "Fira\xffCode", wantErr: true},
		{name: "emoji", raw: "Fira 🙂", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			font, err := domain.ParseFont(tt.raw)
			if tt.wantErr {
				if !errors.Is(err, domain.ErrInvalidFont) {
					t.Fatalf("expected ErrInvalidFont, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if font.String() != tt.raw {
				t.Fatalf("String() = %q, want %q", font.String(), tt.raw)
			}
		})
	}
}
