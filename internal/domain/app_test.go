package domain_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/doeshing/fontset/internal/domain"
)

func TestParseAppRoundTripsTokens(t *testing.T) {
	for _, goos := range []string{"linux", "darwin", "windows"} {
		for _, spec := range domain.AppsFor(goos) {
			app, ok := domain.ParseAppFor(goos, spec.Token)
			if !ok || app != spec.App {
				t.Fatalf("%s: ParseAppFor(%q) = %v, %v", goos, spec.Token, app, ok)
			}
			if app.String() != spec.Token {
				t.Fatalf("%s: String() = %q, want %q", goos, app.String(), spec.Token)
			}
		}
	}
}

func TestParseAppRejectsOtherStrings(t *testing.T) {
	for _, token := range []string{"", "Terminal", "vs-code", "notepad", " vscode", "vscode "} {
		if app, ok := domain.ParseAppFor("linux", token); ok {
			t.Fatalf("ParseAppFor(%q) = %v, want no app", token, app)
		}
	}
}

func TestXcodeOnlyOnDarwin(t *testing.T) {
	if _, ok := domain.ParseAppFor("darwin", "xcode"); !ok {
		t.Fatal("xcode should parse on darwin")
	}
	for _, goos := range []string{"linux", "windows"} {
		if _, ok := domain.ParseAppFor(goos, "xcode"); ok {
			t.Fatalf("xcode should not parse on %s", goos)
		}
	}
}

func TestAppsForKeepsDeclarationOrder(t *testing.T) {
	var tokens []string
	for _, spec := range domain.AppsFor("darwin") {
		tokens = append(tokens, spec.Token)
	}
	want := []string{"alacritty", "atom", "sublimetext", "terminal", "vscode", "xcode"}
	if diff := cmp.Diff(want, tokens); diff != "" {
		t.Fatalf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestDedupeApps(t *testing.T) {
	in := []domain.App{domain.AppTerminal, domain.AppTerminal, domain.AppAlacritty}
	got := domain.DedupeApps(in)
	want := []domain.App{domain.AppAlacritty, domain.AppTerminal}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("DedupeApps mismatch (-want +got):\n%s", diff)
	}
	if len(in) != 3 {
		t.Fatal("input slice modified")
	}
}
