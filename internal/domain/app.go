package domain

import (
	"runtime"
	"slices"
)

// App is a supported application. Values order by declaration, which gives
// sorting and deduplication a stable result.
type App int

const (
	// AppAlacritty is the Alacritty terminal.
	AppAlacritty App = iota + 1
	// AppAtom is the Atom editor.
	AppAtom
	// AppSublimeText is the Sublime Text editor.
	AppSublimeText
	// AppTerminal is the platform's native terminal: macOS Terminal,
	// Windows Terminal, or a dconf-backed terminal (Tilix, GNOME Terminal)
	// on Linux.
	AppTerminal
	// AppVSCode is Visual Studio Code.
	AppVSCode
	// AppXcode is macOS Xcode.
	AppXcode
)

// AppSpec binds an App to its command-line token and the platforms it
// exists on. A nil Platforms slice means every platform.
type AppSpec struct {
	App       App
	Token     string
	Platforms []string
}

var appSpecs = []AppSpec{
	{App: AppAlacritty, Token: "alacritty"},
	{App: AppAtom, Token: "atom"},
	{App: AppSublimeText, Token: "sublimetext"},
	{App: AppTerminal, Token: "terminal"},
	{App: AppVSCode, Token: "vscode"},
	{App: AppXcode, Token: "xcode", Platforms: []string{"darwin"}},
}

// String returns the app's canonical token.
func (a App) String() string {
	for _, spec := range appSpecs {
		if spec.App == a {
			return spec.Token
		}
	}
	return "unknown"
}

func (s AppSpec) availableOn(goos string) bool {
	return s.Platforms == nil || slices.Contains(s.Platforms, goos)
}

// Apps lists the apps available on the running platform in declaration order.
func Apps() []AppSpec {
	return AppsFor(runtime.GOOS)
}

// AppsFor lists the apps available on goos in declaration order.
func AppsFor(goos string) []AppSpec {
	specs := make([]AppSpec, 0, len(appSpecs))
	for _, spec := range appSpecs {
		if spec.availableOn(goos) {
			specs = append(specs, spec)
		}
	}
	return specs
}

// ParseApp matches token exactly against the apps available on the running
// platform.
func ParseApp(token string) (App, bool) {
	return ParseAppFor(runtime.GOOS, token)
}

// ParseAppFor matches token exactly against the apps available on goos.
func ParseAppFor(goos, token string) (App, bool) {
	for _, spec := range appSpecs {
		if spec.Token == token && spec.availableOn(goos) {
			return spec.App, true
		}
	}
	return 0, false
}

// DedupeApps returns the distinct apps in declaration order.
func DedupeApps(apps []App) []App {
	out := slices.Clone(apps)
	slices.Sort(out)
	return slices.Compact(out)
}
