package dconf

import (
	"context"
	"errors"
	"os/exec"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/doeshing/fontset/internal/domain"
	"github.com/doeshing/fontset/internal/pkg/logger"
)

type stubLocator map[string]bool

func (s stubLocator) LookPath(program string) (string, error) {
	if s[program] {
		return "/usr/bin/" + program, nil
	}
	return "", exec.ErrNotFound
}

type stubRunner struct {
	mu      sync.Mutex
	dump    string
	dumpErr error
	loadErr error
	loads   []string
	args    [][]string
}

func (s *stubRunner) Output(_ context.Context, name string, args ...string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.args = append(s.args, append([]string{name}, args...))
	if s.dumpErr != nil {
		return nil, s.dumpErr
	}
	return []byte(s.dump), nil
}

func (s *stubRunner) RunWithInput(_ context.Context, input []byte, name string, args ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.args = append(s.args, append([]string{name}, args...))
	if s.loadErr != nil {
		return s.loadErr
	}
	s.loads = append(s.loads, string(input))
	return nil
}

func installed() stubLocator {
	return stubLocator{"tilix": true, "dconf": true}
}

func mustFont(t *testing.T, name string) domain.Font {
	t.Helper()
	f, err := domain.ParseFont(name)
	if err != nil {
		t.Fatalf("ParseFont(%q) error: %v", name, err)
	}
	return f
}

func newTilix(locator stubLocator, runner *stubRunner) *Adapter {
	return New(domain.AppTerminal, TilixSchema, locator, runner, logger.NewStd(false))
}

func TestApplyUpdatesDeclaredDefaultProfile(t *testing.T) {
	runner := &stubRunner{dump: `[/]
quake-height-percent=50

[profiles]
default='abc'
list=['abc', '2b7c4080-0ddd-46c5-8f23-563fd3ba789d']

[profiles/2b7c4080-0ddd-46c5-8f23-563fd3ba789d]
font='Hack 9'

[profiles/abc]
background-color='#000000'
font='Monospace Regular 12'
visible-name='Work'
`}
	a := newTilix(installed(), runner)

	err := a.Apply(context.Background(), domain.FontSetting{Value: mustFont(t, "Fira Code")})
	if err != nil {
		t.Fatalf("Apply error: %v", err)
	}

	want := []string{"[profiles/abc]\nfont='Fira Code 12'\nuse-system-font=false"}
	if diff := cmp.Diff(want, runner.loads); diff != "" {
		t.Fatalf("loaded keyfiles mismatch (-want +got):\n%s", diff)
	}
	wantArgs := [][]string{
		{"dconf", "dump", "/com/gexperts/Tilix/"},
		{"dconf", "load", "/com/gexperts/Tilix/"},
	}
	if diff := cmp.Diff(wantArgs, runner.args); diff != "" {
		t.Fatalf("dconf invocations mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyFallsBackToFirstRunProfile(t *testing.T) {
	runner := &stubRunner{dump: `[profiles/2b7c4080-0ddd-46c5-8f23-563fd3ba789d]
font='Ubuntu Mono 15'
`}
	a := newTilix(installed(), runner)

	if err := a.Apply(context.Background(), domain.FontSetting{Value: mustFont(t, "Iosevka")}); err != nil {
		t.Fatalf("Apply error: %v", err)
	}

	want := "[profiles/2b7c4080-0ddd-46c5-8f23-563fd3ba789d]\nfont='Iosevka 15'\nuse-system-font=false"
	if len(runner.loads) != 1 || runner.loads[0] != want {
		t.Fatalf("got %q, want %q", runner.loads, want)
	}
}

func TestApplyCreatesProfileOnEmptyStore(t *testing.T) {
	runner := &stubRunner{dump: ""}
	a := newTilix(installed(), runner)

	if err := a.Apply(context.Background(), domain.LigaturesSetting{Flag: domain.LigaturesEnable}); err != nil {
		t.Fatalf("Apply error: %v", err)
	}

	want := "[profiles/2b7c4080-0ddd-46c5-8f23-563fd3ba789d]\nvisible-name='Default'\nfont='Monospace Regular 12'\nuse-system-font=false"
	if len(runner.loads) != 1 || runner.loads[0] != want {
		t.Fatalf("got %q, want %q", runner.loads, want)
	}
}

func TestApplyLigaturesOnlyKeepsCurrentFont(t *testing.T) {
	runner := &stubRunner{dump: "[profiles]\ndefault='p1'\n\n[profiles/p1]\nfont='Menlo 14'\n"}
	a := newTilix(installed(), runner)

	setting := domain.LigaturesSetting{Flag: domain.LigaturesDisable}
	if err := a.Apply(context.Background(), setting); err != nil {
		t.Fatalf("Apply error: %v", err)
	}

	want := "[profiles/p1]\nfont='Menlo 14'\nuse-system-font=false"
	if len(runner.loads) != 1 || runner.loads[0] != want {
		t.Fatalf("got %q, want %q", runner.loads, want)
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	runner := &stubRunner{dump: "[profiles]\ndefault='p1'\n\n[profiles/p1]\nfont='Menlo 14'\n"}
	a := newTilix(installed(), runner)
	setting := domain.BothSetting{Value: mustFont(t, "JetBrains Mono"), Flag: domain.LigaturesEnable}

	for i := 0; i < 2; i++ {
		if err := a.Apply(context.Background(), setting); err != nil {
			t.Fatalf("Apply #%d error: %v", i+1, err)
		}
	}
	if runner.loads[0] != runner.loads[1] {
		t.Fatalf("second apply differs:\n%q\n%q", runner.loads[0], runner.loads[1])
	}
}

func TestApplyGnomeTerminalSchema(t *testing.T) {
	runner := &stubRunner{dump: `[/]
default='b1dcc9dd-5262-4d8d-a863-c897e6d979b9'
list=['b1dcc9dd-5262-4d8d-a863-c897e6d979b9']

[:b1dcc9dd-5262-4d8d-a863-c897e6d979b9]
font='Source Code Pro 10.5'
use-system-font=true
`}
	locator := stubLocator{"gnome-terminal": true, "dconf": true}
	a := New(domain.AppTerminal, GnomeTerminalSchema, locator, runner, logger.NewStd(false))

	if err := a.Apply(context.Background(), domain.FontSetting{Value: mustFont(t, "Fira Code")}); err != nil {
		t.Fatalf("Apply error: %v", err)
	}

	want := "[:b1dcc9dd-5262-4d8d-a863-c897e6d979b9]\nfont='Fira Code 10.5'\nuse-system-font=false"
	if len(runner.loads) != 1 || runner.loads[0] != want {
		t.Fatalf("got %q, want %q", runner.loads, want)
	}
	if runner.args[1][2] != "/org/gnome/terminal/legacy/profiles:/" {
		t.Fatalf("unexpected load namespace %v", runner.args[1])
	}
}

func TestApplyErrors(t *testing.T) {
	tests := []struct {
		name     string
		locator  stubLocator
		runner   *stubRunner
		wantKind domain.AdapterErrorKind
	}{
		{
			name:     "terminal missing",
			locator:  stubLocator{"dconf": true},
			runner:   &stubRunner{},
			wantKind: domain.KindNotInstalled,
		},
		{
			name:     "dconf missing",
			locator:  stubLocator{"tilix": true},
			runner:   &stubRunner{},
			wantKind: domain.KindNotInstalled,
		},
		{
			name:     "dump fails",
			locator:  installed(),
			runner:   &stubRunner{dumpErr: errors.New("exit status 1")},
			wantKind: domain.KindStoreUnreadable,
		},
		{
			name:     "dump not utf8",
			locator:  installed(),
			runner:   &stubRunner{dump: "[profiles]\ndefault='\xff\xfe'\n"},
			wantKind: domain.KindStoreUnreadable,
		},
		{
			name:     "load fails",
			locator:  installed(),
			runner:   &stubRunner{loadErr: errors.New("open stdin of dconf: broken pipe")},
			wantKind: domain.KindStoreWriteFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTilix(tt.locator, tt.runner)
			err := a.Apply(context.Background(), domain.FontSetting{Value: mustFont(t, "Hack")})
			if !domain.IsAdapterKind(err, tt.wantKind) {
				t.Fatalf("expected %q error, got %v", tt.wantKind, err)
			}
			var ae *domain.AdapterError
			if errors.As(err, &ae) && ae.App != domain.AppTerminal {
				t.Fatalf("error names app %v, want terminal", ae.App)
			}
		})
	}
}

func TestApplyDoesNotTouchStoreWhenNotInstalled(t *testing.T) {
	runner := &stubRunner{}
	a := newTilix(stubLocator{}, runner)
	_ = a.Apply(context.Background(), domain.FontSetting{Value: mustFont(t, "Hack")})
	if len(runner.args) != 0 {
		t.Fatalf("expected no dconf invocations, got %v", runner.args)
	}
}

func TestDetect(t *testing.T) {
	ok := newTilix(installed(), &stubRunner{}).Detect(context.Background())
	if ok.Status != domain.HealthOK {
		t.Fatalf("expected ok, got %+v", ok)
	}
	missing := newTilix(stubLocator{"dconf": true}, &stubRunner{}).Detect(context.Background())
	if missing.Status != domain.HealthWarn {
		t.Fatalf("expected warn, got %+v", missing)
	}
}
