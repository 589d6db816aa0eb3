package doctor

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/doeshing/fontset/internal/domain"
	"github.com/doeshing/fontset/internal/ports"
)

type stubConfig struct {
	cfg domain.Config
	err error
}

func (s stubConfig) Load(context.Context) (domain.Config, error) { return s.cfg, s.err }

type plainAdapter struct{}

func (plainAdapter) Apply(context.Context, domain.Setting) error { return nil }

type detectingAdapter struct {
	plainAdapter
	check domain.HealthCheck
}

func (d detectingAdapter) Detect(context.Context) domain.HealthCheck { return d.check }

type stubResolver map[domain.App]ports.Adapter

func (r stubResolver) AdapterFor(app domain.App) (ports.Adapter, error) {
	a, ok := r[app]
	if !ok {
		return nil, errors.New("no adapter")
	}
	return a, nil
}

type stubHistory struct{ err error }

func (stubHistory) Save(domain.HistoryRecord) error                 { return nil }
func (h stubHistory) Records(int) ([]domain.HistoryRecord, error) { return nil, h.err }
func (stubHistory) Clear() error                                   { return nil }
func (stubHistory) Path() string                                   { return "/tmp/history.db" }

func linuxApps() []domain.AppSpec { return domain.AppsFor("linux")[:3] }

func TestRunReportsEveryApp(t *testing.T) {
	svc := Service{
		ConfigProvider: stubConfig{cfg: domain.Config{ConfigFormatVersion: "1"}},
		Resolver: stubResolver{
			domain.AppAlacritty: detectingAdapter{check: domain.HealthCheck{Status: domain.HealthWarn, Details: "not found"}},
			domain.AppAtom:      plainAdapter{},
		},
		HistoryStore: stubHistory{},
		Apps:         linuxApps,
		ParseApp:     func(token string) (domain.App, bool) { return domain.ParseAppFor("linux", token) },
	}

	report, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	want := []domain.HealthCheck{
		{Name: "Config file", Status: domain.HealthOK, Details: "format version 1"},
		{Name: "alacritty", Status: domain.HealthWarn, Details: "not found"},
		{Name: "atom", Status: domain.HealthOK, Details: "adapter registered"},
		{Name: "sublimetext", Status: domain.HealthError, Details: "no adapter"},
		{Name: "History", Status: domain.HealthOK, Details: "/tmp/history.db"},
	}
	if diff := cmp.Diff(want, report.Checks); diff != "" {
		t.Fatalf("checks mismatch (-want +got):\n%s", diff)
	}
}

func TestRunStopsOnConfigError(t *testing.T) {
	svc := Service{ConfigProvider: stubConfig{err: errors.New("boom")}}
	report, err := svc.Run(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if len(report.Checks) != 1 || report.Checks[0].Status != domain.HealthError {
		t.Fatalf("checks = %+v", report.Checks)
	}
}

func TestRunWarnsOnInvalidConfigAndMissingHistory(t *testing.T) {
	svc := Service{
		ConfigProvider: stubConfig{cfg: domain.Config{Terminal: domain.TerminalSettings{Flavor: "konsole"}}},
		Resolver:       stubResolver{},
		Apps:           func() []domain.AppSpec { return nil },
	}
	report, err := svc.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(report.Checks) != 2 {
		t.Fatalf("checks = %+v", report.Checks)
	}
	if report.Checks[0].Status != domain.HealthWarn || report.Checks[1].Status != domain.HealthWarn {
		t.Fatalf("checks = %+v", report.Checks)
	}
}
