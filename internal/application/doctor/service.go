package doctor

import (
	"context"
	"fmt"

	appconfig "github.com/doeshing/fontset/internal/application/config"
	"github.com/doeshing/fontset/internal/domain"
	"github.com/doeshing/fontset/internal/ports"
)

// Service runs environment diagnostics.
type Service struct {
	ConfigProvider ports.ConfigProvider
	Resolver       ports.AdapterResolver
	HistoryStore   ports.HistoryRepository
	// Apps defaults to domain.Apps().
	Apps func() []domain.AppSpec
	// ParseApp defaults to domain.ParseApp.
	ParseApp func(string) (domain.App, bool)
}

// Run executes checks and returns a report. The error is only set when the
// configuration cannot be loaded, since nothing else can be checked then.
func (s *Service) Run(ctx context.Context) (domain.HealthReport, error) {
	var checks []domain.HealthCheck

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		checks = append(checks, fail("Config file", fmt.Sprintf("load failed: %v", err)))
		return domain.HealthReport{Checks: checks}, err
	}
	if err := appconfig.Validate(cfg, s.parseApp()); err != nil {
		checks = append(checks, warn("Config file", err.Error()))
	} else {
		checks = append(checks, ok("Config file", fmt.Sprintf("format version %s", cfg.ConfigFormatVersion)))
	}

	for _, spec := range s.apps() {
		checks = append(checks, s.appCheck(ctx, spec))
	}

	switch {
	case s.HistoryStore == nil:
		checks = append(checks, warn("History", "disabled"))
	default:
		if _, err := s.HistoryStore.Records(1); err != nil {
			checks = append(checks, warn("History", err.Error()))
		} else {
			checks = append(checks, ok("History", s.HistoryStore.Path()))
		}
	}

	return domain.HealthReport{Checks: checks}, nil
}

func (s *Service) appCheck(ctx context.Context, spec domain.AppSpec) domain.HealthCheck {
	adapter, err := s.Resolver.AdapterFor(spec.App)
	if err != nil {
		return fail(spec.Token, err.Error())
	}
	detector, isDetector := adapter.(ports.Detector)
	if !isDetector {
		return ok(spec.Token, "adapter registered")
	}
	check := detector.Detect(ctx)
	if check.Name == "" {
		check.Name = spec.Token
	}
	return check
}

func (s *Service) apps() []domain.AppSpec {
	if s.Apps != nil {
		return s.Apps()
	}
	return domain.Apps()
}

func (s *Service) parseApp() func(string) (domain.App, bool) {
	if s.ParseApp != nil {
		return s.ParseApp
	}
	return domain.ParseApp
}

func ok(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Details: details}
}

func warn(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthWarn, Details: details}
}

func fail(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthError, Details: details}
}
