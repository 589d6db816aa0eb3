// Package apply fans a Setting out to the adapters of the requested apps.
package apply

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/doeshing/fontset/internal/domain"
	"github.com/doeshing/fontset/internal/ports"
)

// Request is one invocation: what to set and the raw app tokens.
type Request struct {
	Setting domain.Setting
	Tokens  []string
}

// Service dispatches settings to adapters.
type Service struct {
	Resolver ports.AdapterResolver
	Reporter ports.Reporter
	Logger   ports.Logger
	// HistoryStore is optional; nil disables the apply log.
	HistoryStore ports.HistoryRepository
	// ParseApp defaults to domain.ParseApp.
	ParseApp func(string) (domain.App, bool)
}

// Run applies req.Setting to every distinct app named in req.Tokens.
// Unknown tokens and adapter errors are reported and mark the outcome as
// failed; they never stop the other apps.
func (s *Service) Run(ctx context.Context, req Request) domain.RunOutcome {
	start := time.Now()
	var failed atomic.Bool

	apps, rejected := s.parseTokens(req.Tokens)
	if len(rejected) > 0 {
		failed.Store(true)
	}
	apps = domain.DedupeApps(apps)

	results := make([]domain.AppResult, len(apps))
	apply := func(i int) {
		app := apps[i]
		err := s.applyOne(ctx, app, req.Setting)
		results[i] = domain.AppResult{App: app, Err: err}
		if err != nil {
			failed.Store(true)
			s.Reporter.Failed(app.String(), err)
			return
		}
		s.Reporter.Applied(app)
	}

	switch len(apps) {
	case 0:
	case 1:
		apply(0)
	default:
		// Plain Group: one app failing must not cancel the others.
		var g errgroup.Group
		for i := range apps {
			i := i
			g.Go(func() error {
				apply(i)
				return nil
			})
		}
		_ = g.Wait()
	}

	outcome := domain.RunOutcome{Results: results, Rejected: rejected, Failed: failed.Load()}
	s.record(req.Setting, outcome, time.Since(start))
	return outcome
}

func (s *Service) parseTokens(tokens []string) ([]domain.App, []string) {
	parse := s.ParseApp
	if parse == nil {
		parse = domain.ParseApp
	}
	var apps []domain.App
	var rejected []string
	for _, token := range tokens {
		if !utf8.ValidString(token) {
			rejected = append(rejected, token)
			s.Reporter.Failed(fmt.Sprintf("%q", token), domain.ErrInvalidUTF8Token)
			continue
		}
		app, ok := parse(token)
		if !ok {
			rejected = append(rejected, token)
			s.Reporter.Failed(token, fmt.Errorf("%w %q", domain.ErrUnknownApplication, token))
			continue
		}
		apps = append(apps, app)
	}
	return apps, rejected
}

func (s *Service) applyOne(ctx context.Context, app domain.App, setting domain.Setting) error {
	adapter, err := s.Resolver.AdapterFor(app)
	if err != nil {
		return err
	}
	s.Logger.Debug("applying", map[string]interface{}{"app": app.String()})
	return adapter.Apply(ctx, setting)
}

func (s *Service) record(setting domain.Setting, outcome domain.RunOutcome, took time.Duration) {
	if s.HistoryStore == nil {
		return
	}
	rec := domain.HistoryRecord{
		ID:         uuid.NewString(),
		Timestamp:  time.Now(),
		Success:    !outcome.Failed,
		DurationMS: took.Milliseconds(),
	}
	if font, ok := setting.Font(); ok {
		rec.Font = font.String()
	}
	if flag, ok := setting.Ligatures(); ok {
		rec.Ligatures = flag.String()
	}
	for _, r := range outcome.Results {
		rec.Apps = append(rec.Apps, r.App.String())
	}
	for _, app := range outcome.FailedApps() {
		rec.FailedApps = append(rec.FailedApps, app.String())
	}
	rec.FailedApps = append(rec.FailedApps, outcome.Rejected...)

	if err := s.HistoryStore.Save(rec); err != nil {
		s.Logger.Warn("could not save history", map[string]interface{}{"error": err.Error(), "path": s.HistoryStore.Path()})
	}
}
