package adapters

import (
	"context"
	"errors"

	"github.com/doeshing/fontset/internal/domain"
	"github.com/doeshing/fontset/internal/ports"
)

// unsupported stands in for apps fontset knows about but cannot edit yet:
// macOS Terminal and Xcode keep fonts as archived NSFont data in property
// lists, which `defaults` cannot write field by field.
type unsupported struct {
	app    domain.App
	reason string
}

func (u unsupported) Apply(context.Context, domain.Setting) error {
	return domain.NewAdapterError(u.app, domain.KindUnsupported, errors.New(u.reason))
}

func (u unsupported) Detect(context.Context) domain.HealthCheck {
	return domain.HealthCheck{Name: u.app.String(), Status: domain.HealthWarn, Details: u.reason}
}

var (
	_ ports.Adapter  = unsupported{}
	_ ports.Detector = unsupported{}
)
