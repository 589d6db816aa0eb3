package domain

import (
	"errors"
	"fmt"
)

// Usage-level and token-level errors.
var (
	ErrInvalidFont        = errors.New("invalid font name")
	ErrNoSetting          = errors.New("nothing to apply: pass --font and/or --[no-]ligatures")
	ErrNoApps             = errors.New("no applications given: pass --apps or set preferences.default_apps")
	ErrUnknownApplication = errors.New("unknown app")
	ErrInvalidUTF8Token   = errors.New("invalid UTF-8 string")
)

// AdapterErrorKind classifies why an adapter could not apply a setting.
type AdapterErrorKind string

const (
	KindNotInstalled     AdapterErrorKind = "not installed"
	KindStoreUnreadable  AdapterErrorKind = "store unreadable"
	KindStoreWriteFailed AdapterErrorKind = "store write failed"
	KindUnsupported      AdapterErrorKind = "unsupported"
)

// AdapterError is returned by adapters. It names the app and the cause so
// one line is enough for the user.
type AdapterError struct {
	App  App
	Kind AdapterErrorKind
	Err  error
}

// NewAdapterError wraps err for app.
func NewAdapterError(app App, kind AdapterErrorKind, err error) *AdapterError {
	return &AdapterError{App: app, Kind: kind, Err: err}
}

func (e *AdapterError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.App, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.App, e.Kind, e.Err)
}

func (e *AdapterError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsAdapterKind reports whether err is an AdapterError of the given kind.
func IsAdapterKind(err error, kind AdapterErrorKind) bool {
	var ae *AdapterError
	if errors.As(err, &ae) {
		return ae.Kind == kind
	}
	return false
}
