// Package jsonfile applies font settings to apps that keep their preferences
// in a JSON settings file: VS Code, Sublime Text, Atom and Windows Terminal.
//
// Keys are edited in place with sjson, so every other setting in the file
// survives. The result is re-indented in the file's own style and swapped in
// with a rename.
package jsonfile

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/doeshing/fontset/internal/domain"
	"github.com/doeshing/fontset/internal/pkg/filesystem"
	"github.com/doeshing/fontset/internal/ports"
)

// LigaturesEditor rewrites the document for a ligatures flag.
type LigaturesEditor func(doc []byte, flag domain.LigaturesFlag) ([]byte, error)

// Document describes one settings file and where a Setting lands in it.
type Document struct {
	// Path is the settings file. Its directory must exist for the app to
	// count as installed.
	Path string
	// FontKey is the sjson path of the font family.
	FontKey string
	// Ligatures is nil when the app has no ligatures setting.
	Ligatures LigaturesEditor
	// Precheck, when set, runs before the file is read.
	Precheck func(Document) error
}

// Adapter edits a Document for one app.
type Adapter struct {
	app    domain.App
	doc    Document
	logger ports.Logger
}

// New builds a settings-file adapter.
func New(app domain.App, doc Document, logger ports.Logger) *Adapter {
	return &Adapter{app: app, doc: doc, logger: logger}
}

// Apply implements ports.Adapter.
func (a *Adapter) Apply(_ context.Context, setting domain.Setting) error {
	if err := a.preflight(); err != nil {
		return domain.NewAdapterError(a.app, domain.KindNotInstalled, err)
	}
	if a.doc.Precheck != nil {
		if err := a.doc.Precheck(a.doc); err != nil {
			return domain.NewAdapterError(a.app, domain.KindUnsupported, err)
		}
	}

	original, exists, err := a.read()
	if err != nil {
		return domain.NewAdapterError(a.app, domain.KindStoreUnreadable, err)
	}

	updated, err := a.edit(original, setting)
	if err != nil {
		return domain.NewAdapterError(a.app, domain.KindStoreUnreadable, fmt.Errorf("edit %s: %w", a.doc.Path, err))
	}
	if exists && bytes.Equal(updated, original) {
		a.logger.Debug("settings already up to date", map[string]interface{}{"app": a.app.String(), "path": a.doc.Path})
		return nil
	}

	if err := filesystem.WriteFileAtomic(a.doc.Path, updated, domain.SettingsFilePermissions); err != nil {
		return domain.NewAdapterError(a.app, domain.KindStoreWriteFailed, err)
	}
	return nil
}

// Detect implements ports.Detector.
func (a *Adapter) Detect(context.Context) domain.HealthCheck {
	if err := a.preflight(); err != nil {
		return domain.HealthCheck{Name: a.app.String(), Status: domain.HealthWarn, Details: err.Error()}
	}
	return domain.HealthCheck{Name: a.app.String(), Status: domain.HealthOK, Details: a.doc.Path}
}

func (a *Adapter) preflight() error {
	dir := filepath.Dir(a.doc.Path)
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("settings directory %s does not exist", dir)
	}
	return nil
}

// read returns the document, or "{}" when the file is absent or blank.
func (a *Adapter) read() ([]byte, bool, error) {
	data, err := os.ReadFile(a.doc.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return []byte("{}"), false, nil
	}
	if err != nil {
		return nil, false, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return []byte("{}"), true, nil
	}
	if !gjson.ValidBytes(data) {
		return nil, true, fmt.Errorf("%s is not plain JSON (comments and trailing commas are not supported)", a.doc.Path)
	}
	return data, true, nil
}

func (a *Adapter) edit(doc []byte, setting domain.Setting) ([]byte, error) {
	updated := doc
	if font, ok := setting.Font(); ok {
		if gjson.GetBytes(updated, a.doc.FontKey).String() != font.String() {
			var err error
			if updated, err = sjson.SetBytes(updated, a.doc.FontKey, font.String()); err != nil {
				return nil, err
			}
		}
	}
	if flag, ok := setting.Ligatures(); ok {
		if a.doc.Ligatures == nil {
			a.logger.Debug("ligatures not supported", map[string]interface{}{"app": a.app.String()})
		} else {
			var err error
			if updated, err = a.doc.Ligatures(updated, flag); err != nil {
				return nil, err
			}
		}
	}
	if bytes.Equal(updated, doc) {
		return doc, nil
	}
	return reindent(updated, indentOf(doc)), nil
}

// indentOf guesses the indentation unit of a pretty-printed document.
func indentOf(doc []byte) string {
	for _, line := range bytes.Split(doc, []byte("\n"))[1:] {
		trimmed := bytes.TrimLeft(line, " \t")
		if len(trimmed) == 0 || len(trimmed) == len(line) {
			continue
		}
		return string(line[:len(line)-len(trimmed)])
	}
	return "    "
}

func reindent(doc []byte, indent string) []byte {
	return pretty.PrettyOptions(doc, &pretty.Options{Width: 80, Prefix: "", Indent: indent, SortKeys: false})
}

var (
	_ ports.Adapter  = (*Adapter)(nil)
	_ ports.Detector = (*Adapter)(nil)
)
