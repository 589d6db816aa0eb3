package dconf

import (
	"fmt"
	"regexp"
	"strings"
)

// snapshot is a parsed `dconf dump`: section name to key to raw GVariant text.
// Parsing never fails; lines that are neither headers nor assignments are
// skipped, as are assignments before the first header.
type snapshot map[string]map[string]string

func parseSnapshot(text string) snapshot {
	snap := snapshot{}
	var current map[string]string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			name := line[1 : len(line)-1]
			if snap[name] == nil {
				snap[name] = map[string]string{}
			}
			current = snap[name]
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok || current == nil {
			continue
		}
		current[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return snap
}

func (s snapshot) hasSection(name string) bool {
	_, ok := s[name]
	return ok
}

// stringValue returns the unquoted GVariant string at section/key.
func (s snapshot) stringValue(section, key string) (string, bool) {
	raw, ok := s[section][key]
	if !ok {
		return "", false
	}
	return unquote(raw)
}

func unquote(raw string) (string, bool) {
	if len(raw) < 2 || raw[0] != '\'' || raw[len(raw)-1] != '\'' {
		return "", false
	}
	return raw[1 : len(raw)-1], true
}

type profileSource int

const (
	profileDeclared profileSource = iota
	profileFirstRun
	profileSynthetic
)

func (p profileSource) String() string {
	switch p {
	case profileDeclared:
		return "declared default"
	case profileFirstRun:
		return "first-run profile"
	default:
		return "new profile"
	}
}

type profile struct {
	ID     string
	Source profileSource
}

// resolveProfile picks the profile to update: the declared default, else
// the first-run profile if present, else a new profile with the first-run id.
func (s Schema) resolveProfile(snap snapshot) profile {
	if id, ok := snap.stringValue(s.DefaultSection, "default"); ok && id != "" {
		return profile{ID: id, Source: profileDeclared}
	}
	if snap.hasSection(s.profileSection(s.FirstRunProfileID)) {
		return profile{ID: s.FirstRunProfileID, Source: profileFirstRun}
	}
	return profile{ID: s.FirstRunProfileID, Source: profileSynthetic}
}

var fontPattern = regexp.MustCompile(`^(.*?)\s*(\d+(?:\.\d+)?)$`)

// currentFont returns the family and size declared for p, or the schema's
// built-in font when there is no usable declaration.
func (s Schema) currentFont(snap snapshot, p profile) (family, size string) {
	if p.Source == profileSynthetic {
		return s.DefaultFamily, s.DefaultSize
	}
	value, ok := snap.stringValue(s.profileSection(p.ID), "font")
	if !ok {
		return s.DefaultFamily, s.DefaultSize
	}
	m := fontPattern.FindStringSubmatch(value)
	if m == nil || strings.TrimSpace(m[1]) == "" {
		return s.DefaultFamily, s.DefaultSize
	}
	return strings.TrimSpace(m[1]), m[2]
}

// render produces the keyfile fed to `dconf load`. Only the profile's own
// keys appear, so load leaves every other key untouched.
func (s Schema) render(p profile, family, size string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s]\n", s.profileSection(p.ID))
	if p.Source == profileSynthetic {
		fmt.Fprintf(&b, "visible-name='%s'\n", s.VisibleName)
	}
	fmt.Fprintf(&b, "font='%s %s'\n", family, size)
	b.WriteString("use-system-font=false")
	return b.String()
}
