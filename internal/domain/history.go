package domain

import "time"

// HistoryRecord captures one fontset invocation.
type HistoryRecord struct {
	ID         string    `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	Font       string    `json:"font,omitempty"`
	Ligatures  string    `json:"ligatures,omitempty"`
	Apps       []string  `json:"apps"`
	FailedApps []string  `json:"failed_apps,omitempty"`
	Success    bool      `json:"success"`
	DurationMS int64     `json:"duration_ms"`
}
