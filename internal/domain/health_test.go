package domain_test

import (
	"testing"

	"github.com/doeshing/fontset/internal/domain"
)

func TestHealthReportHasErrors(t *testing.T) {
	tests := []struct {
		name   string
		checks []domain.HealthCheck
		want   bool
	}{
		{name: "empty"},
		{name: "warnings only", checks: []domain.HealthCheck{{Status: domain.HealthOK}, {Status: domain.HealthWarn}}},
		{name: "one error", checks: []domain.HealthCheck{{Status: domain.HealthWarn}, {Status: domain.HealthError}}, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := (domain.HealthReport{Checks: tt.checks}).HasErrors(); got != tt.want {
				t.Fatalf("HasErrors() = %v, want %v", got, tt.want)
			}
		})
	}
}
