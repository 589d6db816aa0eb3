package app

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	cfgPath := filepath.Join(home, ".fontset", "config.yaml")
	t.Setenv("FONTSET_CONFIG", cfgPath)
	return cfgPath
}

func TestBuildContainerWiresServices(t *testing.T) {
	isolate(t)
	c, err := BuildContainer(context.Background(), Options{})
	if err != nil {
		t.Fatalf("BuildContainer error: %v", err)
	}
	if c.ApplyService == nil || c.DoctorService == nil || c.HistoryStore == nil || c.Resolver == nil {
		t.Fatalf("container not fully wired: %+v", c)
	}
	if c.ApplyService.HistoryStore == nil {
		t.Fatal("history should be enabled by default")
	}
}

func TestBuildContainerHistoryDisabled(t *testing.T) {
	cfgPath := isolate(t)
	if err := os.MkdirAll(filepath.Dir(cfgPath), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(cfgPath, []byte("history:\n  enabled: false\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	c, err := BuildContainer(context.Background(), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if c.ApplyService.HistoryStore != nil {
		t.Fatal("apply service should not record history")
	}
}

func TestBuildContainerRejectsUnknownFlavor(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("terminal flavors only apply on linux")
	}
	cfgPath := isolate(t)
	if err := os.MkdirAll(filepath.Dir(cfgPath), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(cfgPath, []byte("terminal:\n  flavor: konsole\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := BuildContainer(context.Background(), Options{}); err == nil {
		t.Fatal("expected error for unknown terminal flavor")
	}
}
