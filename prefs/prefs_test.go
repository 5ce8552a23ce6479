package prefs

import (
	"errors"
	"testing"

	"wg-menubar/common"
)

func TestFileFallbackRoundtrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	store := &Store{useFile: true}

	if name, ok := store.PreferredTunnel(); ok {
		t.Fatalf("PreferredTunnel() on empty store = %q, true", name)
	}

	if err := store.SetPreferredTunnel("home"); err != nil {
		t.Fatalf("SetPreferredTunnel() error: %v", err)
	}

	name, ok := store.PreferredTunnel()
	if !ok || name != "home" {
		t.Errorf("PreferredTunnel() = %q, %v, want %q, true", name, ok, "home")
	}
}

func TestSetPreferredTunnelTrimsName(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	store := &Store{useFile: true}

	if err := store.SetPreferredTunnel("  office  "); err != nil {
		t.Fatalf("SetPreferredTunnel() error: %v", err)
	}
	if name, _ := store.PreferredTunnel(); name != "office" {
		t.Errorf("PreferredTunnel() = %q, want %q", name, "office")
	}
}

func TestSetPreferredTunnelRejectsEmpty(t *testing.T) {
	store := &Store{useFile: true}

	err := store.SetPreferredTunnel("   ")
	if !errors.Is(err, common.ErrPreferenceNotFound) {
		t.Errorf("SetPreferredTunnel(blank) error = %v, want ErrPreferenceNotFound", err)
	}
}
