package ui

import (
	"bytes"
	"errors"
	"image/png"
	"strings"
	"testing"

	"wg-menubar/wireguard"
)

type stubRunner struct {
	lastArgs []string
	result   *wireguard.Result
	err      error
}

func (s *stubRunner) Run(name string, args ...string) (*wireguard.Result, error) {
	s.lastArgs = append([]string{name}, args...)
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func TestNotifyBuildsOsascriptCommand(t *testing.T) {
	runner := &stubRunner{result: &wireguard.Result{}}
	n := NewNotifier(runner)

	if err := n.Notify("Tunnel up", `Connected to "home"`); err != nil {
		t.Fatalf("Notify() error: %v", err)
	}

	if len(runner.lastArgs) != 3 || runner.lastArgs[0] != "osascript" || runner.lastArgs[1] != "-e" {
		t.Fatalf("unexpected command: %v", runner.lastArgs)
	}
	script := runner.lastArgs[2]
	if !strings.Contains(script, `display notification "Connected to \"home\""`) {
		t.Errorf("message not escaped in script: %q", script)
	}
	if !strings.Contains(script, `with title "Tunnel up"`) {
		t.Errorf("title missing in script: %q", script)
	}
}

func TestNotifyReportsFailures(t *testing.T) {
	n := NewNotifier(&stubRunner{err: errors.New("osascript missing")})
	if err := n.Notify("t", "m"); err == nil {
		t.Error("Notify() should propagate a launch failure")
	}

	n = NewNotifier(&stubRunner{result: &wireguard.Result{ExitCode: 1, Stderr: "denied"}})
	if err := n.Notify("t", "m"); err == nil {
		t.Error("Notify() should report a nonzero exit")
	}
}

func TestEscapeAppleScript(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{`with "quotes"`, `with \"quotes\"`},
		{`back\slash`, `back\\slash`},
		{"", ""},
	}

	for _, tt := range tests {
		if got := escapeAppleScript(tt.in); got != tt.want {
			t.Errorf("escapeAppleScript(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIconsAreValidPNGs(t *testing.T) {
	for name, data := range map[string][]byte{
		"connected":    ConnectedIcon(),
		"disconnected": DisconnectedIcon(),
	} {
		img, err := png.Decode(bytes.NewReader(data))
		if err != nil {
			t.Fatalf("%s icon is not a valid PNG: %v", name, err)
		}
		bounds := img.Bounds()
		if bounds.Dx() != iconSize || bounds.Dy() != iconSize {
			t.Errorf("%s icon size = %dx%d, want %dx%d", name, bounds.Dx(), bounds.Dy(), iconSize, iconSize)
		}
	}

	if bytes.Equal(ConnectedIcon(), DisconnectedIcon()) {
		t.Error("connected and disconnected icons should differ")
	}
}
