package wireguard

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolverPrefersFirstCandidate(t *testing.T) {
	dir := t.TempDir()
	first := writeFakeTool(t, dir, "wg-first")
	second := writeFakeTool(t, dir, "wg-second")

	r := NewResolver(first, second)
	path, ok := r.Path()
	if !ok {
		t.Fatal("expected resolution to succeed")
	}
	if path != first {
		t.Errorf("Path() = %q, want %q", path, first)
	}
}

func TestResolverSkipsMissingAndNonExecutable(t *testing.T) {
	dir := t.TempDir()
	plain := filepath.Join(dir, "plain")
	if err := os.WriteFile(plain, []byte("data"), 0o644); err != nil {
		t.Fatal(err)
	}
	usable := writeFakeTool(t, dir, "usable")

	r := NewResolver(filepath.Join(dir, "missing"), plain, usable)
	path, ok := r.Path()
	if !ok || path != usable {
		t.Errorf("Path() = %q, %v, want %q, true", path, ok, usable)
	}
}

func TestResolverNotFound(t *testing.T) {
	r := NewResolver("/nonexistent/tool", "definitely-not-a-real-tool-4f9a")
	if path, ok := r.Path(); ok {
		t.Errorf("Path() = %q, expected no resolution", path)
	}
}

func TestResolverCachesResult(t *testing.T) {
	dir := t.TempDir()
	tool := writeFakeTool(t, dir, "tool")

	r := NewResolver(tool)
	first, _ := r.Path()

	// Removing the file after the first lookup must not change the answer.
	if err := os.Remove(tool); err != nil {
		t.Fatal(err)
	}
	second, ok := r.Path()
	if !ok || second != first {
		t.Errorf("cached Path() = %q, %v, want %q, true", second, ok, first)
	}
}

func TestShellResolverVersionGate(t *testing.T) {
	dir := t.TempDir()
	oldBash := writeFakeTool(t, dir, "bash3")
	newBash := writeFakeTool(t, dir, "bash5")

	runner := newFakeRunner()
	runner.on(oldBash+" --version", respOut("GNU bash, version 3.2.57(1)-release (arm64-apple-darwin23)\n"))
	runner.on(newBash+" --version", respOut("GNU bash, version 5.2.26(1)-release (arm64-apple-darwin23)\n"))

	r := NewShellResolver(runner, 4, oldBash, newBash)
	path, ok := r.Path()
	if !ok || path != newBash {
		t.Errorf("Path() = %q, %v, want %q, true", path, ok, newBash)
	}
}

func TestShellResolverAllTooOld(t *testing.T) {
	dir := t.TempDir()
	bash := writeFakeTool(t, dir, "bash")

	runner := newFakeRunner()
	runner.on(bash+" --version", respOut("GNU bash, version 3.2.57(1)-release (x86_64-apple-darwin22)\n"))

	r := NewShellResolver(runner, 4, bash)
	if path, ok := r.Path(); ok {
		t.Errorf("Path() = %q, expected rejection of bash 3", path)
	}
}

func TestShellResolverProbeFailure(t *testing.T) {
	dir := t.TempDir()
	bash := writeFakeTool(t, dir, "bash")

	runner := newFakeRunner()
	runner.on(bash+" --version", respLaunchError("exec format error"))

	r := NewShellResolver(runner, 4, bash)
	if _, ok := r.Path(); ok {
		t.Error("expected resolution to fail when the version probe cannot run")
	}
}

func TestParseMajorVersion(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   int
		wantOK bool
	}{
		{"bash 3", "GNU bash, version 3.2.57(1)-release", 3, true},
		{"bash 5", "GNU bash, version 5.2.26(1)-release", 5, true},
		{"double digit", "GNU bash, version 12.0.0(1)-release", 12, true},
		{"no version token", "some shell without numbers", 0, false},
		{"version on later line only", "banner\nGNU bash, version 4.0.0(1)-release", 0, false},
		{"empty", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseMajorVersion(tt.output)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("parseMajorVersion(%q) = %d, %v, want %d, %v", tt.output, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
