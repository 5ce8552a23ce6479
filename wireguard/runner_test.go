package wireguard

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// fakeRunner is a scripted Runner for tests. Responses are keyed by the
// full command line. A key may hold a sequence of responses consumed in
// order; the last one repeats.
type fakeRunner struct {
	responses map[string][]fakeResponse
	calls     []string
}

type fakeResponse struct {
	result *Result
	err    error
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{responses: make(map[string][]fakeResponse)}
}

func (f *fakeRunner) on(key string, responses ...fakeResponse) {
	f.responses[key] = append(f.responses[key], responses...)
}

func (f *fakeRunner) Run(name string, args ...string) (*Result, error) {
	key := strings.Join(append([]string{name}, args...), " ")
	f.calls = append(f.calls, key)

	queue, ok := f.responses[key]
	if !ok || len(queue) == 0 {
		return nil, fmt.Errorf("unscripted command: %s", key)
	}
	resp := queue[0]
	if len(queue) > 1 {
		f.responses[key] = queue[1:]
	}
	return resp.result, resp.err
}

// called reports whether any recorded call contains substr.
func (f *fakeRunner) called(substr string) bool {
	for _, call := range f.calls {
		if strings.Contains(call, substr) {
			return true
		}
	}
	return false
}

func respOut(stdout string) fakeResponse {
	return fakeResponse{result: &Result{Stdout: stdout}}
}

func respExit(code int, stderr string) fakeResponse {
	return fakeResponse{result: &Result{ExitCode: code, Stderr: stderr}}
}

func respLaunchError(msg string) fakeResponse {
	return fakeResponse{err: errors.New(msg)}
}

// writeFakeTool creates an executable stub so resolvers accept the path.
func writeFakeTool(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatalf("failed to write fake tool %s: %v", name, err)
	}
	return path
}
