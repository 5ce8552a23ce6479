// Package wireguard provides tunnel status collection and connect/disconnect
// orchestration for WireGuard on macOS.
// This file contains lazy executable resolution for the external tools.
package wireguard

import (
	"os"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
	"sync"
)

// Resolver finds a usable absolute path for a tool among an ordered list of
// candidates. Absolute candidates are checked for the executable bit,
// bare names go through PATH lookup. The result is computed on first use
// and cached for the life of the resolver.
type Resolver struct {
	candidates []string

	once  sync.Once
	path  string
	found bool
}

// NewResolver creates a resolver for the given ordered candidate list.
func NewResolver(candidates ...string) *Resolver {
	return &Resolver{candidates: candidates}
}

// Path returns the first usable candidate, resolving once and caching.
func (r *Resolver) Path() (string, bool) {
	r.once.Do(func() {
		r.path, r.found = resolveFirst(r.candidates)
	})
	return r.path, r.found
}

func resolveFirst(candidates []string) (string, bool) {
	for _, candidate := range candidates {
		if strings.ContainsRune(candidate, os.PathSeparator) {
			if isExecutable(candidate) {
				return candidate, true
			}
			continue
		}
		if path, err := exec.LookPath(candidate); err == nil {
			return path, true
		}
	}
	return "", false
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular() && info.Mode()&0111 != 0
}

// versionPattern matches the "version X.Y" fragment that bash prints on
// the first line of --version output.
var versionPattern = regexp.MustCompile(`version (\d+)\.(\d+)`)

// ShellResolver resolves a shell interpreter with a minimum major version.
// macOS ships bash 3.2 by default, which wg-quick's process substitution
// depends on being newer than; accepting only version 4 or later avoids
// silent failures when the tunnel script runs.
type ShellResolver struct {
	runner     Runner
	candidates []string
	minMajor   int

	once  sync.Once
	path  string
	found bool
}

// NewShellResolver creates a resolver that accepts only candidates whose
// --version output reports a major version of at least minMajor.
func NewShellResolver(runner Runner, minMajor int, candidates ...string) *ShellResolver {
	return &ShellResolver{
		runner:     runner,
		candidates: candidates,
		minMajor:   minMajor,
	}
}

// Path returns the first candidate that resolves and passes the version
// probe, resolving once and caching.
func (r *ShellResolver) Path() (string, bool) {
	r.once.Do(func() {
		for _, candidate := range r.candidates {
			path, ok := resolveFirst([]string{candidate})
			if !ok {
				continue
			}
			res, err := r.runner.Run(path, "--version")
			if err != nil || res.ExitCode != 0 {
				continue
			}
			major, ok := parseMajorVersion(res.Stdout)
			if ok && major >= r.minMajor {
				r.path = path
				r.found = true
				return
			}
		}
	})
	return r.path, r.found
}

// parseMajorVersion extracts the major version from the first line of a
// --version output.
func parseMajorVersion(output string) (int, bool) {
	firstLine := output
	if idx := strings.IndexByte(output, '\n'); idx >= 0 {
		firstLine = output[:idx]
	}
	match := versionPattern.FindStringSubmatch(firstLine)
	if match == nil {
		return 0, false
	}
	major, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, false
	}
	return major, true
}

// Default candidate lists. Homebrew locations are tried before PATH so a
// user-installed tool wins over whatever an old PATH entry points at.

// NewWGResolver resolves the low-level wg tool.
func NewWGResolver() *Resolver {
	return NewResolver("/usr/local/bin/wg", "/opt/homebrew/bin/wg", "wg")
}

// NewWGQuickResolver resolves the wg-quick tunnel script.
func NewWGQuickResolver() *Resolver {
	return NewResolver("/usr/local/bin/wg-quick", "/opt/homebrew/bin/wg-quick", "wg-quick")
}

// NewBashResolver resolves a bash 4+ interpreter for running wg-quick.
func NewBashResolver(runner Runner) *ShellResolver {
	return NewShellResolver(runner, 4, "/opt/homebrew/bin/bash", "/usr/local/bin/bash", "bash")
}
