// Package wireguard provides tunnel status collection and connect/disconnect
// orchestration for WireGuard on macOS.
// This file contains the read-only status probes and the cached config scan.
package wireguard

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"wg-menubar/common"
)

// ServiceEntry is one VPN service from the system network configuration.
type ServiceEntry struct {
	// Name is the quoted display name from scutil --nc list.
	Name string
	// State is the parenthesized status token, e.g. "Connected".
	State string
}

// Connected reports whether the service is connected or connecting.
func (s ServiceEntry) Connected() bool {
	state := strings.ToLower(s.State)
	return state == "connected" || state == "connecting"
}

// Collector runs the status probes. All probes are side-effect free and
// degrade to empty results when a tool is missing or fails; absence of a
// tool is a valid "not installed" state, not an error.
//
// The config listing cache is the only mutable state. It is guarded by a
// read-write mutex so snapshots may be taken concurrently; a race between
// TTL expiry and a refresh at worst duplicates one directory scan.
type Collector struct {
	runner     Runner
	wg         *Resolver
	configDirs []string
	ttl        time.Duration

	mu          sync.RWMutex
	cachedNames []string
	cachedAt    time.Time
}

// NewCollector creates a collector with the standard tool candidates,
// config directories, and cache TTL.
func NewCollector(runner Runner) *Collector {
	return &Collector{
		runner:     runner,
		wg:         NewWGResolver(),
		configDirs: common.TunnelConfigDirs,
		ttl:        common.ConfigCacheTTL,
	}
}

// TunnelInterfaces returns the active kernel WireGuard interface names.
// Any resolution failure or nonzero exit yields an empty list.
func (c *Collector) TunnelInterfaces() []string {
	path, ok := c.wg.Path()
	if !ok {
		return nil
	}
	res, err := c.runner.Run(path, "show", "interfaces")
	if err != nil || res.ExitCode != 0 {
		return nil
	}
	return strings.Fields(res.Stdout)
}

// Services returns the WireGuard-looking VPN services known to the system,
// connected or not.
func (c *Collector) Services() []ServiceEntry {
	res, err := c.runner.Run("scutil", "--nc", "list")
	if err != nil || res.ExitCode != 0 {
		return nil
	}

	var services []ServiceEntry
	for _, line := range strings.Split(res.Stdout, "\n") {
		entry, ok := parseServiceLine(line)
		if !ok {
			continue
		}
		if IsWireGuardService(entry.Name) {
			services = append(services, entry)
		}
	}
	return services
}

// parseServiceLine extracts the parenthesized status token and the quoted
// display name from one scutil --nc list output line.
func parseServiceLine(line string) (ServiceEntry, bool) {
	open := strings.IndexByte(line, '(')
	if open < 0 {
		return ServiceEntry{}, false
	}
	closing := strings.IndexByte(line[open:], ')')
	if closing < 0 {
		return ServiceEntry{}, false
	}
	state := line[open+1 : open+closing]

	firstQuote := strings.IndexByte(line, '"')
	if firstQuote < 0 {
		return ServiceEntry{}, false
	}
	secondQuote := strings.IndexByte(line[firstQuote+1:], '"')
	if secondQuote < 0 {
		return ServiceEntry{}, false
	}
	name := line[firstQuote+1 : firstQuote+1+secondQuote]
	if name == "" {
		return ServiceEntry{}, false
	}

	return ServiceEntry{Name: name, State: state}, true
}

// IsWireGuardService reports whether a VPN service display name looks like
// a WireGuard service.
func IsWireGuardService(name string) bool {
	lower := strings.ToLower(strings.TrimSpace(name))
	return strings.Contains(lower, "wireguard") ||
		lower == "wg" ||
		strings.HasPrefix(lower, "wg ") ||
		strings.HasPrefix(lower, "wg-")
}

// ConfigNames returns the tunnel configuration names found in the standard
// directories, cached for the collector's TTL. A forced refresh bypasses
// the cache; actions force one so they see the latest on-disk configs.
func (c *Collector) ConfigNames(force bool) []string {
	now := time.Now()

	c.mu.RLock()
	if useCache(now, c.cachedAt, c.ttl, force) {
		names := c.cachedNames
		c.mu.RUnlock()
		return names
	}
	c.mu.RUnlock()

	names := scanConfigDirs(c.configDirs)

	c.mu.Lock()
	c.cachedNames = names
	c.cachedAt = now
	c.mu.Unlock()

	return names
}

// useCache decides whether the cached config listing is still usable.
// Kept free of clock and filesystem access so it is trivially testable.
func useCache(now, last time.Time, ttl time.Duration, force bool) bool {
	if force || last.IsZero() {
		return false
	}
	return now.Sub(last) < ttl
}

// scanConfigDirs lists config-extension files in each directory and strips
// the extension to get tunnel names.
func scanConfigDirs(dirs []string) []string {
	var names []string
	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			name := entry.Name()
			if !strings.HasSuffix(name, common.ConfigExtension) {
				continue
			}
			names = append(names, strings.TrimSuffix(filepath.Base(name), common.ConfigExtension))
		}
	}
	return common.DedupeFold(names)
}
