// Package wireguard provides tunnel status collection and connect/disconnect
// orchestration for WireGuard on macOS.
// This file contains the Snapshot value and the reconciliation of the raw
// probe outputs into it.
package wireguard

import (
	"strings"

	"wg-menubar/common"
)

// Snapshot is one coherent picture of tunnel state at an instant. It is a
// pure function of the three probe results: it holds no mutable state and
// is safe to share between goroutines. Every list is deduplicated
// case-insensitively preserving first-seen order and contains no empty
// strings.
type Snapshot struct {
	// ConnectedNames are the human-facing names currently connected,
	// VPN service names first, then inferred tunnel names.
	ConnectedNames []string
	// TunnelInterfaces are the raw kernel interface identifiers active.
	TunnelInterfaces []string
	// ConnectedServices are the VPN services in a connected or
	// connecting state.
	ConnectedServices []string
	// AvailableServices are all WireGuard-looking VPN services,
	// connected or not.
	AvailableServices []string
	// ConfigNames are the tunnel configuration names found on disk.
	ConfigNames []string
}

// Connected reports whether any tunnel is currently connected.
func (s Snapshot) Connected() bool {
	return len(s.ConnectedNames) > 0
}

// HasTarget reports whether anything could be connected: at least one
// available service or one on-disk config.
func (s Snapshot) HasTarget() bool {
	return len(s.AvailableServices) > 0 || len(s.ConfigNames) > 0
}

// PrimaryName returns the first connected display name, if any.
func (s Snapshot) PrimaryName() (string, bool) {
	if len(s.ConnectedNames) == 0 {
		return "", false
	}
	return s.ConnectedNames[0], true
}

// BuildSnapshot merges the raw probe outputs into a Snapshot.
func BuildSnapshot(interfaces []string, services []ServiceEntry, configNames []string) Snapshot {
	var connected, available []string
	for _, svc := range services {
		available = append(available, svc.Name)
		if svc.Connected() {
			connected = append(connected, svc.Name)
		}
	}

	connected = common.DedupeFold(connected)
	available = common.DedupeFold(available)
	interfaces = common.DedupeFold(interfaces)
	configNames = common.DedupeFold(configNames)

	names := make([]string, 0, len(connected))
	names = append(names, connected...)
	names = append(names, inferTunnelNames(interfaces, configNames)...)

	return Snapshot{
		ConnectedNames:    common.DedupeFold(names),
		TunnelInterfaces:  interfaces,
		ConnectedServices: connected,
		AvailableServices: available,
		ConfigNames:       configNames,
	}
}

// inferTunnelNames maps active interface identifiers to display names.
// Interfaces with meaningful names are shown as-is. When the kernel only
// exposes anonymous utunN identifiers and exactly one config exists, that
// config name is almost certainly the tunnel, so it is substituted;
// with several configs the raw identifiers are kept rather than guessing.
func inferTunnelNames(interfaces, configNames []string) []string {
	if len(interfaces) == 0 {
		return nil
	}

	var named []string
	for _, iface := range interfaces {
		if !IsGenericInterface(iface) {
			named = append(named, iface)
		}
	}
	if len(named) > 0 {
		return named
	}

	if len(configNames) == 1 {
		return []string{configNames[0]}
	}
	return interfaces
}

// IsGenericInterface reports whether name is a kernel-assigned utun
// identifier ("utun" followed only by digits), which carries no semantic
// meaning for the user.
func IsGenericInterface(name string) bool {
	rest, ok := strings.CutPrefix(name, "utun")
	if !ok || rest == "" {
		return false
	}
	for _, r := range rest {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
