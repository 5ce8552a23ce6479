// Package wireguard provides tunnel status collection and connect/disconnect
// orchestration for WireGuard on macOS.
// This file contains the Manager type which orchestrates tunnel state
// snapshots and connect/disconnect actions with layered fallback.
package wireguard

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"wg-menubar/common"
)

// Outcome is the tagged result of a connect or disconnect action: either
// success or failure, each carrying a human-readable message. The message
// is the only payload because its sole consumer is a status line; nothing
// in this package propagates failure as an error to the caller.
type Outcome struct {
	success bool
	message string
}

// Success creates a successful outcome.
func Success(message string) Outcome {
	return Outcome{success: true, message: message}
}

// Failure creates a failed outcome.
func Failure(message string) Outcome {
	return Outcome{success: false, message: message}
}

// OK reports whether the action succeeded.
func (o Outcome) OK() bool {
	return o.success
}

// Message returns the human-readable outcome text.
func (o Outcome) Message() string {
	return o.message
}

// Manager orchestrates tunnel state snapshots and connect/disconnect
// actions. Snapshots are read-only and may be taken concurrently with
// anything else; Connect and Disconnect are serialized by an internal
// mutex, so callers need no discipline of their own. Both are synchronous
// and block until every launched subprocess has exited.
type Manager struct {
	runner    Runner
	collector *Collector
	wgQuick   *Resolver
	bash      *ShellResolver
	prefs     common.PreferenceStore
	recorder  common.ActionRecorder

	mu sync.Mutex
}

// NewManager creates a manager with the standard runner, collector, and
// tool resolvers. A nil runner selects the production CommandRunner.
func NewManager(runner Runner) *Manager {
	if runner == nil {
		runner = CommandRunner{}
	}
	return &Manager{
		runner:    runner,
		collector: NewCollector(runner),
		wgQuick:   NewWGQuickResolver(),
		bash:      NewBashResolver(runner),
	}
}

// SetPreferenceStore sets the collaborator that persists the preferred
// tunnel name. Optional; nil disables persistence.
func (m *Manager) SetPreferenceStore(store common.PreferenceStore) {
	m.prefs = store
}

// SetRecorder sets the collaborator that records action history.
// Optional; nil disables recording.
func (m *Manager) SetRecorder(recorder common.ActionRecorder) {
	m.recorder = recorder
}

// Snapshot takes a fresh snapshot of tunnel state. forceConfigRefresh
// bypasses the config listing cache.
func (m *Manager) Snapshot(forceConfigRefresh bool) Snapshot {
	return BuildSnapshot(
		m.collector.TunnelInterfaces(),
		m.collector.Services(),
		m.collector.ConfigNames(forceConfigRefresh),
	)
}

// Connect brings a tunnel up. Service-based profiles are tried first, then
// config-based tunnels via wg-quick; within each tier a candidate matching
// preferred (case-insensitive) is tried before the others. An empty
// preferred falls back to the stored preference. Connecting while already
// connected is a successful no-op.
func (m *Manager) Connect(preferred string) Outcome {
	m.mu.Lock()
	defer m.mu.Unlock()

	snap := m.Snapshot(true)
	if snap.Connected() {
		name, _ := snap.PrimaryName()
		return Success(fmt.Sprintf("Already connected to %s", name))
	}

	if preferred == "" && m.prefs != nil {
		if stored, ok := m.prefs.PreferredTunnel(); ok {
			preferred = stored
		}
	}

	var errs []string

	for _, svc := range preferredFirst(snap.AvailableServices, preferred) {
		common.LogInfo("Starting VPN service %q", svc)
		res, err := m.runner.Run("scutil", "--nc", "start", svc)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", svc, err))
			continue
		}
		if res.ExitCode == 0 {
			return m.finishConnect(svc)
		}
		errs = append(errs, fmt.Sprintf("%s: scutil exited %d: %s", svc, res.ExitCode, firstLine(res.Stderr)))
	}

	for _, name := range preferredFirst(snap.ConfigNames, preferred) {
		common.LogInfo("Bringing up tunnel %q via wg-quick", name)
		out := m.tunnelAction("up", name)
		if out.OK() {
			return m.finishConnect(name)
		}
		errs = append(errs, out.Message())
	}

	if len(errs) == 0 {
		outcome := Failure("No WireGuard profile found to start")
		m.record("connect", "", outcome)
		return outcome
	}
	outcome := Failure(errs[0])
	m.record("connect", preferred, outcome)
	return outcome
}

// finishConnect persists the connected name as the new preference, records
// the event, and builds the success outcome. The name is always a service
// or config name here, never an anonymous interface identifier.
func (m *Manager) finishConnect(name string) Outcome {
	m.RememberPreferred(name)
	outcome := Success(fmt.Sprintf("Connected to %s", name))
	m.record("connect", name, outcome)
	return outcome
}

// RememberPreferred persists name as the preferred tunnel when it is a
// meaningful name. Observers call this when they see a connection that was
// established outside this program, so the next plain Connect favors it.
func (m *Manager) RememberPreferred(name string) {
	if m.prefs == nil || name == "" || IsGenericInterface(name) {
		return
	}
	if current, ok := m.prefs.PreferredTunnel(); ok && strings.EqualFold(current, name) {
		return
	}
	if err := m.prefs.SetPreferredTunnel(name); err != nil {
		common.LogWarn("Failed to persist preferred tunnel: %v", err)
	}
}

// Disconnect tears down everything that is connected. All connected VPN
// services are stopped first; if tunnels remain, wg-quick down candidates
// are tried in priority order, re-verifying actual state after every step
// because a zero exit does not guarantee the state changed. Disconnecting
// while already disconnected is a successful no-op.
func (m *Manager) Disconnect() Outcome {
	m.mu.Lock()
	defer m.mu.Unlock()

	snap := m.Snapshot(true)
	if !snap.Connected() {
		return Success("Not connected")
	}

	var errs []string

	for _, svc := range snap.ConnectedServices {
		common.LogInfo("Stopping VPN service %q", svc)
		res, err := m.runner.Run("scutil", "--nc", "stop", svc)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", svc, err))
			continue
		}
		if res.ExitCode != 0 {
			errs = append(errs, fmt.Sprintf("%s: scutil exited %d: %s", svc, res.ExitCode, firstLine(res.Stderr)))
		}
	}

	snap = m.Snapshot(false)
	if !snap.Connected() {
		return m.finishDisconnect()
	}

	for _, name := range disconnectCandidates(snap) {
		common.LogInfo("Bringing down tunnel %q via wg-quick", name)
		out := m.tunnelAction("down", name)
		if !out.OK() {
			errs = append(errs, out.Message())
		}
		snap = m.Snapshot(false)
		if !snap.Connected() {
			return m.finishDisconnect()
		}
	}

	snap = m.Snapshot(false)
	if !snap.Connected() {
		return m.finishDisconnect()
	}

	var outcome Outcome
	if len(errs) > 0 {
		outcome = Failure(errs[0])
	} else {
		outcome = Failure("Tunnel still active after disconnect attempts")
	}
	m.record("disconnect", "", outcome)
	return outcome
}

func (m *Manager) finishDisconnect() Outcome {
	outcome := Success("Disconnected")
	m.record("disconnect", "", outcome)
	return outcome
}

// disconnectCandidates builds the ordered tunnel-down candidate list:
// meaningfully-named active interfaces first, then the inferred config
// name, then every available config as a last resort. The broad final
// tier is deliberate; it recovers from states where nothing else matches
// the active tunnel.
func disconnectCandidates(snap Snapshot) []string {
	var candidates []string

	for _, iface := range snap.TunnelInterfaces {
		if !IsGenericInterface(iface) {
			candidates = append(candidates, iface)
		}
	}

	if len(snap.ConfigNames) == 1 {
		candidates = append(candidates, snap.ConfigNames[0])
	} else {
		for _, name := range snap.ConnectedNames {
			if common.ContainsFold(snap.ConfigNames, name) {
				candidates = append(candidates, name)
			}
		}
	}

	candidates = append(candidates, snap.ConfigNames...)
	return common.DedupeFold(candidates)
}

// tunnelAction runs wg-quick up/down for a tunnel name, preferring a
// modern bash as the interpreter when one resolved. A direct attempt is
// always made first; escalation to administrator privileges happens only
// after it fails.
func (m *Manager) tunnelAction(action, name string) Outcome {
	wgQuick, ok := m.wgQuick.Path()
	if !ok {
		return Failure("wg-quick not found; install wireguard-tools")
	}

	bash, bashOK := m.bash.Path()
	var cmdName string
	var args []string
	if bashOK {
		cmdName = bash
		args = []string{wgQuick, action, name}
	} else {
		cmdName = wgQuick
		args = []string{action, name}
	}

	res, err := m.runner.Run(cmdName, args...)
	if err == nil && res.ExitCode == 0 {
		return Success(fmt.Sprintf("wg-quick %s %s succeeded", action, name))
	}

	var cause string
	if err != nil {
		cause = err.Error()
	} else {
		cause = fmt.Sprintf("exit %d: %s", res.ExitCode, firstLine(res.Stderr))
	}
	common.LogWarn("wg-quick %s %s failed (%s), retrying with administrator privileges", action, name, cause)

	eres, eerr := m.runElevated(cmdName, args...)
	if eerr == nil && eres.ExitCode == 0 {
		return Success(fmt.Sprintf("wg-quick %s %s succeeded (elevated)", action, name))
	}

	if !bashOK {
		return Failure(fmt.Sprintf("wg-quick %s %s failed: %s; bash 4 or newer was not found, install a modern bash", action, name, cause))
	}
	return Failure(fmt.Sprintf("wg-quick %s %s failed: %s", action, name, cause))
}

// preferredFirst reorders names so that one matching preferred
// case-insensitively is tried first. Order is otherwise preserved.
func preferredFirst(names []string, preferred string) []string {
	if preferred == "" {
		return names
	}
	for i, name := range names {
		if strings.EqualFold(name, preferred) {
			reordered := make([]string, 0, len(names))
			reordered = append(reordered, name)
			reordered = append(reordered, names[:i]...)
			reordered = append(reordered, names[i+1:]...)
			return reordered
		}
	}
	return names
}

// record forwards a completed action to the history recorder, if any.
func (m *Manager) record(action, tunnel string, outcome Outcome) {
	if m.recorder == nil {
		return
	}
	err := m.recorder.Record(common.ActionEvent{
		Time:    time.Now(),
		Action:  action,
		Tunnel:  tunnel,
		Success: outcome.OK(),
		Message: outcome.Message(),
	})
	if err != nil {
		common.LogWarn("Failed to record %s event: %v", action, err)
	}
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		s = s[:idx]
	}
	return s
}
