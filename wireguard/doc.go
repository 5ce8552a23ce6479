// Package wireguard determines whether a WireGuard tunnel is active on
// macOS and drives connect/disconnect actions through subprocess calls.
//
// The package reconciles three independent signals into one Snapshot:
//
//   - active kernel tunnel interfaces, from `wg show interfaces`
//   - VPN services and their states, from `scutil --nc list`
//   - tunnel configs on disk, from a TTL-cached directory scan
//
// The two live probes are sometimes inconsistent with each other: a
// tunnel brought up with wg-quick has no VPN service, and the kernel may
// expose only an anonymous utunN identifier for it. The reconciler
// infers display names where it safely can and otherwise shows the raw
// identifiers.
//
// # Actions
//
// Connect and Disconnect work through ordered fallback tiers: VPN services
// via scutil, then config-based tunnels via wg-quick, escalating a failed
// wg-quick invocation to administrator privileges through osascript.
// Actual state is re-verified by re-snapshotting after disconnect steps
// rather than trusting exit codes. Both actions are idempotent no-ops when
// the desired state already holds.
//
// # Concurrency
//
// Snapshot is read-only and safe to call concurrently with anything.
// Connect and Disconnect are serialized by an internal mutex and block
// until every launched subprocess exits; no timeout is enforced, so a
// hung external tool hangs the calling action.
//
// # Error handling
//
// Nothing here raises errors to the caller: probes degrade to empty
// results, and actions return an Outcome value whose message is rendered
// verbatim by the UI.
package wireguard
