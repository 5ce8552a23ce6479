// Package ui provides the macOS menu-bar interface for WG Menu Bar.
//
// This package implements the systray-based menu-bar item including:
//
//   - Menu-bar indicator with connected/disconnected icon states
//   - Poll loop that refreshes tunnel status on a timer
//   - Connect/disconnect menu actions and a per-tunnel connect list
//   - macOS notifications via osascript
//
// # Architecture
//
// The menu bar is driven by fyne.io/systray. Key components:
//
//   - Tray: menu construction, poll loop, and state transitions
//   - OSANotifier: user notifications through osascript
//   - icons.go: monochrome template icon generation
//
// # Thread Safety
//
// systray menu items are safe to update from any goroutine. The Tray
// serializes its own transition state (last connected name, first-poll
// suppression) with a mutex because the poll loop and click handlers
// run concurrently.
//
// # File Organization
//
//   - tray.go: menu-bar indicator and poll loop
//   - icons.go: icon generation for the menu bar
//   - notifications.go: macOS notification integration
package ui
