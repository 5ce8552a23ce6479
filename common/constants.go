// Package common provides shared constants, types, and utilities
// used across the WG Menu Bar application.
package common

import "time"

// Application metadata.
const (
	// AppName is the display name of the application.
	AppName = "WG Menu Bar"
	// ConfigDirName is the name of the configuration directory.
	ConfigDirName = "wg-menubar"
)

// File names used by the application.
const (
	ConfigFileName  = "config.yaml"
	HistoryFileName = "history.db"
	LogFileName     = "wg-menubar.log"
)

// WireGuard tool and config discovery.
const (
	// ConfigExtension is the file extension of wg-quick tunnel configs.
	ConfigExtension = ".conf"
	// ConfigCacheTTL is how long the on-disk config listing is cached
	// before the next snapshot triggers a rescan.
	ConfigCacheTTL = 30 * time.Second
)

// TunnelConfigDirs are the standard locations where wg-quick looks for
// tunnel configuration files on macOS.
var TunnelConfigDirs = []string{
	"/etc/wireguard",
	"/usr/local/etc/wireguard",
	"/opt/homebrew/etc/wireguard",
}

// Default timeouts and intervals.
const (
	// DefaultPollInterval is how often the tray refreshes the snapshot.
	DefaultPollInterval = 5 * time.Second
	// MinPollInterval is the lowest poll interval accepted from config.
	MinPollInterval = 1 * time.Second
)
