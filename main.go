// Package main provides the entry point for WG Menu Bar.
// WG Menu Bar is a macOS menu-bar application that shows whether a
// WireGuard tunnel is active and offers one-click connect/disconnect.
//
// Features:
//   - Live tunnel status from wg and scutil, reconciled into one view
//   - Connect/disconnect through VPN services or wg-quick with
//     administrator-privilege escalation when needed
//   - Preferred tunnel persistence in the system keyring
//   - Connection event history in a local database
//   - Command-line interface for scripting and automation
//
// Usage:
//
//	wg-menubar [options]
//
// Environment:
//
//	wg-quick actions require wireguard-tools and a bash 4 or newer
//	installation (macOS ships bash 3.2).
package main

import (
	"flag"
	"fmt"
	"os"

	"wg-menubar/cli"
	"wg-menubar/common"
	"wg-menubar/config"
	"wg-menubar/history"
	"wg-menubar/prefs"
	"wg-menubar/ui"
	"wg-menubar/wireguard"
)

// Build-time variables injected via ldflags (-X main.appVersion=x.y.z)
// Default values are used for local development builds
var (
	appVersion = "dev"
	buildTime  = "unknown"
	commitSHA  = "unknown"
)

var (
	// General flags
	showVersion = flag.Bool("version", false, "Show version and exit")
	verbose     = flag.Bool("verbose", false, "Enable verbose logging")
	showHelp    = flag.Bool("help", false, "Show help message")

	// CLI flags
	showStatus    = flag.Bool("status", false, "Show current tunnel status")
	connectName   = flag.String("connect", "", "Bring a tunnel up, trying NAME first")
	disconnectAll = flag.Bool("disconnect", false, "Tear down all active tunnels")
	historyLimit  = flag.Int("history", 0, "Show the last N connect/disconnect events")
)

func main() {
	flag.Parse()

	if *showHelp {
		cli.PrintHelp()
		os.Exit(0)
	}

	if *showVersion {
		fmt.Printf("WG Menu Bar v%s\n", appVersion)
		if buildTime != "unknown" {
			fmt.Printf("  Build:  %s\n", buildTime)
			fmt.Printf("  Commit: %s\n", commitSHA)
		}
		os.Exit(0)
	}

	logLevel := common.LevelInfo
	if *verbose {
		logLevel = common.LevelDebug
	}

	if err := common.InitLogger(common.LogConfig{
		Level:       logLevel,
		EnableFile:  true,
		MaxFileSize: 2 * 1024 * 1024, // 2MB
		MaxBackups:  3,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not initialize file logging: %v\n", err)
	}
	defer common.CloseLogger()

	cfg, err := config.Load()
	if err != nil {
		common.LogWarn("Could not load configuration, using defaults: %v", err)
		cfg = config.DefaultConfig()
	}

	manager := wireguard.NewManager(nil)
	manager.SetPreferenceStore(prefs.NewStore())

	var events *history.Store
	if cfg.EnableHistory {
		events, err = history.OpenDefault()
		if err != nil {
			common.LogWarn("Could not open history database: %v", err)
		} else {
			defer events.Close()
			manager.SetRecorder(events)
		}
	}

	// CLI mode when any CLI flag is set.
	if *showStatus || *connectName != "" || *disconnectAll || *historyLimit > 0 {
		runCLI(manager, events)
		return
	}

	common.LogInfo("Starting %s v%s", common.AppName, appVersion)
	tray := ui.NewTray(manager, cfg, ui.NewNotifier(nil))
	tray.Run()
}

// runCLI handles command-line interface operations.
func runCLI(manager *wireguard.Manager, events *history.Store) {
	cliApp := cli.New(manager, events)

	var cliErr error
	switch {
	case *showStatus:
		cliErr = cliApp.Status()
	case *connectName != "":
		cliErr = cliApp.Connect(*connectName)
	case *disconnectAll:
		cliErr = cliApp.Disconnect()
	case *historyLimit > 0:
		cliErr = cliApp.History(*historyLimit)
	}

	if cliErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", cliErr)
		os.Exit(1)
	}
}
