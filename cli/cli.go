// Package cli provides command-line interface functionality for WG Menu Bar.
// This allows users to check tunnel status and connect/disconnect from the
// terminal without launching the menu-bar application.
package cli

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"wg-menubar/history"
	"wg-menubar/wireguard"
)

// CLI represents the command-line interface.
type CLI struct {
	manager *wireguard.Manager
	events  *history.Store
}

// New creates a new CLI instance. The history store may be nil.
func New(manager *wireguard.Manager, events *history.Store) *CLI {
	return &CLI{
		manager: manager,
		events:  events,
	}
}

// Status prints the current tunnel status.
func (c *CLI) Status() error {
	snap := c.manager.Snapshot(false)

	if snap.Connected() {
		fmt.Printf("Connected: %s\n", strings.Join(snap.ConnectedNames, ", "))
	} else {
		fmt.Println("Not connected.")
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "\nKIND\tNAMES")
	fmt.Fprintln(w, "----\t-----")
	fmt.Fprintf(w, "Active interfaces\t%s\n", joinOrDash(snap.TunnelInterfaces))
	fmt.Fprintf(w, "Connected services\t%s\n", joinOrDash(snap.ConnectedServices))
	fmt.Fprintf(w, "Available services\t%s\n", joinOrDash(snap.AvailableServices))
	fmt.Fprintf(w, "On-disk configs\t%s\n", joinOrDash(snap.ConfigNames))
	w.Flush()
	return nil
}

// Connect brings a tunnel up, preferring the named one if given.
func (c *CLI) Connect(preferred string) error {
	if preferred != "" {
		fmt.Printf("Connecting (preferring %s)...\n", preferred)
	} else {
		fmt.Println("Connecting...")
	}

	outcome := c.manager.Connect(preferred)
	if !outcome.OK() {
		return fmt.Errorf("%s", outcome.Message())
	}
	fmt.Printf("✓ %s\n", outcome.Message())
	return nil
}

// Disconnect tears down everything that is connected.
func (c *CLI) Disconnect() error {
	fmt.Println("Disconnecting...")

	outcome := c.manager.Disconnect()
	if !outcome.OK() {
		return fmt.Errorf("%s", outcome.Message())
	}
	fmt.Printf("✓ %s\n", outcome.Message())
	return nil
}

// History prints the most recent connect/disconnect events.
func (c *CLI) History(limit int) error {
	if c.events == nil {
		fmt.Println("History is disabled (enable_history: false).")
		return nil
	}

	events, err := c.events.Recent(limit)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		fmt.Println("No recorded events.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tACTION\tTUNNEL\tRESULT\tMESSAGE")
	fmt.Fprintln(w, "----\t------\t------\t------\t-------")
	for _, event := range events {
		result := "ok"
		if !event.Success {
			result = "failed"
		}
		tunnel := event.Tunnel
		if tunnel == "" {
			tunnel = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			event.Time.Format("2006-01-02 15:04:05"), event.Action, tunnel, result, event.Message)
	}
	w.Flush()
	return nil
}

func joinOrDash(names []string) string {
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ", ")
}

// PrintHelp prints CLI usage help.
func PrintHelp() {
	fmt.Println(`WG Menu Bar - WireGuard status for the macOS menu bar

Usage:
  wg-menubar [OPTIONS]

Options:
  --version         Show version and exit
  --verbose         Enable verbose logging
  --status          Show current tunnel status
  --connect [NAME]  Bring a tunnel up (NAME is tried first if given)
  --disconnect      Tear down all active tunnels
  --history N       Show the last N connect/disconnect events
  --help            Show this help message

Examples:
  wg-menubar --status
  wg-menubar --connect home
  wg-menubar --disconnect
  wg-menubar --history 10

Notes:
  - Run without options to start the menu-bar application
  - wg-quick actions may prompt for an administrator password`)
}
