// Package ui provides the macOS menu-bar interface for WG Menu Bar.
// This file contains the menu-bar indicator and its poll loop.
package ui

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"fyne.io/systray"

	"wg-menubar/common"
	"wg-menubar/config"
	"wg-menubar/wireguard"
)

// Pre-generated icons for performance.
var (
	iconConnected    = ConnectedIcon()
	iconDisconnected = DisconnectedIcon()
)

// Tray manages the menu-bar item and its menu.
// It polls tunnel status on a timer and offers connect/disconnect actions.
type Tray struct {
	manager  *wireguard.Manager
	cfg      *config.Config
	notifier common.Notifier

	statusItem     *systray.MenuItem
	connectItem    *systray.MenuItem
	disconnectItem *systray.MenuItem
	tunnelItems    map[string]*systray.MenuItem

	mu            sync.Mutex
	lastConnected string
	polledOnce    bool
	stop          chan struct{}
}

// NewTray creates a new menu-bar indicator. The notifier may be nil.
func NewTray(manager *wireguard.Manager, cfg *config.Config, notifier common.Notifier) *Tray {
	return &Tray{
		manager:     manager,
		cfg:         cfg,
		notifier:    notifier,
		tunnelItems: make(map[string]*systray.MenuItem),
		stop:        make(chan struct{}),
	}
}

// Run starts the menu-bar indicator. It blocks until Quit is chosen.
func (t *Tray) Run() {
	systray.Run(t.onReady, t.onExit)
}

// onReady is called when the systray is ready.
func (t *Tray) onReady() {
	systray.SetTemplateIcon(iconDisconnected, iconDisconnected)
	systray.SetTooltip("WG Menu Bar - Disconnected")

	t.statusItem = systray.AddMenuItem("○  Not Connected", "Current tunnel status")
	t.statusItem.Disable()

	systray.AddSeparator()

	t.connectItem = systray.AddMenuItem("Connect", "Bring the preferred tunnel up")
	go func() {
		for range t.connectItem.ClickedCh {
			t.connect("")
		}
	}()

	t.disconnectItem = systray.AddMenuItem("Disconnect", "Tear down all active tunnels")
	t.disconnectItem.Hide()
	go func() {
		for range t.disconnectItem.ClickedCh {
			t.disconnect()
		}
	}()

	systray.AddSeparator()

	tunnelsHeader := systray.AddMenuItem("── Tunnels ──", "")
	tunnelsHeader.Disable()

	t.addTunnelItems()

	systray.AddSeparator()

	quitItem := systray.AddMenuItem("Quit", "Close WG Menu Bar")
	go func() {
		for range quitItem.ClickedCh {
			systray.Quit()
		}
	}()

	t.refresh(true)
	go t.pollLoop()
}

// onExit is called when the systray is about to exit.
// Active tunnels are left alone; this is a status app, not the tunnel owner.
func (t *Tray) onExit() {
	close(t.stop)
	common.LogInfo("Menu-bar indicator stopped")
}

// pollLoop refreshes the displayed status on the configured interval.
func (t *Tray) pollLoop() {
	ticker := time.NewTicker(t.cfg.PollInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			t.refresh(false)
		case <-t.stop:
			return
		}
	}
}

// addTunnelItems adds a menu item per known tunnel name.
// Names come from on-disk configs and VPN services at startup.
func (t *Tray) addTunnelItems() {
	snap := t.manager.Snapshot(true)
	names := common.DedupeFold(append(append([]string{}, snap.ConfigNames...), snap.AvailableServices...))

	if len(names) == 0 {
		empty := systray.AddMenuItem("No tunnels found", "")
		empty.Disable()
		return
	}

	for _, name := range names {
		if _, exists := t.tunnelItems[name]; exists {
			continue
		}
		item := systray.AddMenuItem(name, fmt.Sprintf("Connect to %s", name))
		t.tunnelItems[name] = item

		go func(tunnel string, menuItem *systray.MenuItem) {
			for range menuItem.ClickedCh {
				t.connect(tunnel)
			}
		}(name, item)
	}
}

// connect brings a tunnel up and reflects the outcome in the menu.
func (t *Tray) connect(preferred string) {
	outcome := t.manager.Connect(preferred)
	t.notify("WG Menu Bar", outcome.Message())
	t.refresh(false)
}

// disconnect tears everything down and reflects the outcome in the menu.
func (t *Tray) disconnect() {
	outcome := t.manager.Disconnect()
	t.notify("WG Menu Bar", outcome.Message())
	t.refresh(false)
}

// refresh re-snapshots tunnel state and updates the menu to match.
func (t *Tray) refresh(forceConfigRefresh bool) {
	snap := t.manager.Snapshot(forceConfigRefresh)

	t.mu.Lock()
	defer t.mu.Unlock()

	if snap.Connected() {
		name, _ := snap.PrimaryName()
		t.manager.RememberPreferred(name)
		t.setConnected(name, snap.ConnectedNames)
	} else {
		t.setDisconnected()
		if t.connectItem != nil {
			if snap.HasTarget() {
				t.connectItem.Enable()
			} else {
				t.connectItem.Disable()
			}
		}
	}
	t.polledOnce = true
}

// setConnected updates the menu for the connected state.
// Caller holds t.mu.
func (t *Tray) setConnected(primary string, names []string) {
	systray.SetTemplateIcon(iconConnected, iconConnected)
	systray.SetTooltip(fmt.Sprintf("WG Menu Bar - Connected to %s", primary))

	if t.statusItem != nil {
		if len(names) > 1 {
			t.statusItem.SetTitle(fmt.Sprintf("●  Connected: %s", strings.Join(names, ", ")))
		} else {
			t.statusItem.SetTitle(fmt.Sprintf("●  Connected: %s", primary))
		}
	}
	if t.connectItem != nil {
		t.connectItem.Hide()
	}
	if t.disconnectItem != nil {
		t.disconnectItem.Show()
	}

	if t.polledOnce && t.lastConnected != primary {
		t.notify("Tunnel up", fmt.Sprintf("Connected to %s", primary))
	}
	t.lastConnected = primary
}

// setDisconnected updates the menu for the disconnected state.
// Caller holds t.mu.
func (t *Tray) setDisconnected() {
	systray.SetTemplateIcon(iconDisconnected, iconDisconnected)
	systray.SetTooltip("WG Menu Bar - Disconnected")

	if t.statusItem != nil {
		t.statusItem.SetTitle("○  Not Connected")
	}
	if t.connectItem != nil {
		t.connectItem.Show()
	}
	if t.disconnectItem != nil {
		t.disconnectItem.Hide()
	}

	if t.polledOnce && t.lastConnected != "" {
		t.notify("Tunnel down", fmt.Sprintf("Disconnected from %s", t.lastConnected))
	}
	t.lastConnected = ""
}

// notify posts a notification when enabled; failures only get logged.
func (t *Tray) notify(title, message string) {
	if t.notifier == nil || !t.cfg.ShowNotifications {
		return
	}
	if err := t.notifier.Notify(title, message); err != nil {
		common.LogDebug("Notification not delivered: %v", err)
	}
}
