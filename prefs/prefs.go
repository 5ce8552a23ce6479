// Package prefs persists the single "preferred tunnel name" value between
// runs. It uses the system keyring when available, falling back to a plain
// file in the config directory when not; the value is a tunnel name, not a
// secret, so the fallback needs no encryption.
package prefs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/zalando/go-keyring"

	"wg-menubar/common"
)

const (
	// serviceName is the identifier used in the system keyring.
	serviceName = "wg-menubar"
	// keyName is the keyring entry for the preferred tunnel.
	keyName = "preferred-tunnel"
	// fallbackFileName is the fallback file in the config directory.
	fallbackFileName = "preferred-tunnel"
)

// Store reads and writes the preferred tunnel name.
// It implements common.PreferenceStore.
type Store struct {
	useFile bool
}

// NewStore creates a preference store, probing the system keyring once to
// decide the backend.
func NewStore() *Store {
	probe := "wg-menubar-probe"
	if err := keyring.Set(serviceName, probe, "probe"); err != nil {
		common.LogDebug("System keyring unavailable, using file fallback: %v", err)
		return &Store{useFile: true}
	}
	keyring.Delete(serviceName, probe)
	return &Store{}
}

// PreferredTunnel returns the stored tunnel name, if any.
func (s *Store) PreferredTunnel() (string, bool) {
	if s.useFile {
		return s.readFile()
	}

	value, err := keyring.Get(serviceName, keyName)
	if err != nil {
		if err != keyring.ErrNotFound {
			common.LogDebug("Keyring read failed: %v", err)
		}
		return s.readFile()
	}
	if value == "" {
		return "", false
	}
	return value, true
}

// SetPreferredTunnel stores the tunnel name.
func (s *Store) SetPreferredTunnel(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return common.ErrPreferenceNotFound
	}

	if s.useFile {
		return s.writeFile(name)
	}

	if err := keyring.Set(serviceName, keyName, name); err != nil {
		// Keyring became unavailable after the probe; fall back.
		s.useFile = true
		return s.writeFile(name)
	}
	return nil
}

func (s *Store) readFile() (string, bool) {
	path, err := fallbackPath()
	if err != nil {
		return "", false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	value := strings.TrimSpace(string(data))
	return value, value != ""
}

func (s *Store) writeFile(name string) error {
	path, err := fallbackPath()
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(name+"\n"), 0600)
}

func fallbackPath() (string, error) {
	configDir, err := common.GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, fallbackFileName), nil
}
