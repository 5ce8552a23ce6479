package wireguard

import (
	"reflect"
	"testing"
)

func TestIsGenericInterface(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"kernel assigned", "utun0", true},
		{"multi digit", "utun12", true},
		{"bare prefix", "utun", false},
		{"trailing letter", "utun4a", false},
		{"named tunnel", "wg-home", false},
		{"uppercase prefix", "UTUN4", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsGenericInterface(tt.in); got != tt.want {
				t.Errorf("IsGenericInterface(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestInferTunnelNames(t *testing.T) {
	tests := []struct {
		name       string
		interfaces []string
		configs    []string
		want       []string
	}{
		{
			name:       "single generic with single config",
			interfaces: []string{"utun4"},
			configs:    []string{"home"},
			want:       []string{"home"},
		},
		{
			name:       "single generic with several configs",
			interfaces: []string{"utun4"},
			configs:    []string{"home", "office"},
			want:       []string{"utun4"},
		},
		{
			name:       "named interface shown as-is",
			interfaces: []string{"wg-home"},
			configs:    []string{"home"},
			want:       []string{"wg-home"},
		},
		{
			name:       "named interfaces win over generics",
			interfaces: []string{"utun3", "wg-home"},
			configs:    []string{"home"},
			want:       []string{"wg-home"},
		},
		{
			name:       "generic with no configs",
			interfaces: []string{"utun7"},
			configs:    nil,
			want:       []string{"utun7"},
		},
		{
			name:       "no interfaces",
			interfaces: nil,
			configs:    []string{"home"},
			want:       nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := inferTunnelNames(tt.interfaces, tt.configs)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("inferTunnelNames(%v, %v) = %v, want %v", tt.interfaces, tt.configs, got, tt.want)
			}
		})
	}
}

func TestBuildSnapshotFromServices(t *testing.T) {
	services := []ServiceEntry{
		{Name: "WireGuard VPN", State: "Connected"},
		{Name: "wg-office", State: "Disconnected"},
		{Name: "WG Backup", State: "Connecting"},
	}

	snap := BuildSnapshot(nil, services, nil)

	if !snap.Connected() {
		t.Fatal("expected Connected() to be true")
	}
	wantConnected := []string{"WireGuard VPN", "WG Backup"}
	if !reflect.DeepEqual(snap.ConnectedNames, wantConnected) {
		t.Errorf("ConnectedNames = %v, want %v", snap.ConnectedNames, wantConnected)
	}
	wantAvailable := []string{"WireGuard VPN", "wg-office", "WG Backup"}
	if !reflect.DeepEqual(snap.AvailableServices, wantAvailable) {
		t.Errorf("AvailableServices = %v, want %v", snap.AvailableServices, wantAvailable)
	}
	if name, ok := snap.PrimaryName(); !ok || name != "WireGuard VPN" {
		t.Errorf("PrimaryName() = %q, %v, want %q, true", name, ok, "WireGuard VPN")
	}
}

func TestBuildSnapshotInfersConfigName(t *testing.T) {
	snap := BuildSnapshot([]string{"utun3"}, nil, []string{"home", "office"})

	if got, want := snap.ConnectedNames, []string{"utun3"}; !reflect.DeepEqual(got, want) {
		t.Errorf("ConnectedNames = %v, want %v", got, want)
	}

	snap = BuildSnapshot([]string{"utun3"}, nil, []string{"home"})
	if got, want := snap.ConnectedNames, []string{"home"}; !reflect.DeepEqual(got, want) {
		t.Errorf("ConnectedNames = %v, want %v", got, want)
	}
}

func TestBuildSnapshotDedupes(t *testing.T) {
	services := []ServiceEntry{
		{Name: "Home", State: "Connected"},
		{Name: "home", State: "Connected"},
		{Name: "Home", State: "Disconnected"},
	}
	snap := BuildSnapshot([]string{"wg-x", "WG-X", ""}, services, []string{"a", "", "A"})

	if got, want := snap.ConnectedNames, []string{"Home", "wg-x"}; !reflect.DeepEqual(got, want) {
		t.Errorf("ConnectedNames = %v, want %v", got, want)
	}
	if got, want := snap.TunnelInterfaces, []string{"wg-x"}; !reflect.DeepEqual(got, want) {
		t.Errorf("TunnelInterfaces = %v, want %v", got, want)
	}
	if got, want := snap.ConfigNames, []string{"a"}; !reflect.DeepEqual(got, want) {
		t.Errorf("ConfigNames = %v, want %v", got, want)
	}
}

func TestSnapshotEmpty(t *testing.T) {
	snap := BuildSnapshot(nil, nil, nil)

	if snap.Connected() {
		t.Error("empty snapshot should not report connected")
	}
	if snap.HasTarget() {
		t.Error("empty snapshot should not report a connect target")
	}
	if _, ok := snap.PrimaryName(); ok {
		t.Error("empty snapshot should have no primary name")
	}
}

func TestSnapshotHasTarget(t *testing.T) {
	if !BuildSnapshot(nil, []ServiceEntry{{Name: "WG Home", State: "Disconnected"}}, nil).HasTarget() {
		t.Error("snapshot with an available service should have a target")
	}
	if !BuildSnapshot(nil, nil, []string{"home"}).HasTarget() {
		t.Error("snapshot with an on-disk config should have a target")
	}
}
