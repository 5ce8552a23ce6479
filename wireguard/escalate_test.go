package wireguard

import "testing"

func TestShellQuote(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "home", "'home'"},
		{"with space", "my tunnel", "'my tunnel'"},
		{"embedded quote", "it's", `'it'\''s'`},
		{"command substitution stays inert", "$(reboot)", "'$(reboot)'"},
		{"empty", "", "''"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shellQuote(tt.in); got != tt.want {
				t.Errorf("shellQuote(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestAppleScriptQuote(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "wg-quick up home", "wg-quick up home"},
		{"double quotes", `say "hi"`, `say \"hi\"`},
		{"backslash", `a\b`, `a\\b`},
		{"backslash before quote", `\"`, `\\\"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := appleScriptQuote(tt.in); got != tt.want {
				t.Errorf("appleScriptQuote(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestElevatedScript(t *testing.T) {
	got := elevatedScript("/usr/local/bin/wg-quick", "up", "my tunnel")
	want := `do shell script "'/usr/local/bin/wg-quick' 'up' 'my tunnel'" with administrator privileges`
	if got != want {
		t.Errorf("elevatedScript() = %q, want %q", got, want)
	}
}

func TestElevatedScriptQuotesHostileName(t *testing.T) {
	got := elevatedScript("/bin/wg-quick", "down", "x; rm -rf /")
	want := `do shell script "'/bin/wg-quick' 'down' 'x; rm -rf /'" with administrator privileges`
	if got != want {
		t.Errorf("elevatedScript() = %q, want %q", got, want)
	}
}
