// Package wireguard provides tunnel status collection and connect/disconnect
// orchestration for WireGuard on macOS.
// This file contains the administrator-privilege escalation wrapper.
package wireguard

import (
	"fmt"
	"strings"
)

// shellQuote wraps a token in single quotes for /bin/sh, escaping embedded
// single quotes. Tunnel names come from local config filenames but are
// still quoted as untrusted input; a shell metacharacter in a name must
// never change the command.
func shellQuote(token string) string {
	return "'" + strings.ReplaceAll(token, "'", `'\''`) + "'"
}

// appleScriptQuote escapes a string for embedding in an AppleScript
// double-quoted string literal.
func appleScriptQuote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}

// elevatedScript builds the AppleScript source that re-runs the command
// with administrator privileges.
func elevatedScript(name string, args ...string) string {
	tokens := make([]string, 0, len(args)+1)
	tokens = append(tokens, shellQuote(name))
	for _, arg := range args {
		tokens = append(tokens, shellQuote(arg))
	}
	command := strings.Join(tokens, " ")
	return fmt.Sprintf(`do shell script "%s" with administrator privileges`, appleScriptQuote(command))
}

// runElevated re-runs a failed command through osascript with an
// administrator prompt. Exit code zero from osascript reflects the
// wrapped command's success; a cancelled prompt surfaces as an ordinary
// nonzero exit.
func (m *Manager) runElevated(name string, args ...string) (*Result, error) {
	return m.runner.Run("osascript", "-e", elevatedScript(name, args...))
}
