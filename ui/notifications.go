package ui

import (
	"fmt"

	"wg-menubar/common"
	"wg-menubar/wireguard"
)

// OSANotifier posts macOS user notifications through osascript.
// It implements common.Notifier.
type OSANotifier struct {
	runner wireguard.Runner
}

// NewNotifier creates a notifier. A nil runner uses the default one.
func NewNotifier(runner wireguard.Runner) *OSANotifier {
	if runner == nil {
		runner = &wireguard.CommandRunner{}
	}
	return &OSANotifier{runner: runner}
}

// Notify displays a notification with the given title and message.
func (n *OSANotifier) Notify(title, message string) error {
	script := fmt.Sprintf(`display notification "%s" with title "%s"`,
		escapeAppleScript(message), escapeAppleScript(title))

	result, err := n.runner.Run("osascript", "-e", script)
	if err != nil {
		common.LogWarn("Failed to launch osascript for notification: %v", err)
		return err
	}
	if result.ExitCode != 0 {
		common.LogWarn("Notification failed: %s", result.Stderr)
		return fmt.Errorf("osascript exited with code %d", result.ExitCode)
	}
	return nil
}

// escapeAppleScript escapes a string for use inside an AppleScript
// double-quoted literal.
func escapeAppleScript(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' || s[i] == '"' {
			out = append(out, '\\')
		}
		out = append(out, s[i])
	}
	return string(out)
}
