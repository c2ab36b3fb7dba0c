//go:build darwin

package platform

import (
	"fmt"
	"os/exec"
	"strings"
)

var appleQuoter = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func appleQuote(s string) string {
	return `"` + appleQuoter.Replace(s) + `"`
}

// Notify posts to Notification Center through osascript. Icons and the
// transient flag have no AppleScript equivalent.
func Notify(title, body string, opts Options) error {
	script := fmt.Sprintf("display notification %s with title %s", appleQuote(body), appleQuote(title))
	if out, err := exec.Command("osascript", "-e", script).CombinedOutput(); err != nil {
		return fmt.Errorf("osascript: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}
