//go:build windows

package platform

import (
	"fmt"
	"os/exec"
	"strings"
)

func psQuote(s string) string {
	escaped := strings.ReplaceAll(s, "'", "''")
	return "'" + escaped + "'"
}

// toastScript builds the PowerShell that shows one toast.
func toastScript(title, body string, opts Options) string {
	icon := strings.TrimSpace(opts.IconPath)
	layout := "ToastText02"
	if icon != "" {
		layout = "ToastImageAndText02"
	}
	var b strings.Builder
	b.WriteString(`[Windows.UI.Notifications.ToastNotificationManager, Windows.UI.Notifications, ContentType=Windows Runtime] > $null; `)
	fmt.Fprintf(&b, `$template = [Windows.UI.Notifications.ToastNotificationManager]::GetTemplateContent([Windows.UI.Notifications.ToastTemplateType]::%s); `, layout)
	b.WriteString(`$texts = $template.GetElementsByTagName("text"); `)
	fmt.Fprintf(&b, `$texts.Item(0).AppendChild($template.CreateTextNode(%s)) > $null; `, psQuote(title))
	fmt.Fprintf(&b, `$texts.Item(1).AppendChild($template.CreateTextNode(%s)) > $null; `, psQuote(body))
	if icon != "" {
		fmt.Fprintf(&b, `$template.GetElementsByTagName("image").Item(0).SetAttribute("src", %s); `, psQuote(icon))
	}
	b.WriteString(`$toast = [Windows.UI.Notifications.ToastNotification]::new($template); `)
	if opts.Transient {
		b.WriteString(`$toast.ExpirationTime = [DateTimeOffset]::Now.AddSeconds(10); `)
	}
	fmt.Fprintf(&b, `[Windows.UI.Notifications.ToastNotificationManager]::CreateToastNotifier(%s).Show($toast);`, psQuote(AppName))
	return b.String()
}

// Notify displays a toast through the Windows notification center.
func Notify(title, body string, opts Options) error {
	return exec.Command("powershell.exe", "-NoProfile", "-Command", toastScript(title, body, opts)).Run()
}
