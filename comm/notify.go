package comm

import (
	"fmt"

	"github.com/itchio/modkit/installer"
)

// NewNotificationSink returns a sink that shows advisories to the user.
// In JSON mode they're sent as "notification" messages; otherwise,
// they're printed in a box. If invoke is true, the first action of
// each notification is carried out right away.
func NewNotificationSink(invoke bool) *installer.NotificationSink {
	return &installer.NotificationSink{
		Append: func(n *installer.Notification) error {
			showNotification(n)

			if invoke && len(n.Actions) > 0 {
				action := n.Actions[0]
				Opf("%s", action.Title)
				if err := action.Invoke(); err != nil {
					Warnf("%s: %v", action.Title, err)
				}
			}
			return nil
		},
	}
}

func showNotification(n *installer.Notification) {
	if settings.json {
		send("notification", jsonMessage{
			"notification": n,
		})
		return
	}

	lines := []string{n.Message}
	for _, action := range n.Actions {
		lines = append(lines, fmt.Sprintf("→ %s", action.Title))
	}
	Notice(fmt.Sprintf("[%s] %s", n.Severity, n.Title), lines)
}
