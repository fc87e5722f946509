package installer

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
)

// A Notification is advice for the user. It never means the
// install failed.
type Notification struct {
	ID       string                `json:"id"`
	Severity Severity              `json:"severity"`
	Title    string                `json:"title"`
	Message  string                `json:"message"`
	Actions  []*NotificationAction `json:"actions"`
}

type NotificationAction struct {
	Title string `json:"title"`
	// Called when the user picks this action
	Invoke func() error `json:"-"`
}

type NotificationSink struct {
	Append func(n *Notification) error
}

func (ns *NotificationSink) PostNotification(n *Notification) error {
	if ns == nil || ns.Append == nil {
		return nil
	}

	if n.Severity == "" {
		n.Severity = SeverityInfo
	}
	return ns.Append(n)
}
