package notify

import (
	"fmt"
	"strings"

	"github.com/godbus/dbus/v5"
	"github.com/hoppxi/iconify/internal/icons"
)

const (
	notificationsDest = "org.freedesktop.Notifications"
	notificationsPath = "/org/freedesktop/Notifications"
	notifyMethod      = notificationsDest + ".Notify"

	appName = "iconify"
	appIcon = "image-x-generic"
)

// Urgency hint values understood by freedesktop notification daemons.
const (
	UrgencyLow byte = iota
	UrgencyNormal
	UrgencyCritical
)

type Message struct {
	Summary string
	Body    string
	Urgency byte
}

// Summarize describes one watch batch. Failures raise the urgency.
func Summarize(r *icons.Report) Message {
	var names []string
	for _, res := range r.Converted {
		names = append(names, res.Component)
	}

	msg := Message{
		Summary: fmt.Sprintf("Converted %d icon(s)", len(r.Converted)),
		Body:    strings.Join(names, ", "),
		Urgency: UrgencyLow,
	}

	if len(r.Failed) > 0 {
		msg.Summary += fmt.Sprintf(", %d failed", len(r.Failed))
		var lines []string
		for _, err := range r.Failed {
			lines = append(lines, err.Error())
		}
		if msg.Body != "" {
			msg.Body += "\n"
		}
		msg.Body += strings.Join(lines, "\n")
		msg.Urgency = UrgencyCritical
	}

	return msg
}

// Send posts msg to the notification daemon on the session bus.
func Send(msg Message) (uint32, error) {
	bus, err := dbus.SessionBus()
	if err != nil {
		return 0, fmt.Errorf("failed to connect to session bus: %w", err)
	}

	hints := map[string]dbus.Variant{
		"urgency": dbus.MakeVariant(msg.Urgency),
	}

	var id uint32
	obj := bus.Object(notificationsDest, dbus.ObjectPath(notificationsPath))
	call := obj.Call(notifyMethod, 0,
		appName,
		uint32(0),
		appIcon,
		msg.Summary,
		msg.Body,
		[]string{},
		hints,
		int32(-1),
	)
	if call.Err != nil {
		return 0, fmt.Errorf("notify failed: %w", call.Err)
	}
	if err := call.Store(&id); err != nil {
		return 0, err
	}

	return id, nil
}
