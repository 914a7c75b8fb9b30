package views

import (
	"github.com/aretw0/canopy/pkg/dsl"
	"github.com/aretw0/canopy/pkg/widget"
)

// NotificationKind selects the color scheme and icon of a notification.
type NotificationKind string

const (
	NotifySuccess NotificationKind = "success"
	NotifyError   NotificationKind = "error"
	NotifyWarning NotificationKind = "warning"
	NotifyInfo    NotificationKind = "info"
)

type notifyScheme struct {
	background string
	icon       string
	iconColor  string
	text       string
}

var notifySchemes = map[NotificationKind]notifyScheme{
	NotifySuccess: {"#f0fdf4", "check-circle", "#16a34a", "#15803d"},
	NotifyError:   {"#fef2f2", "x-circle", "#dc2626", "#dc2626"},
	NotifyWarning: {"#fffbeb", "exclamation-triangle", "#d97706", "#92400e"},
	NotifyInfo:    {"#eff6ff", "information-circle", "#2563eb", "#1d4ed8"},
}

// Notification renders a titled message card. Unknown kinds fall back to the
// info scheme. Optional action nodes are rendered in a trailing row.
func Notification(kind NotificationKind, title, message string, actions ...widget.Node) widget.Node {
	scheme, ok := notifySchemes[kind]
	if !ok {
		kind = NotifyInfo
		scheme = notifySchemes[NotifyInfo]
	}

	body := dsl.Col().Gap("sm").Flex(1).Children(
		dsl.Title(title).Size("lg").Color(scheme.text).Weight("bold"),
		dsl.Text(message).Size("sm").Color(scheme.text),
	)
	if len(actions) > 0 {
		body.ChildNodes(dsl.Row().Gap("sm").ChildNodes(actions...).Build())
	}

	return dsl.Card("notification-"+string(kind)).Size("md").Theme("light").
		Background(scheme.background).Padding("lg").Radius("lg").Children(
		dsl.Row().Gap("md").Align("start").Children(
			dsl.Icon(scheme.icon).Color(scheme.iconColor).Size("xl"),
			body,
		),
	).Build()
}
