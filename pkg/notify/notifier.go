package notify

import (
	"reelkit-api/pkg/events"
	"reelkit-api/websocket"
)

// Notifier is the minimal surface HTTP handlers use to push preview events
// to a project's live subscribers.
type Notifier interface {
	NotifyProject(projectID string, payload interface{})
}

// WSNotifier implements Notifier on top of the preview Hub.
type WSNotifier struct {
	Hub *websocket.Hub
}

// NotifyProject wraps the payload in a preview envelope and broadcasts it.
// Delivery is best-effort; a nil notifier or hub is a no-op.
func (n *WSNotifier) NotifyProject(projectID string, payload interface{}) {
	if n == nil || n.Hub == nil {
		return
	}
	n.Hub.Broadcast(projectID, events.NewPreviewEvent(payload))
}
