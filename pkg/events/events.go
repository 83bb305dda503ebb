package events

import "time"

// Envelope is the wire format delivered to every preview subscriber.
// Data is forwarded verbatim from the sender; the hub never inspects it.
type Envelope struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
	Ts   string      `json:"ts"`
}

// NewPreviewEvent wraps an arbitrary payload in an Envelope with a
// server-assigned UTC timestamp.
func NewPreviewEvent(data interface{}) Envelope {
	return Envelope{
		Type: "event",
		Data: data,
		Ts:   time.Now().UTC().Format(time.RFC3339Nano),
	}
}

// RenderQueued is broadcast to a project's preview subscribers when a render
// job is accepted. Intentionally small and versionable; changes should be
// additive.
type RenderQueued struct {
	Type      string `json:"type"`
	JobID     string `json:"jobId"`
	ProjectID string `json:"projectId"`
}
