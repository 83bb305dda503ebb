package models

// Render job statuses. Jobs are created queued and, in this environment,
// stay there: no worker ever advances them.
const (
	JobStatusQueued     = "queued"
	JobStatusProcessing = "processing"
	JobStatusPreview    = "preview"
	JobStatusCompleted  = "completed"
	JobStatusFailed     = "failed"
)

// RenderJob is a queued export or generation request.
type RenderJob struct {
	UserID      string                 `json:"user_id"`
	ProjectID   string                 `json:"project_id,omitempty"`
	Status      string                 `json:"status"`
	Resolution  string                 `json:"resolution"`   // 720p, 1080p, 4K
	AspectRatio string                 `json:"aspect_ratio"` // 16:9, 9:16, 1:1
	OutputURL   string                 `json:"output_url,omitempty"`
	Logs        []string               `json:"logs"`
	Params      map[string]interface{} `json:"params"`
}
