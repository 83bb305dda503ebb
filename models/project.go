package models

// TrackItem is a single element placed on a timeline track.
type TrackItem struct {
	ID        string                 `json:"id"`
	Type      string                 `json:"type"` // clip, audio, image, title, effect
	Src       string                 `json:"src,omitempty"`
	StartMs   int                    `json:"start_ms"`
	EndMs     int                    `json:"end_ms"`
	Transform map[string]interface{} `json:"transform"`
	Params    map[string]interface{} `json:"params"`
}

// Timeline holds the editable track layout of a project.
type Timeline struct {
	FPS        int                    `json:"fps"`
	Width      int                    `json:"width"`
	Height     int                    `json:"height"`
	DurationMs int                    `json:"duration_ms"`
	Tracks     map[string][]TrackItem `json:"tracks"`
}

// NewTimeline returns a timeline with the default editing canvas and the four
// named track lanes the frontend expects.
func NewTimeline() Timeline {
	return Timeline{
		FPS:    30,
		Width:  1920,
		Height: 1080,
		Tracks: map[string][]TrackItem{
			"video":   {},
			"audio":   {},
			"titles":  {},
			"effects": {},
		},
	}
}

// Project is a single video-editing workspace owned by a user.
type Project struct {
	UserID      string   `json:"user_id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	AspectRatio string   `json:"aspect_ratio"` // 16:9, 9:16, 1:1
	Timeline    Timeline `json:"timeline"`
	CoverURL    string   `json:"cover_url,omitempty"`
	Template    string   `json:"template,omitempty"`
}
