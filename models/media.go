package models

// MediaAsset is an uploaded source file referenced by timelines.
type MediaAsset struct {
	ProjectID  string                 `json:"project_id,omitempty"`
	UserID     string                 `json:"user_id"`
	Kind       string                 `json:"kind"` // video, audio, image
	Filename   string                 `json:"filename"`
	URL        string                 `json:"url"`
	DurationMs int                    `json:"duration_ms,omitempty"`
	Meta       map[string]interface{} `json:"meta"`
}

// ValidAssetKind reports whether kind names a supported asset class.
func ValidAssetKind(kind string) bool {
	switch kind {
	case "video", "audio", "image":
		return true
	}
	return false
}
