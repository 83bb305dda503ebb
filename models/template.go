package models

// Template is a prebuilt project starting point.
type Template struct {
	Key         string   `json:"key"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	AspectRatio string   `json:"aspect_ratio"`
	Timeline    Timeline `json:"timeline"`
}
