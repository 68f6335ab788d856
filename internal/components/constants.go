package components

import "time"

// UI component constants
const (
	// MaxVisibleSnippets is the number of picker rows shown before scrolling
	MaxVisibleSnippets = 8

	// StatusBarDisplayDuration is how long status messages stay visible
	// before clearing automatically
	StatusBarDisplayDuration = 5 * time.Second

	// PreviewLength caps the preview of the text about to be copied
	PreviewLength = 60
)
