package types

import (
	"github.com/renato0307/yank/internal/copystatus"
)

// Snippet is a named piece of text offered by the picker
type Snippet struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// Title returns the name, or the first line of the content when unnamed
func (s Snippet) Title() string {
	if s.Name != "" {
		return s.Name
	}
	for i, r := range s.Content {
		if r == '\n' {
			return s.Content[:i]
		}
	}
	return s.Content
}

// MessageType defines the type of status message
type MessageType int

const (
	MessageTypeInfo MessageType = iota
	MessageTypeSuccess
	MessageTypeError
)

// StatusMsg asks the app to show a message in the status bar
type StatusMsg struct {
	Message string
	Type    MessageType
}

// ClearStatusMsg clears the status bar if Seq still matches the message shown
type ClearStatusMsg struct {
	Seq int
}

// CopyStatusMsg is delivered when a copy controller changes status,
// including when its reset timer fires
type CopyStatusMsg struct {
	Status copystatus.Status
}

// InfoMsg creates an info status message
func InfoMsg(message string) StatusMsg {
	return StatusMsg{Message: message, Type: MessageTypeInfo}
}

// SuccessMsg creates a success status message
func SuccessMsg(message string) StatusMsg {
	return StatusMsg{Message: message, Type: MessageTypeSuccess}
}

// ErrorStatusMsg creates an error status message
func ErrorStatusMsg(message string) StatusMsg {
	return StatusMsg{Message: message, Type: MessageTypeError}
}
