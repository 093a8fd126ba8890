// Package ui holds the message log, the one-way narration channel gameplay
// systems push into and the renderer reads back for display.
package ui

import (
	"glaive/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

// RMessageLog is the resource slot for the message log.
const RMessageLog ecs.ResourceType = 2

// Message is one line of narration with its display color.
type Message struct {
	Text  string
	Color tcell.Color
}

// MessageLog stores game messages with colors and supports scrolling back
// through history. Oldest messages are dropped past the capacity.
type MessageLog struct {
	messages []Message
	capacity int
	scroll   int // lines scrolled up from the bottom
}

// NewMessageLog creates a log holding at most capacity messages.
func NewMessageLog(capacity int) *MessageLog {
	if capacity <= 0 {
		capacity = 200
	}
	return &MessageLog{capacity: capacity}
}

func (*MessageLog) ResourceType() ecs.ResourceType { return RMessageLog }

// Add appends a message and snaps the view back to the bottom.
func (l *MessageLog) Add(text string, color tcell.Color) {
	l.messages = append(l.messages, Message{Text: text, Color: color})
	if len(l.messages) > l.capacity {
		l.messages = l.messages[len(l.messages)-l.capacity:]
	}
	l.scroll = 0
}

// AddInfo appends a light-blue informational message.
func (l *MessageLog) AddInfo(text string) { l.Add(text, tcell.ColorLightBlue) }

// AddCombat appends a red combat message.
func (l *MessageLog) AddCombat(text string) { l.Add(text, tcell.ColorRed) }

// AddWarning appends a yellow warning message.
func (l *MessageLog) AddWarning(text string) { l.Add(text, tcell.ColorYellow) }

// AddSuccess appends a green success message.
func (l *MessageLog) AddSuccess(text string) { l.Add(text, tcell.ColorGreen) }

// Len returns the number of retained messages.
func (l *MessageLog) Len() int { return len(l.messages) }

// Visible returns up to n messages for display, oldest first, honoring the
// scroll offset.
func (l *MessageLog) Visible(n int) []Message {
	if n <= 0 || len(l.messages) == 0 {
		return nil
	}
	end := len(l.messages) - l.scroll
	if end > len(l.messages) {
		end = len(l.messages)
	}
	if end < 0 {
		end = 0
	}
	start := end - n
	if start < 0 {
		start = 0
	}
	return l.messages[start:end]
}

// ScrollUp moves the view one line toward older messages.
func (l *MessageLog) ScrollUp() {
	if l.scroll < len(l.messages)-1 {
		l.scroll++
	}
}

// ScrollDown moves the view one line toward the newest message.
func (l *MessageLog) ScrollDown() {
	if l.scroll > 0 {
		l.scroll--
	}
}
