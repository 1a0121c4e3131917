package game

import (
	"fmt"

	"github.com/chronic-echo/chronic_echo/internal/dialogue"
)

// MsgPriority controls the color of a message in the log.
type MsgPriority uint8

const (
	MsgInfo    MsgPriority = iota // cyan
	MsgWarning                    // yellow
	MsgDanger                     // red
	MsgReward                     // green
	MsgSpeech                     // white
)

// logWidth is the width of the log strip at the bottom of the screen.
const logWidth = 30

// Message is a single entry in the log.
type Message struct {
	Text     string
	Priority MsgPriority
}

// MessageLog is a bounded FIFO of messages.
type MessageLog struct {
	Messages []Message
	maxSize  int
}

// NewMessageLog creates a log that keeps the most recent maxSize lines.
func NewMessageLog(maxSize int) *MessageLog {
	return &MessageLog{
		Messages: make([]Message, 0, maxSize),
		maxSize:  maxSize,
	}
}

// Add appends a message, wrapped to the log width, evicting the oldest
// lines when full.
func (l *MessageLog) Add(text string, priority MsgPriority) {
	for _, line := range dialogue.Wrap(text, logWidth) {
		msg := Message{Text: line, Priority: priority}
		if len(l.Messages) >= l.maxSize {
			copy(l.Messages, l.Messages[1:])
			l.Messages[len(l.Messages)-1] = msg
		} else {
			l.Messages = append(l.Messages, msg)
		}
	}
}

// Addf formats and appends a message.
func (l *MessageLog) Addf(priority MsgPriority, format string, args ...any) {
	l.Add(fmt.Sprintf(format, args...), priority)
}

// Recent returns the last n lines (or fewer if the log is shorter).
func (l *MessageLog) Recent(n int) []Message {
	if n > len(l.Messages) {
		n = len(l.Messages)
	}
	return l.Messages[len(l.Messages)-n:]
}

// Clear drops every line.
func (l *MessageLog) Clear() {
	l.Messages = l.Messages[:0]
}
