package domain

import (
	"time"
)

type Sender string

const (
	SenderUser   Sender = "user"
	SenderSystem Sender = "elliot"
)

// Message is one entry of the dialogue history.
type Message struct {
	Sender    Sender    `json:"sender"`
	Text      string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// NewMessage builds a message stamped at millisecond precision in UTC, the
// same resolution the persisted JSON carries.
func NewMessage(sender Sender, text string, at time.Time) Message {
	return Message{
		Sender:    sender,
		Text:      text,
		Timestamp: Stamp(at),
	}
}

// Stamp normalizes t to UTC milliseconds without a monotonic reading.
func Stamp(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}

// DialogueHistory is ordered oldest first.
type DialogueHistory []Message
