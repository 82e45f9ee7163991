// Package message carries user-visible game text from the rules engines to
// whatever front end is displaying it.
package message

//go:generate mockgen -destination=mock/mock_sink.go -package=mockmessage -source=message.go

import (
	"sync"

	"go.uber.org/zap"
)

// Channel tags a message with its category.
type Channel int

const (
	Plain Channel = iota
	Prompt
	Sound
	Duration
	Warning
	God
)

// String returns the channel's lower-case name.
func (c Channel) String() string {
	switch c {
	case Plain:
		return "plain"
	case Prompt:
		return "prompt"
	case Sound:
		return "sound"
	case Duration:
		return "duration"
	case Warning:
		return "warning"
	case God:
		return "god"
	default:
		return "unknown"
	}
}

// Sink accepts fire-and-forget user-visible messages.
type Sink interface {
	Emit(text string, ch Channel)
}

// Message is one emitted line.
type Message struct {
	Text    string
	Channel Channel
}

// DefaultCapacity is the number of messages a Log retains when none is given.
const DefaultCapacity = 256

// Log is a Sink that keeps the most recent messages and mirrors each one to a
// zap logger at debug level. It is safe for concurrent use.
type Log struct {
	mu       sync.Mutex
	messages []Message
	capacity int
	logger   *zap.Logger
}

// NewLog creates a Log retaining up to capacity messages.
//
// Precondition: logger must be non-nil.
// Postcondition: capacity <= 0 is replaced by DefaultCapacity.
func NewLog(capacity int, logger *zap.Logger) *Log {
	if logger == nil {
		panic("message: NewLog precondition violated: logger must be non-nil")
	}
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Log{capacity: capacity, logger: logger}
}

// Emit appends a message, dropping the oldest when full.
func (l *Log) Emit(text string, ch Channel) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.messages) == l.capacity {
		copy(l.messages, l.messages[1:])
		l.messages = l.messages[:len(l.messages)-1]
	}
	l.messages = append(l.messages, Message{Text: text, Channel: ch})
	l.logger.Debug("message", zap.String("text", text), zap.Stringer("channel", ch))
}

// Messages returns a copy of the retained messages, oldest first.
func (l *Log) Messages() []Message {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Message, len(l.messages))
	copy(out, l.messages)
	return out
}

// Texts returns only the text of each retained message, oldest first.
func (l *Log) Texts() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.messages))
	for i, m := range l.messages {
		out[i] = m.Text
	}
	return out
}

// Reset discards all retained messages.
func (l *Log) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages = l.messages[:0]
}
