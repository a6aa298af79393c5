package pulselog

import "fmt"

// Message is a log message source: either a literal or a deferred producer.
// Producers run only when the level is enabled.
type Message struct {
	text   string
	fn     func() string
	format string
	args   []any
	kind   msgKind
}

type msgKind uint8

const (
	msgNone msgKind = iota
	msgText
	msgFunc
	msgFormat
)

// Text wraps a literal message.
func Text(s string) Message { return Message{text: s, kind: msgText} }

// Lazy wraps a producer. A nil fn yields an empty Message.
func Lazy(fn func() string) Message {
	if fn == nil {
		return Message{}
	}
	return Message{fn: fn, kind: msgFunc}
}

// Lazyf defers fmt.Sprintf until the message is known to be emitted.
func Lazyf(format string, args ...any) Message {
	return Message{format: format, args: args, kind: msgFormat}
}

// IsZero reports whether m carries neither a literal nor a producer.
func (m Message) IsZero() bool { return m.kind == msgNone }

func (m Message) resolve() (string, bool) {
	switch m.kind {
	case msgText:
		return m.text, true
	case msgFunc:
		return m.fn(), true
	case msgFormat:
		return fmt.Sprintf(m.format, m.args...), true
	default:
		return "", false
	}
}
