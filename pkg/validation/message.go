// Package validation holds the validation message model shared by entities,
// inputs and validators: a severity-tagged message, the mutable accumulator an
// entity owns, and the read-only result a rule evaluation returns.
package validation

// Severity classifies a validation message. Only SeverityError affects validity.
type Severity string

const (
	SeverityInformation Severity = "information"
	SeverityWarning     Severity = "warning"
	SeverityError       Severity = "error"
)

func (s Severity) String() string { return string(s) }

// Message is one finding produced by applying a rule. It is immutable once built.
type Message struct {
	severity    Severity
	code        string
	description string
}

func NewMessage(severity Severity, code, description string) Message {
	return Message{severity: severity, code: code, description: description}
}

func (m Message) Severity() Severity  { return m.severity }
func (m Message) Code() string        { return m.code }
func (m Message) Description() string { return m.description }
func (m Message) IsError() bool       { return m.severity == SeverityError }
func (m Message) IsWarning() bool     { return m.severity == SeverityWarning }
func (m Message) IsInformation() bool { return m.severity == SeverityInformation }

// messages is the ordered sequence behind Info and Result. Every aggregate
// query is derived on read so it can never drift from the contents.
type messages []Message

func (ms messages) any(pred func(Message) bool) bool {
	for _, m := range ms {
		if pred(m) {
			return true
		}
	}
	return false
}

func (ms messages) isValid() bool        { return !ms.any(Message.IsError) }
func (ms messages) hasErrors() bool      { return ms.any(Message.IsError) }
func (ms messages) hasWarnings() bool    { return ms.any(Message.IsWarning) }
func (ms messages) hasInformation() bool { return ms.any(Message.IsInformation) }

func (ms messages) clone() messages {
	if ms == nil {
		return nil
	}
	out := make(messages, len(ms))
	copy(out, ms)
	return out
}
