package validation

// Result is the read-only outcome of one rule evaluation pass: the messages of
// every failing rule, in rule order.
type Result struct {
	messages messages
}

func NewResult(ms ...Message) Result {
	return Result{messages: messages(ms).clone()}
}

// Messages returns a copy of the result's messages.
func (r Result) Messages() []Message {
	return r.messages.clone()
}

func (r Result) Len() int { return len(r.messages) }

func (r Result) IsValid() bool                { return r.messages.isValid() }
func (r Result) HasValidationMessage() bool   { return len(r.messages) > 0 }
func (r Result) HasErrorMessages() bool       { return r.messages.hasErrors() }
func (r Result) HasWarningMessages() bool     { return r.messages.hasWarnings() }
func (r Result) HasInformationMessages() bool { return r.messages.hasInformation() }

// ToInfo copies the result into a fresh accumulator.
func (r Result) ToInfo() *Info {
	return &Info{messages: r.messages.clone()}
}
