package validation

// Info is the append-only accumulator of validation messages. Insertion order
// is preserved and duplicates are kept. There is no removal operation.
//
// An Info is not safe for concurrent mutation; it is owned by a single entity
// and callers serialize access to that entity.
type Info struct {
	messages messages
}

func NewInfo() *Info {
	return &Info{}
}

// Add appends a message built from its parts.
func (i *Info) Add(severity Severity, code, description string) {
	i.messages = append(i.messages, NewMessage(severity, code, description))
}

func (i *Info) AddMessage(m Message) {
	i.messages = append(i.messages, m)
}

func (i *Info) AddInformation(code, description string) {
	i.Add(SeverityInformation, code, description)
}

func (i *Info) AddWarning(code, description string) {
	i.Add(SeverityWarning, code, description)
}

func (i *Info) AddError(code, description string) {
	i.Add(SeverityError, code, description)
}

// Messages returns a copy of the accumulated messages in insertion order.
func (i *Info) Messages() []Message {
	return i.messages.clone()
}

func (i *Info) Len() int { return len(i.messages) }

func (i *Info) IsValid() bool                { return i.messages.isValid() }
func (i *Info) HasValidationMessage() bool   { return len(i.messages) > 0 }
func (i *Info) HasErrorMessages() bool       { return i.messages.hasErrors() }
func (i *Info) HasWarningMessages() bool     { return i.messages.hasWarnings() }
func (i *Info) HasInformationMessages() bool { return i.messages.hasInformation() }

// DeepClone returns an Info whose message sequence can be mutated without
// affecting the receiver.
func (i *Info) DeepClone() *Info {
	return &Info{messages: i.messages.clone()}
}
