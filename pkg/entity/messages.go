package entity

import "domainkit/pkg/validation"

// The Add methods are the only way to change an entity's validation messages.
// Merges keep the source messages' severity, code, description and order.

func (b *Base) AddInformationMessage(code, description string) {
	b.validationInfo.AddInformation(code, description)
}

func (b *Base) AddWarningMessage(code, description string) {
	b.validationInfo.AddWarning(code, description)
}

func (b *Base) AddErrorMessage(code, description string) {
	b.validationInfo.AddError(code, description)
}

func (b *Base) AddMessage(m validation.Message) {
	b.validationInfo.AddMessage(m)
}

func (b *Base) AddFromValidationResult(r validation.Result) {
	for _, m := range r.Messages() {
		b.validationInfo.AddMessage(m)
	}
}

func (b *Base) AddFromValidationInfo(info *validation.Info) {
	if info == nil {
		return
	}
	for _, m := range info.Messages() {
		b.validationInfo.AddMessage(m)
	}
}

// Validate runs a rule evaluation, appends every message it returns (of any
// severity) and reports the entity's overall validity afterwards. Successive
// calls build up one cumulative message set.
func (b *Base) Validate(handle func() validation.Result) bool {
	b.AddFromValidationResult(handle())
	return b.validationInfo.IsValid()
}

// ValidateInfo is Validate for producers that return an accumulator.
func (b *Base) ValidateInfo(handle func() *validation.Info) bool {
	b.AddFromValidationInfo(handle())
	return b.validationInfo.IsValid()
}
