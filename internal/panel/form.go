package panel

import (
	"fmt"
	"hoteladmin/internal/resource"
	"hoteladmin/shared/failure"
	"hoteladmin/shared/validator"
)

const (
	alertNoForm = "There is no open form."
)

// change writes one raw input value into the open draft.
func (f *FormState) change(desc resource.Descriptor, name, raw string) Result {
	if !f.Open() {
		return Block(alertNoForm, failure.Conflict(alertNoForm))
	}

	if name == desc.IDField {
		msg := fmt.Sprintf("%s is assigned by the backend and cannot be edited", name)

		return Block(msg, failure.BadRequestFromString(msg))
	}

	field, ok := desc.Field(name)
	if !ok {
		msg := fmt.Sprintf("%s has no field %s", desc.Name, name)

		return Block(msg, failure.BadRequestFromString(msg))
	}

	value, err := field.Coerce(raw)
	if err != nil {
		return Block(err.Error(), err)
	}

	f.draft[name] = value

	return Done()
}

// checkDraft runs the create gate: every required field present, then the input constraints.
func checkDraft(desc resource.Descriptor, draft resource.Record) Result {
	for _, field := range desc.Fields {
		if field.Required && field.Empty(draft[field.Name]) {
			alert := desc.MissingFieldsAlert()

			return Block(alert, failure.BadRequestFromString(alert))
		}
	}

	for _, field := range desc.Fields {
		value := draft[field.Name]
		if field.Empty(value) {
			continue
		}

		rules := field.Rules()
		if rules == "" {
			continue
		}

		var subject any = resource.Text(value)
		if field.Kind == resource.KindNumber {
			n, ok := resource.Number(value)
			if !ok {
				msg := fmt.Sprintf("%s must be a number", field.Label)

				return Block(msg, failure.BadRequestFromString(msg))
			}

			subject = n
		}

		if err := validator.ValidateField(field.Label, subject, rules); err != nil {
			return Block(err.Error(), err)
		}
	}

	return Done()
}
