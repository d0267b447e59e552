package resource

import (
	"encoding/json"
	"fmt"
	"hoteladmin/shared/constant"
	"hoteladmin/shared/failure"
	"hoteladmin/shared/timezone"
	"math"
	"strconv"
	"strings"
)

// Kind is the input type a field is collected with.
type Kind string

const (
	KindText     Kind = "text"
	KindNumber   Kind = "number"
	KindDate     Kind = "date"
	KindTel      Kind = "tel"
	KindEmail    Kind = "email"
	KindCheckbox Kind = "checkbox"
)

const (
	defaultTrueText  = "Yes"
	defaultFalseText = "No"
)

type Field struct {
	Name  string
	Label string
	// Column overrides Label as the list header.
	Column   string
	Kind     Kind
	Required bool
	Min      string
	Max      string
	Step     string
	Default  any
	// TrueText and FalseText render checkbox cells.
	TrueText  string
	FalseText string
}

func (f Field) Header() string {
	if f.Column != "" {
		return f.Column
	}

	return f.Label
}

// Rules returns the validator tag enforcing the field's input constraints.
func (f Field) Rules() string {
	var rules []string

	switch f.Kind {
	case KindNumber:
		if f.Min != "" {
			rules = append(rules, "gte="+f.Min)
		}

		if f.Max != "" {
			rules = append(rules, "lte="+f.Max)
		}
	case KindEmail:
		rules = append(rules, "email")
	case KindDate:
		rules = append(rules, "datetime="+constant.DateLayout)
	}

	return strings.Join(rules, ",")
}

// Coerce converts raw form input into the value stored in a record.
func (f Field) Coerce(raw string) (any, error) {
	switch f.Kind {
	case KindCheckbox:
		return Truthy(raw), nil
	case KindNumber:
		raw = strings.TrimSpace(raw)
		if raw == constant.Empty {
			return constant.Empty, nil
		}

		n, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
			return nil, failure.BadRequestFromString(fmt.Sprintf("%s must be a number", f.Name)) //nolint:wrapcheck
		}

		// Keep the literal as typed so large integers survive exactly; only
		// spellings JSON cannot carry (".5", "+1", "0x10") are rewritten.
		if isJSONNumber(raw) {
			return json.Number(raw), nil
		}

		return json.Number(strconv.FormatFloat(n, 'f', -1, 64)), nil
	default:
		return raw, nil
	}
}

// Empty reports whether v fails the required gate. Checkbox fields always hold a value.
func (f Field) Empty(v any) bool {
	if f.Kind == KindCheckbox {
		return false
	}

	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == constant.Empty
	case json.Number:
		return val == constant.Empty
	default:
		return false
	}
}

// Display renders a stored value as list cell text.
func (f Field) Display(v any, locale string) string {
	if v == nil {
		return constant.Empty
	}

	switch f.Kind {
	case KindCheckbox:
		if Truthy(v) {
			return orDefault(f.TrueText, defaultTrueText)
		}

		return orDefault(f.FalseText, defaultFalseText)
	case KindDate:
		return timezone.FormatDate(Text(v), locale)
	default:
		return Text(v)
	}
}

// InputValue renders a stored value for a form input.
func (f Field) InputValue(v any) string {
	if v == nil {
		return constant.Empty
	}

	if f.Kind == KindDate {
		return timezone.DateInputValue(Text(v))
	}

	return Text(v)
}

// Number returns the numeric form of v, if it has one.
func Number(v any) (float64, bool) {
	switch val := v.(type) {
	case json.Number:
		n, err := val.Float64()

		return n, err == nil
	case float64:
		return val, true
	case int:
		return float64(val), true
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(val), 64)

		return n, err == nil
	default:
		return 0, false
	}
}

// Text renders a scalar value the way it appears on the wire.
func Text(v any) string {
	switch val := v.(type) {
	case nil:
		return constant.Empty
	case string:
		return val
	case json.Number:
		return val.String()
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// Truthy mirrors how form and JSON payloads spell a checked box.
func Truthy(v any) bool {
	switch val := v.(type) {
	case bool:
		return val
	case string:
		switch strings.ToLower(strings.TrimSpace(val)) {
		case "true", "on", "1", "yes":
			return true
		}

		return false
	default:
		n, ok := Number(v)

		return ok && n != 0
	}
}

func isJSONNumber(raw string) bool {
	if raw[0] != '-' && (raw[0] < '0' || raw[0] > '9') {
		return false
	}

	return json.Valid([]byte(raw))
}

func orDefault(value, fallback string) string {
	if value == constant.Empty {
		return fallback
	}

	return value
}
