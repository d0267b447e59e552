package panel

import (
	"hoteladmin/internal/resource"
	"strconv"
)

const rowKeyPrefix = "row-"

type Column struct {
	Name   string `json:"name"`
	Header string `json:"header"`
}

// Row is one listed record. ID is empty when the record carries no identity;
// such rows cannot be edited or deleted.
type Row struct {
	Key   string   `json:"key"`
	ID    string   `json:"id,omitempty"`
	Cells []string `json:"cells"`
}

// ListView is the table of listed records, in backend order.
type ListView struct {
	Title   string   `json:"title"`
	Columns []Column `json:"columns"`
	Rows    []Row    `json:"rows"`
	Loaded  bool     `json:"loaded"`
}

type Input struct {
	Name     string        `json:"name"`
	Label    string        `json:"label"`
	Kind     resource.Kind `json:"kind"`
	Required bool          `json:"required"`
	Min      string        `json:"min,omitempty"`
	Max      string        `json:"max,omitempty"`
	Step     string        `json:"step,omitempty"`
	Value    string        `json:"value"`
	Checked  bool          `json:"checked,omitempty"`
}

// ModalForm is the add/edit dialog. It is visible only while a form is open.
type ModalForm struct {
	Visible     bool    `json:"visible"`
	Mode        Mode    `json:"mode"`
	Title       string  `json:"title,omitempty"`
	SubmitLabel string  `json:"submitLabel,omitempty"`
	Inputs      []Input `json:"inputs"`
}

type View struct {
	Resource      string    `json:"resource"`
	Title         string    `json:"title"`
	Heading       string    `json:"heading"`
	AddLabel      string    `json:"addLabel"`
	ConfirmPrompt string    `json:"confirmPrompt"`
	List          ListView  `json:"list"`
	Form          ModalForm `json:"form"`
}

// Render builds the screen for a state. Dates render in the given locale.
func Render(desc resource.Descriptor, state State, locale string) View {
	return View{
		Resource:      desc.Name,
		Title:         desc.Title,
		Heading:       desc.Heading,
		AddLabel:      desc.AddLabel(),
		ConfirmPrompt: desc.ConfirmDeletePrompt(),
		List:          listView(desc, state, locale),
		Form:          modalForm(desc, state.Form),
	}
}

func listView(desc resource.Descriptor, state State, locale string) ListView {
	columns := make([]Column, 0, len(desc.Fields))
	for _, field := range desc.Fields {
		columns = append(columns, Column{Name: field.Name, Header: field.Header()})
	}

	rows := make([]Row, 0, len(state.Records))
	for i, record := range state.Records {
		id, ok := record.ID(desc.IDField)

		key := id
		if !ok {
			key = rowKeyPrefix + strconv.Itoa(i)
		}

		cells := make([]string, 0, len(desc.Fields))
		for _, field := range desc.Fields {
			cells = append(cells, field.Display(record[field.Name], locale))
		}

		rows = append(rows, Row{Key: key, ID: id, Cells: cells})
	}

	return ListView{
		Title:   desc.ListTitle(),
		Columns: columns,
		Rows:    rows,
		Loaded:  state.Loaded,
	}
}

func modalForm(desc resource.Descriptor, form FormState) ModalForm {
	modal := ModalForm{
		Visible: form.Open(),
		Mode:    form.Mode(),
		Inputs:  []Input{},
	}

	switch form.Mode() {
	case ModeAdding:
		modal.Title = desc.AddTitle()
		modal.SubmitLabel = desc.AddLabel()
	case ModeEditing:
		modal.Title = desc.EditTitle()
		modal.SubmitLabel = desc.UpdateLabel()
	default:
		return modal
	}

	for _, field := range desc.Fields {
		value := form.draft[field.Name]

		input := Input{
			Name:     field.Name,
			Label:    field.Label,
			Kind:     field.Kind,
			Required: field.Required,
			Min:      field.Min,
			Max:      field.Max,
			Step:     field.Step,
			Value:    field.InputValue(value),
		}

		if field.Kind == resource.KindCheckbox {
			input.Checked = resource.Truthy(value)
		}

		modal.Inputs = append(modal.Inputs, input)
	}

	return modal
}
