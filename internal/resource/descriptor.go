package resource

import (
	"fmt"
	"net/url"
	"strings"
)

// Descriptor is the schema of one resource screen: its routes, backend paths and fields.
type Descriptor struct {
	// Name is the lower-case resource segment, e.g. "hotel".
	Name string
	// Title is the capitalized form used in backend paths and labels, e.g. "Hotel".
	Title   string
	IDField string
	Heading string
	Fields  []Field
}

func (d Descriptor) Route() string {
	return "/" + d.Name
}

func (d Descriptor) CollectionPath() string {
	return "/" + d.Name
}

func (d Descriptor) CreatePath() string {
	return "/create" + d.Title
}

func (d Descriptor) UpdatePath(id string) string {
	return fmt.Sprintf("/update%s/%s", d.Title, url.PathEscape(id))
}

func (d Descriptor) DeletePath(id string) string {
	return fmt.Sprintf("/delete%s/%s", d.Title, url.PathEscape(id))
}

func (d Descriptor) Field(name string) (Field, bool) {
	for _, f := range d.Fields {
		if f.Name == name {
			return f, true
		}
	}

	return Field{}, false
}

// NewDraft returns an empty record holding only field defaults.
func (d Descriptor) NewDraft() Record {
	draft := make(Record, len(d.Fields))

	for _, f := range d.Fields {
		switch {
		case f.Default != nil:
			draft[f.Name] = f.Default
		case f.Kind == KindCheckbox:
			draft[f.Name] = false
		default:
			draft[f.Name] = ""
		}
	}

	return draft
}

func (d Descriptor) MissingFieldsAlert() string {
	return fmt.Sprintf("Please fill in all the fields before adding a %s.", d.Name)
}

func (d Descriptor) ConfirmDeletePrompt() string {
	return fmt.Sprintf("Are you sure you want to delete this %s?", d.Name)
}

func (d Descriptor) AddTitle() string {
	return "Add New " + d.Title
}

func (d Descriptor) EditTitle() string {
	return "Edit " + d.Title
}

func (d Descriptor) AddLabel() string {
	return "Add " + d.Title
}

func (d Descriptor) UpdateLabel() string {
	return "Update " + d.Title
}

func (d Descriptor) ListTitle() string {
	return d.Title + " List"
}

// Validate reports schema mistakes that would break the panel at runtime.
func (d Descriptor) Validate() error {
	if d.Name == "" || d.Title == "" || d.IDField == "" {
		return fmt.Errorf("resource descriptor %q: name, title and id field are required", d.Name)
	}

	if !strings.EqualFold(d.Name, d.Title) {
		return fmt.Errorf("resource descriptor %q: title %q must capitalize the name", d.Name, d.Title)
	}

	seen := make(map[string]struct{}, len(d.Fields))
	for _, f := range d.Fields {
		if f.Name == d.IDField {
			return fmt.Errorf("resource descriptor %q: identity %q cannot be a form field", d.Name, f.Name)
		}

		if _, ok := seen[f.Name]; ok {
			return fmt.Errorf("resource descriptor %q: duplicate field %q", d.Name, f.Name)
		}

		seen[f.Name] = struct{}{}
	}

	return nil
}
