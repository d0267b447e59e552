package panel

import (
	"encoding/json"
	"fmt"
	"hoteladmin/internal/resource"
)

// Mode tags which form, if any, is open.
type Mode string

const (
	ModeIdle    Mode = "idle"
	ModeAdding  Mode = "adding"
	ModeEditing Mode = "editing"
)

// FormState is the panel's form: idle, or open with a draft in a create or update mode.
// Only the constructors build it, so an open form always has a draft and an idle one never does.
type FormState struct {
	mode  Mode
	draft resource.Record
}

func Idle() FormState {
	return FormState{mode: ModeIdle}
}

func Adding(draft resource.Record) FormState {
	return FormState{mode: ModeAdding, draft: ownDraft(draft)}
}

func Editing(draft resource.Record) FormState {
	return FormState{mode: ModeEditing, draft: ownDraft(draft)}
}

func ownDraft(draft resource.Record) resource.Record {
	if draft == nil {
		return resource.Record{}
	}

	return draft.Clone()
}

func (f FormState) Mode() Mode {
	if f.mode == "" {
		return ModeIdle
	}

	return f.mode
}

func (f FormState) Open() bool {
	return f.Mode() != ModeIdle
}

// Draft returns a copy of the draft, nil when idle.
func (f FormState) Draft() resource.Record {
	return f.draft.Clone()
}

// State is everything a panel remembers between requests.
type State struct {
	Form    FormState
	Records []resource.Record
	// Loaded is false until the first list fetch succeeds.
	Loaded bool
}

func NewState() State {
	return State{Form: Idle(), Records: []resource.Record{}}
}

func (s State) Clone() State {
	records := make([]resource.Record, len(s.Records))
	for i, r := range s.Records {
		records[i] = r.Clone()
	}

	form := s.Form
	form.draft = s.Form.draft.Clone()

	return State{Form: form, Records: records, Loaded: s.Loaded}
}

type stateJSON struct {
	Mode    Mode              `json:"mode"`
	Draft   resource.Record   `json:"draft,omitempty"`
	Records []resource.Record `json:"records"`
	Loaded  bool              `json:"loaded"`
}

func (s State) MarshalJSON() ([]byte, error) {
	records := s.Records
	if records == nil {
		records = []resource.Record{}
	}

	return json.Marshal(stateJSON{ //nolint:wrapcheck
		Mode:    s.Form.Mode(),
		Draft:   s.Form.draft,
		Records: records,
		Loaded:  s.Loaded,
	})
}

func (s *State) UnmarshalJSON(data []byte) error {
	var raw stateJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err //nolint:wrapcheck
	}

	switch raw.Mode {
	case ModeIdle, "":
		s.Form = Idle()
	case ModeAdding:
		s.Form = Adding(raw.Draft)
	case ModeEditing:
		s.Form = Editing(raw.Draft)
	default:
		return fmt.Errorf("unknown panel mode %q", raw.Mode)
	}

	s.Records = raw.Records
	if s.Records == nil {
		s.Records = []resource.Record{}
	}

	s.Loaded = raw.Loaded

	return nil
}
