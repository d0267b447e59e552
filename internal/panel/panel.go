package panel

import (
	"context"
	"fmt"
	"hoteladmin/infras/backend"
	"hoteladmin/internal/resource"
	"hoteladmin/shared/failure"
	"hoteladmin/shared/logger"
)

// CrudPanel runs the list/add/edit/delete cycle of one resource screen over a State.
// It is not safe for concurrent use; callers load a State, run one operation and save it.
type CrudPanel struct {
	desc   resource.Descriptor
	client backend.ResourceClient
	state  *State
}

func NewCrudPanel(desc resource.Descriptor, client backend.ResourceClient, state *State) *CrudPanel {
	if state.Records == nil {
		state.Records = []resource.Record{}
	}

	return &CrudPanel{
		desc:   desc,
		client: client,
		state:  state,
	}
}

func (p *CrudPanel) State() State {
	return *p.state
}

// Refresh replaces the list with the backend's. On failure the last list is kept.
func (p *CrudPanel) Refresh(ctx context.Context) Result {
	records, err := p.client.List(ctx, p.desc)
	if err != nil {
		return p.fail("list", err)
	}

	p.state.Records = records
	p.state.Loaded = true

	return Done()
}

// OpenAdd opens the form with an empty draft, replacing any open draft.
func (p *CrudPanel) OpenAdd() Result {
	p.state.Form = Adding(p.desc.NewDraft())

	return Done()
}

// OpenEdit loads the listed record with the given identity into the form.
func (p *CrudPanel) OpenEdit(id string) Result {
	for _, record := range p.state.Records {
		if recordID, ok := record.ID(p.desc.IDField); ok && recordID == id {
			p.state.Form = Editing(record)

			return Done()
		}
	}

	msg := fmt.Sprintf("%s %s is not in the list", p.desc.Name, id)

	return Block(msg, failure.NotFound(msg))
}

func (p *CrudPanel) Change(name, raw string) Result {
	return p.state.Form.change(p.desc, name, raw)
}

func (p *CrudPanel) Cancel() Result {
	p.state.Form = Idle()

	return Done()
}

// Submit creates or updates the draft depending on the form mode, then re-lists.
// A failed call leaves the form open with its draft.
func (p *CrudPanel) Submit(ctx context.Context) Result {
	form := p.state.Form

	switch form.Mode() {
	case ModeAdding:
		if res := checkDraft(p.desc, form.draft); !res.Succeeded() {
			return res
		}

		if err := p.client.Create(ctx, p.desc, form.Draft()); err != nil {
			return p.fail("create", err)
		}
	case ModeEditing:
		id, ok := form.draft.ID(p.desc.IDField)
		if !ok {
			return p.fail("update", failure.BadRequestFromString(fmt.Sprintf("%s draft has no %s", p.desc.Name, p.desc.IDField)))
		}

		if err := p.client.Update(ctx, p.desc, id, form.Draft()); err != nil {
			return p.fail("update", err)
		}
	default:
		return Block(alertNoForm, failure.Conflict(alertNoForm))
	}

	p.state.Form = Idle()

	return p.Refresh(ctx)
}

// Delete removes a record once the user has confirmed, then re-lists.
func (p *CrudPanel) Delete(ctx context.Context, id string, confirmed bool) Result {
	if !confirmed {
		return Decline()
	}

	if err := p.client.Delete(ctx, p.desc, id); err != nil {
		return p.fail("delete", err)
	}

	return p.Refresh(ctx)
}

func (p *CrudPanel) fail(operation string, err error) Result {
	logger.Panel(p.desc.Name, operation).Error().Err(err).Msg("panel operation failed")

	return Fail(err)
}
