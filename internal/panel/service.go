package panel

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hoteladmin/config"
	"hoteladmin/infras/backend"
	"hoteladmin/infras/otel"
	"hoteladmin/internal/resource"
	"hoteladmin/shared/constant"
	"hoteladmin/shared/failure"
	"sort"

	"github.com/rs/zerolog/log"
)

const (
	otelAttrResource = "resource"
	otelAttrOutcome  = "outcome"
)

// Service runs one panel operation per call against the session's saved state
// and returns the resulting screen.
type Service interface {
	// Mount re-lists and renders the screen.
	Mount(ctx context.Context, session string, desc resource.Descriptor) (View, Result)
	OpenAdd(ctx context.Context, session string, desc resource.Descriptor) (View, Result)
	OpenEdit(ctx context.Context, session string, desc resource.Descriptor, id string) (View, Result)
	Change(ctx context.Context, session string, desc resource.Descriptor, values map[string]string) (View, Result)
	// Submit applies values to the draft first, then creates or updates it.
	Submit(ctx context.Context, session string, desc resource.Descriptor, values map[string]string) (View, Result)
	Cancel(ctx context.Context, session string, desc resource.Descriptor) (View, Result)
	Delete(ctx context.Context, session string, desc resource.Descriptor, id string, confirmed bool) (View, Result)
	// Show renders the saved screen without contacting the backend.
	Show(ctx context.Context, session string, desc resource.Descriptor) (View, Result)
}

type serviceImpl struct {
	client backend.ResourceClient
	store  Store
	otel   otel.Otel
	locale string
}

func NewService(cfg *config.Config, client backend.ResourceClient, store Store, ot otel.Otel) Service {
	return &serviceImpl{
		client: client,
		store:  store,
		otel:   ot,
		locale: cfg.App.Locale,
	}
}

func (s *serviceImpl) Mount(ctx context.Context, session string, desc resource.Descriptor) (View, Result) {
	return s.run(ctx, session, desc, "Mount", func(ctx context.Context, p *CrudPanel) Result {
		return p.Refresh(ctx)
	})
}

func (s *serviceImpl) OpenAdd(ctx context.Context, session string, desc resource.Descriptor) (View, Result) {
	return s.run(ctx, session, desc, "OpenAdd", func(_ context.Context, p *CrudPanel) Result {
		return p.OpenAdd()
	})
}

func (s *serviceImpl) OpenEdit(ctx context.Context, session string, desc resource.Descriptor, id string) (View, Result) {
	return s.run(ctx, session, desc, "OpenEdit", func(_ context.Context, p *CrudPanel) Result {
		return p.OpenEdit(id)
	})
}

func (s *serviceImpl) Change(ctx context.Context, session string, desc resource.Descriptor, values map[string]string) (View, Result) {
	return s.run(ctx, session, desc, "Change", func(_ context.Context, p *CrudPanel) Result {
		return applyValues(p, values)
	})
}

func (s *serviceImpl) Submit(ctx context.Context, session string, desc resource.Descriptor, values map[string]string) (View, Result) {
	return s.run(ctx, session, desc, "Submit", func(ctx context.Context, p *CrudPanel) Result {
		if res := applyValues(p, values); !res.Succeeded() {
			return res
		}

		return p.Submit(ctx)
	})
}

func (s *serviceImpl) Cancel(ctx context.Context, session string, desc resource.Descriptor) (View, Result) {
	return s.run(ctx, session, desc, "Cancel", func(_ context.Context, p *CrudPanel) Result {
		return p.Cancel()
	})
}

func (s *serviceImpl) Delete(ctx context.Context, session string, desc resource.Descriptor, id string, confirmed bool) (View, Result) {
	return s.run(ctx, session, desc, "Delete", func(ctx context.Context, p *CrudPanel) Result {
		return p.Delete(ctx, id, confirmed)
	})
}

func (s *serviceImpl) Show(ctx context.Context, session string, desc resource.Descriptor) (View, Result) {
	return s.run(ctx, session, desc, "Show", func(_ context.Context, _ *CrudPanel) Result {
		return Done()
	})
}

func (s *serviceImpl) run(
	ctx context.Context,
	session string,
	desc resource.Descriptor,
	operation string,
	fn func(ctx context.Context, p *CrudPanel) Result,
) (View, Result) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+"."+operation)
	defer scope.End()

	scope.SetAttribute(otelAttrResource, desc.Name)

	state, err := s.store.Load(ctx, session, desc.Name)
	if err != nil {
		scope.TraceError(err)

		return Render(desc, state, s.locale), Fail(failure.InternalError(fmt.Errorf("failed to load panel state: %w", err)))
	}

	res := fn(ctx, NewCrudPanel(desc, s.client, &state))

	scope.SetAttribute(otelAttrOutcome, string(res.Outcome))
	if res.Outcome == Failed {
		scope.TraceIfError(res.Err)
	}

	if err = s.store.Save(ctx, session, desc.Name, state); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("resource", desc.Name).Str("operation", operation).Msg("failed to save panel state")

		if res.Succeeded() {
			res = Fail(failure.InternalError(fmt.Errorf("failed to save panel state: %w", err)))
		}
	}

	return Render(desc, state, s.locale), res
}

// applyValues writes form values into the draft. Names are applied in sorted
// order so a rejected value is reported the same way every time.
func applyValues(p *CrudPanel, values map[string]string) Result {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		if res := p.Change(name, values[name]); !res.Succeeded() {
			return res
		}
	}

	return Done()
}
