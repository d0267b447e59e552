package console

import (
	"context"
	"embed"
	"hoteladmin/config"
	"hoteladmin/infras/otel"
	"hoteladmin/internal/domains"
	"hoteladmin/internal/panel"
	"hoteladmin/internal/resource"
	"hoteladmin/shared/constant"
	"hoteladmin/shared/failure"
	"hoteladmin/transport/http/response"
	"html/template"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	templatePage = "page"
	formReturn   = "return"
	confirmYes   = "yes"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type navItem struct {
	Route  string
	Title  string
	Active bool
}

type page struct {
	AppName   string
	Route     string
	Nav       []navItem
	Collapsed bool
	View      panel.View
	// Alert is only set for blocked operations; failures are logged, not shown.
	Alert string
	// ConfirmID asks the user to confirm deleting this record.
	ConfirmID string
}

// Handler serves the server-rendered console: the navigation shell and one
// screen per resource.
type Handler struct {
	service  panel.Service
	registry *domains.Registry
	otel     otel.Otel
	appName  string
}

func New(cfg *config.Config, service panel.Service, registry *domains.Registry, ot otel.Otel) Handler {
	appName := cfg.App.Name
	if appName == constant.Empty {
		appName = "Hotel Management"
	}

	return Handler{
		service:  service,
		registry: registry,
		otel:     ot,
		appName:  appName,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/", handler.Home)
	router.Post("/sidebar/toggle", handler.ToggleSidebar)

	router.Route("/{resource}", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.Show)
		routerGroup.Post("/add", handler.Add)
		routerGroup.Post("/edit/{id}", handler.Edit)
		routerGroup.Post("/submit", handler.Submit)
		routerGroup.Post("/cancel", handler.Cancel)
		routerGroup.Post("/dismiss", handler.Dismiss)
		routerGroup.Post("/delete/{id}", handler.Delete)
	})
}

func (handler *Handler) Home(writer http.ResponseWriter, request *http.Request) {
	response.WithRedirect(writer, request, handler.registry.Default().Route())
}

// ToggleSidebar flips the sidebar between expanded and collapsed and returns
// the browser to the page it came from.
func (handler *Handler) ToggleSidebar(writer http.ResponseWriter, request *http.Request) {
	next := constant.SidebarCollapsed
	if sidebarCollapsed(request) {
		next = constant.SidebarExpanded
	}

	http.SetCookie(writer, &http.Cookie{
		Name:     constant.CookieSidebar,
		Value:    next,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	target := request.FormValue(formReturn)
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") {
		target = "/"
	}

	response.WithRedirect(writer, request, target)
}

func (handler *Handler) Show(writer http.ResponseWriter, request *http.Request) {
	handler.handle(writer, request, "Show", func(ctx context.Context, desc resource.Descriptor, session string) (panel.View, panel.Result) {
		return handler.service.Mount(ctx, session, desc)
	})
}

func (handler *Handler) Add(writer http.ResponseWriter, request *http.Request) {
	handler.handle(writer, request, "Add", func(ctx context.Context, desc resource.Descriptor, session string) (panel.View, panel.Result) {
		return handler.service.OpenAdd(ctx, session, desc)
	})
}

func (handler *Handler) Edit(writer http.ResponseWriter, request *http.Request) {
	id := chi.URLParam(request, constant.RequestParamID)

	handler.handle(writer, request, "Edit", func(ctx context.Context, desc resource.Descriptor, session string) (panel.View, panel.Result) {
		return handler.service.OpenEdit(ctx, session, desc, id)
	})
}

func (handler *Handler) Cancel(writer http.ResponseWriter, request *http.Request) {
	handler.handle(writer, request, "Cancel", func(ctx context.Context, desc resource.Descriptor, session string) (panel.View, panel.Result) {
		return handler.service.Cancel(ctx, session, desc)
	})
}

// Dismiss closes the delete confirmation. The saved list is shown as is, so
// declining a delete never reaches the backend.
func (handler *Handler) Dismiss(writer http.ResponseWriter, request *http.Request) {
	handler.handle(writer, request, "Dismiss", func(ctx context.Context, desc resource.Descriptor, session string) (panel.View, panel.Result) {
		return handler.service.Show(ctx, session, desc)
	})
}

func (handler *Handler) Submit(writer http.ResponseWriter, request *http.Request) {
	if err := request.ParseForm(); err != nil {
		log.Error().Err(err).Msg("failed to parse console form")
		http.Error(writer, err.Error(), http.StatusBadRequest)

		return
	}

	handler.handle(writer, request, "Submit", func(ctx context.Context, desc resource.Descriptor, session string) (panel.View, panel.Result) {
		return handler.service.Submit(ctx, session, desc, formValues(desc, request))
	})
}

// Delete asks for confirmation first: without confirm=yes nothing is deleted
// and the page comes back with the confirmation prompt.
func (handler *Handler) Delete(writer http.ResponseWriter, request *http.Request) {
	id := chi.URLParam(request, constant.RequestParamID)
	confirmed := request.FormValue(constant.RequestParamConfirm) == confirmYes

	handler.handle(writer, request, "Delete", func(ctx context.Context, desc resource.Descriptor, session string) (panel.View, panel.Result) {
		return handler.service.Delete(ctx, session, desc, id, confirmed)
	})
}

func (handler *Handler) handle(
	writer http.ResponseWriter,
	request *http.Request,
	operation string,
	fn func(ctx context.Context, desc resource.Descriptor, session string) (panel.View, panel.Result),
) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Console"+operation)
	defer scope.End()

	request = request.WithContext(ctx)

	desc, ok := handler.registry.Get(chi.URLParam(request, constant.RequestParamResource))
	if !ok {
		http.Error(writer, failure.UnknownResource.Message, failure.UnknownResource.Code)

		return
	}

	session, _ := ctx.Value(constant.ContextKeySessionID).(string)

	view, res := fn(ctx, desc, session)

	data := page{
		AppName:   handler.appName,
		Route:     desc.Route(),
		Nav:       handler.nav(desc),
		Collapsed: sidebarCollapsed(request),
		View:      view,
	}

	switch res.Outcome {
	case panel.Blocked:
		data.Alert = res.Alert
	case panel.Declined:
		data.ConfirmID = chi.URLParam(request, constant.RequestParamID)
	case panel.Failed:
		scope.TraceIfError(res.Err)
	}

	response.WithHTML(writer, http.StatusOK, templates, templatePage, data)
}

func (handler *Handler) nav(active resource.Descriptor) []navItem {
	descriptors := handler.registry.All()

	items := make([]navItem, 0, len(descriptors))
	for _, desc := range descriptors {
		items = append(items, navItem{
			Route:  desc.Route(),
			Title:  desc.Title,
			Active: desc.Name == active.Name,
		})
	}

	return items
}

func sidebarCollapsed(request *http.Request) bool {
	cookie, err := request.Cookie(constant.CookieSidebar)

	return err == nil && cookie.Value == constant.SidebarCollapsed
}

// formValues collects the posted fields. An unchecked checkbox is not posted
// at all, so checkbox fields are always read and default to false.
func formValues(desc resource.Descriptor, request *http.Request) map[string]string {
	values := make(map[string]string, len(desc.Fields))

	for _, field := range desc.Fields {
		if field.Kind == resource.KindCheckbox {
			values[field.Name] = request.PostFormValue(field.Name)

			continue
		}

		if _, ok := request.PostForm[field.Name]; ok {
			values[field.Name] = request.PostFormValue(field.Name)
		}
	}

	return values
}
