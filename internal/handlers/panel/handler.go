package panel

import (
	"hoteladmin/infras/otel"
	"hoteladmin/internal/domains"
	corePanel "hoteladmin/internal/panel"
	"hoteladmin/internal/resource"
	"hoteladmin/shared/constant"
	"hoteladmin/shared/failure"
	"hoteladmin/shared/validator"
	"hoteladmin/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service  corePanel.Service
	registry *domains.Registry
	otel     otel.Otel
}

func New(service corePanel.Service, registry *domains.Registry, ot otel.Otel) Handler {
	return Handler{
		service:  service,
		registry: registry,
		otel:     ot,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/panels/{resource}", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetPanel)
		routerGroup.Post("/add", handler.OpenAdd)
		routerGroup.Post("/edit/{id}", handler.OpenEdit)
		routerGroup.Post("/cancel", handler.Cancel)
		routerGroup.Patch("/draft", handler.ChangeDraft)
		routerGroup.Post("/submit", handler.Submit)
		routerGroup.Delete("/records/{id}", handler.DeleteRecord)
	})
}

// GetPanel re-lists the resource and returns the panel.
// @Summary Get a resource panel
// @Description Fetch the resource list from the backend and return the panel view for the caller's session.
// @Tags Panel
// @Produce json
// @Param resource path string true "Resource" Enums(hotel, room, guest, booking, payment)
// @Success 200 {object} response.Data[PanelResponse]
// @Failure 404 {object} response.Error
// @Failure 502 {object} response.Data[PanelResponse]
// @Router /v1/panels/{resource} [get]
func (handler *Handler) GetPanel(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPanel")
	defer scope.End()

	desc, ok := handler.resource(writer, request)
	if !ok {
		return
	}

	view, res := handler.service.Mount(ctx, sessionID(request), desc)

	handler.respond(writer, scope, view, res)
}

// OpenAdd opens the add form with an empty draft.
// @Summary Open the add form
// @Tags Panel
// @Produce json
// @Param resource path string true "Resource" Enums(hotel, room, guest, booking, payment)
// @Success 200 {object} response.Data[PanelResponse]
// @Failure 404 {object} response.Error
// @Router /v1/panels/{resource}/add [post]
func (handler *Handler) OpenAdd(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".OpenAdd")
	defer scope.End()

	desc, ok := handler.resource(writer, request)
	if !ok {
		return
	}

	view, res := handler.service.OpenAdd(ctx, sessionID(request), desc)

	handler.respond(writer, scope, view, res)
}

// OpenEdit loads a listed record into the edit form.
// @Summary Open the edit form
// @Tags Panel
// @Produce json
// @Param resource path string true "Resource" Enums(hotel, room, guest, booking, payment)
// @Param id path string true "Record identity"
// @Success 200 {object} response.Data[PanelResponse]
// @Failure 404 {object} response.Data[PanelResponse]
// @Router /v1/panels/{resource}/edit/{id} [post]
func (handler *Handler) OpenEdit(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".OpenEdit")
	defer scope.End()

	desc, ok := handler.resource(writer, request)
	if !ok {
		return
	}

	id := chi.URLParam(request, constant.RequestParamID)
	view, res := handler.service.OpenEdit(ctx, sessionID(request), desc, id)

	handler.respond(writer, scope, view, res)
}

// Cancel closes the form and drops the draft.
// @Summary Close the form
// @Tags Panel
// @Produce json
// @Param resource path string true "Resource" Enums(hotel, room, guest, booking, payment)
// @Success 200 {object} response.Data[PanelResponse]
// @Router /v1/panels/{resource}/cancel [post]
func (handler *Handler) Cancel(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Cancel")
	defer scope.End()

	desc, ok := handler.resource(writer, request)
	if !ok {
		return
	}

	view, res := handler.service.Cancel(ctx, sessionID(request), desc)

	handler.respond(writer, scope, view, res)
}

// ChangeDraft writes field values into the open draft.
// @Summary Change draft fields
// @Tags Panel
// @Accept json
// @Produce json
// @Param resource path string true "Resource" Enums(hotel, room, guest, booking, payment)
// @Param request body ChangeDraftRequest true "Field values"
// @Success 200 {object} response.Data[PanelResponse]
// @Failure 400 {object} response.Data[PanelResponse]
// @Router /v1/panels/{resource}/draft [patch]
func (handler *Handler) ChangeDraft(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ChangeDraft")
	defer scope.End()

	desc, ok := handler.resource(writer, request)
	if !ok {
		return
	}

	var req ChangeDraftRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid draft changes")
		response.WithError(writer, err)

		return
	}

	view, res := handler.service.Change(ctx, sessionID(request), desc, toValues(req.Values))

	handler.respond(writer, scope, view, res)
}

// Submit creates or updates the draft, then re-lists.
// @Summary Submit the form
// @Tags Panel
// @Accept json
// @Produce json
// @Param resource path string true "Resource" Enums(hotel, room, guest, booking, payment)
// @Param request body SubmitRequest false "Values applied before submitting"
// @Success 200 {object} response.Data[PanelResponse]
// @Failure 400 {object} response.Data[PanelResponse]
// @Failure 502 {object} response.Data[PanelResponse]
// @Router /v1/panels/{resource}/submit [post]
func (handler *Handler) Submit(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Submit")
	defer scope.End()

	desc, ok := handler.resource(writer, request)
	if !ok {
		return
	}

	var req SubmitRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode submit request")
		response.WithError(writer, err)

		return
	}

	view, res := handler.service.Submit(ctx, sessionID(request), desc, toValues(req.Values))

	handler.respond(writer, scope, view, res)
}

// DeleteRecord deletes a record once confirmed, then re-lists.
// @Summary Delete a record
// @Description Without confirm=true nothing is deleted and the result is declined.
// @Tags Panel
// @Produce json
// @Param resource path string true "Resource" Enums(hotel, room, guest, booking, payment)
// @Param id path string true "Record identity"
// @Param confirm query boolean false "Confirm the deletion"
// @Success 200 {object} response.Data[PanelResponse]
// @Failure 409 {object} response.Data[PanelResponse]
// @Failure 502 {object} response.Data[PanelResponse]
// @Router /v1/panels/{resource}/records/{id} [delete]
func (handler *Handler) DeleteRecord(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRecord")
	defer scope.End()

	desc, ok := handler.resource(writer, request)
	if !ok {
		return
	}

	id := chi.URLParam(request, constant.RequestParamID)
	confirmed := resource.Truthy(request.URL.Query().Get(constant.RequestParamConfirm))

	view, res := handler.service.Delete(ctx, sessionID(request), desc, id, confirmed)

	handler.respond(writer, scope, view, res)
}

func (handler *Handler) resource(writer http.ResponseWriter, request *http.Request) (resource.Descriptor, bool) {
	desc, ok := handler.registry.Get(chi.URLParam(request, constant.RequestParamResource))
	if !ok {
		response.WithError(writer, failure.UnknownResource)

		return resource.Descriptor{}, false
	}

	return desc, true
}

func (handler *Handler) respond(writer http.ResponseWriter, scope otel.Scope, view corePanel.View, res corePanel.Result) {
	scope.SetAttribute("outcome", string(res.Outcome))

	if res.Outcome == corePanel.Failed {
		scope.TraceIfError(res.Err)
	}

	response.WithJSON(writer, statusOf(res), newPanelResponse(view, res))
}

func sessionID(request *http.Request) string {
	session, _ := request.Context().Value(constant.ContextKeySessionID).(string)

	return session
}
