package backend

//go:generate go run go.uber.org/mock/mockgen -source=./backend.go -destination=./mocks/backend_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"hoteladmin/config"
	"hoteladmin/infras/otel"
	"hoteladmin/internal/resource"
	"hoteladmin/shared/constant"
	"hoteladmin/shared/failure"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	otelAttrResource = "resource"
	otelAttrPath     = "http.path"
	otelAttrMethod   = "http.method"
	otelAttrStatus   = "http.status_code"
	otelAttrRecords  = "records"

	maxErrorBodyBytes = 4 << 10
)

// ResourceClient performs the four REST calls of a resource screen. Mutations
// return nothing useful: callers re-list to observe the backend's state.
type ResourceClient interface {
	List(ctx context.Context, desc resource.Descriptor) ([]resource.Record, error)
	Create(ctx context.Context, desc resource.Descriptor, draft resource.Record) error
	Update(ctx context.Context, desc resource.Descriptor, id string, record resource.Record) error
	Delete(ctx context.Context, desc resource.Descriptor, id string) error
}

type clientImpl struct {
	baseURL string
	http    *http.Client
	otel    otel.Otel
}

func New(cfg *config.Config, ot otel.Otel) ResourceClient {
	httpClient := &http.Client{
		Timeout:   time.Duration(cfg.Backend.TimeoutSeconds) * time.Second,
		Transport: otelhttp.NewTransport(http.DefaultTransport, otelhttp.WithTracerProvider(ot.Provider())),
	}

	return NewWithClient(cfg.Backend.BaseURL, httpClient, ot)
}

func NewWithClient(baseURL string, httpClient *http.Client, ot otel.Otel) ResourceClient {
	log.Info().Str("baseURL", baseURL).Msg("Backend client initialized")

	return &clientImpl{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		otel:    ot,
	}
}

func (c *clientImpl) List(ctx context.Context, desc resource.Descriptor) (records []resource.Record, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelClientScopeName, constant.OtelClientScopeName+".List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelAttrResource, desc.Name)

	body, err := c.do(ctx, scope, http.MethodGet, desc.CollectionPath(), nil)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	records, err = resource.DecodeRecords(body)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", desc.Name, err)
	}

	scope.SetAttribute(otelAttrRecords, len(records))

	return records, nil
}

func (c *clientImpl) Create(ctx context.Context, desc resource.Descriptor, draft resource.Record) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelClientScopeName, constant.OtelClientScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelAttrResource, desc.Name)

	return c.send(ctx, scope, http.MethodPost, desc.CreatePath(), draft)
}

func (c *clientImpl) Update(ctx context.Context, desc resource.Descriptor, id string, record resource.Record) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelClientScopeName, constant.OtelClientScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelAttrResource, desc.Name)

	return c.send(ctx, scope, http.MethodPut, desc.UpdatePath(id), record)
}

func (c *clientImpl) Delete(ctx context.Context, desc resource.Descriptor, id string) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelClientScopeName, constant.OtelClientScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelAttrResource, desc.Name)

	return c.send(ctx, scope, http.MethodDelete, desc.DeletePath(id), nil)
}

// send issues a mutation and drops the response body.
func (c *clientImpl) send(ctx context.Context, scope otel.Scope, method, path string, payload resource.Record) error {
	body, err := c.do(ctx, scope, method, path, payload)
	if err != nil {
		return err
	}

	_, _ = io.Copy(io.Discard, body)

	return body.Close() //nolint:wrapcheck
}

func (c *clientImpl) do(ctx context.Context, scope otel.Scope, method, path string, payload resource.Record) (io.ReadCloser, error) {
	scope.SetAttributes(map[string]any{
		otelAttrMethod: method,
		otelAttrPath:   path,
	})

	var reader io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s %s payload: %w", method, path, err)
		}

		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s %s request: %w", method, path, err)
	}

	req.Header.Set(constant.RequestHeaderAccept, constant.ContentTypeJSON)
	if payload != nil {
		req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call %s %s: %w", method, path, failure.BadGateway(err))
	}

	scope.SetAttribute(otelAttrStatus, resp.StatusCode)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		defer resp.Body.Close()

		text, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))

		return nil, fmt.Errorf("backend rejected %s %s: %w", method, path, failure.Upstream(resp.StatusCode, strings.TrimSpace(string(text))))
	}

	return resp.Body, nil
}
