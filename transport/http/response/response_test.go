package response_test

import (
	"encoding/json"
	"errors"
	"hoteladmin/shared/failure"
	"hoteladmin/transport/http/response"
	"html/template"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithJSON(rec, http.StatusOK, map[string]string{"resource": "hotel"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"data":{"resource":"hotel"}}`, rec.Body.String())
}

func TestWithError(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithError(rec, failure.Upstream(http.StatusConflict, "taken"))

	assert.Equal(t, http.StatusConflict, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Conflict: taken", body["error"])
}

func TestWithError_Unknown(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithError(rec, errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestWithHTML(t *testing.T) {
	tmpl := template.Must(template.New("page").Parse(`<h1>{{.}}</h1>`))

	rec := httptest.NewRecorder()
	response.WithHTML(rec, http.StatusOK, tmpl, "page", "<Hotel>")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "<h1>&lt;Hotel&gt;</h1>", rec.Body.String())
}

func TestWithHTML_TemplateError(t *testing.T) {
	tmpl := template.Must(template.New("page").Parse(`{{.Missing.Field}}`))

	rec := httptest.NewRecorder()
	response.WithHTML(rec, http.StatusOK, tmpl, "page", struct{}{})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestWithRequestLimitExceeded(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithRequestLimitExceeded(rec)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.JSONEq(t, `{"message":"REQUEST LIMIT EXCEEDED"}`, rec.Body.String())
}
