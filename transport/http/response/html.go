package response

import (
	"bytes"
	"hoteladmin/shared/constant"
	"hoteladmin/shared/logger"
	"html/template"
	"net/http"
)

// WithHTML renders a named template. Rendering happens before the status is
// written so a template error still produces a clean 500.
func WithHTML(writer http.ResponseWriter, code int, tmpl *template.Template, name string, data any) {
	var buf bytes.Buffer

	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		logger.ErrorWithStack(err)
		http.Error(writer, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeHTML)
	writer.WriteHeader(code)

	if _, err := writer.Write(buf.Bytes()); err != nil {
		logger.ErrorWithStack(err)
	}
}

// WithRedirect sends the browser to location after a form post.
func WithRedirect(writer http.ResponseWriter, request *http.Request, location string) {
	http.Redirect(writer, request, location, http.StatusSeeOther)
}
