package httpx

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// TemplateRenderer renders HTML templates for UI responses. Output is
// buffered so a mid-render failure never leaks a half-written page.
type TemplateRenderer struct {
	t      *template.Template
	logger *slog.Logger
}

// NewTemplateRenderer parses the embedded templates.
func NewTemplateRenderer(logger *slog.Logger) (*TemplateRenderer, error) {
	if logger == nil {
		logger = slog.Default()
	}

	t, err := template.New("root").Funcs(template.FuncMap{
		"petTypeName": petTypeNameFunc,
		"deref":       derefIntFunc,
	}).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		logger.Error("template parsing failed",
			slog.Any("error", err),
			slog.String("phase", "initialization"),
		)
		return nil, err
	}

	return &TemplateRenderer{t: t, logger: logger}, nil
}

// RenderPage renders a named page template wrapped in the shared layout.
func (r *TemplateRenderer) RenderPage(w http.ResponseWriter, page string, data map[string]any) error {
	return r.renderTemplate(w, page, data)
}

// RenderError renders the error page with the given status code.
func (r *TemplateRenderer) RenderError(w http.ResponseWriter, status int, data map[string]any) error {
	var buf bytes.Buffer
	if err := r.t.ExecuteTemplate(&buf, "error", data); err != nil {
		r.logTemplateError("error", err)
		http.Error(w, http.StatusText(status), status)
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

func (r *TemplateRenderer) renderTemplate(w http.ResponseWriter, templateName string, data any) error {
	var buf bytes.Buffer
	if err := r.t.ExecuteTemplate(&buf, templateName, data); err != nil {
		r.logTemplateError(templateName, err)
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		r.logger.Error("failed to write rendered template",
			slog.String("template", templateName),
			slog.Any("error", err),
		)
		return err
	}

	return nil
}

func (r *TemplateRenderer) logTemplateError(templateName string, err error) {
	if err == nil {
		return
	}
	r.logger.Error("template execution failed",
		slog.String("template", templateName),
		slog.Any("error", err),
	)
}
