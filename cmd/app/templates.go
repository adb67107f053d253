package main

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"net/url"
	"path/filepath"

	"github.com/NikitaSawant21/Web-Asn4/internal/data"
	"github.com/NikitaSawant21/Web-Asn4/ui"
)

// templateData carries everything the pages can render. Zero values are safe
// for every page, so handlers only fill what they need.
type templateData struct {
	MoviesEnabled bool
	Movies        []data.MovieView
	Movie         *data.MovieView
	Form          url.Values
	FieldErrors   map[string]string
	Error         *uiError
}

type uiError struct {
	Status     int
	StatusText string
	Message    string
}

func newTemplateCache() (map[string]*template.Template, error) {
	cache := map[string]*template.Template{}

	pages, err := fs.Glob(ui.Files, "html/pages/*.tmpl")
	if err != nil {
		return nil, err
	}

	for _, page := range pages {
		name := filepath.Base(page)

		ts, err := template.New(name).ParseFS(ui.Files, "html/base.tmpl", page)
		if err != nil {
			return nil, err
		}

		cache[name] = ts
	}

	return cache, nil
}

// render writes page to a buffer first so a template failure can still turn
// into a clean error response.
func (app *application) render(w http.ResponseWriter, r *http.Request, status int, page string, td templateData) {
	ts, ok := app.templateCache[page]
	if !ok {
		app.serverErrorResponse(w, r, fmt.Errorf("the template %q does not exist", page))
		return
	}

	buf := new(bytes.Buffer)

	if err := ts.ExecuteTemplate(buf, "base", td); err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

// renderError shows the HTML error page. It is the UI counterpart of
// errorResponse and never recurses back into render on failure.
func (app *application) renderError(w http.ResponseWriter, r *http.Request, status int, message string) {
	ts, ok := app.templateCache["error.tmpl"]
	if !ok {
		http.Error(w, message, status)
		return
	}

	td := templateData{Error: &uiError{
		Status:     status,
		StatusText: http.StatusText(status),
		Message:    message,
	}}

	buf := new(bytes.Buffer)
	if err := ts.ExecuteTemplate(buf, "base", td); err != nil {
		app.logError(r, err)
		http.Error(w, message, status)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}
