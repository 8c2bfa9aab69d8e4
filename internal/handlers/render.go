package handlers

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"path/filepath"
)

// TemplateCache maps page filenames to parsed template sets. Each set contains
// the base layout combined with a single page template.
type TemplateCache map[string]*template.Template

// NewTemplateCache parses all page templates from fsys, combining each with
// templates/layouts/base.html.
func NewTemplateCache(fsys fs.FS) (TemplateCache, error) {
	cache := TemplateCache{}

	pages, err := fs.Glob(fsys, "templates/pages/*.html")
	if err != nil {
		return nil, fmt.Errorf("handlers: glob page templates: %w", err)
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("handlers: no page templates found")
	}

	for _, page := range pages {
		name := filepath.Base(page)

		ts, err := template.ParseFS(fsys, "templates/layouts/base.html", page)
		if err != nil {
			return nil, fmt.Errorf("handlers: parse %s with layout: %w", name, err)
		}
		cache[name] = ts
	}

	return cache, nil
}

// Render executes a page template with the base layout. Output is buffered so
// that a template error can still be answered with a clean 500; an error is
// only returned when nothing has been written yet.
func (tc TemplateCache) Render(w http.ResponseWriter, r *http.Request, name string, data map[string]any) error {
	ts, ok := tc[name]
	if !ok {
		return fmt.Errorf("handlers: template %q not found in cache", name)
	}

	if data == nil {
		data = map[string]any{}
	}

	var buf bytes.Buffer
	if err := ts.ExecuteTemplate(&buf, "base", data); err != nil {
		return fmt.Errorf("handlers: execute %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, err := buf.WriteTo(w)
	logWriteError(name, err)
	return nil
}

// ServerError writes a plain 500 response.
func (tc TemplateCache) ServerError(w http.ResponseWriter, r *http.Request) {
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}

// Assets is the stylesheet and script inlined into every page so the
// document is self-contained.
type Assets struct {
	CSS template.CSS
	JS  template.JS
}

// LoadAssets reads static/css/app.css and static/js/app.js from fsys.
func LoadAssets(fsys fs.FS) (Assets, error) {
	css, err := fs.ReadFile(fsys, "static/css/app.css")
	if err != nil {
		return Assets{}, fmt.Errorf("handlers: read stylesheet: %w", err)
	}
	js, err := fs.ReadFile(fsys, "static/js/app.js")
	if err != nil {
		return Assets{}, fmt.Errorf("handlers: read script: %w", err)
	}
	return Assets{CSS: template.CSS(css), JS: template.JS(js)}, nil
}

// logWriteError records a failure that happened after headers were sent.
func logWriteError(what string, err error) {
	if err != nil {
		log.Printf("handlers: write %s: %v", what, err)
	}
}
