package handlers

import (
	"log"
	"net/http"

	"github.com/carpenike/bibleheadings/internal/models"
)

// Pages holds dependencies for page handlers. Books is the shared catalog
// and is never modified.
type Pages struct {
	Books     []models.Book
	Templates TemplateCache
	Assets    Assets
}

// Index renders the whole catalog as a single browsable document.
func (p *Pages) Index(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{
		"Books":  p.Books,
		"Styles": p.Assets.CSS,
		"Script": p.Assets.JS,
	}

	if err := p.Templates.Render(w, r, "index.html", data); err != nil {
		log.Printf("handlers: index: %v", err)
		p.Templates.ServerError(w, r)
	}
}
