package handlers

import (
	"bytes"
	"log"
	"net/http"

	"github.com/carpenike/bibleheadings/internal/catalog"
	"github.com/carpenike/bibleheadings/internal/models"
)

// Books serves the catalog as JSON.
type Books struct {
	Books []models.Book
}

// List writes every book with its chapters and section headings. There is no
// filtering or pagination; clients receive the full catalog.
func (h *Books) List(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := catalog.WriteJSON(&buf, h.Books); err != nil {
		log.Printf("handlers: list books: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, err := buf.WriteTo(w)
	logWriteError("books json", err)
}
