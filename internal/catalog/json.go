package catalog

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/carpenike/bibleheadings/internal/models"
)

// WriteJSON encodes the catalog as a JSON array of books, preserving field
// names and the order of books, chapters and sections.
func WriteJSON(w io.Writer, books []models.Book) error {
	if books == nil {
		books = []models.Book{}
	}
	if err := json.NewEncoder(w).Encode(books); err != nil {
		return fmt.Errorf("catalog: encode json: %w", err)
	}
	return nil
}

// ParseJSON decodes a catalog produced by WriteJSON and validates it.
func ParseJSON(r io.Reader) ([]models.Book, error) {
	var books []models.Book
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&books); err != nil {
		return nil, fmt.Errorf("catalog: decode json: %w", err)
	}

	if err := Validate(books); err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	return books, nil
}
