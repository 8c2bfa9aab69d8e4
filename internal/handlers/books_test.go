package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/carpenike/bibleheadings/internal/catalog"
	"github.com/carpenike/bibleheadings/internal/models"
)

func TestBooks_List(t *testing.T) {
	h := &Books{Books: catalog.Build()}

	rr := httptest.NewRecorder()
	h.List(rr, httptest.NewRequest("GET", "/api/books", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json, got %q", ct)
	}

	var books []models.Book
	if err := json.Unmarshal(rr.Body.Bytes(), &books); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(books, h.Books) {
		t.Error("expected response to decode to the served catalog")
	}
}

func TestBooks_List_EncodeErrorIs500(t *testing.T) {
	h := &Books{Books: []models.Book{{Name: "Broken"}}}

	rr := httptest.NewRecorder()
	h.List(rr, httptest.NewRequest("GET", "/api/books", nil))

	if rr.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rr.Code)
	}
}
