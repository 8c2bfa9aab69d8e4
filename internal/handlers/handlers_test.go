package handlers

import (
	"embed"
	"io/fs"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/carpenike/bibleheadings/internal/catalog"
	"github.com/carpenike/bibleheadings/internal/models"
	"github.com/carpenike/bibleheadings/web"
)

//go:embed testdata/templates
var testTemplateFS embed.FS

// testTemplateCache builds a minimal template cache from the stub templates
// in testdata.
func testTemplateCache(t testing.TB) TemplateCache {
	t.Helper()

	sub, err := fs.Sub(testTemplateFS, "testdata")
	if err != nil {
		t.Fatalf("sub testdata FS: %v", err)
	}
	tc, err := NewTemplateCache(sub)
	if err != nil {
		t.Fatalf("parse test templates: %v", err)
	}
	return tc
}

// productionPages wires Pages with the embedded production templates and assets.
func productionPages(t testing.TB, books []models.Book) *Pages {
	t.Helper()

	tc, err := NewTemplateCache(web.FS)
	if err != nil {
		t.Fatalf("parse production templates: %v", err)
	}
	assets, err := LoadAssets(web.FS)
	if err != nil {
		t.Fatalf("load assets: %v", err)
	}
	return &Pages{Books: books, Templates: tc, Assets: assets}
}

// renderIndex serves GET / and parses the response body.
func renderIndex(t testing.TB, p *Pages) *goquery.Document {
	t.Helper()

	rr := httptest.NewRecorder()
	p.Index(rr, httptest.NewRequest("GET", "/", nil))
	if rr.Code != 200 {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rr.Body.String()))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

// smallCatalog returns a two-book catalog for focused rendering tests.
func smallCatalog() []models.Book {
	return []models.Book{
		{
			Name:      "1 Samuel",
			Testament: models.TestamentOld,
			Chapters: []models.Chapter{
				{ChapterNumber: 7, Sections: []models.SectionHeading{{Heading: "Foo Bar"}, {Heading: "Baz"}}},
				{ChapterNumber: 2, Sections: []models.SectionHeading{{Heading: "Hannah's Prayer"}}},
			},
		},
		catalog.NewPlaceholderBook("Jude", models.TestamentNew, 1),
	}
}
