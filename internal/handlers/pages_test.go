package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/carpenike/bibleheadings/internal/catalog"
)

func TestPages_Index_RendersFullCatalog(t *testing.T) {
	doc := renderIndex(t, productionPages(t, catalog.Build()))

	books := doc.Find(".book-card")
	if books.Length() != 66 {
		t.Fatalf("expected 66 book cards, got %d", books.Length())
	}
	if name, _ := books.First().Attr("data-book-name"); name != "genesis" {
		t.Errorf("expected first book genesis, got %q", name)
	}
	if name, _ := books.Last().Attr("data-book-name"); name != "revelation" {
		t.Errorf("expected last book revelation, got %q", name)
	}
	if got := doc.Find(".book-card.old-testament").Length(); got != 39 {
		t.Errorf("expected 39 old-testament cards, got %d", got)
	}
	if got := doc.Find(".book-card.new-testament").Length(); got != 27 {
		t.Errorf("expected 27 new-testament cards, got %d", got)
	}
	if subtitle := doc.Find(".subtitle").Text(); subtitle != "Explore all 66 Books of Scripture" {
		t.Errorf("unexpected subtitle %q", subtitle)
	}
}

func TestPages_Index_BookAttributes(t *testing.T) {
	doc := renderIndex(t, productionPages(t, smallCatalog()))

	samuel := doc.Find(".book-card").First()
	if name, _ := samuel.Attr("data-book-name"); name != "1 samuel" {
		t.Errorf("expected data-book-name \"1 samuel\", got %q", name)
	}
	if testament, _ := samuel.Attr("data-testament"); testament != "old-testament" {
		t.Errorf("expected data-testament old-testament, got %q", testament)
	}
	if !samuel.HasClass("old-testament") {
		t.Error("expected old-testament class on book card")
	}
	if title := samuel.Find(".book-title").Text(); title != "1 Samuel" {
		t.Errorf("expected displayed title \"1 Samuel\", got %q", title)
	}

	jude := doc.Find(".book-card").Last()
	if testament, _ := jude.Attr("data-testament"); testament != "new-testament" {
		t.Errorf("expected data-testament new-testament, got %q", testament)
	}
}

func TestPages_Index_ChapterSearchText(t *testing.T) {
	doc := renderIndex(t, productionPages(t, smallCatalog()))

	chapters := doc.Find(`.book-card[data-book-name="1 samuel"] .chapter-card`)
	if chapters.Length() != 2 {
		t.Fatalf("expected 2 chapters, got %d", chapters.Length())
	}

	first := chapters.Eq(0)
	if text, _ := first.Attr("data-search-text"); text != "foo bar baz " {
		t.Errorf("expected search text %q, got %q", "foo bar baz ", text)
	}
	if number := first.Find(".chapter-number").Text(); number != "Chapter 7" {
		t.Errorf("expected \"Chapter 7\", got %q", number)
	}

	// Headings keep their case; apostrophes survive attribute escaping.
	second := chapters.Eq(1)
	if text, _ := second.Attr("data-search-text"); text != "hannah's prayer " {
		t.Errorf("expected search text %q, got %q", "hannah's prayer ", text)
	}
	if heading := second.Find(".heading-text").Text(); heading != "Hannah's Prayer" {
		t.Errorf("expected heading \"Hannah's Prayer\", got %q", heading)
	}
}

func TestPages_Index_PreservesOrder(t *testing.T) {
	doc := renderIndex(t, productionPages(t, smallCatalog()))

	var numbers []string
	doc.Find(`.book-card[data-book-name="1 samuel"] .chapter-number`).Each(func(i int, s *goquery.Selection) {
		numbers = append(numbers, s.Text())
	})
	if strings.Join(numbers, ",") != "Chapter 7,Chapter 2" {
		t.Errorf("expected catalog order, got %v", numbers)
	}

	var headings []string
	doc.Find(`.book-card[data-book-name="1 samuel"] .chapter-card`).First().Find(".heading-text").Each(func(i int, s *goquery.Selection) {
		headings = append(headings, s.Text())
	})
	if strings.Join(headings, "|") != "Foo Bar|Baz" {
		t.Errorf("expected section order Foo Bar|Baz, got %v", headings)
	}
}

func TestPages_Index_PlaceholderHeading(t *testing.T) {
	doc := renderIndex(t, productionPages(t, smallCatalog()))

	jude := doc.Find(`.book-card[data-book-name="jude"] .heading-text`)
	if jude.Text() != catalog.PlaceholderHeading {
		t.Errorf("expected placeholder heading, got %q", jude.Text())
	}
}

func TestPages_Index_InlinesAssets(t *testing.T) {
	doc := renderIndex(t, productionPages(t, smallCatalog()))

	if !strings.Contains(doc.Find("style").Text(), ".chapter-card") {
		t.Error("expected inline stylesheet")
	}
	if !strings.Contains(doc.Find("script").Text(), "filterContent") {
		t.Error("expected inline script")
	}
	if got, _ := doc.Find("#stats").Attr("data-total-books"); got != "2" {
		t.Errorf("expected data-total-books 2, got %q", got)
	}
}

func TestPages_Index_EscapesMarkup(t *testing.T) {
	books := smallCatalog()
	books[0].Chapters[0].Sections[0].Heading = `<script>alert("x")</script>`

	rr := httptest.NewRecorder()
	productionPages(t, books).Index(rr, httptest.NewRequest("GET", "/", nil))

	if strings.Contains(rr.Body.String(), `<script>alert("x")</script>`) {
		t.Error("expected heading markup to be escaped")
	}
}

func TestPages_Index_TemplateErrorIs500(t *testing.T) {
	tc := testTemplateCache(t)
	p := &Pages{Books: smallCatalog(), Templates: TemplateCache{"index.html": tc["broken.html"]}}

	rr := httptest.NewRecorder()
	p.Index(rr, httptest.NewRequest("GET", "/", nil))

	if rr.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rr.Code)
	}
}
