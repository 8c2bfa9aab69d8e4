// Package catalog builds the fixed in-memory catalog of books, chapters and
// section headings, and converts it to and from its JSON wire form.
package catalog

import "github.com/carpenike/bibleheadings/internal/models"

// PlaceholderHeading is the single heading given to every chapter of a book
// whose sections have not been curated yet.
const PlaceholderHeading = "Section headings to be added"

// Build returns the full catalog in display order: the detailed Old Testament
// books, the remaining Old Testament books, then the New Testament ending with
// Revelation. Every call returns a freshly allocated, identical slice.
func Build() []models.Book {
	books := make([]models.Book, 0, 66)

	books = append(books, genesis(), exodus(), psalms())
	for _, c := range oldTestamentCanon {
		books = append(books, NewPlaceholderBook(c.name, models.TestamentOld, c.chapters))
	}

	for _, c := range newTestamentCanon {
		if detailed, ok := newTestamentDetailed[c.name]; ok {
			books = append(books, detailed())
			continue
		}
		books = append(books, NewPlaceholderBook(c.name, models.TestamentNew, c.chapters))
	}

	return books
}

// NewPlaceholderBook synthesizes a book with chapters 1..chapterCount, each
// holding only PlaceholderHeading. chapterCount must be the canonical chapter
// count of the book; it is not validated.
func NewPlaceholderBook(name string, testament models.Testament, chapterCount int) models.Book {
	chapters := make([]models.Chapter, 0, chapterCount)
	for n := 1; n <= chapterCount; n++ {
		chapters = append(chapters, models.Chapter{
			ChapterNumber: n,
			Sections:      []models.SectionHeading{{Heading: PlaceholderHeading}},
		})
	}
	return models.Book{
		Name:      name,
		Testament: testament,
		Chapters:  chapters,
	}
}

// CountByTestament returns how many books belong to each testament.
func CountByTestament(books []models.Book) (oldCount, newCount int) {
	for _, b := range books {
		switch b.Testament {
		case models.TestamentOld:
			oldCount++
		case models.TestamentNew:
			newCount++
		}
	}
	return oldCount, newCount
}

// Find returns the book with the given name, or false if there is none.
func Find(books []models.Book, name string) (models.Book, bool) {
	for _, b := range books {
		if b.Name == name {
			return b, true
		}
	}
	return models.Book{}, false
}

// chapter is a shorthand for building a curated chapter literal.
func chapter(number int, headings ...string) models.Chapter {
	sections := make([]models.SectionHeading, len(headings))
	for i, h := range headings {
		sections[i] = models.SectionHeading{Heading: h}
	}
	return models.Chapter{ChapterNumber: number, Sections: sections}
}
