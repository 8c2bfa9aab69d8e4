package database

import (
	"database/sql"
	"fmt"

	"github.com/carpenike/bibleheadings/internal/catalog"
	"github.com/carpenike/bibleheadings/internal/models"
)

// SaveCatalog replaces the snapshot stored in db with books. Positions are
// recorded so LoadCatalog returns books, chapters and sections in the same
// order they were saved. Invalid catalogs are rejected before anything is
// written.
func SaveCatalog(db *sql.DB, books []models.Book) error {
	if err := catalog.Validate(books); err != nil {
		return fmt.Errorf("database: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("database: begin save: %w", err)
	}
	defer tx.Rollback()

	// Chapters and sections cascade.
	if _, err := tx.Exec(`DELETE FROM books`); err != nil {
		return fmt.Errorf("database: clear books: %w", err)
	}

	for bi, b := range books {
		res, err := tx.Exec(
			`INSERT INTO books (position, name, testament) VALUES (?, ?, ?)`,
			bi, b.Name, b.Testament.String(),
		)
		if err != nil {
			return fmt.Errorf("database: insert book %q: %w", b.Name, err)
		}
		bookID, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("database: book %q id: %w", b.Name, err)
		}

		for ci, ch := range b.Chapters {
			res, err := tx.Exec(
				`INSERT INTO chapters (book_id, position, chapter_number) VALUES (?, ?, ?)`,
				bookID, ci, ch.ChapterNumber,
			)
			if err != nil {
				return fmt.Errorf("database: insert %s %d: %w", b.Name, ch.ChapterNumber, err)
			}
			chapterID, err := res.LastInsertId()
			if err != nil {
				return fmt.Errorf("database: %s %d id: %w", b.Name, ch.ChapterNumber, err)
			}

			for si, s := range ch.Sections {
				if _, err := tx.Exec(
					`INSERT INTO sections (chapter_id, position, heading) VALUES (?, ?, ?)`,
					chapterID, si, s.Heading,
				); err != nil {
					return fmt.Errorf("database: insert section %q: %w", s.Heading, err)
				}
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("database: commit save: %w", err)
	}
	return nil
}

// LoadCatalog reads the snapshot back into memory and validates it.
func LoadCatalog(db *sql.DB) ([]models.Book, error) {
	rows, err := db.Query(`
		SELECT b.id, b.name, b.testament, c.id, c.chapter_number, s.heading
		FROM books b
		JOIN chapters c ON c.book_id = b.id
		JOIN sections s ON s.chapter_id = c.id
		ORDER BY b.position, c.position, s.position`)
	if err != nil {
		return nil, fmt.Errorf("database: query catalog: %w", err)
	}
	defer rows.Close()

	var books []models.Book
	var lastBookID, lastChapterID int64

	for rows.Next() {
		var bookID, chapterID int64
		var name, testament, heading string
		var number int
		if err := rows.Scan(&bookID, &name, &testament, &chapterID, &number, &heading); err != nil {
			return nil, fmt.Errorf("database: scan catalog row: %w", err)
		}

		if bookID != lastBookID {
			t, err := models.ParseTestament(testament)
			if err != nil {
				return nil, fmt.Errorf("database: book %q: %w", name, err)
			}
			books = append(books, models.Book{Name: name, Testament: t})
			lastBookID = bookID
		}

		b := &books[len(books)-1]
		if chapterID != lastChapterID {
			b.Chapters = append(b.Chapters, models.Chapter{ChapterNumber: number})
			lastChapterID = chapterID
		}

		ch := &b.Chapters[len(b.Chapters)-1]
		ch.Sections = append(ch.Sections, models.SectionHeading{Heading: heading})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("database: iterate catalog: %w", err)
	}

	if err := catalog.Validate(books); err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}
	return books, nil
}
