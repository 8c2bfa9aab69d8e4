package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/carpenike/bibleheadings/internal/models"
)

// ErrInvalidCatalog is returned when a catalog violates a structural
// invariant. Individual violations are joined beneath it.
var ErrInvalidCatalog = errors.New("invalid catalog")

// Validate checks that every book has a unique non-empty name, a valid
// testament and at least one chapter, and that every chapter has a positive
// number and at least one non-empty heading. All violations are reported.
func Validate(books []models.Book) error {
	var errs []error
	seen := make(map[string]bool, len(books))

	for i, b := range books {
		if strings.TrimSpace(b.Name) == "" {
			errs = append(errs, fmt.Errorf("book %d: empty name", i))
		} else if seen[b.Name] {
			errs = append(errs, fmt.Errorf("book %q: duplicate name", b.Name))
		}
		seen[b.Name] = true

		if !b.Testament.Valid() {
			errs = append(errs, fmt.Errorf("book %q: invalid testament %d", b.Name, int(b.Testament)))
		}
		if len(b.Chapters) == 0 {
			errs = append(errs, fmt.Errorf("book %q: no chapters", b.Name))
		}

		for _, ch := range b.Chapters {
			if ch.ChapterNumber < 1 {
				errs = append(errs, fmt.Errorf("book %q: chapter number %d is not positive", b.Name, ch.ChapterNumber))
			}
			if len(ch.Sections) == 0 {
				errs = append(errs, fmt.Errorf("book %q chapter %d: no sections", b.Name, ch.ChapterNumber))
			}
			for j, s := range ch.Sections {
				if strings.TrimSpace(s.Heading) == "" {
					errs = append(errs, fmt.Errorf("book %q chapter %d: section %d has empty heading", b.Name, ch.ChapterNumber, j))
				}
			}
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidCatalog, errors.Join(errs...))
}
