package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Testament is one of the two canonical divisions of the catalog. The zero
// value is not a valid testament.
type Testament int

const (
	TestamentOld Testament = iota + 1
	TestamentNew
)

// ParseTestament converts the wire form ("Old" or "New") into a Testament.
func ParseTestament(s string) (Testament, error) {
	switch s {
	case "Old":
		return TestamentOld, nil
	case "New":
		return TestamentNew, nil
	default:
		return 0, fmt.Errorf("models: unknown testament %q", s)
	}
}

// Valid reports whether t is one of the two defined testaments.
func (t Testament) Valid() bool {
	return t == TestamentOld || t == TestamentNew
}

func (t Testament) String() string {
	switch t {
	case TestamentOld:
		return "Old"
	case TestamentNew:
		return "New"
	default:
		return fmt.Sprintf("Testament(%d)", int(t))
	}
}

// Class returns the CSS class token used to tag a book's container
// ("old-testament" or "new-testament"). The client-side filter compares
// against this token.
func (t Testament) Class() string {
	switch t {
	case TestamentOld:
		return "old-testament"
	case TestamentNew:
		return "new-testament"
	default:
		return ""
	}
}

// MarshalJSON encodes the testament as the literal string "Old" or "New".
func (t Testament) MarshalJSON() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("models: cannot encode invalid testament %d", int(t))
	}
	return json.Marshal(t.String())
}

func (t *Testament) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("models: testament must be a string: %w", err)
	}
	parsed, err := ParseTestament(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// SectionHeading is a titled subsection of a chapter.
type SectionHeading struct {
	Heading string `json:"heading"`
}

// Chapter holds the section headings of one chapter. Chapter numbers are not
// required to be contiguous; curated books list only selected chapters.
type Chapter struct {
	ChapterNumber int              `json:"chapter_number"`
	Sections      []SectionHeading `json:"sections"`
}

// SearchText returns the lowercase search index for the chapter: every
// heading followed by a single space, in section order.
func (c Chapter) SearchText() string {
	var b strings.Builder
	for _, s := range c.Sections {
		b.WriteString(strings.ToLower(s.Heading))
		b.WriteByte(' ')
	}
	return b.String()
}

// Book is a single book of the catalog with its chapters in display order.
type Book struct {
	Name      string    `json:"name"`
	Testament Testament `json:"testament"`
	Chapters  []Chapter `json:"chapters"`
}

// Slug returns the lowercase form of the book name used as the DOM
// identifier (e.g. "1 Samuel" → "1 samuel"). No characters are stripped.
func (b Book) Slug() string {
	return strings.ToLower(b.Name)
}
