package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/carpenike/bibleheadings/internal/catalog"
	"github.com/carpenike/bibleheadings/internal/database"
	"github.com/carpenike/bibleheadings/internal/models"
)

var (
	exportFormat string
	exportOut    string
	exportBook   string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the catalog to a JSON or SQLite file",
	Long: `Writes the catalog served at /api/books to a file for offline use.

  bibleheadings export                          # JSON to stdout
  bibleheadings export --out books.json         # JSON file
  bibleheadings export --format sqlite --out books.db
  bibleheadings export --book Genesis           # a single book`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExport(cmd.OutOrStdout(), exportFormat, exportOut, exportBook)
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "output format: json or sqlite")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output path (\"-\" or empty for stdout, json only)")
	exportCmd.Flags().StringVar(&exportBook, "book", "", "export only the named book (e.g. \"1 Samuel\")")
	rootCmd.AddCommand(exportCmd)
}

func runExport(stdout io.Writer, format, out, book string) error {
	books := catalog.Build()
	if book != "" {
		b, ok := catalog.Find(books, book)
		if !ok {
			return fmt.Errorf("no book named %q in the catalog", book)
		}
		books = []models.Book{b}
	}

	switch format {
	case "json":
		if out == "" || out == "-" {
			return catalog.WriteJSON(stdout, books)
		}
		return exportJSONFile(out, books)
	case "sqlite":
		if out == "" || out == "-" {
			return fmt.Errorf("sqlite export requires --out")
		}
		return exportSQLite(out, books)
	default:
		return fmt.Errorf("unknown export format %q: must be json or sqlite", format)
	}
}

func exportJSONFile(path string, books []models.Book) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	w := bufio.NewWriter(f)
	if err := catalog.WriteJSON(w, books); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	log.Printf("Exported %d books to %s", len(books), path)
	return nil
}

func exportSQLite(path string, books []models.Book) error {
	db, err := database.Open(path)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		return err
	}
	if err := database.SaveCatalog(db, books); err != nil {
		return err
	}
	log.Printf("Exported %d books to %s", len(books), path)
	return nil
}
