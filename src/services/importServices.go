package services

import (
	"fmt"
	"io"
	"strings"

	"github.com/libreshelf/library-backend/src/models"
	excelize "github.com/xuri/excelize/v2"
)

type ImportResult struct {
	Imported int      `json:"imported"`
	Errors   []string `json:"errors"`
}

// CatalogImportService bulk-creates books from a spreadsheet. Each data row
// is Title | Author | ISBN; the first row is a header. Row failures are
// collected in the result, they do not abort the import.
type CatalogImportService struct {
	books *BookService
}

func NewCatalogImportService(books *BookService) *CatalogImportService {
	return &CatalogImportService{books: books}
}

func (s *CatalogImportService) ImportBooks(r io.Reader) (*ImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("invalid spreadsheet: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("could not read sheet %s: %w", sheet, err)
	}

	result := &ImportResult{Errors: []string{}}
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		rowNumber := i + 1

		if len(row) < 3 {
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: expected title, author and isbn", rowNumber))
			continue
		}
		title := strings.TrimSpace(row[0])
		author := strings.TrimSpace(row[1])
		isbn := strings.TrimSpace(row[2])
		if title == "" || author == "" || isbn == "" {
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: expected title, author and isbn", rowNumber))
			continue
		}

		book := models.BookModel{Title: title, Author: author, Isbn: isbn}
		if _, err := s.books.Create(&book); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", rowNumber, err))
			continue
		}
		result.Imported++
	}
	return result, nil
}
