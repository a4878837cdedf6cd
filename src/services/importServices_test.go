package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	excelize "github.com/xuri/excelize/v2"
)

func buildCatalogSheet(t *testing.T, rows [][]interface{}) *excelize.File {
	t.Helper()
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"Title", "Author", "ISBN"}))
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	return f
}

func TestImportBooks(t *testing.T) {
	db := newTestDB(t)
	books := NewBookService(db)
	importer := NewCatalogImportService(books)

	f := buildCatalogSheet(t, [][]interface{}{
		{"as aventuras", "Fulano", "001"},
		{"outro livro", "Ciclano", "002"},
	})
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	result, err := importer.ImportBooks(buf)

	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)
	assert.Empty(t, result.Errors)

	book, err := books.GetByIsbn("002")
	require.NoError(t, err)
	require.NotNil(t, book)
	assert.Equal(t, "outro livro", book.Title)
}

func TestImportBooksCollectsRowErrors(t *testing.T) {
	db := newTestDB(t)
	books := NewBookService(db)
	importer := NewCatalogImportService(books)
	createTestBook(t, books, "as aventuras", "Fulano", "001")

	f := buildCatalogSheet(t, [][]interface{}{
		{"dup", "Fulano", "001"},          // duplicate isbn
		{"", "Ciclano", "002"},            // missing title
		{"outro livro", "Ciclano", "003"}, // fine
	})
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	result, err := importer.ImportBooks(buf)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)
	require.Len(t, result.Errors, 2)
	assert.Contains(t, result.Errors[0], "Isbn ja cadastrado.")
	assert.Contains(t, result.Errors[1], "row 3")
}

func TestImportBooksRejectsGarbage(t *testing.T) {
	db := newTestDB(t)
	importer := NewCatalogImportService(NewBookService(db))

	_, err := importer.ImportBooks(strings.NewReader("not a spreadsheet"))

	assert.Error(t, err)
}
