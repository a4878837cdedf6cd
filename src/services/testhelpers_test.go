package services

import (
	"fmt"
	"testing"

	"github.com/libreshelf/library-backend/src/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// Named in-memory DB with shared cache: every pooled connection must
	// see the same database.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.BookModel{}, &models.LoanModel{}))
	return db
}

func createTestBook(t *testing.T, service *BookService, title, author, isbn string) *models.BookModel {
	t.Helper()
	book, err := service.Create(&models.BookModel{Title: title, Author: author, Isbn: isbn})
	require.NoError(t, err)
	return book
}
