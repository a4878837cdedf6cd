package services

import (
	"errors"

	"github.com/libreshelf/library-backend/src/models"
	"gorm.io/gorm"
)

const duplicateIsbnMessage = "Isbn ja cadastrado."

// BookFilter holds the optional search predicates of the book listing.
// Present fields are ANDed as equality conditions, absent fields are
// ignored.
type BookFilter struct {
	Title  *string
	Author *string
}

type BookService struct {
	db *gorm.DB
}

// NewBookService creates a new instance of BookService
func NewBookService(db *gorm.DB) *BookService {
	return &BookService{db: db}
}

// ExistsByIsbn reports whether any book carries the given ISBN.
func (s *BookService) ExistsByIsbn(isbn string) (bool, error) {
	var count int64
	result := s.db.Model(&models.BookModel{}).Where("isbn = ?", isbn).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// Create persists a new Book record. The pre-check gives the duplicate its
// proper error message; the unique index on isbn is the guard that holds
// under concurrent creates, and its violation maps to the same message.
func (s *BookService) Create(book *models.BookModel) (*models.BookModel, error) {
	exists, err := s.ExistsByIsbn(book.Isbn)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, NewBusinessError(duplicateIsbnMessage)
	}

	book.Id = 0
	if err := s.db.Create(book).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, NewBusinessError(duplicateIsbnMessage)
		}
		return nil, err
	}
	return book, nil
}

// GetByID retrieves a Book record by its ID. Absence is not an error: the
// result is (nil, nil) and the caller decides what that means.
func (s *BookService) GetByID(id int) (*models.BookModel, error) {
	var book models.BookModel
	result := s.db.First(&book, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &book, nil
}

// GetByIsbn retrieves the Book carrying the given ISBN, or (nil, nil).
func (s *BookService) GetByIsbn(isbn string) (*models.BookModel, error) {
	var book models.BookModel
	result := s.db.Where("isbn = ?", isbn).First(&book)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &book, nil
}

// Update persists title and author changes. The ISBN column is never
// written; callers must have fetched the book first, so an id is required.
func (s *BookService) Update(book *models.BookModel) (*models.BookModel, error) {
	if book.Id == 0 {
		return nil, errors.New("book id is required for update")
	}

	updates := map[string]interface{}{
		"title":  book.Title,
		"author": book.Author,
	}
	if err := s.db.Model(&models.BookModel{}).Where("id = ?", book.Id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetByID(book.Id)
}

// Delete removes a Book record by its ID, unconditionally. Outstanding
// loans keep their book_id and are not touched.
func (s *BookService) Delete(id int) error {
	return s.db.Delete(&models.BookModel{}, id).Error
}

// Find returns one page of books matching the filter, plus the total match
// count.
func (s *BookService) Find(filter BookFilter, page PageRequest) ([]models.BookModel, int64, error) {
	query := s.db.Model(&models.BookModel{})
	if filter.Title != nil {
		query = query.Where("title = ?", *filter.Title)
	}
	if filter.Author != nil {
		query = query.Where("author = ?", *filter.Author)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var books []models.BookModel
	result := query.
		Order("id").
		Offset(page.Offset()).
		Limit(page.Limit()).
		Find(&books)
	if result.Error != nil {
		return nil, 0, result.Error
	}
	return books, total, nil
}
