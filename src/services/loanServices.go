package services

import (
	"errors"
	"time"

	"github.com/libreshelf/library-backend/src/models"
	"gorm.io/gorm"
)

const bookAlreadyLoanedMessage = "Book already loaned"

type LoanService struct {
	db *gorm.DB
}

// NewLoanService creates a new instance of LoanService
func NewLoanService(db *gorm.DB) *LoanService {
	return &LoanService{db: db}
}

// activeLoanCondition matches loans still out: returned is false, or NULL
// on rows written before the flag existed.
const activeLoanCondition = "book_id = ? AND (returned IS NULL OR returned = ?)"

// Register creates a new Loan record. A book with an active loan cannot be
// loaned again; the check and the insert share one transaction so two
// concurrent registrations cannot both pass it.
func (s *LoanService) Register(loan *models.LoanModel) (*models.LoanModel, error) {
	if loan.LoanDate.IsZero() {
		loan.LoanDate = time.Now()
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.LoanModel{}).
			Where(activeLoanCondition, loan.BookId, false).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return NewBusinessError(bookAlreadyLoanedMessage)
		}

		returned := false
		loan.Returned = &returned
		loan.Id = 0
		return tx.Create(loan).Error
	})
	if err != nil {
		return nil, err
	}

	return s.GetByID(loan.Id)
}

// GetByID retrieves a Loan record with its book, or (nil, nil) when absent.
func (s *LoanService) GetByID(id int) (*models.LoanModel, error) {
	var loan models.LoanModel
	result := s.db.Preload("Book").First(&loan, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &loan, nil
}

// MarkReturned updates the returned flag of a loan. Returns (nil, nil)
// when the loan does not exist.
func (s *LoanService) MarkReturned(id int, returned bool) (*models.LoanModel, error) {
	loan, err := s.GetByID(id)
	if err != nil || loan == nil {
		return nil, err
	}

	if err := s.db.Model(loan).Update("returned", returned).Error; err != nil {
		return nil, err
	}
	loan.Returned = &returned
	return loan, nil
}

// GetLoansByBook returns one page of loans referencing the given book.
func (s *LoanService) GetLoansByBook(book *models.BookModel, page PageRequest) ([]models.LoanModel, int64, error) {
	query := s.db.Model(&models.LoanModel{}).Where("book_id = ?", book.Id)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var loans []models.LoanModel
	result := query.
		Preload("Book").
		Order("id").
		Offset(page.Offset()).
		Limit(page.Limit()).
		Find(&loans)
	if result.Error != nil {
		return nil, 0, result.Error
	}
	return loans, total, nil
}

// Find returns loans whose book carries the given ISBN or whose customer
// matches the given name. The filter is disjunctive.
func (s *LoanService) Find(isbn, customer string, page PageRequest) ([]models.LoanModel, int64, error) {
	query := s.db.Model(&models.LoanModel{}).
		Joins("JOIN books ON books.id = loans.book_id").
		Where("books.isbn = ? OR loans.customer = ?", isbn, customer)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var loans []models.LoanModel
	result := query.
		Preload("Book").
		Order("loans.id").
		Offset(page.Offset()).
		Limit(page.Limit()).
		Find(&loans)
	if result.Error != nil {
		return nil, 0, result.Error
	}
	return loans, total, nil
}

// FindOverdue returns every active loan whose loan date is on or before
// the cutoff. Not paginated: the overdue sweep wants the whole set.
func (s *LoanService) FindOverdue(cutoff time.Time) ([]models.LoanModel, error) {
	var loans []models.LoanModel
	result := s.db.
		Preload("Book").
		Where("loan_date <= ? AND (returned IS NULL OR returned = ?)", cutoff, false).
		Find(&loans)
	if result.Error != nil {
		return nil, result.Error
	}
	return loans, nil
}
