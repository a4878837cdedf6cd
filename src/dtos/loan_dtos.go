package dtos

import (
	"time"

	"github.com/libreshelf/library-backend/src/models"
)

// LoanRequestDTO is the body of POST /api/loans. The book is referenced by
// ISBN, not id.
type LoanRequestDTO struct {
	Isbn     string `json:"isbn" binding:"required"`
	Customer string `json:"customer" binding:"required"`
	Email    string `json:"email" binding:"required"`
}

type LoanDTO struct {
	Id            int      `json:"id"`
	Customer      string   `json:"customer"`
	CustomerEmail string   `json:"customerEmail"`
	Book          *BookDTO `json:"book,omitempty"`
	LoanDate      string   `json:"loanDate"`
	Returned      bool     `json:"returned"`
}

// ReturnedLoanDTO is the body of PATCH /api/loans/:id.
type ReturnedLoanDTO struct {
	Returned *bool `json:"returned" binding:"required"`
}

func ToLoanDTO(loan *models.LoanModel) LoanDTO {
	dto := LoanDTO{
		Id:            loan.Id,
		Customer:      loan.Customer,
		CustomerEmail: loan.CustomerEmail,
		LoanDate:      loan.LoanDate.Format(time.DateOnly),
		Returned:      loan.Returned != nil && *loan.Returned,
	}
	if loan.Book != nil {
		book := ToBookDTO(loan.Book)
		dto.Book = &book
	}
	return dto
}
