package models

import "time"

type LoanModel struct {
	Id            int        `json:"id" gorm:"primaryKey;autoIncrement"`
	Customer      string     `json:"customer" gorm:"type:varchar(100)"`
	CustomerEmail string     `json:"customerEmail" gorm:"column:customer_email;type:varchar(255)"`
	BookId        int        `json:"bookId" gorm:"column:book_id;index;not null"`
	Book          *BookModel `json:"book" gorm:"foreignKey:BookId;references:Id"`
	LoanDate      time.Time  `json:"loanDate" gorm:"type:date;not null"`
	// Returned stays nullable: legacy rows may carry NULL, which counts
	// as "not yet returned" everywhere the flag is read.
	Returned *bool `json:"returned"`
}

func (LoanModel) TableName() string { return "loans" }
