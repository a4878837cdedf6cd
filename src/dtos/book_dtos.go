package dtos

import "github.com/libreshelf/library-backend/src/models"

type BookDTO struct {
	Id     int    `json:"id"`
	Title  string `json:"title" binding:"required"`
	Author string `json:"author" binding:"required"`
	Isbn   string `json:"isbn" binding:"required"`
}

func (dto *BookDTO) ToModel() *models.BookModel {
	return &models.BookModel{
		Id:     dto.Id,
		Title:  dto.Title,
		Author: dto.Author,
		Isbn:   dto.Isbn,
	}
}

func ToBookDTO(book *models.BookModel) BookDTO {
	return BookDTO{
		Id:     book.Id,
		Title:  book.Title,
		Author: book.Author,
		Isbn:   book.Isbn,
	}
}

// BookUpdateDTO carries the only fields update may change. The ISBN of a
// book is fixed at creation.
type BookUpdateDTO struct {
	Title  string `json:"title" binding:"required"`
	Author string `json:"author" binding:"required"`
}
