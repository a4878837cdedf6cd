package models

type BookModel struct {
	Id     int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Title  string `json:"title" gorm:"type:varchar(255);not null"`
	Author string `json:"author" gorm:"type:varchar(255);not null"`
	Isbn   string `json:"isbn" gorm:"type:varchar(32);not null;uniqueIndex"`
}

func (BookModel) TableName() string { return "books" }
