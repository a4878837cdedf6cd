package seed

import (
	"log"

	"github.com/libreshelf/library-backend/src/models"
	"gorm.io/gorm"
)

// Seed loads a starter catalog into an empty books table. Safe to run on
// every boot: existing rows short-circuit it.
func Seed(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.BookModel{}).Count(&count).Error; err != nil {
		log.Printf("Seed skipped, could not count books: %v\n", err)
		return
	}
	if count > 0 {
		log.Println("Books already present, skipping seed")
		return
	}

	books := []models.BookModel{
		{Title: "Dom Casmurro", Author: "Machado de Assis", Isbn: "9788535910663"},
		{Title: "Grande Sertão: Veredas", Author: "João Guimarães Rosa", Isbn: "9788535928297"},
		{Title: "Vidas Secas", Author: "Graciliano Ramos", Isbn: "9788501004444"},
		{Title: "A Hora da Estrela", Author: "Clarice Lispector", Isbn: "9788520923399"},
	}

	created := 0
	for _, book := range books {
		if err := db.Create(&book).Error; err != nil {
			log.Printf("Failed to seed book %q: %v\n", book.Title, err)
			continue
		}
		created++
	}
	log.Printf("Seeded %d books\n", created)
}
