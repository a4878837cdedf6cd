package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/libreshelf/library-backend/src/controllers"
	"github.com/libreshelf/library-backend/src/services"
)

func SetupBookRoutes(router *gin.Engine, service *services.BookService, loanService *services.LoanService, importService *services.CatalogImportService) {
	controller := controllers.NewBookController(service, loanService, importService)

	books := router.Group("/api/books")
	{
		books.POST("", controller.CreateBook)
		books.GET("", controller.FindBooks)
		books.GET("/:id", controller.GetBookByID)
		books.PUT("/:id", controller.UpdateBook)
		books.DELETE("/:id", controller.DeleteBook)
		books.GET("/:id/loans", controller.LoansByBook)
		books.POST("/import", controller.ImportBooks)
	}
}
