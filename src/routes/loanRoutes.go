package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/libreshelf/library-backend/src/controllers"
	"github.com/libreshelf/library-backend/src/services"
)

func SetupLoanRoutes(router *gin.Engine, service *services.LoanService, bookService *services.BookService) {
	controller := controllers.NewLoanController(service, bookService)

	loans := router.Group("/api/loans")
	{
		loans.POST("", controller.CreateLoan)
		loans.GET("", controller.FindLoans)
		loans.PATCH("/:id", controller.ReturnLoan)
	}
}
