package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/libreshelf/library-backend/src/dtos"
	"github.com/libreshelf/library-backend/src/models"
	"github.com/libreshelf/library-backend/src/services"
)

type LoanController struct {
	service     *services.LoanService
	bookService *services.BookService
}

func NewLoanController(service *services.LoanService, bookService *services.BookService) *LoanController {
	return &LoanController{service: service, bookService: bookService}
}

// CreateLoan handles POST requests to register a loan against a book,
// referenced by ISBN
func (c *LoanController) CreateLoan(ctx *gin.Context) {
	var dto dtos.LoanRequestDTO
	if err := ctx.ShouldBindJSON(&dto); err != nil {
		ctx.JSON(http.StatusBadRequest, dtos.NewApiErrors(err))
		return
	}

	book, err := c.bookService.GetByIsbn(dto.Isbn)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if book == nil {
		ctx.JSON(http.StatusBadRequest, dtos.ApiErrors{Errors: []string{"Book not found for passed isbn"}})
		return
	}

	loan := models.LoanModel{
		Customer:      dto.Customer,
		CustomerEmail: dto.Email,
		BookId:        book.Id,
		LoanDate:      time.Now(),
	}
	created, err := c.service.Register(&loan)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"id": created.Id})
}

// ReturnLoan handles PATCH requests to flip a loan's returned flag
func (c *LoanController) ReturnLoan(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid loan ID"})
		return
	}

	var dto dtos.ReturnedLoanDTO
	if err := ctx.ShouldBindJSON(&dto); err != nil {
		ctx.JSON(http.StatusBadRequest, dtos.NewApiErrors(err))
		return
	}

	loan, err := c.service.MarkReturned(id, *dto.Returned)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if loan == nil {
		ctx.Status(http.StatusNotFound)
		return
	}
	ctx.JSON(http.StatusOK, dtos.ToLoanDTO(loan))
}

// FindLoans handles GET requests to list loans by book ISBN or customer
func (c *LoanController) FindLoans(ctx *gin.Context) {
	isbn := ctx.Query("isbn")
	customer := ctx.Query("customer")
	page := parsePageRequest(ctx)

	loans, total, err := c.service.Find(isbn, customer, page)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	content := make([]dtos.LoanDTO, 0, len(loans))
	for i := range loans {
		content = append(content, dtos.ToLoanDTO(&loans[i]))
	}
	ctx.JSON(http.StatusOK, dtos.NewPage(content, page.Page, page.Limit(), total))
}
