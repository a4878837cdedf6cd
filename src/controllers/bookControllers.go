package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/libreshelf/library-backend/src/dtos"
	"github.com/libreshelf/library-backend/src/services"
	"github.com/libreshelf/library-backend/src/utils"
)

type BookController struct {
	service       *services.BookService
	loanService   *services.LoanService
	importService *services.CatalogImportService
}

func NewBookController(service *services.BookService, loanService *services.LoanService, importService *services.CatalogImportService) *BookController {
	return &BookController{
		service:       service,
		loanService:   loanService,
		importService: importService,
	}
}

// parsePageRequest reads the page/size query params, defaulting to the
// first page.
func parsePageRequest(ctx *gin.Context) services.PageRequest {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "0"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "20"))
	return services.PageRequest{Page: page, Size: size}
}

// writeServiceError maps a BusinessError to 400 with the errors payload,
// anything else to 500.
func writeServiceError(ctx *gin.Context, err error) {
	var businessError *services.BusinessError
	if errors.As(err, &businessError) {
		ctx.JSON(http.StatusBadRequest, dtos.NewApiErrors(err))
		return
	}
	ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// CreateBook handles POST requests to register a new book record
func (c *BookController) CreateBook(ctx *gin.Context) {
	var dto dtos.BookDTO
	if err := ctx.ShouldBindJSON(&dto); err != nil {
		ctx.JSON(http.StatusBadRequest, dtos.NewApiErrors(err))
		return
	}

	book, err := c.service.Create(dto.ToModel())
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dtos.ToBookDTO(book))
}

// GetBookByID handles GET requests to retrieve a book by its ID
func (c *BookController) GetBookByID(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid book ID"})
		return
	}

	book, err := c.service.GetByID(id)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if book == nil {
		ctx.Status(http.StatusNotFound)
		return
	}
	ctx.JSON(http.StatusOK, dtos.ToBookDTO(book))
}

// UpdateBook handles PUT requests to change a book's title and author
func (c *BookController) UpdateBook(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid book ID"})
		return
	}

	var dto dtos.BookUpdateDTO
	if err := ctx.ShouldBindJSON(&dto); err != nil {
		ctx.JSON(http.StatusBadRequest, dtos.NewApiErrors(err))
		return
	}

	book, err := c.service.GetByID(id)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if book == nil {
		ctx.Status(http.StatusNotFound)
		return
	}

	book.Title = dto.Title
	book.Author = dto.Author
	updated, err := c.service.Update(book)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dtos.ToBookDTO(updated))
}

// DeleteBook handles DELETE requests to remove a book by its ID
func (c *BookController) DeleteBook(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid book ID"})
		return
	}

	book, err := c.service.GetByID(id)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if book == nil {
		ctx.Status(http.StatusNotFound)
		return
	}

	if err := c.service.Delete(book.Id); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.Status(http.StatusNoContent)
}

// FindBooks handles GET requests to list books filtered by title/author
func (c *BookController) FindBooks(ctx *gin.Context) {
	filter := services.BookFilter{}
	if title := ctx.Query("title"); title != "" {
		filter.Title = &title
	}
	if author := ctx.Query("author"); author != "" {
		filter.Author = &author
	}
	page := parsePageRequest(ctx)

	books, total, err := c.service.Find(filter, page)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	content := make([]dtos.BookDTO, 0, len(books))
	for i := range books {
		content = append(content, dtos.ToBookDTO(&books[i]))
	}
	ctx.JSON(http.StatusOK, dtos.NewPage(content, page.Page, page.Limit(), total))
}

// LoansByBook handles GET requests to list the loans of one book
func (c *BookController) LoansByBook(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid book ID"})
		return
	}

	book, err := c.service.GetByID(id)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if book == nil {
		ctx.Status(http.StatusNotFound)
		return
	}

	page := parsePageRequest(ctx)
	loans, total, err := c.loanService.GetLoansByBook(book, page)
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

// ImportBooks handles POST requests to bulk-load the catalog from an xlsx
// file, uploaded directly or fetched from a Google Drive link.
func (c *BookController) ImportBooks(ctx *gin.Context) {
	if file, _, err := ctx.Request.FormFile("catalog"); err == nil {
		defer file.Close()
		result, err := c.importService.ImportBooks(file)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusOK, result)
		return
	}

	var body struct {
		URL string `json:"url" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Upload a catalog file or pass a url"})
		return
	}
	if !utils.IsGoogleDriveURL(body.URL) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Only Google Drive urls are supported"})
		return
	}

	fileID, err := utils.ExtractFileIDFromURL(body.URL)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	content, _, err := utils.DownloadFileFromGoogleDrive(fileID)
	if err != nil {
		ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	defer content.Close()

	result, err := c.importService.ImportBooks(content)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, result)
}
