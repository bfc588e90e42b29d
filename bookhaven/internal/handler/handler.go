package handler

import (
	"net/http"

	_ "github.com/Astemirdum/bookhaven/bookhaven/swagger"
	md "github.com/Astemirdum/bookhaven/pkg/middleware"
	"github.com/Astemirdum/bookhaven/pkg/validate"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

type Handler struct {
	books     BookService
	donations DonationService
	poems     PoemService
	catalog   CatalogService
	log       *zap.Logger
}

func New(books BookService, donations DonationService, poems PoemService, catalog CatalogService, log *zap.Logger) *Handler {
	return &Handler{
		books:     books,
		donations: donations,
		poems:     poems,
		catalog:   catalog,
		log:       log.Named("handler"),
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPost},
	}))
	e.Validator = validate.NewCustomValidator()
	e.Renderer = NewRenderer()

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	pages := base.Group("",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
	)
	pages.GET("/", h.HomePage)
	pages.GET("/books", h.BooksPage)
	pages.POST("/books", h.SubmitBook)
	pages.GET("/books/:id/pdf", h.BookPDF)
	pages.GET("/donate", h.DonatePage)
	pages.POST("/donate", h.SubmitDonation)
	pages.GET("/knowledge", h.KnowledgePage)
	pages.POST("/knowledge", h.SubmitPoem)
	pages.GET("/ebooks", h.EBooksPage)
	pages.GET("/ebooks/:category/:index/view", h.ViewEBook)

	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)
	api.GET("/books", h.ListBooks)
	api.POST("/books", h.AddBook)
	api.GET("/books/:id/attachment", h.BookAttachment)

	api.GET("/donations", h.ListDonations)
	api.POST("/donations", h.AddDonation)

	api.GET("/poems", h.ListPoems)
	api.POST("/poems", h.AddPoem)

	api.GET("/catalog", h.Catalog)
	api.GET("/catalog/:category", h.CatalogCategory)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}
