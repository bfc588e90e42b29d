package handler

import (
	"net/http"

	"github.com/Astemirdum/bookhaven/bookhaven/internal/model"
	"github.com/labstack/echo/v4"
)

// ListBooks godoc
// @Summary  List books in insertion order
// @Tags     books
// @Produce  json
// @Success  200 {object} model.ListBooks
// @Failure  500 {object} echo.HTTPError
// @Router   /books [get]
func (h *Handler) ListBooks(c echo.Context) error {
	books, err := h.books.List(c.Request().Context())
	if err != nil {
		return apiError(c, err)
	}
	return c.JSON(http.StatusOK, books)
}

// AddBook godoc
// @Summary  Add a book, optionally with a pdf attachment
// @Tags     books
// @Accept   json,mpfd
// @Produce  json
// @Param    request body     model.AddBookRequest true "book"
// @Param    pdf     formData file                 false "attachment"
// @Success  201     {object} model.AddBookResponse
// @Failure  400     {object} errs.ValidationErrorResponse
// @Failure  413     {object} echo.HTTPError
// @Failure  500     {object} echo.HTTPError
// @Router   /books [post]
func (h *Handler) AddBook(c echo.Context) error {
	var req model.AddBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	upload, closeUpload, err := formUpload(c, "pdf")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	defer closeUpload()
	req.PDF = upload

	resp, err := h.books.Add(c.Request().Context(), req)
	if err != nil {
		return apiError(c, err)
	}
	return c.JSON(http.StatusCreated, resp)
}

// BookAttachment godoc
// @Summary  Download the attachment of a book
// @Tags     books
// @Produce  application/pdf
// @Param    id  path     string true "book id"
// @Success  200 {file}   file
// @Failure  404 {object} echo.HTTPError
// @Router   /books/{id}/attachment [get]
func (h *Handler) BookAttachment(c echo.Context) error {
	mediaType, data, err := h.books.Attachment(c.Request().Context(), c.Param("id"))
	if err != nil {
		return apiError(c, err)
	}
	return c.Blob(http.StatusOK, mediaType, data)
}

// ListDonations godoc
// @Summary  List donations, most recent first
// @Tags     donations
// @Produce  json
// @Success  200 {object} model.ListDonations
// @Failure  500 {object} echo.HTTPError
// @Router   /donations [get]
func (h *Handler) ListDonations(c echo.Context) error {
	donations, err := h.donations.List(c.Request().Context())
	if err != nil {
		return apiError(c, err)
	}
	return c.JSON(http.StatusOK, donations)
}

// AddDonation godoc
// @Summary  Record a donation
// @Tags     donations
// @Accept   json
// @Produce  json
// @Param    request body     model.AddDonationRequest true "donation"
// @Success  201     {object} model.AddDonationResponse
// @Failure  400     {object} errs.ValidationErrorResponse
// @Failure  500     {object} echo.HTTPError
// @Router   /donations [post]
func (h *Handler) AddDonation(c echo.Context) error {
	var req model.AddDonationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	resp, err := h.donations.Add(c.Request().Context(), req)
	if err != nil {
		return apiError(c, err)
	}
	return c.JSON(http.StatusCreated, resp)
}

// ListPoems godoc
// @Summary  List poems, most recent first
// @Tags     poems
// @Produce  json
// @Success  200 {object} model.ListPoems
// @Failure  500 {object} echo.HTTPError
// @Router   /poems [get]
func (h *Handler) ListPoems(c echo.Context) error {
	poems, err := h.poems.List(c.Request().Context())
	if err != nil {
		return apiError(c, err)
	}
	return c.JSON(http.StatusOK, poems)
}

// AddPoem godoc
// @Summary  Post a poem
// @Tags     poems
// @Accept   json
// @Produce  json
// @Param    request body     model.AddPoemRequest true "poem"
// @Success  201     {object} model.AddPoemResponse
// @Failure  400     {object} errs.ValidationErrorResponse
// @Failure  500     {object} echo.HTTPError
// @Router   /poems [post]
func (h *Handler) AddPoem(c echo.Context) error {
	var req model.AddPoemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	resp, err := h.poems.Add(c.Request().Context(), req)
	if err != nil {
		return apiError(c, err)
	}
	return c.JSON(http.StatusCreated, resp)
}

// Catalog godoc
// @Summary  List eBook categories with their entries
// @Tags     catalog
// @Produce  json
// @Success  200 {array} model.Category
// @Router   /catalog [get]
func (h *Handler) Catalog(c echo.Context) error {
	return c.JSON(http.StatusOK, h.catalog.Categories())
}

// CatalogCategory godoc
// @Summary  List the eBooks of one category
// @Tags     catalog
// @Produce  json
// @Param    category path     string true "category name"
// @Success  200      {array}  model.EBook
// @Failure  404      {object} echo.HTTPError
// @Router   /catalog/{category} [get]
func (h *Handler) CatalogCategory(c echo.Context) error {
	entries, err := h.catalog.Entries(c.Param("category"))
	if err != nil {
		return apiError(c, err)
	}
	return c.JSON(http.StatusOK, entries)
}
