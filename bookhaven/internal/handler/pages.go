package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/Astemirdum/bookhaven/bookhaven/internal/model"
	"github.com/gabriel-vasile/mimetype"
	"github.com/labstack/echo/v4"
)

// page is what every template receives through the layout.
type page struct {
	Title  string
	Nav    string
	Notice *model.Notice
}

type booksPage struct {
	page
	Form  model.AddBookRequest
	Books model.ListBooks
}

type donatePage struct {
	page
	Form      model.AddDonationRequest
	Donations model.ListDonations
}

type knowledgePage struct {
	page
	Form  model.AddPoemRequest
	Poems model.ListPoems
}

type ebooksPage struct {
	page
	Categories []model.Category
}

func (h *Handler) HomePage(c echo.Context) error {
	return c.Render(http.StatusOK, "home.html", page{Title: "BookHaven", Nav: "home"})
}

func (h *Handler) BooksPage(c echo.Context) error {
	return h.renderBooks(c, http.StatusOK, model.AddBookRequest{}, nil)
}

func (h *Handler) SubmitBook(c echo.Context) error {
	var form model.AddBookRequest
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	upload, closeUpload, err := formUpload(c, "pdf")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	defer closeUpload()
	form.PDF = upload

	resp, err := h.books.Add(c.Request().Context(), form)
	if err != nil {
		code, notice := pageNotice(err)
		form.PDF = nil
		return h.renderBooks(c, code, form, notice)
	}
	form.Reset()
	return h.renderBooks(c, http.StatusOK, form, &resp.Notice)
}

func (h *Handler) renderBooks(c echo.Context, code int, form model.AddBookRequest, notice *model.Notice) error {
	books, err := h.books.List(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.Render(code, "books.html", booksPage{
		page:  page{Title: "My Book Collection", Nav: "books", Notice: notice},
		Form:  form,
		Books: books,
	})
}

// BookPDF opens the stored attachment inline in the browser.
func (h *Handler) BookPDF(c echo.Context) error {
	id := c.Param("id")
	mediaType, data, err := h.books.Attachment(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(statusOf(err), err.Error())
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("inline; filename=%q", id+extension(mediaType)))
	return c.Blob(http.StatusOK, mediaType, data)
}

// extension is empty for media types mimetype does not know.
func extension(mediaType string) string {
	if m := mimetype.Lookup(mediaType); m != nil {
		return m.Extension()
	}
	return ""
}

func (h *Handler) DonatePage(c echo.Context) error {
	return h.renderDonate(c, http.StatusOK, model.AddDonationRequest{}, nil)
}

func (h *Handler) SubmitDonation(c echo.Context) error {
	var form model.AddDonationRequest
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	resp, err := h.donations.Add(c.Request().Context(), form)
	if err != nil {
		code, notice := pageNotice(err)
		return h.renderDonate(c, code, form, notice)
	}
	form.Reset()
	return h.renderDonate(c, http.StatusOK, form, &resp.Notice)
}

func (h *Handler) renderDonate(c echo.Context, code int, form model.AddDonationRequest, notice *model.Notice) error {
	donations, err := h.donations.List(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.Render(code, "donate.html", donatePage{
		page:      page{Title: "Donate Books", Nav: "donate", Notice: notice},
		Form:      form,
		Donations: donations,
	})
}

func (h *Handler) KnowledgePage(c echo.Context) error {
	return h.renderKnowledge(c, http.StatusOK, model.AddPoemRequest{}, nil)
}

func (h *Handler) SubmitPoem(c echo.Context) error {
	var form model.AddPoemRequest
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	resp, err := h.poems.Add(c.Request().Context(), form)
	if err != nil {
		code, notice := pageNotice(err)
		return h.renderKnowledge(c, code, form, notice)
	}
	form.Reset()
	return h.renderKnowledge(c, http.StatusOK, form, &resp.Notice)
}

func (h *Handler) renderKnowledge(c echo.Context, code int, form model.AddPoemRequest, notice *model.Notice) error {
	poems, err := h.poems.List(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.Render(code, "knowledge.html", knowledgePage{
		page:  page{Title: "Poetry Corner", Nav: "knowledge", Notice: notice},
		Form:  form,
		Poems: poems,
	})
}

func (h *Handler) EBooksPage(c echo.Context) error {
	return c.Render(http.StatusOK, "ebooks.html", ebooksPage{
		page:       page{Title: "Digital Library", Nav: "ebooks"},
		Categories: h.catalog.Categories(),
	})
}

// ViewEBook redirects to the link of one catalog entry. Fragment-only links
// stay on the catalog page.
func (h *Handler) ViewEBook(c echo.Context) error {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "index is invalid")
	}
	link, err := h.catalog.View(c.Param("category"), index)
	if err != nil {
		return echo.NewHTTPError(statusOf(err), err.Error())
	}
	if strings.HasPrefix(link, "#") {
		link = "/ebooks" + link
	}
	return c.Redirect(http.StatusFound, link)
}
