package handler_test

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/Astemirdum/bookhaven/bookhaven/internal/errs"
	"github.com/Astemirdum/bookhaven/bookhaven/internal/handler"
	"github.com/Astemirdum/bookhaven/bookhaven/internal/model"
	"github.com/Astemirdum/bookhaven/pkg/validate"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	service_mocks "github.com/Astemirdum/bookhaven/bookhaven/internal/handler/mocks"
)

type mocks struct {
	books     *service_mocks.MockBookService
	donations *service_mocks.MockDonationService
	poems     *service_mocks.MockPoemService
	catalog   *service_mocks.MockCatalogService
}

func newHandler(t *testing.T) (*handler.Handler, mocks) {
	c := gomock.NewController(t)
	m := mocks{
		books:     service_mocks.NewMockBookService(c),
		donations: service_mocks.NewMockDonationService(c),
		poems:     service_mocks.NewMockPoemService(c),
		catalog:   service_mocks.NewMockCatalogService(c),
	}
	log := zap.NewExample().Named("test")
	return handler.New(m.books, m.donations, m.poems, m.catalog, log), m
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validate.NewCustomValidator()
	e.Renderer = handler.NewRenderer()
	return e
}

func TestHandler_ListBooks(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockBookService)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockBookService) {
				r.EXPECT().
					List(context.Background()).
					Return(model.NewList([]model.Book{
						{ID: "b1", Title: "Мастер и Маргарита", Author: "Булгаков", Genre: "Роман"},
					}), nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"total":1,"items":[{"id":"b1","title":"Мастер и Маргарита","author":"Булгаков","genre":"Роман","pdfUrl":""}]}`,
			},
		},
		{
			name: "ok. empty",
			mockBehavior: func(r *service_mocks.MockBookService) {
				r.EXPECT().List(context.Background()).Return(model.NewList[model.Book](nil), nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"total":0,"items":[]}`,
			},
		},
		{
			name: "err. internal",
			mockBehavior: func(r *service_mocks.MockBookService) {
				r.EXPECT().List(context.Background()).Return(model.ListBooks{}, errors.New("store unavailable"))
			},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"message":"store unavailable"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, m := newHandler(t)
			e := newEcho()
			e.GET("/books", h.ListBooks)

			r := httptest.NewRequest(http.MethodGet, "/books", http.NoBody)
			w := httptest.NewRecorder()

			tt.mockBehavior(m.books)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_AddBook(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockBookService)

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			body: `{"title":"Dune","author":"Frank Herbert","genre":"Sci-Fi"}`,
			mockBehavior: func(r *service_mocks.MockBookService) {
				r.EXPECT().
					Add(context.Background(), model.AddBookRequest{Title: "Dune", Author: "Frank Herbert", Genre: "Sci-Fi"}).
					Return(model.AddBookResponse{
						Book: model.Book{ID: "b1", Title: "Dune", Author: "Frank Herbert", Genre: "Sci-Fi"},
						Notice: model.Notice{
							Title:       "Book Added! 📚",
							Description: "Dune has been added to your collection",
							Variant:     model.VariantDefault,
						},
					}, nil)
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"book":{"id":"b1","title":"Dune","author":"Frank Herbert","genre":"Sci-Fi","pdfUrl":""},"notice":{"title":"Book Added! 📚","description":"Dune has been added to your collection","variant":"default"}}`,
			},
		},
		{
			name: "err. missing genre",
			body: `{"title":"Dune","author":"Frank Herbert"}`,
			mockBehavior: func(r *service_mocks.MockBookService) {
				r.EXPECT().
					Add(context.Background(), model.AddBookRequest{Title: "Dune", Author: "Frank Herbert"}).
					Return(model.AddBookResponse{}, errs.NewValidationError([]string{"genre"}, "Please fill in all fields"))
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"missing required fields: genre","fields":["genre"],"notice":{"title":"Missing Information","description":"Please fill in all fields","variant":"destructive"}}`,
			},
		},
		{
			name:         "err. malformed body",
			body:         `{"title":`,
			mockBehavior: func(r *service_mocks.MockBookService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
			},
		},
		{
			name: "err. persist",
			body: `{"title":"Dune","author":"Frank Herbert","genre":"Sci-Fi"}`,
			mockBehavior: func(r *service_mocks.MockBookService) {
				r.EXPECT().
					Add(context.Background(), gomock.Any()).
					Return(model.AddBookResponse{}, errors.New("save books: quota exceeded"))
			},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"message":"save books: quota exceeded"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, m := newHandler(t)
			e := newEcho()
			e.POST("/books", h.AddBook)

			r := httptest.NewRequest(http.MethodPost, "/books", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(m.books)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}

func multipartBook(t *testing.T, fields map[string]string, fileName string, file []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if fileName != "" {
		fw, err := mw.CreateFormFile("pdf", fileName)
		require.NoError(t, err)
		_, err = fw.Write(file)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return body, mw.FormDataContentType()
}

func TestHandler_AddBookMultipart(t *testing.T) {
	t.Parallel()
	h, m := newHandler(t)
	e := newEcho()
	e.POST("/books", h.AddBook)

	pdf := []byte("%PDF-1.4\n%%EOF\n")
	body, contentType := multipartBook(t, map[string]string{
		"title": "Dune", "author": "Frank Herbert", "genre": "Sci-Fi",
	}, "dune.pdf", pdf)

	m.books.EXPECT().
		Add(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req model.AddBookRequest) (model.AddBookResponse, error) {
			require.Equal(t, "Dune", req.Title)
			require.NotNil(t, req.PDF)
			require.Equal(t, "dune.pdf", req.PDF.Name)
			data, err := io.ReadAll(req.PDF.Reader)
			require.NoError(t, err)
			require.Equal(t, pdf, data)
			return model.AddBookResponse{Book: model.Book{ID: "b1", Title: req.Title, PDFURL: "data:application/pdf;base64,JVBERi0xLjQKJSVFT0YK"}}, nil
		})

	r := httptest.NewRequest(http.MethodPost, "/books", body)
	r.Header.Set(echo.HeaderContentType, contentType)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusCreated, w.Code)
	require.Contains(t, w.Body.String(), `"pdfUrl":"data:application/pdf;base64,JVBERi0xLjQKJSVFT0YK"`)
}

func TestHandler_BookAttachment(t *testing.T) {
	t.Parallel()
	var tests = []struct {
		name         string
		id           string
		mockBehavior func(r *service_mocks.MockBookService, id string)
		expectedCode int
		expectedType string
		expectedBody string
	}{
		{
			name: "ok",
			id:   "b1",
			mockBehavior: func(r *service_mocks.MockBookService, id string) {
				r.EXPECT().Attachment(context.Background(), id).Return("application/pdf", []byte("%PDF-1.4"), nil)
			},
			expectedCode: http.StatusOK,
			expectedType: "application/pdf",
			expectedBody: "%PDF-1.4",
		},
		{
			name: "err. no attachment",
			id:   "b2",
			mockBehavior: func(r *service_mocks.MockBookService, id string) {
				r.EXPECT().Attachment(context.Background(), id).Return("", nil, errs.ErrNoAttachment)
			},
			expectedCode: http.StatusNotFound,
			expectedType: echo.MIMEApplicationJSON,
			expectedBody: `{"message":"book has no attachment"}`,
		},
		{
			name: "err. unknown book",
			id:   "nope",
			mockBehavior: func(r *service_mocks.MockBookService, id string) {
				r.EXPECT().Attachment(context.Background(), id).Return("", nil, errs.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedType: echo.MIMEApplicationJSON,
			expectedBody: `{"message":"not found"}`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, m := newHandler(t)
			e := newEcho()
			e.GET("/books/:id/attachment", h.BookAttachment)

			r := httptest.NewRequest(http.MethodGet, "/books/"+tt.id+"/attachment", http.NoBody)
			w := httptest.NewRecorder()

			tt.mockBehavior(m.books, tt.id)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.expectedCode, w.Code)
			require.True(t, strings.HasPrefix(w.Header().Get(echo.HeaderContentType), tt.expectedType))
			require.Equal(t, tt.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_AddDonation(t *testing.T) {
	t.Parallel()
	h, m := newHandler(t)
	e := newEcho()
	e.POST("/donations", h.AddDonation)

	m.donations.EXPECT().
		Add(context.Background(), model.AddDonationRequest{BookTitle: "1984", Notes: "first edition"}).
		Return(model.AddDonationResponse{}, errs.NewValidationError([]string{"donorName", "condition"}, "Please fill in required fields"))

	r := httptest.NewRequest(http.MethodPost, "/donations", strings.NewReader(`{"bookTitle":"1984","notes":"first edition"}`))
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t,
		`{"message":"missing required fields: donorName, condition","fields":["donorName","condition"],"notice":{"title":"Missing Information","description":"Please fill in required fields","variant":"destructive"}}`,
		strings.Trim(w.Body.String(), "\n"))
}

func TestHandler_Poems(t *testing.T) {
	t.Parallel()
	h, m := newHandler(t)
	e := newEcho()
	e.GET("/poems", h.ListPoems)
	e.POST("/poems", h.AddPoem)

	poem := model.Poem{ID: "p1", Title: "Ode", Content: "line one\n  line two", Author: "Keats", Date: "3/14/2024"}
	gomock.InOrder(
		m.poems.EXPECT().
			Add(context.Background(), model.AddPoemRequest{Title: "Ode", Content: "line one\n  line two", Author: "Keats"}).
			Return(model.AddPoemResponse{Poem: poem, Notice: model.Notice{Title: "Poetry Posted! ✍️", Description: "Your beautiful words have been shared", Variant: model.VariantDefault}}, nil),
		m.poems.EXPECT().List(context.Background()).Return(model.NewList([]model.Poem{poem}), nil),
	)

	r := httptest.NewRequest(http.MethodPost, "/poems", strings.NewReader(`{"title":"Ode","content":"line one\n  line two","author":"Keats"}`))
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)
	require.Equal(t, http.StatusCreated, w.Code)
	require.Contains(t, w.Body.String(), `"notice":{"title":"Poetry Posted! ✍️"`)

	r = httptest.NewRequest(http.MethodGet, "/poems", http.NoBody)
	w = httptest.NewRecorder()
	e.ServeHTTP(w, r)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t,
		`{"total":1,"items":[{"id":"p1","title":"Ode","content":"line one\n  line two","author":"Keats","date":"3/14/2024"}]}`,
		strings.Trim(w.Body.String(), "\n"))
}

func TestHandler_CatalogCategory(t *testing.T) {
	t.Parallel()
	var tests = []struct {
		name         string
		category     string
		mockBehavior func(r *service_mocks.MockCatalogService, category string)
		expectedCode int
		expectedBody string
	}{
		{
			name:     "ok",
			category: "Motivation",
			mockBehavior: func(r *service_mocks.MockCatalogService, category string) {
				r.EXPECT().Entries(category).Return([]model.EBook{
					{Title: "Unstoppable You", Author: "Lisa Anderson", Description: "Unleash your inner champion", PDFURL: "#"},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `[{"title":"Unstoppable You","author":"Lisa Anderson","description":"Unleash your inner champion","pdfUrl":"#"}]`,
		},
		{
			name:     "err. unknown category",
			category: "Poetry",
			mockBehavior: func(r *service_mocks.MockCatalogService, category string) {
				r.EXPECT().Entries(category).Return(nil, errs.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"message":"not found"}`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, m := newHandler(t)
			e := newEcho()
			e.GET("/catalog/:category", h.CatalogCategory)

			r := httptest.NewRequest(http.MethodGet, "/catalog/"+tt.category, http.NoBody)
			w := httptest.NewRecorder()

			tt.mockBehavior(m.catalog, tt.category)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.expectedCode, w.Code)
			require.Equal(t, tt.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_Pages(t *testing.T) {
	t.Parallel()

	t.Run("health", func(t *testing.T) {
		t.Parallel()
		h, _ := newHandler(t)
		w := httptest.NewRecorder()
		h.NewRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/manage/health", http.NoBody))
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "OK", w.Body.String())
	})

	t.Run("home", func(t *testing.T) {
		t.Parallel()
		h, _ := newHandler(t)
		w := httptest.NewRecorder()
		h.NewRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", http.NoBody))
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), "Welcome to BookHaven 📖")
	})

	t.Run("books empty state", func(t *testing.T) {
		t.Parallel()
		h, m := newHandler(t)
		m.books.EXPECT().List(gomock.Any()).Return(model.NewList[model.Book](nil), nil)

		w := httptest.NewRecorder()
		h.NewRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/books", http.NoBody))
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), "No books yet. Add your first book above! 🌸")
	})

	t.Run("books with attachment link", func(t *testing.T) {
		t.Parallel()
		h, m := newHandler(t)
		m.books.EXPECT().List(gomock.Any()).Return(model.NewList([]model.Book{
			{ID: "b1", Title: "Dune", Author: "Frank Herbert", Genre: "Sci-Fi", PDFURL: "data:application/pdf;base64,JVBERg=="},
			{ID: "b2", Title: "Emma", Author: "Jane Austen", Genre: "Classic"},
		}), nil)

		w := httptest.NewRecorder()
		h.NewRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/books", http.NoBody))
		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		require.Contains(t, body, "by Frank Herbert")
		require.Contains(t, body, `href="/books/b1/pdf"`)
		require.NotContains(t, body, `href="/books/b2/pdf"`)
		require.NotContains(t, body, "No books yet")
	})

	t.Run("poem validation keeps the form", func(t *testing.T) {
		t.Parallel()
		h, m := newHandler(t)
		m.poems.EXPECT().
			Add(gomock.Any(), model.AddPoemRequest{Title: "Ode", Author: "Keats"}).
			Return(model.AddPoemResponse{}, errs.NewValidationError([]string{"content"}, "Please fill in all fields"))
		m.poems.EXPECT().List(gomock.Any()).Return(model.NewList[model.Poem](nil), nil)

		form := url.Values{"title": {"Ode"}, "author": {"Keats"}, "content": {""}}
		r := httptest.NewRequest(http.MethodPost, "/knowledge", strings.NewReader(form.Encode()))
		r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		w := httptest.NewRecorder()
		h.NewRouter().ServeHTTP(w, r)

		require.Equal(t, http.StatusBadRequest, w.Code)
		body := w.Body.String()
		require.Contains(t, body, `class="notice destructive"`)
		require.Contains(t, body, "Missing Information")
		require.Contains(t, body, `placeholder="Poem Title" value="Ode"`)
		require.Contains(t, body, "No poems yet. Be the first to share your words! 🌸")
	})

	t.Run("donation success resets the form", func(t *testing.T) {
		t.Parallel()
		h, m := newHandler(t)
		donation := model.Donation{ID: "d1", BookTitle: "Emma", DonorName: "Ana", Condition: "Good", Date: "3/14/2024"}
		m.donations.EXPECT().
			Add(gomock.Any(), model.AddDonationRequest{BookTitle: "Emma", DonorName: "Ana", Condition: "Good"}).
			Return(model.AddDonationResponse{Donation: donation, Notice: model.Notice{Title: "Thank You! 💝", Description: "Your donation has been recorded", Variant: model.VariantDefault}}, nil)
		m.donations.EXPECT().List(gomock.Any()).Return(model.NewList([]model.Donation{donation}), nil)

		form := url.Values{"bookTitle": {"Emma"}, "donorName": {"Ana"}, "condition": {"Good"}}
		r := httptest.NewRequest(http.MethodPost, "/donate", strings.NewReader(form.Encode()))
		r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		w := httptest.NewRecorder()
		h.NewRouter().ServeHTTP(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		require.Contains(t, body, "Thank You! 💝")
		require.Contains(t, body, `placeholder="Book Title *" value=""`)
		require.Contains(t, body, "Donated by Ana · 3/14/2024")
	})

	t.Run("book persist failure shows an error notice", func(t *testing.T) {
		t.Parallel()
		h, m := newHandler(t)
		m.books.EXPECT().Add(gomock.Any(), gomock.Any()).Return(model.AddBookResponse{}, errors.New("save books: quota exceeded"))
		m.books.EXPECT().List(gomock.Any()).Return(model.NewList[model.Book](nil), nil)

		body, contentType := multipartBook(t, map[string]string{"title": "Dune", "author": "Frank Herbert", "genre": "Sci-Fi"}, "", nil)
		r := httptest.NewRequest(http.MethodPost, "/books", body)
		r.Header.Set(echo.HeaderContentType, contentType)
		w := httptest.NewRecorder()
		h.NewRouter().ServeHTTP(w, r)

		require.Equal(t, http.StatusInternalServerError, w.Code)
		require.Contains(t, w.Body.String(), "save books: quota exceeded")
		require.Contains(t, w.Body.String(), `placeholder="Book Title" value="Dune"`)
	})

	t.Run("book attachment filename follows media type", func(t *testing.T) {
		t.Parallel()
		tests := []struct {
			mediaType           string
			expectedDisposition string
		}{
			{mediaType: "application/pdf", expectedDisposition: `inline; filename="b1.pdf"`},
			{mediaType: "image/png", expectedDisposition: `inline; filename="b1.png"`},
			{mediaType: "application/x-bookhaven", expectedDisposition: `inline; filename="b1"`},
		}
		for _, tt := range tests {
			tt := tt
			t.Run(tt.mediaType, func(t *testing.T) {
				t.Parallel()
				h, m := newHandler(t)
				m.books.EXPECT().Attachment(gomock.Any(), "b1").Return(tt.mediaType, []byte("%PDF-1.4"), nil)

				w := httptest.NewRecorder()
				h.NewRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/books/b1/pdf", http.NoBody))
				require.Equal(t, http.StatusOK, w.Code)
				require.Equal(t, tt.mediaType, w.Header().Get(echo.HeaderContentType))
				require.Equal(t, tt.expectedDisposition, w.Header().Get(echo.HeaderContentDisposition))
				require.Equal(t, "%PDF-1.4", w.Body.String())
			})
		}
	})

	t.Run("ebooks", func(t *testing.T) {
		t.Parallel()
		h, m := newHandler(t)
		m.catalog.EXPECT().Categories().Return([]model.Category{
			{Name: "Motivation", Entries: []model.EBook{{Title: "Unstoppable You", Author: "Lisa Anderson", PDFURL: "#"}}},
		})

		w := httptest.NewRecorder()
		h.NewRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ebooks", http.NoBody))
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), "Unstoppable You")
		require.Contains(t, w.Body.String(), `href="/ebooks/Motivation/0/view"`)
	})
}

func TestHandler_ViewEBook(t *testing.T) {
	t.Parallel()
	var tests = []struct {
		name             string
		path             string
		mockBehavior     func(r *service_mocks.MockCatalogService)
		expectedCode     int
		expectedLocation string
	}{
		{
			name: "placeholder link",
			path: "/ebooks/Fiction/1/view",
			mockBehavior: func(r *service_mocks.MockCatalogService) {
				r.EXPECT().View("Fiction", 1).Return("#", nil)
			},
			expectedCode:     http.StatusFound,
			expectedLocation: "/ebooks#",
		},
		{
			name: "external link",
			path: "/ebooks/Self-Help/0/view",
			mockBehavior: func(r *service_mocks.MockCatalogService) {
				r.EXPECT().View("Self-Help", 0).Return("https://example.org/mindful.pdf", nil)
			},
			expectedCode:     http.StatusFound,
			expectedLocation: "https://example.org/mindful.pdf",
		},
		{
			name:         "err. index",
			path:         "/ebooks/Fiction/first/view",
			mockBehavior: func(r *service_mocks.MockCatalogService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "err. out of range",
			path: "/ebooks/Fiction/7/view",
			mockBehavior: func(r *service_mocks.MockCatalogService) {
				r.EXPECT().View("Fiction", 7).Return("", errs.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, m := newHandler(t)
			e := newEcho()
			e.GET("/ebooks/:category/:index/view", h.ViewEBook)

			tt.mockBehavior(m.catalog)
			w := httptest.NewRecorder()
			e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, http.NoBody))

			require.Equal(t, tt.expectedCode, w.Code)
			require.Equal(t, tt.expectedLocation, w.Header().Get(echo.HeaderLocation))
		})
	}
}
