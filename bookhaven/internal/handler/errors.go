package handler

import (
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/Astemirdum/bookhaven/bookhaven/internal/errs"
	"github.com/Astemirdum/bookhaven/bookhaven/internal/model"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrNotFound), errors.Is(err, errs.ErrNoAttachment):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrAttachmentTooLarge):
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}

// apiError maps a service error onto the JSON error body.
func apiError(c echo.Context, err error) error {
	if verr, ok := errs.IsValidation(err); ok {
		return c.JSON(http.StatusBadRequest, errs.ValidationErrorResponse{
			Message: verr.Error(),
			Fields:  verr.Fields,
			Notice:  verr.Notice,
		})
	}
	return echo.NewHTTPError(statusOf(err), err.Error())
}

// pageNotice maps a service error onto the status and notice of a re-rendered page.
func pageNotice(err error) (int, *model.Notice) {
	if verr, ok := errs.IsValidation(err); ok {
		n := verr.Notice
		return http.StatusBadRequest, &n
	}
	return statusOf(err), &model.Notice{
		Title:       "Something went wrong",
		Description: err.Error(),
		Variant:     model.VariantDestructive,
	}
}

func nopClose() {}

// formUpload opens the optional file part of a multipart submission.
// The returned func closes it.
func formUpload(c echo.Context, field string) (*model.Upload, func(), error) {
	if !strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		return nil, nopClose, nil
	}
	fh, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nopClose, nil
	}
	if err != nil {
		return nil, nopClose, err
	}
	return openUpload(fh)
}

func openUpload(fh *multipart.FileHeader) (*model.Upload, func(), error) {
	f, err := fh.Open()
	if err != nil {
		return nil, nopClose, errors.Wrapf(err, "open %s", fh.Filename)
	}
	up := &model.Upload{
		Name:        fh.Filename,
		ContentType: fh.Header.Get(echo.HeaderContentType),
		Reader:      f,
	}
	return up, func() { _ = f.Close() }, nil
}
