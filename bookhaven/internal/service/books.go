package service

import (
	"context"
	"fmt"

	"github.com/Astemirdum/bookhaven/bookhaven/internal/attachment"
	"github.com/Astemirdum/bookhaven/bookhaven/internal/errs"
	"github.com/Astemirdum/bookhaven/bookhaven/internal/model"
	"github.com/Astemirdum/bookhaven/bookhaven/internal/repository"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Books struct {
	base
	coll *collection[model.Book]
}

func NewBooks(repo repository.Repository[model.Book], log *zap.Logger, opts ...Option) *Books {
	log = log.Named("books")
	return &Books{
		base: newBase(log, opts...),
		coll: newCollection(repo, appendBack, log),
	}
}

// Load reads the stored books into memory. Unreadable data yields an empty list.
func (s *Books) Load(ctx context.Context) error {
	return s.coll.load(ctx)
}

func (s *Books) List(ctx context.Context) (model.ListBooks, error) {
	items, err := s.coll.list(ctx)
	if err != nil {
		return model.ListBooks{}, err
	}
	return model.NewList(items), nil
}

// Add validates the request, waits for the optional attachment to be encoded
// and appends the new book at the end of the collection.
func (s *Books) Add(ctx context.Context, req model.AddBookRequest) (model.AddBookResponse, error) {
	if err := s.validate(req, "Please fill in all fields"); err != nil {
		return model.AddBookResponse{}, err
	}

	var pdfURL string
	if req.PDF != nil {
		select {
		case res := <-attachment.Encode(ctx, *req.PDF, s.attachmentLimit):
			if res.Err != nil {
				s.log.Error("encode attachment", zap.String("file", req.PDF.Name), zap.Error(res.Err))
				return model.AddBookResponse{}, res.Err
			}
			pdfURL = res.DataURI
		case <-ctx.Done():
			return model.AddBookResponse{}, ctx.Err()
		}
	}

	book, err := s.coll.add(ctx, func(taken func(string) bool) model.Book {
		return model.Book{
			ID:     s.uniqueID(taken),
			Title:  req.Title,
			Author: req.Author,
			Genre:  req.Genre,
			PDFURL: pdfURL,
		}
	})
	if err != nil {
		s.log.Error("add book", zap.Error(err))
		return model.AddBookResponse{}, err
	}
	s.publish(ctx, model.BooksKey, book.ID, book.Title)

	return model.AddBookResponse{
		Book: book,
		Notice: model.Notice{
			Title:       "Book Added! 📚",
			Description: fmt.Sprintf("%s has been added to your collection", book.Title),
			Variant:     model.VariantDefault,
		},
	}, nil
}

// Attachment decodes the stored attachment of one book.
func (s *Books) Attachment(ctx context.Context, id string) (string, []byte, error) {
	book, err := s.coll.find(ctx, id)
	if err != nil {
		return "", nil, err
	}
	if !book.HasAttachment() {
		return "", nil, errs.ErrNoAttachment
	}
	mediaType, data, err := attachment.Decode(book.PDFURL)
	if err != nil {
		return "", nil, errors.Wrapf(err, "book %s", id)
	}
	return mediaType, data, nil
}

func (s *Books) Clear(ctx context.Context) error {
	return s.coll.clear(ctx)
}
