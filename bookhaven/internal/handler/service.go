package handler

import (
	"context"

	"github.com/Astemirdum/bookhaven/bookhaven/internal/model"
	"github.com/Astemirdum/bookhaven/bookhaven/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

var (
	_ BookService     = (*service.Books)(nil)
	_ DonationService = (*service.Donations)(nil)
	_ PoemService     = (*service.Poems)(nil)
	_ CatalogService  = (*service.Catalog)(nil)
)

type BookService interface {
	List(ctx context.Context) (model.ListBooks, error)
	Add(ctx context.Context, req model.AddBookRequest) (model.AddBookResponse, error)
	Attachment(ctx context.Context, id string) (mediaType string, data []byte, err error)
}

type DonationService interface {
	List(ctx context.Context) (model.ListDonations, error)
	Add(ctx context.Context, req model.AddDonationRequest) (model.AddDonationResponse, error)
}

type PoemService interface {
	List(ctx context.Context) (model.ListPoems, error)
	Add(ctx context.Context, req model.AddPoemRequest) (model.AddPoemResponse, error)
}

type CatalogService interface {
	Categories() []model.Category
	Entries(category string) ([]model.EBook, error)
	View(category string, index int) (string, error)
}
