package service

import (
	"context"

	"github.com/Astemirdum/bookhaven/bookhaven/internal/model"
	"github.com/Astemirdum/bookhaven/bookhaven/internal/repository"
	"github.com/Astemirdum/bookhaven/pkg/kvstore"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Service groups the managers served by one process.
type Service struct {
	Books     *Books
	Donations *Donations
	Poems     *Poems
	Catalog   *Catalog
	log       *zap.Logger
}

func NewService(store kvstore.Store, log *zap.Logger, opts ...Option) *Service {
	return &Service{
		Books:     NewBooks(repository.NewRepository[model.Book](store, model.BooksKey, log), log, opts...),
		Donations: NewDonations(repository.NewRepository[model.Donation](store, model.DonationsKey, log), log, opts...),
		Poems:     NewPoems(repository.NewRepository[model.Poem](store, model.PoemsKey, log), log, opts...),
		Catalog:   NewCatalog(),
		log:       log,
	}
}

// LoadAll mounts the three persistent collections concurrently.
func (s *Service) LoadAll(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return errors.Wrap(s.Books.Load(ctx), "books") })
	g.Go(func() error { return errors.Wrap(s.Donations.Load(ctx), "donations") })
	g.Go(func() error { return errors.Wrap(s.Poems.Load(ctx), "poems") })
	if err := g.Wait(); err != nil {
		return err
	}
	s.log.Info("collections loaded")
	return nil
}

// Clear destroys one persisted collection by key.
func (s *Service) Clear(ctx context.Context, key string) error {
	switch key {
	case model.BooksKey:
		return s.Books.Clear(ctx)
	case model.DonationsKey:
		return s.Donations.Clear(ctx)
	case model.PoemsKey:
		return s.Poems.Clear(ctx)
	default:
		return errors.Errorf("unknown collection %q", key)
	}
}
