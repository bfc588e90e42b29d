package service

import (
	"context"

	"github.com/Astemirdum/bookhaven/bookhaven/internal/model"
	"github.com/Astemirdum/bookhaven/bookhaven/internal/repository"
	"go.uber.org/zap"
)

type Poems struct {
	base
	coll *collection[model.Poem]
}

func NewPoems(repo repository.Repository[model.Poem], log *zap.Logger, opts ...Option) *Poems {
	log = log.Named("poems")
	return &Poems{
		base: newBase(log, opts...),
		coll: newCollection(repo, prependFront, log),
	}
}

func (s *Poems) Load(ctx context.Context) error {
	return s.coll.load(ctx)
}

func (s *Poems) List(ctx context.Context) (model.ListPoems, error) {
	items, err := s.coll.list(ctx)
	if err != nil {
		return model.ListPoems{}, err
	}
	return model.NewList(items), nil
}

// Add stores the poem content verbatim, line breaks included.
func (s *Poems) Add(ctx context.Context, req model.AddPoemRequest) (model.AddPoemResponse, error) {
	if err := s.validate(req, "Please fill in all fields"); err != nil {
		return model.AddPoemResponse{}, err
	}

	poem, err := s.coll.add(ctx, func(taken func(string) bool) model.Poem {
		return model.Poem{
			ID:      s.uniqueID(taken),
			Title:   req.Title,
			Content: req.Content,
			Author:  req.Author,
			Date:    s.today(),
		}
	})
	if err != nil {
		s.log.Error("add poem", zap.Error(err))
		return model.AddPoemResponse{}, err
	}
	s.publish(ctx, model.PoemsKey, poem.ID, poem.Title)

	return model.AddPoemResponse{
		Poem: poem,
		Notice: model.Notice{
			Title:       "Poetry Posted! ✍️",
			Description: "Your beautiful words have been shared",
			Variant:     model.VariantDefault,
		},
	}, nil
}

func (s *Poems) Clear(ctx context.Context) error {
	return s.coll.clear(ctx)
}
