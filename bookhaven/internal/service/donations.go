package service

import (
	"context"

	"github.com/Astemirdum/bookhaven/bookhaven/internal/model"
	"github.com/Astemirdum/bookhaven/bookhaven/internal/repository"
	"go.uber.org/zap"
)

type Donations struct {
	base
	coll *collection[model.Donation]
}

func NewDonations(repo repository.Repository[model.Donation], log *zap.Logger, opts ...Option) *Donations {
	log = log.Named("donations")
	return &Donations{
		base: newBase(log, opts...),
		coll: newCollection(repo, prependFront, log),
	}
}

func (s *Donations) Load(ctx context.Context) error {
	return s.coll.load(ctx)
}

// List returns the most recent donation first.
func (s *Donations) List(ctx context.Context) (model.ListDonations, error) {
	items, err := s.coll.list(ctx)
	if err != nil {
		return model.ListDonations{}, err
	}
	return model.NewList(items), nil
}

func (s *Donations) Add(ctx context.Context, req model.AddDonationRequest) (model.AddDonationResponse, error) {
	if err := s.validate(req, "Please fill in required fields"); err != nil {
		return model.AddDonationResponse{}, err
	}

	donation, err := s.coll.add(ctx, func(taken func(string) bool) model.Donation {
		return model.Donation{
			ID:        s.uniqueID(taken),
			BookTitle: req.BookTitle,
			DonorName: req.DonorName,
			Condition: req.Condition,
			Notes:     req.Notes,
			Date:      s.today(),
		}
	})
	if err != nil {
		s.log.Error("add donation", zap.Error(err))
		return model.AddDonationResponse{}, err
	}
	s.publish(ctx, model.DonationsKey, donation.ID, donation.BookTitle)

	return model.AddDonationResponse{
		Donation: donation,
		Notice: model.Notice{
			Title:       "Thank You! 💝",
			Description: "Your donation has been recorded",
			Variant:     model.VariantDefault,
		},
	}, nil
}

func (s *Donations) Clear(ctx context.Context) error {
	return s.coll.clear(ctx)
}
