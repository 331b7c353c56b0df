package product

import (
	"context"

	"bulk-be/internal/logger"

	"go.uber.org/zap"
)

// Service defines the business logic for products.
type Service interface {
	GetAll(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id int) (*Product, error)
	Create(ctx context.Context, input Input) (*Product, error)
	Update(ctx context.Context, id int, input Input) (*Product, error)
	Delete(ctx context.Context, id int) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetAll(ctx context.Context) ([]Product, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) GetByID(ctx context.Context, id int) (*Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}
	return p, nil
}

// validateInput mirrors the required-field check of the create and update
// endpoints: a zero price counts as missing.
func validateInput(input Input) error {
	if input.Name == "" || input.Price == 0 || input.Category == "" {
		return ErrMissingFields
	}
	return nil
}

func (s *service) Create(ctx context.Context, input Input) (*Product, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	p, err := s.repo.Create(ctx, input)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to create product", zap.Error(err))
		return nil, err
	}

	return p, nil
}

func (s *service) Update(ctx context.Context, id int, input Input) (*Product, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	p, err := s.repo.Update(ctx, id, input)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to update product", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}

	return p, nil
}

func (s *service) Delete(ctx context.Context, id int) error {
	found, err := s.repo.Delete(ctx, id)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to delete product", zap.Int("id", id), zap.Error(err))
		return err
	}
	if !found {
		return ErrProductNotFound
	}

	return nil
}
