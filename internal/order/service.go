package order

import (
	"context"

	"bulk-be/internal/logger"

	"go.uber.org/zap"
)

// Service defines the business logic for orders.
type Service interface {
	GetAll(ctx context.Context) ([]Order, error)
	GetByID(ctx context.Context, id int) (*Order, error)
	Create(ctx context.Context, input CreateInput) (*Order, error)
	UpdateStatus(ctx context.Context, id int, status Status) (*Order, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetAll(ctx context.Context) ([]Order, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) GetByID(ctx context.Context, id int) (*Order, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrOrderNotFound
	}
	return o, nil
}

func validateCreate(input CreateInput) error {
	if input.BuyerName == "" ||
		input.BuyerEmail == "" ||
		input.BuyerPhone == "" ||
		input.DeliveryAddress == "" ||
		input.TotalAmount == 0 ||
		len(input.Items) == 0 {
		return ErrMissingFields
	}
	return nil
}

func (s *service) Create(ctx context.Context, input CreateInput) (*Order, error) {
	if err := validateCreate(input); err != nil {
		return nil, err
	}

	o, err := s.repo.CreateTx(ctx, input)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to create order", zap.Error(err))
		return nil, err
	}

	logger.FromCtx(ctx).Info("order created",
		zap.Int("order_id", o.ID),
		zap.Float64("total_amount", o.TotalAmount),
	)

	return o, nil
}

func (s *service) UpdateStatus(ctx context.Context, id int, status Status) (*Order, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	o, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to update order status",
			zap.Int("order_id", id),
			zap.String("status", string(status)),
			zap.Error(err),
		)
		return nil, err
	}
	if o == nil {
		return nil, ErrOrderNotFound
	}

	return o, nil
}
