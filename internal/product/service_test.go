package product

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetAll(ctx context.Context) ([]Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Product), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id int) (*Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, input Input) (*Product, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, id int, input Input) (*Product, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func TestService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetByID", ctx, 1).Return(&Product{ID: 1, Name: "Organic Apples"}, nil)

		p, err := svc.GetByID(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, "Organic Apples", p.Name)
		repo.AssertExpectations(t)
	})

	t.Run("NotFound", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetByID", ctx, 99).Return(nil, nil)

		_, err := svc.GetByID(ctx, 99)
		assert.ErrorIs(t, err, ErrProductNotFound)
	})

	t.Run("RepoError", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetByID", ctx, 1).Return(nil, errors.New("db error"))

		_, err := svc.GetByID(ctx, 1)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrProductNotFound)
	})
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		input := Input{Name: "Spinach", Price: 1.99, Category: "Vegetables"}
		repo.On("Create", ctx, input).Return(&Product{ID: 11, Name: "Spinach"}, nil)

		p, err := svc.Create(ctx, input)
		assert.NoError(t, err)
		assert.Equal(t, 11, p.ID)
		repo.AssertExpectations(t)
	})

	t.Run("Missing required fields", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		tests := []Input{
			{Price: 1.99, Category: "Vegetables"},
			{Name: "Spinach", Category: "Vegetables"},
			{Name: "Spinach", Price: 1.99},
		}
		for _, input := range tests {
			_, err := svc.Create(ctx, input)
			assert.ErrorIs(t, err, ErrMissingFields)
		}
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()
	input := Input{Name: "Organic Apples", Price: 4.49, Category: "Fruits"}

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("Update", ctx, 1, input).Return(&Product{ID: 1, Price: 4.49}, nil)

		p, err := svc.Update(ctx, 1, input)
		assert.NoError(t, err)
		assert.Equal(t, 4.49, p.Price)
	})

	t.Run("NotFound", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("Update", ctx, 99, input).Return(nil, nil)

		_, err := svc.Update(ctx, 99, input)
		assert.ErrorIs(t, err, ErrProductNotFound)
	})

	t.Run("Validation blocks repo call", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		_, err := svc.Update(ctx, 1, Input{})
		assert.ErrorIs(t, err, ErrMissingFields)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("Delete", ctx, 1).Return(true, nil)
		assert.NoError(t, svc.Delete(ctx, 1))
	})

	t.Run("NotFound", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("Delete", ctx, 99).Return(false, nil)
		assert.ErrorIs(t, svc.Delete(ctx, 99), ErrProductNotFound)
	})
}
