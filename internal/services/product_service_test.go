package services

import (
	"context"
	"errors"
	"testing"

	"shop-backend/internal/domain"
	"shop-backend/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestProductService_Get(t *testing.T) {
	t.Run("without redis the store is hit directly", func(t *testing.T) {
		productRepo := new(mocks.MockProductRepository)
		productRepo.On("FindByID", mock.Anything, uint64(1)).
			Return(productFixture(1, "Wool Beanie", 10, 5), nil)

		service := NewProductService(productRepo)
		p, err := service.Get(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, "Wool Beanie", p.Name)
	})

	t.Run("unknown product", func(t *testing.T) {
		productRepo := new(mocks.MockProductRepository)
		productRepo.On("FindByID", mock.Anything, uint64(999)).
			Return(nil, domain.ErrProductNotFound)

		service := NewProductService(productRepo)
		_, err := service.Get(context.Background(), 999)
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})
}

func TestProductService_Update(t *testing.T) {
	productRepo := new(mocks.MockProductRepository)
	product := productFixture(1, "Wool Beanie", 12, 7)
	productRepo.On("Update", mock.Anything, product).Return(nil)

	service := NewProductService(productRepo)
	assert.NoError(t, service.Update(context.Background(), product))
	productRepo.AssertExpectations(t)
}

func TestProductService_Delete_PropagatesStoreError(t *testing.T) {
	productRepo := new(mocks.MockProductRepository)
	productRepo.On("Delete", mock.Anything, uint64(1)).Return(errors.New("database error"))

	service := NewProductService(productRepo)
	err := service.Delete(context.Background(), 1)
	assert.EqualError(t, err, "database error")
}

func TestProductService_WarmupCache_NoRedisIsNoop(t *testing.T) {
	productRepo := new(mocks.MockProductRepository)

	service := NewProductService(productRepo)
	assert.NoError(t, service.WarmupCache(context.Background(), []uint64{1, 2, 3}))
	productRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}
