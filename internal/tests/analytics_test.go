package tests

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/2Ricky2/canteenpay/internal/domain"
	"github.com/2Ricky2/canteenpay/internal/mocks"
	"github.com/2Ricky2/canteenpay/internal/service"
)

func TestAnalyticsService_Popular(t *testing.T) {
	ctx := context.Background()

	t.Run("serves_from_leaderboard", func(t *testing.T) {
		repo := mocks.NewAnalyticsRepository(t)
		popularity := mocks.NewPopularityRepository(t)

		popularity.On("Top", mock.Anything, mock.AnythingOfType("time.Time"), 10).
			Return(map[int]float64{7: 3, 9: 1}, nil).Once()
		repo.On("GetItem", 7).
			Return(&domain.MenuItem{ID: 7, Name: "Rice Meal", Category: domain.CategoryLunch}, nil).Once()
		repo.On("GetItem", 9).
			Return(&domain.MenuItem{ID: 9, Name: "Juice", Category: domain.CategoryDrinks}, nil).Once()

		svc := service.NewAnalyticsService(repo, popularity)
		items, err := svc.Popular(ctx, 10)

		assert.NoError(t, err)
		assert.Len(t, items, 2)
		assert.Equal(t, "Rice Meal", items[0].Name)
		assert.Equal(t, 3.0, items[0].Score)
		assert.Equal(t, "Juice", items[1].Name)
	})

	t.Run("falls_back_to_database_when_empty", func(t *testing.T) {
		repo := mocks.NewAnalyticsRepository(t)
		popularity := mocks.NewPopularityRepository(t)

		popularity.On("Top", mock.Anything, mock.AnythingOfType("time.Time"), 10).
			Return(map[int]float64{}, nil).Once()
		repo.On("PopularItemsFallback", 10).
			Return([]domain.PopularItem{{MenuID: 7, Name: "Rice Meal", Score: 5}}, nil).Once()

		svc := service.NewAnalyticsService(repo, popularity)
		items, err := svc.Popular(ctx, 10)

		assert.NoError(t, err)
		assert.Len(t, items, 1)
		assert.Equal(t, "Rice Meal", items[0].Name)
	})

	t.Run("defaults_limit_to_ten", func(t *testing.T) {
		repo := mocks.NewAnalyticsRepository(t)
		popularity := mocks.NewPopularityRepository(t)

		popularity.On("Top", mock.Anything, mock.AnythingOfType("time.Time"), 10).
			Return(nil, nil).Once()
		repo.On("PopularItemsFallback", 10).
			Return(nil, nil).Once()

		svc := service.NewAnalyticsService(repo, popularity)
		_, err := svc.Popular(ctx, 0)

		assert.NoError(t, err)
	})
}

func TestConsumer_ProcessEvent(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("order_placed_feeds_leaderboard", func(t *testing.T) {
		popularity := mocks.NewPopularityRepository(t)
		popularity.On("RecordOrder", mock.Anything, 7, at).Return(nil).Once()

		consumer := service.NewConsumer(nil, popularity)
		consumer.ProcessEvent(ctx, domain.OrderEvent{
			Type:      domain.EventOrderPlaced,
			OrderID:   10,
			MenuID:    7,
			Timestamp: at,
		})

		popularity.AssertExpectations(t)
	})

	t.Run("status_changes_are_ignored", func(t *testing.T) {
		popularity := mocks.NewPopularityRepository(t)

		consumer := service.NewConsumer(nil, popularity)
		consumer.ProcessEvent(ctx, domain.OrderEvent{
			Type:    domain.EventStatusChanged,
			OrderID: 10,
			MenuID:  7,
			Status:  domain.StatusPaid,
		})

		popularity.AssertNotCalled(t, "RecordOrder", mock.Anything, mock.Anything, mock.Anything)
	})
}
