package service

import (
	"context"
	"sort"
	"time"

	"github.com/2Ricky2/canteenpay/internal/domain"
)

// AnalyticsRepository is the Postgres slice the leaderboard needs: item
// lookups for names and a direct aggregate when Redis has no data yet.
type AnalyticsRepository interface {
	GetItem(id int) (*domain.MenuItem, error)
	PopularItemsFallback(limit int) ([]domain.PopularItem, error)
}

type AnalyticsService struct {
	repo       AnalyticsRepository
	popularity PopularityRepository
}

func NewAnalyticsService(repo AnalyticsRepository, popularity PopularityRepository) *AnalyticsService {
	return &AnalyticsService{repo: repo, popularity: popularity}
}

func (s *AnalyticsService) Popular(ctx context.Context, limit int) ([]domain.PopularItem, error) {
	if limit <= 0 {
		limit = 10
	}

	scores, err := s.popularity.Top(ctx, time.Now(), limit)
	if err != nil || len(scores) == 0 {
		return s.repo.PopularItemsFallback(limit)
	}

	var items []domain.PopularItem
	for menuID, score := range scores {
		item, err := s.repo.GetItem(menuID)
		if err != nil {
			continue
		}
		items = append(items, domain.PopularItem{
			MenuID:   menuID,
			Name:     item.Name,
			Category: item.Category,
			Score:    score,
		})
	}

	if len(items) == 0 {
		return s.repo.PopularItemsFallback(limit)
	}

	sort.Slice(items, func(i, j int) bool { return items[i].Score > items[j].Score })
	return items, nil
}

var _ AnalyticsServiceInterface = (*AnalyticsService)(nil)
