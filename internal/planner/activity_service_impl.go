package planner

import (
	"context"
	"time"

	"github.com/jmikkola/dayplan/internal/domain"
	"github.com/jmikkola/dayplan/internal/repository"
	"github.com/google/uuid"
)

type activityService struct {
	activities repository.ActivityRepo
}

// NewActivityService creates the productive-activity template service.
func NewActivityService(activities repository.ActivityRepo) ActivityService {
	return &activityService{activities: activities}
}

func (s *activityService) Create(ctx context.Context, a *domain.ProductiveActivity) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now
	a.IsActive = true
	return s.activities.Create(ctx, a)
}

func (s *activityService) GetByID(ctx context.Context, id string) (*domain.ProductiveActivity, error) {
	return s.activities.GetByID(ctx, id)
}

func (s *activityService) List(ctx context.Context, includeInactive bool) ([]*domain.ProductiveActivity, error) {
	return s.activities.List(ctx, includeInactive)
}

func (s *activityService) Update(ctx context.Context, a *domain.ProductiveActivity) error {
	a.UpdatedAt = time.Now().UTC()
	return s.activities.Update(ctx, a)
}

func (s *activityService) Deactivate(ctx context.Context, id string) error {
	return s.activities.Deactivate(ctx, id)
}
