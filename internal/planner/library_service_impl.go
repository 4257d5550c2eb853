package planner

import (
	"context"
	"time"

	"github.com/jmikkola/dayplan/internal/domain"
	"github.com/jmikkola/dayplan/internal/repository"
	"github.com/google/uuid"
)

type goalLibraryService struct {
	goals repository.GoalLibraryRepo
}

// NewGoalLibraryService creates the library goal management service.
func NewGoalLibraryService(goals repository.GoalLibraryRepo) GoalLibraryService {
	return &goalLibraryService{goals: goals}
}

func (s *goalLibraryService) Create(ctx context.Context, g *domain.LibraryGoal) error {
	if g.ID == "" {
		g.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	g.CreatedAt = now
	g.UpdatedAt = now
	return s.goals.Create(ctx, g)
}

func (s *goalLibraryService) GetByID(ctx context.Context, id string) (*domain.LibraryGoal, error) {
	return s.goals.GetByID(ctx, id)
}

func (s *goalLibraryService) List(ctx context.Context) ([]*domain.LibraryGoal, error) {
	return s.goals.List(ctx)
}

func (s *goalLibraryService) SetAutomatic(ctx context.Context, id string, automatic bool) error {
	g, err := s.goals.GetByID(ctx, id)
	if err != nil {
		return err
	}
	g.IsAutomatic = automatic
	g.UpdatedAt = time.Now().UTC()
	return s.goals.Update(ctx, g)
}

func (s *goalLibraryService) Update(ctx context.Context, g *domain.LibraryGoal) error {
	g.UpdatedAt = time.Now().UTC()
	return s.goals.Update(ctx, g)
}

func (s *goalLibraryService) Delete(ctx context.Context, id string) error {
	return s.goals.Delete(ctx, id)
}
