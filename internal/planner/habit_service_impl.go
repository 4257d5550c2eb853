package planner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jmikkola/dayplan/internal/domain"
	"github.com/jmikkola/dayplan/internal/repository"
	"github.com/google/uuid"
)

type habitService struct {
	habits  repository.HabitRepo
	entries repository.HabitEntryRepo
}

// NewHabitService creates the habit registry service.
func NewHabitService(habits repository.HabitRepo, entries repository.HabitEntryRepo) HabitService {
	return &habitService{habits: habits, entries: entries}
}

func (s *habitService) Create(ctx context.Context, h *domain.Habit) error {
	if h.ID == "" {
		h.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	h.CreatedAt = now
	h.UpdatedAt = now
	h.IsActive = true
	return s.habits.Create(ctx, h)
}

func (s *habitService) GetByID(ctx context.Context, id string) (*domain.Habit, error) {
	return s.habits.GetByID(ctx, id)
}

func (s *habitService) List(ctx context.Context, includeInactive bool) ([]*domain.Habit, error) {
	return s.habits.List(ctx, includeInactive)
}

// Pause stops future propagation of the habit. Instances already created
// on past plans are history and stay untouched.
func (s *habitService) Pause(ctx context.Context, id string) error {
	return s.setActive(ctx, id, false)
}

// Resume re-enables propagation for dates composed from now on.
func (s *habitService) Resume(ctx context.Context, id string) error {
	return s.setActive(ctx, id, true)
}

func (s *habitService) setActive(ctx context.Context, id string, active bool) error {
	h, err := s.habits.GetByID(ctx, id)
	if err != nil {
		return err
	}
	h.IsActive = active
	h.UpdatedAt = time.Now().UTC()
	return s.habits.Update(ctx, h)
}

func (s *habitService) Delete(ctx context.Context, id string) error {
	return s.habits.Delete(ctx, id)
}

func (s *habitService) RecordEntry(ctx context.Context, habitID, date string, completed bool, count *int) error {
	if _, err := domain.ParseDate(date); err != nil {
		return fmt.Errorf("parsing entry date %q: %w", date, err)
	}
	if _, err := s.habits.GetByID(ctx, habitID); err != nil {
		return err
	}

	now := time.Now().UTC()
	entry := &domain.HabitEntry{
		HabitID:   habitID,
		Date:      date,
		Completed: completed,
		Count:     count,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if existing, err := s.entries.Get(ctx, habitID, date); err == nil {
		entry.CreatedAt = existing.CreatedAt
	} else if !errors.Is(err, repository.ErrNotFound) {
		return err
	}
	return s.entries.Upsert(ctx, entry)
}

func (s *habitService) EntriesFor(ctx context.Context, habitID string) ([]*domain.HabitEntry, error) {
	return s.entries.ListByHabit(ctx, habitID)
}
