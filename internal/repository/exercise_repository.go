package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"exercise-tracker/internal/model"
)

const DefaultLogLimit = 100

// ExerciseFilter selects a user's exercises. From and To are inclusive and
// independently optional; a non-positive Limit means DefaultLogLimit.
type ExerciseFilter struct {
	UserID string
	From   *time.Time
	To     *time.Time
	Limit  int
}

type ExerciseRepository struct {
	db *gorm.DB
}

func NewExerciseRepository(db *gorm.DB) *ExerciseRepository {
	return &ExerciseRepository{db: db}
}

func (r *ExerciseRepository) Create(ctx context.Context, exercise *model.Exercise) error {
	if err := r.db.WithContext(ctx).Create(exercise).Error; err != nil {
		return fmt.Errorf("create exercise failed: %w", err)
	}
	return nil
}

// List returns matching exercises in storage order; no sort is applied.
func (r *ExerciseRepository) List(ctx context.Context, filter ExerciseFilter) ([]model.Exercise, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = DefaultLogLimit
	}

	query := r.db.WithContext(ctx).Where("user_id = ?", filter.UserID)
	if filter.From != nil {
		query = query.Where("date >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("date <= ?", *filter.To)
	}

	var exercises []model.Exercise
	if err := query.Limit(limit).Find(&exercises).Error; err != nil {
		return nil, fmt.Errorf("list exercises failed: %w", err)
	}
	return exercises, nil
}
