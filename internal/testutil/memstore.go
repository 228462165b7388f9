package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"exercise-tracker/internal/model"
	"exercise-tracker/internal/repository"
)

// MemStore is an in-memory stand-in for the users and exercises tables. It
// keeps the unique-username and malformed-id behavior of the real store.
type MemStore struct {
	mu        sync.Mutex
	users     []model.User
	exercises []model.Exercise
}

func NewMemStore() *MemStore {
	return &MemStore{}
}

func (m *MemStore) Users() *MemUsers {
	return &MemUsers{store: m}
}

func (m *MemStore) Exercises() *MemExercises {
	return &MemExercises{store: m}
}

func (m *MemStore) UserCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.users)
}

func (m *MemStore) ExerciseCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.exercises)
}

type MemUsers struct {
	store *MemStore
}

func (u *MemUsers) Create(_ context.Context, user *model.User) error {
	m := u.store
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.users {
		if existing.Username == user.Username {
			return fmt.Errorf("create user %q: %w", user.Username, repository.ErrDuplicate)
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	m.users = append(m.users, *user)
	return nil
}

func (u *MemUsers) List(context.Context) ([]model.User, error) {
	m := u.store
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]model.User, len(m.users))
	copy(out, m.users)
	return out, nil
}

func (u *MemUsers) GetByID(_ context.Context, id string) (*model.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: %q", repository.ErrInvalidID, id)
	}

	m := u.store
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.users {
		if existing.ID == id {
			found := existing
			return &found, nil
		}
	}
	return nil, nil
}

type MemExercises struct {
	store *MemStore
}

func (e *MemExercises) Create(_ context.Context, exercise *model.Exercise) error {
	m := e.store
	m.mu.Lock()
	defer m.mu.Unlock()

	if exercise.ID == "" {
		exercise.ID = uuid.NewString()
	}
	m.exercises = append(m.exercises, *exercise)
	return nil
}

func (e *MemExercises) List(_ context.Context, filter repository.ExerciseFilter) ([]model.Exercise, error) {
	m := e.store
	m.mu.Lock()
	defer m.mu.Unlock()

	limit := filter.Limit
	if limit <= 0 {
		limit = repository.DefaultLogLimit
	}

	var out []model.Exercise
	for _, ex := range m.exercises {
		if len(out) == limit {
			break
		}
		if ex.UserID != filter.UserID {
			continue
		}
		if filter.From != nil && ex.Date.Before(*filter.From) {
			continue
		}
		if filter.To != nil && ex.Date.After(*filter.To) {
			continue
		}
		out = append(out, ex)
	}
	return out, nil
}
