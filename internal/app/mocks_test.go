package app

import (
	"context"

	"github.com/stretchr/testify/mock"

	"exercise-tracker/internal/model"
	"exercise-tracker/internal/repository"
)

type mockUserStore struct {
	mock.Mock
}

func (m *mockUserStore) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserStore) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]model.User)
	return users, args.Error(1)
}

func (m *mockUserStore) GetByID(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

type mockExerciseStore struct {
	mock.Mock
}

func (m *mockExerciseStore) Create(ctx context.Context, exercise *model.Exercise) error {
	args := m.Called(ctx, exercise)
	return args.Error(0)
}

func (m *mockExerciseStore) List(ctx context.Context, filter repository.ExerciseFilter) ([]model.Exercise, error) {
	args := m.Called(ctx, filter)
	exercises, _ := args.Get(0).([]model.Exercise)
	return exercises, args.Error(1)
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(ctx context.Context, event model.ActivityEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
