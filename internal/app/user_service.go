package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"exercise-tracker/internal/logger"
	"exercise-tracker/internal/model"
	"exercise-tracker/internal/repository"
)

type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	List(ctx context.Context) ([]model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
}

// ActivityPublisher receives events after the corresponding write succeeded.
type ActivityPublisher interface {
	Publish(ctx context.Context, event model.ActivityEvent) error
}

type UserService struct {
	users  UserStore
	events ActivityPublisher
	logger *logger.Logger
	now    func() time.Time
}

type RegisterInput struct {
	Username string
}

func NewUserService(users UserStore, events ActivityPublisher, log *logger.Logger) *UserService {
	return &UserService{
		users:  users,
		events: events,
		logger: log,
		now:    time.Now,
	}
}

func (s *UserService) Register(ctx context.Context, input RegisterInput) (*model.User, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, ErrUsernameRequired
	}

	user := &model.User{Username: username}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	publish(ctx, s.events, s.logger, model.ActivityEvent{
		Type:       model.EventUserRegistered,
		UserID:     user.ID,
		Username:   user.Username,
		OccurredAt: s.now().UTC(),
	})
	return user, nil
}

// ListUsers returns every user projected to id and username.
func (s *UserService) ListUsers(ctx context.Context) ([]model.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	projected := make([]model.User, 0, len(users))
	for _, u := range users {
		projected = append(projected, model.User{ID: u.ID, Username: u.Username})
	}
	return projected, nil
}

// GetUser resolves a user id. A malformed id is a storage error, not a miss.
func (s *UserService) GetUser(ctx context.Context, id string) (*model.User, error) {
	user, err := s.users.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func publish(ctx context.Context, events ActivityPublisher, log *logger.Logger, event model.ActivityEvent) {
	if events == nil {
		return
	}
	if err := events.Publish(ctx, event); err != nil {
		log.Warn("publish activity event failed",
			"type", event.Type,
			"user_id", event.UserID,
			"error", err)
	}
}
