package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"exercise-tracker/internal/logger"
	"exercise-tracker/internal/model"
	"exercise-tracker/internal/repository"
)

type ExerciseStore interface {
	Create(ctx context.Context, exercise *model.Exercise) error
	List(ctx context.Context, filter repository.ExerciseFilter) ([]model.Exercise, error)
}

// UserLookup resolves user ids, returning ErrUserNotFound for unknown ids.
type UserLookup interface {
	GetUser(ctx context.Context, id string) (*model.User, error)
}

type ExerciseService struct {
	users     UserLookup
	exercises ExerciseStore
	events    ActivityPublisher
	logger    *logger.Logger
	now       func() time.Time
}

// AddExerciseInput holds the raw request values; Duration and Date are
// converted here rather than at the transport boundary.
type AddExerciseInput struct {
	UserID      string
	Description string
	Duration    string
	Date        string
}

// ExerciseView is the add-exercise response. ID is the owning user's id.
type ExerciseView struct {
	Username    string `json:"username"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
	ID          string `json:"_id"`
}

type LogQuery struct {
	UserID string
	From   string
	To     string
	Limit  string
}

type LogEntry struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

type LogView struct {
	Username string     `json:"username"`
	Count    int        `json:"count"`
	ID       string     `json:"_id"`
	Log      []LogEntry `json:"log"`
}

func NewExerciseService(users UserLookup, exercises ExerciseStore, events ActivityPublisher, log *logger.Logger) *ExerciseService {
	return &ExerciseService{
		users:     users,
		exercises: exercises,
		events:    events,
		logger:    log,
		now:       time.Now,
	}
}

func (s *ExerciseService) AddExercise(ctx context.Context, input AddExerciseInput) (*ExerciseView, error) {
	user, err := s.users.GetUser(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	description := strings.TrimSpace(input.Description)
	rawDuration := strings.TrimSpace(input.Duration)
	if description == "" || rawDuration == "" {
		return nil, ErrExerciseFieldsRequired
	}

	duration, ok := parseLeadingInt(rawDuration)
	if !ok {
		return nil, ErrInvalidDuration
	}
	if duration == 0 {
		return nil, ErrExerciseFieldsRequired
	}

	date := s.now().UTC()
	if raw := strings.TrimSpace(input.Date); raw != "" {
		parsed, _, ok := parseDate(raw)
		if !ok {
			return nil, ErrInvalidDate
		}
		date = parsed
	}

	exercise := &model.Exercise{
		UserID:      user.ID,
		Description: description,
		Duration:    duration,
		Date:        date,
	}
	if err := s.exercises.Create(ctx, exercise); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	view := &ExerciseView{
		Username:    user.Username,
		Description: exercise.Description,
		Duration:    exercise.Duration,
		Date:        formatDate(exercise.Date),
		ID:          user.ID,
	}

	publish(ctx, s.events, s.logger, model.ActivityEvent{
		Type:        model.EventExerciseLogged,
		UserID:      user.ID,
		Username:    user.Username,
		ExerciseID:  exercise.ID,
		Description: exercise.Description,
		Duration:    exercise.Duration,
		Date:        view.Date,
		OccurredAt:  s.now().UTC(),
	})
	return view, nil
}

// GetLog returns the user's exercises within the optional inclusive window.
// A day-only upper bound covers that whole day.
func (s *ExerciseService) GetLog(ctx context.Context, query LogQuery) (*LogView, error) {
	user, err := s.users.GetUser(ctx, query.UserID)
	if err != nil {
		return nil, err
	}

	filter := repository.ExerciseFilter{UserID: user.ID, Limit: repository.DefaultLogLimit}
	if raw := strings.TrimSpace(query.From); raw != "" {
		from, _, ok := parseDate(raw)
		if !ok {
			return nil, ErrInvalidFrom
		}
		filter.From = &from
	}
	if raw := strings.TrimSpace(query.To); raw != "" {
		to, dayOnly, ok := parseDate(raw)
		if !ok {
			return nil, ErrInvalidTo
		}
		if dayOnly {
			to = to.Add(24*time.Hour - time.Millisecond)
		}
		filter.To = &to
	}
	if limit, ok := parseLeadingInt(query.Limit); ok && limit > 0 {
		filter.Limit = limit
	}

	exercises, err := s.exercises.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	entries := make([]LogEntry, 0, len(exercises))
	for _, e := range exercises {
		entries = append(entries, LogEntry{
			Description: e.Description,
			Duration:    e.Duration,
			Date:        formatDate(e.Date),
		})
	}

	return &LogView{
		Username: user.Username,
		Count:    len(entries),
		ID:       user.ID,
		Log:      entries,
	}, nil
}
