package model

import "time"

const (
	EventUserRegistered = "user.registered"
	EventExerciseLogged = "exercise.logged"
)

// ActivityEvent is published after a user or exercise has been stored.
type ActivityEvent struct {
	Type        string    `json:"type"`
	UserID      string    `json:"user_id"`
	Username    string    `json:"username"`
	ExerciseID  string    `json:"exercise_id,omitempty"`
	Description string    `json:"description,omitempty"`
	Duration    int       `json:"duration,omitempty"`
	Date        string    `json:"date,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}
