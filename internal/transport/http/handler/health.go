package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"exercise-tracker/internal/bootstrap"
)

const storePingTimeout = 2 * time.Second

const (
	healthOK          = "ok"
	healthDegraded    = "degraded"
	healthUnavailable = "unavailable"
)

type HealthHandler struct {
	app *bootstrap.App
}

type healthReport struct {
	Service        string       `json:"service"`
	Status         string       `json:"status"`
	UptimeSec      int          `json:"uptime_sec"`
	Store          storeHealth  `json:"store"`
	ActivityEvents eventsHealth `json:"activity_events"`
}

type storeHealth struct {
	Reachable bool   `json:"reachable"`
	Error     string `json:"error,omitempty"`
}

type eventsHealth struct {
	Enabled   bool   `json:"enabled"`
	Queue     string `json:"queue,omitempty"`
	Connected bool   `json:"connected"`
}

func NewHealthHandler(app *bootstrap.App) *HealthHandler {
	return &HealthHandler{app: app}
}

// Check answers 503 only when the users and exercises store is unreachable.
// A lost event broker degrades the report but requests are still served.
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), storePingTimeout)
	defer cancel()

	report := healthReport{
		Service:        h.app.Config.App.Name,
		Status:         healthOK,
		UptimeSec:      int(time.Since(h.app.StartedAt).Seconds()),
		Store:          h.storeHealth(ctx),
		ActivityEvents: h.eventsHealth(),
	}

	status := http.StatusOK
	switch {
	case !report.Store.Reachable:
		report.Status = healthUnavailable
		status = http.StatusServiceUnavailable
	case report.ActivityEvents.Enabled && !report.ActivityEvents.Connected:
		report.Status = healthDegraded
	}

	c.JSON(status, report)
}

func (h *HealthHandler) storeHealth(ctx context.Context) storeHealth {
	if h.app.MySQL == nil {
		return storeHealth{Error: "not configured"}
	}
	sqlDB, err := h.app.MySQL.DB()
	if err != nil {
		return storeHealth{Error: err.Error()}
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return storeHealth{Error: err.Error()}
	}
	return storeHealth{Reachable: true}
}

func (h *HealthHandler) eventsHealth() eventsHealth {
	if !h.app.Config.EventsEnabled() {
		return eventsHealth{}
	}
	return eventsHealth{
		Enabled:   true,
		Queue:     h.app.Config.RabbitMQ.ActivityQueue,
		Connected: h.app.MQConn != nil && !h.app.MQConn.IsClosed(),
	}
}
