package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"exercise-tracker/internal/app"
	"exercise-tracker/internal/logger"
	"exercise-tracker/internal/transport/http/response"
)

type ExerciseHandler struct {
	exerciseService *app.ExerciseService
	logger          *logger.Logger
}

type AddExerciseRequest struct {
	Description string    `json:"description" form:"description"`
	Duration    formValue `json:"duration" form:"duration"`
	Date        formValue `json:"date" form:"date"`
}

type LogRequest struct {
	From  string `form:"from"`
	To    string `form:"to"`
	Limit string `form:"limit"`
}

func NewExerciseHandler(exerciseService *app.ExerciseService, log *logger.Logger) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService, logger: log}
}

func (h *ExerciseHandler) Add(c *gin.Context) {
	// An unreadable body is treated as empty: an unknown user must still
	// produce 404, and the service reports the missing fields otherwise.
	var req AddExerciseRequest
	if err := c.ShouldBind(&req); err != nil {
		req = AddExerciseRequest{}
	}

	view, err := h.exerciseService.AddExercise(c.Request.Context(), app.AddExerciseInput{
		UserID:      c.Param("_id"),
		Description: req.Description,
		Duration:    string(req.Duration),
		Date:        string(req.Date),
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrNotFound):
			response.Error(c, http.StatusNotFound, err.Error())
		case errors.Is(err, app.ErrValidation):
			response.Error(c, http.StatusBadRequest, err.Error())
		default:
			h.logger.Error("add exercise failed", "user_id", c.Param("_id"), "error", err)
			response.Error(c, http.StatusInternalServerError, "Error adding exercise")
		}
		return
	}

	response.OK(c, view)
}

func (h *ExerciseHandler) Log(c *gin.Context) {
	var req LogRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid query")
		return
	}

	view, err := h.exerciseService.GetLog(c.Request.Context(), app.LogQuery{
		UserID: c.Param("_id"),
		From:   req.From,
		To:     req.To,
		Limit:  req.Limit,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrNotFound):
			response.Error(c, http.StatusNotFound, err.Error())
		case errors.Is(err, app.ErrValidation):
			response.Error(c, http.StatusBadRequest, err.Error())
		default:
			h.logger.Error("get exercise log failed", "user_id", c.Param("_id"), "error", err)
			response.Error(c, http.StatusInternalServerError, "Error retrieving logs")
		}
		return
	}

	response.OK(c, view)
}
