package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/samadhaan/backend/internal/db"
	"github.com/samadhaan/backend/internal/http/middleware"
	"github.com/samadhaan/backend/internal/models"
	"github.com/samadhaan/backend/internal/service"
)

type Handler struct {
	Store      *db.Store
	Complaints *service.ComplaintService
	Stats      *service.StatsService
	Validator  *validator.Validate
	Logger     zerolog.Logger
}

// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/health [get]
func (h *Handler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()
	if err := h.Store.Ping(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "ERROR", "message": "Database unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "OK", "message": "Samadhaan API is running"})
}

func (h *Handler) actor(c *gin.Context) (models.Actor, bool) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		writeError(c, http.StatusUnauthorized, "Authentication required.", nil)
	}
	return actor, ok
}

func writeError(c *gin.Context, status int, message string, fieldErrs []service.FieldError) {
	body := gin.H{
		"success": false,
		"message": message,
	}
	if len(fieldErrs) > 0 {
		body["errors"] = fieldErrs
	}
	c.JSON(status, body)
}

// writeServiceError maps the service error taxonomy onto the uniform
// failure envelope.
func (h *Handler) writeServiceError(c *gin.Context, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		writeError(c, http.StatusBadRequest, "Validation failed", verr.Fields)
	case errors.Is(err, service.ErrNotFound):
		writeError(c, http.StatusNotFound, "Complaint not found", nil)
	case errors.Is(err, service.ErrForbidden):
		writeError(c, http.StatusForbidden, "Not authorized to access this complaint", nil)
	default:
		h.Logger.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		writeError(c, http.StatusInternalServerError, err.Error(), nil)
	}
}
