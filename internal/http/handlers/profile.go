package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/samadhaan/backend/internal/service"
)

// @Summary Current user profile
// @Tags profile
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Router /api/profile/me [get]
func (h *Handler) Profile(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	user, err := h.Store.GetUser(c.Request.Context(), actor.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeError(c, http.StatusNotFound, "User not found", nil)
			return
		}
		h.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": user})
}

// Optional fields use pointers: a missing field keeps the stored value,
// an empty string clears it.
type UpdateProfileRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=2"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	Bio     *string `json:"bio"`
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if err := h.Validator.Struct(req); err != nil {
		writeError(c, http.StatusBadRequest, "Validation failed", profileFieldErrors(err))
		return
	}

	ctx := c.Request.Context()
	user, err := h.Store.GetUser(ctx, actor.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeError(c, http.StatusNotFound, "User not found", nil)
			return
		}
		h.writeServiceError(c, err)
		return
	}

	if req.Email != nil && !strings.EqualFold(*req.Email, user.Email) {
		taken, err := h.Store.EmailTaken(ctx, *req.Email, actor.ID)
		if err != nil {
			h.writeServiceError(c, err)
			return
		}
		if taken {
			writeError(c, http.StatusBadRequest, "Email already in use", nil)
			return
		}
		user.Email = strings.ToLower(*req.Email)
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		user.Name = strings.TrimSpace(*req.Name)
	}
	if req.Phone != nil {
		user.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Address != nil {
		user.Address = strings.TrimSpace(*req.Address)
	}
	if req.Bio != nil {
		user.Bio = strings.TrimSpace(*req.Bio)
	}

	updated, err := h.Store.UpdateUserProfile(ctx, user)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Profile updated successfully",
		"data":    updated,
	})
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

func (h *Handler) ChangePassword(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	var fieldErrs []service.FieldError
	if req.CurrentPassword == "" {
		fieldErrs = append(fieldErrs, service.FieldError{Field: "currentPassword", Message: "Current password is required"})
	}
	if len(req.NewPassword) < 6 {
		fieldErrs = append(fieldErrs, service.FieldError{Field: "newPassword", Message: "New password must be at least 6 characters"})
	}
	if req.ConfirmPassword != req.NewPassword {
		fieldErrs = append(fieldErrs, service.FieldError{Field: "confirmPassword", Message: "Passwords do not match"})
	}
	if len(fieldErrs) > 0 {
		writeError(c, http.StatusBadRequest, "Validation failed", fieldErrs)
		return
	}

	ctx := c.Request.Context()
	user, err := h.Store.GetUser(ctx, actor.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeError(c, http.StatusNotFound, "User not found", nil)
			return
		}
		h.writeServiceError(c, err)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)) != nil {
		writeError(c, http.StatusBadRequest, "Current password is incorrect", nil)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	if err := h.Store.UpdateUserPassword(ctx, actor.ID, string(hash)); err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Password updated successfully",
	})
}

func profileFieldErrors(err error) []service.FieldError {
	var out []service.FieldError
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return out
	}
	for _, fe := range verrs {
		switch {
		case fe.Field() == "Name":
			out = append(out, service.FieldError{Field: "name", Message: "Name must be at least 2 characters"})
		case fe.Field() == "Email":
			out = append(out, service.FieldError{Field: "email", Message: "Please provide a valid email"})
		default:
			out = append(out, service.FieldError{Field: strings.ToLower(fe.Field()), Message: "Invalid value"})
		}
	}
	return out
}
