package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/samadhaan/backend/internal/models"
	"github.com/samadhaan/backend/internal/service"
)

// @Summary Submit a complaint
// @Tags complaints
// @Accept json
// @Produce json
// @Param body body service.SubmitInput true "complaint"
// @Success 201 {object} map[string]any
// @Failure 400 {object} map[string]any
// @Router /api/complaints [post]
func (h *Handler) SubmitComplaint(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var in service.SubmitInput
	if err := c.ShouldBindJSON(&in); err != nil {
		writeError(c, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	complaint, err := h.Complaints.Submit(c.Request.Context(), actor.ID, in)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Complaint submitted successfully",
		"data":    complaint.View(),
	})
}

func listFilters(c *gin.Context) service.ListFilters {
	return service.ListFilters{
		Category: c.Query("category"),
		Priority: c.Query("priority"),
		Status:   c.Query("status"),
		Date:     c.Query("date"),
		Search:   c.Query("search"),
	}
}

// ListComplaints serves GET /api/complaints. Admins see every
// complaint, other callers are scoped to their own.
func (h *Handler) ListComplaints(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	h.respondList(c, actor, listFilters(c))
}

// MyComplaints serves GET /api/complaints/my: owner-scoped even for
// admins.
func (h *Handler) MyComplaints(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	f := listFilters(c)
	f.Mine = true
	h.respondList(c, actor, f)
}

func (h *Handler) respondList(c *gin.Context, actor models.Actor, f service.ListFilters) {
	complaints, err := h.Complaints.List(c.Request.Context(), actor, f)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	views := models.Views(complaints)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(views),
		"data":    views,
	})
}

// @Summary Get one complaint
// @Tags complaints
// @Produce json
// @Param id path string true "Complaint ID"
// @Success 200 {object} map[string]any
// @Failure 403 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Router /api/complaints/{id} [get]
func (h *Handler) GetComplaint(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	complaint, err := h.Complaints.GetByID(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    complaint.View(),
	})
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// @Summary Update complaint status
// @Tags complaints
// @Accept json
// @Produce json
// @Param id path string true "Complaint ID"
// @Param body body UpdateStatusRequest true "new status"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Router /api/complaints/{id}/status [patch]
func (h *Handler) UpdateComplaintStatus(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	complaint, err := h.Complaints.UpdateStatus(c.Request.Context(), actor, c.Param("id"), req.Status)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Complaint status updated to " + complaint.Status,
		"data":    complaint.View(),
	})
}
