package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type chartDataset struct {
	Label string `json:"label,omitempty"`
	Data  []int  `json:"data"`
}

// chartData is the Chart.js-ready aggregate shape the dashboard
// consumes directly.
type chartData struct {
	Labels   []string       `json:"labels"`
	Datasets []chartDataset `json:"datasets"`
}

func (h *Handler) TotalComplaints(c *gin.Context) {
	total, err := h.Stats.Total(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"total": total}})
}

func (h *Handler) PendingComplaints(c *gin.Context) {
	pending, err := h.Stats.CountByStatus(c.Request.Context(), "Pending")
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"pending": pending}})
}

func (h *Handler) ResolvedComplaints(c *gin.Context) {
	resolved, err := h.Stats.CountByStatus(c.Request.Context(), "Resolved")
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"resolved": resolved}})
}

// @Summary Category distribution
// @Tags stats
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/stats/category-distribution [get]
func (h *Handler) CategoryDistribution(c *gin.Context) {
	dist, err := h.Stats.CategoryDistribution(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": chartData{
			Labels:   dist.Labels,
			Datasets: []chartDataset{{Label: "Complaints", Data: dist.Data}},
		},
	})
}

func (h *Handler) StatusDistribution(c *gin.Context) {
	dist, err := h.Stats.StatusDistribution(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": chartData{
			Labels:   dist.Labels,
			Datasets: []chartDataset{{Data: dist.Data}},
		},
	})
}

// @Summary All dashboard statistics
// @Tags stats
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/stats/all [get]
func (h *Handler) AllStats(c *gin.Context) {
	stats, err := h.Stats.All(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": stats})
}
