package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/samadhaan/backend/internal/db"
	"github.com/samadhaan/backend/internal/service"
)

// @Summary Export complaints as CSV
// @Tags export
// @Produce plain
// @Success 200 {string} string
// @Router /api/export/csv [get]
func (h *Handler) ExportCSV(c *gin.Context) {
	complaints, err := h.Complaints.Store.ListComplaints(c.Request.Context(), db.ComplaintFilter{WithUsers: true})
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	csv := service.ExportCSV(complaints)
	filename := "complaints_" + time.Now().Format("2006-01-02") + ".csv"
	c.Header("Content-Disposition", `attachment; filename=`+filename)
	c.Data(http.StatusOK, "text/csv", []byte(csv))
}
