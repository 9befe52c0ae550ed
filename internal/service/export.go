package service

import (
	"strings"

	"github.com/samadhaan/backend/internal/models"
)

// CSVHeader is the fixed export column set.
var CSVHeader = []string{"Complaint ID", "Category", "Description", "Priority", "Status", "Date", "User Name", "User Email"}

// ExportCSV renders complaints as comma-delimited text, one row per
// complaint in input order. Descriptions have commas replaced with
// semicolons and newlines with spaces so rows stay single-line; there
// is deliberately no quoting beyond that. encoding/csv is not used
// because it would quote fields, which this format never does.
func ExportCSV(complaints []models.Complaint) string {
	var b strings.Builder
	b.WriteString(strings.Join(CSVHeader, ","))

	for _, c := range complaints {
		desc := strings.ReplaceAll(c.Description, ",", ";")
		desc = strings.ReplaceAll(desc, "\n", " ")

		name := c.UserName
		if name == "" {
			name = "N/A"
		}
		email := c.UserEmail
		if email == "" {
			email = "N/A"
		}

		row := []string{
			c.DisplayID(),
			c.Category,
			desc,
			c.Priority,
			c.Status,
			c.Date.Format("2006-01-02"),
			name,
			email,
		}
		b.WriteString("\n")
		b.WriteString(strings.Join(row, ","))
	}
	return b.String()
}
