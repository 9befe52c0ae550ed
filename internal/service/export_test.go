package service

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samadhaan/backend/internal/models"
)

func TestExportCSVHeaderAndRowOrder(t *testing.T) {
	filed := time.Date(2024, 2, 10, 9, 30, 0, 0, time.Local)
	complaints := []models.Complaint{
		{ID: "aaa111", Category: "Technical", Description: "Network down in lab 3", Priority: "High", Status: "Pending", Date: filed, UserName: "Asha", UserEmail: "asha@example.com"},
		{ID: "bbb222", Category: "Billing", Description: "Invoice amount is wrong", Priority: "Low", Status: "Resolved", Date: filed},
	}

	out := ExportCSV(complaints)
	lines := strings.Split(out, "\n")

	require.Len(t, lines, 3, "header plus one row per complaint")
	assert.Equal(t, "Complaint ID,Category,Description,Priority,Status,Date,User Name,User Email", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "#111,Technical,"), "input order preserved")
	assert.True(t, strings.HasPrefix(lines[2], "#222,Billing,"))
}

func TestExportCSVSanitizesDescription(t *testing.T) {
	complaints := []models.Complaint{
		{ID: "ccc333", Category: "Other", Description: "first, second\nthird", Priority: "Medium", Status: "Pending", Date: time.Now()},
	}

	out := ExportCSV(complaints)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "first; second third")
	assert.NotContains(t, lines[1], "\r")
}

func TestExportCSVMissingUserRendersNA(t *testing.T) {
	complaints := []models.Complaint{
		{ID: "ddd444", Category: "Service", Description: "Staff was unhelpful today", Priority: "Medium", Status: "Pending", Date: time.Now()},
	}

	out := ExportCSV(complaints)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasSuffix(lines[1], ",N/A,N/A"))
}

func TestExportCSVEmptyInputIsHeaderOnly(t *testing.T) {
	out := ExportCSV(nil)
	assert.Equal(t, strings.Join(CSVHeader, ","), out)
}
