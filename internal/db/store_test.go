package db

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/samadhaan/backend/internal/models"
)

func TestEscapeLike(t *testing.T) {
	cases := []struct{ in, want string }{
		{"printer", "printer"},
		{"100%", `100\%`},
		{"user_id", `user\_id`},
		{`C:\temp`, `C:\\temp`},
		{`%_\`, `\%\_\\`},
	}
	for _, tc := range cases {
		if got := escapeLike(tc.in); got != tc.want {
			t.Errorf("escapeLike(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

// Round-trip against a real database. Skipped unless TEST_DATABASE_URL
// points at a disposable Postgres instance.
func TestComplaintRoundTripIntegration(t *testing.T) {
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	store, err := New(ctx, url)
	if err != nil {
		t.Fatalf("db connect: %v", err)
	}
	defer store.Close()

	if err := store.Migrate(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	owner := uuid.NewString()
	_, err = store.Pool.Exec(ctx,
		`INSERT INTO users (id, name, email, password_hash) VALUES ($1, $2, $3, $4)`,
		owner, "Test User", uuid.NewString()+"@example.com", "x")
	if err != nil {
		t.Fatalf("insert user: %v", err)
	}

	now := time.Now()
	c := models.Complaint{
		ID:          uuid.NewString(),
		Category:    "Technical",
		Description: "Integration test complaint",
		Priority:    "Medium",
		Status:      "Pending",
		Date:        now,
		UserID:      owner,
		CreatedAt:   now,
	}
	if err := store.InsertComplaint(ctx, c); err != nil {
		t.Fatalf("insert complaint: %v", err)
	}

	got, err := store.GetComplaint(ctx, c.ID)
	if err != nil {
		t.Fatalf("get complaint: %v", err)
	}
	if got.Description != c.Description || got.UserName != "Test User" {
		t.Fatalf("unexpected row: %+v", got)
	}

	listed, err := store.ListComplaints(ctx, ComplaintFilter{OwnerID: owner, Search: "integration"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("expected 1 listed complaint, got %d", len(listed))
	}

	updated, err := store.UpdateComplaintStatus(ctx, c.ID, "Resolved")
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if updated.Status != "Resolved" {
		t.Fatalf("expected Resolved, got %s", updated.Status)
	}
}
