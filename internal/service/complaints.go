package service

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/samadhaan/backend/internal/db"
	"github.com/samadhaan/backend/internal/models"
)

// Store is the persistence surface the complaint core needs. *db.Store
// satisfies it; tests substitute an in-memory fake.
type Store interface {
	InsertComplaint(ctx context.Context, c models.Complaint) error
	ListComplaints(ctx context.Context, f db.ComplaintFilter) ([]models.Complaint, error)
	GetComplaint(ctx context.Context, id string) (models.Complaint, error)
	UpdateComplaintStatus(ctx context.Context, id, status string) (models.Complaint, error)
	CountComplaints(ctx context.Context) (int, error)
	CountComplaintsByStatus(ctx context.Context, status string) (int, error)
	CategoryDistribution(ctx context.Context) ([]db.DistributionBucket, error)
	StatusDistribution(ctx context.Context) ([]db.DistributionBucket, error)
}

type ComplaintService struct {
	Store  Store
	Logger zerolog.Logger

	now func() time.Time
}

func NewComplaintService(store Store, logger zerolog.Logger) *ComplaintService {
	return &ComplaintService{Store: store, Logger: logger, now: time.Now}
}

type SubmitInput struct {
	Category    string `json:"category"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

// Submit validates and persists a new complaint owned by actorID. Every
// violated field is reported, not just the first.
func (s *ComplaintService) Submit(ctx context.Context, actorID string, in SubmitInput) (models.Complaint, error) {
	verr := &ValidationError{}
	if !models.ValidCategory(in.Category) {
		verr.add("category", "Invalid category")
	}
	desc := strings.TrimSpace(in.Description)
	if desc == "" {
		verr.add("description", "Description is required")
	} else if utf8.RuneCountInString(desc) < 10 {
		verr.add("description", "Description must be at least 10 characters")
	}
	priority := in.Priority
	if priority == "" {
		priority = models.DefaultPriority
	} else if !models.ValidPriority(priority) {
		verr.add("priority", "Invalid priority")
	}
	if err := verr.orNil(); err != nil {
		return models.Complaint{}, err
	}

	now := s.now()
	c := models.Complaint{
		ID:          uuid.NewString(),
		Category:    in.Category,
		Description: desc,
		Priority:    priority,
		Status:      models.DefaultStatus,
		Date:        now,
		UserID:      actorID,
		CreatedAt:   now,
	}
	if err := s.Store.InsertComplaint(ctx, c); err != nil {
		s.Logger.Error().Err(err).Msg("failed to insert complaint")
		return models.Complaint{}, err
	}
	return c, nil
}

// ListFilters are the optional query filters, combined with AND. Date
// is a calendar day in "2006-01-02" form, interpreted in server local
// time. Mine forces owner scoping even for admins (the /my listing).
type ListFilters struct {
	Category string
	Priority string
	Status   string
	Date     string
	Search   string
	Mine     bool
}

// List returns complaints visible to the actor, newest first. Non-admin
// actors only ever see their own complaints regardless of filters.
func (s *ComplaintService) List(ctx context.Context, actor models.Actor, f ListFilters) ([]models.Complaint, error) {
	filter := db.ComplaintFilter{
		Category: f.Category,
		Priority: f.Priority,
		Status:   f.Status,
		Search:   f.Search,
	}
	if f.Mine || !actor.IsAdmin() {
		filter.OwnerID = actor.ID
	} else {
		filter.WithUsers = true
	}
	if f.Date != "" {
		day, err := time.ParseInLocation("2006-01-02", f.Date, time.Local)
		if err != nil {
			verr := &ValidationError{}
			verr.add("date", "Invalid date")
			return nil, verr
		}
		end := time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, int(999*time.Millisecond), time.Local)
		filter.DayStart = &day
		filter.DayEnd = &end
	}
	return s.Store.ListComplaints(ctx, filter)
}

// GetByID fetches one complaint. Owners and admins may read it, anyone
// else gets ErrForbidden.
func (s *ComplaintService) GetByID(ctx context.Context, actor models.Actor, id string) (models.Complaint, error) {
	c, err := s.Store.GetComplaint(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Complaint{}, ErrNotFound
		}
		return models.Complaint{}, err
	}
	if c.UserID != actor.ID && !actor.IsAdmin() {
		return models.Complaint{}, ErrForbidden
	}
	return c, nil
}

// UpdateStatus sets a new workflow status. The HTTP layer already
// gates this behind the admin middleware; the role is re-checked here
// rather than assumed.
func (s *ComplaintService) UpdateStatus(ctx context.Context, actor models.Actor, id, status string) (models.Complaint, error) {
	if !actor.IsAdmin() {
		return models.Complaint{}, ErrForbidden
	}
	if !models.ValidStatus(status) {
		verr := &ValidationError{}
		verr.add("status", "Invalid status")
		return models.Complaint{}, verr
	}
	c, err := s.Store.UpdateComplaintStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Complaint{}, ErrNotFound
		}
		s.Logger.Error().Err(err).Str("complaint_id", id).Msg("failed to update status")
		return models.Complaint{}, err
	}
	return c, nil
}
