package service

import (
	"context"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/samadhaan/backend/internal/db"
	"github.com/samadhaan/backend/internal/models"
)

// fakeStore is an in-memory Store used by the service tests. It applies
// filters the same way the SQL queries do and records the last filter
// it was handed.
type fakeStore struct {
	complaints []models.Complaint
	lastFilter db.ComplaintFilter
	failWith   error
}

func (f *fakeStore) InsertComplaint(_ context.Context, c models.Complaint) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.complaints = append(f.complaints, c)
	return nil
}

func (f *fakeStore) ListComplaints(_ context.Context, filter db.ComplaintFilter) ([]models.Complaint, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	f.lastFilter = filter
	var out []models.Complaint
	for _, c := range f.complaints {
		if filter.OwnerID != "" && c.UserID != filter.OwnerID {
			continue
		}
		if filter.Category != "" && c.Category != filter.Category {
			continue
		}
		if filter.Priority != "" && c.Priority != filter.Priority {
			continue
		}
		if filter.Status != "" && c.Status != filter.Status {
			continue
		}
		if filter.DayStart != nil && filter.DayEnd != nil {
			if c.Date.Before(*filter.DayStart) || c.Date.After(*filter.DayEnd) {
				continue
			}
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(c.Description), strings.ToLower(filter.Search)) {
			continue
		}
		out = append(out, c)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (f *fakeStore) GetComplaint(_ context.Context, id string) (models.Complaint, error) {
	for _, c := range f.complaints {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Complaint{}, pgx.ErrNoRows
}

func (f *fakeStore) UpdateComplaintStatus(_ context.Context, id, status string) (models.Complaint, error) {
	for i, c := range f.complaints {
		if c.ID == id {
			f.complaints[i].Status = status
			return f.complaints[i], nil
		}
	}
	return models.Complaint{}, pgx.ErrNoRows
}

func (f *fakeStore) CountComplaints(context.Context) (int, error) {
	return len(f.complaints), nil
}

func (f *fakeStore) CountComplaintsByStatus(_ context.Context, status string) (int, error) {
	n := 0
	for _, c := range f.complaints {
		if c.Status == status {
			n++
		}
	}
	return n, nil
}

func (f *fakeStore) CategoryDistribution(context.Context) ([]db.DistributionBucket, error) {
	return f.groupBy(func(c models.Complaint) string { return c.Category }, true), nil
}

func (f *fakeStore) StatusDistribution(context.Context) ([]db.DistributionBucket, error) {
	return f.groupBy(func(c models.Complaint) string { return c.Status }, false), nil
}

func (f *fakeStore) groupBy(key func(models.Complaint) string, sortDesc bool) []db.DistributionBucket {
	counts := map[string]int{}
	var order []string
	for _, c := range f.complaints {
		k := key(c)
		if _, seen := counts[k]; !seen {
			order = append(order, k)
		}
		counts[k]++
	}
	out := make([]db.DistributionBucket, 0, len(order))
	for _, k := range order {
		out = append(out, db.DistributionBucket{Label: k, Count: counts[k]})
	}
	if sortDesc {
		sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	}
	return out
}
