package service

import (
	"context"

	"github.com/samadhaan/backend/internal/db"
)

// Distribution is a chart-ready grouped count.
type Distribution struct {
	Labels []string `json:"labels"`
	Data   []int    `json:"data"`
}

// AllStats combines the dashboard figures. Each field is an independent
// point-in-time read; under concurrent writes they can disagree by a
// small margin.
type AllStats struct {
	Total                int          `json:"total"`
	Pending              int          `json:"pending"`
	Resolved             int          `json:"resolved"`
	CategoryDistribution Distribution `json:"categoryDistribution"`
	StatusDistribution   Distribution `json:"statusDistribution"`
}

type StatsService struct {
	Store Store
}

func NewStatsService(store Store) *StatsService {
	return &StatsService{Store: store}
}

func (s *StatsService) Total(ctx context.Context) (int, error) {
	return s.Store.CountComplaints(ctx)
}

func (s *StatsService) CountByStatus(ctx context.Context, status string) (int, error) {
	return s.Store.CountComplaintsByStatus(ctx, status)
}

// CategoryDistribution is sorted by count, descending.
func (s *StatsService) CategoryDistribution(ctx context.Context) (Distribution, error) {
	buckets, err := s.Store.CategoryDistribution(ctx)
	if err != nil {
		return Distribution{}, err
	}
	return toDistribution(buckets), nil
}

func (s *StatsService) StatusDistribution(ctx context.Context) (Distribution, error) {
	buckets, err := s.Store.StatusDistribution(ctx)
	if err != nil {
		return Distribution{}, err
	}
	return toDistribution(buckets), nil
}

func (s *StatsService) All(ctx context.Context) (AllStats, error) {
	var out AllStats
	var err error
	if out.Total, err = s.Total(ctx); err != nil {
		return AllStats{}, err
	}
	if out.Pending, err = s.CountByStatus(ctx, "Pending"); err != nil {
		return AllStats{}, err
	}
	if out.Resolved, err = s.CountByStatus(ctx, "Resolved"); err != nil {
		return AllStats{}, err
	}
	if out.CategoryDistribution, err = s.CategoryDistribution(ctx); err != nil {
		return AllStats{}, err
	}
	if out.StatusDistribution, err = s.StatusDistribution(ctx); err != nil {
		return AllStats{}, err
	}
	return out, nil
}

func toDistribution(buckets []db.DistributionBucket) Distribution {
	d := Distribution{Labels: []string{}, Data: []int{}}
	for _, b := range buckets {
		d.Labels = append(d.Labels, b.Label)
		d.Data = append(d.Data, b.Count)
	}
	return d
}
