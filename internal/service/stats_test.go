package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samadhaan/backend/internal/models"
)

func statsFixture() *fakeStore {
	return &fakeStore{complaints: []models.Complaint{
		{ID: "c1", Category: "Technical", Status: "Pending"},
		{ID: "c2", Category: "Technical", Status: "Resolved"},
		{ID: "c3", Category: "Technical", Status: "In Progress"},
		{ID: "c4", Category: "Billing", Status: "Pending"},
		{ID: "c5", Category: "Billing", Status: "Resolved"},
		{ID: "c6", Category: "Other", Status: "Pending"},
	}}
}

func TestCategoryDistributionSumsToTotal(t *testing.T) {
	store := statsFixture()
	svc := NewStatsService(store)
	ctx := context.Background()

	total, err := svc.Total(ctx)
	require.NoError(t, err)

	dist, err := svc.CategoryDistribution(ctx)
	require.NoError(t, err)

	sum := 0
	for _, n := range dist.Data {
		sum += n
	}
	assert.Equal(t, total, sum)
}

func TestCategoryDistributionSortedDescending(t *testing.T) {
	svc := NewStatsService(statsFixture())

	dist, err := svc.CategoryDistribution(context.Background())
	require.NoError(t, err)

	require.Equal(t, []string{"Technical", "Billing", "Other"}, dist.Labels)
	require.Equal(t, []int{3, 2, 1}, dist.Data)
}

func TestCountByStatus(t *testing.T) {
	svc := NewStatsService(statsFixture())
	ctx := context.Background()

	pending, err := svc.CountByStatus(ctx, "Pending")
	require.NoError(t, err)
	assert.Equal(t, 3, pending)

	resolved, err := svc.CountByStatus(ctx, "Resolved")
	require.NoError(t, err)
	assert.Equal(t, 2, resolved)
}

func TestAllStatsCombinesFigures(t *testing.T) {
	svc := NewStatsService(statsFixture())

	all, err := svc.All(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 6, all.Total)
	assert.Equal(t, 3, all.Pending)
	assert.Equal(t, 2, all.Resolved)
	assert.Len(t, all.CategoryDistribution.Labels, 3)
	assert.Len(t, all.StatusDistribution.Labels, 3)
}

func TestDistributionsEmptyStore(t *testing.T) {
	svc := NewStatsService(&fakeStore{})

	dist, err := svc.CategoryDistribution(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, dist.Labels, "chart shape stays well-formed when empty")
	assert.Empty(t, dist.Labels)
	assert.Empty(t, dist.Data)
}
