package businessflow

import (
	"context"
	"testing"
	"time"

	"github.com/nagasrivarun/global-stream-main/models"
	"github.com/nagasrivarun/global-stream-main/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedAvailability(repo *fakeAvailabilityRepo, contentID uint, region string, releaseDate time.Time) {
	repo.entries[availKey(contentID, region)] = &models.RegionalAvailability{
		ContentID:   contentID,
		Region:      region,
		ReleaseDate: utils.TruncateToDate(releaseDate),
	}
}

func TestProcessScheduledReleases(t *testing.T) {
	ctx := context.Background()
	metadata := NewClientMetadata("", "test-scheduler")

	t.Run("PromotesDueEntries", func(t *testing.T) {
		availRepo := newFakeAvailabilityRepo()
		visRepo := newFakeVisibilityRepo()
		today := utils.UTCToday()
		seedAvailability(availRepo, 1, "US", today.AddDate(0, 0, -2)) // past due
		seedAvailability(availRepo, 1, "FR", today)                   // due today
		seedAvailability(availRepo, 2, "US", today.AddDate(0, 0, 5))  // future
		flow := NewProcessorFlow(availRepo, visRepo, newFakeAuditRepo(), nil, nil, nil)

		resp, err := flow.ProcessScheduledReleases(ctx, nil, metadata)
		require.NoError(t, err)
		assert.Equal(t, 2, resp.Processed)
		assert.Zero(t, resp.Failed)

		us, _ := visRepo.ByContentAndRegion(ctx, 1, "US")
		require.NotNil(t, us)
		assert.True(t, us.IsVisible)
		fr, _ := visRepo.ByContentAndRegion(ctx, 1, "FR")
		require.NotNil(t, fr)
		assert.True(t, fr.IsVisible)

		// Future entry is untouched
		future, _ := visRepo.ByContentAndRegion(ctx, 2, "US")
		assert.Nil(t, future)
	})

	t.Run("ReRunningConverges", func(t *testing.T) {
		availRepo := newFakeAvailabilityRepo()
		visRepo := newFakeVisibilityRepo()
		seedAvailability(availRepo, 1, "US", utils.UTCToday().AddDate(0, 0, -1))
		flow := NewProcessorFlow(availRepo, visRepo, newFakeAuditRepo(), nil, nil, nil)

		first, err := flow.ProcessScheduledReleases(ctx, nil, metadata)
		require.NoError(t, err)
		assert.Equal(t, 1, first.Processed)

		second, err := flow.ProcessScheduledReleases(ctx, nil, metadata)
		require.NoError(t, err)
		assert.Equal(t, 1, second.Processed)

		row, _ := visRepo.ByContentAndRegion(ctx, 1, "US")
		require.NotNil(t, row)
		assert.True(t, row.IsVisible)
		assert.Len(t, visRepo.rows, 1)
	})

	t.Run("NeverDemotesVisibility", func(t *testing.T) {
		availRepo := newFakeAvailabilityRepo()
		visRepo := newFakeVisibilityRepo()
		// Operator hid the item earlier; a due intent re-promotes it
		require.NoError(t, visRepo.UpsertVisibility(ctx, 1, "US", false))
		seedAvailability(availRepo, 1, "US", utils.UTCToday())
		flow := NewProcessorFlow(availRepo, visRepo, newFakeAuditRepo(), nil, nil, nil)

		_, err := flow.ProcessScheduledReleases(ctx, nil, metadata)
		require.NoError(t, err)

		row, _ := visRepo.ByContentAndRegion(ctx, 1, "US")
		assert.True(t, row.IsVisible)
	})

	t.Run("HonorsAsOfOverride", func(t *testing.T) {
		availRepo := newFakeAvailabilityRepo()
		visRepo := newFakeVisibilityRepo()
		target := utils.UTCToday().AddDate(0, 0, 10)
		seedAvailability(availRepo, 1, "US", target)
		flow := NewProcessorFlow(availRepo, visRepo, newFakeAuditRepo(), nil, nil, nil)

		resp, err := flow.ProcessScheduledReleases(ctx, &target, metadata)
		require.NoError(t, err)
		assert.Equal(t, 1, resp.Processed)
		assert.Equal(t, utils.FormatDate(target), resp.AsOfDate)
	})

	t.Run("FailedPromotionIsIsolated", func(t *testing.T) {
		availRepo := newFakeAvailabilityRepo()
		visRepo := newFakeVisibilityRepo()
		visRepo.failRegions["FR"] = true
		today := utils.UTCToday()
		seedAvailability(availRepo, 1, "US", today)
		seedAvailability(availRepo, 1, "FR", today)
		auditRepo := newFakeAuditRepo()
		flow := NewProcessorFlow(availRepo, visRepo, auditRepo, nil, nil, nil)

		resp, err := flow.ProcessScheduledReleases(ctx, nil, metadata)
		require.NoError(t, err)
		assert.Equal(t, 1, resp.Processed)
		assert.Equal(t, 1, resp.Failed)

		failures, _ := auditRepo.ListByAction(ctx, models.AuditActionReleaseProcessingFailed, 0, 0)
		assert.Len(t, failures, 1)
	})

	t.Run("ListingFailureSurfacesError", func(t *testing.T) {
		availRepo := newFakeAvailabilityRepo()
		availRepo.err = errStoreDown
		flow := NewProcessorFlow(availRepo, newFakeVisibilityRepo(), newFakeAuditRepo(), nil, nil, nil)

		_, err := flow.ProcessScheduledReleases(ctx, nil, metadata)
		assert.Error(t, err)
	})

	t.Run("EmptyRunIsQuiet", func(t *testing.T) {
		auditRepo := newFakeAuditRepo()
		flow := NewProcessorFlow(newFakeAvailabilityRepo(), newFakeVisibilityRepo(), auditRepo, nil, nil, nil)

		resp, err := flow.ProcessScheduledReleases(ctx, nil, metadata)
		require.NoError(t, err)
		assert.Zero(t, resp.Processed)
		assert.Empty(t, auditRepo.logs)
	})
}
