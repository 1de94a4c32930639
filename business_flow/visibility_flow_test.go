package businessflow

import (
	"context"
	"testing"

	"github.com/nagasrivarun/global-stream-main/app/dto"
	"github.com/nagasrivarun/global-stream-main/models"
	"github.com/nagasrivarun/global-stream-main/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetVisibleContent(t *testing.T) {
	ctx := context.Background()

	t.Run("ListsVisibleContentInRegion", func(t *testing.T) {
		movie := newTestContent(1, "The Expanse")
		show := newTestContent(2, "Dark")
		visRepo := newFakeVisibilityRepo(movie, show)
		require.NoError(t, visRepo.UpsertVisibility(ctx, 1, "US", true))
		require.NoError(t, visRepo.UpsertVisibility(ctx, 2, "US", false))
		require.NoError(t, visRepo.UpsertVisibility(ctx, 2, "DE", true))
		flow := NewVisibilityFlow(newFakeContentRepo(movie, show), visRepo, newFakeAuditRepo(), nil, nil, nil)

		resp, err := flow.GetVisibleContent(ctx, "us")
		require.NoError(t, err)
		assert.Equal(t, "US", resp.Region)
		require.Len(t, resp.Items, 1)
		assert.Equal(t, "The Expanse", resp.Items[0].Title)
	})

	t.Run("NormalizesRegionBeforeLookup", func(t *testing.T) {
		movie := newTestContent(1, "The Expanse")
		visRepo := newFakeVisibilityRepo(movie)
		require.NoError(t, visRepo.UpsertVisibility(ctx, 1, utils.RegionGlobal, true))
		flow := NewVisibilityFlow(newFakeContentRepo(movie), visRepo, newFakeAuditRepo(), nil, nil, nil)

		resp, err := flow.GetVisibleContent(ctx, " GLOBAL ")
		require.NoError(t, err)
		assert.Equal(t, utils.RegionGlobal, resp.Region)
		assert.Len(t, resp.Items, 1)
	})

	t.Run("EmptyRegionFails", func(t *testing.T) {
		flow := NewVisibilityFlow(newFakeContentRepo(), newFakeVisibilityRepo(), newFakeAuditRepo(), nil, nil, nil)

		_, err := flow.GetVisibleContent(ctx, "   ")
		assert.True(t, IsRegionRequired(err))
	})

	t.Run("EmptyRegionListingsAreEmptyNotNil", func(t *testing.T) {
		flow := NewVisibilityFlow(newFakeContentRepo(), newFakeVisibilityRepo(), newFakeAuditRepo(), nil, nil, nil)

		resp, err := flow.GetVisibleContent(ctx, "JP")
		require.NoError(t, err)
		assert.NotNil(t, resp.Items)
		assert.Empty(t, resp.Items)
	})
}

func TestIsContentVisible(t *testing.T) {
	ctx := context.Background()

	t.Run("VisibleRowAnswersTrue", func(t *testing.T) {
		movie := newTestContent(1, "The Expanse")
		visRepo := newFakeVisibilityRepo(movie)
		require.NoError(t, visRepo.UpsertVisibility(ctx, 1, "US", true))
		flow := NewVisibilityFlow(newFakeContentRepo(movie), visRepo, newFakeAuditRepo(), nil, nil, nil)

		resp, err := flow.IsContentVisible(ctx, movie.UUID.String(), "us")
		require.NoError(t, err)
		assert.True(t, resp.Visible)
	})

	t.Run("AbsentRowAnswersFalse", func(t *testing.T) {
		movie := newTestContent(1, "The Expanse")
		flow := NewVisibilityFlow(newFakeContentRepo(movie), newFakeVisibilityRepo(movie), newFakeAuditRepo(), nil, nil, nil)

		resp, err := flow.IsContentVisible(ctx, movie.UUID.String(), "US")
		require.NoError(t, err)
		assert.False(t, resp.Visible)
	})

	t.Run("HiddenRowAnswersFalse", func(t *testing.T) {
		movie := newTestContent(1, "The Expanse")
		visRepo := newFakeVisibilityRepo(movie)
		require.NoError(t, visRepo.UpsertVisibility(ctx, 1, "US", false))
		flow := NewVisibilityFlow(newFakeContentRepo(movie), visRepo, newFakeAuditRepo(), nil, nil, nil)

		resp, err := flow.IsContentVisible(ctx, movie.UUID.String(), "US")
		require.NoError(t, err)
		assert.False(t, resp.Visible)
	})

	t.Run("UnknownContentAnswersFalseNotError", func(t *testing.T) {
		flow := NewVisibilityFlow(newFakeContentRepo(), newFakeVisibilityRepo(), newFakeAuditRepo(), nil, nil, nil)

		resp, err := flow.IsContentVisible(ctx, "8f14e45f-ceea-467f-a8f9-5f2c1f1e9a10", "US")
		require.NoError(t, err)
		assert.False(t, resp.Visible)
	})

	t.Run("MalformedIDAnswersFalseNotError", func(t *testing.T) {
		flow := NewVisibilityFlow(newFakeContentRepo(), newFakeVisibilityRepo(), newFakeAuditRepo(), nil, nil, nil)

		resp, err := flow.IsContentVisible(ctx, "not-a-uuid", "US")
		require.NoError(t, err)
		assert.False(t, resp.Visible)
	})

	t.Run("EmptyRegionFails", func(t *testing.T) {
		flow := NewVisibilityFlow(newFakeContentRepo(), newFakeVisibilityRepo(), newFakeAuditRepo(), nil, nil, nil)

		_, err := flow.IsContentVisible(ctx, "8f14e45f-ceea-467f-a8f9-5f2c1f1e9a10", "")
		assert.True(t, IsRegionRequired(err))
	})
}

func TestSetVisibilityOverride(t *testing.T) {
	ctx := context.Background()
	metadata := NewClientMetadata("127.0.0.1", "test-agent")

	t.Run("ForcesVisibilityOn", func(t *testing.T) {
		movie := newTestContent(1, "The Expanse")
		visRepo := newFakeVisibilityRepo(movie)
		flow := NewVisibilityFlow(newFakeContentRepo(movie), visRepo, newFakeAuditRepo(), nil, nil, nil)

		resp, err := flow.SetVisibilityOverride(ctx, &dto.SetVisibilityRequest{
			ContentID: movie.UUID.String(),
			Region:    "us",
			IsVisible: utils.ToPtr(true),
		}, metadata)
		require.NoError(t, err)
		assert.True(t, resp.Visible)
		assert.Equal(t, "US", resp.Region)

		row, _ := visRepo.ByContentAndRegion(ctx, 1, "US")
		require.NotNil(t, row)
		assert.True(t, row.IsVisible)
	})

	t.Run("DemotesVisibleItem", func(t *testing.T) {
		movie := newTestContent(1, "The Expanse")
		visRepo := newFakeVisibilityRepo(movie)
		require.NoError(t, visRepo.UpsertVisibility(ctx, 1, "US", true))
		auditRepo := newFakeAuditRepo()
		flow := NewVisibilityFlow(newFakeContentRepo(movie), visRepo, auditRepo, nil, nil, nil)

		resp, err := flow.SetVisibilityOverride(ctx, &dto.SetVisibilityRequest{
			ContentID: movie.UUID.String(),
			Region:    "US",
			IsVisible: utils.ToPtr(false),
		}, metadata)
		require.NoError(t, err)
		assert.False(t, resp.Visible)

		row, _ := visRepo.ByContentAndRegion(ctx, 1, "US")
		assert.False(t, row.IsVisible)

		overridden, _ := auditRepo.ListByAction(ctx, models.AuditActionVisibilityOverridden, 0, 0)
		assert.Len(t, overridden, 1)
	})

	t.Run("UnknownContentFails", func(t *testing.T) {
		flow := NewVisibilityFlow(newFakeContentRepo(), newFakeVisibilityRepo(), newFakeAuditRepo(), nil, nil, nil)

		_, err := flow.SetVisibilityOverride(ctx, &dto.SetVisibilityRequest{
			ContentID: "8f14e45f-ceea-467f-a8f9-5f2c1f1e9a10",
			Region:    "US",
			IsVisible: utils.ToPtr(true),
		}, metadata)
		assert.True(t, IsContentNotFound(err))
	})

	t.Run("StoreFailureIsAudited", func(t *testing.T) {
		movie := newTestContent(1, "The Expanse")
		visRepo := newFakeVisibilityRepo(movie)
		visRepo.failRegions["US"] = true
		auditRepo := newFakeAuditRepo()
		flow := NewVisibilityFlow(newFakeContentRepo(movie), visRepo, auditRepo, nil, nil, nil)

		_, err := flow.SetVisibilityOverride(ctx, &dto.SetVisibilityRequest{
			ContentID: movie.UUID.String(),
			Region:    "US",
			IsVisible: utils.ToPtr(true),
		}, metadata)
		assert.Error(t, err)

		failures, _ := auditRepo.ListByAction(ctx, models.AuditActionVisibilityOverrideFailed, 0, 0)
		assert.Len(t, failures, 1)
	})
}
