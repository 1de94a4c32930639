package repository_test

import (
	"testing"
	"time"

	"github.com/nagasrivarun/global-stream-main/models"
	"github.com/nagasrivarun/global-stream-main/repository"
	testingutil "github.com/nagasrivarun/global-stream-main/testing"
	"github.com/nagasrivarun/global-stream-main/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireTestDB(t *testing.T) {
	t.Helper()
	if !testingutil.DBAvailable() {
		t.Skip("PostgreSQL not available, skipping repository tests")
	}
}

func TestContentRepository(t *testing.T) {
	requireTestDB(t)

	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		repo := repository.NewContentRepository(testDB.DB)
		fixtures := testingutil.NewTestFixtures(testDB)
		ctx := testingutil.CreateTestContext()

		content, err := fixtures.CreateTestContent(models.ContentTypeMovie)
		require.NoError(t, err)

		t.Run("ByUUID", func(t *testing.T) {
			found, err := repo.ByUUID(ctx, content.UUID.String())
			require.NoError(t, err)
			require.NotNil(t, found)
			assert.Equal(t, content.ID, found.ID)
			assert.Equal(t, content.Title, found.Title)
		})

		t.Run("ByUUIDNotFound", func(t *testing.T) {
			found, err := repo.ByUUID(ctx, "8f14e45f-ceea-467f-a8f9-5f2c1f1e9a10")
			require.NoError(t, err)
			assert.Nil(t, found)
		})

		t.Run("ByUUIDInvalid", func(t *testing.T) {
			_, err := repo.ByUUID(ctx, "not-a-uuid")
			assert.Error(t, err)
		})

		t.Run("ExistsByUUID", func(t *testing.T) {
			exists, err := repo.ExistsByUUID(ctx, content.UUID.String())
			require.NoError(t, err)
			assert.True(t, exists)
		})

		return nil
	})
	require.NoError(t, err)
}

func TestRegionalAvailabilityRepository(t *testing.T) {
	requireTestDB(t)

	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		repo := repository.NewRegionalAvailabilityRepository(testDB.DB)
		fixtures := testingutil.NewTestFixtures(testDB)
		ctx := testingutil.CreateTestContext()

		content, err := fixtures.CreateTestContent(models.ContentTypeMovie)
		require.NoError(t, err)
		today := utils.UTCToday()

		t.Run("UpsertInsertsNewPair", func(t *testing.T) {
			entry := &models.RegionalAvailability{
				ContentID:   content.ID,
				Region:      "US",
				ReleaseDate: today.AddDate(0, 0, 3),
			}
			require.NoError(t, repo.Upsert(ctx, entry))

			found, err := repo.ByContentAndRegion(ctx, content.ID, "US")
			require.NoError(t, err)
			require.NotNil(t, found)
			assert.Equal(t, utils.FormatDate(today.AddDate(0, 0, 3)), utils.FormatDate(found.ReleaseDate))
		})

		t.Run("UpsertOverwritesExistingPair", func(t *testing.T) {
			entry := &models.RegionalAvailability{
				ContentID:   content.ID,
				Region:      "US",
				ReleaseDate: today.AddDate(0, 0, 10),
			}
			require.NoError(t, repo.Upsert(ctx, entry))

			rows, err := repo.ListByContent(ctx, content.ID)
			require.NoError(t, err)
			require.Len(t, rows, 1)
			assert.Equal(t, utils.FormatDate(today.AddDate(0, 0, 10)), utils.FormatDate(rows[0].ReleaseDate))
		})

		t.Run("ListDueUsesInclusiveCutoff", func(t *testing.T) {
			_, err := fixtures.CreateTestAvailability(content.ID, "FR", today.AddDate(0, 0, -5))
			require.NoError(t, err)
			_, err = fixtures.CreateTestAvailability(content.ID, "DE", today)
			require.NoError(t, err)

			due, err := repo.ListDue(ctx, today)
			require.NoError(t, err)

			regions := make(map[string]bool)
			for _, d := range due {
				regions[d.Region] = true
			}
			assert.True(t, regions["FR"], "past entry should be due")
			assert.True(t, regions["DE"], "today entry should be due")
			assert.False(t, regions["US"], "future entry should not be due")
		})

		t.Run("ListWindowBoundsInclusive", func(t *testing.T) {
			window, err := repo.ListWindow(ctx, today, today.AddDate(0, 0, 10))
			require.NoError(t, err)

			regions := make(map[string]bool)
			for _, w := range window {
				regions[w.Region] = true
			}
			assert.True(t, regions["DE"])
			assert.True(t, regions["US"])
			assert.False(t, regions["FR"])
		})

		return nil
	})
	require.NoError(t, err)
}

func TestRegionalVisibilityRepository(t *testing.T) {
	requireTestDB(t)

	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		repo := repository.NewRegionalVisibilityRepository(testDB.DB)
		fixtures := testingutil.NewTestFixtures(testDB)
		ctx := testingutil.CreateTestContext()

		content, err := fixtures.CreateTestContent(models.ContentTypeShow)
		require.NoError(t, err)

		t.Run("UpsertVisibilityInsertsRow", func(t *testing.T) {
			require.NoError(t, repo.UpsertVisibility(ctx, content.ID, "US", true))

			row, err := repo.ByContentAndRegion(ctx, content.ID, "US")
			require.NoError(t, err)
			require.NotNil(t, row)
			assert.True(t, row.IsVisible)
		})

		t.Run("UpsertVisibilityUpdatesInPlace", func(t *testing.T) {
			require.NoError(t, repo.UpsertVisibility(ctx, content.ID, "US", false))

			row, err := repo.ByContentAndRegion(ctx, content.ID, "US")
			require.NoError(t, err)
			require.NotNil(t, row)
			assert.False(t, row.IsVisible)

			var count int64
			require.NoError(t, testDB.DB.Model(&models.RegionalVisibility{}).Count(&count).Error)
			assert.Equal(t, int64(1), count)
		})

		t.Run("AbsentRowReturnsNilNotError", func(t *testing.T) {
			row, err := repo.ByContentAndRegion(ctx, content.ID, "JP")
			require.NoError(t, err)
			assert.Nil(t, row)
		})

		t.Run("ListVisibleByRegionPreloadsContent", func(t *testing.T) {
			require.NoError(t, repo.UpsertVisibility(ctx, content.ID, "DE", true))

			rows, err := repo.ListVisibleByRegion(ctx, "DE")
			require.NoError(t, err)
			require.Len(t, rows, 1)
			require.NotNil(t, rows[0].Content)
			assert.Equal(t, content.UUID, rows[0].Content.UUID)
		})

		t.Run("ListVisibleByRegionExcludesHidden", func(t *testing.T) {
			rows, err := repo.ListVisibleByRegion(ctx, "US")
			require.NoError(t, err)
			assert.Empty(t, rows)
		})

		return nil
	})
	require.NoError(t, err)
}

func TestAuditLogRepository(t *testing.T) {
	requireTestDB(t)

	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		repo := repository.NewAuditLogRepository(testDB.DB)
		fixtures := testingutil.NewTestFixtures(testDB)
		ctx := testingutil.CreateTestContext()

		content, err := fixtures.CreateTestContent(models.ContentTypeMovie)
		require.NoError(t, err)

		desc := "scheduled in 2 regions"
		errMsg := "availability store write failed"
		require.NoError(t, repo.Save(ctx, &models.AuditLog{
			ContentID:   &content.ID,
			Action:      models.AuditActionReleaseScheduled,
			Description: &desc,
			Success:     utils.ToPtr(true),
			CreatedAt:   time.Now().UTC(),
		}))
		require.NoError(t, repo.Save(ctx, &models.AuditLog{
			ContentID:    &content.ID,
			Action:       models.AuditActionReleaseScheduleFailed,
			Success:      utils.ToPtr(false),
			ErrorMessage: &errMsg,
			CreatedAt:    time.Now().UTC(),
		}))

		t.Run("ListByContent", func(t *testing.T) {
			logs, err := repo.ListByContent(ctx, content.ID, 10, 0)
			require.NoError(t, err)
			assert.Len(t, logs, 2)
		})

		t.Run("ListByAction", func(t *testing.T) {
			logs, err := repo.ListByAction(ctx, models.AuditActionReleaseScheduled, 10, 0)
			require.NoError(t, err)
			require.Len(t, logs, 1)
			assert.Equal(t, models.AuditActionReleaseScheduled, logs[0].Action)
		})

		t.Run("ListFailedActions", func(t *testing.T) {
			logs, err := repo.ListFailedActions(ctx, 10, 0)
			require.NoError(t, err)
			require.Len(t, logs, 1)
			assert.True(t, logs[0].IsFailed())
		})

		return nil
	})
	require.NoError(t, err)
}
