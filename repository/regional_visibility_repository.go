package repository

import (
	"context"
	"errors"

	"github.com/nagasrivarun/global-stream-main/models"
	"github.com/nagasrivarun/global-stream-main/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RegionalVisibilityRepositoryImpl implements the RegionalVisibilityRepository interface
type RegionalVisibilityRepositoryImpl struct {
	*BaseRepository[models.RegionalVisibility, models.RegionalVisibilityFilter]
}

// NewRegionalVisibilityRepository creates a new regional visibility repository
func NewRegionalVisibilityRepository(db *gorm.DB) RegionalVisibilityRepository {
	return &RegionalVisibilityRepositoryImpl{
		BaseRepository: NewBaseRepository[models.RegionalVisibility, models.RegionalVisibilityFilter](db),
	}
}

// UpsertVisibility inserts or updates the effective state row keyed by
// (content_id, region) in a single statement. Re-running a promotion for an
// already-visible pair re-stamps updated_at and leaves the flag unchanged,
// which is what makes processor invocations safely repeatable.
func (r *RegionalVisibilityRepositoryImpl) UpsertVisibility(ctx context.Context, contentID uint, region string, isVisible bool) error {
	db := r.getDB(ctx)

	now := utils.UTCNow()
	row := &models.RegionalVisibility{
		ContentID: contentID,
		Region:    region,
		IsVisible: isVisible,
		UpdatedAt: now,
	}

	return db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "content_id"}, {Name: "region"}},
		DoUpdates: clause.Assignments(map[string]any{
			"is_visible": isVisible,
			"updated_at": now,
		}),
	}).Create(row).Error
}

// ByContentAndRegion retrieves the effective state row for a (content, region) pair.
// A nil result is not an error: absence means not-yet-released.
func (r *RegionalVisibilityRepositoryImpl) ByContentAndRegion(ctx context.Context, contentID uint, region string) (*models.RegionalVisibility, error) {
	db := r.getDB(ctx)

	var row models.RegionalVisibility
	err := db.Where("content_id = ? AND region = ?", contentID, region).Last(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &row, nil
}

// ListVisibleByRegion retrieves every visible row for a region with content metadata preloaded
func (r *RegionalVisibilityRepositoryImpl) ListVisibleByRegion(ctx context.Context, region string) ([]*models.RegionalVisibility, error) {
	visible := true
	filter := models.RegionalVisibilityFilter{Region: &region, IsVisible: &visible}
	return r.ByFilter(ctx, filter, "", 0, 0)
}

// ByFilter retrieves visibility rows based on filter criteria
func (r *RegionalVisibilityRepositoryImpl) ByFilter(ctx context.Context, filter models.RegionalVisibilityFilter, orderBy string, limit, offset int) ([]*models.RegionalVisibility, error) {
	db := r.getDB(ctx)

	var rows []*models.RegionalVisibility
	query := r.applyFilter(db, filter)

	if orderBy != "" {
		query = query.Order(orderBy)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	query = query.Preload("Content")

	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}

// Count returns the number of visibility rows matching the filter
func (r *RegionalVisibilityRepositoryImpl) Count(ctx context.Context, filter models.RegionalVisibilityFilter) (int64, error) {
	db := r.getDB(ctx)

	var count int64
	var row models.RegionalVisibility
	query := r.applyFilter(db.Model(&row), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

// Exists checks if any visibility row matching the filter exists
func (r *RegionalVisibilityRepositoryImpl) Exists(ctx context.Context, filter models.RegionalVisibilityFilter) (bool, error) {
	count, err := r.Count(ctx, filter)
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// applyFilter applies filter conditions to the GORM query
func (r *RegionalVisibilityRepositoryImpl) applyFilter(db *gorm.DB, filter models.RegionalVisibilityFilter) *gorm.DB {
	if filter.ID != nil {
		db = db.Where("id = ?", *filter.ID)
	}
	if filter.ContentID != nil {
		db = db.Where("content_id = ?", *filter.ContentID)
	}
	if filter.Region != nil {
		db = db.Where("region = ?", *filter.Region)
	}
	if filter.IsVisible != nil {
		db = db.Where("is_visible = ?", *filter.IsVisible)
	}
	if filter.UpdatedAfter != nil {
		db = db.Where("updated_at > ?", *filter.UpdatedAfter)
	}
	if filter.UpdatedBefore != nil {
		db = db.Where("updated_at < ?", *filter.UpdatedBefore)
	}

	return db
}
