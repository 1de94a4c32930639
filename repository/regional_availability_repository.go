package repository

import (
	"context"
	"errors"
	"time"

	"github.com/nagasrivarun/global-stream-main/models"
	"github.com/nagasrivarun/global-stream-main/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RegionalAvailabilityRepositoryImpl implements the RegionalAvailabilityRepository interface
type RegionalAvailabilityRepositoryImpl struct {
	*BaseRepository[models.RegionalAvailability, models.RegionalAvailabilityFilter]
}

// NewRegionalAvailabilityRepository creates a new regional availability repository
func NewRegionalAvailabilityRepository(db *gorm.DB) RegionalAvailabilityRepository {
	return &RegionalAvailabilityRepositoryImpl{
		BaseRepository: NewBaseRepository[models.RegionalAvailability, models.RegionalAvailabilityFilter](db),
	}
}

// Upsert inserts the intent row or, when the (content_id, region) pair already
// exists, overwrites release_date and updated_at in a single statement.
// The conditional write closes the race window a select-then-insert pair
// would leave open under concurrent schedulers; last write wins per row.
func (r *RegionalAvailabilityRepositoryImpl) Upsert(ctx context.Context, entry *models.RegionalAvailability) error {
	db := r.getDB(ctx)

	entry.UpdatedAt = utils.UTCNow()
	return db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "content_id"}, {Name: "region"}},
		DoUpdates: clause.Assignments(map[string]any{
			"release_date": clause.Expr{SQL: "EXCLUDED.release_date"},
			"updated_at":   clause.Expr{SQL: "EXCLUDED.updated_at"},
		}),
	}).Create(entry).Error
}

// ByContentAndRegion retrieves the intent row for a (content, region) pair
func (r *RegionalAvailabilityRepositoryImpl) ByContentAndRegion(ctx context.Context, contentID uint, region string) (*models.RegionalAvailability, error) {
	db := r.getDB(ctx)

	var entry models.RegionalAvailability
	err := db.Where("content_id = ? AND region = ?", contentID, region).Last(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &entry, nil
}

// ListByContent retrieves every regional intent for one content item
func (r *RegionalAvailabilityRepositoryImpl) ListByContent(ctx context.Context, contentID uint) ([]*models.RegionalAvailability, error) {
	filter := models.RegionalAvailabilityFilter{ContentID: &contentID}
	return r.ByFilter(ctx, filter, "release_date ASC", 0, 0)
}

// ListDue retrieves every intent whose release date is on or before asOf.
// The inclusive comparison keeps rows from a missed processor run eligible
// on the next invocation.
func (r *RegionalAvailabilityRepositoryImpl) ListDue(ctx context.Context, asOf time.Time) ([]*models.RegionalAvailability, error) {
	asOfDate := utils.TruncateToDate(asOf)
	filter := models.RegionalAvailabilityFilter{ReleaseOnOrBefore: &asOfDate}
	return r.ByFilter(ctx, filter, "release_date ASC", 0, 0)
}

// ListWindow retrieves intents with release dates inside [from, to], ordered by release date
func (r *RegionalAvailabilityRepositoryImpl) ListWindow(ctx context.Context, from, to time.Time) ([]*models.RegionalAvailability, error) {
	fromDate := utils.TruncateToDate(from)
	toDate := utils.TruncateToDate(to)
	filter := models.RegionalAvailabilityFilter{
		ReleaseOnOrAfter:  &fromDate,
		ReleaseOnOrBefore: &toDate,
	}
	return r.ByFilter(ctx, filter, "release_date ASC", 0, 0)
}

// ByFilter retrieves availability rows based on filter criteria
func (r *RegionalAvailabilityRepositoryImpl) ByFilter(ctx context.Context, filter models.RegionalAvailabilityFilter, orderBy string, limit, offset int) ([]*models.RegionalAvailability, error) {
	db := r.getDB(ctx)

	var entries []*models.RegionalAvailability
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

	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}

	return entries, nil
}

// Count returns the number of availability rows matching the filter
func (r *RegionalAvailabilityRepositoryImpl) Count(ctx context.Context, filter models.RegionalAvailabilityFilter) (int64, error) {
	db := r.getDB(ctx)

	var count int64
	var entry models.RegionalAvailability
	query := r.applyFilter(db.Model(&entry), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

// Exists checks if any availability row matching the filter exists
func (r *RegionalAvailabilityRepositoryImpl) Exists(ctx context.Context, filter models.RegionalAvailabilityFilter) (bool, error) {
	count, err := r.Count(ctx, filter)
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// applyFilter applies filter conditions to the GORM query
func (r *RegionalAvailabilityRepositoryImpl) applyFilter(db *gorm.DB, filter models.RegionalAvailabilityFilter) *gorm.DB {
	if filter.ID != nil {
		db = db.Where("id = ?", *filter.ID)
	}
	if filter.ContentID != nil {
		db = db.Where("content_id = ?", *filter.ContentID)
	}
	if filter.Region != nil {
		db = db.Where("region = ?", *filter.Region)
	}
	if filter.ReleaseOnOrBefore != nil {
		db = db.Where("release_date <= ?", *filter.ReleaseOnOrBefore)
	}
	if filter.ReleaseOnOrAfter != nil {
		db = db.Where("release_date >= ?", *filter.ReleaseOnOrAfter)
	}
	if filter.ReleaseAfter != nil {
		db = db.Where("release_date > ?", *filter.ReleaseAfter)
	}
	if filter.CreatedAfter != nil {
		db = db.Where("created_at >= ?", *filter.CreatedAfter)
	}
	if filter.CreatedBefore != nil {
		db = db.Where("created_at < ?", *filter.CreatedBefore)
	}

	return db
}
