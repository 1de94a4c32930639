package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/nagasrivarun/global-stream-main/models"
	"gorm.io/gorm"
)

// ContentRepositoryImpl implements the ContentRepository interface.
// All operations are read-only; catalog writes belong to the admin CRUD
// surface outside this subsystem.
type ContentRepositoryImpl struct {
	*BaseRepository[models.Content, models.ContentFilter]
}

// NewContentRepository creates a new content repository
func NewContentRepository(db *gorm.DB) ContentRepository {
	return &ContentRepositoryImpl{
		BaseRepository: NewBaseRepository[models.Content, models.ContentFilter](db),
	}
}

// ByUUID retrieves a content item by UUID
func (r *ContentRepositoryImpl) ByUUID(ctx context.Context, rawUUID string) (*models.Content, error) {
	parsedUUID, err := uuid.Parse(rawUUID)
	if err != nil {
		return nil, fmt.Errorf("invalid content UUID %q: %w", rawUUID, err)
	}

	db := r.getDB(ctx)

	var content models.Content
	err = db.Where("uuid = ?", parsedUUID).Last(&content).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &content, nil
}

// ExistsByUUID checks whether a content item exists in the catalog
func (r *ContentRepositoryImpl) ExistsByUUID(ctx context.Context, rawUUID string) (bool, error) {
	content, err := r.ByUUID(ctx, rawUUID)
	if err != nil {
		return false, err
	}
	return content != nil, nil
}

// ByIDs retrieves content items by their internal IDs
func (r *ContentRepositoryImpl) ByIDs(ctx context.Context, ids []uint) ([]*models.Content, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	db := r.getDB(ctx)

	var items []*models.Content
	if err := db.Where("id IN ?", ids).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ByFilter retrieves content items based on filter criteria
func (r *ContentRepositoryImpl) ByFilter(ctx context.Context, filter models.ContentFilter, orderBy string, limit, offset int) ([]*models.Content, error) {
	db := r.getDB(ctx)

	var items []*models.Content
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

	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}

	return items, nil
}

// Count returns the number of content items matching the filter
func (r *ContentRepositoryImpl) Count(ctx context.Context, filter models.ContentFilter) (int64, error) {
	db := r.getDB(ctx)

	var count int64
	var content models.Content
	query := r.applyFilter(db.Model(&content), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

// Exists checks if any content item matching the filter exists
func (r *ContentRepositoryImpl) Exists(ctx context.Context, filter models.ContentFilter) (bool, error) {
	count, err := r.Count(ctx, filter)
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// applyFilter applies filter conditions to the GORM query
func (r *ContentRepositoryImpl) applyFilter(db *gorm.DB, filter models.ContentFilter) *gorm.DB {
	if filter.ID != nil {
		db = db.Where("id = ?", *filter.ID)
	}
	if filter.UUID != nil {
		db = db.Where("uuid = ?", *filter.UUID)
	}
	if filter.Title != nil {
		db = db.Where("title ILIKE ?", "%"+*filter.Title+"%")
	}
	if filter.Type != nil {
		db = db.Where("type = ?", *filter.Type)
	}
	if filter.ReleaseYear != nil {
		db = db.Where("release_year = ?", *filter.ReleaseYear)
	}
	if filter.CreatedAfter != nil {
		db = db.Where("created_at >= ?", *filter.CreatedAfter)
	}
	if filter.CreatedBefore != nil {
		db = db.Where("created_at < ?", *filter.CreatedBefore)
	}

	return db
}
