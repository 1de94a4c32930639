// Package repository provides data access layer implementations and interfaces for database operations
package repository

import (
	"context"
	"time"

	"github.com/nagasrivarun/global-stream-main/models"
)

// RepositoryContext key for transaction in context
type contextKey string

const TxContextKey contextKey = "tx"

type Repository[T any, F any] interface {
	ByID(ctx context.Context, id uint) (*T, error)
	ByFilter(ctx context.Context, filter F, orderBy string, limit, offset int) ([]*T, error)
	Save(ctx context.Context, entity *T) error
	SaveBatch(ctx context.Context, entities []*T) error
	Count(ctx context.Context, filter F) (int64, error)
	Exists(ctx context.Context, filter F) (bool, error)
}

// ContentRepository defines read-only operations against the external catalog.
// This subsystem references content rows but never owns their lifecycle.
type ContentRepository interface {
	Repository[models.Content, models.ContentFilter]
	ByUUID(ctx context.Context, uuid string) (*models.Content, error)
	ExistsByUUID(ctx context.Context, uuid string) (bool, error)
	ByIDs(ctx context.Context, ids []uint) ([]*models.Content, error)
}

// RegionalAvailabilityRepository defines operations for scheduled release intents
type RegionalAvailabilityRepository interface {
	Repository[models.RegionalAvailability, models.RegionalAvailabilityFilter]
	// Upsert atomically inserts or overwrites the row keyed by (content_id, region)
	Upsert(ctx context.Context, entry *models.RegionalAvailability) error
	ByContentAndRegion(ctx context.Context, contentID uint, region string) (*models.RegionalAvailability, error)
	ListByContent(ctx context.Context, contentID uint) ([]*models.RegionalAvailability, error)
	// ListDue returns every intent whose release date is on or before asOf
	ListDue(ctx context.Context, asOf time.Time) ([]*models.RegionalAvailability, error)
	// ListWindow returns intents with release dates inside [from, to], ordered by release date
	ListWindow(ctx context.Context, from, to time.Time) ([]*models.RegionalAvailability, error)
}

// AuditLogRepository defines operations for operator action audit logs
type AuditLogRepository interface {
	Repository[models.AuditLog, models.AuditLogFilter]
	ListByContent(ctx context.Context, contentID uint, limit, offset int) ([]*models.AuditLog, error)
	ListByAction(ctx context.Context, action string, limit, offset int) ([]*models.AuditLog, error)
	ListFailedActions(ctx context.Context, limit, offset int) ([]*models.AuditLog, error)
}

// RegionalVisibilityRepository defines operations for effective visibility state
type RegionalVisibilityRepository interface {
	Repository[models.RegionalVisibility, models.RegionalVisibilityFilter]
	// UpsertVisibility atomically inserts or updates the row keyed by (content_id, region)
	UpsertVisibility(ctx context.Context, contentID uint, region string, isVisible bool) error
	ByContentAndRegion(ctx context.Context, contentID uint, region string) (*models.RegionalVisibility, error)
	ListVisibleByRegion(ctx context.Context, region string) ([]*models.RegionalVisibility, error)
}
