package models

import (
	"time"
)

// RegionalAvailability represents the scheduled intent for a content item to
// become visible in a region on a calendar date. It is the source of truth
// for "when"; the effective "is it showing now" state lives in
// RegionalVisibility. Intent may be edited repeatedly before the date
// arrives without affecting user-visible behavior.
// Table: content_regional_availability
// Unique by (content_id, region); scheduling an existing pair overwrites the
// release date (last-write-wins), never creates a duplicate.
// ReleaseDate is stored as a date column; time-of-day is always UTC midnight.
type RegionalAvailability struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ContentID uint   `gorm:"not null;uniqueIndex:uk_regional_availability_content_region;index:idx_regional_availability_content_id" json:"content_id"`
	Region    string `gorm:"size:64;not null;uniqueIndex:uk_regional_availability_content_region;index:idx_regional_availability_region" json:"region"`

	ReleaseDate time.Time `gorm:"type:date;not null;index:idx_regional_availability_release_date" json:"release_date"`

	CreatedAt time.Time `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC')" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC')" json:"updated_at"`

	Content *Content `gorm:"foreignKey:ContentID" json:"content,omitempty"`
}

func (RegionalAvailability) TableName() string {
	return "content_regional_availability"
}

// RegionalAvailabilityFilter represents filter criteria for availability queries
type RegionalAvailabilityFilter struct {
	ID                *uint
	ContentID         *uint
	Region            *string
	ReleaseOnOrBefore *time.Time
	ReleaseOnOrAfter  *time.Time
	ReleaseAfter      *time.Time
	CreatedAfter      *time.Time
	CreatedBefore     *time.Time
}
