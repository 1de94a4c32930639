package models

import (
	"time"
)

// RegionalVisibility represents the effective, currently-in-force visibility
// of a content item in a region. Rows are created and flipped only by the
// release processor's date-gated promotion or by an explicit operator
// override; the scheduler never touches this table.
// Promotion is one-way: the processor flips not-visible to visible and never
// demotes. Absence of a row means not-yet-released, the default state.
// Table: content_regional_visibility
// Unique by (content_id, region).
type RegionalVisibility struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ContentID uint   `gorm:"not null;uniqueIndex:uk_regional_visibility_content_region;index:idx_regional_visibility_content_id" json:"content_id"`
	Region    string `gorm:"size:64;not null;uniqueIndex:uk_regional_visibility_content_region;index:idx_regional_visibility_region" json:"region"`

	IsVisible bool `gorm:"not null;default:false;index:idx_regional_visibility_is_visible" json:"is_visible"`

	CreatedAt time.Time `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC')" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC')" json:"updated_at"`

	Content *Content `gorm:"foreignKey:ContentID" json:"content,omitempty"`
}

func (RegionalVisibility) TableName() string {
	return "content_regional_visibility"
}

// RegionalVisibilityFilter represents filter criteria for visibility queries
type RegionalVisibilityFilter struct {
	ID            *uint
	ContentID     *uint
	Region        *string
	IsVisible     *bool
	UpdatedAfter  *time.Time
	UpdatedBefore *time.Time
}
