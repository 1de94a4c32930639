// Package models contains domain entities and business models for the regional release system
package models

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ContentType represents the kind of catalog item
type ContentType string

const (
	ContentTypeMovie ContentType = "movie"
	ContentTypeShow  ContentType = "show"
)

// String returns the string representation of the content type
func (t ContentType) String() string {
	return string(t)
}

// Valid checks if the content type is valid
func (t ContentType) Valid() bool {
	switch t {
	case ContentTypeMovie, ContentTypeShow:
		return true
	default:
		return false
	}
}

// Scan implements the sql.Scanner interface for ContentType
func (t *ContentType) Scan(value any) error {
	if value == nil {
		*t = ""
		return nil
	}

	switch v := value.(type) {
	case string:
		*t = ContentType(v)
	case []byte:
		*t = ContentType(string(v))
	default:
		return fmt.Errorf("cannot scan %T into ContentType", value)
	}

	return nil
}

// Value implements the driver.Valuer interface for ContentType
func (t ContentType) Value() (driver.Value, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("invalid ContentType: %s", t)
	}
	return string(t), nil
}

// Content represents a catalog item in the database.
// The catalog is owned by an external component; this subsystem only reads
// content rows to resolve identity and display metadata. It never creates,
// mutates, or deletes them.
// Table: content
type Content struct {
	ID   uint      `gorm:"primaryKey" json:"id"`
	UUID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uk_content_uuid;index:idx_content_uuid" json:"uuid"`

	Title       string      `gorm:"size:500;not null" json:"title"`
	Type        ContentType `gorm:"size:20;not null;index:idx_content_type" json:"type"`
	Description *string     `gorm:"type:text" json:"description,omitempty"`
	PosterURL   *string     `gorm:"size:2000" json:"poster_url,omitempty"`
	BackdropURL *string     `gorm:"size:2000" json:"backdrop_url,omitempty"`
	ReleaseYear *int        `json:"release_year,omitempty"`

	CreatedAt time.Time `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC')" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC')" json:"updated_at"`
}

func (Content) TableName() string {
	return "content"
}

// ContentFilter represents filter criteria for content queries
type ContentFilter struct {
	ID            *uint
	UUID          *uuid.UUID
	Title         *string
	Type          *ContentType
	ReleaseYear   *int
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
}
