package models

import (
	"encoding/json"
	"time"
)

// AuditLog records operator-facing actions against the release subsystem.
// Rows are written best-effort; an audit failure never fails the operation.
type AuditLog struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	ContentID    *uint           `gorm:"index:idx_audit_content_id" json:"content_id,omitempty"`
	Content      *Content        `gorm:"foreignKey:ContentID;references:ID" json:"content,omitempty"`
	Action       string          `gorm:"size:64;not null;index:idx_audit_action" json:"action"`
	Description  *string         `gorm:"type:text" json:"description,omitempty"`
	IPAddress    *string         `gorm:"type:inet;index:idx_audit_ip_address" json:"ip_address,omitempty"`
	UserAgent    *string         `gorm:"type:text" json:"user_agent,omitempty"`
	RequestID    *string         `gorm:"size:255;index:idx_audit_request_id" json:"request_id,omitempty"`
	Metadata     json.RawMessage `gorm:"type:jsonb" json:"metadata,omitempty"`
	Success      *bool           `gorm:"default:true;index:idx_audit_success" json:"success"`
	ErrorMessage *string         `gorm:"type:text" json:"error_message,omitempty"`
	CreatedAt    time.Time       `gorm:"default:CURRENT_TIMESTAMP;index:idx_audit_created_at" json:"created_at"`
}

func (AuditLog) TableName() string {
	return "audit_log"
}

// Audit action constants
const (
	AuditActionReleaseScheduled         = "release_scheduled"
	AuditActionReleaseScheduleFailed    = "release_schedule_failed"
	AuditActionReleasesProcessed        = "releases_processed"
	AuditActionReleaseProcessingFailed  = "release_processing_failed"
	AuditActionVisibilityOverridden     = "visibility_overridden"
	AuditActionVisibilityOverrideFailed = "visibility_override_failed"
)

// AuditLogFilter represents filter criteria for audit log queries
type AuditLogFilter struct {
	ID            *uint
	ContentID     *uint
	Action        *string
	Success       *bool
	RequestID     *string
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
}

func (a *AuditLog) IsFailed() bool {
	return a.Success != nil && !*a.Success
}
