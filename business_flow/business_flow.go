// Package businessflow contains the business logic for the application.
package businessflow

import (
	"context"
	"encoding/json"
	"time"

	"github.com/nagasrivarun/global-stream-main/app/dto"
	"github.com/nagasrivarun/global-stream-main/models"
	"github.com/nagasrivarun/global-stream-main/repository"
	"github.com/nagasrivarun/global-stream-main/utils"
)

const RequestIDKey = "X-Request-ID"

// ClientMetadata holds all client-related information for audit logging
type ClientMetadata struct {
	IPAddress  string            `json:"ip_address"`
	UserAgent  string            `json:"user_agent"`
	RequestID  string            `json:"request_id,omitempty"`
	Additional map[string]string `json:"additional,omitempty"`
}

// NewClientMetadata creates a new ClientMetadata instance with basic information
func NewClientMetadata(ipAddress, userAgent string) *ClientMetadata {
	return &ClientMetadata{
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
		Additional: make(map[string]string),
	}
}

// AddAdditional adds additional custom information to the metadata
func (cm *ClientMetadata) AddAdditional(key, value string) {
	if cm.Additional == nil {
		cm.Additional = make(map[string]string)
	}
	cm.Additional[key] = value
}

// SetRequestID sets the request ID
func (cm *ClientMetadata) SetRequestID(requestID string) {
	cm.RequestID = requestID
}

// ToContentSummaryDTO converts a content model to its display summary
func ToContentSummaryDTO(content models.Content) dto.ContentSummaryDTO {
	return dto.ContentSummaryDTO{
		ContentID:   content.UUID.String(),
		Title:       content.Title,
		Type:        content.Type.String(),
		Description: content.Description,
		PosterURL:   content.PosterURL,
		BackdropURL: content.BackdropURL,
		ReleaseYear: content.ReleaseYear,
	}
}

// ToRegionalReleaseDTO converts an availability row (with preloaded content) to its wire form
func ToRegionalReleaseDTO(entry models.RegionalAvailability) dto.RegionalReleaseDTO {
	out := dto.RegionalReleaseDTO{
		Region:      entry.Region,
		ReleaseDate: utils.FormatDate(entry.ReleaseDate),
		UpdatedAt:   entry.UpdatedAt.Format(time.RFC3339),
	}
	if entry.Content != nil {
		out.ContentID = entry.Content.UUID.String()
		out.Title = entry.Content.Title
		out.Type = entry.Content.Type.String()
		out.PosterURL = entry.Content.PosterURL
	}
	return out
}

// writeAuditLog persists an audit row best-effort; callers ignore the returned error
func writeAuditLog(ctx context.Context, auditRepo repository.AuditLogRepository, contentID *uint, action, description string, success bool, errorMessage *string, metadata *ClientMetadata) error {
	if auditRepo == nil {
		return nil
	}

	auditLog := &models.AuditLog{
		ContentID:    contentID,
		Action:       action,
		Description:  &description,
		Success:      utils.ToPtr(success),
		ErrorMessage: errorMessage,
		CreatedAt:    utils.UTCNow(),
	}

	if metadata != nil {
		if metadata.IPAddress != "" {
			auditLog.IPAddress = &metadata.IPAddress
		}
		if metadata.UserAgent != "" {
			auditLog.UserAgent = &metadata.UserAgent
		}
		if metadata.RequestID != "" {
			auditLog.RequestID = &metadata.RequestID
		}
		if raw, err := json.Marshal(metadata); err == nil {
			auditLog.Metadata = raw
		}
	}

	return auditRepo.Save(ctx, auditLog)
}
