// Package businessflow contains the core business logic and use cases for regional release workflows
package businessflow

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/nagasrivarun/global-stream-main/app/dto"
	"github.com/nagasrivarun/global-stream-main/config"
	"github.com/nagasrivarun/global-stream-main/models"
	"github.com/nagasrivarun/global-stream-main/repository"
	"github.com/nagasrivarun/global-stream-main/utils"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// VisibilityFlow serves effective visibility reads and operator overrides
type VisibilityFlow interface {
	GetVisibleContent(ctx context.Context, region string) (*dto.RegionalContentResponse, error)
	IsContentVisible(ctx context.Context, contentUUID, region string) (*dto.VisibilityCheckResponse, error)
	SetVisibilityOverride(ctx context.Context, req *dto.SetVisibilityRequest, metadata *ClientMetadata) (*dto.SetVisibilityResponse, error)
}

// VisibilityFlowImpl implements the visibility query business flow
type VisibilityFlowImpl struct {
	contentRepo    repository.ContentRepository
	visibilityRepo repository.RegionalVisibilityRepository
	auditRepo      repository.AuditLogRepository
	db             *gorm.DB
	rc             *redis.Client
	cacheConfig    *config.CacheConfig
}

// NewVisibilityFlow creates a new visibility flow instance
func NewVisibilityFlow(
	contentRepo repository.ContentRepository,
	visibilityRepo repository.RegionalVisibilityRepository,
	auditRepo repository.AuditLogRepository,
	db *gorm.DB,
	rc *redis.Client,
	cacheConfig *config.CacheConfig,
) VisibilityFlow {
	return &VisibilityFlowImpl{
		contentRepo:    contentRepo,
		visibilityRepo: visibilityRepo,
		auditRepo:      auditRepo,
		db:             db,
		rc:             rc,
		cacheConfig:    cacheConfig,
	}
}

// GetVisibleContent returns every content item currently visible in the
// region. Listings are cached per region; the cache is dropped whenever the
// processor or an operator override changes visibility in that region.
func (s *VisibilityFlowImpl) GetVisibleContent(ctx context.Context, region string) (*dto.RegionalContentResponse, error) {
	normalized := utils.NormalizeRegion(region)
	if normalized == "" {
		return nil, NewBusinessError("REGION_REQUIRED", "Region is required", ErrRegionRequired)
	}

	if cached := s.readRegionCache(ctx, normalized); cached != nil {
		return cached, nil
	}

	rows, err := s.visibilityRepo.ListVisibleByRegion(ctx, normalized)
	if err != nil {
		return nil, NewBusinessError("VISIBILITY_LISTING_FAILED", "Failed to list visible content", err)
	}

	items := make([]dto.ContentSummaryDTO, 0, len(rows))
	for _, row := range rows {
		if row.Content == nil {
			continue
		}
		items = append(items, ToContentSummaryDTO(*row.Content))
	}

	resp := &dto.RegionalContentResponse{
		Message: "Visible content retrieved successfully",
		Region:  normalized,
		Items:   items,
	}
	s.writeRegionCache(ctx, normalized, resp)

	return resp, nil
}

// IsContentVisible reports whether one content item is visible in a region.
// Absence at any layer means not visible: an unparseable ID, an unknown
// content item, or a missing visibility row all answer false rather than
// erroring. Only store failures surface as errors.
func (s *VisibilityFlowImpl) IsContentVisible(ctx context.Context, contentUUID, region string) (*dto.VisibilityCheckResponse, error) {
	normalized := utils.NormalizeRegion(region)
	if normalized == "" {
		return nil, NewBusinessError("REGION_REQUIRED", "Region is required", ErrRegionRequired)
	}

	resp := &dto.VisibilityCheckResponse{
		Message:   "Visibility retrieved successfully",
		ContentID: contentUUID,
		Region:    normalized,
		Visible:   false,
	}

	// A malformed ID cannot name a visible item, so it answers false
	if _, err := uuid.Parse(contentUUID); err != nil {
		return resp, nil
	}

	content, err := s.contentRepo.ByUUID(ctx, contentUUID)
	if err != nil {
		return nil, NewBusinessError("CONTENT_LOOKUP_FAILED", "Failed to lookup content", err)
	}
	if content == nil {
		return resp, nil
	}

	row, err := s.visibilityRepo.ByContentAndRegion(ctx, content.ID, normalized)
	if err != nil {
		return nil, NewBusinessError("VISIBILITY_LOOKUP_FAILED", "Failed to lookup visibility", err)
	}
	if row == nil {
		return resp, nil
	}

	resp.Visible = row.IsVisible
	return resp, nil
}

// SetVisibilityOverride lets an operator force visibility for a content item
// in one region, in either direction. This is the only path that can demote
// a visible item back to hidden.
func (s *VisibilityFlowImpl) SetVisibilityOverride(ctx context.Context, req *dto.SetVisibilityRequest, metadata *ClientMetadata) (*dto.SetVisibilityResponse, error) {
	if req == nil || req.ContentID == "" {
		return nil, NewBusinessError("CONTENT_ID_REQUIRED", "Content ID is required", ErrContentIDRequired)
	}

	region := utils.NormalizeRegion(req.Region)
	if region == "" {
		return nil, NewBusinessError("REGION_REQUIRED", "Region is required", ErrRegionRequired)
	}
	if req.IsVisible == nil {
		return nil, NewBusinessErrorf("VISIBILITY_VALUE_REQUIRED", "is_visible is required", nil)
	}
	isVisible := *req.IsVisible

	content, err := s.contentRepo.ByUUID(ctx, req.ContentID)
	if err != nil {
		return nil, NewBusinessError("CONTENT_LOOKUP_FAILED", "Failed to lookup content", err)
	}
	if content == nil {
		return nil, NewBusinessError("CONTENT_NOT_FOUND", "Content not found", ErrContentNotFound)
	}

	if err := s.visibilityRepo.UpsertVisibility(ctx, content.ID, region, isVisible); err != nil {
		errMsg := fmt.Sprintf("Failed to override visibility for content %s in region %s: %v", req.ContentID, region, err)
		_ = writeAuditLog(ctx, s.auditRepo, &content.ID, models.AuditActionVisibilityOverrideFailed, errMsg, false, &errMsg, metadata)
		return nil, NewBusinessError("VISIBILITY_OVERRIDE_FAILED", "Failed to override visibility", err)
	}

	s.invalidateRegionCache(ctx, region)

	msg := fmt.Sprintf("Visibility for content %s in region %s set to %t", req.ContentID, region, isVisible)
	_ = writeAuditLog(ctx, s.auditRepo, &content.ID, models.AuditActionVisibilityOverridden, msg, true, nil, metadata)

	return &dto.SetVisibilityResponse{
		Message:   "Visibility updated successfully",
		ContentID: req.ContentID,
		Region:    region,
		Visible:   isVisible,
	}, nil
}

func (s *VisibilityFlowImpl) readRegionCache(ctx context.Context, region string) *dto.RegionalContentResponse {
	if s.rc == nil || s.cacheConfig == nil || !s.cacheConfig.Enabled {
		return nil
	}
	key := regionCacheKey(*s.cacheConfig, region)
	raw, err := s.rc.Get(ctx, key).Bytes()
	if err != nil || len(raw) == 0 {
		return nil
	}
	var resp dto.RegionalContentResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		// Stale or corrupt entry, drop it and fall through to the store
		_ = s.rc.Del(ctx, key).Err()
		return nil
	}
	return &resp
}

func (s *VisibilityFlowImpl) writeRegionCache(ctx context.Context, region string, resp *dto.RegionalContentResponse) {
	if s.rc == nil || s.cacheConfig == nil || !s.cacheConfig.Enabled {
		return
	}
	raw, err := json.Marshal(resp)
	if err != nil {
		return
	}
	key := regionCacheKey(*s.cacheConfig, region)
	if err := s.rc.Set(ctx, key, raw, s.cacheConfig.DefaultTTL).Err(); err != nil {
		log.Printf("Failed to cache region listing %s: %v", key, err)
	}
}

func (s *VisibilityFlowImpl) invalidateRegionCache(ctx context.Context, region string) {
	if s.rc == nil || s.cacheConfig == nil || !s.cacheConfig.Enabled {
		return
	}
	key := regionCacheKey(*s.cacheConfig, region)
	if err := s.rc.Del(ctx, key).Err(); err != nil {
		log.Printf("Failed to invalidate region cache %s: %v", key, err)
	}
}
