// Package businessflow contains the core business logic and use cases for regional release workflows
package businessflow

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/nagasrivarun/global-stream-main/app/dto"
	"github.com/nagasrivarun/global-stream-main/config"
	"github.com/nagasrivarun/global-stream-main/models"
	"github.com/nagasrivarun/global-stream-main/repository"
	"github.com/nagasrivarun/global-stream-main/utils"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// ProcessorFlow promotes due release intents into effective visibility
type ProcessorFlow interface {
	ProcessScheduledReleases(ctx context.Context, asOf *time.Time, metadata *ClientMetadata) (*dto.ProcessReleasesResponse, error)
}

// ProcessorFlowImpl implements the release processing business flow
type ProcessorFlowImpl struct {
	availRepo      repository.RegionalAvailabilityRepository
	visibilityRepo repository.RegionalVisibilityRepository
	auditRepo      repository.AuditLogRepository
	db             *gorm.DB
	rc             *redis.Client
	cacheConfig    *config.CacheConfig
}

// NewProcessorFlow creates a new processor flow instance
func NewProcessorFlow(
	availRepo repository.RegionalAvailabilityRepository,
	visibilityRepo repository.RegionalVisibilityRepository,
	auditRepo repository.AuditLogRepository,
	db *gorm.DB,
	rc *redis.Client,
	cacheConfig *config.CacheConfig,
) ProcessorFlow {
	return &ProcessorFlowImpl{
		availRepo:      availRepo,
		visibilityRepo: visibilityRepo,
		auditRepo:      auditRepo,
		db:             db,
		rc:             rc,
		cacheConfig:    cacheConfig,
	}
}

// ProcessScheduledReleases promotes every availability intent whose release
// date is on or before asOf (today UTC when nil) into a visible row in the
// visibility store. Promotion is one-way: rows are only ever flipped to
// visible here, never back. Each promotion is an independent atomic upsert,
// so a failing row is logged and skipped and the run keeps going. Re-running
// with the same asOf converges on the same visibility state.
func (s *ProcessorFlowImpl) ProcessScheduledReleases(ctx context.Context, asOf *time.Time, metadata *ClientMetadata) (*dto.ProcessReleasesResponse, error) {
	cutoff := utils.UTCToday()
	if asOf != nil {
		cutoff = utils.TruncateToDate(asOf.UTC())
	}

	due, err := s.availRepo.ListDue(ctx, cutoff)
	if err != nil {
		errMsg := fmt.Sprintf("Failed to list due releases as of %s: %v", utils.FormatDate(cutoff), err)
		_ = writeAuditLog(ctx, s.auditRepo, nil, models.AuditActionReleaseProcessingFailed, errMsg, false, &errMsg, metadata)
		return nil, NewBusinessError("DUE_LISTING_FAILED", "Failed to list due releases", err)
	}

	processed, failed := 0, 0
	invalidated := make(map[string]struct{})

	for _, entry := range due {
		if err := s.visibilityRepo.UpsertVisibility(ctx, entry.ContentID, entry.Region, true); err != nil {
			log.Printf("Failed to promote content %d in region %s: %v", entry.ContentID, entry.Region, err)
			failed++
			errMsg := fmt.Sprintf("Failed to promote content %d in region %s: %v", entry.ContentID, entry.Region, err)
			_ = writeAuditLog(ctx, s.auditRepo, &entry.ContentID, models.AuditActionReleaseProcessingFailed, errMsg, false, &errMsg, metadata)
			continue
		}
		processed++
		invalidated[entry.Region] = struct{}{}
	}

	// Drop the cached region listings that this run made stale
	for region := range invalidated {
		s.invalidateRegionCache(ctx, region)
	}

	if processed > 0 || failed > 0 {
		msg := fmt.Sprintf("Processed %d scheduled release(s) as of %s, %d failed", processed, utils.FormatDate(cutoff), failed)
		_ = writeAuditLog(ctx, s.auditRepo, nil, models.AuditActionReleasesProcessed, msg, failed == 0, nil, metadata)
	}

	return &dto.ProcessReleasesResponse{
		Message:   "Scheduled releases processed",
		AsOfDate:  utils.FormatDate(cutoff),
		Processed: processed,
		Failed:    failed,
	}, nil
}

func (s *ProcessorFlowImpl) invalidateRegionCache(ctx context.Context, region string) {
	if s.rc == nil || s.cacheConfig == nil || !s.cacheConfig.Enabled {
		return
	}
	key := regionCacheKey(*s.cacheConfig, region)
	if err := s.rc.Del(ctx, key).Err(); err != nil {
		log.Printf("Failed to invalidate region cache %s: %v", key, err)
	}
}

// regionCacheKey derives the redis key holding the visible-content listing for a region
func regionCacheKey(cfg config.CacheConfig, region string) string {
	prefix := cfg.RedisPrefix
	if prefix == "" {
		prefix = "globalstream"
	}
	return fmt.Sprintf("%s:visibility:region:%s", prefix, region)
}
