// Package businessflow contains the core business logic and use cases for regional release workflows
package businessflow

import (
	"context"
	"fmt"
	"log"

	"github.com/nagasrivarun/global-stream-main/app/dto"
	"github.com/nagasrivarun/global-stream-main/models"
	"github.com/nagasrivarun/global-stream-main/repository"
	"github.com/nagasrivarun/global-stream-main/utils"
	"gorm.io/gorm"
)

// ReleaseFlow handles the scheduling write path and the admin release listings
type ReleaseFlow interface {
	ScheduleRelease(ctx context.Context, req *dto.ScheduleReleaseRequest, metadata *ClientMetadata) (*dto.ScheduleReleaseResponse, error)
	ListContentReleases(ctx context.Context, contentUUID string) (*dto.ListContentReleasesResponse, error)
	ListUpcomingReleases(ctx context.Context, days int) (*dto.UpcomingReleasesResponse, error)
}

// ReleaseFlowImpl implements the release scheduling business flow
type ReleaseFlowImpl struct {
	contentRepo repository.ContentRepository
	availRepo   repository.RegionalAvailabilityRepository
	auditRepo   repository.AuditLogRepository
	db          *gorm.DB
}

// NewReleaseFlow creates a new release flow instance
func NewReleaseFlow(
	contentRepo repository.ContentRepository,
	availRepo repository.RegionalAvailabilityRepository,
	auditRepo repository.AuditLogRepository,
	db *gorm.DB,
) ReleaseFlow {
	return &ReleaseFlowImpl{
		contentRepo: contentRepo,
		availRepo:   availRepo,
		auditRepo:   auditRepo,
		db:          db,
	}
}

// ScheduleRelease upserts one availability intent per valid region entry.
// Entries are independent: a bad or failing entry never aborts the rest, and
// the call succeeds as long as at least one entry is committed. Each upsert
// is a single atomic statement keyed by (content_id, region), so concurrent
// schedulers targeting the same pair race on last-write-wins and nothing else.
func (s *ReleaseFlowImpl) ScheduleRelease(ctx context.Context, req *dto.ScheduleReleaseRequest, metadata *ClientMetadata) (*dto.ScheduleReleaseResponse, error) {
	if req == nil || req.ContentID == "" {
		return nil, NewBusinessError("CONTENT_ID_REQUIRED", "Content ID is required", ErrContentIDRequired)
	}
	if len(req.Regions) == 0 {
		return nil, NewBusinessError("NO_ENTRIES", "At least one region entry is required", ErrNoEntries)
	}

	content, err := s.contentRepo.ByUUID(ctx, req.ContentID)
	if err != nil {
		return nil, NewBusinessError("CONTENT_LOOKUP_FAILED", "Failed to lookup content", err)
	}
	if content == nil {
		return nil, NewBusinessError("CONTENT_NOT_FOUND", "Content not found", ErrContentNotFound)
	}

	results := make([]dto.ScheduleReleaseEntryResult, 0, len(req.Regions))
	scheduled, skipped, failed := 0, 0, 0

	for _, entry := range req.Regions {
		region := utils.NormalizeRegion(entry.Region)
		if region == "" {
			skipped++
			results = append(results, dto.ScheduleReleaseEntryResult{
				Region: entry.Region,
				Status: dto.ScheduleEntrySkipped,
				Reason: ErrRegionRequired.Error(),
			})
			continue
		}

		if entry.ReleaseDate == "" {
			skipped++
			results = append(results, dto.ScheduleReleaseEntryResult{
				Region: region,
				Status: dto.ScheduleEntrySkipped,
				Reason: ErrReleaseDateRequired.Error(),
			})
			continue
		}

		releaseDate, err := utils.ParseDate(entry.ReleaseDate)
		if err != nil {
			skipped++
			results = append(results, dto.ScheduleReleaseEntryResult{
				Region:      region,
				ReleaseDate: entry.ReleaseDate,
				Status:      dto.ScheduleEntrySkipped,
				Reason:      ErrReleaseDateInvalid.Error(),
			})
			continue
		}

		availability := &models.RegionalAvailability{
			ContentID:   content.ID,
			Region:      region,
			ReleaseDate: releaseDate,
		}
		if err := s.availRepo.Upsert(ctx, availability); err != nil {
			// Transient store failure on one region must not block the rest
			log.Printf("Failed to schedule content %s in region %s: %v", req.ContentID, region, err)
			failed++
			results = append(results, dto.ScheduleReleaseEntryResult{
				Region:      region,
				ReleaseDate: entry.ReleaseDate,
				Status:      dto.ScheduleEntryFailed,
				Reason:      "availability store write failed",
			})
			continue
		}

		scheduled++
		results = append(results, dto.ScheduleReleaseEntryResult{
			Region:      region,
			ReleaseDate: utils.FormatDate(releaseDate),
			Status:      dto.ScheduleEntryScheduled,
		})
	}

	if scheduled == 0 {
		if failed == 0 {
			return nil, NewBusinessError("NO_SCHEDULABLE_ENTRIES", "No entry has both a region and a valid release date", ErrNoSchedulableEntries)
		}

		errMsg := fmt.Sprintf("Release scheduling committed nothing for content %s: %d failed, %d skipped", req.ContentID, failed, skipped)
		_ = writeAuditLog(ctx, s.auditRepo, &content.ID, models.AuditActionReleaseScheduleFailed, errMsg, false, &errMsg, metadata)

		return nil, NewBusinessError("SCHEDULE_COMMIT_FAILED", "No entry could be committed to the availability store", ErrNoEntriesCommitted)
	}

	msg := fmt.Sprintf("Scheduled content %s in %d region(s), skipped %d, failed %d", req.ContentID, scheduled, skipped, failed)
	_ = writeAuditLog(ctx, s.auditRepo, &content.ID, models.AuditActionReleaseScheduled, msg, true, nil, metadata)

	message := "Release scheduled successfully"
	if skipped > 0 || failed > 0 {
		message = "Release scheduled with partial success"
	}

	return &dto.ScheduleReleaseResponse{
		Message:   message,
		ContentID: req.ContentID,
		Scheduled: scheduled,
		Skipped:   skipped,
		Failed:    failed,
		Entries:   results,
	}, nil
}

// ListContentReleases returns every regional release intent for one content item
func (s *ReleaseFlowImpl) ListContentReleases(ctx context.Context, contentUUID string) (*dto.ListContentReleasesResponse, error) {
	if contentUUID == "" {
		return nil, NewBusinessError("CONTENT_ID_REQUIRED", "Content ID is required", ErrContentIDRequired)
	}

	content, err := s.contentRepo.ByUUID(ctx, contentUUID)
	if err != nil {
		return nil, NewBusinessError("CONTENT_LOOKUP_FAILED", "Failed to lookup content", err)
	}
	if content == nil {
		return nil, NewBusinessError("CONTENT_NOT_FOUND", "Content not found", ErrContentNotFound)
	}

	entries, err := s.availRepo.ListByContent(ctx, content.ID)
	if err != nil {
		return nil, NewBusinessError("RELEASE_LISTING_FAILED", "Failed to list regional releases", err)
	}

	items := make([]dto.RegionalReleaseDTO, 0, len(entries))
	for _, entry := range entries {
		if entry.Content == nil {
			entry.Content = content
		}
		items = append(items, ToRegionalReleaseDTO(*entry))
	}

	return &dto.ListContentReleasesResponse{
		Message:   "Regional releases retrieved successfully",
		ContentID: contentUUID,
		Items:     items,
	}, nil
}

// ListUpcomingReleases returns release intents inside [today, today+days]
func (s *ReleaseFlowImpl) ListUpcomingReleases(ctx context.Context, days int) (*dto.UpcomingReleasesResponse, error) {
	if days <= 0 {
		days = utils.DefaultUpcomingWindowDays
	}
	if days > utils.MaxUpcomingWindowDays {
		return nil, NewBusinessError("INVALID_UPCOMING_WINDOW", "Upcoming window is out of range", ErrInvalidUpcomingWindow)
	}

	from := utils.UTCToday()
	to := from.AddDate(0, 0, days)

	entries, err := s.availRepo.ListWindow(ctx, from, to)
	if err != nil {
		return nil, NewBusinessError("UPCOMING_LISTING_FAILED", "Failed to list upcoming releases", err)
	}

	items := make([]dto.RegionalReleaseDTO, 0, len(entries))
	for _, entry := range entries {
		items = append(items, ToRegionalReleaseDTO(*entry))
	}

	return &dto.UpcomingReleasesResponse{
		Message: "Upcoming releases retrieved successfully",
		From:    utils.FormatDate(from),
		To:      utils.FormatDate(to),
		Items:   items,
	}, nil
}
