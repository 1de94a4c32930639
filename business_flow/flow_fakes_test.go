package businessflow

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nagasrivarun/global-stream-main/models"
	"github.com/nagasrivarun/global-stream-main/utils"
)

var errStoreDown = errors.New("store unavailable")

// fakeContentRepo serves content lookups from an in-memory map keyed by UUID string
type fakeContentRepo struct {
	contents map[string]*models.Content
	err      error
}

func newFakeContentRepo(contents ...*models.Content) *fakeContentRepo {
	r := &fakeContentRepo{contents: make(map[string]*models.Content)}
	for _, c := range contents {
		r.contents[c.UUID.String()] = c
	}
	return r
}

func (r *fakeContentRepo) ByID(ctx context.Context, id uint) (*models.Content, error) {
	for _, c := range r.contents {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeContentRepo) ByFilter(ctx context.Context, filter models.ContentFilter, orderBy string, limit, offset int) ([]*models.Content, error) {
	return nil, nil
}

func (r *fakeContentRepo) Save(ctx context.Context, entity *models.Content) error      { return nil }
func (r *fakeContentRepo) SaveBatch(ctx context.Context, entities []*models.Content) error {
	return nil
}
func (r *fakeContentRepo) Count(ctx context.Context, filter models.ContentFilter) (int64, error) {
	return int64(len(r.contents)), nil
}
func (r *fakeContentRepo) Exists(ctx context.Context, filter models.ContentFilter) (bool, error) {
	return len(r.contents) > 0, nil
}

func (r *fakeContentRepo) ByUUID(ctx context.Context, rawUUID string) (*models.Content, error) {
	if r.err != nil {
		return nil, r.err
	}
	if _, err := uuid.Parse(rawUUID); err != nil {
		return nil, fmt.Errorf("invalid content UUID %q: %w", rawUUID, err)
	}
	return r.contents[rawUUID], nil
}

func (r *fakeContentRepo) ExistsByUUID(ctx context.Context, rawUUID string) (bool, error) {
	c, err := r.ByUUID(ctx, rawUUID)
	return c != nil, err
}

func (r *fakeContentRepo) ByIDs(ctx context.Context, ids []uint) ([]*models.Content, error) {
	var out []*models.Content
	for _, id := range ids {
		if c, _ := r.ByID(ctx, id); c != nil {
			out = append(out, c)
		}
	}
	return out, nil
}

// fakeAvailabilityRepo keeps release intents keyed by (content_id, region)
type fakeAvailabilityRepo struct {
	entries map[string]*models.RegionalAvailability
	err     error
	// regions that should fail individually on Upsert
	failRegions map[string]bool
}

func newFakeAvailabilityRepo() *fakeAvailabilityRepo {
	return &fakeAvailabilityRepo{
		entries:     make(map[string]*models.RegionalAvailability),
		failRegions: make(map[string]bool),
	}
}

func availKey(contentID uint, region string) string {
	return fmt.Sprintf("%d/%s", contentID, region)
}

func (r *fakeAvailabilityRepo) ByID(ctx context.Context, id uint) (*models.RegionalAvailability, error) {
	return nil, nil
}

func (r *fakeAvailabilityRepo) ByFilter(ctx context.Context, filter models.RegionalAvailabilityFilter, orderBy string, limit, offset int) ([]*models.RegionalAvailability, error) {
	return nil, nil
}

func (r *fakeAvailabilityRepo) Save(ctx context.Context, entity *models.RegionalAvailability) error {
	return r.Upsert(ctx, entity)
}

func (r *fakeAvailabilityRepo) SaveBatch(ctx context.Context, entities []*models.RegionalAvailability) error {
	for _, e := range entities {
		if err := r.Upsert(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeAvailabilityRepo) Count(ctx context.Context, filter models.RegionalAvailabilityFilter) (int64, error) {
	return int64(len(r.entries)), nil
}

func (r *fakeAvailabilityRepo) Exists(ctx context.Context, filter models.RegionalAvailabilityFilter) (bool, error) {
	return len(r.entries) > 0, nil
}

func (r *fakeAvailabilityRepo) Upsert(ctx context.Context, entry *models.RegionalAvailability) error {
	if r.err != nil {
		return r.err
	}
	if r.failRegions[entry.Region] {
		return errStoreDown
	}
	key := availKey(entry.ContentID, entry.Region)
	if existing, ok := r.entries[key]; ok {
		existing.ReleaseDate = entry.ReleaseDate
		existing.UpdatedAt = utils.UTCNow()
		return nil
	}
	entry.CreatedAt = utils.UTCNow()
	entry.UpdatedAt = entry.CreatedAt
	r.entries[key] = entry
	return nil
}

func (r *fakeAvailabilityRepo) ByContentAndRegion(ctx context.Context, contentID uint, region string) (*models.RegionalAvailability, error) {
	return r.entries[availKey(contentID, region)], nil
}

func (r *fakeAvailabilityRepo) ListByContent(ctx context.Context, contentID uint) ([]*models.RegionalAvailability, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []*models.RegionalAvailability
	for _, e := range r.entries {
		if e.ContentID == contentID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeAvailabilityRepo) ListDue(ctx context.Context, asOf time.Time) ([]*models.RegionalAvailability, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []*models.RegionalAvailability
	for _, e := range r.entries {
		if !e.ReleaseDate.After(asOf) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeAvailabilityRepo) ListWindow(ctx context.Context, from, to time.Time) ([]*models.RegionalAvailability, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []*models.RegionalAvailability
	for _, e := range r.entries {
		if !e.ReleaseDate.Before(from) && !e.ReleaseDate.After(to) {
			out = append(out, e)
		}
	}
	return out, nil
}

// fakeVisibilityRepo keeps visibility rows keyed by (content_id, region)
type fakeVisibilityRepo struct {
	rows map[string]*models.RegionalVisibility
	err  error
	// regions that should fail individually on UpsertVisibility
	failRegions map[string]bool
	// content pointers for ListVisibleByRegion preloads
	contents map[uint]*models.Content
}

func newFakeVisibilityRepo(contents ...*models.Content) *fakeVisibilityRepo {
	r := &fakeVisibilityRepo{
		rows:        make(map[string]*models.RegionalVisibility),
		failRegions: make(map[string]bool),
		contents:    make(map[uint]*models.Content),
	}
	for _, c := range contents {
		r.contents[c.ID] = c
	}
	return r
}

func (r *fakeVisibilityRepo) ByID(ctx context.Context, id uint) (*models.RegionalVisibility, error) {
	return nil, nil
}

func (r *fakeVisibilityRepo) ByFilter(ctx context.Context, filter models.RegionalVisibilityFilter, orderBy string, limit, offset int) ([]*models.RegionalVisibility, error) {
	return nil, nil
}

func (r *fakeVisibilityRepo) Save(ctx context.Context, entity *models.RegionalVisibility) error {
	return r.UpsertVisibility(ctx, entity.ContentID, entity.Region, entity.IsVisible)
}

func (r *fakeVisibilityRepo) SaveBatch(ctx context.Context, entities []*models.RegionalVisibility) error {
	for _, e := range entities {
		if err := r.Save(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeVisibilityRepo) Count(ctx context.Context, filter models.RegionalVisibilityFilter) (int64, error) {
	return int64(len(r.rows)), nil
}

func (r *fakeVisibilityRepo) Exists(ctx context.Context, filter models.RegionalVisibilityFilter) (bool, error) {
	return len(r.rows) > 0, nil
}

func (r *fakeVisibilityRepo) UpsertVisibility(ctx context.Context, contentID uint, region string, isVisible bool) error {
	if r.err != nil {
		return r.err
	}
	if r.failRegions[region] {
		return errStoreDown
	}
	key := availKey(contentID, region)
	if existing, ok := r.rows[key]; ok {
		existing.IsVisible = isVisible
		existing.UpdatedAt = utils.UTCNow()
		return nil
	}
	r.rows[key] = &models.RegionalVisibility{
		ContentID: contentID,
		Region:    region,
		IsVisible: isVisible,
		Content:   r.contents[contentID],
		CreatedAt: utils.UTCNow(),
		UpdatedAt: utils.UTCNow(),
	}
	return nil
}

func (r *fakeVisibilityRepo) ByContentAndRegion(ctx context.Context, contentID uint, region string) (*models.RegionalVisibility, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.rows[availKey(contentID, region)], nil
}

func (r *fakeVisibilityRepo) ListVisibleByRegion(ctx context.Context, region string) ([]*models.RegionalVisibility, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []*models.RegionalVisibility
	for _, row := range r.rows {
		if row.Region == region && row.IsVisible {
			out = append(out, row)
		}
	}
	return out, nil
}

// fakeAuditRepo records audit rows in memory
type fakeAuditRepo struct {
	logs []*models.AuditLog
	err  error
}

func newFakeAuditRepo() *fakeAuditRepo {
	return &fakeAuditRepo{}
}

func (r *fakeAuditRepo) ByID(ctx context.Context, id uint) (*models.AuditLog, error) { return nil, nil }

func (r *fakeAuditRepo) ByFilter(ctx context.Context, filter models.AuditLogFilter, orderBy string, limit, offset int) ([]*models.AuditLog, error) {
	return r.logs, nil
}

func (r *fakeAuditRepo) Save(ctx context.Context, entity *models.AuditLog) error {
	if r.err != nil {
		return r.err
	}
	r.logs = append(r.logs, entity)
	return nil
}

func (r *fakeAuditRepo) SaveBatch(ctx context.Context, entities []*models.AuditLog) error {
	r.logs = append(r.logs, entities...)
	return nil
}

func (r *fakeAuditRepo) Count(ctx context.Context, filter models.AuditLogFilter) (int64, error) {
	return int64(len(r.logs)), nil
}

func (r *fakeAuditRepo) Exists(ctx context.Context, filter models.AuditLogFilter) (bool, error) {
	return len(r.logs) > 0, nil
}

func (r *fakeAuditRepo) ListByContent(ctx context.Context, contentID uint, limit, offset int) ([]*models.AuditLog, error) {
	return r.logs, nil
}

func (r *fakeAuditRepo) ListByAction(ctx context.Context, action string, limit, offset int) ([]*models.AuditLog, error) {
	var out []*models.AuditLog
	for _, l := range r.logs {
		if l.Action == action {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *fakeAuditRepo) ListFailedActions(ctx context.Context, limit, offset int) ([]*models.AuditLog, error) {
	var out []*models.AuditLog
	for _, l := range r.logs {
		if l.IsFailed() {
			out = append(out, l)
		}
	}
	return out, nil
}

// newTestContent builds a catalog row with a fresh UUID
func newTestContent(id uint, title string) *models.Content {
	return &models.Content{
		ID:    id,
		UUID:  uuid.New(),
		Title: title,
		Type:  models.ContentTypeMovie,
	}
}
