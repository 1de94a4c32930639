package dto

// ScheduleReleaseEntry represents one region/date pair in a schedule request.
// Entries are validated individually inside the flow: an entry missing its
// region or carrying an unparseable date is skipped, not fatal.
type ScheduleReleaseEntry struct {
	Region      string `json:"region"`
	ReleaseDate string `json:"release_date"`
}

// ScheduleReleaseRequest represents the request to schedule a content release
// across one or more regions
type ScheduleReleaseRequest struct {
	ContentID string                 `json:"content_id" validate:"required,uuid"`
	Regions   []ScheduleReleaseEntry `json:"regions" validate:"required,min=1"`
}

// Schedule entry outcome states
const (
	ScheduleEntryScheduled = "scheduled"
	ScheduleEntrySkipped   = "skipped"
	ScheduleEntryFailed    = "failed"
)

// ScheduleReleaseEntryResult reports the outcome of a single entry
type ScheduleReleaseEntryResult struct {
	Region      string `json:"region"`
	ReleaseDate string `json:"release_date,omitempty"`
	Status      string `json:"status"`
	Reason      string `json:"reason,omitempty"`
}

// ScheduleReleaseResponse represents the success/partial-success summary of a schedule request
type ScheduleReleaseResponse struct {
	Message   string                       `json:"message"`
	ContentID string                       `json:"content_id"`
	Scheduled int                          `json:"scheduled"`
	Skipped   int                          `json:"skipped"`
	Failed    int                          `json:"failed"`
	Entries   []ScheduleReleaseEntryResult `json:"entries"`
}

// ProcessReleasesRequest represents the optional body of a process-releases trigger.
// AsOfDate is a calendar date used for backfill and testing; it defaults to
// the current UTC date when omitted.
type ProcessReleasesRequest struct {
	AsOfDate *string `json:"as_of_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// ProcessReleasesResponse represents the outcome of a processor run
type ProcessReleasesResponse struct {
	Message   string `json:"message"`
	AsOfDate  string `json:"as_of_date"`
	Processed int    `json:"processed"`
	Failed    int    `json:"failed"`
}

// RegionalReleaseDTO represents one scheduled release intent joined with content metadata
type RegionalReleaseDTO struct {
	ContentID   string  `json:"content_id"`
	Title       string  `json:"title"`
	Type        string  `json:"type"`
	PosterURL   *string `json:"poster_url,omitempty"`
	Region      string  `json:"region"`
	ReleaseDate string  `json:"release_date"`
	UpdatedAt   string  `json:"updated_at"`
}

// ListContentReleasesResponse represents all regional release intents for one content item
type ListContentReleasesResponse struct {
	Message   string               `json:"message"`
	ContentID string               `json:"content_id"`
	Items     []RegionalReleaseDTO `json:"items"`
}

// UpcomingReleasesResponse represents release intents inside a lookahead window
type UpcomingReleasesResponse struct {
	Message string               `json:"message"`
	From    string               `json:"from"`
	To      string               `json:"to"`
	Items   []RegionalReleaseDTO `json:"items"`
}
