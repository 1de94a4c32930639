package dto

// ContentSummaryDTO represents the display fields of a visible content item
type ContentSummaryDTO struct {
	ContentID   string  `json:"content_id"`
	Title       string  `json:"title"`
	Type        string  `json:"type"`
	Description *string `json:"description,omitempty"`
	PosterURL   *string `json:"poster_url,omitempty"`
	BackdropURL *string `json:"backdrop_url,omitempty"`
	ReleaseYear *int    `json:"release_year,omitempty"`
}

// RegionalContentResponse represents the content currently visible in one region.
// Item order is unspecified; consumers needing order must sort client-side.
type RegionalContentResponse struct {
	Message string              `json:"message"`
	Region  string              `json:"region"`
	Items   []ContentSummaryDTO `json:"items"`
}

// VisibilityCheckResponse represents a single (content, region) visibility check
type VisibilityCheckResponse struct {
	Message   string `json:"message"`
	ContentID string `json:"content_id"`
	Region    string `json:"region"`
	Visible   bool   `json:"visible"`
}

// SetVisibilityRequest represents an explicit operator override of effective
// visibility for a (content, region) pair, bypassing the date check
type SetVisibilityRequest struct {
	ContentID string `json:"content_id" validate:"required,uuid"`
	Region    string `json:"region" validate:"required,min=1,max=64"`
	IsVisible *bool  `json:"is_visible" validate:"required"`
}

// SetVisibilityResponse represents the outcome of an operator override
type SetVisibilityResponse struct {
	Message   string `json:"message"`
	ContentID string `json:"content_id"`
	Region    string `json:"region"`
	Visible   bool   `json:"visible"`
}
