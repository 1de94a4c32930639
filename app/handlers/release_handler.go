// Package handlers contains HTTP request handlers and presentation layer logic for the API endpoints
package handlers

import (
	"context"
	"log"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/nagasrivarun/global-stream-main/app/dto"
	businessflow "github.com/nagasrivarun/global-stream-main/business_flow"
	"github.com/nagasrivarun/global-stream-main/utils"
)

// ReleaseHandlerInterface defines the contract for release scheduling handlers
type ReleaseHandlerInterface interface {
	ScheduleRelease(c fiber.Ctx) error
	ListContentReleases(c fiber.Ctx) error
	ListUpcomingReleases(c fiber.Ctx) error
	ProcessReleases(c fiber.Ctx) error
}

// ReleaseHandler handles release scheduling HTTP requests
type ReleaseHandler struct {
	releaseFlow   businessflow.ReleaseFlow
	processorFlow businessflow.ProcessorFlow
	validator     *validator.Validate
}

// NewReleaseHandler creates a new release handler
func NewReleaseHandler(releaseFlow businessflow.ReleaseFlow, processorFlow businessflow.ProcessorFlow) *ReleaseHandler {
	return &ReleaseHandler{
		releaseFlow:   releaseFlow,
		processorFlow: processorFlow,
		validator:     validator.New(),
	}
}

func (h *ReleaseHandler) ErrorResponse(c fiber.Ctx, statusCode int, message, errorCode string, details any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: false,
		Message: message,
		Error: dto.ErrorDetail{
			Code:    errorCode,
			Details: details,
		},
	})
}

func (h *ReleaseHandler) SuccessResponse(c fiber.Ctx, statusCode int, message string, data any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ScheduleRelease handles the release scheduling process
// @Summary Schedule Release
// @Description Schedule regional releases for a content item; invalid entries are skipped
// @Tags Releases
// @Accept json
// @Produce json
// @Param request body dto.ScheduleReleaseRequest true "Release scheduling data"
// @Success 200 {object} dto.APIResponse{data=dto.ScheduleReleaseResponse} "Release scheduled successfully"
// @Failure 400 {object} dto.APIResponse "Validation error or no schedulable entries"
// @Failure 404 {object} dto.APIResponse "Content not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/admin/releases/schedule [post]
func (h *ReleaseHandler) ScheduleRelease(c fiber.Ctx) error {
	var req dto.ScheduleReleaseRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}

	// Validate request
	if err := h.validator.Struct(&req); err != nil {
		var validationErrors []string
		for _, err := range err.(validator.ValidationErrors) {
			validationErrors = append(validationErrors, getValidationErrorMessage(err))
		}
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationErrors)
	}

	// Get client information
	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	metadata.SetRequestID(c.Get("X-Request-ID"))

	result, err := h.releaseFlow.ScheduleRelease(h.createRequestContext(c, "/api/v1/admin/releases/schedule"), &req, metadata)
	if err != nil {
		if businessflow.IsContentNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Content not found", "CONTENT_NOT_FOUND", nil)
		}
		if businessflow.IsNoEntries(err) || businessflow.IsNoSchedulableEntries(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "No schedulable entries in request", "NO_SCHEDULABLE_ENTRIES", nil)
		}
		if businessflow.IsNoEntriesCommitted(err) {
			return h.ErrorResponse(c, fiber.StatusInternalServerError, "No entry could be committed", "SCHEDULE_COMMIT_FAILED", nil)
		}

		log.Println("Release scheduling failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Release scheduling failed", "RELEASE_SCHEDULING_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, result.Message, result)
}

// ListContentReleases handles listing every regional release for one content item
// @Summary List Content Releases
// @Description List all regional release intents for a content item
// @Tags Releases
// @Produce json
// @Param uuid path string true "Content UUID"
// @Success 200 {object} dto.APIResponse{data=dto.ListContentReleasesResponse} "Regional releases retrieved successfully"
// @Failure 404 {object} dto.APIResponse "Content not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/admin/content/{uuid}/releases [get]
func (h *ReleaseHandler) ListContentReleases(c fiber.Ctx) error {
	contentUUID := c.Params("uuid")
	if contentUUID == "" {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Content UUID is required", "MISSING_CONTENT_UUID", nil)
	}

	result, err := h.releaseFlow.ListContentReleases(h.createRequestContext(c, "/api/v1/admin/content/"+contentUUID+"/releases"), contentUUID)
	if err != nil {
		if businessflow.IsContentNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Content not found", "CONTENT_NOT_FOUND", nil)
		}

		log.Println("Release listing failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Release listing failed", "RELEASE_LISTING_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, result.Message, result)
}

// ListUpcomingReleases handles listing releases scheduled in the next days
// @Summary List Upcoming Releases
// @Description List release intents with dates inside the upcoming window
// @Tags Releases
// @Produce json
// @Param days query int false "Window size in days (default 7, max 90)"
// @Success 200 {object} dto.APIResponse{data=dto.UpcomingReleasesResponse} "Upcoming releases retrieved successfully"
// @Failure 400 {object} dto.APIResponse "Invalid window"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/admin/releases/upcoming [get]
func (h *ReleaseHandler) ListUpcomingReleases(c fiber.Ctx) error {
	days := utils.DefaultUpcomingWindowDays
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "days must be a positive integer", "INVALID_UPCOMING_WINDOW", nil)
		}
		days = parsed
	}

	result, err := h.releaseFlow.ListUpcomingReleases(h.createRequestContext(c, "/api/v1/admin/releases/upcoming"), days)
	if err != nil {
		if businessflow.IsInvalidUpcomingWindow(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Upcoming window is out of range", "INVALID_UPCOMING_WINDOW", nil)
		}

		log.Println("Upcoming release listing failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Upcoming release listing failed", "UPCOMING_LISTING_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, result.Message, result)
}

// ProcessReleases handles on-demand promotion of due releases
// @Summary Process Scheduled Releases
// @Description Promote every release intent due on or before the as-of date into regional visibility
// @Tags Releases
// @Accept json
// @Produce json
// @Param request body dto.ProcessReleasesRequest false "Optional as-of date override"
// @Success 200 {object} dto.APIResponse{data=dto.ProcessReleasesResponse} "Scheduled releases processed"
// @Failure 400 {object} dto.APIResponse "Invalid as-of date"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/admin/releases/process [post]
func (h *ReleaseHandler) ProcessReleases(c fiber.Ctx) error {
	var req dto.ProcessReleasesRequest
	if len(c.Body()) > 0 {
		if err := c.Bind().JSON(&req); err != nil {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
		}
		if err := h.validator.Struct(&req); err != nil {
			var validationErrors []string
			for _, err := range err.(validator.ValidationErrors) {
				validationErrors = append(validationErrors, getValidationErrorMessage(err))
			}
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationErrors)
		}
	}

	var asOf *time.Time
	if req.AsOfDate != nil && *req.AsOfDate != "" {
		parsed, err := utils.ParseDate(*req.AsOfDate)
		if err != nil {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "as_of_date must be a date in YYYY-MM-DD format", "INVALID_AS_OF_DATE", nil)
		}
		asOf = &parsed
	}

	// Get client information
	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	metadata.SetRequestID(c.Get("X-Request-ID"))

	result, err := h.processorFlow.ProcessScheduledReleases(h.createRequestContext(c, "/api/v1/admin/releases/process"), asOf, metadata)
	if err != nil {
		log.Println("Release processing failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Release processing failed", "RELEASE_PROCESSING_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, result.Message, result)
}

// createRequestContext creates a context with timeout and request-scoped values
func (h *ReleaseHandler) createRequestContext(c fiber.Ctx, endpoint string) context.Context {
	return h.createRequestContextWithTimeout(c, endpoint, 30*time.Second)
}

// createRequestContextWithTimeout creates a context with custom timeout and request-scoped values
func (h *ReleaseHandler) createRequestContextWithTimeout(c fiber.Ctx, endpoint string, timeout time.Duration) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)

	// Add request-scoped values for observability
	ctx = context.WithValue(ctx, utils.RequestIDKey, c.Get("X-Request-ID"))
	ctx = context.WithValue(ctx, utils.UserAgentKey, c.Get("User-Agent"))
	ctx = context.WithValue(ctx, utils.IPAddressKey, c.IP())
	ctx = context.WithValue(ctx, utils.EndpointKey, endpoint)
	ctx = context.WithValue(ctx, utils.TimeoutKey, timeout)
	ctx = context.WithValue(ctx, utils.CancelFuncKey, cancel) // Store cancel function for cleanup

	return ctx
}
