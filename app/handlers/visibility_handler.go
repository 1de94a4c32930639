// Package handlers contains HTTP request handlers and presentation layer logic for the API endpoints
package handlers

import (
	"context"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/nagasrivarun/global-stream-main/app/dto"
	businessflow "github.com/nagasrivarun/global-stream-main/business_flow"
	"github.com/nagasrivarun/global-stream-main/utils"
)

// VisibilityHandlerInterface defines the contract for visibility handlers
type VisibilityHandlerInterface interface {
	GetRegionalContent(c fiber.Ctx) error
	CheckContentVisibility(c fiber.Ctx) error
	SetVisibility(c fiber.Ctx) error
}

// VisibilityHandler handles visibility-related HTTP requests
type VisibilityHandler struct {
	visibilityFlow businessflow.VisibilityFlow
	validator      *validator.Validate
}

// NewVisibilityHandler creates a new visibility handler
func NewVisibilityHandler(visibilityFlow businessflow.VisibilityFlow) *VisibilityHandler {
	return &VisibilityHandler{
		visibilityFlow: visibilityFlow,
		validator:      validator.New(),
	}
}

func (h *VisibilityHandler) ErrorResponse(c fiber.Ctx, statusCode int, message, errorCode string, details any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: false,
		Message: message,
		Error: dto.ErrorDetail{
			Code:    errorCode,
			Details: details,
		},
	})
}

func (h *VisibilityHandler) SuccessResponse(c fiber.Ctx, statusCode int, message string, data any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// GetRegionalContent handles listing content visible in a region
// @Summary Get Regional Content
// @Description List every content item currently visible in the given region
// @Tags Visibility
// @Produce json
// @Param region query string true "Region code (e.g. US) or Global"
// @Success 200 {object} dto.APIResponse{data=dto.RegionalContentResponse} "Visible content retrieved successfully"
// @Failure 400 {object} dto.APIResponse "Missing region"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/content/regional [get]
func (h *VisibilityHandler) GetRegionalContent(c fiber.Ctx) error {
	region := c.Query("region")
	if region == "" {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "region query parameter is required", "MISSING_REGION", nil)
	}

	result, err := h.visibilityFlow.GetVisibleContent(h.createRequestContext(c, "/api/v1/content/regional"), region)
	if err != nil {
		if businessflow.IsRegionRequired(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "region query parameter is required", "MISSING_REGION", nil)
		}

		log.Println("Regional content listing failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Regional content listing failed", "VISIBILITY_LISTING_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, result.Message, result)
}

// CheckContentVisibility handles a single content visibility lookup
// @Summary Check Content Visibility
// @Description Report whether one content item is visible in a region; unknown IDs answer not visible
// @Tags Visibility
// @Produce json
// @Param uuid path string true "Content UUID"
// @Param region query string true "Region code (e.g. US) or Global"
// @Success 200 {object} dto.APIResponse{data=dto.VisibilityCheckResponse} "Visibility retrieved successfully"
// @Failure 400 {object} dto.APIResponse "Missing region"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/content/{uuid}/visibility [get]
func (h *VisibilityHandler) CheckContentVisibility(c fiber.Ctx) error {
	contentUUID := c.Params("uuid")
	if contentUUID == "" {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Content UUID is required", "MISSING_CONTENT_UUID", nil)
	}

	region := c.Query("region")
	if region == "" {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "region query parameter is required", "MISSING_REGION", nil)
	}

	result, err := h.visibilityFlow.IsContentVisible(h.createRequestContext(c, "/api/v1/content/"+contentUUID+"/visibility"), contentUUID, region)
	if err != nil {
		if businessflow.IsRegionRequired(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "region query parameter is required", "MISSING_REGION", nil)
		}

		log.Println("Visibility check failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Visibility check failed", "VISIBILITY_LOOKUP_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, result.Message, result)
}

// SetVisibility handles operator visibility overrides
// @Summary Set Content Visibility
// @Description Force visibility for a content item in one region, in either direction
// @Tags Visibility
// @Accept json
// @Produce json
// @Param request body dto.SetVisibilityRequest true "Visibility override data"
// @Success 200 {object} dto.APIResponse{data=dto.SetVisibilityResponse} "Visibility updated successfully"
// @Failure 400 {object} dto.APIResponse "Validation error"
// @Failure 404 {object} dto.APIResponse "Content not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/admin/visibility [put]
func (h *VisibilityHandler) SetVisibility(c fiber.Ctx) error {
	var req dto.SetVisibilityRequest
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

	result, err := h.visibilityFlow.SetVisibilityOverride(h.createRequestContext(c, "/api/v1/admin/visibility"), &req, metadata)
	if err != nil {
		if businessflow.IsContentNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Content not found", "CONTENT_NOT_FOUND", nil)
		}
		if businessflow.IsRegionRequired(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Region is required", "MISSING_REGION", nil)
		}

		log.Println("Visibility override failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Visibility override failed", "VISIBILITY_OVERRIDE_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, result.Message, result)
}

// createRequestContext creates a context with timeout and request-scoped values
func (h *VisibilityHandler) createRequestContext(c fiber.Ctx, endpoint string) context.Context {
	return h.createRequestContextWithTimeout(c, endpoint, 30*time.Second)
}

// createRequestContextWithTimeout creates a context with custom timeout and request-scoped values
func (h *VisibilityHandler) createRequestContextWithTimeout(c fiber.Ctx, endpoint string, timeout time.Duration) context.Context {
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
