// Package handler contains the API endpoint handlers.
package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"afrimart/internal/delivery/api/response"
	deliverycontext "afrimart/internal/delivery/context"
	"afrimart/internal/domain/entity"
	domainerrors "afrimart/internal/domain/errors"
	"afrimart/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	LocationUC usecase.LocationUsecase
	Logger     *slog.Logger
}

// LocationHandler serves the signed-in user's saved location.
type LocationHandler struct {
	locationUC usecase.LocationUsecase
	logger     *slog.Logger
	now        func() time.Time
}

func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		locationUC: params.LocationUC,
		logger:     params.Logger,
		now:        time.Now,
	}
}

// SaveLocationRequest is the body of POST /api/v1/me/location.
// Pointers let zero coordinates through "required".
type SaveLocationRequest struct {
	Latitude     *float64 `json:"latitude" validate:"required,min=-90,max=90"`
	Longitude    *float64 `json:"longitude" validate:"required,min=-180,max=180"`
	Accuracy     *float64 `json:"accuracy,omitempty" validate:"omitempty,min=0"`
	Timestamp    int64    `json:"timestamp,omitempty" validate:"omitempty,min=0"` // epoch millis, defaults to receive time
	CurrentLabel string   `json:"current_label,omitempty"`
}

// SaveLocationResponse is the saved pair plus the label to show for it.
type SaveLocationResponse struct {
	Coordinate entity.Coordinate      `json:"coordinate"`
	Address    *entity.Address        `json:"address"`
	Display    entity.LocationDisplay `json:"display"`
}

// SaveLocation handles POST /api/v1/me/location.
func (h *LocationHandler) SaveLocation(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrMissingUserIdentity)
	}

	var req SaveLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid location input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	coord := entity.Coordinate{
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
		Accuracy:  req.Accuracy,
		Timestamp: req.Timestamp,
	}
	if coord.Timestamp == 0 {
		coord.Timestamp = h.now().UnixMilli()
	}

	saved, err := h.locationUC.SaveLocation(c.Request().Context(), userID, coord)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var previous *entity.LocationDisplay
	if label := strings.TrimSpace(req.CurrentLabel); label != "" {
		previous = &entity.LocationDisplay{Status: entity.GateStepGranted, Label: label}
	}

	return response.Success(c, http.StatusOK, SaveLocationResponse{
		Coordinate: saved.Coordinate,
		Address:    saved.Address,
		Display:    h.locationUC.DeriveDisplay(saved.Address, previous),
	})
}

// GetLocation handles GET /api/v1/me/location.
func (h *LocationHandler) GetLocation(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrMissingUserIdentity)
	}

	record, err := h.locationUC.GetLocation(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, record)
}

// GetDisplay handles GET /api/v1/me/location/display, the server half of app startup.
func (h *LocationHandler) GetDisplay(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrMissingUserIdentity)
	}

	return response.Success(c, http.StatusOK, h.locationUC.RecordDisplay(c.Request().Context(), userID))
}

// GetUserLocation handles GET /api/v1/support/users/:userId/location.
func (h *LocationHandler) GetUserLocation(c echo.Context) error {
	userID := strings.TrimSpace(c.Param("userId"))
	if userID == "" {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	record, err := h.locationUC.GetLocation(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, record)
}
