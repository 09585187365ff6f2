package handler

import (
	"net/http"

	"afrimart/internal/delivery/api/response"
	deliverycontext "afrimart/internal/delivery/context"
	domainerrors "afrimart/internal/domain/errors"
	"afrimart/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CompareHandlerParams holds dependencies for CompareHandler, injected by Fx.
type CompareHandlerParams struct {
	fx.In

	CompareUC usecase.CompareUsecase
}

// CompareHandler serves the products the user picked for comparison.
type CompareHandler struct {
	compareUC usecase.CompareUsecase
}

func NewCompareHandler(params CompareHandlerParams) *CompareHandler {
	return &CompareHandler{compareUC: params.CompareUC}
}

// AddCompareRequest is the body of POST /api/v1/me/compare.
type AddCompareRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

func (h *CompareHandler) List(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrMissingUserIdentity)
	}

	selection, err := h.compareUC.List(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, selection)
}

func (h *CompareHandler) Add(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrMissingUserIdentity)
	}

	var req AddCompareRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid compare input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	selection, err := h.compareUC.Add(c.Request().Context(), userID, req.ProductID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, selection)
}

func (h *CompareHandler) Remove(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrMissingUserIdentity)
	}

	selection, err := h.compareUC.Remove(c.Request().Context(), userID, c.Param("productId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, selection)
}

func (h *CompareHandler) Clear(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrMissingUserIdentity)
	}

	if err := h.compareUC.Clear(c.Request().Context(), userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
