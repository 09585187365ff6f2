// Package handler contains the Pub/Sub push handlers of the worker.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"afrimart/config"
	deliverycontext "afrimart/internal/delivery/context"
	"afrimart/internal/domain/constants"
	domainerrors "afrimart/internal/domain/errors"
	"afrimart/internal/domain/repository"
	"afrimart/internal/domain/service"
	"afrimart/internal/infra/pubsub"
	"afrimart/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PushVerifier checks the OIDC token Pub/Sub attaches to push requests.
type PushVerifier func(ctx context.Context, token, audience string) error

// PushHandler backfills addresses for locations that were saved without one.
type PushHandler struct {
	verify     PushVerifier
	audience   string
	logger     *slog.Logger
	locationUC usecase.LocationUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	LocationUC usecase.LocationUsecase
}

// NewPushHandler creates a new Pub/Sub push handler.
// Push auth is only verified for the google provider outside develop.
func NewPushHandler(params PushHandlerParams) *PushHandler {
	h := &PushHandler{
		logger:     params.Logger,
		locationUC: params.LocationUC,
	}

	cfg := params.Config
	if cfg.PubSub != nil && cfg.PubSub.Provider == constants.PubSubProviderGoogle && cfg.Env.Env != constants.EnvDevelop {
		h.verify = verifyGoogleToken
		h.audience = cfg.PubSub.PushAudience
	}

	return h
}

// HandlePush answers 200 when the message is done with (processed or
// unprocessable) and 503 when Pub/Sub should redeliver it.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verify != nil {
		if err := h.verifyRequest(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var msg pubsub.PushMessage
	if err := c.Bind(&msg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := msg.DecodeLocationUpdated()
	if err != nil {
		h.logger.Error("[Worker] Failed to decode location event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := extractRequestID(ctx, &msg, event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	if event.Type != constants.EventTypeLocationUpdated {
		reqLogger.Info("[Worker] Ignoring event", slog.String("type", event.Type))

		return c.NoContent(http.StatusOK)
	}
	if event.Address != nil {
		return c.NoContent(http.StatusOK)
	}

	address, err := h.locationUC.BackfillAddress(ctx, event.UserID, event.Coordinate)
	switch {
	case err == nil && address == nil:
		reqLogger.Info("[Worker] No address for location", slog.String("event_id", event.EventID))
	case err == nil:
		reqLogger.Info("[Worker] Address backfilled",
			slog.String("event_id", event.EventID),
			slog.String("user_id", event.UserID),
		)
	case errors.Is(err, repository.ErrStaleLocation):
		reqLogger.Info("[Worker] Location changed since event, skipping backfill",
			slog.String("event_id", event.EventID),
		)
	case isRetryable(err):
		reqLogger.Warn("[Worker] Backfill failed, asking for redelivery",
			slog.String("event_id", event.EventID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusServiceUnavailable)
	default:
		reqLogger.Error("[Worker] Backfill failed",
			slog.String("event_id", event.EventID),
			slog.Any("error", err),
		)
	}

	return c.NoContent(http.StatusOK)
}

// isRetryable reports whether a redelivery may succeed. Bad input never will.
func isRetryable(err error) bool {
	return !errors.Is(err, domainerrors.ErrInvalidCoordinate) &&
		!errors.Is(err, domainerrors.ErrMissingUserIdentity)
}

// extractRequestID prefers message attributes, then the payload, then the
// X-Request-Id header, then a fresh UUID.
func extractRequestID(ctx context.Context, msg *pubsub.PushMessage, event *service.LocationUpdatedEvent) string {
	if requestID := msg.Message.Attributes["request_id"]; requestID != "" {
		return requestID
	}
	if event.RequestID != "" {
		return event.RequestID
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

func (h *PushHandler) verifyRequest(req *http.Request) error {
	token, found := strings.CutPrefix(req.Header.Get(echo.HeaderAuthorization), "Bearer ")
	if !found || token == "" {
		return errors.New("missing bearer token")
	}

	audience := h.audience
	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = scheme + "://" + req.Host + req.URL.Path
	}

	return h.verify(req.Context(), token, audience)
}

// verifyGoogleToken validates a Pub/Sub push OIDC token.
// https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyGoogleToken(ctx context.Context, token, audience string) error {
	payload, err := idtoken.Validate(ctx, token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
