package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"afrimart/config"
	"afrimart/internal/delivery/api/middleware"
	"afrimart/internal/delivery/api/response"
	"afrimart/internal/delivery/api/router"
	"afrimart/internal/delivery/api/router/handler"
	"afrimart/internal/delivery/api/validator"
	"afrimart/internal/domain/constants"
	"afrimart/internal/domain/entity"
	domainerrors "afrimart/internal/domain/errors"
	"afrimart/internal/domain/service"
	"afrimart/internal/errors"
	mockSvc "afrimart/internal/mocks/service"
	mockUsecase "afrimart/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testToken = "good-token"

type apiFixture struct {
	e         *echo.Echo
	locations *mockUsecase.MockLocationUsecase
	compare   *mockUsecase.MockCompareUsecase
	verifier  *mockSvc.MockTokenVerifier
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"

	f := &apiFixture{
		locations: mockUsecase.NewMockLocationUsecase(t),
		compare:   mockUsecase.NewMockCompareUsecase(t),
		verifier:  mockSvc.NewMockTokenVerifier(t),
	}
	f.e = NewEcho(cfg, logger, router.RouterParams{
		LocationHandler: handler.NewLocationHandler(handler.LocationHandlerParams{LocationUC: f.locations, Logger: logger}),
		CompareHandler:  handler.NewCompareHandler(handler.CompareHandlerParams{CompareUC: f.compare}),
		AuthMiddleware:  middleware.NewAuthMiddleware(f.verifier, logger),
	})

	return f
}

func (f *apiFixture) signedIn(roles ...string) {
	f.verifier.EXPECT().Verify(mock.Anything, testToken).
		Return(&service.Identity{UserID: "user-1", Roles: roles}, nil)
}

func (f *apiFixture) do(method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+testToken)
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)

	return rec
}

type envelope struct {
	Data  json.RawMessage     `json:"data"`
	Error *response.ErrorInfo `json:"error"`
	Meta  *response.MetaInfo  `json:"meta"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

func TestHealth(t *testing.T) {
	f := newAPIFixture(t)

	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthentication(t *testing.T) {
	t.Run("missing header", func(t *testing.T) {
		f := newAPIFixture(t)

		rec := httptest.NewRecorder()
		f.e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/me/location", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "MISSING_TOKEN", decode(t, rec).Error.Code)
	})

	t.Run("rejected token", func(t *testing.T) {
		f := newAPIFixture(t)
		f.verifier.EXPECT().Verify(mock.Anything, testToken).Return(nil, domainerrors.ErrUnauthorized)

		rec := f.do(http.MethodGet, "/api/v1/me/location", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		env := decode(t, rec)
		assert.Equal(t, "INVALID_TOKEN", env.Error.Code)
		assert.NotEmpty(t, env.Meta.RequestID)
	})
}

func TestSaveLocation(t *testing.T) {
	formatted := &entity.Address{Formatted: "12 Avenue Kwame Nkrumah, Accra"}

	t.Run("saves and derives display from the previous label", func(t *testing.T) {
		f := newAPIFixture(t)
		f.signedIn()

		coord := entity.Coordinate{Latitude: 5.56, Longitude: -0.2, Timestamp: 1700000000000}
		f.locations.EXPECT().SaveLocation(mock.Anything, "user-1", coord).
			Return(&entity.SavedLocation{Coordinate: coord}, nil)
		f.locations.EXPECT().
			DeriveDisplay((*entity.Address)(nil), &entity.LocationDisplay{Status: entity.GateStepGranted, Label: "Home"}).
			Return(entity.LocationDisplay{Status: entity.GateStepGranted, Label: "Home"})

		rec := f.do(http.MethodPost, "/api/v1/me/location",
			`{"latitude":5.56,"longitude":-0.2,"timestamp":1700000000000,"current_label":"Home"}`)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var body handler.SaveLocationResponse
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &body))
		assert.Equal(t, "Home", body.Display.Label)
		assert.Nil(t, body.Address)
	})

	t.Run("zero coordinate is accepted and timestamp defaults", func(t *testing.T) {
		f := newAPIFixture(t)
		f.signedIn()

		f.locations.EXPECT().SaveLocation(mock.Anything, "user-1", mock.MatchedBy(func(c entity.Coordinate) bool {
			return c.Latitude == 0 && c.Longitude == 0 && c.Timestamp > 0
		})).RunAndReturn(func(_ context.Context, _ string, c entity.Coordinate) (*entity.SavedLocation, error) {
			return &entity.SavedLocation{Coordinate: c, Address: formatted}, nil
		})
		f.locations.EXPECT().DeriveDisplay(formatted, (*entity.LocationDisplay)(nil)).
			Return(entity.LocationDisplay{Status: entity.GateStepGranted, Label: formatted.Formatted})

		rec := f.do(http.MethodPost, "/api/v1/me/location", `{"latitude":0,"longitude":0}`)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Contains(t, rec.Body.String(), formatted.Formatted)
	})

	tests := []struct {
		name  string
		body  string
		field string
	}{
		{name: "latitude out of range", body: `{"latitude":91,"longitude":0}`, field: "latitude"},
		{name: "longitude out of range", body: `{"latitude":0,"longitude":-180.5}`, field: "longitude"},
		{name: "longitude missing", body: `{"latitude":10}`, field: "longitude"},
		{name: "negative accuracy", body: `{"latitude":1,"longitude":1,"accuracy":-3}`, field: "accuracy"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAPIFixture(t)
			f.signedIn()

			rec := f.do(http.MethodPost, "/api/v1/me/location", tt.body)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			env := decode(t, rec)
			assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)

			var fields []validator.FieldError
			raw, err := json.Marshal(env.Error.Details)
			require.NoError(t, err)
			require.NoError(t, json.Unmarshal(raw, &fields))
			require.Len(t, fields, 1)
			assert.Equal(t, tt.field, fields[0].Field)
		})
	}

	t.Run("persistence failure is surfaced", func(t *testing.T) {
		f := newAPIFixture(t)
		f.signedIn()

		f.locations.EXPECT().SaveLocation(mock.Anything, "user-1", mock.Anything).
			Return(nil, errors.Wrap(domainerrors.ErrPersistenceFailure, "connection refused"))

		rec := f.do(http.MethodPost, "/api/v1/me/location", `{"latitude":1,"longitude":1}`)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		env := decode(t, rec)
		assert.Equal(t, "PERSISTENCE_FAILURE", env.Error.Code)
		assert.Nil(t, env.Error.Details)
	})
}

func TestGetLocation(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		f := newAPIFixture(t)
		f.signedIn()
		f.locations.EXPECT().GetLocation(mock.Anything, "user-1").Return(nil, domainerrors.ErrLocationNotFound)

		rec := f.do(http.MethodGet, "/api/v1/me/location", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "LOCATION_NOT_FOUND", decode(t, rec).Error.Code)
	})

	t.Run("display", func(t *testing.T) {
		f := newAPIFixture(t)
		f.signedIn()
		f.locations.EXPECT().RecordDisplay(mock.Anything, "user-1").Return(entity.NoLocationDisplay())

		rec := f.do(http.MethodGet, "/api/v1/me/location/display", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var display entity.LocationDisplay
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &display))
		assert.Equal(t, entity.NoLocationDisplay(), display)
	})
}

func TestSupportRoute(t *testing.T) {
	t.Run("requires support role", func(t *testing.T) {
		f := newAPIFixture(t)
		f.signedIn("buyer")

		rec := f.do(http.MethodGet, "/api/v1/support/users/user-9/location", "")

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("reads another user's record", func(t *testing.T) {
		f := newAPIFixture(t)
		f.signedIn(constants.RoleSupport)
		f.locations.EXPECT().GetLocation(mock.Anything, "user-9").
			Return(&entity.UserLocationRecord{UserID: "user-9"}, nil)

		rec := f.do(http.MethodGet, "/api/v1/support/users/user-9/location", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestCompareRoutes(t *testing.T) {
	t.Run("add over the limit", func(t *testing.T) {
		f := newAPIFixture(t)
		f.signedIn()
		f.compare.EXPECT().Add(mock.Anything, "user-1", "sku-5").Return(nil, domainerrors.ErrCompareLimitReached)

		rec := f.do(http.MethodPost, "/api/v1/me/compare", `{"product_id":"sku-5"}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("add without product", func(t *testing.T) {
		f := newAPIFixture(t)
		f.signedIn()

		rec := f.do(http.MethodPost, "/api/v1/me/compare", `{}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("remove", func(t *testing.T) {
		f := newAPIFixture(t)
		f.signedIn()
		f.compare.EXPECT().Remove(mock.Anything, "user-1", "sku-1").
			Return(&entity.CompareSelection{UserID: "user-1", ProductIDs: []string{"sku-2"}}, nil)

		rec := f.do(http.MethodDelete, "/api/v1/me/compare/sku-1", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var selection entity.CompareSelection
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &selection))
		assert.Equal(t, []string{"sku-2"}, selection.ProductIDs)
	})

	t.Run("clear", func(t *testing.T) {
		f := newAPIFixture(t)
		f.signedIn()
		f.compare.EXPECT().Clear(mock.Anything, "user-1").Return(nil)

		rec := f.do(http.MethodDelete, "/api/v1/me/compare", "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}
