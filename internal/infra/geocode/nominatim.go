// Package geocode contains the reverse geocoding adapters.
package geocode

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"afrimart/config"
	"afrimart/internal/domain/entity"
	"afrimart/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	nominatimReversePath = "/reverse"
	defaultUserAgent     = "afrimart-location/1.0"
	defaultTimeout       = 5 * time.Second
	maxResponseBytes     = 1 << 20
)

// nominatimResponse is the subset of the jsonv2 reverse response in use.
type nominatimResponse struct {
	DisplayName string            `json:"display_name"`
	Address     map[string]string `json:"address"`
	Error       string            `json:"error"`
}

// NominatimGeocoder queries a Nominatim-compatible /reverse endpoint.
type NominatimGeocoder struct {
	client    *http.Client
	endpoint  string
	userAgent string
	language  string
}

// NewNominatimGeocoder creates a reverse geocoder for the configured endpoint.
func NewNominatimGeocoder(cfg *config.Config) service.ReverseGeocoder {
	geoCfg := cfg.Geocoder
	if geoCfg == nil {
		geoCfg = &config.GeocoderConfig{}
	}

	timeout := geoCfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	userAgent := geoCfg.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	return &NominatimGeocoder{
		client:    &http.Client{Timeout: timeout},
		endpoint:  strings.TrimRight(geoCfg.Endpoint, "/"),
		userAgent: userAgent,
		language:  geoCfg.Language,
	}
}

// Reverse resolves coord to an address. "Unable to geocode" answers return nil, nil.
func (g *NominatimGeocoder) Reverse(ctx context.Context, coord entity.Coordinate) (*entity.Address, error) {
	query := url.Values{}
	query.Set("format", "jsonv2")
	query.Set("lat", strconv.FormatFloat(coord.Latitude, 'f', -1, 64))
	query.Set("lon", strconv.FormatFloat(coord.Longitude, 'f', -1, 64))
	query.Set("addressdetails", "1")
	query.Set("zoom", "18")
	if g.language != "" {
		query.Set("accept-language", g.language)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.endpoint+nominatimReversePath+"?"+query.Encode(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build reverse geocode request")
	}
	req.Header.Set("User-Agent", g.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "reverse geocode request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read reverse geocode response")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("reverse geocode returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var result nominatimResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, errors.Wrap(err, "failed to decode reverse geocode response")
	}

	if result.Error != "" {
		return nil, nil
	}

	return toAddress(&result), nil
}

func toAddress(result *nominatimResponse) *entity.Address {
	parts := result.Address

	address := &entity.Address{
		Street:     street(parts),
		City:       firstOf(parts, "city", "town", "village", "municipality", "suburb"),
		Region:     firstOf(parts, "state", "region", "county"),
		PostalCode: firstOf(parts, "postcode"),
		Country:    firstOf(parts, "country"),
	}

	// Short "street, city" label; the long display_name only when neither is known.
	var label []string
	if address.Street != nil {
		label = append(label, *address.Street)
	}
	if address.City != nil {
		label = append(label, *address.City)
	}
	if len(label) > 0 {
		address.Formatted = strings.Join(label, ", ")
	} else {
		address.Formatted = result.DisplayName
	}

	return address
}

func street(parts map[string]string) *string {
	road := firstOf(parts, "road", "pedestrian", "footway", "neighbourhood")
	if road == nil {
		return nil
	}

	if number := parts["house_number"]; number != "" {
		s := number + " " + *road

		return &s
	}

	return road
}

func firstOf(parts map[string]string, keys ...string) *string {
	for _, key := range keys {
		if v := strings.TrimSpace(parts[key]); v != "" {
			return &v
		}
	}

	return nil
}
