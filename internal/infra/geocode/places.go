package geocode

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"afrimart/config"
	"afrimart/internal/domain/entity"
	"afrimart/internal/domain/service"
	"afrimart/internal/util"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/quadtree"
	"github.com/pkg/errors"
)

const defaultMaxDistanceMeters = 2000

// place is a named point loaded from the GeoJSON file.
type place struct {
	point   orb.Point
	address entity.Address
}

func (p *place) Point() orb.Point {
	return p.point
}

// PlacesGeocoder resolves coordinates offline against a GeoJSON FeatureCollection
// of named places, e.g. market areas exported from OpenStreetMap.
type PlacesGeocoder struct {
	index       *quadtree.Quadtree
	size        int
	maxDistance float64
}

// NewPlacesGeocoder loads cfg.Geocoder.PlacesPath into a quadtree.
func NewPlacesGeocoder(cfg *config.Config, logger *slog.Logger) (service.ReverseGeocoder, error) {
	if cfg.Geocoder == nil || cfg.Geocoder.PlacesPath == "" {
		return nil, errors.New("geocoder.placesPath is required for the geojson provider")
	}

	data, err := os.ReadFile(cfg.Geocoder.PlacesPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read places file")
	}

	geocoder, err := NewPlacesGeocoderFromGeoJSON(data, cfg.Geocoder.MaxDistanceMeters)
	if err != nil {
		return nil, err
	}

	logger.Info("Places loaded",
		slog.String("path", cfg.Geocoder.PlacesPath),
		slog.String("size", util.FormatBytes(int64(len(data)))),
		slog.String("sha256", util.Checksum(data)),
		slog.Int("places", geocoder.Size()),
	)

	return geocoder, nil
}

// NewPlacesGeocoderFromGeoJSON builds the geocoder from raw GeoJSON.
// Non-point features are indexed at the center of their bounding box.
func NewPlacesGeocoderFromGeoJSON(data []byte, maxDistanceMeters float64) (*PlacesGeocoder, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse places GeoJSON")
	}

	if maxDistanceMeters <= 0 {
		maxDistanceMeters = defaultMaxDistanceMeters
	}

	index := quadtree.New(orb.Bound{Min: orb.Point{-180, -90}, Max: orb.Point{180, 90}})
	size := 0
	for _, feature := range fc.Features {
		if feature.Geometry == nil {
			continue
		}

		p := &place{
			point:   feature.Geometry.Bound().Center(),
			address: addressFromProperties(feature.Properties),
		}
		if p.address.Formatted == "" {
			continue
		}

		if err := index.Add(p); err != nil {
			return nil, errors.Wrap(err, "failed to index place")
		}
		size++
	}

	return &PlacesGeocoder{
		index:       index,
		size:        size,
		maxDistance: maxDistanceMeters,
	}, nil
}

// Reverse returns the nearest place within the distance limit, or nil.
func (g *PlacesGeocoder) Reverse(_ context.Context, coord entity.Coordinate) (*entity.Address, error) {
	if g.size == 0 {
		return nil, nil
	}

	target := orb.Point{coord.Longitude, coord.Latitude}
	nearest := g.index.Find(target)
	if nearest == nil {
		return nil, nil
	}

	if geo.Distance(target, nearest.Point()) > g.maxDistance {
		return nil, nil
	}

	address := nearest.(*place).address

	return &address, nil
}

// Size returns the number of indexed places.
func (g *PlacesGeocoder) Size() int {
	return g.size
}

func addressFromProperties(props geojson.Properties) entity.Address {
	optional := func(key string) *string {
		if v := strings.TrimSpace(props.MustString(key, "")); v != "" {
			return &v
		}

		return nil
	}

	address := entity.Address{
		Formatted:  strings.TrimSpace(props.MustString("formatted", "")),
		Street:     optional("street"),
		City:       optional("city"),
		Region:     optional("region"),
		PostalCode: optional("postcode"),
		Country:    optional("country"),
	}

	if address.Formatted == "" {
		var label []string
		if name := strings.TrimSpace(props.MustString("name", "")); name != "" {
			label = append(label, name)
		}
		if address.City != nil {
			label = append(label, *address.City)
		}
		address.Formatted = strings.Join(label, ", ")
	}

	return address
}
