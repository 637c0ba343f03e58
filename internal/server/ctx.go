package server

import (
	"fmt"
	"hash/fnv"
	"path/filepath"
	"sync"

	"github.com/woozymasta/motopark/internal/config"
	"github.com/woozymasta/motopark/internal/geo"

	"github.com/rs/zerolog/log"
)

// DefaultZoom fits the whole territory on a typical screen.
const DefaultZoom = 11

// ServerContext holds dependencies for request handlers.
type ServerContext struct {
	Config    *config.Config
	KMLPath   string
	IndexHTML []byte
	IndexETag string

	mu    sync.Mutex
	cache placemarkCache
}

type placemarkCache struct {
	etag string
	body []byte
}

// Marker is one entry of the placemarks API.
type Marker struct {
	geo.Placemark
	Links []NavLink `json:"links"`
}

// NewServerContext renders the index page for cfg and points the
// handlers at the KML file cfg.Output.
func NewServerContext(cfg *config.Config, zoom int) (*ServerContext, error) {
	if zoom <= 0 {
		zoom = DefaultZoom
	}

	lon, lat := cfg.Feed.BBox.Center()
	index, err := renderIndex(PageData{
		Title:         "Motorcycle Parking",
		PlacemarksURL: "/api/placemarks",
		KMLURL:        "/" + KMLRoute(cfg),
		CenterLat:     lat,
		CenterLon:     lon,
		Zoom:          zoom,
	})
	if err != nil {
		return nil, err
	}

	h := fnv.New64a()
	_, _ = h.Write(index)

	log.Info().
		Str("kml", cfg.Output).
		Float64("center_lat", lat).
		Float64("center_lon", lon).
		Int("index_bytes", len(index)).
		Msg("Server context initialized successfully")

	return &ServerContext{
		Config:    cfg,
		KMLPath:   cfg.Output,
		IndexHTML: index,
		IndexETag: fmt.Sprintf(`"%x"`, h.Sum64()),
	}, nil
}

// KMLRoute is the URL path segment the KML file is published under.
func KMLRoute(cfg *config.Config) string {
	return filepath.Base(cfg.Output)
}
