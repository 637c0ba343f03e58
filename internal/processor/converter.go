package processor

import (
	"context"
	"iter"
	"net/http"

	"github.com/woozymasta/motopark/internal/config"
	"github.com/woozymasta/motopark/internal/geo"

	"github.com/rs/zerolog/log"
)

// Converter runs the fetch, parse, transform and write stages once.
type Converter struct {
	Client *http.Client
	Config *config.Config
	Indent bool
}

// Result describes a successful run.
type Result struct {
	Path       string
	Placemarks int
}

// NewConverter returns a converter using a client with cfg.Timeout.
func NewConverter(cfg *config.Config) *Converter {
	return &Converter{
		Client: &http.Client{Timeout: cfg.Timeout},
		Config: cfg,
	}
}

// Run executes the pipeline. The output file is only touched after every
// feature has been converted; any error leaves it as it was.
func (c *Converter) Run(ctx context.Context) (Result, error) {
	client := c.Client
	if client == nil {
		client = http.DefaultClient
	}

	log.Info().
		Str("type_name", c.Config.Feed.TypeName).
		Str("bbox", c.Config.Feed.BBox.String()).
		Msg("Fetching parking features")

	body, err := Fetch(ctx, client, c.Config.Feed)
	if err != nil {
		return Result{}, err
	}

	fc, err := Parse(body)
	if err != nil {
		return Result{}, err
	}

	log.Debug().Int("features", len(*fc.Features)).Msg("Feature collection parsed")

	outside := 0
	placemarks := withBBoxCheck(Placemarks(fc, c.Config.NameProperty), c.Config.Feed.BBox, &outside)

	n, err := WriteKML(c.Config.Output, placemarks, c.Indent)
	if err != nil {
		return Result{}, err
	}

	if outside > 0 {
		log.Warn().
			Int("placemarks", outside).
			Str("bbox", c.Config.Feed.BBox.String()).
			Msg("Placemarks outside the requested bounding box")
	}

	return Result{Path: c.Config.Output, Placemarks: n}, nil
}

// withBBoxCheck passes placemarks through unchanged, counting those outside bbox.
func withBBoxCheck(seq iter.Seq2[geo.Placemark, error], bbox geo.BBox, outside *int) iter.Seq2[geo.Placemark, error] {
	return func(yield func(geo.Placemark, error) bool) {
		for pm, err := range seq {
			if err == nil && !bbox.Contains(pm.Lon, pm.Lat) {
				*outside++
			}
			if !yield(pm, err) {
				return
			}
		}
	}
}
