// Package config handles configuration loading and shared data structures.
package config

import (
	"errors"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/woozymasta/motopark/internal/geo"

	"gopkg.in/yaml.v3"
)

// Config represents the root configuration file structure.
type Config struct {
	Feed Feed `yaml:"feed"`

	// Output is the KML file written by the converter and served by the viewer.
	Output string `yaml:"output"`

	// NameProperty is the feature property used as the placemark label.
	NameProperty string `yaml:"name_property"`

	// Timeout of the whole HTTP exchange; zero keeps the client default (none).
	Timeout time.Duration `yaml:"timeout,omitempty"`
}

// Feed describes the WFS GetFeature request.
type Feed struct {
	Headers       map[string]string `yaml:"headers,omitempty"`
	BaseURL       string            `yaml:"base_url"`
	TypeName      string            `yaml:"type_name"`
	Service       string            `yaml:"service"`
	Version       string            `yaml:"version"`
	Request       string            `yaml:"request"`
	OutputFormat  string            `yaml:"output_format"`
	Styles        string            `yaml:"styles,omitempty"`
	VehicleType   string            `yaml:"vehicle_type,omitempty"`
	GeometryField string            `yaml:"geometry_field"`
	BBox          geo.BBox          `yaml:"bbox"`
}

// Default returns the configuration of the Hong Kong on-street motorcycle parking layer.
func Default() *Config {
	return &Config{
		Feed: Feed{
			BaseURL:       "https://www.hkemobility.gov.hk/api/drss/layer/map/",
			TypeName:      "DRSS:VW_ON_STREET_PARKING",
			Service:       "WFS",
			Version:       "1.0.0",
			Request:       "GetFeature",
			OutputFormat:  "application/json",
			Styles:        "OSP_Type_ALL",
			VehicleType:   "Motor Cycles",
			GeometryField: "SHAPE",
			BBox:          geo.BBox{113.7715210770302, 22.09149645255427, 114.56486620617868, 22.58284043586623},
			Headers: map[string]string{
				"Origin":  "https://www.hkemobility.gov.hk",
				"Referer": "https://www.hkemobility.gov.hk/tc/toll-rate/",
			},
		},
		NameProperty: "STREET_NAME_TC",
		Output:       "motorcycleParking.kml",
	}
}

// Load reads the YAML configuration file from path over the defaults.
// An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// headers from the file replace the default set instead of merging into it
	cfg.Feed.Headers = nil
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if cfg.Feed.Headers == nil {
		cfg.Feed.Headers = Default().Feed.Headers
	}

	return cfg, nil
}

// Validate checks the fields the converter cannot run without.
func (c *Config) Validate() error {
	if c.Feed.BaseURL == "" {
		return errors.New("feed.base_url is required")
	}
	if _, err := url.Parse(c.Feed.BaseURL); err != nil {
		return err
	}
	if c.Feed.TypeName == "" {
		return errors.New("feed.type_name is required")
	}
	if c.NameProperty == "" {
		return errors.New("name_property is required")
	}
	if c.Output == "" {
		return errors.New("output is required")
	}

	return c.Feed.BBox.Validate()
}

// CQLFilter renders the attribute and bounding box predicate of the request.
func (f Feed) CQLFilter() string {
	bbox := "BBOX(" + f.GeometryField + ", " + f.BBox.String() + ")"
	if f.VehicleType == "" {
		return bbox
	}

	return "(VEHICLE_TYPE = '" + strings.ReplaceAll(f.VehicleType, "'", "''") + "') AND " + bbox
}

// URL renders the GetFeature request. Parameters keep a fixed order and
// spaces are escaped as %20, which the upstream GeoServer expects.
func (f Feed) URL() string {
	params := [][2]string{
		{"typeName", f.TypeName},
		{"service", f.Service},
		{"version", f.Version},
		{"request", f.Request},
		{"outputFormat", f.OutputFormat},
		{"styles", f.Styles},
		{"cql_filter", f.CQLFilter()},
	}

	var sb strings.Builder
	sb.WriteString(f.BaseURL)
	sep := "?"
	if strings.Contains(f.BaseURL, "?") {
		sep = "&"
	}

	for _, p := range params {
		if p[1] == "" {
			continue
		}
		sb.WriteString(sep)
		sb.WriteString(p[0])
		sb.WriteByte('=')
		sb.WriteString(escape(p[1]))
		sep = "&"
	}

	return sb.String()
}

func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
