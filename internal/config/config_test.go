package config

import (
	"net/url"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/woozymasta/motopark/internal/geo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultURL(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	u, err := url.Parse(cfg.Feed.URL())
	require.NoError(t, err)
	assert.Equal(t, "www.hkemobility.gov.hk", u.Host)
	assert.Equal(t, "/api/drss/layer/map/", u.Path)
	assert.NotContains(t, u.RawQuery, "+")

	q := u.Query()
	assert.Equal(t, "DRSS:VW_ON_STREET_PARKING", q.Get("typeName"))
	assert.Equal(t, "WFS", q.Get("service"))
	assert.Equal(t, "1.0.0", q.Get("version"))
	assert.Equal(t, "GetFeature", q.Get("request"))
	assert.Equal(t, "application/json", q.Get("outputFormat"))
	assert.Equal(t, "OSP_Type_ALL", q.Get("styles"))
	assert.Equal(t,
		"(VEHICLE_TYPE = 'Motor Cycles') AND BBOX(SHAPE, 113.7715210770302,22.09149645255427,114.56486620617868,22.58284043586623)",
		q.Get("cql_filter"))
}

func TestFeedURL_ExistingQuery(t *testing.T) {
	f := Default().Feed
	f.BaseURL = "http://localhost/wfs?key=1"
	f.Styles = ""

	u, err := url.Parse(f.URL())
	require.NoError(t, err)
	assert.Equal(t, "1", u.Query().Get("key"))
	assert.Equal(t, "WFS", u.Query().Get("service"))
	assert.False(t, u.Query().Has("styles"))
}

func TestCQLFilter(t *testing.T) {
	f := Feed{GeometryField: "GEOM", BBox: geo.BBox{1, 2, 3, 4}}
	assert.Equal(t, "BBOX(GEOM, 1,2,3,4)", f.CQLFilter())

	f.VehicleType = "Goods Vehicle's"
	assert.Equal(t, "(VEHICLE_TYPE = 'Goods Vehicle''s') AND BBOX(GEOM, 1,2,3,4)", f.CQLFilter())
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_Overrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
output: out/parking.kml
timeout: 30s
feed:
  vehicle_type: Goods Vehicles
  bbox: [114.0, 22.2, 114.3, 22.5]
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	def := Default()
	assert.Equal(t, "out/parking.kml", cfg.Output)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, "Goods Vehicles", cfg.Feed.VehicleType)
	assert.Equal(t, geo.BBox{114.0, 22.2, 114.3, 22.5}, cfg.Feed.BBox)

	// untouched keys keep their defaults
	assert.Equal(t, def.NameProperty, cfg.NameProperty)
	assert.Equal(t, def.Feed.BaseURL, cfg.Feed.BaseURL)
	assert.Equal(t, def.Feed.TypeName, cfg.Feed.TypeName)
	assert.Equal(t, def.Feed.Headers, cfg.Feed.Headers)
}

func TestLoad_HeadersReplaceDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
feed:
  headers:
    Origin: http://localhost
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"Origin": "http://localhost"}, cfg.Feed.Headers)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("feed: [unclosed"), 0644))
	_, err = Load(path)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"base url":      func(c *Config) { c.Feed.BaseURL = "" },
		"type name":     func(c *Config) { c.Feed.TypeName = "" },
		"name property": func(c *Config) { c.NameProperty = "" },
		"output":        func(c *Config) { c.Output = "" },
		"bbox":          func(c *Config) { c.Feed.BBox = geo.BBox{114.5, 22, 113.7, 22.5} },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
