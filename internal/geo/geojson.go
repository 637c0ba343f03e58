// Package geo handles geographic data structures shared by the converter and the viewer.
package geo

// FeatureCollection is the GeoJSON body returned by the WFS endpoint.
// Features is a pointer so a missing key can be told apart from an empty array.
type FeatureCollection struct {
	Type     string     `json:"type,omitempty" yaml:"type,omitempty"`
	Features *[]Feature `json:"features" yaml:"features"`
}

// Feature represents a single geographic feature with geometry and properties.
// Geometry is nil when the source sends null or omits it.
type Feature struct {
	Properties map[string]interface{} `json:"properties" yaml:"properties"`
	Geometry   *Geometry              `json:"geometry" yaml:"geometry"`
	Type       string                 `json:"type,omitempty" yaml:"type,omitempty"`
	ID         interface{}            `json:"id,omitempty" yaml:"id,omitempty"`
}

// Geometry represents the geometry of a feature. Only points are consumed.
type Geometry struct {
	Type        string    `json:"type" yaml:"type"`
	Coordinates []float64 `json:"coordinates" yaml:"coordinates"` // [Lon, Lat]
}

// NewPointFeature builds a Point feature carrying a single name property.
func NewPointFeature(name string, lon, lat float64) Feature {
	return Feature{
		Type: "Feature",
		Geometry: &Geometry{
			Type:        "Point",
			Coordinates: []float64{lon, lat},
		},
		Properties: map[string]interface{}{
			"name": name,
		},
	}
}

// NewFeatureCollection wraps features into a typed collection.
func NewFeatureCollection(features []Feature) FeatureCollection {
	if features == nil {
		features = []Feature{}
	}
	return FeatureCollection{Type: "FeatureCollection", Features: &features}
}
