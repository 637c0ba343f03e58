package geo

import "strconv"

// Placemark is one labeled point of the output document.
type Placemark struct {
	Name string  `json:"name" yaml:"name"`
	Lon  float64 `json:"lon" yaml:"lon"`
	Lat  float64 `json:"lat" yaml:"lat"`
}

// Coordinates renders the KML coordinate text "lon,lat" using the shortest
// decimal form that round-trips.
func (p Placemark) Coordinates() string {
	buf := make([]byte, 0, 40)
	buf = strconv.AppendFloat(buf, p.Lon, 'f', -1, 64)
	buf = append(buf, ',')
	buf = strconv.AppendFloat(buf, p.Lat, 'f', -1, 64)
	return string(buf)
}

// Feature converts the placemark back into a GeoJSON point feature.
func (p Placemark) Feature() Feature {
	return NewPointFeature(p.Name, p.Lon, p.Lat)
}
