package geo

import (
	"fmt"
	"strconv"
)

// BBox is a lon/lat rectangle. In YAML it is written as a flat
// [minLon, minLat, maxLon, maxLat] list, the same order a WFS BBOX takes.
type BBox [4]float64

// MinLon returns the western edge.
func (b BBox) MinLon() float64 { return b[0] }

// MinLat returns the southern edge.
func (b BBox) MinLat() float64 { return b[1] }

// MaxLon returns the eastern edge.
func (b BBox) MaxLon() float64 { return b[2] }

// MaxLat returns the northern edge.
func (b BBox) MaxLat() float64 { return b[3] }

// Validate reports an inverted or empty rectangle.
func (b BBox) Validate() error {
	if b.MinLon() >= b.MaxLon() {
		return fmt.Errorf("bbox: min lon %v must be less than max lon %v", b.MinLon(), b.MaxLon())
	}
	if b.MinLat() >= b.MaxLat() {
		return fmt.Errorf("bbox: min lat %v must be less than max lat %v", b.MinLat(), b.MaxLat())
	}

	return nil
}

// Center returns the midpoint as lon, lat.
func (b BBox) Center() (lon, lat float64) {
	return (b.MinLon() + b.MaxLon()) / 2, (b.MinLat() + b.MaxLat()) / 2
}

// Contains reports whether the point lies inside the rectangle, edges included.
func (b BBox) Contains(lon, lat float64) bool {
	return lon >= b.MinLon() && lon <= b.MaxLon() && lat >= b.MinLat() && lat <= b.MaxLat()
}

// String renders "minLon,minLat,maxLon,maxLat" without rounding.
func (b BBox) String() string {
	buf := make([]byte, 0, 80)
	for i, v := range b {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = strconv.AppendFloat(buf, v, 'f', -1, 64)
	}
	return string(buf)
}
