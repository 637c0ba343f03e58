package processor

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/woozymasta/motopark/internal/geo"
)

// Internal structures for KML parsing
type kmlRoot struct {
	Document struct {
		Placemarks []kmlPlacemark `xml:"Placemark"`
	} `xml:"Document"`
}

type kmlPlacemark struct {
	Name  string `xml:"name"`
	Point struct {
		Coordinates string `xml:"coordinates"`
	} `xml:"Point"`
}

// ReadKML parses placemarks from a KML document with a single Document
// of Point placemarks, as produced by WriteKML.
func ReadKML(r io.Reader) ([]geo.Placemark, error) {
	var root kmlRoot
	if err := xml.NewDecoder(r).Decode(&root); err != nil {
		return nil, fmt.Errorf("decode kml: %w", err)
	}

	out := make([]geo.Placemark, 0, len(root.Document.Placemarks))
	for i, p := range root.Document.Placemarks {
		lon, lat, err := parseCoordinates(p.Point.Coordinates)
		if err != nil {
			return nil, fmt.Errorf("placemark %d: %w", i, err)
		}
		out = append(out, geo.Placemark{Name: p.Name, Lon: lon, Lat: lat})
	}

	return out, nil
}

// ReadKMLFile opens path and parses it with ReadKML.
func ReadKMLFile(path string) ([]geo.Placemark, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	return ReadKML(f)
}

// parseCoordinates reads the first "lon,lat[,alt]" tuple.
func parseCoordinates(s string) (lon, lat float64, err error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 0, 0, fmt.Errorf("empty coordinates")
	}

	parts := strings.Split(fields[0], ",")
	if len(parts) < 2 {
		return 0, 0, fmt.Errorf("invalid coordinates %q", fields[0])
	}

	if lon, err = strconv.ParseFloat(parts[0], 64); err != nil {
		return 0, 0, err
	}
	if lat, err = strconv.ParseFloat(parts[1], 64); err != nil {
		return 0, 0, err
	}

	return lon, lat, nil
}
