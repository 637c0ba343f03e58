package processor

import (
	"io"
	"iter"
	"os"
	"path/filepath"

	"github.com/woozymasta/motopark/internal/geo"

	"github.com/rs/zerolog/log"
	"github.com/twpayne/go-geom"
	geomkml "github.com/twpayne/go-geom/encoding/kml"
	"github.com/twpayne/go-kml/v3"
)

// Document is a fully built KML tree ready to be written.
type Document struct {
	root  *kml.KMLElement
	count int
}

// Len returns the number of placemarks in the document.
func (d *Document) Len() int { return d.count }

// BuildDocument drains placemarks into a KML tree, keeping their order.
// It stops at the first error, so nothing is ever written for a broken feed.
func BuildDocument(placemarks iter.Seq2[geo.Placemark, error]) (*Document, error) {
	children := make([]kml.Element, 0, 64)

	for pm, err := range placemarks {
		if err != nil {
			return nil, err
		}

		log.Trace().Str("name", pm.Name).Str("coordinates", pm.Coordinates()).Msg("Placemark")

		point := geom.NewPointFlat(geom.XY, []float64{pm.Lon, pm.Lat})
		children = append(children, kml.Placemark(
			kml.Name(pm.Name),
			geomkml.EncodePoint(point),
		))
	}

	return &Document{
		root:  kml.KML(kml.Document(children...)),
		count: len(children),
	}, nil
}

// Encode writes the document with its XML declaration.
func (d *Document) Encode(w io.Writer, indent bool) error {
	if indent {
		return d.root.WriteIndent(w, "", "  ")
	}
	return d.root.Write(w)
}

// EncodeKML builds and writes placemarks to w, returning how many were written.
func EncodeKML(w io.Writer, placemarks iter.Seq2[geo.Placemark, error], indent bool) (int, error) {
	doc, err := BuildDocument(placemarks)
	if err != nil {
		return 0, err
	}

	return doc.Len(), doc.Encode(w, indent)
}

// WriteKML builds the whole document first and then replaces path with it.
// The file is written next to its destination and renamed into place, so a
// failure at any point leaves an existing file untouched.
func WriteKML(path string, placemarks iter.Seq2[geo.Placemark, error], indent bool) (int, error) {
	doc, err := BuildDocument(placemarks)
	if err != nil {
		return 0, err
	}

	if err := writeAtomic(path, func(w io.Writer) error { return doc.Encode(w, indent) }); err != nil {
		return 0, err
	}

	return doc.Len(), nil
}

func writeAtomic(path string, write func(io.Writer) error) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmp := f.Name()

	defer func() {
		if err == nil {
			return
		}
		if rmErr := os.Remove(tmp); rmErr != nil && !os.IsNotExist(rmErr) {
			log.Error().Err(rmErr).Str("path", tmp).Msg("Failed to remove temporary file")
		}
	}()

	if err = write(f); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Sync(); err != nil {
		_ = f.Close()
		return err
	}
	// We care about write errors on close
	if err = f.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmp, 0644); err != nil {
		return err
	}

	return os.Rename(tmp, path)
}
