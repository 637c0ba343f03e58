package processor

import (
	"iter"

	"github.com/woozymasta/motopark/internal/geo"
)

// Placemarks projects each feature onto a placemark, lazily and in order.
// The first feature missing its coordinates or the name property yields a
// *SchemaError and ends the sequence.
func Placemarks(fc *geo.FeatureCollection, nameProperty string) iter.Seq2[geo.Placemark, error] {
	return func(yield func(geo.Placemark, error) bool) {
		if fc == nil || fc.Features == nil {
			return
		}

		for i, f := range *fc.Features {
			pm, err := toPlacemark(i, f, nameProperty)
			if !yield(pm, err) || err != nil {
				return
			}
		}
	}
}

func toPlacemark(i int, f geo.Feature, nameProperty string) (geo.Placemark, error) {
	if f.Geometry == nil {
		return geo.Placemark{}, &SchemaError{Index: i, Field: "geometry", Err: errMissing}
	}
	if len(f.Geometry.Coordinates) < 2 {
		return geo.Placemark{}, &SchemaError{Index: i, Field: "geometry.coordinates", Err: errMissing}
	}

	field := "properties." + nameProperty
	raw, ok := f.Properties[nameProperty]
	if !ok {
		return geo.Placemark{}, &SchemaError{Index: i, Field: field, Err: errMissing}
	}

	var name string
	switch v := raw.(type) {
	case string:
		name = v
	case nil:
		// null label, written as an empty name
	default:
		return geo.Placemark{}, &SchemaError{Index: i, Field: field, Err: errWrongType}
	}

	return geo.Placemark{
		Name: name,
		Lon:  f.Geometry.Coordinates[0],
		Lat:  f.Geometry.Coordinates[1],
	}, nil
}
