package render

import (
	"fmt"

	"github.com/golang/geo/s2"
	geojson "github.com/paulmach/go.geojson"

	"github.com/davidreynolds/sphere/geom2s"
)

// Feature returns c as a GeoJSON LineString of n samples in [lng, lat]
// degrees. The feature carries the curve kind and its radius in degrees.
// It panics if c is not a SmallCircle, GreatCircle or Arc.
func Feature(c geom2s.Curve, n int) *geojson.Feature {
	return lineFeature(c, Polyline(c, n))
}

// FeatureCollection returns one LineString feature per curve, each sampled
// with n points, tessellated through t.
func FeatureCollection(t *Tessellator, curves []geom2s.Curve, n int) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, c := range curves {
		fc.AddFeature(lineFeature(c, t.Polyline(c, n)))
	}
	return fc
}

func lineFeature(c geom2s.Curve, line s2.Polyline) *geojson.Feature {
	coords := make([][]float64, 0, len(line))
	for _, p := range line {
		ll := s2.LatLngFromPoint(p)
		coords = append(coords, []float64{ll.Lng.Degrees(), ll.Lat.Degrees()})
	}
	f := geojson.NewLineStringFeature(coords)
	kind, circle := describe(c)
	f.SetProperty("kind", kind)
	f.SetProperty("radius_deg", circle.Radius().Degrees())
	f.SetProperty("length", c.Length())
	return f
}

// describe panics on curve types other than those defined by geom2s.
func describe(c geom2s.Curve) (string, geom2s.SmallCircle) {
	switch c := c.(type) {
	case geom2s.GreatCircle:
		return "great_circle", c.Circle()
	case geom2s.Arc:
		return "arc", c.Circle()
	case geom2s.SmallCircle:
		return "small_circle", c
	}
	panic(fmt.Sprintf("render: unsupported curve type %T", c))
}
