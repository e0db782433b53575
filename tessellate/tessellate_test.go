package tessellate

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/textmesh/geom"
)

func rect(x0, y0, x1, y1 float64) geom.Contour {
	return geom.Contour{geom.Pt(x0, y0), geom.Pt(x1, y0), geom.Pt(x1, y1), geom.Pt(x0, y1)}
}

// triangleAreas returns the total area and the smallest signed area of the
// triangles described by indices.
func triangleAreas(t *testing.T, verts []geom.Point, indices []uint32) (total, minSigned float64) {
	t.Helper()
	if len(indices)%3 != 0 {
		t.Fatalf("index count %d is not a multiple of 3", len(indices))
	}
	minSigned = math.Inf(1)
	for i := 0; i < len(indices); i += 3 {
		a := verts[indices[i]]
		b := verts[indices[i+1]]
		c := verts[indices[i+2]]
		s := geom.Contour{a, b, c}.SignedArea()
		total += math.Abs(s)
		minSigned = math.Min(minSigned, s)
	}
	return total, minSigned
}

func TestEarcut(t *testing.T) {
	tests := []struct {
		name     string
		poly     Polygon
		wantTris int
		wantArea float64
	}{
		{
			name:     "square",
			poly:     Polygon{Outer: rect(0, 0, 1, 1)},
			wantTris: 2,
			wantArea: 1,
		},
		{
			name:     "clockwise square",
			poly:     Polygon{Outer: rect(0, 0, 2, 2).Reversed()},
			wantTris: 2,
			wantArea: 4,
		},
		{
			name: "concave L",
			poly: Polygon{Outer: geom.Contour{
				geom.Pt(0, 0), geom.Pt(2, 0), geom.Pt(2, 1),
				geom.Pt(1, 1), geom.Pt(1, 2), geom.Pt(0, 2),
			}},
			wantTris: 4,
			wantArea: 3,
		},
		{
			name: "square with hole",
			poly: Polygon{
				Outer: rect(0, 0, 10, 10),
				Holes: []geom.Contour{rect(4, 4, 6, 6).Reversed()},
			},
			wantTris: 8,
			wantArea: 96,
		},
		{
			name: "two holes",
			poly: Polygon{
				Outer: rect(0, 0, 10, 4),
				Holes: []geom.Contour{rect(1, 1, 3, 3), rect(6, 1, 8, 3)},
			},
			wantArea: 32,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			indices, err := Earcut{}.Triangulate(tt.poly)
			if err != nil {
				t.Fatalf("Triangulate() error = %v", err)
			}
			if got := len(indices) / 3; tt.wantTris > 0 && got != tt.wantTris {
				t.Errorf("triangles = %d, want %d", got, tt.wantTris)
			}
			total, minSigned := triangleAreas(t, tt.poly.Vertices(), indices)
			if math.Abs(total-tt.wantArea) > 1e-9 {
				t.Errorf("area = %v, want %v", total, tt.wantArea)
			}
			if minSigned <= 0 {
				t.Errorf("found triangle with signed area %v, want all counter-clockwise", minSigned)
			}
		})
	}
}

func TestEarcutDegenerate(t *testing.T) {
	tests := []struct {
		name string
		c    geom.Contour
	}{
		{"empty", nil},
		{"single point", geom.Contour{geom.Pt(1, 1)}},
		{"segment", geom.Contour{geom.Pt(0, 0), geom.Pt(1, 1)}},
		{"collinear", geom.Contour{geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(2, 0)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			indices, err := Earcut{}.Triangulate(Polygon{Outer: tt.c})
			if err != nil {
				t.Fatalf("Triangulate() error = %v", err)
			}
			if len(indices) != 0 {
				t.Errorf("got %d indices, want 0", len(indices))
			}
		})
	}
}

func TestNonFinite(t *testing.T) {
	poly := Polygon{Outer: geom.Contour{geom.Pt(0, 0), geom.Pt(math.NaN(), 0), geom.Pt(1, 1)}}
	for _, tr := range []Triangulator{Earcut{}, Fan{}} {
		if _, err := tr.Triangulate(poly); !errors.Is(err, ErrNonFinite) {
			t.Errorf("%T: error = %v, want ErrNonFinite", tr, err)
		}
	}
}

func TestFan(t *testing.T) {
	poly := Polygon{Outer: rect(0, 0, 3, 3).Reversed()}
	indices, err := Fan{}.Triangulate(poly)
	if err != nil {
		t.Fatalf("Triangulate() error = %v", err)
	}
	total, minSigned := triangleAreas(t, poly.Vertices(), indices)
	if total != 9 || minSigned <= 0 {
		t.Errorf("area = %v, min signed = %v", total, minSigned)
	}

	_, err = Fan{}.Triangulate(Polygon{Outer: rect(0, 0, 3, 3), Holes: []geom.Contour{rect(1, 1, 2, 2)}})
	if !errors.Is(err, ErrHolesUnsupported) {
		t.Errorf("error = %v, want ErrHolesUnsupported", err)
	}
}
