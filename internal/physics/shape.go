package physics

import (
	"fmt"
	"strings"
)

// Shape3D tags a body with a 3D primitive. The value is the primitive's vertex count.
// Shapes are metadata only; no geometry is derived from them.
type Shape3D int

const (
	Sphere           Shape3D = 0
	PointMass3D      Shape3D = 1
	UniformThinRod3D Shape3D = 2
	TriangularPrism  Shape3D = 4
	Pyramid          Shape3D = 5
	RectangularPrism Shape3D = 8
	Cube             Shape3D = 8
)

// Shape2D tags a body with a 2D primitive. The value is the primitive's vertex count.
type Shape2D int

const (
	Circle              Shape2D = 0
	PointMass2D         Shape2D = 1
	UniformThinRod2D    Shape2D = 2
	Triangle            Shape2D = 3
	EquilateralTriangle Shape2D = 3
	Quadrilateral       Shape2D = 4
	Rectangle           Shape2D = 4
	Square              Shape2D = 4
	Pentagon            Shape2D = 5
	Hexagon             Shape2D = 6
	Heptagon            Shape2D = 7
	Octagon             Shape2D = 8
	Nonagon             Shape2D = 9
)

var shape3DNames = map[string]Shape3D{
	"sphere":            Sphere,
	"point_mass":        PointMass3D,
	"uniform_thin_rod":  UniformThinRod3D,
	"triangular_prism":  TriangularPrism,
	"pyramid":           Pyramid,
	"rectangular_prism": RectangularPrism,
	"cube":              Cube,
}

var shape2DNames = map[string]Shape2D{
	"circle":               Circle,
	"point_mass":           PointMass2D,
	"uniform_thin_rod":     UniformThinRod2D,
	"triangle":             Triangle,
	"equilateral_triangle": EquilateralTriangle,
	"quadrilateral":        Quadrilateral,
	"rectangle":            Rectangle,
	"square":               Square,
	"pentagon":             Pentagon,
	"hexagon":              Hexagon,
	"heptagon":             Heptagon,
	"octagon":              Octagon,
	"nonagon":              Nonagon,
}

// ParseShape3D maps a snake_case name to a Shape3D. Empty means point mass.
func ParseShape3D(name string) (Shape3D, error) {
	if name == "" {
		return PointMass3D, nil
	}
	s, ok := shape3DNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("unknown 3d shape %q", name)
	}
	return s, nil
}

// ParseShape2D maps a snake_case name to a Shape2D. Empty means point mass.
func ParseShape2D(name string) (Shape2D, error) {
	if name == "" {
		return PointMass2D, nil
	}
	s, ok := shape2DNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("unknown 2d shape %q", name)
	}
	return s, nil
}

// String returns the canonical name. Aliased values (cube/rectangular_prism) print the first name.
func (s Shape3D) String() string {
	switch s {
	case Sphere:
		return "sphere"
	case PointMass3D:
		return "point_mass"
	case UniformThinRod3D:
		return "uniform_thin_rod"
	case TriangularPrism:
		return "triangular_prism"
	case Pyramid:
		return "pyramid"
	case RectangularPrism:
		return "rectangular_prism"
	}
	return fmt.Sprintf("shape3d(%d)", int(s))
}

func (s Shape2D) String() string {
	switch s {
	case Circle:
		return "circle"
	case PointMass2D:
		return "point_mass"
	case UniformThinRod2D:
		return "uniform_thin_rod"
	case Triangle:
		return "triangle"
	case Quadrilateral:
		return "quadrilateral"
	case Pentagon:
		return "pentagon"
	case Hexagon:
		return "hexagon"
	case Heptagon:
		return "heptagon"
	case Octagon:
		return "octagon"
	case Nonagon:
		return "nonagon"
	}
	return fmt.Sprintf("shape2d(%d)", int(s))
}

// Vertices returns the vertex count the shape is keyed by.
func (s Shape3D) Vertices() int { return int(s) }

func (s Shape2D) Vertices() int { return int(s) }
