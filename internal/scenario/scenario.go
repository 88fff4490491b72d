// Package scenario loads YAML descriptions of a set of bodies plus an optional command script.
package scenario

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"rigid-kernel/internal/physics"
	"rigid-kernel/internal/vmath"
)

// Scenario is the file format:
//
//	name: drop test
//	bodies:
//	  - name: ball
//	    mass: 2
//	    moment_of_inertia: 0.4
//	    position: {x: 0, y: 10, z: 0}
//	    forces:
//	      - vector: {y: -19.6}
//	script:
//	  - step -n 60
//	  - print
type Scenario struct {
	Name   string    `yaml:"name"`
	Bodies []BodyDef `yaml:"bodies"`
	// Script lines run through the command registry in order.
	Script []string `yaml:"script,omitempty"`
}

// BodyDef is the YAML definition of one body. Omitted vectors are zero.
type BodyDef struct {
	Name            string        `yaml:"name"`
	Mass            float64       `yaml:"mass"`
	MomentOfInertia float64       `yaml:"moment_of_inertia"`
	Position        vmath.Vector3 `yaml:"position,omitempty"`
	Velocity        vmath.Vector3 `yaml:"velocity,omitempty"`
	AngularVelocity vmath.Vector3 `yaml:"angular_velocity,omitempty"`
	Rotation        *RotationDef  `yaml:"rotation,omitempty"`
	Size            vmath.Vector3 `yaml:"size,omitempty"`
	Shape3D         string        `yaml:"shape3d,omitempty"`
	Shape2D         string        `yaml:"shape2d,omitempty"`
	Charge          *float64      `yaml:"charge,omitempty"`
	Forces          []ForceDef    `yaml:"forces,omitempty"`
}

// RotationDef is an initial orientation given as axis and angle in radians.
type RotationDef struct {
	Axis  vmath.Vector3 `yaml:"axis"`
	Angle float64       `yaml:"angle"`
}

// ForceDef is one initial force. Duration 0 or omitted means the force never expires.
type ForceDef struct {
	Vector   vmath.Vector3 `yaml:"vector"`
	Point    vmath.Vector3 `yaml:"point,omitempty"`
	Duration float64       `yaml:"duration,omitempty"`
}

// Load reads and parses the scenario at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a scenario and checks body names are present and unique.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(s.Bodies))
	for i, b := range s.Bodies {
		if b.Name == "" {
			return nil, fmt.Errorf("body %d has no name", i)
		}
		if seen[b.Name] {
			return nil, fmt.Errorf("duplicate body name %q", b.Name)
		}
		seen[b.Name] = true
	}
	return &s, nil
}

// Body builds the physics body the definition describes.
func (d BodyDef) Body() (*physics.Body, error) {
	s3, err := physics.ParseShape3D(d.Shape3D)
	if err != nil {
		return nil, fmt.Errorf("body %q: %w", d.Name, err)
	}
	s2, err := physics.ParseShape2D(d.Shape2D)
	if err != nil {
		return nil, fmt.Errorf("body %q: %w", d.Name, err)
	}
	b := physics.NewBody(d.Name, d.Mass, d.MomentOfInertia)
	if err := b.Validate(); err != nil {
		return nil, err
	}
	b.Position = d.Position
	b.Velocity = d.Velocity
	b.AngularVelocity = d.AngularVelocity
	if d.Rotation != nil {
		b.Rotation = vmath.FromAxisAngle(d.Rotation.Axis, d.Rotation.Angle)
	}
	b.Size = d.Size
	b.Shape3D = s3
	b.Shape2D = s2
	if d.Charge != nil {
		b.Charge = *d.Charge
	}
	for _, f := range d.Forces {
		duration := f.Duration
		if duration == 0 {
			duration = math.Inf(1)
		}
		b.ApplyForceAt(f.Vector, f.Point, duration)
	}
	return b, nil
}

// Populate adds every body of the scenario to w. All bodies are built first, so on error
// w is left as it was.
func (s *Scenario) Populate(w *physics.World) error {
	bodies := make([]*physics.Body, 0, len(s.Bodies))
	for _, d := range s.Bodies {
		b, err := d.Body()
		if err != nil {
			return err
		}
		bodies = append(bodies, b)
	}
	for _, b := range bodies {
		w.AddBody(b)
	}
	return nil
}
