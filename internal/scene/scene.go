package scene

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"rigid-kernel/internal/physics"
	"rigid-kernel/internal/primitives"
	"rigid-kernel/internal/vmath"
)

const (
	gridExtent     = 50
	gridMinorStep  = 1
	gridMajorStep  = 10
	gridMinorAlpha = 50
	gridMajorAlpha = 120
	axisLineAlpha  = 220

	minBodyRadius = 0.15
	maxBodyRadius = 3
	// orientation marker length relative to radius
	headingScale = 1.6
	selectScale  = 1.4
)

var lightDir = [3]float32{0.5, 1, 0.5}

var headingColor = rl.NewColor(250, 250, 250, 255)

// Scene holds a 3D camera and draws body snapshots plus their predicted paths.
// It only reads state; it never feeds anything back into the simulation.
type Scene struct {
	Camera      rl.Camera3D
	cursorDone  bool
	GridVisible bool
	// Paths holds predicted positions per body name, refreshed by the caller.
	Paths map[string][]vmath.Vector3
	// Selected is drawn with a highlight ring; empty means none.
	Selected  string
	BodyColor rl.Color
	PathColor rl.Color
	meshes    *primitives.Registry
}

// New returns a scene with a perspective camera looking at the origin.
// Camera: position (10,10,10), target (0,0,0), up (0,1,0), fovy 45°. Grid is visible by default.
func New() *Scene {
	s := &Scene{
		Paths:     make(map[string][]vmath.Vector3),
		BodyColor: rl.NewColor(230, 160, 60, 255),
		PathColor: rl.NewColor(90, 200, 250, 180),
		meshes:    primitives.NewRegistry(),
	}
	s.Camera.Position = rl.NewVector3(10, 10, 10)
	s.Camera.Target = rl.NewVector3(0, 0, 0)
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = 45
	s.Camera.Projection = rl.CameraPerspective
	s.GridVisible = true
	return s
}

// SetGridVisible sets whether the grid is drawn.
func (s *Scene) SetGridVisible(visible bool) {
	s.GridVisible = visible
}

// UpdatePaths replaces every predicted path with n predictions per body, timeStep apart.
func (s *Scene) UpdatePaths(bodies []*physics.Body, predictor physics.Predictor, timeStep float64, n int) error {
	clear(s.Paths)
	for _, b := range bodies {
		states, err := predictor.ObjectStates(b, timeStep, n)
		if err != nil {
			return err
		}
		path := make([]vmath.Vector3, len(states))
		for i, st := range states {
			path[i] = st.Position
		}
		s.Paths[b.Name] = path
	}
	return nil
}

// Update runs once per frame. Uses raylib UpdateCamera with CameraFree so the user can
// move the camera with mouse and keyboard. Skipped while the console has focus.
func (s *Scene) Update(consoleOpen bool) {
	if consoleOpen {
		return
	}
	if !s.cursorDone {
		rl.DisableCursor()
		s.cursorDone = true
	}
	rl.UpdateCamera(&s.Camera, rl.CameraFree)
}

// Draw renders the grid, each body as its shape and the predicted paths.
func (s *Scene) Draw(states []physics.BodyState) {
	cam := s.Camera.Position
	s.meshes.SetView([3]float32{cam.X, cam.Y, cam.Z}, lightDir)
	rl.BeginMode3D(s.Camera)
	if s.GridVisible {
		drawGrid()
	}
	for _, st := range states {
		s.drawBody(st)
		s.drawPath(s.Paths[st.Name])
	}
	rl.EndMode3D()
}

// Close releases GPU resources. Call before the window closes.
func (s *Scene) Close() {
	s.meshes.Unload()
}

func toRL(v vmath.Vector3) rl.Vector3 {
	return rl.NewVector3(float32(v.X), float32(v.Y), float32(v.Z))
}

// bodyRadius scales with the cube root of mass so volume tracks mass at unit density.
func bodyRadius(mass float64) float32 {
	r := 0.5 * math32.Cbrt(float32(mass))
	return math32.Min(math32.Max(r, minBodyRadius), maxBodyRadius)
}

// bodyScale uses the body's size when set, otherwise a mass-derived default.
func bodyScale(st physics.BodyState) [3]float32 {
	if !st.Size.IsZero() {
		return [3]float32{float32(st.Size.X), float32(st.Size.Y), float32(st.Size.Z)}
	}
	return primitives.DefaultScale(primitives.MeshFor(st.Shape3D), bodyRadius(st.Mass))
}

func (s *Scene) drawBody(st physics.BodyState) {
	center := toRL(st.Position)
	r := bodyRadius(st.Mass)
	s.meshes.Draw(st.Shape3D, st.Position, st.Rotation, bodyScale(st), s.BodyColor)
	if st.Name == s.Selected {
		rl.DrawCircle3D(center, r*selectScale, rl.NewVector3(1, 0, 0), 90, headingColor)
	}
	heading := st.Rotation.Rotate(vmath.BasisI).Scale(float64(r * headingScale))
	rl.DrawLine3D(center, toRL(st.Position.Add(heading)), headingColor)
}

func (s *Scene) drawPath(path []vmath.Vector3) {
	for i := 1; i < len(path); i++ {
		rl.DrawLine3D(toRL(path[i-1]), toRL(path[i]), s.PathColor)
	}
}

// drawGrid draws a grid on the XZ plane with major/minor lines and axis lines.
// Reuses start/end vectors to avoid per-frame allocations in the hot loop.
func drawGrid() {
	minor := rl.NewColor(128, 128, 128, gridMinorAlpha)
	major := rl.NewColor(160, 160, 160, gridMajorAlpha)
	axisX := rl.NewColor(220, 80, 80, axisLineAlpha)
	axisY := rl.NewColor(80, 220, 80, axisLineAlpha)
	axisZ := rl.NewColor(80, 80, 220, axisLineAlpha)

	var start, end rl.Vector3
	for x := -gridExtent; x <= gridExtent; x += gridMinorStep {
		c := major
		if x%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(x), 0, float32(-gridExtent)
		end.X, end.Y, end.Z = float32(x), 0, float32(gridExtent)
		rl.DrawLine3D(start, end, c)
	}
	for z := -gridExtent; z <= gridExtent; z += gridMinorStep {
		c := major
		if z%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(-gridExtent), 0, float32(z)
		end.X, end.Y, end.Z = float32(gridExtent), 0, float32(z)
		rl.DrawLine3D(start, end, c)
	}

	rl.DrawLine3D(rl.NewVector3(-gridExtent, 0, 0), rl.NewVector3(gridExtent, 0, 0), axisX)
	rl.DrawLine3D(rl.NewVector3(0, -gridExtent, 0), rl.NewVector3(0, gridExtent, 0), axisY)
	rl.DrawLine3D(rl.NewVector3(0, 0, -gridExtent), rl.NewVector3(0, 0, gridExtent), axisZ)
}
