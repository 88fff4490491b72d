// Package primitives draws body shapes as lit raylib meshes.
package primitives

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"rigid-kernel/internal/vmath"
)

// Mesh kinds. Several body shapes share one mesh.
const (
	MeshSphere   = "sphere"
	MeshBox      = "box"
	MeshRod      = "rod"
	MeshPyramid  = "pyramid"
	MeshTriPrism = "triangular_prism"
)

// cached holds mesh and material for a mesh kind. Created lazily on first Draw.
type cached struct {
	mesh rl.Mesh
	mtl  rl.Material
}

// Registry maps mesh kinds to mesh+material. Meshes are created on first use
// so that GPU resources are allocated after the window/OpenGL context exists.
type Registry struct {
	cache    map[string]cached
	shader   rl.Shader
	loaded   bool
	viewPos  [3]float32
	lightDir [3]float32
}

// NewRegistry returns an empty registry lit from above-right.
func NewRegistry() *Registry {
	return &Registry{
		cache:    make(map[string]cached),
		lightDir: [3]float32{0.5, 1, 0.5},
	}
}

// SetView sets camera position and direction-to-light for this frame. Call once per frame
// before drawing.
func (r *Registry) SetView(viewPos, lightDir [3]float32) {
	r.viewPos = viewPos
	r.lightDir = lightDir
}

const (
	sphereRings  = 16
	sphereSlices = 16
	rodSlices    = 12
	// rods are drawn this thin relative to their length when no size is given
	rodThickness = 0.1
)

// MeshFor returns the mesh kind for a shape name as reported by physics.Shape3D.String.
// Unknown names and point masses draw as spheres.
func MeshFor(shape string) string {
	switch shape {
	case "rectangular_prism", "cube":
		return MeshBox
	case "uniform_thin_rod":
		return MeshRod
	case "pyramid":
		return MeshPyramid
	case "triangular_prism":
		return MeshTriPrism
	default:
		return MeshSphere
	}
}

// DefaultScale is the unit-mesh scale for a body of the given radius whose size is unset.
func DefaultScale(kind string, radius float32) [3]float32 {
	d := 2 * radius
	if kind == MeshRod {
		return [3]float32{d * rodThickness, d, d * rodThickness}
	}
	return [3]float32{d, d, d}
}

// genMesh builds the unit mesh for kind: every mesh fits a 1x1x1 box centred on the origin
// after centerOffset is applied.
func genMesh(kind string) rl.Mesh {
	switch kind {
	case MeshBox:
		return rl.GenMeshCube(1, 1, 1)
	case MeshRod:
		return rl.GenMeshCylinder(0.5, 1, rodSlices)
	case MeshPyramid:
		return rl.GenMeshCone(0.5, 1, 4)
	case MeshTriPrism:
		return rl.GenMeshCylinder(0.5, 1, 3)
	default:
		return rl.GenMeshSphere(0.5, sphereRings, sphereSlices)
	}
}

// centerOffset shifts meshes whose base sits at Y=0 so the body position is their centre.
func centerOffset(kind string) [3]float32 {
	switch kind {
	case MeshRod, MeshPyramid, MeshTriPrism:
		return [3]float32{0, -0.5, 0}
	default:
		return [3]float32{}
	}
}

func (r *Registry) ensure(kind string) cached {
	if c, ok := r.cache[kind]; ok {
		return c
	}
	if !r.loaded {
		r.shader = rl.LoadShaderFromMemory(litVS, litFS)
		r.loaded = true
	}
	mtl := rl.LoadMaterialDefault()
	if rl.IsShaderValid(r.shader) {
		mtl.Shader = r.shader
	}
	c := cached{mesh: genMesh(kind), mtl: mtl}
	r.cache[kind] = c
	return c
}

// Transform returns the model matrix: centre the unit mesh, scale it, rotate it, then move it
// to position. A zero scale component is treated as 1.
func Transform(kind string, position vmath.Vector3, rotation vmath.Quaternion, scale [3]float32) rl.Matrix {
	for i := range scale {
		if scale[i] == 0 {
			scale[i] = 1
		}
	}
	off := centerOffset(kind)
	m := rl.MatrixTranslate(off[0], off[1], off[2])
	m = rl.MatrixMultiply(m, rl.MatrixScale(scale[0], scale[1], scale[2]))
	q := rotation.Normalize()
	m = rl.MatrixMultiply(m, rl.QuaternionToMatrix(rl.NewQuaternion(float32(q.X), float32(q.Y), float32(q.Z), float32(q.W))))
	return rl.MatrixMultiply(m, rl.MatrixTranslate(float32(position.X), float32(position.Y), float32(position.Z)))
}

// Draw draws one body shape. Must be called between BeginMode3D and EndMode3D.
func (r *Registry) Draw(shape string, position vmath.Vector3, rotation vmath.Quaternion, scale [3]float32, tint rl.Color) {
	kind := MeshFor(shape)
	c := r.ensure(kind)
	if albedo := c.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = tint
	}
	r.setLitShaderUniforms(c.mtl.Shader)
	rl.DrawMesh(c.mesh, c.mtl, Transform(kind, position, rotation, scale))
}

// Unload frees every cached mesh and the shared shader. Call before the window closes.
func (r *Registry) Unload() {
	for kind, c := range r.cache {
		rl.UnloadMesh(&c.mesh)
		delete(r.cache, kind)
	}
	if r.loaded {
		rl.UnloadShader(r.shader)
		r.loaded = false
	}
}
