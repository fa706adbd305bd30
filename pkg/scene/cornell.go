package scene

import (
	"math"

	"github.com/elowenkirk/rayforge/pkg/core"
	"github.com/elowenkirk/rayforge/pkg/geometry"
	"github.com/elowenkirk/rayforge/pkg/light"
	"github.com/elowenkirk/rayforge/pkg/material"
	rtmath "github.com/elowenkirk/rayforge/pkg/math"
)

// buildCornellScene builds a Cornell-box style enclosure: five walls
// from a single cube stretched per axis, a CSG-carved pedestal showing
// off the boolean-difference operator, and a UV-checkered cube to
// exercise the cube projection's six-face mapping.
func buildCornellScene() *Scene {
	root := geometry.NewGroup()

	root.AddChild(wall(0, -5.5, 0, 10, 0.5, 10, core.NewColor(0.9, 0.9, 0.9)))    // floor
	root.AddChild(wall(0, 5.5, 0, 10, 0.5, 10, core.NewColor(0.9, 0.9, 0.9)))     // ceiling
	root.AddChild(wall(0, 0, 5.5, 10, 10, 0.5, core.NewColor(0.9, 0.9, 0.9)))     // back
	root.AddChild(wall(-5.5, 0, 0, 0.5, 10, 10, core.NewColor(0.75, 0.1, 0.1)))   // left, red
	root.AddChild(wall(5.5, 0, 0, 0.5, 10, 10, core.NewColor(0.1, 0.6, 0.15)))    // right, green

	root.AddChild(carvedPedestal())
	root.AddChild(checkeredCube())

	geometry.Build(root)

	l := light.NewPointLight(rtmath.NewPoint(0, 5, 0), core.White)
	return &Scene{Root: root, Lights: []light.Light{l}}
}

func wall(x, y, z, sx, sy, sz float64, color core.Color) *geometry.Cube {
	c := geometry.NewCube()
	tr, _ := rtmath.NewBuilder().Scale(sx, sy, sz).Translate(x, y, z).Build()
	c.SetTransform(tr)
	m := material.Default()
	m.Color = color
	m.Specular = 0
	c.SetMaterial(m)
	return c
}

// carvedPedestal subtracts a sphere from a cube, keeping the material
// each branch already owned — CSG children never inherit a group
// override.
func carvedPedestal() *geometry.Csg {
	block := geometry.NewCube()
	blockTr, _ := rtmath.NewBuilder().Scale(1.2, 1.2, 1.2).Translate(-2, -3.8, 2).Build()
	block.SetTransform(blockTr)
	blockMat := material.Default()
	blockMat.Color = core.NewColor(0.8, 0.7, 0.3)
	block.SetMaterial(blockMat)

	bite := geometry.NewSphere()
	biteTr, _ := rtmath.NewBuilder().Scale(1, 1, 1).Translate(-1.4, -3.2, 1.4).Build()
	bite.SetTransform(biteTr)
	biteMat := material.Default()
	biteMat.Color = core.NewColor(0.2, 0.2, 0.2)
	bite.SetMaterial(biteMat)

	return geometry.NewCsg(geometry.CsgDifference, block, bite)
}

func checkeredCube() *geometry.Cube {
	c := geometry.NewCube()
	tr, _ := rtmath.NewBuilder().
		Scale(1, 1, 1).
		RotateY(math.Pi / 6).
		Translate(2, -4, -1).
		Build()
	c.SetTransform(tr)

	checkers := material.UVCheckers{Width: 4, Height: 4, A: core.NewColor(0.9, 0.1, 0.1), B: core.White}
	faces := map[material.CubeFace]material.UVPattern{
		material.FacePosX: checkers, material.FaceNegX: checkers,
		material.FacePosY: checkers, material.FaceNegY: checkers,
		material.FacePosZ: checkers, material.FaceNegZ: checkers,
	}
	m := material.Default()
	m.Pattern = material.NewCubeMapPattern(faces)
	c.SetMaterial(m)
	return c
}
