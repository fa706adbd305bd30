package scene

import (
	"github.com/elowenkirk/rayforge/pkg/core"
	"github.com/elowenkirk/rayforge/pkg/geometry"
	"github.com/elowenkirk/rayforge/pkg/light"
	"github.com/elowenkirk/rayforge/pkg/material"
	rtmath "github.com/elowenkirk/rayforge/pkg/math"
)

// buildDefaultScene is the book's familiar three-sphere arrangement on
// a checkered floor, plus a fourth, glass sphere, lit by a single area
// light so the shadows soften instead of snapping to black.
func buildDefaultScene() *Scene {
	floor := geometry.NewPlane()
	floorMat := material.Default()
	floorMat.Pattern = material.NewCheckersPattern(core.NewColor(0.4, 0.4, 0.4), core.White)
	floorMat.Reflective = 0.1
	floor.SetMaterial(floorMat)

	middle := geometry.NewSphere()
	middleTr, _ := rtmath.NewBuilder().Translate(-0.5, 1, 0.5).Build()
	middle.SetTransform(middleTr)
	middleMat := material.Default()
	middleMat.Color = core.NewColor(0.1, 1, 0.5)
	middleMat.Diffuse = 0.7
	middleMat.Specular = 0.3
	middle.SetMaterial(middleMat)

	right := geometry.NewSphere()
	rightTr, _ := rtmath.NewBuilder().Scale(0.5, 0.5, 0.5).Translate(1.5, 0.5, -0.5).Build()
	right.SetTransform(rightTr)
	rightMat := material.Default()
	rightMat.Color = core.NewColor(0.5, 1, 0.1)
	rightMat.Diffuse = 0.7
	rightMat.Specular = 0.3
	right.SetMaterial(rightMat)

	left := geometry.NewSphere()
	leftTr, _ := rtmath.NewBuilder().Scale(0.33, 0.33, 0.33).Translate(-1.5, 0.33, -0.75).Build()
	left.SetTransform(leftTr)
	leftMat := material.Default()
	leftMat.Color = core.NewColor(1, 0.8, 0.1)
	leftMat.Diffuse = 0.7
	leftMat.Specular = 0.3
	left.SetMaterial(leftMat)

	glass := geometry.NewSphere()
	glassTr, _ := rtmath.NewBuilder().Scale(0.7, 0.7, 0.7).Translate(1, 0.7, 1.6).Build()
	glass.SetTransform(glassTr)
	glassMat := material.Default()
	glassMat.Color = core.NewColor(0.05, 0.05, 0.05)
	glassMat.Ambient = 0
	glassMat.Diffuse = 0.1
	glassMat.Specular = 1
	glassMat.Shininess = 300
	glassMat.Reflective = 0.9
	glassMat.Transparency = 0.9
	glassMat.RefractiveIndex = 1.5
	glass.SetMaterial(glassMat)

	root := geometry.NewGroup()
	root.AddChild(floor)
	root.AddChild(middle)
	root.AddChild(right)
	root.AddChild(left)
	root.AddChild(glass)
	geometry.Build(root)

	areaLight, err := light.NewAreaLight(
		rtmath.NewPoint(-5, 8.9, -5.5),
		rtmath.NewVector(2, 0, 0), rtmath.NewVector(0, 2, 0),
		4, 4, core.White, 1729,
	)
	if err != nil {
		panic(err)
	}

	return &Scene{Root: root, Lights: []light.Light{areaLight}}
}
