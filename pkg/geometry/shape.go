// Package geometry implements the shape tree: primitives (sphere,
// plane, cube, cylinder, cone, triangle), the composite nodes that
// combine them (group, CSG), the bounding-volume hierarchy that
// accelerates group traversal, and the world-space intersection and
// normal dispatch that ties them together.
package geometry

import (
	"github.com/elowenkirk/rayforge/pkg/core"
	"github.com/elowenkirk/rayforge/pkg/material"
	rtmath "github.com/elowenkirk/rayforge/pkg/math"
)

// Shape is any node in the tree: a primitive or a composite (Group,
// Csg). Every accessor here is resolved by the time rendering starts —
// EffectiveMaterial/EffectiveCastsShadow already reflect group
// inheritance (§4.D), and WorldBounds is cached at build time.
type Shape interface {
	Transform() rtmath.Transform
	EffectiveMaterial() material.Material
	EffectiveCastsShadow() bool
	WorldBounds() core.AABB
	ID() int
}

// Primitive is a leaf shape that knows how to intersect and shade
// itself in its own local coordinate space.
type Primitive interface {
	Shape
	LocalIntersect(localRay rtmath.Ray) []LocalHit
	LocalNormalAt(localPoint rtmath.Tuple, hit LocalHit) rtmath.Tuple
	LocalBounds() core.AABB
}

// LocalHit is the local-space result of a primitive's own intersection
// routine, before it's wrapped into a tree-level Intersection that
// also carries the hit Shape.
type LocalHit struct {
	T     float64
	HasUV bool
	U, V  float64
}

// Intersection is a single ray/shape hit: a distance along the ray,
// the shape it hit, and — for UV-mapped primitives — the (u, v)
// computed at the hit.
type Intersection struct {
	T     float64
	Shape Shape
	HasUV bool
	U, V  float64

	// worldToLocal is the composed inverse transform from world space
	// down to the hit primitive's own local space, captured at
	// intersection time so NormalAt doesn't need parent pointers.
	worldToLocal rtmath.Matrix4
}

// Intersections is a t-sorted collection of Intersection, with ties
// broken by Shape.ID() so ordering never depends on input order.
type Intersections []Intersection

// Hit returns the intersection with the smallest non-negative t, or
// false if there is none.
func (xs Intersections) Hit() (Intersection, bool) {
	best := Intersection{}
	found := false
	for _, x := range xs {
		if x.T < 0 {
			continue
		}
		if !found || x.T < best.T {
			best = x
			found = true
		}
	}
	return best, found
}

// Base holds the fields every shape carries: its own transform (stored
// as its inverse; see pkg/math.Transform), resolved material and
// shadow-casting flag, a build-time-cached bounding box, and a unique
// ID used as its intersection handle.
type Base struct {
	transform rtmath.Transform

	ownMaterial *material.Material
	effective   material.Material

	ownCastsShadow  *bool
	effectiveShadow bool

	bounds core.AABB
	id     int
}

func newBase() Base {
	return Base{
		transform:       rtmath.IdentityTransform(),
		effective:       material.Default(),
		effectiveShadow: true,
		id:              nextID(),
	}
}

// Transform implements Shape.
func (b *Base) Transform() rtmath.Transform { return b.transform }

// SetTransform sets this node's own transform.
func (b *Base) SetTransform(t rtmath.Transform) { b.transform = t }

// SetMaterial records an explicit material override on this node. A
// node with no call to SetMaterial is eligible to inherit one from an
// enclosing Group at build time.
func (b *Base) SetMaterial(m material.Material) { mm := m; b.ownMaterial = &mm }

// EffectiveMaterial implements Shape, returning the material resolved
// by the build-time inheritance pass.
func (b *Base) EffectiveMaterial() material.Material { return b.effective }

// SetCastsShadow records an explicit shadow-casting override.
func (b *Base) SetCastsShadow(v bool) { vv := v; b.ownCastsShadow = &vv }

// EffectiveCastsShadow implements Shape.
func (b *Base) EffectiveCastsShadow() bool { return b.effectiveShadow }

// WorldBounds implements Shape.
func (b *Base) WorldBounds() core.AABB { return b.bounds }

// ID implements Shape.
func (b *Base) ID() int { return b.id }

// setEffective is called by the build-time inheritance pass (build.go)
// to record the material/shadow-casting flag resolved for this node.
// It is promoted onto every concrete shape through Base embedding, so
// build.go never needs to type-switch on concrete shape types.
func (b *Base) setEffective(m material.Material, castsShadow bool) {
	b.effective = m
	b.effectiveShadow = castsShadow
}

// ownOverrides returns the overrides recorded by SetMaterial and
// SetCastsShadow directly on this node (nil where no override was
// set).
func (b *Base) ownOverrides() (*material.Material, *bool) {
	return b.ownMaterial, b.ownCastsShadow
}

// setBounds records this node's cached WorldBounds. Composite nodes
// (Group, Csg) set b.bounds directly during the build pass instead,
// since they need the pre-transform union to drive BVH subdivision.
func (b *Base) setBounds(box core.AABB) { b.bounds = box }

type effectiveSetter interface {
	setEffective(m material.Material, castsShadow bool)
	ownOverrides() (*material.Material, *bool)
}
