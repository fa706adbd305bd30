package geometry

import (
	"testing"

	"github.com/elowenkirk/rayforge/pkg/core"
	rtmath "github.com/elowenkirk/rayforge/pkg/math"
)

func TestGroup_WorldBoundsContainsChildren(t *testing.T) {
	g := NewGroup()
	tr, _ := rtmath.NewBuilder().Translate(10, 0, 0).Build()
	g.SetTransform(tr)

	a := NewSphere()
	atr, _ := rtmath.NewBuilder().Translate(-2, 0, 0).Build()
	a.SetTransform(atr)
	g.AddChild(a)

	b := NewSphere()
	btr, _ := rtmath.NewBuilder().Translate(2, 0, 0).Scale(0.5, 0.5, 0.5).Build()
	b.SetTransform(btr)
	g.AddChild(b)

	Build(g)

	// a.WorldBounds()/b.WorldBounds() are each child's box as seen by g
	// (g is their parent); lifting that union through g's own transform
	// puts it in the same frame as g.WorldBounds() itself.
	childUnion := a.WorldBounds().Combine(b.WorldBounds())
	liftedToParentFrame := childUnion.Transform(g.Transform().Forward())

	if !g.WorldBounds().Contains(liftedToParentFrame) {
		t.Errorf("group WorldBounds %v does not contain its children's combined bounds %v", g.WorldBounds(), liftedToParentFrame)
	}
}

func TestGroup_EmptyGroupHasEmptyBounds(t *testing.T) {
	g := NewGroup()
	Build(g)
	empty := core.EmptyAABB()
	if !g.WorldBounds().Min.Equals(empty.Min) {
		t.Errorf("expected an empty group's bounds to stay the additive identity, got %v", g.WorldBounds())
	}
}
