package geometry

// Group is a composite node holding an ordered list of children. Its
// own bounding box (in its own local frame) is the union of its
// children's boxes transformed into that frame; large groups get a
// BVH subdividing that list so a ray that misses a subregion skips
// every shape in it.
type Group struct {
	Base
	Children []Shape
	bvh      *BVH
}

// NewGroup builds an empty group; use AddChild to populate it before
// calling Build (see build.go) to resolve material inheritance and
// construct the BVH.
func NewGroup() *Group {
	return &Group{Base: newBase()}
}

// AddChild appends a child shape to the group.
func (g *Group) AddChild(child Shape) {
	g.Children = append(g.Children, child)
}
