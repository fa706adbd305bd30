// Package scene builds the complete Scene{Lights, Root} graphs the
// renderer shades against. The YAML/OBJ loader contract described in
// spec.md §6 is out of scope here — this package only constructs the
// handful of named demo scenes main wires up, the way a sample-scenes
// package sits alongside a loader in a full renderer.
package scene

import (
	"fmt"

	"github.com/elowenkirk/rayforge/pkg/geometry"
	"github.com/elowenkirk/rayforge/pkg/light"
)

// Scene is a fully materialized, build-ready shape tree plus its
// lights. Root must already be passed to geometry.Build before it's
// handed to the renderer.
type Scene struct {
	Lights []light.Light
	Root   geometry.Shape
}

// Builtin returns the named demo scene, or an error if name isn't
// registered.
func Builtin(name string) (*Scene, error) {
	build, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("scene: unknown builtin scene %q", name)
	}
	return build(), nil
}

// Names returns the registered builtin scene names, for a CLI's
// -scene flag usage message.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}

var registry = map[string]func() *Scene{
	"default": buildDefaultScene,
	"cornell": buildCornellScene,
}
