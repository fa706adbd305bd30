package geometry

import "fmt"

func errDegenerateCappedExtent(kind string, min, max float64) error {
	return fmt.Errorf("geometry: closed %s requires min < max, got min=%v max=%v", kind, min, max)
}
