package geometry

// Dimension is a single named measurement and the prompt used to request it
type Dimension struct {
	Name   string
	Prompt string
}

var (
	radius  = Dimension{Name: "radius", Prompt: "Radio:"}
	side    = Dimension{Name: "side", Prompt: "Lado:"}
	base    = Dimension{Name: "base", Prompt: "Base:"}
	height  = Dimension{Name: "height", Prompt: "Altura:"}
	apothem = Dimension{Name: "apothem", Prompt: "Apotema:"}
	side1   = Dimension{Name: "side1", Prompt: "Lado 1:"}
	side2   = Dimension{Name: "side2", Prompt: "Lado 2:"}
	side3   = Dimension{Name: "side3", Prompt: "Lado 3:"}
)

// DimensionsFor returns the ordered dimensions needed to evaluate op on shape.
// Unknown shapes need none.
func DimensionsFor(shape Shape, op Operation) []Dimension {
	switch shape {
	case Circle:
		return []Dimension{radius}
	case Square:
		return []Dimension{side}
	case Triangle:
		if op == Area {
			return []Dimension{base, height}
		}
		return []Dimension{side1, side2, side3}
	case Rectangle:
		return []Dimension{base, height}
	case Pentagon:
		if op == Area {
			return []Dimension{side, apothem}
		}
		return []Dimension{side}
	default:
		return nil
	}
}
