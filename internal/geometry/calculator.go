package geometry

import (
	"fmt"
	"log/slog"
)

// Calculator dispatches a shape and operation to one of the formulas
type Calculator struct {
	pi     float64
	logger *slog.Logger
}

// NewCalculator creates a new calculator using the given value of π
func NewCalculator(pi float64, logger *slog.Logger) *Calculator {
	return &Calculator{
		pi:     pi,
		logger: logger,
	}
}

// Dimensions returns the ordered dimensions Calculate expects for shape and op
func (c *Calculator) Dimensions(shape Shape, op Operation) []Dimension {
	return DimensionsFor(shape, op)
}

// Calculate evaluates op on shape using values, ordered as returned by Dimensions.
// Unknown shapes evaluate to 0 without error.
func (c *Calculator) Calculate(shape Shape, op Operation, values []float64) (float64, error) {
	if want := len(DimensionsFor(shape, op)); len(values) != want {
		return 0, fmt.Errorf("%s %s needs %d dimensions, got %d", shape, op, want, len(values))
	}

	var result float64
	switch shape {
	case Circle:
		if op == Area {
			result = CircleArea(c.pi, values[0])
		} else {
			result = CirclePerimeter(c.pi, values[0])
		}
	case Square:
		if op == Area {
			result = SquareArea(values[0])
		} else {
			result = SquarePerimeter(values[0])
		}
	case Triangle:
		if op == Area {
			result = TriangleArea(values[0], values[1])
		} else {
			result = TrianglePerimeter(values[0], values[1], values[2])
		}
	case Rectangle:
		if op == Area {
			result = RectangleArea(values[0], values[1])
		} else {
			result = RectanglePerimeter(values[0], values[1])
		}
	case Pentagon:
		if op == Area {
			result = PentagonArea(values[0], values[1])
		} else {
			result = PentagonPerimeter(values[0])
		}
	default:
		c.logger.Debug("unrecognized shape, returning zero")
		return 0, nil
	}

	c.logger.Debug("calculated",
		"shape", shape.String(),
		"operation", op.String(),
		"dimensions", values,
		"result", result)

	return result, nil
}
