package geometry

// Formulas are evaluated in the written order; reordering changes the last bit of some results.

// CircleArea computes π·r²
func CircleArea(pi, r float64) float64 {
	return pi * r * r
}

// CirclePerimeter computes 2·π·r
func CirclePerimeter(pi, r float64) float64 {
	return 2 * pi * r
}

// SquareArea computes s²
func SquareArea(s float64) float64 {
	return s * s
}

// SquarePerimeter computes 4·s
func SquarePerimeter(s float64) float64 {
	return 4 * s
}

// TriangleArea computes half of base times height
func TriangleArea(b, h float64) float64 {
	return 0.5 * b * h
}

// TrianglePerimeter sums the three sides
func TrianglePerimeter(a, b, c float64) float64 {
	return a + b + c
}

// RectangleArea computes base times height
func RectangleArea(b, h float64) float64 {
	return b * h
}

// RectanglePerimeter computes 2·(b+h)
func RectanglePerimeter(b, h float64) float64 {
	return 2 * (b + h)
}

// PentagonArea computes the area of a regular pentagon from its side and apothem
func PentagonArea(s, a float64) float64 {
	return (5 * s * a) / 2
}

// PentagonPerimeter computes 5·s for a regular pentagon
func PentagonPerimeter(s float64) float64 {
	return 5 * s
}
