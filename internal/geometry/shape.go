package geometry

import "strings"

// Shape is one of the supported figures, or Unknown
type Shape int

const (
	// Unknown is any keyword that names none of the supported figures
	Unknown Shape = iota
	// Circle needs a radius
	Circle
	// Square needs a side
	Square
	// Triangle needs base and height for area, three sides for perimeter
	Triangle
	// Rectangle needs base and height
	Rectangle
	// Pentagon is a regular pentagon; area also needs the apothem
	Pentagon
)

// Input keywords, matched after trimming and lowercasing
const (
	KeywordCircle    = "circulo"
	KeywordSquare    = "cuadrado"
	KeywordTriangle  = "triangulo"
	KeywordRectangle = "rectangulo"
	KeywordPentagon  = "pentagono"

	KeywordArea      = "area"
	KeywordPerimeter = "perimetro"
)

var shapeKeywords = map[string]Shape{
	KeywordCircle:    Circle,
	KeywordSquare:    Square,
	KeywordTriangle:  Triangle,
	KeywordRectangle: Rectangle,
	KeywordPentagon:  Pentagon,
}

// ParseShape maps a keyword to a Shape. Unrecognized keywords yield Unknown.
func ParseShape(keyword string) Shape {
	if s, ok := shapeKeywords[normalize(keyword)]; ok {
		return s
	}
	return Unknown
}

// String returns the input keyword for the shape
func (s Shape) String() string {
	switch s {
	case Circle:
		return KeywordCircle
	case Square:
		return KeywordSquare
	case Triangle:
		return KeywordTriangle
	case Rectangle:
		return KeywordRectangle
	case Pentagon:
		return KeywordPentagon
	default:
		return "unknown"
	}
}

// Operation selects between area and perimeter
type Operation int

const (
	// Perimeter is selected by anything other than "area"
	Perimeter Operation = iota
	// Area is selected only by the exact "area" keyword
	Area
)

// ParseOperation returns Area only for the exact "area" keyword.
// Any other input, including garbage, is Perimeter.
func ParseOperation(keyword string) Operation {
	if normalize(keyword) == KeywordArea {
		return Area
	}
	return Perimeter
}

// String returns the input keyword for the operation
func (o Operation) String() string {
	if o == Area {
		return KeywordArea
	}
	return KeywordPerimeter
}

func normalize(keyword string) string {
	return strings.ToLower(strings.TrimSpace(keyword))
}
