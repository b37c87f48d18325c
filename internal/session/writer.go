package session

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// ResultPrefix precedes the computed value on the result line
const ResultPrefix = "Resultado: "

// FormatResult renders v with at least one fractional digit ("20.0", "12.5664").
// Magnitudes below 1e-3 or from 1e7 upwards use an exponent ("1.0E7", "1.5E-4").
func FormatResult(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}

	abs := math.Abs(v)
	if v == 0 || (abs >= 1e-3 && abs < 1e7) {
		s := strconv.FormatFloat(v, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}

	// strconv gives "1.5e-04"; rewrite as "1.5E-4"
	s := strconv.FormatFloat(v, 'e', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "e")
	if !strings.Contains(mantissa, ".") {
		mantissa += ".0"
	}
	n, _ := strconv.Atoi(exp)
	return mantissa + "E" + strconv.Itoa(n)
}

// WriteResult writes the result line for v
func WriteResult(w io.Writer, v float64) error {
	if _, err := fmt.Fprintln(w, ResultPrefix+FormatResult(v)); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}
