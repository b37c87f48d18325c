package session

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/kula-app/geocalc/internal/geometry"
)

// Prompts written before each keyword is read
const (
	PromptShape     = "Figura (circulo, cuadrado, triangulo, rectangulo, pentagono):"
	PromptOperation = "Operacion (area, perimetro):"
)

// Session runs one interactive calculation: shape, operation, dimensions, result
type Session struct {
	reader     *Reader
	out        io.Writer
	calculator *geometry.Calculator
	logger     *slog.Logger
}

// NewSession creates a new session reading from in and writing prompts and the result to out
func NewSession(in io.Reader, out io.Writer, calculator *geometry.Calculator, logger *slog.Logger) *Session {
	return &Session{
		reader:     NewReader(in),
		out:        out,
		calculator: calculator,
		logger:     logger,
	}
}

// Run performs a single calculation and returns the computed result.
//
// Unknown shapes are not an error: no dimensions are requested and the result is 0.
// Malformed numbers and premature end of input abort the run.
func (s *Session) Run(ctx context.Context) (float64, error) {
	shapeKeyword, err := s.ask(PromptShape)
	if err != nil {
		return 0, fmt.Errorf("failed to read shape: %w", err)
	}
	opKeyword, err := s.ask(PromptOperation)
	if err != nil {
		return 0, fmt.Errorf("failed to read operation: %w", err)
	}

	shape := geometry.ParseShape(shapeKeyword)
	op := geometry.ParseOperation(opKeyword)
	if shape == geometry.Unknown {
		s.logger.WarnContext(ctx, "unrecognized shape", "shape", shapeKeyword)
	}
	s.logger.DebugContext(ctx, "selection parsed",
		"shape", shape.String(),
		"operation", op.String(),
		"operation_input", opKeyword)

	dims := s.calculator.Dimensions(shape, op)
	values := make([]float64, 0, len(dims))
	for _, d := range dims {
		if err := s.prompt(d.Prompt); err != nil {
			return 0, err
		}
		v, err := s.reader.ReadFloat()
		if err != nil {
			return 0, fmt.Errorf("failed to read %s: %w", d.Name, err)
		}
		values = append(values, v)
	}

	result, err := s.calculator.Calculate(shape, op, values)
	if err != nil {
		return 0, fmt.Errorf("failed to calculate: %w", err)
	}

	if err := WriteResult(s.out, result); err != nil {
		return 0, err
	}
	return result, nil
}

func (s *Session) ask(prompt string) (string, error) {
	if err := s.prompt(prompt); err != nil {
		return "", err
	}
	return s.reader.ReadKeyword()
}

func (s *Session) prompt(prompt string) error {
	if _, err := fmt.Fprintln(s.out, prompt); err != nil {
		return fmt.Errorf("failed to write prompt: %w", err)
	}
	return nil
}
