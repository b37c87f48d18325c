package session

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kula-app/geocalc/internal/config"
	"github.com/kula-app/geocalc/internal/geometry"
)

func runSession(t *testing.T, input string) (string, float64, error) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	calc := geometry.NewCalculator(config.Pi, logger)

	var out bytes.Buffer
	result, err := NewSession(strings.NewReader(input), &out, calc, logger).Run(context.Background())
	return out.String(), result, err
}

func TestSession_Run(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		prompts []string
		result  string
	}{
		{
			name:    "circle area",
			input:   "circulo\narea\n2\n",
			prompts: []string{"Radio:"},
			result:  "Resultado: 12.5664",
		},
		{
			name:    "square perimeter",
			input:   "cuadrado\nperimetro\n5\n",
			prompts: []string{"Lado:"},
			result:  "Resultado: 20.0",
		},
		{
			name:    "triangle area",
			input:   "triangulo\narea\n4\n3\n",
			prompts: []string{"Base:", "Altura:"},
			result:  "Resultado: 6.0",
		},
		{
			name:    "triangle perimeter",
			input:   "triangulo\nperimetro\n3\n4\n5\n",
			prompts: []string{"Lado 1:", "Lado 2:", "Lado 3:"},
			result:  "Resultado: 12.0",
		},
		{
			name:    "rectangle perimeter",
			input:   "rectangulo\nperimetro\n3\n4\n",
			prompts: []string{"Base:", "Altura:"},
			result:  "Resultado: 14.0",
		},
		{
			name:    "pentagon area",
			input:   "pentagono\narea\n6\n4.13\n",
			prompts: []string{"Lado:", "Apotema:"},
			result:  "Resultado: 61.949999999999996",
		},
		{
			name:    "pentagon perimeter",
			input:   "pentagono\nperimetro\n6\n",
			prompts: []string{"Lado:"},
			result:  "Resultado: 30.0",
		},
		{
			name:    "unknown shape asks for nothing",
			input:   "esfera\narea\n",
			prompts: nil,
			result:  "Resultado: 0.0",
		},
		{
			name:    "unrecognized operation means perimeter",
			input:   "cuadrado\nvolumen\n5\n",
			prompts: []string{"Lado:"},
			result:  "Resultado: 20.0",
		},
		{
			name:    "keywords are case and space insensitive",
			input:   "  Circulo \n AREA\n2\n",
			prompts: []string{"Radio:"},
			result:  "Resultado: 12.5664",
		},
		{
			name:    "out of range radius",
			input:   "circulo\narea\n1e400\n",
			prompts: []string{"Radio:"},
			result:  "Resultado: Infinity",
		},
		{
			name:    "dimensions on one line",
			input:   "rectangulo\narea\n3 4\n",
			prompts: []string{"Base:", "Altura:"},
			result:  "Resultado: 12.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := runSession(t, tt.input)
			require.NoError(t, err)

			want := append([]string{PromptShape, PromptOperation}, tt.prompts...)
			want = append(want, tt.result)
			assert.Equal(t, strings.Join(want, "\n")+"\n", out)
		})
	}
}

func TestSession_RunReturnsResult(t *testing.T) {
	_, result, err := runSession(t, "cuadrado\narea\n3\n")
	require.NoError(t, err)
	assert.Equal(t, 9.0, result)
}

func TestSession_RunErrors(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantErr     error
		errContains string
	}{
		{
			name:        "no input at all",
			input:       "",
			wantErr:     ErrUnexpectedEOF,
			errContains: "failed to read shape",
		},
		{
			name:        "missing operation",
			input:       "circulo\n",
			wantErr:     ErrUnexpectedEOF,
			errContains: "failed to read operation",
		},
		{
			name:        "missing dimension",
			input:       "circulo\narea\n",
			wantErr:     ErrUnexpectedEOF,
			errContains: "failed to read radius",
		},
		{
			name:        "malformed dimension",
			input:       "triangulo\narea\n4\ntres\n",
			wantErr:     ErrInvalidNumber,
			errContains: "failed to read height",
		},
		{
			name:        "hexadecimal dimension",
			input:       "circulo\narea\n0x1p2\n",
			wantErr:     ErrInvalidNumber,
			errContains: "failed to read radius",
		},
		{
			name:        "triangle perimeter runs out",
			input:       "triangulo\nperimetro\n1 2\n",
			wantErr:     ErrUnexpectedEOF,
			errContains: "failed to read side3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := runSession(t, tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.errContains)
			assert.NotContains(t, out, ResultPrefix)
		})
	}
}

func TestSession_RunIsRepeatable(t *testing.T) {
	input := "pentagono\narea\n6\n4.13\n"

	first, _, err := runSession(t, input)
	require.NoError(t, err)
	second, _, err := runSession(t, input)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSession_LogsUnknownShape(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelWarn}))
	calc := geometry.NewCalculator(config.Pi, logger)

	var out bytes.Buffer
	_, err := NewSession(strings.NewReader("esfera\narea\n"), &out, calc, logger).Run(context.Background())
	require.NoError(t, err)

	assert.Contains(t, logs.String(), "unrecognized shape")
	assert.Contains(t, logs.String(), "shape=esfera")
	assert.NotContains(t, out.String(), "unrecognized shape", "diagnostics must not reach stdout")
}
