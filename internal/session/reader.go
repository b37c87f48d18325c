package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

var (
	// ErrUnexpectedEOF is returned when input ends before a required value was read
	ErrUnexpectedEOF = errors.New("unexpected end of input")

	// ErrInvalidNumber is returned when a token cannot be parsed as a number
	ErrInvalidNumber = errors.New("invalid number")
)

// Reader reads keywords and numbers from an interactive input stream
type Reader struct {
	in *bufio.Reader
}

// NewReader creates a new reader over r
func NewReader(r io.Reader) *Reader {
	return &Reader{in: bufio.NewReader(r)}
}

// ReadKeyword reads one line and returns it trimmed and lowercased.
// A final line without a trailing newline is accepted.
func (r *Reader) ReadKeyword() (string, error) {
	line, err := r.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read line: %w", err)
		}
		if line == "" {
			return "", ErrUnexpectedEOF
		}
	}
	return strings.ToLower(strings.TrimSpace(line)), nil
}

// ReadFloat reads the next whitespace-delimited token and parses it as a float64.
// Several numbers may share one line.
func (r *Reader) ReadFloat() (float64, error) {
	token, err := r.nextToken()
	if err != nil {
		return 0, err
	}

	if isHexToken(token) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, token)
	}

	// Out-of-range tokens saturate to ±Inf or 0 instead of failing
	value, err := strconv.ParseFloat(token, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, token)
	}
	return value, nil
}

// isHexToken reports whether token is a hexadecimal literal such as "0x1p2" or "-0X10"
func isHexToken(token string) bool {
	t := strings.TrimLeft(token, "+-")
	return strings.HasPrefix(t, "0x") || strings.HasPrefix(t, "0X")
}

// nextToken skips leading whitespace and returns the following run of non-space runes.
// The delimiter after the token is left unread.
func (r *Reader) nextToken() (string, error) {
	var sb strings.Builder
	for {
		c, _, err := r.in.ReadRune()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return "", fmt.Errorf("failed to read token: %w", err)
			}
			if sb.Len() == 0 {
				return "", ErrUnexpectedEOF
			}
			return sb.String(), nil
		}

		if unicode.IsSpace(c) {
			if sb.Len() == 0 {
				continue
			}
			_ = r.in.UnreadRune()
			return sb.String(), nil
		}
		sb.WriteRune(c)
	}
}
