// Package seekexpr parses and resolves the seek expressions accepted
// by every positioned command:
//
//	.     stay at the current position
//	9     absolute offset 9
//	+10   10 bytes forward of the current position
//	-2    2 bytes back of the current position
//	40<   40 bytes back of the end of the stream
//	<     the end of the stream
//
// Parsing and resolution are separate steps: an Expr is a pure value,
// and Resolve is a pure function of the expression, the current
// position, and the stream length.
package seekexpr

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/emamoah/tapehead/internal/stream"
)

var (
	// ErrInvalidSyntax is returned for any token that does not match
	// the seek grammar, including numbers that overflow.
	ErrInvalidSyntax = errors.New("invalid seek argument")

	// ErrOutOfRange is returned when resolution lands before byte 0.
	// Positions beyond the end are legal; positions before the start
	// have no meaning.
	ErrOutOfRange = errors.New("seek out of range")
)

// Kind discriminates the five expression forms.
type Kind int

const (
	Current Kind = iota
	Absolute
	Forward
	Backward
	FromEnd
)

// Expr is a parsed seek expression. N is unused for Current.
type Expr struct {
	Kind Kind
	N    int64
}

// Parse interprets a single whitespace-free token as a seek
// expression.
func Parse(tok string) (Expr, error) {
	if tok == "" {
		return Expr{}, ErrInvalidSyntax
	}
	if tok == "." {
		return Expr{Kind: Current}, nil
	}

	if tok[len(tok)-1] == '<' {
		digits := tok[:len(tok)-1]
		if digits == "" {
			return Expr{Kind: FromEnd}, nil
		}
		n, err := parseDigits(digits)
		if err != nil {
			return Expr{}, err
		}
		return Expr{Kind: FromEnd, N: n}, nil
	}

	switch tok[0] {
	case '+':
		n, err := parseDigits(tok[1:])
		if err != nil {
			return Expr{}, err
		}
		return Expr{Kind: Forward, N: n}, nil
	case '-':
		n, err := parseDigits(tok[1:])
		if err != nil {
			return Expr{}, err
		}
		return Expr{Kind: Backward, N: n}, nil
	}

	n, err := parseDigits(tok)
	if err != nil {
		return Expr{}, err
	}
	return Expr{Kind: Absolute, N: n}, nil
}

// parseDigits parses a run of decimal digits. Signs are handled by the
// grammar, not the number parser, so they are rejected here.
func parseDigits(s string) (int64, error) {
	if s == "" {
		return 0, ErrInvalidSyntax
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, ErrInvalidSyntax
		}
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, ErrInvalidSyntax
	}
	return n, nil
}

// String renders the canonical form of the expression. Parsing the
// result yields an equivalent expression; leading zeros and "0<" style
// redundancy do not survive the round trip.
func (e Expr) String() string {
	switch e.Kind {
	case Current:
		return "."
	case Forward:
		return "+" + strconv.FormatInt(e.N, 10)
	case Backward:
		return "-" + strconv.FormatInt(e.N, 10)
	case FromEnd:
		if e.N == 0 {
			return "<"
		}
		return strconv.FormatInt(e.N, 10) + "<"
	default:
		return strconv.FormatInt(e.N, 10)
	}
}

// Resolve converts the expression to a target position given the
// current position and the stream length.
//
// Absolute and Forward never fail on a known position: targets beyond
// the end are meaningful on sparse and extendable streams. Backward
// and FromEnd fail with ErrOutOfRange when they land before byte 0.
// Any arithmetic on an unknown position fails with
// stream.ErrNotSeekable; Current alone is always legal.
func (e Expr) Resolve(current stream.Position, length int64) (stream.Position, error) {
	switch e.Kind {
	case Current:
		return current, nil
	case Absolute:
		return stream.At(e.N), nil
	case Forward:
		cur, ok := current.Offset()
		if !ok {
			return stream.Position{}, stream.ErrNotSeekable
		}
		return stream.At(cur + e.N), nil
	case Backward:
		cur, ok := current.Offset()
		if !ok {
			return stream.Position{}, stream.ErrNotSeekable
		}
		if e.N > cur {
			return stream.Position{}, fmt.Errorf("%w: %d before byte 0", ErrOutOfRange, e.N-cur)
		}
		return stream.At(cur - e.N), nil
	case FromEnd:
		if e.N > length {
			return stream.Position{}, fmt.Errorf("%w: %d before byte 0", ErrOutOfRange, e.N-length)
		}
		return stream.At(length - e.N), nil
	}
	return stream.Position{}, ErrInvalidSyntax
}
