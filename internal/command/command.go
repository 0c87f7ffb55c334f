// Package command parses one REPL input line into a structured
// command. Tokenizing is whitespace based for the command word and the
// seek argument; write payloads take the rest of the line verbatim so
// free text, internal whitespace included, can be written.
package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/emamoah/tapehead/internal/seekexpr"
)

var (
	// ErrUnknown is returned for a command word that matches no
	// known command, unambiguously or otherwise.
	ErrUnknown = errors.New("unrecognized command")

	// ErrMissingArgument is returned when a required argument is
	// absent, e.g. `seek` with no expression or `write` with no text.
	ErrMissingArgument = errors.New("missing argument")

	// ErrInvalidHexByte is returned when a writeb token is not
	// exactly two hexadecimal digits.
	ErrInvalidHexByte = errors.New("invalid byte argument")

	// ErrInvalidCount is returned when a read count does not parse
	// as a non-negative integer.
	ErrInvalidCount = errors.New("invalid digit in count argument")
)

// Kind discriminates the command variants.
type Kind int

const (
	Nop Kind = iota
	Read
	ReadHex
	Write
	WriteHex
	Seek
	Help
	Quit
)

// Command is a parsed input line. Every variant except Nop, Help, and
// Quit carries exactly one seek expression.
type Command struct {
	Kind Kind
	Seek seekexpr.Expr

	// Count is the optional byte count of Read/ReadHex. When
	// HasCount is false the read runs to end of stream.
	Count    int64
	HasCount bool

	// Text is the verbatim payload of Write.
	Text string

	// Bytes is the decoded payload of WriteHex.
	Bytes []byte
}

// words maps full command names to their kinds. Unambiguous prefixes
// are accepted; where one name prefixes another (read/readb,
// write/writeb) the shorter name wins, so `r` reads and `rb` reads
// binary.
var words = map[string]Kind{
	"read":   Read,
	"readb":  ReadHex,
	"write":  Write,
	"writeb": WriteHex,
	"seek":   Seek,
	"help":   Help,
	"quit":   Quit,
}

// Parse interprets one raw input line (without its trailing newline).
// An empty or all-whitespace line is the Nop command.
func Parse(line string) (Command, error) {
	word, rest := nextToken(line)
	if word == "" {
		return Command{Kind: Nop}, nil
	}

	kind, err := resolveWord(strings.ToLower(word))
	if err != nil {
		return Command{}, err
	}

	switch kind {
	case Help, Quit:
		return Command{Kind: kind}, nil
	case Seek:
		expr, _, err := seekArg(rest)
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: Seek, Seek: expr}, nil
	case Read, ReadHex:
		return parseRead(kind, rest)
	case Write:
		return parseWrite(rest)
	default:
		return parseWriteHex(rest)
	}
}

func parseRead(kind Kind, rest string) (Command, error) {
	expr, rest, err := seekArg(rest)
	if err != nil {
		return Command{}, err
	}
	cmd := Command{Kind: kind, Seek: expr}

	tok, _ := nextToken(rest)
	if tok == "" {
		return cmd, nil
	}
	count, err := strconv.ParseInt(tok, 10, 64)
	if err != nil || count < 0 || strings.ContainsAny(tok, "+-") {
		return Command{}, fmt.Errorf("%w: %q", ErrInvalidCount, tok)
	}
	cmd.Count = count
	cmd.HasCount = true
	return cmd, nil
}

func parseWrite(rest string) (Command, error) {
	expr, rest, err := seekArg(rest)
	if err != nil {
		return Command{}, err
	}
	// Everything after the whitespace run that follows the seek
	// token is payload, verbatim.
	text := strings.TrimLeftFunc(rest, unicode.IsSpace)
	if text == "" {
		return Command{}, fmt.Errorf("%w: nothing to write", ErrMissingArgument)
	}
	return Command{Kind: Write, Seek: expr, Text: text}, nil
}

func parseWriteHex(rest string) (Command, error) {
	expr, rest, err := seekArg(rest)
	if err != nil {
		return Command{}, err
	}
	toks := strings.Fields(rest)
	if len(toks) == 0 {
		return Command{}, fmt.Errorf("%w: nothing to write", ErrMissingArgument)
	}
	bytes := make([]byte, len(toks))
	for i, tok := range toks {
		b, ok := hexByte(tok)
		if !ok {
			return Command{}, fmt.Errorf("%w: %q", ErrInvalidHexByte, tok)
		}
		bytes[i] = b
	}
	return Command{Kind: WriteHex, Seek: expr, Bytes: bytes}, nil
}

// seekArg consumes the required seek token from rest.
func seekArg(rest string) (seekexpr.Expr, string, error) {
	tok, rest := nextToken(rest)
	if tok == "" {
		return seekexpr.Expr{}, "", fmt.Errorf("%w: missing seek argument", ErrMissingArgument)
	}
	expr, err := seekexpr.Parse(tok)
	if err != nil {
		return seekexpr.Expr{}, "", err
	}
	return expr, rest, nil
}

// resolveWord matches a command word, accepting unambiguous prefixes.
func resolveWord(word string) (Kind, error) {
	if kind, ok := words[word]; ok {
		return kind, nil
	}
	match := ""
	for name := range words {
		if !strings.HasPrefix(name, word) {
			continue
		}
		switch {
		case match == "":
			match = name
		case strings.HasPrefix(name, match):
			// Longer sibling (readb after read); shorter wins.
		case strings.HasPrefix(match, name):
			match = name
		default:
			return 0, fmt.Errorf("%w: %q", ErrUnknown, word)
		}
	}
	if match == "" {
		return 0, fmt.Errorf("%w: %q", ErrUnknown, word)
	}
	return words[match], nil
}

// nextToken splits off the first whitespace-delimited token, returning
// it and the unconsumed remainder.
func nextToken(s string) (string, string) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	end := strings.IndexFunc(s, unicode.IsSpace)
	if end < 0 {
		return s, ""
	}
	return s[:end], s[end:]
}

// hexByte decodes one exactly-two-digit hex token, case-insensitively.
func hexByte(tok string) (byte, bool) {
	if len(tok) != 2 {
		return 0, false
	}
	hi, ok1 := hexDigit(tok[0])
	lo, ok2 := hexDigit(tok[1])
	if !ok1 || !ok2 {
		return 0, false
	}
	return hi<<4 | lo, true
}

func hexDigit(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
