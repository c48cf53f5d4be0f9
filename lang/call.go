package lang

import (
	"log/slog"
	"strconv"
	"strings"
	"unicode"
)

// call parser states.
const (
	callStart = iota
	callName
	callArgs
)

// parseCall parses the body of a call site (the text between "{{" and
// "}}") into a function name and its argument values.
//
// The function name is a run of alphanumeric characters terminated by
// '('. Arguments are separated by ',' and closed by ')'. Two quoting
// toggles are tracked independently: '"' outside a path literal toggles
// string-literal mode, '#' outside a string literal toggles path-literal
// mode. While either mode is active, ',' and ')' are literal content, so
// string and path arguments may contain both.
//
// A body that never reaches ')' yields whatever arguments were already
// closed; the function name may be empty if '(' was never seen.
func parseCall(body string) (string, []Value, error) {
	var (
		function  string
		arguments []Value
		buf       []rune

		inPath   bool
		inString bool

		state = callStart
	)

	runes := []rune(body)

scan:
	for i := 0; i < len(runes); i++ {
		c := runes[i]

		switch state {
		case callStart:
			if !unicode.IsSpace(c) {
				state = callName
				i--
			}

		case callName:
			switch {
			case unicode.IsLetter(c) || unicode.IsDigit(c):
				buf = append(buf, c)
			case unicode.IsSpace(c):
				// Whitespace around the name is ignored.
			case c == '(':
				function = string(buf)
				buf = buf[:0]
				state = callArgs
			default:
				return "", nil, ErrInvalidSymbol.
					With(slog.String("symbol", string(c)))
			}

		case callArgs:
			if c == '"' && !inPath {
				inString = !inString
			}

			if c == '#' && !inString {
				inPath = !inPath
			}

			switch {
			case inPath || inString:
				buf = append(buf, c)

			case c == ')':
				// A ')' on an empty buffer with no prior arguments is a
				// zero-argument call, not an empty argument.
				if len(arguments) == 0 && strings.TrimSpace(string(buf)) == "" {
					break scan
				}

				value, err := parseArg(string(buf))
				if err != nil {
					return "", nil, err
				}

				arguments = append(arguments, value)

				break scan

			case c == ',':
				value, err := parseArg(string(buf))
				if err != nil {
					return "", nil, err
				}

				arguments = append(arguments, value)
				buf = buf[:0]

			default:
				buf = append(buf, c)
			}
		}
	}

	return function, arguments, nil
}

// parseArg trims and classifies one argument buffer by its first
// character: #...# is a path literal, "..." is a string literal, and
// anything else must parse as a signed decimal integer.
func parseArg(buf string) (Value, error) {
	a := strings.TrimSpace(buf)
	if a == "" {
		return Value{}, ErrEmptyArgument
	}

	switch a[0] {
	case '#':
		if len(a) < 2 || !strings.HasSuffix(a, "#") {
			return Value{}, ErrUnclosedLiteral.
				With(slog.String("argument", a))
		}

		return NewPath(a[1 : len(a)-1]), nil

	case '"':
		if len(a) < 2 || !strings.HasSuffix(a, `"`) {
			return Value{}, ErrUnclosedLiteral.
				With(slog.String("argument", a))
		}

		return NewString(a[1 : len(a)-1]), nil

	default:
		n, err := strconv.ParseInt(a, 10, 64)
		if err != nil {
			return Value{}, ErrInvalidInteger.
				With(slog.String("argument", a)).
				Wrap(err)
		}

		return NewNumber(n), nil
	}
}
