package resolve

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Pattern translation errors.
var (
	// ErrRegexPattern is returned for regular expression routes, which are
	// matched by the framework directly and have no chi equivalent.
	ErrRegexPattern = errors.New("regular expression patterns are not supported")

	// ErrUnknownConverter is returned for a path converter other than
	// str, int, slug, uuid and path.
	ErrUnknownConverter = errors.New("unknown path converter")

	// ErrPathNotLast is returned when a <path:...> segment is followed by more pattern text.
	ErrPathNotLast = errors.New("path converter must end the pattern")

	// ErrReservedCharacter is returned when literal pattern text contains a
	// character chi treats as syntax.
	ErrReservedCharacter = errors.New("pattern contains a reserved character")
)

// wildcardKey is the URL param key chi uses for a trailing "*".
const wildcardKey = "*"

// paramPattern matches "<name>" and "<converter:name>".
var paramPattern = regexp.MustCompile(`<(?:(\w+):)?(\w+)>`)

// converters maps path converters to chi regular expressions.
// An empty expression means chi's default single segment match.
var converters = map[string]string{
	"str":  "",
	"int":  "[0-9]+",
	"slug": "[-a-zA-Z0-9_]+",
	"uuid": "[0-9a-fA-F-]+",
}

// chiPattern is a translated route pattern.
type chiPattern struct {
	// pattern is the chi routing pattern.
	pattern string

	// wildcard is the name of a trailing <path:...> parameter, if any.
	wildcard string
}

// translate converts a framework path pattern into a chi pattern.
func translate(pattern string) (chiPattern, error) {
	// Regular expression routes may sit below a plain include prefix.
	if strings.ContainsAny(pattern, "^$") {
		return chiPattern{}, ErrRegexPattern
	}

	var (
		out      strings.Builder
		wildcard string
		last     int
	)
	out.WriteByte('/')

	for _, loc := range paramPattern.FindAllStringSubmatchIndex(pattern, -1) {
		literal := pattern[last:loc[0]]
		if strings.ContainsAny(literal, "{}*") {
			return chiPattern{}, fmt.Errorf("%w: %q", ErrReservedCharacter, literal)
		}
		out.WriteString(literal)
		last = loc[1]

		conv := "str"
		if loc[2] >= 0 {
			conv = pattern[loc[2]:loc[3]]
		}
		name := pattern[loc[4]:loc[5]]

		if conv == "path" {
			if loc[1] != len(pattern) {
				return chiPattern{}, fmt.Errorf("%w: %q", ErrPathNotLast, pattern)
			}
			out.WriteString("*")
			wildcard = name
			continue
		}

		expr, ok := converters[conv]
		if !ok {
			return chiPattern{}, fmt.Errorf("%w: %q", ErrUnknownConverter, conv)
		}
		if expr == "" {
			out.WriteString("{" + name + "}")
		} else {
			out.WriteString("{" + name + ":" + expr + "}")
		}
	}

	rest := pattern[last:]
	if strings.ContainsAny(rest, "{}*") {
		return chiPattern{}, fmt.Errorf("%w: %q", ErrReservedCharacter, rest)
	}
	out.WriteString(rest)

	return chiPattern{pattern: out.String(), wildcard: wildcard}, nil
}
