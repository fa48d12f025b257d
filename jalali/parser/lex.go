package parser

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	fieldSep = ' '
	dateSep  = '-'
	timeSep  = ':'
)

// split splits src into the fields separated by sep. Empty fields are kept,
// except that a single trailing empty field is dropped, so "10:30:" has two
// fields and "" has none.
func split(src string, sep byte) []string {
	if src == "" {
		return nil
	}

	fields := make([]string, 0, 3)
	for {
		i := strings.IndexByte(src, sep)
		if i < 0 {
			break
		}
		fields = append(fields, src[:i])
		src = src[i+1:]
	}

	if src != "" {
		fields = append(fields, src)
	}
	return fields
}

// lexer turns the fields of a Jalali date or time string into integers,
// recording the first error it hits.
type lexer struct {
	src string
	err error
}

// int parses field as a base 10 integer. name identifies the field in error
// messages. Returns 0 once an error has been recorded.
func (l *lexer) int(field, name string) int {
	if l.err != nil {
		return 0
	}

	n, err := strconv.Atoi(field)
	if err != nil {
		l.err = fmt.Errorf("%w: invalid %v %q in %q: %w", ErrParse, name, field, l.src, err)
		return 0
	}
	return n
}
