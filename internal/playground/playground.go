// Package playground converts the text entered in the browser playground.
package playground

import (
	"context"
	"html"
	"strings"

	"github.com/theory/sqljalali/jalali/exec"
	"github.com/theory/sqljalali/jalali/types"
)

// Option bits accepted by Execute.
const (
	OptToJalali int = 1 << iota
	OptEndOfDay
	OptSilent
)

// null is printed for empty lines and values that fail to convert.
const null = "NULL"

// Execute converts each line of input and returns the HTML-escaped results
// one per line, with NULL for empty lines. With OptSilent, values that
// fail to convert also yield NULL; otherwise the first failure is
// returned as an error message.
func Execute(input string, opts int) string {
	lines := strings.Split(strings.TrimRight(input, "\n"), "\n")
	options := assembleOptions(opts)

	var (
		res []*string
		err error
	)
	if opts&OptToJalali == OptToJalali {
		res, err = toJalali(lines, opts&OptSilent == OptSilent, options)
	} else {
		res, err = toGregorian(lines, options)
	}
	if err != nil {
		return html.EscapeString("Error " + err.Error())
	}

	var buf strings.Builder
	for _, r := range res {
		if r == nil {
			buf.WriteString(null + "\n")
		} else {
			buf.WriteString(*r + "\n")
		}
	}
	return html.EscapeString(buf.String())
}

func toGregorian(lines []string, options []exec.Option) ([]*string, error) {
	src := make([]*string, len(lines))
	endOfDay := make([]*bool, len(lines))
	for i, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			src[i] = &line
		}
		endOfDay[i] = new(bool)
	}

	vals, err := exec.ToGregorian(context.Background(), src, endOfDay, options...)
	if err != nil {
		//nolint:wrapcheck // Okay to return unwrapped error
		return nil, err
	}

	res := make([]*string, len(vals))
	for i, ts := range vals {
		if ts != nil {
			str := ts.SQLString()
			res[i] = &str
		}
	}
	return res, nil
}

func toJalali(lines []string, silent bool, options []exec.Option) ([]*string, error) {
	src := make([]*types.Timestamp, len(lines))
	for i, line := range lines {
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		ts, err := types.ParseTimestamp(line)
		if err != nil {
			if silent {
				continue
			}
			//nolint:wrapcheck // Okay to return unwrapped error
			return nil, err
		}
		src[i] = ts
	}

	//nolint:wrapcheck // Okay to return unwrapped error
	return exec.ToJalali(context.Background(), src, options...)
}

func assembleOptions(opts int) []exec.Option {
	options := []exec.Option{}
	if opts&OptSilent == OptSilent {
		options = append(options, exec.WithSilent())
	}

	if opts&OptEndOfDay == OptEndOfDay {
		options = append(options, exec.WithEndOfDay())
	}

	return options
}
