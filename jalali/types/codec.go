package types

import (
	"fmt"
	"time"
)

// marshalJSON formats t with layout as a JSON string.
func marshalJSON(t time.Time, layout string) []byte {
	b := make([]byte, 0, len(layout)+len(`""`))
	b = append(b, '"')
	b = t.AppendFormat(b, layout)
	return append(b, '"')
}

// unmarshalJSON parses the JSON string data with layout.
func unmarshalJSON(data []byte, layout string) (time.Time, error) {
	src := string(data)
	if len(src) < 2 || src[0] != '"' || src[len(src)-1] != '"' {
		return time.Time{}, fmt.Errorf("%w: cannot parse %s as a JSON string", ErrSQLType, data)
	}

	t, err := time.Parse(layout, src[1:len(src)-1])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: cannot parse %s as %q", ErrSQLType, data, layout)
	}
	return t, nil
}
