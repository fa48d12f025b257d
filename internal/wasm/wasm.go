// Package main converts a Jalali date in order to test WASM compilation.
package main

import (
	"fmt"

	"github.com/theory/sqljalali/jalali"
)

func main() {
	// Parse a Jalali date-time.
	dt := jalali.MustParse("1402-07-15 13:45:59")

	// Convert it to Gregorian and back.
	ts := dt.Gregorian(false)

	//nolint:forbidigo
	fmt.Printf("%v => %v => %v\n", dt, ts.SQLString(), jalali.ToJalali(ts.Time))
}
