// Package sqlite registers the Jalali conversions as SQL functions with the
// pure Go [modernc.org/sqlite] database/sql driver:
//
//	jalali_to_gregorian(date_time text, end_of_day boolean) → text
//	gregorian_to_jalali(timestamp) → text
//
// Functions are registered with the driver, not a connection, and are
// available to every database opened with [DriverName] after [Register]
// returns. Both functions are deterministic and return NULL when any
// argument is NULL.
package sqlite

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"slices"
	"sync"
	"unicode/utf8"

	"github.com/smasher164/xid"
	"golang.org/x/exp/maps"
	modernc "modernc.org/sqlite"
)

const (
	// DriverName is the database/sql driver name the functions are
	// registered with.
	DriverName = "sqlite"

	// JalaliToGregorian is the default name of the Jalali to Gregorian
	// function.
	JalaliToGregorian = "jalali_to_gregorian"

	// GregorianToJalali is the default name of the Gregorian to Jalali
	// function.
	GregorianToJalali = "gregorian_to_jalali"
)

// ErrRegister errors are returned when functions cannot be registered.
var ErrRegister = errors.New("register")

// registrar holds the function names to register.
type registrar struct {
	j2g string
	g2j string
}

// Option specifies a registration option.
type Option func(*registrar)

// WithNames registers the functions as j2g and g2j instead of
// jalali_to_gregorian and gregorian_to_jalali. Names must be identifiers.
func WithNames(j2g, g2j string) Option {
	return func(r *registrar) { r.j2g, r.g2j = j2g, g2j }
}

// function describes a scalar function implementation.
type function struct {
	nArg  int32
	xFunc func(*modernc.FunctionContext, []driver.Value) (driver.Value, error)
}

// registry records the functions registered with the driver, which cannot
// be unregistered or registered twice.
//
//nolint:gochecknoglobals
var registry = struct {
	sync.Mutex
	funcs map[string]*function
}{funcs: map[string]*function{}}

//nolint:gochecknoglobals
var (
	j2gFunc = &function{nArg: 2, xFunc: jalaliToGregorian}
	g2jFunc = &function{nArg: 1, xFunc: gregorianToJalali}
)

// Register registers the Jalali conversion functions with the sqlite driver.
// Registering the same function under the same name again is a no-op.
// Returns an [ErrRegister] error if a name is not a valid identifier or is
// already taken by a different function.
func Register(opt ...Option) error {
	reg := &registrar{j2g: JalaliToGregorian, g2j: GregorianToJalali}
	for _, o := range opt {
		o(reg)
	}

	for _, name := range []string{reg.j2g, reg.g2j} {
		if !IsIdentifier(name) {
			return fmt.Errorf("%w: invalid function name %q", ErrRegister, name)
		}
	}
	if reg.j2g == reg.g2j {
		return fmt.Errorf("%w: duplicate function name %q", ErrRegister, reg.j2g)
	}

	registry.Lock()
	defer registry.Unlock()

	todo := map[string]*function{reg.j2g: j2gFunc, reg.g2j: g2jFunc}
	for _, name := range sortedKeys(todo) {
		have, ok := registry.funcs[name]
		switch {
		case !ok:
			continue
		case have != todo[name]:
			return fmt.Errorf("%w: function %q already registered", ErrRegister, name)
		default:
			delete(todo, name)
		}
	}

	for _, name := range sortedKeys(todo) {
		fn := todo[name]
		if err := modernc.RegisterDeterministicScalarFunction(name, fn.nArg, fn.xFunc); err != nil {
			return fmt.Errorf("%w: %w", ErrRegister, err)
		}
		registry.funcs[name] = fn
	}

	return nil
}

// Functions returns the names of the registered functions in sorted order.
func Functions() []string {
	registry.Lock()
	defer registry.Unlock()
	return sortedKeys(registry.funcs)
}

// Open registers the functions and opens and pings the database identified
// by dsn. Pass ":memory:" for a private in-memory database. Options are
// passed to [Register].
func Open(ctx context.Context, dsn string, opt ...Option) (*sql.DB, error) {
	if err := Register(opt...); err != nil {
		return nil, err
	}

	db, err := sql.Open(DriverName, dsn)
	if err != nil {
		//nolint:wrapcheck // Okay to return unwrapped error
		return nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		//nolint:wrapcheck // Okay to return unwrapped error
		return nil, err
	}
	return db, nil
}

// IsIdentifier returns true if name is a Unicode identifier: an XID_Start
// character or underscore followed by XID_Continue characters.
func IsIdentifier(name string) bool {
	if name == "" {
		return false
	}

	for i, r := range name {
		switch {
		case r == utf8.RuneError:
			return false
		case i == 0:
			if r != '_' && !xid.Start(r) {
				return false
			}
		case !xid.Continue(r):
			return false
		}
	}
	return true
}

func sortedKeys[V any](m map[string]V) []string {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}
