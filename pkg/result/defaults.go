package result

import (
	"math/big"
	"net/url"
	"reflect"
	"regexp"
	"time"

	"github.com/google/uuid"
)

// UnwrapOrDefault returns the canonical default value for T: numeric zero,
// empty string, false, zero duration, zero time, zero big integer, empty
// pattern, empty URL, nil UUID, or an empty slice/map. The supported set is
// a closed whitelist; for any other T it panics with *UnsupportedDefaultError
// rather than fabricating a value.
func (r Result[T, E]) UnwrapOrDefault() T {
	def, ok := defaultValue[T]()
	if !ok {
		panic(&UnsupportedDefaultError{TypeName: reflect.TypeFor[T]().String()})
	}
	return def
}

// defaultValue resolves T against the whitelist. Scalars and well-known
// types dispatch through a type switch; slices and maps resolve through a
// kind check because Go cannot name []U or map[K]V for every element type in
// a type switch. No other kinds are admitted.
func defaultValue[T any]() (T, bool) {
	var zero T

	switch any(zero).(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64, complex64, complex128,
		string, bool:
		return zero, true
	case time.Duration:
		return zero, true
	case time.Time:
		return zero, true
	case *big.Int:
		return any(big.NewInt(0)).(T), true
	case *regexp.Regexp:
		return any(regexp.MustCompile("")).(T), true
	case *url.URL:
		return any(&url.URL{}).(T), true
	case uuid.UUID:
		return any(uuid.Nil).(T), true
	}

	rt := reflect.TypeFor[T]()
	switch rt.Kind() {
	case reflect.Slice:
		return reflect.MakeSlice(rt, 0, 0).Interface().(T), true
	case reflect.Map:
		return reflect.MakeMap(rt).Interface().(T), true
	}

	return zero, false
}
