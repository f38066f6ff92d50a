package fault

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Property: converting a native error and re-materializing it yields the
// same error value.
func TestPropertyNativeRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("Convert then Native returns the original", prop.ForAll(
		func(msg string) bool {
			err := errors.New(msg)
			e := Convert(err)
			return e.Native() == err && e.Kind() == KindException
		},
		gen.AnyString(),
	))

	properties.Property("empty messages default to Unknown error", prop.ForAll(
		func(msg string) bool {
			e := New(msg)
			if msg == "" {
				return e.Message() == "Unknown error"
			}
			return e.Message() == msg
		},
		gen.AnyString(),
	))

	properties.Property("Convert is identity on faults", prop.ForAll(
		func(param string) bool {
			e := ArgumentNull(param)
			return Convert(e) == e && e.ParamName() == param
		},
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}

// Property: out-of-range failures are never down-classified to a plain
// argument error.
func TestPropertyOutOfRangePrecedence(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("overflowing parse is ArgumentOutOfRange", prop.ForAll(
		func(n int64) bool {
			input := strconv.FormatInt(n, 10) + "0000000000000000000000"
			_, err := strconv.ParseInt(input, 10, 64)
			e := Convert(err)
			return e.Kind() == KindArgumentOutOfRange && e.ActualValue() == input
		},
		gen.Int64Range(1, math.MaxInt64),
	))

	properties.Property("malformed parse is Argument", prop.ForAll(
		func(s string) bool {
			_, err := strconv.ParseInt("x"+s, 10, 64)
			return Convert(err).Kind() == KindArgument
		},
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}
