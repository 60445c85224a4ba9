package xmlconv

import (
	"math"
	"regexp"
	"strconv"
)

// Patterns for scalar inference
var (
	// leadingZeroRegex matches all-digit text with a leading zero and at
	// least two digits, e.g. `007` or `0044951` but not `0` or `0.42`.
	leadingZeroRegex = regexp.MustCompile(`^0\d+$`)
	// integerRegex matches plain base-10 integers with an optional leading
	// minus. No `+` sign, no separators, no exponent.
	integerRegex = regexp.MustCompile(`^-?\d+$`)
)

// inferScalar converts raw text into a typed JSON scalar under the given
// type policy. It is a pure function: same inputs always yield the same
// scalar kind and value.
//
// Under TypeInfer the checks run in a fixed order — leading-zero string,
// integer, float, bool, string — and a value must fail every earlier check
// to reach a later one. Only plain decimal-point number formats are
// recognized; no locale-specific separators.
func inferScalar(text string, policy TypePolicy, cfg *Config) JSONValue {
	switch policy.Kind {
	case TypeString:
		// string regardless of the underlying type
		return text
	case TypeBool:
		for _, literal := range policy.TrueValues {
			if text == literal {
				return true
			}
		}
		return false
	}

	// texts like `0001` are kept verbatim when requested; `0` on its own is
	// still the number 0
	if cfg.LeadingZeroAsString && leadingZeroRegex.MatchString(text) {
		return text
	}

	// ints
	if integerRegex.MatchString(text) {
		if v, err := strconv.ParseInt(text, 10, 64); err == nil {
			return v
		}
		// out of int64 range, fall through to the float attempt
	}

	// floats; NaN and infinities have no JSON representation
	if v, err := strconv.ParseFloat(text, 64); err == nil {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			return v
		}
	}

	// booleans
	if text == "true" {
		return true
	}
	if text == "false" {
		return false
	}

	return text
}
