// SPDX-License-Identifier: MIT

package finitediff

import "fmt"

// Scheme names a difference formula.
type Scheme int

const (
	SchemeForward Scheme = iota
	SchemeBackward
	SchemeCentral
	SchemeRichardson

	// NumSchemes is the number of schemes; arrays indexed by Scheme use it.
	NumSchemes
)

// Schemes lists every scheme in table order.
var Schemes = [NumSchemes]Scheme{SchemeForward, SchemeBackward, SchemeCentral, SchemeRichardson}

var schemeNames = [NumSchemes]string{"forward", "backward", "central", "richardson"}

// String returns the lower-case scheme name.
func (s Scheme) String() string {
	if s < 0 || s >= NumSchemes {
		return fmt.Sprintf("Scheme(%d)", int(s))
	}

	return schemeNames[s]
}

// Order returns the exponent p of the truncation error O(hᵖ).
func (s Scheme) Order() int {
	switch s {
	case SchemeForward, SchemeBackward:
		return 1
	case SchemeCentral:
		return 2
	case SchemeRichardson:
		return 4
	default:
		return 0
	}
}

// ParseScheme maps a name returned by String back to its Scheme.
func ParseScheme(name string) (Scheme, error) {
	for i, n := range schemeNames {
		if n == name {
			return Scheme(i), nil
		}
	}

	return 0, fmt.Errorf("%q: %w", name, ErrUnknownScheme)
}

// Derivative dispatches to the formula named by s.
func Derivative(s Scheme, f Func, x, h float64) (float64, error) {
	switch s {
	case SchemeForward:
		return Forward(f, x, h)
	case SchemeBackward:
		return Backward(f, x, h)
	case SchemeCentral:
		return Central(f, x, h)
	case SchemeRichardson:
		return Richardson(f, x, h)
	default:
		return 0, fmt.Errorf("Derivative: %v: %w", s, ErrUnknownScheme)
	}
}
