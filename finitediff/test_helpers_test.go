// SPDX-License-Identifier: MIT

package finitediff_test

import "math"

// thermistor is R(T) = R0·exp(β(1/T − 1/T0)) with R0 = 5000 Ω, β = 3500 K, T0 = 298 K.
func thermistor(t float64) float64 {
	return 5000 * math.Exp(3500*(1/t-1.0/298))
}

// thermistorSlope is the exact dR/dT = R(T)·(−β/T²).
func thermistorSlope(t float64) float64 {
	return thermistor(t) * (-3500 / (t * t))
}

// zeroSlope is an exact derivative that vanishes everywhere.
func zeroSlope(float64) float64 { return 0 }

func expSlope(x float64) float64 { return math.Exp(x) }
