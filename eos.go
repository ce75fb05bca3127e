package tov

import "math"

/* Equations of state. An EOS closes the TOV system by relating pressure to
density. All inputs and outputs are in geometric units and the functions are
total on non-negative inputs. */

// EquationOfState defines the closure relation between pressure and density.
type EquationOfState interface {
	// PressureOfRestDensity returns the pressure at a given rest-mass
	// density. Monotonically increasing.
	PressureOfRestDensity(ρRest float64) float64
	// RestDensityOfPressure is the inverse of PressureOfRestDensity.
	RestDensityOfPressure(p float64) float64
	// EnergyDensityOfPressure returns the total energy density (rest mass
	// plus internal energy) at a given pressure.
	EnergyDensityOfPressure(p float64) float64
}

// SimplePolytrope is a single polytrope p = pNuc·(ρ/ρNuc)³ anchored at
// nuclear saturation density.
type SimplePolytrope struct {
	ρNuc float64 // anchor rest-mass density
	pNuc float64 // pressure at the anchor density
}

// NewSimplePolytrope returns a simple polytrope anchored at the nuclear
// saturation point (NuclearDensity, NuclearPressure).
func NewSimplePolytrope() SimplePolytrope {
	return SimplePolytrope{
		ρNuc: ToGeometric(NuclearDensity, Density),
		pNuc: ToGeometric(NuclearPressure, Pressure),
	}
}

// PressureOfRestDensity implements the EquationOfState interface.
func (eos SimplePolytrope) PressureOfRestDensity(ρRest float64) float64 {
	if ρRest <= 0 {
		return 0
	}
	x := ρRest / eos.ρNuc
	return eos.pNuc * x * x * x
}

// RestDensityOfPressure implements the EquationOfState interface.
func (eos SimplePolytrope) RestDensityOfPressure(p float64) float64 {
	if p <= 0 {
		return 0
	}
	return eos.ρNuc * math.Cbrt(p/eos.pNuc)
}

// EnergyDensityOfPressure implements the EquationOfState interface. The
// internal energy term is p/2, matching the cubic pressure law.
func (eos SimplePolytrope) EnergyDensityOfPressure(p float64) float64 {
	if p <= 0 {
		return 0
	}
	return eos.RestDensityOfPressure(p) + p/2
}
