package tov

import (
	"fmt"
	"math"

	"github.com/gonum/floats"
)

// polytropeSegment is one density interval of a piecewise polytrope, closed
// at its lower bound and open at its upper bound.
type polytropeSegment struct {
	ρLow float64 // lower rest-density bound (0 for the innermost crust)
	pLow float64 // pressure at ρLow under this segment's law
	K    float64 // multiplicative constant of p = K·ρ^Γ
	Γ    float64 // adiabatic index
	C    float64 // energy-density integration constant
}

// PiecewisePolytrope is a four-segment polytropic EOS: a crust segment below
// ρ0 and three core segments divided at ρ1 and ρ2. The constant of each
// segment is derived from its lower neighbor, so pressure, rest density and
// energy density are continuous at every boundary by construction.
type PiecewisePolytrope struct {
	segments [4]polytropeSegment
}

// NewPiecewisePolytrope builds a piecewise polytrope from its dividing
// rest densities ρ0 < ρ1 < ρ2, the anchor pressure p1 at ρ1, and the four
// adiabatic indices (Γ0 crust, Γ1..Γ3 core). All arguments are in geometric
// units. Construction fails fast on non-increasing boundaries, a
// non-positive anchor, or any Γ ≤ 0 or Γ = 1 (the energy-density constant
// divides by Γ−1).
func NewPiecewisePolytrope(ρ0, ρ1, ρ2, p1, Γ0, Γ1, Γ2, Γ3 float64) (*PiecewisePolytrope, error) {
	if !(0 < ρ0 && ρ0 < ρ1 && ρ1 < ρ2) {
		return nil, fmt.Errorf("tov: segment boundaries must be strictly increasing and positive (got %g, %g, %g)", ρ0, ρ1, ρ2)
	}
	if p1 <= 0 {
		return nil, fmt.Errorf("tov: anchor pressure must be positive (got %g)", p1)
	}
	Γ := [4]float64{Γ0, Γ1, Γ2, Γ3}
	for i, g := range Γ {
		if g <= 0 {
			return nil, fmt.Errorf("tov: Γ%d must be positive (got %g)", i, g)
		}
		if floats.EqualWithinAbs(g, 1, 1e-12) {
			return nil, fmt.Errorf("tov: Γ%d may not be 1", i)
		}
	}

	// Chain the polytropic constants outward from the anchor so that the
	// pressure law is continuous at ρ0, ρ1 and ρ2.
	K1 := p1 / math.Pow(ρ1, Γ1)
	K0 := K1 * math.Pow(ρ0, Γ1-Γ0)
	K2 := K1 * math.Pow(ρ1, Γ1-Γ2)
	K3 := K2 * math.Pow(ρ2, Γ2-Γ3)
	K := [4]float64{K0, K1, K2, K3}
	ρBounds := [3]float64{ρ0, ρ1, ρ2}

	eos := &PiecewisePolytrope{}
	for i := range eos.segments {
		seg := &eos.segments[i]
		seg.K = K[i]
		seg.Γ = Γ[i]
		if i > 0 {
			seg.ρLow = ρBounds[i-1]
			seg.pLow = seg.K * math.Pow(seg.ρLow, seg.Γ)
		}
	}
	// Chain the energy-density constants across the boundaries.
	eos.segments[0].C = 1
	for i := 0; i < 3; i++ {
		ρb := ρBounds[i]
		pb := eos.segments[i+1].pLow
		eos.segments[i+1].C = eos.segments[i].C + (pb/ρb)*(1/(Γ[i]-1)-1/(Γ[i+1]-1))
	}
	return eos, nil
}

// segmentOfDensity returns the segment whose density interval contains ρ.
func (eos *PiecewisePolytrope) segmentOfDensity(ρ float64) *polytropeSegment {
	for i := len(eos.segments) - 1; i > 0; i-- {
		if ρ >= eos.segments[i].ρLow {
			return &eos.segments[i]
		}
	}
	return &eos.segments[0]
}

// segmentOfPressure returns the segment whose pressure interval contains p.
// Pressure is monotonic in density, so the boundary pressures order the
// segments the same way the boundary densities do.
func (eos *PiecewisePolytrope) segmentOfPressure(p float64) *polytropeSegment {
	for i := len(eos.segments) - 1; i > 0; i-- {
		if p >= eos.segments[i].pLow {
			return &eos.segments[i]
		}
	}
	return &eos.segments[0]
}

// PressureOfRestDensity implements the EquationOfState interface.
func (eos *PiecewisePolytrope) PressureOfRestDensity(ρRest float64) float64 {
	if ρRest <= 0 {
		return 0
	}
	seg := eos.segmentOfDensity(ρRest)
	return seg.K * math.Pow(ρRest, seg.Γ)
}

// RestDensityOfPressure implements the EquationOfState interface.
func (eos *PiecewisePolytrope) RestDensityOfPressure(p float64) float64 {
	if p <= 0 {
		return 0
	}
	seg := eos.segmentOfPressure(p)
	return math.Pow(p/seg.K, 1/seg.Γ)
}

// EnergyDensityOfPressure implements the EquationOfState interface. Each
// segment carries an integration constant C so that the energy density is
// continuous across the segment boundaries.
func (eos *PiecewisePolytrope) EnergyDensityOfPressure(p float64) float64 {
	if p <= 0 {
		return 0
	}
	seg := eos.segmentOfPressure(p)
	return seg.C*math.Pow(p/seg.K, 1/seg.Γ) + p/(seg.Γ-1)
}
