package tov

import (
	"testing"

	"github.com/gonum/floats"
)

func TestSimplePolytropeRoundTrip(t *testing.T) {
	eos := NewSimplePolytrope()
	ρNuc := ToGeometric(NuclearDensity, Density)
	for _, mult := range []float64{0, 0.01, 0.5, 1, 2, 3, 10, 50} {
		ρ := mult * ρNuc
		back := eos.RestDensityOfPressure(eos.PressureOfRestDensity(ρ))
		if !floats.EqualWithinAbs(back, ρ, ρ*1e-9) {
			t.Fatalf("round trip of ρ=%g returned %g", ρ, back)
		}
	}
}

func TestSimplePolytropeAnchor(t *testing.T) {
	eos := NewSimplePolytrope()
	ρNuc := ToGeometric(NuclearDensity, Density)
	pNuc := ToGeometric(NuclearPressure, Pressure)
	p := eos.PressureOfRestDensity(ρNuc)
	if !floats.EqualWithinAbs(p, pNuc, pNuc*1e-12) {
		t.Fatalf("pressure at nuclear density is %g, expected %g", p, pNuc)
	}
	// The cubic law scales by a factor 8 when the density doubles.
	if !floats.EqualWithinAbs(eos.PressureOfRestDensity(2*ρNuc), 8*pNuc, 8*pNuc*1e-12) {
		t.Fatal("pressure law is not cubic")
	}
}

func TestSimplePolytropeMonotonic(t *testing.T) {
	eos := NewSimplePolytrope()
	ρNuc := ToGeometric(NuclearDensity, Density)
	prev := 0.0
	for mult := 0.1; mult < 20; mult += 0.1 {
		p := eos.PressureOfRestDensity(mult * ρNuc)
		if p <= prev {
			t.Fatalf("pressure not monotonically increasing at ρ=%g ρNuc", mult)
		}
		prev = p
	}
}

func TestSimplePolytropeEnergyDensity(t *testing.T) {
	eos := NewSimplePolytrope()
	ρNuc := ToGeometric(NuclearDensity, Density)
	for _, mult := range []float64{0.5, 1, 3, 8} {
		p := eos.PressureOfRestDensity(mult * ρNuc)
		ρRest := eos.RestDensityOfPressure(p)
		ε := eos.EnergyDensityOfPressure(p)
		// Internal energy term is p/2 for the cubic law.
		if !floats.EqualWithinAbs(ε, ρRest+p/2, ε*1e-12) {
			t.Fatalf("energy density at %g ρNuc is %g, expected %g", mult, ε, ρRest+p/2)
		}
		if ε < ρRest {
			t.Fatal("energy density must not be below rest density")
		}
	}
}

func TestSimplePolytropeTotalOnNonNegative(t *testing.T) {
	eos := NewSimplePolytrope()
	if eos.PressureOfRestDensity(0) != 0 || eos.RestDensityOfPressure(0) != 0 || eos.EnergyDensityOfPressure(0) != 0 {
		t.Fatal("EOS must vanish at zero")
	}
	// Negative inputs are clamped to vacuum, not NaN.
	if eos.RestDensityOfPressure(-1e-20) != 0 || eos.EnergyDensityOfPressure(-1e-20) != 0 {
		t.Fatal("negative pressure must behave as vacuum")
	}
}
