package tov

import (
	"math"
	"testing"

	"github.com/gonum/floats"
)

func TestIntegrateSimplePolytropeStar(t *testing.T) {
	eos := NewSimplePolytrope()
	ρNuc := ToGeometric(NuclearDensity, Density)
	pCentral := eos.PressureOfRestDensity(3 * ρNuc)
	profile, err := Integrate(pCentral, eos, 10)
	if err != nil {
		t.Fatalf("integration failed: %s", err)
	}
	if !profile.Complete {
		t.Fatal("the surface must be reached for this star")
	}
	first := profile.States[0]
	if first.R != 0 || first.M != 0 || first.P != pCentral {
		t.Fatalf("invalid central state %+v", first)
	}
	last := profile.States[len(profile.States)-1]
	if last.P > 0 {
		t.Fatalf("pressure at the surface must be ≤ 0, got %g", last.P)
	}
	// Sanity bounds from neutron-star phenomenology.
	radiusKm := profile.Radius / 1e3
	massMsun := FromGeometric(profile.Mass, Mass) / SolarMass
	if radiusKm < 8 || radiusKm > 15 {
		t.Fatalf("radius %f km outside the expected 8–15 km", radiusKm)
	}
	if massMsun < 0.2 || massMsun > 2.8 {
		t.Fatalf("mass %f Msun outside the expected 0.2–2.8 Msun", massMsun)
	}
	if math.IsInf(profile.Radius, 0) || math.IsInf(profile.Mass, 0) {
		t.Fatal("radius and mass must be finite")
	}
}

func TestIntegrateMonotonicity(t *testing.T) {
	eos := NewSimplePolytrope()
	pCentral := eos.PressureOfRestDensity(3 * ToGeometric(NuclearDensity, Density))
	profile, err := Integrate(pCentral, eos, 10)
	if err != nil {
		t.Fatalf("integration failed: %s", err)
	}
	for i := 1; i < len(profile.States); i++ {
		prev, cur := profile.States[i-1], profile.States[i]
		if cur.R <= prev.R {
			t.Fatalf("radius must strictly increase, state %d", i)
		}
		if cur.P > prev.P {
			t.Fatalf("pressure must not increase outward, state %d", i)
		}
		if cur.M < prev.M {
			t.Fatalf("enclosed mass must not decrease, state %d", i)
		}
	}
}

func TestIntegratePiecewiseStar(t *testing.T) {
	eos, err := NewCatalogEOS("SLy")
	if err != nil {
		t.Fatalf("could not build SLy: %s", err)
	}
	pCentral := eos.PressureOfRestDensity(5 * ToGeometric(NuclearDensity, Density))
	profile, err := Integrate(pCentral, eos, 10)
	if err != nil {
		t.Fatalf("integration failed: %s", err)
	}
	if !profile.Complete {
		t.Fatal("the surface must be reached for this star")
	}
	radiusKm := profile.Radius / 1e3
	massMsun := FromGeometric(profile.Mass, Mass) / SolarMass
	if radiusKm < 9 || radiusKm > 13 {
		t.Fatalf("SLy radius %f km outside the expected 9–13 km", radiusKm)
	}
	if massMsun < 1.2 || massMsun > 2.3 {
		t.Fatalf("SLy mass %f Msun outside the expected 1.2–2.3 Msun", massMsun)
	}
}

// pressureTailEOS carries no rest mass, so the pressure only decays
// asymptotically (1/p grows as 2πr²) and never vanishes: no surface exists
// and integration cannot complete.
type pressureTailEOS struct {
	calls int
}

func (e *pressureTailEOS) PressureOfRestDensity(ρRest float64) float64 {
	e.calls++
	return 1e-12
}

func (e *pressureTailEOS) RestDensityOfPressure(p float64) float64 { return 0 }

func (e *pressureTailEOS) EnergyDensityOfPressure(p float64) float64 { return 0 }

func TestIntegrateNonConvergence(t *testing.T) {
	eos := &pressureTailEOS{}
	profile, err := Integrate(1e-12, eos, 1e4)
	if err != nil {
		t.Fatalf("non-convergence must not be an error: %s", err)
	}
	if profile.Complete {
		t.Fatal("a star without a surface must be reported incomplete")
	}
	if len(profile.States) < 2 {
		t.Fatal("the partial profile accumulated so far must be returned")
	}
	last := profile.States[len(profile.States)-1]
	if last.P <= 0 {
		t.Fatalf("the pressure never vanishes for this EOS, got %g", last.P)
	}
	if profile.Radius < maxStarRadius {
		t.Fatalf("integration must run to the hard radius limit, stopped at %g m", profile.Radius)
	}
}

func TestIntegrateDegenerateCentralDensity(t *testing.T) {
	eos := NewSimplePolytrope()
	if _, err := Integrate(0, eos, 10); err != ErrDegenerateCentralDensity {
		t.Fatalf("expected ErrDegenerateCentralDensity, got %v", err)
	}
	if _, err := Integrate(-1e-12, eos, 10); err != ErrDegenerateCentralDensity {
		t.Fatalf("expected ErrDegenerateCentralDensity, got %v", err)
	}
}

func TestIntegrateInvalidStep(t *testing.T) {
	eos := NewSimplePolytrope()
	pCentral := eos.PressureOfRestDensity(3 * ToGeometric(NuclearDensity, Density))
	if _, err := Integrate(pCentral, eos, 0); err == nil {
		t.Fatal("expected an error for a zero reporting step")
	}
}

func TestIntegrateRK4CrossCheck(t *testing.T) {
	eos := NewSimplePolytrope()
	pCentral := eos.PressureOfRestDensity(3 * ToGeometric(NuclearDensity, Density))
	adaptive, err := Integrate(pCentral, eos, 10)
	if err != nil {
		t.Fatalf("adaptive integration failed: %s", err)
	}
	fixed, err := IntegrateRK4(pCentral, eos, 5)
	if err != nil {
		t.Fatalf("RK4 integration failed: %s", err)
	}
	if !fixed.Complete {
		t.Fatal("RK4 must reach the surface")
	}
	// Surface capture is quantized by each reporting step, so the radii may
	// differ by up to one step of either run.
	if !floats.EqualWithinAbs(adaptive.Radius, fixed.Radius, 100) {
		t.Fatalf("radii disagree: %f vs %f m", adaptive.Radius, fixed.Radius)
	}
	if !floats.EqualWithinAbs(adaptive.Mass, fixed.Mass, adaptive.Mass*0.01) {
		t.Fatalf("masses disagree: %g vs %g", adaptive.Mass, fixed.Mass)
	}
}

func TestIntegrateRK4Degenerate(t *testing.T) {
	if _, err := IntegrateRK4(0, NewSimplePolytrope(), 5); err != ErrDegenerateCentralDensity {
		t.Fatalf("expected ErrDegenerateCentralDensity, got %v", err)
	}
}
