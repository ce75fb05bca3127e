package tov

import (
	kitlog "github.com/go-kit/kit/log"
)

// CentralDensitySample is one point of the mass–radius relation: the central
// rest-mass density that seeded the star and the resulting mass and radius,
// all in geometric units.
type CentralDensitySample struct {
	RhoCentral float64
	Mass       float64
	Radius     float64
}

// MassRadiusCurve is one sweep of central densities, strictly increasing in
// RhoCentral by construction. Immutable once returned.
type MassRadiusCurve []CentralDensitySample

// MassRadiusSampler sweeps the central density of an EOS to produce its
// mass–radius relation.
type MassRadiusSampler struct {
	EOS    EquationOfState
	Step   float64 // reporting step handed to each integration
	logger kitlog.Logger
}

// NewMassRadiusSampler returns a sampler for the given EOS. A nil logger
// silences progress reporting.
func NewMassRadiusSampler(eos EquationOfState, step float64, logger kitlog.Logger) *MassRadiusSampler {
	if logger == nil {
		logger = kitlog.NewNopLogger()
	}
	return &MassRadiusSampler{EOS: eos, Step: step, logger: logger}
}

// Sample integrates one star per central density, starting at ρStart and
// multiplying by (1+logStep) while below ρStop. A ρStop at or below ρStart
// yields an empty curve. Stars whose integration did not reach the surface
// are logged and excluded; the sweep continues.
//
// With stopAtMaxMass set, the sweep ends as soon as a star is less massive
// than its predecessor on the curve, before recording it: the curve then
// ends at the maximum-mass configuration, approximating the stability
// boundary. The rule needs a prior point, so it can never trigger on the
// first sample.
func (s *MassRadiusSampler) Sample(ρStart, logStep, ρStop float64, stopAtMaxMass bool) MassRadiusCurve {
	curve := MassRadiusCurve{}
	if logStep <= 0 {
		s.logger.Log("level", "critical", "subsys", "sampler", "message", "non-positive log step, nothing to sweep")
		return curve
	}
	for ρc := ρStart; ρc < ρStop; ρc *= 1 + logStep {
		pCentral := s.EOS.PressureOfRestDensity(ρc)
		profile, err := Integrate(pCentral, s.EOS, s.Step)
		if err != nil {
			s.logger.Log("level", "warning", "subsys", "sampler", "ρc", ρc, "err", err)
			continue
		}
		if !profile.Complete {
			s.logger.Log("level", "warning", "subsys", "sampler", "status", "non-convergent", "ρc", ρc)
			continue
		}
		if stopAtMaxMass && len(curve) > 0 && profile.Mass < curve[len(curve)-1].Mass {
			s.logger.Log("level", "info", "subsys", "sampler", "status", "past maximum mass", "ρc", ρc)
			break
		}
		curve = append(curve, CentralDensitySample{RhoCentral: ρc, Mass: profile.Mass, Radius: profile.Radius})
		s.logger.Log("level", "info", "subsys", "sampler",
			"ρc(kg/m³)", FromGeometric(ρc, Density),
			"M(Msun)", FromGeometric(profile.Mass, Mass)/SolarMass,
			"R(km)", profile.Radius/1e3)
	}
	return curve
}

// SampleMassRadius is a convenience wrapper running an unlogged sweep with
// the given reporting step.
func SampleMassRadius(eos EquationOfState, step, ρStart, logStep, ρStop float64, stopAtMaxMass bool) MassRadiusCurve {
	return NewMassRadiusSampler(eos, step, nil).Sample(ρStart, logStep, ρStop, stopAtMaxMass)
}
