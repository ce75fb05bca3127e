package tov

import (
	"errors"
	"fmt"

	"github.com/ready-steady/ode/dopri"
)

// StarState is one point of the radial structure in geometric units:
// radial coordinate, pressure and enclosed mass.
type StarState struct {
	R float64
	P float64
	M float64
}

// StarProfile is the radial structure of one star, ordered from the center
// to the last integrated state. Immutable once returned.
type StarProfile struct {
	States []StarState
	Radius float64 // radius of the last state
	Mass   float64 // enclosed mass of the last state
	// Complete reports whether the surface was reached (pressure ≤ 0).
	// When false the solver failed mid-star and the profile is partial;
	// such stars must be excluded from aggregate results.
	Complete bool
}

type stepStatus uint8

const (
	stepContinue stepStatus = iota + 1
	stepSurfaceReached
	stepFailed
)

// stepResult pairs the state after one reporting step with the driver's
// decision for the next iteration.
type stepResult struct {
	state  StarState
	status stepStatus
}

// ErrDegenerateCentralDensity is returned when the central pressure is not
// positive, which makes the structure problem ill-posed.
var ErrDegenerateCentralDensity = errors.New("tov: central pressure must be positive")

// Integrate solves the TOV system from the center outward until the pressure
// drops to zero, advancing the radius by the given reporting step. The
// integration within each reporting step uses an adaptive Dormand–Prince
// solver; the reporting step only sets the sampling granularity of the
// returned profile.
//
// The first reported state with p ≤ 0 is retained as the surface without
// refining the exact crossing radius, so the radius overestimates the true
// surface by at most one reporting step. This reproduces the reference
// behavior and is deliberate.
//
// A failed solver step is recoverable: the profile accumulated so far is
// returned with Complete set to false.
func Integrate(pCentral float64, eos EquationOfState, step float64) (StarProfile, error) {
	if pCentral <= 0 {
		return StarProfile{}, ErrDegenerateCentralDensity
	}
	if step <= 0 {
		return StarProfile{}, fmt.Errorf("tov: reporting step must be positive (got %g)", step)
	}
	integrator, err := dopri.New(dopri.DefaultConfig())
	if err != nil {
		return StarProfile{}, err
	}
	sys := TOVSystem{EOS: eos}
	state := StarState{R: 0, P: pCentral, M: 0}
	profile := StarProfile{States: []StarState{state}}
	for state.R < maxStarRadius {
		res := advance(integrator, sys, state, step)
		if res.status == stepFailed {
			break
		}
		state = res.state
		profile.States = append(profile.States, state)
		if res.status == stepSurfaceReached {
			profile.Complete = true
			break
		}
	}
	last := profile.States[len(profile.States)-1]
	profile.Radius = last.R
	profile.Mass = last.M
	return profile, nil
}

// advance integrates one reporting step from the given state.
func advance(integrator *dopri.Integrator, sys TOVSystem, from StarState, step float64) stepResult {
	points := []float64{from.R, from.R + step}
	values, _, err := integrator.Compute(sys.Func, []float64{from.P, from.M}, points)
	if err != nil {
		return stepResult{state: from, status: stepFailed}
	}
	// values holds one [p, m] row per requested point.
	next := StarState{R: from.R + step, P: values[2], M: values[3]}
	if next.P <= 0 {
		return stepResult{state: next, status: stepSurfaceReached}
	}
	return stepResult{state: next, status: stepContinue}
}
