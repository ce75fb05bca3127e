package tov

import (
	"fmt"
	"math"

	"github.com/ChristopherRabotin/ode"
)

// maxStarRadius is a hard limit on the integration, well past any neutron
// star surface. It only matters if an EOS never lets the pressure vanish.
const maxStarRadius = 1e6

// rk4Star adapts the TOV system to the fixed-step RK4 integrator.
type rk4Star struct {
	sys     TOVSystem
	step    float64
	r       float64
	state   []float64
	profile *StarProfile
}

// GetState implements the ode.Integrable interface.
func (s *rk4Star) GetState() []float64 {
	return s.state
}

// SetState implements the ode.Integrable interface.
func (s *rk4Star) SetState(t float64, y []float64) {
	s.r += s.step
	s.state = y
	s.profile.States = append(s.profile.States, StarState{R: s.r, P: y[0], M: y[1]})
}

// Stop implements the ode.Integrable interface: the surface is reached once
// the pressure drops to zero.
func (s *rk4Star) Stop(t float64) bool {
	return s.state[0] <= 0 || math.IsNaN(s.state[0]) || s.r > maxStarRadius
}

// Func implements the ode.Integrable interface.
func (s *rk4Star) Func(r float64, y []float64) []float64 {
	f := make([]float64, 2)
	s.sys.Func(r, y, f)
	return f
}

// IntegrateRK4 solves the same problem as Integrate with a fixed-step RK4
// instead of the adaptive solver. It serves as a cross-check of the adaptive
// path and reproduces fixed-step reference runs; the step must therefore be
// small enough on its own since there is no internal error control.
func IntegrateRK4(pCentral float64, eos EquationOfState, step float64) (StarProfile, error) {
	if pCentral <= 0 {
		return StarProfile{}, ErrDegenerateCentralDensity
	}
	if step <= 0 {
		return StarProfile{}, fmt.Errorf("tov: step must be positive (got %g)", step)
	}
	profile := &StarProfile{States: []StarState{{P: pCentral}}}
	star := &rk4Star{
		sys:     TOVSystem{EOS: eos},
		step:    step,
		state:   []float64{pCentral, 0},
		profile: profile,
	}
	ode.NewRK4(0, step, star).Solve()
	last := profile.States[len(profile.States)-1]
	profile.Radius = last.R
	profile.Mass = last.M
	profile.Complete = last.P <= 0
	return *profile, nil
}
