package tov

import "math"

/* The Tolman–Oppenheimer–Volkoff equations of general-relativistic
hydrostatic equilibrium for a static, spherically symmetric star:

	dp/dr = −(ρ + p)·(m + 4πr³p) / (r·(r − 2m))
	dm/dr = 4πr²ρ

with ρ the total energy density at pressure p. */

// centerEpsilon is the radius below which the pressure gradient is pinned to
// zero: the TOV pressure equation is 0/0 at the origin, and the physical
// boundary condition of a smooth center is dp/dr = 0.
const centerEpsilon = 1e-8

// TOVSystem couples the TOV derivatives to an equation of state. The state
// vector is [p, m].
type TOVSystem struct {
	EOS EquationOfState
}

// Func evaluates the derivative pair [dp/dr, dm/dr] at radius r into f. The
// signature matches the Dormand–Prince solver's derivative function. The EOS
// is consulted exactly once per evaluation so both derivatives see the same
// energy density. Non-positive pressure is vacuum: both derivatives vanish,
// which keeps the solver's internal trial steps finite past the surface.
func (sys TOVSystem) Func(r float64, y, f []float64) {
	p, m := y[0], y[1]
	if p <= 0 {
		f[0], f[1] = 0, 0
		return
	}
	ρ := sys.EOS.EnergyDensityOfPressure(p)
	f[1] = 4 * math.Pi * r * r * ρ
	if r <= centerEpsilon {
		f[0] = 0
		return
	}
	f[0] = -(ρ + p) * (m + 4*math.Pi*r*r*r*p) / (r * (r - 2*m))
}
