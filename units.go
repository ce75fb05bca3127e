package tov

/* Geometric unit handling. All core computations happen in geometric units
where G = c = 1 and every quantity is a power of length (meters). Conversion
to and from SI happens strictly at the boundary. */

const (
	// GravConst is the gravitational constant in m³/(kg·s²).
	GravConst = 6.67408e-11
	// LightSpeed is the speed of light in m/s.
	LightSpeed = 299792458.0
	// SolarMass is the mass of the Sun in kg.
	SolarMass = 1.98892e30
	// NuclearDensity is the nuclear saturation rest-mass density in kg/m³.
	NuclearDensity = 2.3e17
	// NuclearPressure is the pressure anchor of the simple polytrope at
	// NuclearDensity, in Pa.
	NuclearPressure = 3.5e32
)

// Conversion factors from SI to geometric units: mass (kg → m), density
// (kg/m³ → 1/m²) and pressure (Pa → 1/m²).
const (
	geoMass     = GravConst / (LightSpeed * LightSpeed)
	geoDensity  = GravConst / (LightSpeed * LightSpeed)
	geoPressure = GravConst / (LightSpeed * LightSpeed * LightSpeed * LightSpeed)
)

// UnitKind defines an enum of the physical quantities the converter handles.
type UnitKind uint8

const (
	// Length in meters.
	Length UnitKind = iota + 1
	// Mass in kilograms.
	Mass
	// Pressure in pascals.
	Pressure
	// Density in kg/m³.
	Density
)

func (k UnitKind) String() string {
	switch k {
	case Length:
		return "length"
	case Mass:
		return "mass"
	case Pressure:
		return "pressure"
	case Density:
		return "density"
	}
	panic("cannot stringify unknown unit kind")
}

func (k UnitKind) factor() float64 {
	switch k {
	case Length:
		return 1
	case Mass:
		return geoMass
	case Pressure:
		return geoPressure
	case Density:
		return geoDensity
	}
	panic("cannot convert unknown unit kind")
}

// ToGeometric converts an SI value of the given kind to geometric units.
func ToGeometric(value float64, kind UnitKind) float64 {
	return value * kind.factor()
}

// FromGeometric converts a geometric value back to SI units of the given kind.
func FromGeometric(value float64, kind UnitKind) float64 {
	return value / kind.factor()
}
