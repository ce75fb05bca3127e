package tov

import (
	"fmt"
	"math"
	"sort"

	"github.com/spf13/viper"
)

/* Named piecewise-polytrope parameter sets. The four-parameter fits
(log10 p1 in dyn/cm² at the first dividing density, plus the three core
adiabatic indices) follow Read, Lackey, Owen & Friedman (2009). The crust
segment and the dividing densities are shared by all entries. */

// EOSRecord holds the piecewise-polytrope fit parameters of a named EOS in
// physical units: LogP1 is log10 of the pressure in dyn/cm² at the first
// dividing density, the Gammas are the core adiabatic indices.
type EOSRecord struct {
	LogP1  float64
	Gamma1 float64
	Gamma2 float64
	Gamma3 float64
}

const (
	// crustGamma is the adiabatic index of the single crust segment.
	crustGamma = 1.35692895
	// crustCoreDensity divides crust from core, in kg/m³.
	crustCoreDensity = 1e17
	// dividingDensity1 is 10^14.7 g/cm³ in kg/m³.
	dividingDensity1 = 5.011872336272715e17
	// dividingDensity2 is 10^15 g/cm³ in kg/m³.
	dividingDensity2 = 1e18
)

var builtinCatalog = map[string]EOSRecord{
	"SLy":  {34.384, 3.005, 2.988, 2.851},
	"AP3":  {34.392, 3.166, 3.573, 3.281},
	"AP4":  {34.269, 2.830, 3.445, 3.348},
	"ENG":  {34.437, 3.514, 3.130, 3.168},
	"MPA1": {34.495, 3.446, 3.572, 2.887},
	"MS1":  {34.858, 3.224, 3.033, 1.325},
	"WFF1": {34.031, 2.519, 3.791, 3.660},
}

// CatalogNames returns the names of the built-in EOS records, sorted.
func CatalogNames() []string {
	names := make([]string, 0, len(builtinCatalog))
	for name := range builtinCatalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewEOSFromRecord builds the piecewise polytrope described by a record,
// converting its physical parameters to geometric units.
func NewEOSFromRecord(rec EOSRecord) (*PiecewisePolytrope, error) {
	p1 := math.Pow(10, rec.LogP1) * 0.1 // dyn/cm² → Pa
	return NewPiecewisePolytrope(
		ToGeometric(crustCoreDensity, Density),
		ToGeometric(dividingDensity1, Density),
		ToGeometric(dividingDensity2, Density),
		ToGeometric(p1, Pressure),
		crustGamma, rec.Gamma1, rec.Gamma2, rec.Gamma3,
	)
}

// NewCatalogEOS builds the piecewise polytrope for a named built-in EOS.
func NewCatalogEOS(name string) (*PiecewisePolytrope, error) {
	rec, found := builtinCatalog[name]
	if !found {
		return nil, fmt.Errorf("tov: unknown EOS %q (have %v)", name, CatalogNames())
	}
	return NewEOSFromRecord(rec)
}

// LoadEOSCatalog reads additional EOS records from a TOML file with one
// table per EOS name:
//
//	[sly]
//	logp1 = 34.384
//	gamma1 = 3.005
//	gamma2 = 2.988
//	gamma3 = 2.851
//
// Note that viper lowercases the table names.
func LoadEOSCatalog(path string) (map[string]EOSRecord, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("tov: could not read EOS catalog %s: %s", path, err)
	}
	records := make(map[string]EOSRecord)
	for name := range v.AllSettings() {
		sub := v.Sub(name)
		if sub == nil {
			return nil, fmt.Errorf("tov: EOS entry %q is not a table", name)
		}
		records[name] = EOSRecord{
			LogP1:  sub.GetFloat64("logp1"),
			Gamma1: sub.GetFloat64("gamma1"),
			Gamma2: sub.GetFloat64("gamma2"),
			Gamma3: sub.GetFloat64("gamma3"),
		}
	}
	return records, nil
}
