package tov

import (
	"fmt"
	"os"
	"time"
)

// ExportConfig configures CSV output of star profiles and mass–radius
// curves, for consumption by external plotting.
type ExportConfig struct {
	Filename  string
	Timestamp bool // append a timestamp to the file name
}

// IsUseless reports whether the config produces no output at all.
func (c ExportConfig) IsUseless() bool {
	return c.Filename == ""
}

func (c ExportConfig) path(suffix string) string {
	name := c.Filename
	if c.Timestamp {
		name += "-" + time.Now().UTC().Format("2006-01-02-15.04.05")
	}
	return name + suffix + ".csv"
}

// ExportProfile writes a star profile as CSV in physical units: radius in
// km, pressure in Pa, enclosed mass in solar masses.
func ExportProfile(conf ExportConfig, profile StarProfile) error {
	if conf.IsUseless() {
		return nil
	}
	f, err := os.Create(conf.path("-profile"))
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := f.WriteString("r(km),p(Pa),m(Msun)"); err != nil {
		return err
	}
	for _, state := range profile.States {
		line := fmt.Sprintf("\n%.6f,%.6e,%.6f",
			state.R/1e3,
			FromGeometric(state.P, Pressure),
			FromGeometric(state.M, Mass)/SolarMass)
		if _, err := f.WriteString(line); err != nil {
			return err
		}
	}
	return nil
}

// ExportMassRadiusCurve writes a mass–radius curve as CSV in physical
// units: central density in kg/m³, mass in solar masses, radius in km.
func ExportMassRadiusCurve(conf ExportConfig, curve MassRadiusCurve) error {
	if conf.IsUseless() {
		return nil
	}
	f, err := os.Create(conf.path("-mr"))
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := f.WriteString("rho_c(kg/m3),M(Msun),R(km)"); err != nil {
		return err
	}
	for _, sample := range curve {
		line := fmt.Sprintf("\n%.6e,%.6f,%.6f",
			FromGeometric(sample.RhoCentral, Density),
			FromGeometric(sample.Mass, Mass)/SolarMass,
			sample.Radius/1e3)
		if _, err := f.WriteString(line); err != nil {
			return err
		}
	}
	return nil
}
