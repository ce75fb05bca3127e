package main

import (
	"flag"
	"fmt"
	"os"

	kitlog "github.com/go-kit/kit/log"
	"github.com/guptarohit/asciigraph"

	"github.com/gwastro-2019/tov"
)

var (
	eosName  string
	catalog  string
	startNuc float64
	stopNuc  float64
	logStep  float64
	step     float64
	output   string
	plot     bool
	sweepAll bool
)

func init() {
	flag.StringVar(&eosName, "eos", "simple", "EOS to sweep: 'simple' or a catalog name (SLy, AP4, ...)")
	flag.StringVar(&catalog, "catalog", "", "optional TOML file with extra EOS records")
	flag.Float64Var(&startNuc, "start", 2, "start central density, in units of nuclear density")
	flag.Float64Var(&stopNuc, "stop", 20, "stop central density, in units of nuclear density")
	flag.Float64Var(&logStep, "logstep", 0.05, "geometric step of the central density sweep")
	flag.Float64Var(&step, "step", 10, "integration reporting step in meters")
	flag.StringVar(&output, "o", "", "CSV output prefix (no output if empty)")
	flag.BoolVar(&plot, "plot", false, "render the curve as an ASCII plot")
	flag.BoolVar(&sweepAll, "all", false, "keep sweeping past the maximum mass")
}

func main() {
	flag.Parse()
	logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	logger = kitlog.With(logger, "eos", eosName)

	eos, err := buildEOS()
	if err != nil {
		logger.Log("level", "critical", "err", err)
		os.Exit(1)
	}

	ρNuc := tov.ToGeometric(tov.NuclearDensity, tov.Density)
	sampler := tov.NewMassRadiusSampler(eos, step, logger)
	curve := sampler.Sample(startNuc*ρNuc, logStep, stopNuc*ρNuc, !sweepAll)
	if len(curve) == 0 {
		logger.Log("level", "warning", "message", "empty mass-radius curve")
		return
	}
	logger.Log("level", "notice", "status", "finished", "samples", len(curve))

	if output != "" {
		conf := tov.ExportConfig{Filename: output}
		if err := tov.ExportMassRadiusCurve(conf, curve); err != nil {
			logger.Log("level", "critical", "err", err)
			os.Exit(1)
		}
	}
	if plot {
		masses := make([]float64, len(curve))
		for i, sample := range curve {
			masses[i] = tov.FromGeometric(sample.Mass, tov.Mass) / tov.SolarMass
		}
		fmt.Println(asciigraph.Plot(masses,
			asciigraph.Height(16),
			asciigraph.Caption("M (Msun) along the central-density sweep")))
	}
}

func buildEOS() (tov.EquationOfState, error) {
	if eosName == "simple" {
		return tov.NewSimplePolytrope(), nil
	}
	if catalog != "" {
		records, err := tov.LoadEOSCatalog(catalog)
		if err != nil {
			return nil, err
		}
		if rec, found := records[eosName]; found {
			return tov.NewEOSFromRecord(rec)
		}
	}
	return tov.NewCatalogEOS(eosName)
}
