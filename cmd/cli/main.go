package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/offgridai-us/cost-calculator/internal/analysis"
	"github.com/offgridai-us/cost-calculator/internal/config"
	"github.com/offgridai-us/cost-calculator/internal/data"
	"github.com/offgridai-us/cost-calculator/internal/proforma"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "proforma":
		cmdProForma(os.Args[2:])
	case "capex":
		cmdCapex(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli proforma --config examples/config.yaml --out results/proforma.csv")
	fmt.Println("  cli capex --config examples/config.yaml")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - proforma writes the full 22-year table (plus NPV row) as CSV")
	fmt.Println("  - capex prints the CAPEX breakdown by subsystem in $M")
}

func cmdProForma(args []string) {
	fs := flag.NewFlagSet("proforma", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	simPath := fs.String("simulation", "", "Optional: override the simulation summary path (.csv or .json)")
	outPath := fs.String("out", "results/proforma.csv", "Output CSV path")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.WithError(err).Fatal("load config")
	}

	path := cfg.SimulationFile
	if *simPath != "" {
		path = *simPath
	}
	if path == "" {
		fmt.Println("no simulation summary: set simulation_file in the config or pass --simulation")
		os.Exit(2)
	}
	sim, err := data.LoadSimulation(path)
	if err != nil {
		log.WithError(err).Fatal("load simulation summary")
	}

	scenario := cfg.Scenario
	capex := proforma.EstimateCapex(scenario.Capacities, scenario.Capex)
	table, err := proforma.New().Build(*sim, capex, scenario.Capacities, scenario.OM, scenario.Financing)
	if err != nil {
		log.WithError(err).Fatal("build pro forma")
	}

	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		log.WithError(err).Fatal("create output directory")
	}
	if err := proforma.WriteTableCSV(*outPath, table); err != nil {
		log.WithError(err).Fatal("write table")
	}

	m := analysis.Summarize(table)
	fmt.Printf("Wrote %d rows to %s\n", len(table.Years())+1, *outPath)
	fmt.Printf("Total CAPEX=$%.2fM (equity $%.2fM)\n", m.TotalCapex, m.TotalEquity)
	fmt.Printf("Equity NPV=$%.2fM  Min DSCR=%.2f  Avg DSCR=%.2f\n", m.EquityNPV, m.MinDSCR, m.AvgDSCR)
	if m.PaybackYear > 0 {
		fmt.Printf("Equity payback in operating year %d\n", m.PaybackYear)
	} else {
		fmt.Println("No equity payback within the modeled horizon")
	}
}

func cmdCapex(args []string) {
	fs := flag.NewFlagSet("capex", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.WithError(err).Fatal("load config")
	}

	b := proforma.EstimateCapex(cfg.Scenario.Capacities, cfg.Scenario.Capex)
	fmt.Printf("%-20s %12s\n", "component", "capex ($M)")
	fmt.Printf("%-20s %12.2f\n", "solar", b.Solar)
	fmt.Printf("%-20s %12.2f\n", "bess", b.BESS)
	fmt.Printf("%-20s %12.2f\n", "generator", b.Generator)
	fmt.Printf("%-20s %12.2f\n", "system integration", b.SystemIntegration)
	fmt.Printf("%-20s %12.2f\n", "hard subtotal", b.TotalHard())
	fmt.Printf("%-20s %12.2f\n", "soft costs", b.SoftCosts)
	fmt.Printf("%-20s %12.2f\n", "total", b.Total())
}
