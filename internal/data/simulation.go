package data

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/offgridai-us/cost-calculator/internal/model"
)

// LoadSimulation reads an annual energy summary, dispatching on the file
// extension (.csv or .json).
func LoadSimulation(path string) (*model.SimulationSummary, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return LoadSimulationJSON(path)
	case ".csv":
		return LoadSimulationCSV(path)
	default:
		return nil, fmt.Errorf("unsupported simulation file %q: want .csv or .json", path)
	}
}

// LoadSimulationJSON reads a summary in the JSON shape of
// model.SimulationSummary.
func LoadSimulationJSON(path string) (*model.SimulationSummary, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sum model.SimulationSummary
	if err := json.Unmarshal(raw, &sum); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &sum, nil
}

// csvColumns maps header names to row-field setters. Headers are matched
// case-insensitively.
var csvColumns = map[string]func(*model.SimulationYear, float64){
	"solar_output_net_mwh":       func(y *model.SimulationYear, v float64) { y.SolarNetMWh = v },
	"bess_net_output_mwh":        func(y *model.SimulationYear, v float64) { y.BESSNetMWh = v },
	"generator_output_mwh":       func(y *model.SimulationYear, v float64) { y.GeneratorMWh = v },
	"generator_fuel_input_mmbtu": func(y *model.SimulationYear, v float64) { y.GeneratorFuelMMBtu = v },
	"load_served_mwh":            func(y *model.SimulationYear, v float64) { y.LoadServedMWh = v },
}

// LoadSimulationCSV reads a summary with one row per operating year. The
// header must carry operating_year plus the five energy columns.
func LoadSimulationCSV(path string) (*model.SimulationSummary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("%s: no data rows", path)
	}

	header := records[0]
	yearIdx := -1
	setters := make(map[int]func(*model.SimulationYear, float64))
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "operating_year" {
			yearIdx = i
			continue
		}
		if set, ok := csvColumns[key]; ok {
			setters[i] = set
		}
	}
	if yearIdx < 0 {
		return nil, fmt.Errorf("%s: missing operating_year column", path)
	}
	if len(setters) != len(csvColumns) {
		return nil, fmt.Errorf("%s: header has %d of %d required energy columns", path, len(setters), len(csvColumns))
	}

	sum := &model.SimulationSummary{Years: make([]model.SimulationYear, 0, len(records)-1)}
	for n, rec := range records[1:] {
		year, err := strconv.Atoi(strings.TrimSpace(rec[yearIdx]))
		if err != nil {
			return nil, fmt.Errorf("%s row %d: bad operating_year %q", path, n+2, rec[yearIdx])
		}
		row := model.SimulationYear{OperatingYear: year}
		for i, set := range setters {
			v, err := strconv.ParseFloat(strings.TrimSpace(rec[i]), 64)
			if err != nil {
				return nil, fmt.Errorf("%s row %d: bad value %q in %q", path, n+2, rec[i], header[i])
			}
			set(&row, v)
		}
		sum.Years = append(sum.Years, row)
	}
	return sum, nil
}
