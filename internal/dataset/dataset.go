// Package dataset reads and writes oscillator phase tables.
//
// CSV tables hold one row per timestep and one column per oscillator, with
// an optional header row. JSON documents hold phases indexed by
// (oscillator, timestep) and optional natural frequencies.
package dataset

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

var ErrUnknownFormat = errors.New("dataset: unknown file format")

// Data is a phase table as read from disk, before validation.
type Data struct {
	Phases             [][]float64 `json:"phases"`
	NaturalFrequencies []float64   `json:"natural_frequencies,omitempty"`
	Names              []string    `json:"names,omitempty"`
}

// Load reads a phase table; the format follows the extension.
func Load(path string) (*Data, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return loadCSV(path)
	case ".json":
		return loadJSON(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// Save writes a phase table; the format follows the extension.
func Save(path string, d *Data) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return saveCSV(path, d)
	case ".json":
		return saveJSON(path, d)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// LoadFrequencies reads natural frequencies from a CSV or JSON file. CSV
// values may be spread over rows or columns; JSON is a plain array.
func LoadFrequencies(path string) ([]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if strings.ToLower(filepath.Ext(path)) == ".json" {
		var freqs []float64
		if err := json.Unmarshal(data, &freqs); err != nil {
			return nil, fmt.Errorf("dataset: %s: %w", path, err)
		}
		return freqs, nil
	}

	r := csv.NewReader(strings.NewReader(string(data)))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("dataset: %s: %w", path, err)
	}

	freqs := make([]float64, 0)
	for i, record := range records {
		for _, field := range record {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				if i == 0 {
					// header
					break
				}
				return nil, fmt.Errorf("dataset: %s line %d: %w", path, i+1, err)
			}
			freqs = append(freqs, v)
		}
	}
	return freqs, nil
}

func loadCSV(path string) (*Data, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("dataset: %s: %w", path, err)
	}

	d := &Data{}
	if len(records) == 0 {
		return d, nil
	}

	if _, err := strconv.ParseFloat(records[0][0], 64); err != nil {
		d.Names = append([]string(nil), records[0]...)
		records = records[1:]
	}
	if len(records) == 0 {
		d.Phases = make([][]float64, len(d.Names))
		return d, nil
	}

	cols := len(records[0])
	if d.Names != nil {
		cols = len(d.Names)
	}
	d.Phases = make([][]float64, cols)
	for i := range d.Phases {
		d.Phases[i] = make([]float64, 0, len(records))
	}

	// Ragged rows are kept ragged so that validation reports them instead
	// of silently truncating.
	for row, record := range records {
		for col, field := range record {
			if col >= cols {
				return nil, fmt.Errorf("dataset: %s row %d: %d fields, want %d", path, row+1, len(record), cols)
			}
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("dataset: %s row %d col %d: %w", path, row+1, col+1, err)
			}
			d.Phases[col] = append(d.Phases[col], v)
		}
	}
	return d, nil
}

func saveCSV(path string, d *Data) error {
	steps := 0
	if len(d.Phases) > 0 {
		steps = len(d.Phases[0])
	}
	for i, traj := range d.Phases {
		if len(traj) != steps {
			return fmt.Errorf("dataset: oscillator %d has %d steps, want %d", i, len(traj), steps)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if len(d.Names) > 0 {
		if err := w.Write(d.Names); err != nil {
			return err
		}
	}

	for t := 0; t < steps; t++ {
		row := make([]string, 0, len(d.Phases))
		for _, traj := range d.Phases {
			row = append(row, strconv.FormatFloat(traj[t], 'g', -1, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return file.Close()
}

func loadJSON(path string) (*Data, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var d Data
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("dataset: %s: %w", path, err)
	}
	return &d, nil
}

func saveJSON(path string, d *Data) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return err
	}
	return file.Close()
}
