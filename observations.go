package tov

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gonum/matrix/mat64"
)

// LoadObservations reads a four-column numeric table of observational
// posterior samples (mass1, mass2, radius1, radius2; masses in solar
// masses, radii in km) and returns it as a dense matrix with one row per
// sample. Columns may be separated by whitespace or commas; blank lines and
// lines starting with # are skipped. The table is only meant for the
// plotting side, the core never consumes it.
func LoadObservations(path string) (*mat64.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var data []float64
	rows := 0
	scanner := bufio.NewScanner(f)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(strings.ReplaceAll(line, ",", " "))
		if len(fields) != 4 {
			return nil, fmt.Errorf("tov: %s:%d: expected 4 columns, got %d", path, lineNo, len(fields))
		}
		for _, field := range fields {
			val, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("tov: %s:%d: %s", path, lineNo, err)
			}
			data = append(data, val)
		}
		rows++
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, fmt.Errorf("tov: %s holds no samples", path)
	}
	return mat64.NewDense(rows, 4, data), nil
}
