// Package taskfile loads task lists from CSV files.
//
// Each row is id,burst,arrival[,priority]. Lines starting with '#' are ignored.
package taskfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bradleyombachi/cpusched/scheduler"
)

var ErrMalformedRow = errors.New("malformed task row")

// Open reads the task file at path.
func Open(path string) ([]scheduler.TaskSpec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening task file: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Load parses CSV rows from r.
func Load(r io.Reader) ([]scheduler.TaskSpec, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}
	specs := make([]scheduler.TaskSpec, 0, len(rows))
	for i, row := range rows {
		spec, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

func parseRow(row []string) (scheduler.TaskSpec, error) {
	if len(row) != 3 && len(row) != 4 {
		return scheduler.TaskSpec{}, fmt.Errorf("%w: want 3 or 4 fields, got %d", ErrMalformedRow, len(row))
	}
	vals := make([]int, 4)
	for i, field := range row {
		v, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return scheduler.TaskSpec{}, fmt.Errorf("%w: field %d: %v", ErrMalformedRow, i+1, err)
		}
		vals[i] = v
	}
	return scheduler.TaskSpec{
		ID:          vals[0],
		BurstTime:   vals[1],
		ArrivalTime: vals[2],
		Priority:    vals[3],
	}, nil
}
