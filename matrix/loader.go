// Package matrix - CSV instance loader.
//
// LoadCSV reads an n×n distance matrix from a headerless CSV file:
// n records of n comma-separated float64 cells. Shape and value validation
// happens here; domain-level checks (non-negativity, diagonal, square size)
// belong to the consumer.
package matrix

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
)

// LoadCSV parses the file at path into a Dense matrix.
//
// Errors:
//   - underlying I/O errors from opening/reading the file,
//   - ErrRaggedRows when records have differing lengths,
//   - ErrBadValue (wrapped with row/col context) on unparsable or
//     non-finite cells,
//   - ErrBadShape when the file contains no records.
//
// Complexity: O(r*c) time and memory.
func LoadCSV(path string) (*Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrBadShape
	}

	var (
		rows = make([][]float64, len(records))
		i, j int
		v    float64
	)
	for i = 0; i < len(records); i++ {
		if len(records[i]) != len(records[0]) {
			return nil, ErrRaggedRows
		}
		rows[i] = make([]float64, len(records[i]))
		for j = 0; j < len(records[i]); j++ {
			v, err = strconv.ParseFloat(strings.TrimSpace(records[i][j]), 64)
			if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("row %d col %d: %w", i, j, ErrBadValue)
			}
			rows[i][j] = v
		}
	}

	return NewDenseFromRows(rows)
}
