// Package matrixcsv: CSV parsing and validation.
package matrixcsv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/routegrid/routegrid/core"
)

// ErrBadMatrix indicates a malformed distance matrix: wrong shape, label
// mismatch, non-numeric, negative, asymmetric, or nonzero-diagonal cells.
var ErrBadMatrix = errors.New("matrixcsv: malformed distance matrix")

// Matrix is a validated symmetric distance matrix. It is read-only after
// Load; accessors return fresh slices.
type Matrix struct {
	labels []string
	cells  [][]int64
}

// LoadFile reads and validates a distance-matrix CSV from disk.
func LoadFile(path string) (*Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("matrixcsv: open %s: %w", path, err)
	}
	defer f.Close()

	return Load(f)
}

// Load reads and validates a distance-matrix CSV from r.
func Load(r io.Reader) (*Matrix, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadMatrix, err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("%w: need a header row and at least one data row", ErrBadMatrix)
	}

	labels := records[0][1:] // first header cell is a caption, not a label
	n := len(labels)
	if len(records)-1 != n {
		return nil, fmt.Errorf("%w: %d labels but %d data rows", ErrBadMatrix, n, len(records)-1)
	}
	seen := make(map[string]struct{}, n)
	for _, l := range labels {
		if l == "" {
			return nil, fmt.Errorf("%w: empty label in header", ErrBadMatrix)
		}
		if _, dup := seen[l]; dup {
			return nil, fmt.Errorf("%w: duplicate label %q", ErrBadMatrix, l)
		}
		seen[l] = struct{}{}
	}

	cells := make([][]int64, n)
	for i, row := range records[1:] {
		if len(row) != n+1 {
			return nil, fmt.Errorf("%w: row %q has %d cells, want %d", ErrBadMatrix, row[0], len(row)-1, n)
		}
		if row[0] != labels[i] {
			return nil, fmt.Errorf("%w: row label %q does not match header label %q", ErrBadMatrix, row[0], labels[i])
		}
		cells[i] = make([]int64, n)
		for j, cell := range row[1:] {
			v, err := strconv.ParseInt(cell, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: non-numeric cell %q at %s/%s", ErrBadMatrix, cell, labels[i], labels[j])
			}
			if v < 0 {
				return nil, fmt.Errorf("%w: negative distance %d at %s/%s", ErrBadMatrix, v, labels[i], labels[j])
			}
			cells[i][j] = v
		}
	}

	// Structural checks over the full matrix: zero diagonal, symmetry.
	for i := 0; i < n; i++ {
		if cells[i][i] != 0 {
			return nil, fmt.Errorf("%w: nonzero diagonal %d at %s", ErrBadMatrix, cells[i][i], labels[i])
		}
		for j := i + 1; j < n; j++ {
			if cells[i][j] != cells[j][i] {
				return nil, fmt.Errorf("%w: asymmetric cells %s/%s (%d vs %d)",
					ErrBadMatrix, labels[i], labels[j], cells[i][j], cells[j][i])
			}
		}
	}

	return &Matrix{labels: labels, cells: cells}, nil
}

// Nodes returns the location labels in matrix order.
func (m *Matrix) Nodes() []string {
	out := make([]string, len(m.labels))
	copy(out, m.labels)

	return out
}

// Edges converts the upper triangle into an edge list. A zero cell means
// "no edge" and is skipped.
func (m *Matrix) Edges() []core.Edge {
	var out []core.Edge
	for i := range m.labels {
		for j := i + 1; j < len(m.labels); j++ {
			if w := m.cells[i][j]; w > 0 {
				out = append(out, core.Edge{From: m.labels[i], To: m.labels[j], Weight: w})
			}
		}
	}

	return out
}

// Graph builds a core.Graph from the matrix contents.
func (m *Matrix) Graph() (*core.Graph, error) {
	return core.Build(m.Nodes(), m.Edges())
}
