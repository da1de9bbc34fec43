// Package dataset: city list, clustered distance generation, CSV output.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"math/rand"
	"strconv"
)

// cities is the fixed location list, grouped by region.
var cities = []string{
	// NCR & nearby Haryana/Punjab/Rajasthan
	"Delhi", "Gurugram", "Noida", "Ghaziabad", "Faridabad", "Sonipat", "Panipat",
	"Meerut", "Rewari", "Bahadurgarh", "Rohtak", "Bhiwadi",
	// Uttar Pradesh
	"Agra", "Mathura", "Lucknow", "Kanpur", "Varanasi", "Prayagraj", "Bareilly", "Moradabad",
	// Rajasthan
	"Jaipur", "Alwar", "Ajmer", "Kota", "Udaipur", "Jodhpur", "Bikaner",
	// Haryana & others
	"Hisar", "Ambala", "Karnal", "Kurukshetra",
	// Punjab
	"Chandigarh", "Ludhiana", "Amritsar", "Patiala",
	// Major metros
	"Mumbai", "Pune", "Ahmedabad", "Surat", "Vadodara", "Indore", "Bhopal", "Nagpur",
	"Hyderabad", "Visakhapatnam", "Chennai", "Bengaluru", "Kolkata", "Guwahati", "Patna", "Ranchi",
}

// Regional clusters steering the distance ranges.
var (
	northCluster = toSet("Delhi", "Gurugram", "Noida", "Ghaziabad", "Faridabad", "Sonipat", "Panipat",
		"Meerut", "Rewari", "Bahadurgarh", "Rohtak", "Bhiwadi", "Hisar", "Ambala", "Karnal", "Kurukshetra",
		"Chandigarh", "Ludhiana", "Amritsar", "Patiala")
	upCluster  = toSet("Agra", "Mathura", "Lucknow", "Kanpur", "Varanasi", "Prayagraj", "Bareilly", "Moradabad")
	rajCluster = toSet("Jaipur", "Alwar", "Ajmer", "Kota", "Udaipur", "Jodhpur", "Bikaner")
	metros     = toSet("Mumbai", "Pune", "Ahmedabad", "Surat", "Vadodara", "Indore", "Bhopal", "Nagpur",
		"Hyderabad", "Visakhapatnam", "Chennai", "Bengaluru", "Kolkata", "Guwahati", "Patna", "Ranchi")
)

func toSet(labels ...string) map[string]bool {
	s := make(map[string]bool, len(labels))
	for _, l := range labels {
		s[l] = true
	}

	return s
}

// Cities returns the fixed city list in dataset order.
func Cities() []string {
	out := make([]string, len(cities))
	copy(out, cities)

	return out
}

// DistanceMatrix builds an approximate symmetric distance matrix over
// Cities(), deterministic for a given seed. The diagonal is zero and every
// off-diagonal cell is positive, so loading the matrix yields a complete
// graph.
func DistanceMatrix(seed int64) [][]int64 {
	r := rand.New(rand.NewSource(seed))
	n := len(cities)

	matrix := make([][]int64, n)
	for i := range matrix {
		matrix[i] = make([]int64, n)
	}
	// Fill the upper triangle and mirror it; the lower triangle is never
	// drawn separately, keeping the matrix symmetric by construction.
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := approxDistance(r, cities[i], cities[j])
			matrix[i][j] = d
			matrix[j][i] = d
		}
	}

	return matrix
}

// approxDistance draws a pseudo-distance from the range fitting the pair's
// regional clusters.
func approxDistance(r *rand.Rand, a, b string) int64 {
	within := func(set map[string]bool) bool { return set[a] && set[b] }
	across := func(s1, s2 map[string]bool) bool { return s1[a] && s2[b] || s2[a] && s1[b] }
	north := northCluster[a] || upCluster[a] || rajCluster[a]
	northB := northCluster[b] || upCluster[b] || rajCluster[b]

	switch {
	case within(northCluster):
		return randRange(r, 30, 150)
	case within(upCluster):
		return randRange(r, 80, 300)
	case within(rajCluster):
		return randRange(r, 80, 350)
	case within(metros):
		return randRange(r, 500, 1600)
	case across(northCluster, upCluster):
		return randRange(r, 150, 500)
	case across(northCluster, rajCluster):
		return randRange(r, 150, 450)
	case across(upCluster, rajCluster):
		return randRange(r, 250, 700)
	case north && metros[b] || northB && metros[a]:
		return randRange(r, 800, 1700)
	default:
		return randRange(r, 300, 1400)
	}
}

// randRange draws uniformly from [lo, hi] inclusive.
func randRange(r *rand.Rand, lo, hi int64) int64 {
	return lo + r.Int63n(hi-lo+1)
}

// WriteCSV emits the matrix in the layout matrixcsv.Load expects: a "city"
// header followed by the labels, then one row per city.
func WriteCSV(w io.Writer, labels []string, matrix [][]int64) error {
	if len(labels) != len(matrix) {
		return fmt.Errorf("dataset: %d labels but %d matrix rows", len(labels), len(matrix))
	}
	cw := csv.NewWriter(w)

	header := append([]string{"city"}, labels...)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("dataset: write header: %w", err)
	}
	for i, label := range labels {
		if len(matrix[i]) != len(labels) {
			return fmt.Errorf("dataset: row %q has %d cells, want %d", label, len(matrix[i]), len(labels))
		}
		row := make([]string, 0, len(labels)+1)
		row = append(row, label)
		for _, d := range matrix[i] {
			row = append(row, strconv.FormatInt(d, 10))
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("dataset: write row %q: %w", label, err)
		}
	}
	cw.Flush()

	return cw.Error()
}
