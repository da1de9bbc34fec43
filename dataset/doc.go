// Package dataset produces a reproducible sample dataset for routegrid:
// a fixed list of Indian cities and a pseudo-random symmetric distance
// matrix between them.
//
// Distances are drawn from ranges chosen per regional cluster (NCR/north,
// Uttar Pradesh, Rajasthan, major metros), so nearby cities get short
// distances and cross-country pairs get long ones. The generator is seeded
// explicitly: the same seed always yields the identical matrix, which keeps
// test fixtures and demo outputs stable.
//
// WriteCSV emits the matrix in exactly the layout matrixcsv.Load expects, so
// the two packages round-trip.
package dataset
