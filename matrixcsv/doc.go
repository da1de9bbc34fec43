// Package matrixcsv loads a symmetric distance matrix from CSV and converts
// it into the node/edge form consumed by core.Build.
//
// Expected layout: a header row whose first cell is a caption (typically
// "city") followed by the N location labels, then N data rows each starting
// with its row label followed by N whole-number distances. The matrix must be
// square, symmetric, zero on the diagonal, and free of negative or
// non-numeric cells. Rejecting bad cells here is the loader's job, so the
// graph core only ever sees validated input.
//
// Zero policy: a zero cell means "no edge". A genuinely zero-distance
// connection between two distinct locations is therefore unrepresentable in
// this format; that matches the upstream dataset convention, where zero only
// ever appears on the diagonal.
//
// Only the upper triangle is read when producing edges, so each unordered
// pair appears once even though the matrix stores it twice.
//
// Errors:
//
//	ErrBadMatrix - any structural or cell-level violation, wrapped with the
//	               offending row/column for context.
package matrixcsv
