// Package render draws a core.Graph, optionally with a highlighted path,
// as Graphviz DOT, SVG, or PNG.
//
// ToDOT is pure string assembly and fully deterministic: nodes and edges are
// emitted in the graph's sorted order, so the same graph always yields the
// same DOT text. SVG and PNG hand the DOT off to the embedded Graphviz
// engine (github.com/goccy/go-graphviz, no system binary required).
//
// The renderer only consumes the public result shapes of the algorithm
// packages: a graph plus an ordered label sequence. It never reaches into
// algorithm internals, and it never chooses output destinations; callers
// pass explicit writers or paths.
package render
