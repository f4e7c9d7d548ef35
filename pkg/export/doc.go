// Package export serializes a decoded puzzle to JSON and renders it as an
// SVG timestep grid.
//
// The package offers both formatted (indented) and compact JSON export
// options, and an SVG renderer that plots each character's room across
// every timestep as a grid of labeled cells, suitable for dropping into a
// README or a bug report without re-running the solver.
package export
