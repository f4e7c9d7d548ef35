// Package mapparse reads the Mermaid-like plain-text room graph format
// described in spec.md §6: one undirected edge per line, written as
// `<token> --- <token>`, where a token is either a whitespace-delimited
// identifier or a "quoted free form string". Lines beginning with `graph`
// (an optional Mermaid diagram header) and lines without a `---` separator
// are ignored. This package is the map-authoring external interface; it
// has no opinion about how the resulting rooms/edges are then solved.
package mapparse
