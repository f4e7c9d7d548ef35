// Package roomgraph provides the room/edge model characters move over:
// an ordered, unique set of room names, undirected adjacency between them,
// and the self-loop (stay-in-place) policy a solve is configured with.
// Unlike a spatial dungeon graph this model carries no room content —
// puzzle rooms have no archetype, size, or reward, only reachability.
package roomgraph
