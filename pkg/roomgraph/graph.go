package roomgraph

import (
	"fmt"
	"sort"
)

// Graph is an undirected room graph: an ordered, unique set of room names
// plus adjacency derived from edges. Self-loops are never stored in
// Adjacency — whether a character may stay in place is a movement-policy
// decision made by the caller (pkg/encoder), not a graph property.
type Graph struct {
	Rooms     []string
	Adjacency map[string][]string
	index     map[string]int
}

// NewGraph builds a Graph from an ordered, unique room list and a set of
// undirected edges. Returns an error if an edge references an unknown room
// or if rooms contains a duplicate.
func NewGraph(rooms []string, edges [][2]string) (*Graph, error) {
	g := &Graph{
		Rooms:     append([]string(nil), rooms...),
		Adjacency: make(map[string][]string, len(rooms)),
		index:     make(map[string]int, len(rooms)),
	}
	for i, r := range rooms {
		if _, dup := g.index[r]; dup {
			return nil, fmt.Errorf("roomgraph: duplicate room %q", r)
		}
		g.index[r] = i
		g.Adjacency[r] = nil
	}
	for _, e := range edges {
		a, b := e[0], e[1]
		if _, ok := g.index[a]; !ok {
			return nil, fmt.Errorf("roomgraph: edge references unknown room %q", a)
		}
		if _, ok := g.index[b]; !ok {
			return nil, fmt.Errorf("roomgraph: edge references unknown room %q", b)
		}
		if a == b {
			continue // self-loops are a movement-policy concern, not a graph edge
		}
		g.Adjacency[a] = append(g.Adjacency[a], b)
		g.Adjacency[b] = append(g.Adjacency[b], a)
	}
	return g, nil
}

// HasRoom reports whether name is one of the graph's rooms.
func (g *Graph) HasRoom(name string) bool {
	_, ok := g.index[name]
	return ok
}

// Neighbors returns the rooms reachable in one step from room. When
// allowStay is true, room itself is appended (the self-loop), matching the
// "adjacency includes the self-loop" movement rule of spec.md §4.4.
func (g *Graph) Neighbors(room string, allowStay bool) []string {
	adj := g.Adjacency[room]
	if !allowStay {
		return adj
	}
	out := make([]string, 0, len(adj)+1)
	out = append(out, adj...)
	out = append(out, room)
	return out
}

// AlphabeticallyFirst returns the lexicographically smallest room name.
// Several scenarios (S3, S10, S11) key off this room.
func (g *Graph) AlphabeticallyFirst() string {
	if len(g.Rooms) == 0 {
		return ""
	}
	sorted := append([]string(nil), g.Rooms...)
	sort.Strings(sorted)
	return sorted[0]
}

// GetReachable returns all rooms reachable from "from", including itself,
// treating every edge as bidirectional (the graph already is).
func (g *Graph) GetReachable(from string) map[string]bool {
	reachable := make(map[string]bool)
	if !g.HasRoom(from) {
		return reachable
	}
	queue := []string{from}
	reachable[from] = true
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range g.Adjacency[cur] {
			if !reachable[n] {
				reachable[n] = true
				queue = append(queue, n)
			}
		}
	}
	return reachable
}

// IsConnected reports whether every room is reachable from every other.
func (g *Graph) IsConnected() bool {
	if len(g.Rooms) == 0 {
		return true
	}
	reachable := g.GetReachable(g.Rooms[0])
	return len(reachable) == len(g.Rooms)
}
