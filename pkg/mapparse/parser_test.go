package mapparse

import (
	"strings"
	"testing"
)

func TestParse_BasicEdges(t *testing.T) {
	input := `graph TD
Kitchen --- Hall
Hall --- Library
Library --- Kitchen
this line has no separator
`
	rooms, edges, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	wantRooms := []string{"Kitchen", "Hall", "Library"}
	if len(rooms) != len(wantRooms) {
		t.Fatalf("rooms = %v, want %v", rooms, wantRooms)
	}
	for i, r := range wantRooms {
		if rooms[i] != r {
			t.Errorf("rooms[%d] = %q, want %q", i, rooms[i], r)
		}
	}
	if len(edges) != 3 {
		t.Fatalf("edges = %v, want 3 entries", edges)
	}
}

func TestParse_QuotedTokens(t *testing.T) {
	input := `"Dark Cave" --- "Moonlit Garden"`
	rooms, edges, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(rooms) != 2 || rooms[0] != "Dark Cave" || rooms[1] != "Moonlit Garden" {
		t.Fatalf("rooms = %v, want [Dark Cave, Moonlit Garden]", rooms)
	}
	if len(edges) != 1 || edges[0] != (Edge{"Dark Cave", "Moonlit Garden"}) {
		t.Fatalf("edges = %v", edges)
	}
}

func TestParse_LastLeftFirstRightToken(t *testing.T) {
	// Mermaid-style edge label: pick the last token before the separator
	// and the first token after it.
	input := `A label --- label2 B`
	rooms, edges, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(rooms) != 2 {
		t.Fatalf("rooms = %v, want 2 rooms (A and B should be dropped)", rooms)
	}
	if edges[0] != (Edge{"label", "label2"}) {
		t.Fatalf("edges[0] = %v, want {label label2}", edges[0])
	}
}

func TestParse_IgnoresGraphHeaderAndBlankLines(t *testing.T) {
	input := "graph LR\n\nA --- B\n"
	rooms, _, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(rooms) != 2 {
		t.Fatalf("rooms = %v, want 2", rooms)
	}
}
