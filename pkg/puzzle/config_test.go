package puzzle

import "testing"

func validYAML() []byte {
	return []byte(`
seed: 42
rooms: [A, B, C, D]
edges:
  - [A, B]
  - [B, C]
  - [C, D]
  - [D, A]
chars: [W, X, Y, Z]
t: 6
allowStay: true
scenarios:
  s2: true
`)
}

func TestLoadConfigFromBytes_ParsesValidYAML(t *testing.T) {
	cfg, err := LoadConfigFromBytes(validYAML())
	if err != nil {
		t.Fatalf("LoadConfigFromBytes: %v", err)
	}
	if cfg.Seed != 42 {
		t.Fatalf("Seed = %d, want 42", cfg.Seed)
	}
	if len(cfg.Rooms) != 4 || len(cfg.Chars) != 4 {
		t.Fatalf("unexpected rooms/chars: %v %v", cfg.Rooms, cfg.Chars)
	}
	if !cfg.Scenarios.S2 {
		t.Fatal("expected s2 to be parsed true")
	}
}

func TestLoadConfigFromBytes_AutoGeneratesSeedWhenZero(t *testing.T) {
	data := []byte(`
rooms: [A, B]
edges:
  - [A, B]
chars: [W, X]
t: 2
`)
	cfg, err := LoadConfigFromBytes(data)
	if err != nil {
		t.Fatalf("LoadConfigFromBytes: %v", err)
	}
	if cfg.Seed == 0 {
		t.Fatal("expected a non-zero auto-generated seed")
	}
}

func TestLoadConfigFromBytes_ParsesMapIntoRoomsAndEdges(t *testing.T) {
	data := []byte(`
seed: 1
map: |
  graph TD
  A --- B
  B --- C
  C --- A
chars: [W, X, Y]
t: 4
`)
	cfg, err := LoadConfigFromBytes(data)
	if err != nil {
		t.Fatalf("LoadConfigFromBytes: %v", err)
	}
	if len(cfg.Rooms) != 3 {
		t.Fatalf("Rooms = %v, want 3 rooms parsed from map", cfg.Rooms)
	}
	if len(cfg.Edges) != 3 {
		t.Fatalf("Edges = %v, want 3 edges parsed from map", cfg.Edges)
	}
}

func TestValidate_RejectsEmptyRooms(t *testing.T) {
	cfg := Config{Chars: []string{"A"}, T: 1}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for empty rooms")
	}
}

func TestValidate_RejectsEmptyChars(t *testing.T) {
	cfg := Config{Rooms: []string{"A"}, T: 1}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for empty chars")
	}
}

func TestValidate_RejectsNonPositiveT(t *testing.T) {
	cfg := Config{Rooms: []string{"A"}, Chars: []string{"X"}, T: 0}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for t < 1")
	}
}

func TestHash_IsDeterministicForEqualConfig(t *testing.T) {
	cfg1, err := LoadConfigFromBytes(validYAML())
	if err != nil {
		t.Fatalf("LoadConfigFromBytes: %v", err)
	}
	cfg2, err := LoadConfigFromBytes(validYAML())
	if err != nil {
		t.Fatalf("LoadConfigFromBytes: %v", err)
	}
	h1, h2 := cfg1.Hash(), cfg2.Hash()
	if string(h1) != string(h2) {
		t.Fatal("Hash() not deterministic for identical configs")
	}
}

func TestToYAML_RoundTrips(t *testing.T) {
	cfg, err := LoadConfigFromBytes(validYAML())
	if err != nil {
		t.Fatalf("LoadConfigFromBytes: %v", err)
	}
	data, err := cfg.ToYAML()
	if err != nil {
		t.Fatalf("ToYAML: %v", err)
	}
	cfg2, err := LoadConfigFromBytes(data)
	if err != nil {
		t.Fatalf("LoadConfigFromBytes(round-trip): %v", err)
	}
	if cfg2.T != cfg.T || len(cfg2.Rooms) != len(cfg.Rooms) {
		t.Fatal("round-trip through YAML lost data")
	}
}
