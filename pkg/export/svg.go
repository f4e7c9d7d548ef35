package export

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	svg "github.com/ajstarks/svgo"

	"github.com/kronologic/kronogen/pkg/decoder"
	"github.com/kronologic/kronogen/pkg/encoder"
)

// SVGOptions configures the timestep-grid visualization export.
type SVGOptions struct {
	CellSize   int    // Width/height of a single (room, timestep) cell in pixels
	Margin     int    // Canvas margin in pixels
	ShowLegend bool   // Show the character color legend
	ShowStats  bool   // Show variable/clause/solve-time statistics
	Title      string // Optional title for the visualization
}

// DefaultSVGOptions returns sensible default SVG export options.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		CellSize:   48,
		Margin:     60,
		ShowLegend: true,
		ShowStats:  true,
		Title:      "Puzzle Schedule",
	}
}

var palette = []string{
	"#48bb78", "#4299e1", "#f56565", "#ed8936",
	"#9f7aea", "#38b2ac", "#ecc94b", "#ed64a6",
}

// ExportSVG renders a decoded puzzle as a grid of rooms (rows) by
// timesteps (columns), with each character drawn as a colored dot in the
// room it occupies at that timestep.
func ExportSVG(enc *encoder.Encoded, result *decoder.Result, opts SVGOptions) ([]byte, error) {
	if enc == nil || result == nil {
		return nil, fmt.Errorf("encoded instance and result cannot be nil")
	}

	if opts.CellSize <= 0 {
		opts.CellSize = 48
	}
	if opts.Margin <= 0 {
		opts.Margin = 60
	}

	rooms := append([]string(nil), enc.Graph.Rooms...)
	sort.Strings(rooms)
	roomRow := make(map[string]int, len(rooms))
	for i, r := range rooms {
		roomRow[r] = i
	}

	chars := append([]string(nil), enc.Chars...)
	sort.Strings(chars)
	charColor := make(map[string]string, len(chars))
	for i, c := range chars {
		charColor[c] = palette[i%len(palette)]
	}

	headerHeight := 40
	if opts.Title != "" {
		headerHeight += 30
	}
	legendHeight := 0
	if opts.ShowLegend {
		legendHeight = 30 + 22*len(chars)
	}
	statsHeight := 0
	if opts.ShowStats {
		statsHeight = 24
	}

	labelColWidth := 90
	width := opts.Margin*2 + labelColWidth + opts.CellSize*enc.T
	height := opts.Margin*2 + headerHeight + statsHeight + opts.CellSize*len(rooms) + legendHeight

	buf := new(bytes.Buffer)
	canvas := svg.New(buf)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:#1a1a2e")

	top := opts.Margin
	if opts.Title != "" {
		canvas.Text(width/2, top, opts.Title,
			"text-anchor:middle;font-size:20px;font-weight:bold;fill:#e2e8f0;font-family:sans-serif")
		top += 30
	}
	if opts.ShowStats {
		stats := fmt.Sprintf("Chars: %d | Rooms: %d | T: %d | Vars: %d | SolveMs: %d",
			len(chars), len(rooms), enc.T, result.Meta.Vars, result.Stats.SolveTimeMs)
		canvas.Text(width/2, top, stats,
			"text-anchor:middle;font-size:12px;fill:#a0aec0;font-family:monospace")
		top += statsHeight
	}

	gridTop := top + 20
	gridLeft := opts.Margin + labelColWidth

	drawGridLines(canvas, gridLeft, gridTop, enc.T, len(rooms), opts.CellSize)
	drawRoomLabels(canvas, rooms, opts.Margin, gridTop, opts.CellSize)
	drawTimeLabels(canvas, enc.T, gridLeft, gridTop, opts.CellSize)
	drawOccupants(canvas, enc, result, roomRow, charColor, chars, gridLeft, gridTop, opts.CellSize)

	legendTop := gridTop + opts.CellSize*len(rooms) + 30
	if opts.ShowLegend {
		drawCharLegend(canvas, chars, charColor, opts.Margin, legendTop)
	}

	canvas.End()
	return buf.Bytes(), nil
}

// SaveSVGToFile renders a decoded puzzle to an SVG file.
// The file is created with 0644 permissions (readable by all, writable by owner).
func SaveSVGToFile(enc *encoder.Encoded, result *decoder.Result, filepath string, opts SVGOptions) error {
	data, err := ExportSVG(enc, result, opts)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath, data, 0644)
}

// drawGridLines draws the row/column separators of the room-by-timestep grid.
func drawGridLines(canvas *svg.SVG, left, top, cols, rows, cell int) {
	for r := 0; r <= rows; r++ {
		y := top + r*cell
		canvas.Line(left, y, left+cols*cell, y, "stroke:#4a5568;stroke-width:1")
	}
	for c := 0; c <= cols; c++ {
		x := left + c*cell
		canvas.Line(x, top, x, top+rows*cell, "stroke:#4a5568;stroke-width:1")
	}
}

// drawRoomLabels renders each room name to the left of its grid row.
func drawRoomLabels(canvas *svg.SVG, rooms []string, left, top, cell int) {
	for i, room := range rooms {
		y := top + i*cell + cell/2 + 4
		canvas.Text(left+80, y, room,
			"text-anchor:end;font-size:12px;font-family:monospace;fill:#e2e8f0")
	}
}

// drawTimeLabels renders the timestep index above each grid column.
func drawTimeLabels(canvas *svg.SVG, t, left, top, cell int) {
	for i := 0; i < t; i++ {
		x := left + i*cell + cell/2
		canvas.Text(x, top-8, fmt.Sprintf("t%d", i),
			"text-anchor:middle;font-size:11px;font-family:monospace;fill:#a0aec0")
	}
}

// drawOccupants plots a colored dot for every character in the cell of the
// room they occupy at each timestep, spreading multiple occupants of the
// same cell horizontally so none overlap.
func drawOccupants(canvas *svg.SVG, enc *encoder.Encoded, result *decoder.Result, roomRow map[string]int,
	charColor map[string]string, chars []string, left, top, cell int) {

	for t := 0; t < enc.T; t++ {
		occupants := make(map[string][]string) // room -> chars present
		for _, c := range chars {
			sched := result.Schedule[c]
			if t >= len(sched) {
				continue
			}
			occupants[sched[t]] = append(occupants[sched[t]], c)
		}

		for room, present := range occupants {
			row, ok := roomRow[room]
			if !ok {
				continue
			}
			sort.Strings(present)
			cx := left + t*cell
			cy := top + row*cell
			spacing := cell / (len(present) + 1)
			for i, c := range present {
				dotX := cx + spacing*(i+1)
				dotY := cy + cell/2
				canvas.Circle(dotX, dotY, 9,
					fmt.Sprintf("fill:%s;stroke:#fff;stroke-width:1", charColor[c]))
				canvas.Text(dotX, dotY+4, string(c[0]),
					"text-anchor:middle;font-size:10px;font-weight:bold;fill:#1a1a2e")
			}
		}
	}
}

// drawCharLegend renders a color key mapping each character to its dot color.
func drawCharLegend(canvas *svg.SVG, chars []string, charColor map[string]string, left, top int) {
	canvas.Text(left, top, "Characters",
		"font-size:14px;font-weight:bold;fill:#e2e8f0")
	y := top + 22
	for _, c := range chars {
		canvas.Circle(left+8, y, 8, fmt.Sprintf("fill:%s;stroke:#fff;stroke-width:1", charColor[c]))
		canvas.Text(left+25, y+4, c, "font-size:12px;fill:#cbd5e0;font-family:monospace")
		y += 22
	}
}
