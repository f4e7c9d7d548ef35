package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kronologic/kronogen/pkg/encoder"
	"github.com/kronologic/kronogen/pkg/export"
	"github.com/kronologic/kronogen/pkg/puzzle"
	"github.com/kronologic/kronogen/pkg/satsolver"
	"github.com/kronologic/kronogen/pkg/validation"
)

const version = "1.0.0"

// CLI flags
var (
	configPath = flag.String("config", "", "Path to YAML configuration file (required)")
	outputDir  = flag.String("output", ".", "Output directory for generated files")
	format     = flag.String("format", "json", "Export format: json, svg, text, or all")
	seedFlag   = flag.Uint64("seed", 0, "Override the seed from config (0 = use config seed)")
	verbose    = flag.Bool("verbose", false, "Enable verbose output")
	versionF   = flag.Bool("version", false, "Print version and exit")
	help       = flag.Bool("help", false, "Show help message")
)

func main() {
	flag.Parse()

	if *versionF {
		fmt.Printf("kronogen version %s\n", version)
		os.Exit(0)
	}

	if *help {
		printHelp()
		os.Exit(0)
	}

	if *configPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -config flag is required")
		printUsage()
		os.Exit(1)
	}

	validFormats := map[string]bool{"json": true, "svg": true, "text": true, "all": true}
	if !validFormats[*format] {
		fmt.Fprintf(os.Stderr, "Error: invalid format %q, must be one of: json, svg, text, all\n", *format)
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	if *verbose {
		fmt.Printf("Loading configuration from %s\n", *configPath)
	}

	cfg, err := puzzle.LoadConfig(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if *seedFlag != 0 {
		if *verbose {
			fmt.Printf("Overriding seed from %d to %d\n", cfg.Seed, *seedFlag)
		}
		cfg.Seed = *seedFlag
	}

	if *verbose {
		fmt.Printf("Using seed: %d\n", cfg.Seed)
		fmt.Printf("Rooms: %d | Chars: %d | T: %d\n", len(cfg.Rooms), len(cfg.Chars), cfg.T)
	}

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	solver := puzzle.NewSolver()

	start := time.Now()
	if *verbose {
		fmt.Println("Solving puzzle...")
	}

	outcome, err := solver.Solve(ctx, cfg)
	if err != nil {
		return fmt.Errorf("solve failed: %w", err)
	}
	elapsed := time.Since(start)

	if outcome.Status != satsolver.StatusSAT {
		fmt.Printf("No puzzle found (status=%v) after %v\n", outcome.Status, elapsed)
		return nil
	}

	if *verbose {
		fmt.Printf("Solved in %v\n", elapsed)
	}

	enc := outcome.Encoded

	report, err := validation.NewValidator().Validate(ctx, enc, outcome.Result)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	if *verbose {
		fmt.Print(validation.Summary(report))
	}
	if !report.Passed {
		fmt.Fprintf(os.Stderr, "Warning: validation reported failures: %v\n", report.Errors)
	}

	baseName := fmt.Sprintf("kronogen_%d", cfg.Seed)

	if *format == "json" || *format == "all" {
		if err := exportJSON(outcome, baseName); err != nil {
			return err
		}
	}
	if *format == "svg" || *format == "all" {
		if err := exportSVG(enc, outcome, baseName); err != nil {
			return err
		}
	}
	if *format == "text" || *format == "all" {
		if err := exportText(outcome, baseName); err != nil {
			return err
		}
	}

	fmt.Printf("Successfully solved puzzle (seed=%d) in %v\n", cfg.Seed, elapsed)
	return nil
}

func exportJSON(outcome *puzzle.Outcome, baseName string) error {
	filename := filepath.Join(*outputDir, baseName+".json")
	if *verbose {
		fmt.Printf("Exporting JSON to %s\n", filename)
	}
	if err := export.SaveJSONToFile(outcome.Result, filename); err != nil {
		return fmt.Errorf("failed to export JSON: %w", err)
	}
	return nil
}

func exportSVG(enc *encoder.Encoded, outcome *puzzle.Outcome, baseName string) error {
	filename := filepath.Join(*outputDir, baseName+".svg")
	if *verbose {
		fmt.Printf("Exporting SVG to %s\n", filename)
	}
	opts := export.DefaultSVGOptions()
	if err := export.SaveSVGToFile(enc, outcome.Result, filename, opts); err != nil {
		return fmt.Errorf("failed to export SVG: %w", err)
	}
	return nil
}

func exportText(outcome *puzzle.Outcome, baseName string) error {
	filename := filepath.Join(*outputDir, baseName+".txt")
	if *verbose {
		fmt.Printf("Exporting text view to %s\n", filename)
	}
	return os.WriteFile(filename, []byte(puzzle.RenderText(outcome.Result)), 0644)
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "\nUsage: kronogen -config <config.yaml> [options]")
	fmt.Fprintln(os.Stderr, "\nRun 'kronogen -help' for detailed help")
}

func printHelp() {
	fmt.Printf("kronogen version %s\n\n", version)
	fmt.Println("A command-line tool for generating kronologic-style deduction puzzles.")
	fmt.Println("\nUsage:")
	fmt.Println("  kronogen -config <config.yaml> [options]")
	fmt.Println("\nRequired Flags:")
	fmt.Println("  -config string")
	fmt.Println("        Path to YAML configuration file")
	fmt.Println("\nOptional Flags:")
	fmt.Println("  -output string")
	fmt.Println("        Output directory for generated files (default: current directory)")
	fmt.Println("  -format string")
	fmt.Println("        Export format: json, svg, text, or all (default: json)")
	fmt.Println("  -seed uint")
	fmt.Println("        Override the seed from config (0 = use config seed) (default: 0)")
	fmt.Println("  -verbose")
	fmt.Println("        Enable verbose output")
	fmt.Println("  -version")
	fmt.Println("        Print version and exit")
	fmt.Println("  -help")
	fmt.Println("        Show this help message")
	fmt.Println("\nExamples:")
	fmt.Println("  # Solve puzzle with default JSON export")
	fmt.Println("  kronogen -config puzzle.yaml")
	fmt.Println("\n  # Solve with custom seed and all export formats")
	fmt.Println("  kronogen -config puzzle.yaml -seed 12345 -format all -output ./out")
	fmt.Println("\n  # Render the schedule grid as SVG with verbose output")
	fmt.Println("  kronogen -config puzzle.yaml -format svg -verbose")
	fmt.Println("\nConfiguration File:")
	fmt.Println("  The YAML configuration file specifies puzzle parameters including:")
	fmt.Println("  - Seed (for deterministic generation)")
	fmt.Println("  - Rooms and edges (the room graph)")
	fmt.Println("  - Chars (the cast)")
	fmt.Println("  - T (number of timesteps)")
	fmt.Println("  - Movement rules (mustMove, allowStay)")
	fmt.Println("  - Scenarios (which of the 16 scenario flags to enable)")
	fmt.Println("\n  See the project documentation for the detailed configuration schema.")
}
