// Command debris.report reads a CSV catalog of tracked orbital objects and
// renders their altitude distribution as a stacked log-altitude histogram,
// with a console summary and optional HTML and JSON exports.
package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"strings"

	"github.com/skywatch-data/debris.report/internal/catalog"
	"github.com/skywatch-data/debris.report/internal/config"
	"github.com/skywatch-data/debris.report/internal/render"
	"github.com/skywatch-data/debris.report/internal/stats"
)

// DefaultCatalogFile is offered when no -csv flag is given and the
// interactive prompt is left empty.
const DefaultCatalogFile = "satellite_data.csv"

var (
	csvPath   = flag.String("csv", "", "Catalog CSV path (prompts on stdin when empty)")
	outPath   = flag.String("out", "altitude_distribution.png", "Output PNG path")
	htmlPath  = flag.String("html", "", "Optional interactive HTML output path")
	jsonPath  = flag.String("json", "", "Optional JSON summary output path")
	stylePath = flag.String("style", "", "Optional plot style JSON path")
	quiet     = flag.Bool("quiet", false, "Suppress the console summary")
)

// promptForPath asks for a catalog path on r, falling back to the default
// when the answer is blank.
func promptForPath(r io.Reader, w io.Writer) string {
	fmt.Fprintf(w, "Enter CSV filename (or press Enter for %q): ", DefaultCatalogFile)
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		return DefaultCatalogFile
	}
	path := strings.TrimSpace(scanner.Text())
	if path == "" {
		return DefaultCatalogFile
	}
	return path
}

func run() error {
	path := *csvPath
	if path == "" {
		path = promptForPath(os.Stdin, os.Stdout)
	}

	cfg := config.DefaultPlotConfig()
	if *stylePath != "" {
		var err error
		cfg, err = config.LoadPlotConfig(*stylePath)
		if err != nil {
			return err
		}
	}

	records, err := catalog.Load(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("catalog file %q not found", path)
		}
		return err
	}
	log.Printf("loaded %d rows from %s", len(records), path)

	buckets := catalog.Bin(records)
	summary := stats.Summarize(buckets)

	if !*quiet {
		fmt.Print(summary.Format())
	}

	if *jsonPath != "" {
		report := stats.NewReport(path, summary)
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("encode summary: %w", err)
		}
		if err := os.WriteFile(*jsonPath, data, 0644); err != nil {
			return fmt.Errorf("write summary: %w", err)
		}
		log.Printf("wrote summary %s", *jsonPath)
	}

	if err := render.Histogram(buckets, summary, cfg, *outPath); err != nil {
		return fmt.Errorf("render histogram: %w", err)
	}
	log.Printf("wrote chart %s", *outPath)

	if *htmlPath != "" {
		if err := render.HTMLReport(buckets, summary, cfg, *htmlPath); err != nil {
			return fmt.Errorf("render html report: %w", err)
		}
		log.Printf("wrote html report %s", *htmlPath)
	}

	return nil
}

func main() {
	flag.Parse()

	if err := run(); err != nil {
		log.Fatalf("debris.report: %v", err)
	}
}
