package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/GriffinCanCode/dfq/internal/app"
	"github.com/GriffinCanCode/dfq/internal/config"
	"github.com/GriffinCanCode/dfq/internal/logging"
)

const version = "1.0.0"

func main() {
	cfg := config.LoadOrDefault()

	// Parse flags; defaults come from the loaded configuration so that
	// unset flags keep the file/environment values.
	all := flag.Bool("all", cfg.Output.All, "show every mount, pseudo filesystems included")
	flag.BoolVar(all, "a", *all, "shorthand for --all")
	jsonOut := flag.Bool("json", false, "output JSON")
	csvOut := flag.Bool("csv", false, "output CSV")
	yamlOut := flag.Bool("yaml", false, "output YAML")
	csvSeparator := flag.String("csv-separator", cfg.Output.CSVSeparator, "CSV field separator")
	units := flag.String("units", cfg.Output.Units, "size units: binary, si or bytes")
	cols := flag.String("cols", cfg.Output.Cols, "columns to show: names, \"all\", or +names to extend the default set")
	listCols := flag.Bool("list-cols", false, "list available columns and exit")
	sortExpr := flag.String("sort", "", "sort directive: column[-order], e.g. size-asc")
	filterExpr := flag.String("filter", "", "filter expression, e.g. 'size>10G and use<90%'")
	flag.StringVar(filterExpr, "f", *filterExpr, "shorthand for --filter")
	lustreOn := flag.Bool("lustre", cfg.Overlay.Lustre, "collect Lustre component metadata")
	lustreOnly := flag.Bool("lustre-only", cfg.Overlay.LustreOnly, "only show Lustre mounts")
	logLevel := flag.String("log-level", cfg.Logging.Level, "log level: debug, info, warn or error")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("dfq " + version)
		return
	}

	cfg.Output.All = *all
	cfg.Output.Units = *units
	cfg.Output.Cols = *cols
	cfg.Output.CSVSeparator = *csvSeparator
	cfg.Overlay.Lustre = *lustreOn
	cfg.Overlay.LustreOnly = *lustreOnly
	cfg.Logging.Level = *logLevel
	switch {
	case *jsonOut:
		cfg.Output.Format = "json"
	case *csvOut:
		cfg.Output.Format = "csv"
	case *yamlOut:
		cfg.Output.Format = "yaml"
	}

	log, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "dfq:", err)
		os.Exit(1)
	}
	defer log.Sync() //nolint:errcheck // stderr sync failure is uninteresting

	opts := app.Options{
		Sort:     *sortExpr,
		Filter:   *filterExpr,
		Path:     flag.Arg(0),
		ListCols: *listCols,
	}
	if err := app.New(cfg, log).Run(context.Background(), opts); err != nil {
		fmt.Fprintln(os.Stderr, "dfq:", err)
		os.Exit(1)
	}
}
