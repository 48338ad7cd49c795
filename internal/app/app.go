package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/dfq/internal/column"
	"github.com/GriffinCanCode/dfq/internal/config"
	"github.com/GriffinCanCode/dfq/internal/filter"
	"github.com/GriffinCanCode/dfq/internal/logging"
	"github.com/GriffinCanCode/dfq/internal/lustre"
	"github.com/GriffinCanCode/dfq/internal/mount"
	"github.com/GriffinCanCode/dfq/internal/render"
	"github.com/GriffinCanCode/dfq/internal/sorting"
	"github.com/GriffinCanCode/dfq/internal/value"
)

// App holds the pipeline dependencies. Reader, Collector and Stdout are
// exported so tests can inject fakes.
type App struct {
	Config    *config.Config
	Log       *logging.Logger
	Reader    mount.Reader
	Collector lustre.Collector
	Stdout    io.Writer
}

// Options carries the per-invocation directives from the command line.
type Options struct {
	Sort     string
	Filter   string
	Path     string
	ListCols bool
}

// New builds an App with the real mount reader and Lustre collector.
func New(cfg *config.Config, log *logging.Logger) *App {
	return &App{
		Config:    cfg,
		Log:       log,
		Reader:    mount.NewReader(true),
		Collector: lustre.NewCollector(),
		Stdout:    os.Stdout,
	}
}

// Run executes one report. All directive parsing happens before the
// first record is touched, so a malformed sort or filter never produces
// partial output.
func (a *App) Run(ctx context.Context, opts Options) error {
	if opts.ListCols {
		return a.listColumns()
	}

	cfg := a.Config
	units, err := value.ParseUnits(cfg.Output.Units)
	if err != nil {
		return err
	}
	cols, err := a.selectColumns()
	if err != nil {
		return err
	}
	sortDirective := sorting.Default()
	if opts.Sort != "" {
		sortDirective, err = sorting.Parse(opts.Sort, cfg.Overlay.Lustre)
		if err != nil {
			return err
		}
	}
	flt, err := filter.Compile(opts.Filter, cfg.Overlay.Lustre)
	if err != nil {
		return err
	}
	separator, err := csvSeparator(cfg.Output.CSVSeparator)
	if err != nil {
		return err
	}

	records, err := a.Reader.Read(ctx)
	if err != nil {
		return err
	}
	a.Log.Debug("mount table read", zap.Int("records", len(records)))
	if !cfg.Output.All {
		records = mount.Normal(records)
	}

	var overlay *lustre.Data
	if cfg.Overlay.Lustre || cfg.Overlay.LustreOnly {
		overlay, err = a.Collector.Collect(ctx, records)
		if err != nil {
			a.Log.Warn("lustre overlay unavailable", zap.Error(err))
			overlay = nil
		}
	}
	if cfg.Overlay.LustreOnly {
		kept := records[:0:0]
		for _, rec := range records {
			if overlay.IsLustre(rec) {
				kept = append(kept, rec)
			}
		}
		records = kept
	}
	if opts.Path != "" {
		if _, err := os.Stat(opts.Path); err != nil {
			return fmt.Errorf("can't read %q: %w", opts.Path, err)
		}
		records = mount.FilterByPath(records, opts.Path)
	}

	sortDirective.Sort(records, overlay)
	records = flt.Apply(records, overlay)

	report := render.Resolve(records, overlay, render.Options{Cols: cols, Units: units})
	switch cfg.Output.Format {
	case "", "table":
		if len(records) == 0 {
			_, err = fmt.Fprintln(a.Stdout, "no mount to display - try\n    dfq -a")
			return err
		}
		return render.Table(a.Stdout, report)
	case "csv":
		return render.CSV(a.Stdout, report, separator)
	case "json":
		return render.JSON(a.Stdout, report)
	case "yaml":
		return render.YAML(a.Stdout, report)
	default:
		return fmt.Errorf("unknown output format %q (want table, csv, json or yaml)", cfg.Output.Format)
	}
}

// selectColumns resolves the --cols selection and gates Lustre columns
// on the overlay being requested: naming one without the overlay is an
// error, while "all" just omits them. With the overlay on and no
// explicit selection, the Lustre columns join the default set.
func (a *App) selectColumns() ([]column.Col, error) {
	spec := a.Config.Output.Cols
	lustreOn := a.Config.Overlay.Lustre || a.Config.Overlay.LustreOnly
	cols, err := column.ParseCols(spec)
	if err != nil {
		return nil, err
	}
	if !lustreOn {
		if strings.EqualFold(strings.TrimSpace(spec), "all") {
			kept := cols[:0]
			for _, col := range cols {
				if !col.Lustre() {
					kept = append(kept, col)
				}
			}
			cols = kept
		} else {
			for _, col := range cols {
				if col.Lustre() {
					return nil, fmt.Errorf("column %q needs --lustre", col.Name())
				}
			}
		}
	}
	if spec == "" && lustreOn {
		cols = append(cols, column.ColLustreComponent, column.ColLustreIndex, column.ColLustreUUID)
	}
	return cols, nil
}

// listColumns prints the registry for --list-cols, in stable order.
func (a *App) listColumns() error {
	for _, col := range column.All() {
		suffix := ""
		if col.Lustre() {
			suffix = " (needs --lustre)"
		}
		if _, err := fmt.Fprintf(a.Stdout, "%-18s %-12s sort:%-5s %s%s\n",
			col.Name(), col.Kind(), col.DefaultSortOrder(), col.Title(), suffix); err != nil {
			return err
		}
	}
	return nil
}

func csvSeparator(s string) (rune, error) {
	if s == "" {
		return ',', nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("csv separator must be a single character, got %q", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}
